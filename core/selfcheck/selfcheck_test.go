package selfcheck

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/FocuswithJustin/scripref/core/canon"
	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/verse"
)

// TestRunPasses runs every check against the canonical data.
func TestRunPasses(t *testing.T) {
	report := Run()

	if report.Status != StatusPass {
		for _, r := range report.Failed() {
			t.Errorf("%s failed: %v", r.CheckType, r.Failures)
		}
		t.Fatalf("Status = %s, want %s", report.Status, StatusPass)
	}
	if len(report.Results) != len(AllChecks) {
		t.Errorf("got %d results, want %d", len(report.Results), len(AllChecks))
	}
	for i, r := range report.Results {
		if r.CheckType != AllChecks[i] {
			t.Errorf("result %d is %s, want %s", i, r.CheckType, AllChecks[i])
		}
		if r.Checked == 0 {
			t.Errorf("%s checked nothing", r.CheckType)
		}
	}
	if report.VerseCount != 35098 {
		t.Errorf("VerseCount = %d, want 35098", report.VerseCount)
	}
	if report.Fingerprint != verse.Fingerprint() {
		t.Errorf("Fingerprint = %s, want %s", report.Fingerprint, verse.Fingerprint())
	}
	if report.ReportVersion != Version {
		t.Errorf("ReportVersion = %s", report.ReportVersion)
	}
}

// TestCheckedCounts pins the amount of work each check does.
func TestCheckedCounts(t *testing.T) {
	report, err := NewExecutor(verse.Default()).Execute(CheckCatalog, CheckRoundTrip, CheckMonotonic, CheckCollisions)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := map[string]int{
		CheckCatalog:    canon.NumBooks,
		CheckRoundTrip:  35098,
		CheckMonotonic:  35098,
		CheckCollisions: len(KnownCollisions),
	}
	for _, r := range report.Results {
		if r.Checked != want[r.CheckType] {
			t.Errorf("%s checked %d, want %d", r.CheckType, r.Checked, want[r.CheckType])
		}
	}
}

// TestBoundsFlagsZeroVerseChapter uses a table with a chapter that has no
// verses, which the codec cannot bound.
func TestBoundsFlagsZeroVerseChapter(t *testing.T) {
	counts := verse.Default().Counts()
	counts[canon.Ruth] = []int{22, 0, 18, 22}
	table, err := verse.NewTable(counts)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	report, err := NewExecutor(table).Execute(CheckBounds, CheckRoundTrip)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if report.Status != StatusFail {
		t.Fatalf("Status = %s, want %s", report.Status, StatusFail)
	}

	failed := report.Failed()
	if len(failed) != 1 || failed[0].CheckType != CheckBounds {
		t.Fatalf("Failed() = %+v, want only %s", failed, CheckBounds)
	}
	if len(failed[0].Failures) != 1 || !strings.Contains(failed[0].Failures[0], "Ruth 2") {
		t.Errorf("Failures = %q", failed[0].Failures)
	}
	if report.Fingerprint == verse.Fingerprint() {
		t.Error("modified table has the canonical fingerprint")
	}
}

func TestCollisionFailures(t *testing.T) {
	e := NewExecutor(verse.Default()).WithCollisions([]Collision{
		{Text: "Philemon 1:9", Want: canon.Philippians, Reject: canon.Philemon},
		{Text: "nothing here", Want: canon.Genesis, Reject: canon.Exodus},
	})
	report, err := e.Execute(CheckCollisions)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	r := report.Results[0]
	if r.Pass || r.Checked != 2 {
		t.Fatalf("result = %+v, want two failing cases", r)
	}
	// the first case fails three ways, the second two
	if len(r.Failures) != 5 {
		t.Errorf("Failures = %q, want 5 entries", r.Failures)
	}
	if !strings.Contains(r.Failures[len(r.Failures)-1], "nothing") {
		t.Errorf("last failure = %q", r.Failures[len(r.Failures)-1])
	}
}

func TestFailuresAreTruncated(t *testing.T) {
	var cases []Collision
	for i := 0; i < maxFailures+5; i++ {
		cases = append(cases, Collision{Text: "Genesis 1:1", Want: canon.Exodus, Reject: canon.Leviticus})
	}
	report, err := NewExecutor(verse.Default()).WithCollisions(cases).Execute(CheckCollisions)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	r := report.Results[0]
	if len(r.Failures) != maxFailures {
		t.Errorf("listed %d failures, want %d", len(r.Failures), maxFailures)
	}
	// two failures per case: pattern mismatch and scan mismatch
	if r.Truncated != 2*len(cases)-maxFailures {
		t.Errorf("Truncated = %d, want %d", r.Truncated, 2*len(cases)-maxFailures)
	}
}

func TestUnknownCheck(t *testing.T) {
	_, err := NewExecutor(verse.Default()).Execute(CheckCatalog, "BOGUS")
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("Execute() error = %v, want ErrUnsupported", err)
	}
}

func TestReportJSON(t *testing.T) {
	report, err := NewExecutor(verse.Default()).Execute(CheckCatalog)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := report.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report JSON invalid: %v", err)
	}
	for _, key := range []string{"report_version", "created_at", "fingerprint", "verse_count", "results", "status"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("report JSON missing %q", key)
		}
	}

	h := report.Hash()
	if len(h) != 64 {
		t.Errorf("Hash() = %q, want 64 hex characters", h)
	}
	if h != report.Hash() {
		t.Error("Hash() is not deterministic")
	}
	report.Status = StatusFail
	if h == report.Hash() {
		t.Error("Hash() ignores the status")
	}
}
