package canon

import (
	"testing"

	"github.com/FocuswithJustin/scripref/core/errors"
)

func TestBooksCanonicalOrder(t *testing.T) {
	books := Books()
	if len(books) != NumBooks {
		t.Fatalf("len(Books()) = %d, want %d", len(books), NumBooks)
	}

	titles := make(map[string]bool)
	for i, b := range books {
		if b.ID() != BookID(i+1) {
			t.Errorf("Books()[%d].ID() = %d, want %d", i, b.ID(), i+1)
		}
		if titles[b.Title()] {
			t.Errorf("duplicate title %q", b.Title())
		}
		titles[b.Title()] = true
		if len(b.Abbreviations()) == 0 {
			t.Errorf("%s has no abbreviations", b.Title())
		}
	}
}

func TestBooksReturnsCopy(t *testing.T) {
	books := Books()
	books[0] = nil
	if Books()[0] == nil {
		t.Error("Books() exposed the catalog")
	}
}

func TestLookup(t *testing.T) {
	b, err := Lookup(Psalms)
	if err != nil {
		t.Fatalf("Lookup(Psalms) error = %v", err)
	}
	if b.Title() != "Psalms" {
		t.Errorf("Title() = %q, want %q", b.Title(), "Psalms")
	}

	for _, id := range []BookID{0, -1, 73, 1000} {
		_, err := Lookup(id)
		if err == nil {
			t.Errorf("Lookup(%d) expected error", id)
			continue
		}
		if !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("Lookup(%d) error should wrap ErrNotFound, got %v", id, err)
		}
		var nf *errors.NotFoundError
		if !errors.As(err, &nf) || nf.Resource != "book" {
			t.Errorf("Lookup(%d) error = %#v, want book NotFoundError", id, err)
		}
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup(0) did not panic")
		}
	}()
	MustLookup(0)
}

func TestBookIDString(t *testing.T) {
	if got := SongOfSongs.String(); got != "Song of Songs" {
		t.Errorf("SongOfSongs.String() = %q, want %q", got, "Song of Songs")
	}
	if got := BookID(99).String(); got != "BookID(99)" {
		t.Errorf("BookID(99).String() = %q, want %q", got, "BookID(99)")
	}
}

func TestAbbreviationsReturnsCopy(t *testing.T) {
	b := MustLookup(Genesis)
	abbr := b.Abbreviations()
	abbr[0] = "changed"
	if b.Abbreviations()[0] == "changed" {
		t.Error("Abbreviations() exposed internal slice")
	}
}

func TestPatternOf(t *testing.T) {
	p, err := PatternOf(Revelation)
	if err != nil {
		t.Fatalf("PatternOf(Revelation) error = %v", err)
	}
	if !p.MatchString("Rev 21:4") {
		t.Error("Revelation pattern should match \"Rev 21:4\"")
	}
	if _, err := PatternOf(0); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("PatternOf(0) error = %v, want ErrNotFound", err)
	}
}

func TestEveryTitleMatchesItsOwnPattern(t *testing.T) {
	for _, b := range Books() {
		if !b.Pattern().MatchesExactly(b.Title()) {
			t.Errorf("%s pattern does not match its own title", b.Title())
		}
	}
}

func TestByTitle(t *testing.T) {
	tests := []struct {
		title string
		want  BookID
	}{
		{"Genesis", Genesis},
		{"  song of songs ", SongOfSongs},
		{"3 JOHN", ThirdJohn},
		{"Wisdom of Solomon", WisdomOfSolomon},
	}
	for _, tt := range tests {
		b, err := ByTitle(tt.title)
		if err != nil {
			t.Errorf("ByTitle(%q) error = %v", tt.title, err)
			continue
		}
		if b.ID() != tt.want {
			t.Errorf("ByTitle(%q) = %s, want %s", tt.title, b.Title(), tt.want)
		}
	}

	if _, err := ByTitle("Gen"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("ByTitle(\"Gen\") error = %v, want ErrNotFound", err)
	}
}

func TestFindBook(t *testing.T) {
	tests := []struct {
		name string
		want BookID
	}{
		{"Gen", Genesis},
		{"GENESIS", Genesis},
		{"genesis", Genesis},
		{"Exod.", Exodus},
		{"1 Sam", FirstSamuel},
		{"I Samuel", FirstSamuel},
		{"1st Samuel", FirstSamuel},
		{"First Book of Samuel", FirstSamuel},
		{"II Kings", SecondKings},
		{"Second Book of the Kings", SecondKings},
		{"Primeiro Reis", FirstKings},
		{"First Epistle of Paul the Apostle to the Corinthians", FirstCorinthians},
		{"2 Thess", SecondThessalonians},
		{"1 Tim", FirstTimothy},
		{"1 Pet", FirstPeter},
		{"3 John", ThirdJohn},
		{"III John", ThirdJohn},
		{"Third Epistle General of John", ThirdJohn},
		{"Lamentations of Jeremiah", Lamentations},
		{"Revelation of Jesus Christ", Revelation},
		{"Song of Solomon", SongOfSongs},
		{"Salmos", Psalms},
		{"Apocalipsis", Revelation},
		{"Ecclus", Ecclesiasticus},
		{"2 Macc", SecondMaccabees},
		// Shared abbreviations resolve to the earliest book.
		{"Jn", Jonah},
		{"Hb", Habakkuk},
	}
	for _, tt := range tests {
		b, err := FindBook(tt.name)
		if err != nil {
			t.Errorf("FindBook(%q) error = %v", tt.name, err)
			continue
		}
		if b.ID() != tt.want {
			t.Errorf("FindBook(%q) = %s, want %s", tt.name, b.Title(), tt.want)
		}
	}

	if _, err := FindBook("Hezekiah"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("FindBook(\"Hezekiah\") error = %v, want ErrNotFound", err)
	}
}

func TestFindBooks(t *testing.T) {
	got := FindBooks("Genesis 1 and Exodus 2")
	if len(got) != 2 {
		t.Fatalf("FindBooks() returned %d books, want 2", len(got))
	}
	if got[0].ID() != Genesis || got[1].ID() != Exodus {
		t.Errorf("FindBooks() = [%s %s], want [Genesis Exodus]", got[0], got[1])
	}

	if got := FindBooks("nothing to see here"); len(got) != 0 {
		t.Errorf("FindBooks() = %v, want none", got)
	}
}
