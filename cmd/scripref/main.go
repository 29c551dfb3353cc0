// Command scripref finds scripture references in text and converts them to
// verse id ranges.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/scripref/core/canon"
	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/resolve"
	"github.com/FocuswithJustin/scripref/core/selfcheck"
	"github.com/FocuswithJustin/scripref/core/verse"
	"github.com/FocuswithJustin/scripref/internal/config"
	"github.com/FocuswithJustin/scripref/internal/logging"
	"github.com/FocuswithJustin/scripref/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for scripref.
type CLI struct {
	// Global flags
	ConfigFile string `name:"config" short:"c" help:"Configuration file" type:"path"`
	Format     string `name:"format" short:"f" help:"Output format (text or json)"`
	LogLevel   string `name:"log-level" help:"Log level (debug, info, warn, error)"`

	Find      FindCmd      `cmd:"" help:"List the references in text with their verse ranges"`
	Resolve   ResolveCmd   `cmd:"" help:"Resolve the references in text, one input line at a time"`
	ID        IDGroup      `cmd:"" name:"id" help:"Verse id operations"`
	Books     BooksCmd     `cmd:"" help:"List the books of the catalog"`
	Selfcheck SelfcheckCmd `cmd:"" help:"Verify the catalog, verse table and codec"`
	Settings  ConfigGroup  `cmd:"" name:"config" help:"Configuration file operations"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// IDGroup contains verse id operations.
type IDGroup struct {
	Encode EncodeCmd `cmd:"" help:"Encode book, chapter and verse as a verse id"`
	Decode DecodeCmd `cmd:"" help:"Decode a verse id"`
}

// ConfigGroup contains configuration file operations.
type ConfigGroup struct {
	Init ConfigInitCmd `cmd:"" help:"Create the user configuration file with defaults"`
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
}

// App carries what commands need at run time.
type App struct {
	stdin  io.Reader
	stdout io.Writer
	cfg    *config.Config
	loader *config.Loader
	finder *resolve.Finder
}

func (a *App) json() bool { return a.cfg.Output.Format == config.OutputJSON }

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// input returns the text to scan: the joined arguments, the named file, or
// standard input.
func (a *App) input(args []string, file string) (string, error) {
	switch {
	case len(args) > 0 && file != "":
		return "", errors.NewValidation("input", "give text or --file, not both")
	case len(args) > 0:
		text := strings.Join(args, " ")
		if err := validation.CheckText([]byte(text)); err != nil {
			return "", err
		}
		return text, nil
	case file != "":
		return validation.ReadTextFile(file)
	default:
		return validation.ReadText(a.stdin)
	}
}

// FindCmd lists every reference in the input.
type FindCmd struct {
	Text []string `arg:"" optional:"" help:"Text to scan (default: standard input)"`
	File string   `help:"Read the text from a file" type:"path"`
}

type foundMatch struct {
	Text       string              `json:"text"`
	Start      int                 `json:"start"`
	End        int                 `json:"end"`
	Book       string              `json:"book"`
	EndBook    string              `json:"end_book,omitempty"`
	References []resolve.Reference `json:"references,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// Run resolves each match on its own so that one bad reference does not hide
// the others.
func (c *FindCmd) Run(app *App) error {
	text, err := app.input(c.Text, c.File)
	if err != nil {
		return err
	}

	var found []foundMatch
	for _, m := range app.finder.Matches(text) {
		fm := foundMatch{Text: m.Text, Start: m.Start, End: m.End, Book: m.Book.String()}
		if m.IsCrossBook() {
			fm.EndBook = m.EndBook.String()
		}
		refs, err := resolve.Resolve(m)
		if err != nil {
			fm.Error = err.Error()
		}
		fm.References = refs
		found = append(found, fm)
	}

	if app.json() {
		if found == nil {
			found = []foundMatch{}
		}
		return app.writeJSON(found)
	}

	w := tabwriter.NewWriter(app.stdout, 0, 4, 2, ' ', 0)
	for _, fm := range found {
		ranges := fm.Error
		if ranges == "" {
			parts := make([]string, len(fm.References))
			for i, r := range fm.References {
				parts[i] = formatRange(r)
			}
			ranges = strings.Join(parts, ", ")
		}
		fmt.Fprintf(w, "%s\t%d-%d\t%s\n", fm.Text, fm.Start, fm.End, ranges)
	}
	return w.Flush()
}

func formatRange(r resolve.Reference) string {
	if r.IsSingleVerse() {
		return r.Start.String()
	}
	return r.Start.String() + "-" + r.End.String()
}

// ResolveCmd resolves the input line by line and fails on the first
// reference that cannot be resolved.
type ResolveCmd struct {
	Text  []string `arg:"" optional:"" help:"Text to resolve (default: standard input)"`
	File  string   `help:"Read the text from a file" type:"path"`
	Stats bool     `help:"Log cache statistics when done"`
}

func (c *ResolveCmd) Run(app *App) error {
	text, err := app.input(c.Text, c.File)
	if err != nil {
		return err
	}

	refs := []resolve.Reference{}
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), validation.MaxInputSize)
	line := 0
	for scanner.Scan() {
		line++
		found, err := app.finder.Find(scanner.Text())
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		refs = append(refs, found...)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if c.Stats {
		s := app.finder.Stats()
		logging.CacheStats(s.Hits, s.Misses, s.Size, "hit_rate", s.HitRate())
	}

	if app.json() {
		return app.writeJSON(refs)
	}
	for _, r := range refs {
		fmt.Fprintf(app.stdout, "%s\t%s\n", formatRange(r), r.Text)
	}
	return nil
}

// EncodeCmd encodes a verse.
type EncodeCmd struct {
	Book    string `arg:"" help:"Book name, abbreviation or number"`
	Chapter int    `arg:"" help:"Chapter number"`
	Verse   int    `arg:"" help:"Verse number"`
}

func (c *EncodeCmd) Run(app *App) error {
	book, err := lookupBook(c.Book)
	if err != nil {
		return err
	}
	id, err := verse.Encode(book.ID(), c.Chapter, c.Verse)
	if err != nil {
		return err
	}
	if app.json() {
		return app.writeJSON(map[string]any{"id": id, "book": book.Title(), "chapter": c.Chapter, "verse": c.Verse})
	}
	fmt.Fprintln(app.stdout, id)
	return nil
}

// lookupBook accepts a catalog number or any recognised book name.
func lookupBook(s string) (*canon.Book, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return canon.Lookup(canon.BookID(n))
	}
	return canon.FindBook(s)
}

// DecodeCmd decodes a verse id.
type DecodeCmd struct {
	ID string `arg:"" help:"Verse id, e.g. 43003016"`
}

func (c *DecodeCmd) Run(app *App) error {
	id, err := verse.ParseID(c.ID)
	if err != nil {
		return err
	}
	book, chapter, v, err := verse.Decode(id)
	if err != nil {
		return err
	}
	if app.json() {
		return app.writeJSON(map[string]any{"id": id, "book": book.String(), "book_id": int(book), "chapter": chapter, "verse": v})
	}
	fmt.Fprintf(app.stdout, "%s %d:%d\n", book, chapter, v)
	return nil
}

// BooksCmd lists the catalog.
type BooksCmd struct {
	Abbreviations bool `short:"a" help:"Include abbreviations"`
}

type bookInfo struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Chapters      int      `json:"chapters"`
	Abbreviations []string `json:"abbreviations,omitempty"`
}

func (c *BooksCmd) Run(app *App) error {
	var books []bookInfo
	for _, b := range canon.Books() {
		chapters, err := verse.ChapterCount(b.ID())
		if err != nil {
			return err
		}
		info := bookInfo{ID: int(b.ID()), Title: b.Title(), Chapters: chapters}
		if c.Abbreviations {
			info.Abbreviations = b.Abbreviations()
		}
		books = append(books, info)
	}

	if app.json() {
		return app.writeJSON(books)
	}
	w := tabwriter.NewWriter(app.stdout, 0, 4, 2, ' ', 0)
	for _, b := range books {
		line := fmt.Sprintf("%d\t%s\t%d", b.ID, b.Title, b.Chapters)
		if c.Abbreviations {
			line += "\t" + strings.Join(b.Abbreviations, ", ")
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// SelfcheckCmd runs the invariant checks.
type SelfcheckCmd struct {
	Checks []string `arg:"" optional:"" help:"Checks to run (default: all)"`
}

func (c *SelfcheckCmd) Run(app *App) error {
	checks := selfcheck.AllChecks
	if len(c.Checks) > 0 {
		checks = make([]string, len(c.Checks))
		for i, name := range c.Checks {
			checks[i] = strings.ToUpper(name)
		}
	}

	report, err := selfcheck.NewExecutor(verse.Default()).Execute(checks...)
	if err != nil {
		return err
	}

	if app.json() {
		data, err := report.ToJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(app.stdout, string(data))
	} else {
		for _, r := range report.Results {
			status := selfcheck.StatusPass
			if !r.Pass {
				status = selfcheck.StatusFail
			}
			fmt.Fprintf(app.stdout, "%-4s  %-10s  %6d  %s\n", status, r.CheckType, r.Checked, r.Label)
			for _, f := range r.Failures {
				fmt.Fprintf(app.stdout, "      %s\n", f)
			}
			if r.Truncated > 0 {
				fmt.Fprintf(app.stdout, "      ... and %d more\n", r.Truncated)
			}
		}
		fmt.Fprintf(app.stdout, "status: %s\nverses: %d\nfingerprint: %s\n", report.Status, report.VerseCount, report.Fingerprint)
	}

	if report.Status != selfcheck.StatusPass {
		return fmt.Errorf("selfcheck failed: %d of %d checks", len(report.Failed()), len(report.Results))
	}
	return nil
}

// ConfigInitCmd writes the default user configuration.
type ConfigInitCmd struct{}

func (c *ConfigInitCmd) Run(app *App) error {
	path, err := app.loader.EnsureUserConfig()
	if err != nil {
		return err
	}
	fmt.Fprintln(app.stdout, path)
	return nil
}

// ConfigShowCmd prints the effective configuration.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(app *App) error {
	if app.json() {
		return app.writeJSON(app.cfg)
	}
	fmt.Fprintf(app.stdout, "log.level: %s\nlog.format: %s\ncache.size: %d\ncache.disabled: %t\noutput.format: %s\n",
		app.cfg.Log.Level, app.cfg.Log.Format, app.cfg.Cache.Size, app.cfg.Cache.Disabled, app.cfg.Output.Format)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(app *App) error {
	if app.json() {
		return app.writeJSON(map[string]any{"version": version, "verses": verse.Count(), "fingerprint": verse.Fingerprint()})
	}
	fmt.Fprintf(app.stdout, "scripref version %s\nverse data %s (%d verses)\n", version, verse.Fingerprint(), verse.Count())
	return nil
}

// run parses args, loads configuration and runs the selected command.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, loader *config.Loader) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("scripref"),
		kong.Description("Find scripture references and convert them to verse ids"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loader.Load(cli.ConfigFile)
	if err != nil {
		return err
	}
	if cli.Format != "" {
		cfg.Output.Format = cli.Format
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logging.InitLoggerTo(stderr, cfg.LogLevel(), cfg.LogFormat())

	app := &App{
		stdin:  stdin,
		stdout: stdout,
		cfg:    cfg,
		loader: loader,
		finder: resolve.NewFinder(
			resolve.WithCacheSize(cfg.CacheSize()),
			resolve.WithLogger(logging.GetLogger()),
		),
	}

	ctx := logging.WithCommand(context.Background(), kctx.Command())
	start := time.Now()
	err = kctx.Run(app)
	logging.CommandFinished(ctx, time.Since(start), err)
	return err
}

func main() {
	loader := config.NewLoader(logging.NewLogger(os.Stderr, logging.LevelWarn, logging.FormatText))
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, loader); err != nil {
		fmt.Fprintf(os.Stderr, "scripref: %v\n", err)
		os.Exit(1)
	}
}
