package canon

import "strconv"

// BookID is the ordinal identifier of a book in canonical order (1-72).
type BookID int

// Book identifiers in canonical order.
const (
	Genesis BookID = iota + 1
	Exodus
	Leviticus
	Numbers
	Deuteronomy
	Joshua
	Judges
	Ruth
	FirstSamuel
	SecondSamuel
	FirstKings
	SecondKings
	FirstChronicles
	SecondChronicles
	Ezra
	Nehemiah
	Esther
	Job
	Psalms
	Proverbs
	Ecclesiastes
	SongOfSongs
	Isaiah
	Jeremiah
	Lamentations
	Ezekiel
	Daniel
	Hosea
	Joel
	Amos
	Obadiah
	Jonah
	Micah
	Nahum
	Habakkuk
	Zephaniah
	Haggai
	Zechariah
	Malachi
	Matthew
	Mark
	Luke
	John
	Acts
	Romans
	FirstCorinthians
	SecondCorinthians
	Galatians
	Ephesians
	Philippians
	Colossians
	FirstThessalonians
	SecondThessalonians
	FirstTimothy
	SecondTimothy
	Titus
	Philemon
	Hebrews
	James
	FirstPeter
	SecondPeter
	FirstJohn
	SecondJohn
	ThirdJohn
	Jude
	Revelation
	FirstEsdras
	Tobit
	WisdomOfSolomon
	Ecclesiasticus
	FirstMaccabees
	SecondMaccabees
)

// NumBooks is the number of books in the catalog.
const NumBooks = int(SecondMaccabees)

// Valid reports whether id names a book in the catalog.
func (id BookID) Valid() bool {
	return id >= Genesis && id <= SecondMaccabees
}

// String returns the book title, or the numeric id for unknown books.
func (id BookID) String() string {
	if b, err := Lookup(id); err == nil {
		return b.title
	}
	return "BookID(" + strconv.Itoa(int(id)) + ")"
}

// Book is an immutable catalog entry: identity, title, recognition pattern
// and accepted abbreviations.
type Book struct {
	id            BookID
	title         string
	abbreviations []string
	pattern       *Pattern
}

// ID returns the ordinal id of the book.
func (b *Book) ID() BookID { return b.id }

// Title returns the common English title.
func (b *Book) Title() string { return b.title }

// Pattern returns the compiled recognition pattern.
func (b *Book) Pattern() *Pattern { return b.pattern }

// Abbreviations returns a copy of the accepted abbreviations.
func (b *Book) Abbreviations() []string {
	out := make([]string, len(b.abbreviations))
	copy(out, b.abbreviations)
	return out
}

func (b *Book) String() string { return b.title }
