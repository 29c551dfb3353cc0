package selfcheck

import (
	"github.com/FocuswithJustin/scripref/core/canon"
)

// Collision is a reference whose book name is also a prefix or fragment of
// another book's name or abbreviation.
type Collision struct {
	Text   string       `json:"text"`
	Want   canon.BookID `json:"want"`
	Reject canon.BookID `json:"reject"`
}

// KnownCollisions are the abbreviation pairs the catalog has to keep apart.
var KnownCollisions = []Collision{
	{"Philemon 1:9", canon.Philemon, canon.Philippians},
	{"Philippians 4:13", canon.Philippians, canon.Philemon},
	{"Phil 4:13", canon.Philippians, canon.Philemon},
	{"Joshua 1:1", canon.Joshua, canon.John},
	{"Job 1:1", canon.Job, canon.John},
	{"Jonah 1:1", canon.Jonah, canon.John},
	{"Joel 1:1", canon.Joel, canon.John},
	{"Judges 1:1", canon.Judges, canon.Jude},
	{"Ecclesiasticus 1:1", canon.Ecclesiasticus, canon.Ecclesiastes},
	{"Ecclus 1:1", canon.Ecclesiasticus, canon.Ecclesiastes},
	{"1 John 1:1", canon.FirstJohn, canon.John},
	{"I John 1:1", canon.FirstJohn, canon.John},
	{"3 John 1:1", canon.ThirdJohn, canon.John},
	{"Zeph 1:1", canon.Zephaniah, canon.Ephesians},
	{"Hebrews 1:1", canon.Hebrews, canon.WisdomOfSolomon},
}
