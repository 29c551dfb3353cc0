package verse

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/scripref/core/canon"
)

// Fingerprint returns the hex BLAKE3 digest of the table's chapter and
// verse counts. Two tables with the same bounds share a fingerprint.
func (t *Table) Fingerprint() string {
	h := blake3.New()
	var buf [8]byte
	for book := canon.Genesis; book <= canon.SecondMaccabees; book++ {
		binary.BigEndian.PutUint32(buf[:4], uint32(book))
		binary.BigEndian.PutUint32(buf[4:], uint32(len(t.counts[book])))
		h.Write(buf[:])
		for _, n := range t.counts[book] {
			binary.BigEndian.PutUint32(buf[:4], uint32(n))
			h.Write(buf[:4])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint returns the digest of the canonical verse count table.
func Fingerprint() string { return defaultTable.Fingerprint() }
