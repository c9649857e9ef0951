// Package song holds the immutable display data rows are built from.
package song

import (
	"fmt"
	"time"
)

// Snapshot is the display data captured once from a catalog record.
type Snapshot struct {
	ID       uint64 // Song identity
	AlbumID  uint64 // Identity of the album the song belongs to
	CoverURL string // Album cover locator

	Name     string
	Singer   string
	Album    string
	Duration string // Pre-formatted, e.g. "3:07"
}

// AlbumRef identifies an album page to navigate to.
type AlbumRef struct {
	ID       uint64
	Name     string
	CoverURL string
}

// AlbumRef returns a reference to the snapshot's album.
func (s Snapshot) AlbumRef() AlbumRef {
	return AlbumRef{
		ID:       s.AlbumID,
		Name:     s.Album,
		CoverURL: s.CoverURL,
	}
}

// Record is a catalog entry before it is formatted for display.
type Record struct {
	ID       uint64
	AlbumID  uint64
	Title    string
	Artist   string
	Album    string
	Length   time.Duration
	CoverURL string
}

// Snapshot formats the record's display fields.
func (r Record) Snapshot() Snapshot {
	return Snapshot{
		ID:       r.ID,
		AlbumID:  r.AlbumID,
		CoverURL: r.CoverURL,
		Name:     r.Title,
		Singer:   r.Artist,
		Album:    r.Album,
		Duration: FormatDuration(r.Length),
	}
}

// FormatDuration renders d as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
