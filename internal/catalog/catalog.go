// Package catalog stores the songs the list displays.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/songlist/internal/db"
	"github.com/llehouerou/songlist/internal/song"
)

// ErrNotFound is returned when a song is not in the catalog.
var ErrNotFound = errors.New("song not found")

// Catalog provides database operations on the songs table. IDs are stored as
// their int64 bit pattern since database/sql rejects uint64 values with the
// high bit set.
type Catalog struct {
	db *sql.DB
}

// New creates a new Catalog.
func New(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

const selectSongs = `
	SELECT id, album_id, title, artist, album, duration_secs, cover_url
	FROM songs
`

// Upsert inserts or replaces the given songs in one transaction.
func (c *Catalog) Upsert(ctx context.Context, records []song.Record) error {
	now := time.Now().Unix()
	return dbutil.WithTxContext(ctx, c.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO songs (id, album_id, title, artist, album, duration_secs, cover_url, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				album_id = excluded.album_id,
				title = excluded.title,
				artist = excluded.artist,
				album = excluded.album,
				duration_secs = excluded.duration_secs,
				cover_url = excluded.cover_url,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range records {
			_, err := stmt.ExecContext(ctx,
				int64(r.ID), int64(r.AlbumID), r.Title, r.Artist, r.Album,
				int64(r.Length/time.Second), r.CoverURL, now,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// All returns every song ordered by artist, album and title.
func (c *Catalog) All(ctx context.Context) ([]song.Record, error) {
	return c.query(ctx, selectSongs+`
		ORDER BY artist COLLATE NOCASE, album COLLATE NOCASE, title COLLATE NOCASE
	`)
}

// ByAlbum returns the songs of one album in insertion (id) order.
func (c *Catalog) ByAlbum(ctx context.Context, albumID uint64) ([]song.Record, error) {
	return c.query(ctx, selectSongs+`
		WHERE album_id = ?
		ORDER BY id
	`, int64(albumID))
}

// Get returns a single song.
func (c *Catalog) Get(ctx context.Context, id uint64) (song.Record, error) {
	records, err := c.query(ctx, selectSongs+`WHERE id = ?`, int64(id))
	if err != nil {
		return song.Record{}, err
	}
	if len(records) == 0 {
		return song.Record{}, ErrNotFound
	}
	return records[0], nil
}

// Count returns the number of songs in the catalog.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM songs`).Scan(&n)
	return n, err
}

func (c *Catalog) query(ctx context.Context, q string, args ...any) ([]song.Record, error) {
	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []song.Record
	for rows.Next() {
		var r song.Record
		var id, albumID, secs int64
		if err := rows.Scan(&id, &albumID, &r.Title, &r.Artist, &r.Album, &secs, &r.CoverURL); err != nil {
			return nil, err
		}
		r.ID, r.AlbumID = uint64(id), uint64(albumID)
		r.Length = time.Duration(secs) * time.Second
		records = append(records, r)
	}
	return records, rows.Err()
}
