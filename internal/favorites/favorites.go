// Package favorites persists which songs the user liked.
package favorites

import (
	"context"
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/songlist/internal/db"
)

// Store provides database operations on the liked_songs table. Song IDs are
// stored as their int64 bit pattern since database/sql rejects uint64 values
// with the high bit set.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new Store.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// IsLiked checks if a song is liked.
func (s *Store) IsLiked(ctx context.Context, songID uint64) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM liked_songs WHERE song_id = ?
	`, int64(songID)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetLiked records the liked flag of a song. Setting the current value again
// is a no-op and keeps the original liked_at. Returns the stored value.
func (s *Store) SetLiked(ctx context.Context, songID uint64, liked bool) (bool, error) {
	err := dbutil.WithTxContext(ctx, s.db, func(tx *sql.Tx) error {
		if !liked {
			_, err := tx.ExecContext(ctx, `DELETE FROM liked_songs WHERE song_id = ?`, int64(songID))
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO liked_songs (song_id, liked_at) VALUES (?, ?)
		`, int64(songID), s.now().Unix())
		return err
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// LikedIDs returns all liked song IDs as a map for efficient lookup.
func (s *Store) LikedIDs(ctx context.Context) (map[uint64]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT song_id FROM liked_songs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	liked := make(map[uint64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		liked[uint64(id)] = true
	}
	return liked, rows.Err()
}

// Count returns the number of liked songs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM liked_songs`).Scan(&n)
	return n, err
}
