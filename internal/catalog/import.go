package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/songlist/internal/song"
)

// ErrInvalidEntry is returned when an imported song lacks an id or title.
var ErrInvalidEntry = errors.New("invalid catalog entry")

type libraryFile struct {
	Songs []libraryEntry `koanf:"songs"`
}

type libraryEntry struct {
	ID           uint64 `koanf:"id"`
	AlbumID      uint64 `koanf:"album_id"`
	Title        string `koanf:"title"`
	Artist       string `koanf:"artist"`
	Album        string `koanf:"album"`
	DurationSecs int    `koanf:"duration_secs"`
	CoverURL     string `koanf:"cover_url"`
}

// ReadFile parses a TOML library file made of [[songs]] tables.
func ReadFile(path string) ([]song.Record, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, err
	}

	var lf libraryFile
	if err := k.Unmarshal("", &lf); err != nil {
		return nil, err
	}

	records := make([]song.Record, 0, len(lf.Songs))
	for i, e := range lf.Songs {
		if e.ID == 0 || e.Title == "" {
			return nil, fmt.Errorf("%w: songs[%d] needs id and title", ErrInvalidEntry, i)
		}
		records = append(records, song.Record{
			ID:       e.ID,
			AlbumID:  e.AlbumID,
			Title:    e.Title,
			Artist:   e.Artist,
			Album:    e.Album,
			Length:   time.Duration(e.DurationSecs) * time.Second,
			CoverURL: e.CoverURL,
		})
	}
	return records, nil
}

// ImportFile reads a TOML library file into the catalog.
// Returns the number of songs imported.
func (c *Catalog) ImportFile(ctx context.Context, path string) (int, error) {
	records, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	if err := c.Upsert(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
