package controller

import (
	"context"
	"errors"
	"log"

	"github.com/llehouerou/songlist/internal/favorites"
	"github.com/llehouerou/songlist/internal/song"
)

// Liker performs the real like/unlike of a song.
type Liker interface {
	SetLiked(ctx context.Context, rec song.Record, liked bool) error
}

// Songs looks up catalog records.
type Songs interface {
	Get(ctx context.Context, id uint64) (song.Record, error)
	ByAlbum(ctx context.Context, albumID uint64) ([]song.Record, error)
}

type localLiker struct {
	store *favorites.Store
}

// LocalLiker stores likes in the favorites table.
func LocalLiker(store *favorites.Store) Liker {
	return localLiker{store: store}
}

func (l localLiker) SetLiked(ctx context.Context, rec song.Record, liked bool) error {
	_, err := l.store.SetLiked(ctx, rec.ID, liked)
	return err
}

// Chain applies likers in order. When one fails, the ones that already
// succeeded are reverted on a best-effort basis.
type Chain []Liker

// SetLiked implements Liker.
func (c Chain) SetLiked(ctx context.Context, rec song.Record, liked bool) error {
	for i, l := range c {
		err := l.SetLiked(ctx, rec, liked)
		if err == nil {
			continue
		}
		// The caller's context may be what failed; revert regardless.
		revertCtx := context.WithoutCancel(ctx)
		for j := i - 1; j >= 0; j-- {
			if rerr := c[j].SetLiked(revertCtx, rec, !liked); rerr != nil {
				log.Printf("controller: revert like of song %d: %v", rec.ID, rerr)
				err = errors.Join(err, rerr)
			}
		}
		return err
	}
	return nil
}
