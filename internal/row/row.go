// Package row implements the per-row state of the song list and the protocol
// rows use to dispatch commands whose completions may outlive them.
package row

import (
	"fmt"

	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui/action"
)

// Source is the action.Msg source of commands sent by rows.
const Source = "songrow"

// Row is the mutable state behind one visible list row.
// Rows are created by a Registry and must only be used on the UI goroutine.
type Row struct {
	reg    *Registry
	handle Handle

	snapshot    song.Snapshot
	initialized bool

	liked     bool
	observers []func(bool)

	sender action.Sender
}

// Handle returns the row's non-owning self reference.
func (r *Row) Handle() Handle {
	return r.handle
}

// InitializeFrom sets the row's snapshot. Panics if called twice.
func (r *Row) InitializeFrom(s song.Snapshot) {
	if r.initialized {
		panic(fmt.Sprintf("row: song %d initialized twice", r.snapshot.ID))
	}
	r.snapshot = s
	r.initialized = true
}

// Snapshot returns the display data the row was initialized from.
func (r *Row) Snapshot() song.Snapshot {
	return r.snapshot
}

// AttachSender sets the channel commands are sent on. Panics if called twice.
func (r *Row) AttachSender(s action.Sender) {
	if s == nil {
		panic("row: nil sender")
	}
	if r.sender != nil {
		panic(fmt.Sprintf("row: song %d sender attached twice", r.snapshot.ID))
	}
	r.sender = s
}

// Liked returns the current flag value.
func (r *Row) Liked() bool {
	return r.liked
}

// SetLiked overwrites the flag and notifies observers before returning.
func (r *Row) SetLiked(v bool) {
	r.liked = v
	for _, fn := range r.observers {
		fn(v)
	}
}

// Observe registers fn to be called with every value passed to SetLiked.
func (r *Row) Observe(fn func(bool)) {
	r.observers = append(r.observers, fn)
}

// ToggleLike asks the controller to set the flag to the negation of its
// current value. The row itself is left untouched; the completion applies
// the result if the row is still alive when it runs.
//
// If the row is destroyed first, the value it would have committed goes to
// the registry's OnOrphan function instead.
//
// A non-nil error means the command could not be queued and wraps
// action.ErrFull or action.ErrClosed.
func (r *Row) ToggleLike() error {
	sender := r.mustSender()

	prev, id := r.liked, r.snapshot.ID
	reg, h, policy := r.reg, r.handle, r.reg.policy
	var sent uint64
	done := action.Once(func(o action.Outcome) {
		v := policy.commit(prev, o)
		target := reg.Resolve(h)
		if target == nil {
			if reg.orphan != nil {
				reg.orphan(Orphan{SongID: id, Liked: v, Sent: sent})
			}
			return
		}
		target.SetLiked(v)
	})

	err := sender.Send(action.Msg{
		Source: Source,
		Action: action.LikeSong{
			ID:         r.snapshot.ID,
			Like:       !prev,
			OnComplete: done,
		},
	})
	if err != nil {
		return fmt.Errorf("like song %d: %w", r.snapshot.ID, err)
	}
	// Completions run on this goroutine, so none can read sent before this.
	sent = reg.markSent(id)
	return nil
}

// GoToAlbum asks the controller to open the album page of the row's song.
func (r *Row) GoToAlbum() error {
	sender := r.mustSender()

	err := sender.Send(action.Msg{
		Source: Source,
		Action: action.ToAlbumPage{Album: r.snapshot.AlbumRef()},
	})
	if err != nil {
		return fmt.Errorf("open album %d: %w", r.snapshot.AlbumID, err)
	}
	return nil
}

func (r *Row) mustSender() action.Sender {
	if !r.initialized {
		panic("row: used before InitializeFrom")
	}
	if r.sender == nil {
		panic(fmt.Sprintf("row: song %d has no sender attached", r.snapshot.ID))
	}
	return r.sender
}
