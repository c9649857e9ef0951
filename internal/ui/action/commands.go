package action

import "github.com/llehouerou/songlist/internal/song"

// LikeSong requests the liked flag of a song to be set to Like.
// OnComplete, when non-nil, is invoked once the operation is known to have
// finished, on the UI goroutine.
type LikeSong struct {
	ID         uint64
	Like       bool
	OnComplete Completion
}

// ActionType implements Action.
func (a LikeSong) ActionType() string { return "song.like" }

// ToAlbumPage requests navigation to an album page. Fire-and-forget.
type ToAlbumPage struct {
	Album song.AlbumRef
}

// ActionType implements Action.
func (a ToAlbumPage) ActionType() string { return "song.to_album_page" }
