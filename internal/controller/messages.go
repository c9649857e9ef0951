package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui/action"
)

// Poster delivers messages to the UI goroutine. *tea.Program satisfies it.
type Poster interface {
	Send(msg tea.Msg)
}

// PostFunc adapts a function to Poster.
type PostFunc func(tea.Msg)

// Send implements Poster.
func (f PostFunc) Send(msg tea.Msg) { f(msg) }

// CompletionMsg carries a finished like operation back to the UI goroutine.
// The receiver must call Apply exactly once, from Update.
type CompletionMsg struct {
	SongID  uint64
	Like    bool // Requested value
	Outcome action.Outcome

	complete action.Completion
}

// Completed builds the completion message of a like command that finished
// with err. On failure the reported flag is the one the song had before.
func Completed(a action.LikeSong, err error) CompletionMsg {
	liked := a.Like
	if err != nil {
		liked = !a.Like
	}
	return CompletionMsg{
		SongID:   a.ID,
		Like:     a.Like,
		Outcome:  action.Outcome{Liked: liked, Err: err},
		complete: a.OnComplete,
	}
}

// Apply runs the command's completion, if it had one.
func (m CompletionMsg) Apply() {
	m.complete.Invoke(m.Outcome)
}

// AlbumPageMsg is posted when an album page has been loaded.
type AlbumPageMsg struct {
	Album song.AlbumRef
	Songs []song.Record
	Err   error
}
