// Test program driving the like pipeline without a terminal: rows toggle,
// the controller writes to an in-memory database, and completions are
// applied on a single goroutine standing in for the UI loop.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songlist/internal/catalog"
	"github.com/llehouerou/songlist/internal/controller"
	"github.com/llehouerou/songlist/internal/favorites"
	"github.com/llehouerou/songlist/internal/row"
	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/state"
	"github.com/llehouerou/songlist/internal/ui/action"
)

const songCount = 8

func main() {
	ctx := context.Background()

	stateMgr, err := state.OpenMemory()
	if err != nil {
		log.Fatalf("Failed to open state: %v", err)
	}
	defer stateMgr.Close()

	songs := catalog.New(stateMgr.DB())
	favs := favorites.New(stateMgr.DB())

	records := make([]song.Record, songCount)
	for i := range records {
		records[i] = song.Record{
			ID:      uint64(i + 1),
			AlbumID: 1,
			Title:   fmt.Sprintf("Track %d", i+1),
			Artist:  "Test Artist",
			Album:   "Test Album",
			Length:  3 * time.Minute,
		}
	}
	if err := songs.Upsert(ctx, records); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	ch := action.NewChannel(songCount)
	ui := make(chan tea.Msg, songCount)
	ctrl := controller.New(ch.Receive(), songs, controller.LocalLiker(favs),
		controller.PostFunc(func(msg tea.Msg) { ui <- msg }), controller.Options{})

	ctrlCtx, cancel := context.WithCancel(ctx)
	ctrlDone := make(chan error, 1)
	go func() { ctrlDone <- ctrl.Run(ctrlCtx) }()

	// Everything below runs on this goroutine only, like bubbletea's Update.
	reg := row.NewRegistry(row.PolicyNegate)
	rows := make([]*row.Row, len(records))
	for i, rec := range records {
		r := reg.Create()
		r.InitializeFrom(rec.Snapshot())
		r.AttachSender(ch)
		r.Observe(func(v bool) { log.Printf("  row %d liked=%v", rec.ID, v) })
		rows[i] = r
	}

	log.Printf("Toggling %d rows, destroying every other one before completion", len(rows))
	for i, r := range rows {
		if err := r.ToggleLike(); err != nil {
			log.Fatalf("Failed to toggle row %d: %v", i, err)
		}
		if i%2 == 1 {
			reg.Destroy(r.Handle())
			rows[i] = nil
		}
	}

	for range rows {
		msg := <-ui
		done, ok := msg.(controller.CompletionMsg)
		if !ok {
			log.Printf("Unexpected message %T", msg)
			continue
		}
		log.Printf("Completion for song %d: liked=%v err=%v", done.SongID, done.Outcome.Liked, done.Outcome.Err)
		done.Apply()
	}

	ch.Close()
	cancel()
	if err := <-ctrlDone; err != nil {
		log.Fatalf("Controller failed: %v", err)
	}

	count, err := favs.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count favorites: %v", err)
	}
	log.Printf("Live rows: %d, liked songs in database: %d", reg.Len(), count)
}
