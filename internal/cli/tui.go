package cli

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songlist/internal/app"
	"github.com/llehouerou/songlist/internal/catalog"
	"github.com/llehouerou/songlist/internal/config"
	"github.com/llehouerou/songlist/internal/controller"
	"github.com/llehouerou/songlist/internal/favorites"
	"github.com/llehouerou/songlist/internal/icons"
	"github.com/llehouerou/songlist/internal/lastfm"
	"github.com/llehouerou/songlist/internal/row"
	"github.com/llehouerou/songlist/internal/state"
	"github.com/llehouerou/songlist/internal/ui/action"
)

func runTUI(ctx context.Context, opts *Options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI; logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "songlist")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	songs := catalog.New(stateMgr.DB())
	favs := favorites.New(stateMgr.DB())

	if cfg.LibraryFile != "" {
		n, err := songs.ImportFile(ctx, cfg.LibraryFile)
		if err != nil {
			return fmt.Errorf("import %s: %w", cfg.LibraryFile, err)
		}
		log.Printf("imported %d songs from %s", n, cfg.LibraryFile)
	}

	records, err := songs.All(ctx)
	if err != nil {
		return err
	}
	liked, err := favs.LikedIDs(ctx)
	if err != nil {
		return err
	}

	dispatch := cfg.GetDispatchConfig()
	ch := action.NewChannel(dispatch.BufferSize)
	model := app.New(ch, row.ParsePolicy(dispatch.LikePolicy), records, liked)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	ctrl := controller.New(ch.Receive(), songs, newLiker(cfg, favs), p, controller.Options{
		Workers: dispatch.Workers,
		Timeout: dispatch.Timeout(),
	})

	ctrlCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctrlDone := make(chan error, 1)
	go func() { ctrlDone <- ctrl.Run(ctrlCtx) }()

	_, err = p.Run()

	// Rows can no longer send; in-flight operations are cancelled and
	// their completions dropped by the stopped program.
	ch.Close()
	cancel()
	if cerr := <-ctrlDone; cerr != nil {
		log.Printf("controller: %v", cerr)
	}
	return err
}

// newLiker applies likes locally, then on Last.fm when configured.
func newLiker(cfg *config.Config, favs *favorites.Store) controller.Liker {
	chain := controller.Chain{controller.LocalLiker(favs)}
	if cfg.HasLastfmConfig() {
		client := lastfm.New(cfg.Lastfm.APIKey, cfg.Lastfm.APISecret)
		client.SetSessionKey(cfg.Lastfm.SessionKey)
		chain = append(chain, client)
	}
	return chain
}
