// Package controller consumes the commands rows send and performs them off
// the UI goroutine. Results are posted back as messages; completions are
// never invoked here.
package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/songlist/internal/ui/action"
)

// Options tunes a Controller.
type Options struct {
	Workers int           // Maximum concurrent operations (default 4)
	Timeout time.Duration // Per-operation timeout (default 10s)
}

// Controller drains an action channel.
type Controller struct {
	in      <-chan action.Msg
	songs   Songs
	liker   Liker
	post    Poster
	workers int
	timeout time.Duration
}

// New creates a controller reading from in.
func New(in <-chan action.Msg, songs Songs, liker Liker, post Poster, opts Options) *Controller {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Controller{
		in:      in,
		songs:   songs,
		liker:   liker,
		post:    post,
		workers: opts.Workers,
		timeout: opts.Timeout,
	}
}

// Run processes commands until the channel is closed or ctx is done, then
// waits for in-flight operations. Every LikeSong taken off the channel gets
// exactly one CompletionMsg, including those still buffered when ctx ends.
func (c *Controller) Run(ctx context.Context) error {
	var g errgroup.Group
	g.SetLimit(c.workers)

	for {
		select {
		case <-ctx.Done():
			c.drain(ctx.Err())
			return g.Wait()
		case m, ok := <-c.in:
			if !ok {
				return g.Wait()
			}
			c.dispatch(ctx, &g, m)
		}
	}
}

func (c *Controller) dispatch(ctx context.Context, g *errgroup.Group, m action.Msg) {
	switch a := m.Action.(type) {
	case action.LikeSong:
		g.Go(func() error {
			c.like(ctx, a)
			return nil
		})
	case action.ToAlbumPage:
		g.Go(func() error {
			c.openAlbum(ctx, a)
			return nil
		})
	case nil:
		log.Printf("controller: empty action from %s", m.Source)
	default:
		log.Printf("controller: unhandled action %s from %s", a.ActionType(), m.Source)
	}
}

// drain completes commands left in the buffer after shutdown.
func (c *Controller) drain(err error) {
	for {
		select {
		case m, ok := <-c.in:
			if !ok {
				return
			}
			if a, isLike := m.Action.(action.LikeSong); isLike {
				c.complete(a, err)
			}
		default:
			return
		}
	}
}

func (c *Controller) like(ctx context.Context, a action.LikeSong) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("like song %d: panic: %v", a.ID, r)
		}
		c.complete(a, err)
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	rec, err := c.songs.Get(ctx, a.ID)
	if err != nil {
		err = fmt.Errorf("look up song %d: %w", a.ID, err)
		return
	}
	err = c.liker.SetLiked(ctx, rec, a.Like)
}

func (c *Controller) complete(a action.LikeSong, err error) {
	if err != nil {
		log.Printf("controller: like song %d -> %v: %v", a.ID, a.Like, err)
	}
	c.post.Send(Completed(a, err))
}

func (c *Controller) openAlbum(ctx context.Context, a action.ToAlbumPage) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	records, err := c.songs.ByAlbum(ctx, a.Album.ID)
	if err != nil {
		err = fmt.Errorf("load album %d: %w", a.Album.ID, err)
		log.Printf("controller: %v", err)
	}
	c.post.Send(AlbumPageMsg{Album: a.Album, Songs: records, Err: err})
}
