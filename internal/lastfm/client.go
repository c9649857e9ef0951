// Package lastfm mirrors liked songs to Last.fm as loved tracks.
package lastfm

import (
	"context"
	"errors"
	"fmt"

	"github.com/shkh/lastfm-go/lastfm"

	"github.com/llehouerou/songlist/internal/song"
)

var (
	// ErrNotAuthenticated is returned when an operation requires authentication.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrMissingMetadata is returned when a song lacks the artist or title Last.fm matches on.
	ErrMissingMetadata = errors.New("song has no artist or title")
)

// trackAPI is the subset of the lastfm-go track API the client uses.
type trackAPI interface {
	Love(args map[string]interface{}) error
	UnLove(args map[string]interface{}) error
}

// Client wraps the Last.fm API for love/unlove operations.
type Client struct {
	api        *lastfm.Api
	track      trackAPI
	sessionKey string
}

// New creates a new Last.fm client with the given API credentials.
func New(apiKey, apiSecret string) *Client {
	api := lastfm.New(apiKey, apiSecret)
	return &Client{
		api:   api,
		track: api.Track,
	}
}

// SetSessionKey sets the authenticated session key.
func (c *Client) SetSessionKey(key string) {
	c.sessionKey = key
	if c.api != nil {
		c.api.SetSession(key)
	}
}

// IsAuthenticated returns true if a session key is set.
func (c *Client) IsAuthenticated() bool {
	return c.sessionKey != ""
}

// SetLiked loves or unloves the song's track on Last.fm.
//
// lastfm-go has no context support; when ctx ends first the call keeps
// running in the background and its result is dropped.
func (c *Client) SetLiked(ctx context.Context, rec song.Record, liked bool) error {
	if !c.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if rec.Artist == "" || rec.Title == "" {
		return fmt.Errorf("song %d: %w", rec.ID, ErrMissingMetadata)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := lastfm.P{
		"artist": rec.Artist,
		"track":  rec.Title,
	}

	op, call := "love", c.track.Love
	if !liked {
		op, call = "unlove", c.track.UnLove
	}

	done := make(chan error, 1)
	go func() { done <- call(params) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s track: %w", op, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
