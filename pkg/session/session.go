// Package session drives the interactive lookup: player name, item query, report, repeat.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/minhyannv/auction-finder-go/pkg/auction"
	loggerpkg "github.com/minhyannv/auction-finder-go/pkg/logger"
)

const (
	PromptUsername = "Please, insert a player name: "
	PromptItem     = "Please, insert auction item name: "

	InvalidName        = "Invalid name!"
	InvalidAuctionName = "Invalid auction name!"

	separator = "----------------------"
)

// Resolver maps a player name to its unique id.
type Resolver interface {
	ResolveIdentity(ctx context.Context, username string) (string, error)
}

// Fetcher lists the active auctions of a player id.
type Fetcher interface {
	FetchListings(ctx context.Context, playerID string) ([]auction.Listing, error)
}

type state int

const (
	awaitingUsername state = iota
	awaitingItemQuery
	reporting
)

// Session holds the collaborators of one interactive run.
type Session struct {
	resolver  Resolver
	fetcher   Fetcher
	threshold float64

	in  io.Reader
	out io.Writer

	notice  *color.Color
	failure *color.Color
	header  *color.Color

	logger  loggerpkg.Logger
	verbose bool
}

// Option configures a Session.
type Option func(*Session)

// WithThreshold overrides auction.DefaultThreshold.
func WithThreshold(t float64) Option {
	return func(s *Session) {
		s.threshold = t
	}
}

// WithLogger injects a logger; debug output is emitted only when verbose is set.
func WithLogger(l loggerpkg.Logger, verbose bool) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
		s.verbose = verbose
	}
}

// WithColor turns coloured notices off when enabled is false.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		if enabled {
			return
		}
		s.notice.DisableColor()
		s.failure.DisableColor()
		s.header.DisableColor()
	}
}

// New builds a Session reading answers from in and writing prompts and results to out.
func New(resolver Resolver, fetcher Fetcher, in io.Reader, out io.Writer, opts ...Option) (*Session, error) {
	if resolver == nil {
		return nil, errors.New("identity resolver is required")
	}
	if fetcher == nil {
		return nil, errors.New("listing fetcher is required")
	}
	if in == nil {
		return nil, errors.New("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	s := &Session{
		resolver:  resolver,
		fetcher:   fetcher,
		threshold: auction.DefaultThreshold,
		in:        in,
		out:       out,
		notice:    color.New(color.FgYellow),
		failure:   color.New(color.FgRed),
		header:    color.New(color.Bold),
		logger:    loggerpkg.NopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Run loops until the input ends (nil) or ctx is cancelled (ctx.Err()).
// Lookup failures are reported and the loop starts over; they never end the run.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	lines := newLineReader(s.in)
	defer lines.close()

	st := awaitingUsername
	var held, matches []auction.Listing
	for {
		var err error
		switch st {
		case awaitingUsername:
			st, held, err = s.awaitUsername(ctx, lines)
		case awaitingItemQuery:
			st, matches, err = s.awaitItemQuery(ctx, lines, held)
		case reporting:
			s.report(matches)
			held, matches = nil, nil
			st = awaitingUsername
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.debugf("session end: input closed")
				return nil
			}
			return err
		}
	}
}

func (s *Session) awaitUsername(ctx context.Context, lines *lineReader) (state, []auction.Listing, error) {
	_, _ = fmt.Fprint(s.out, PromptUsername)
	username, err := lines.readLine(ctx)
	if err != nil {
		return awaitingUsername, nil, err
	}
	if username == "" {
		_, _ = s.notice.Fprintln(s.out, InvalidName)
		return awaitingUsername, nil, nil
	}

	listings, err := s.lookup(ctx, username)
	if err != nil {
		if ctx.Err() != nil {
			return awaitingUsername, nil, ctx.Err()
		}
		_, _ = s.failure.Fprintln(s.out, describe(err, username))
		return awaitingUsername, nil, nil
	}
	return awaitingItemQuery, listings, nil
}

func (s *Session) lookup(ctx context.Context, username string) ([]auction.Listing, error) {
	id, err := s.resolver.ResolveIdentity(ctx, username)
	if err != nil {
		loggerpkg.Debug(s.verbose, s.logger, "resolve identity failed", map[string]any{"username": username, "error": err.Error()})
		return nil, err
	}
	s.debugf("resolved %s to %s", username, id)

	listings, err := s.fetcher.FetchListings(ctx, id)
	if err != nil {
		loggerpkg.Debug(s.verbose, s.logger, "fetch listings failed", map[string]any{"player": id, "error": err.Error()})
		return nil, err
	}
	loggerpkg.Debug(s.verbose, s.logger, "listings fetched", map[string]any{"player": id, "count": len(listings)})
	return listings, nil
}

// awaitItemQuery restarts at the username prompt on an empty query rather than asking again.
func (s *Session) awaitItemQuery(ctx context.Context, lines *lineReader, held []auction.Listing) (state, []auction.Listing, error) {
	_, _ = fmt.Fprint(s.out, PromptItem)
	query, err := lines.readLine(ctx)
	if err != nil {
		return awaitingItemQuery, nil, err
	}
	if query == "" {
		_, _ = s.notice.Fprintln(s.out, InvalidAuctionName)
		return awaitingUsername, nil, nil
	}

	matches := auction.FilterBySimilarity(query, held, s.threshold)
	loggerpkg.Debug(s.verbose, s.logger, "listings filtered", map[string]any{
		"query":     query,
		"threshold": s.threshold,
		"kept":      len(matches),
		"total":     len(held),
	})
	return reporting, matches, nil
}

func (s *Session) report(matches []auction.Listing) {
	_, _ = fmt.Fprintln(s.out, separator)
	_, _ = s.header.Fprintln(s.out, "Result:")

	enc := json.NewEncoder(s.out)
	enc.SetEscapeHTML(false)
	for _, l := range matches {
		_, _ = fmt.Fprintln(s.out, separator)
		if err := enc.Encode(l); err != nil {
			loggerpkg.Error(s.logger, "encode listing", map[string]any{"uuid": l.ID, "error": err.Error()})
		}
	}
	_, _ = fmt.Fprintln(s.out, separator)
}

func describe(err error, username string) string {
	switch {
	case errors.Is(err, auction.ErrIdentityNotFound):
		return "Player not found: " + username
	case errors.Is(err, auction.ErrAuthRejected):
		return "API key rejected: " + err.Error()
	default:
		return "Service unavailable: " + err.Error()
	}
}

func (s *Session) debugf(format string, args ...any) {
	loggerpkg.Debugf(s.verbose, s.logger, format, args...)
}
