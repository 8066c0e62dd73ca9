// Package todo implements classification and selective deletion of a user's
// todo items. Items related to a configured marker are kept; everything else
// can be purged through the owning data source.
package todo

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// DataSource supplies and removes todo items. Implementations own all
// persistence; one RetrieveTodos call must return a stable snapshot in a
// stable order.
type DataSource interface {
	RetrieveTodos(ctx context.Context, user string) ([]string, error)
	DeleteTodo(ctx context.Context, item string) error
}

// MatchFunc reports whether a todo item is related to the configured topic.
type MatchFunc func(item string) bool

// Option configures a FilterService.
type Option func(*FilterService)

// WithMarker classifies items by substring containment of marker.
func WithMarker(marker string) Option {
	return func(s *FilterService) {
		s.match = func(item string) bool {
			return strings.Contains(item, marker)
		}
	}
}

// WithMatchFunc classifies items with an arbitrary predicate.
func WithMatchFunc(match MatchFunc) Option {
	return func(s *FilterService) {
		s.match = match
	}
}

// FilterService classifies a user's todo items and purges the unrelated
// ones. It holds no state across calls; the DataSource is the sole owner of
// the underlying data.
type FilterService struct {
	source DataSource
	match  MatchFunc
}

// NewFilterService creates a FilterService over source. Without options it
// matches items containing DefaultMarker.
func NewFilterService(source DataSource, opts ...Option) *FilterService {
	s := &FilterService{
		source: source,
		match: func(item string) bool {
			return strings.Contains(item, DefaultMarker)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RetrieveMatching returns the items of user that satisfy the match
// predicate, preserving retrieval order. Retrieval errors propagate to the
// caller unchanged; no deletion is ever issued.
func (s *FilterService) RetrieveMatching(ctx context.Context, user string) ([]string, error) {
	items, err := s.source.RetrieveTodos(ctx, user)
	if err != nil {
		return nil, err
	}

	matching := make([]string, 0, len(items))
	for _, item := range items {
		if s.match(item) {
			matching = append(matching, item)
		}
	}
	return matching, nil
}

// PurgeNonMatching deletes every item of user that does not satisfy the
// match predicate, issuing exactly one DeleteTodo call per such item in
// retrieval order. A retrieval error aborts before any deletion. A deletion
// error aborts the remaining items; deletions already issued stand.
func (s *FilterService) PurgeNonMatching(ctx context.Context, user string) error {
	items, err := s.source.RetrieveTodos(ctx, user)
	if err != nil {
		return err
	}

	for _, item := range items {
		if s.match(item) {
			continue
		}
		if err := s.source.DeleteTodo(ctx, item); err != nil {
			return err
		}
		log.Debugf("Purged todo item for user %s", user)
	}
	return nil
}
