// Package bookmarks keeps the user's bookmarked job ids. The set is written
// through to storage on every toggle; storage problems are logged and never
// reach the caller.
package bookmarks

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"github.com/jimezsa/jobboard/internal/storage"
	"github.com/rs/zerolog"
)

// StorageKey is the key the full set is persisted under.
const StorageKey = "bookmarkedJobs"

// Store keeps ids in insertion order for persistence and a set for lookups.
type Store struct {
	storage storage.Storage
	logger  zerolog.Logger
	order   []int
	ids     map[int]struct{}
}

// Open restores the persisted set. Missing, malformed or unreadable data
// yields an empty set.
func Open(ctx context.Context, st storage.Storage, logger zerolog.Logger) *Store {
	s := &Store{
		storage: st,
		logger:  logger.With().Str("component", "bookmarks").Logger(),
		ids:     map[int]struct{}{},
	}
	if st == nil {
		return s
	}

	raw, ok, err := st.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("read bookmarks")
		return s
	}
	if !ok {
		return s
	}

	ids, err := Decode(raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("decode bookmarks; starting empty")
		return s
	}
	for _, id := range ids {
		if _, dup := s.ids[id]; dup {
			continue
		}
		s.ids[id] = struct{}{}
		s.order = append(s.order, id)
	}
	s.logger.Debug().Int("count", len(s.ids)).Msg("bookmarks loaded")
	return s
}

func (s *Store) IsBookmarked(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Toggle flips membership of id, persists the whole set, and returns the new
// membership. New ids are appended, so toggling an absent id twice leaves the
// persisted encoding unchanged.
func (s *Store) Toggle(ctx context.Context, id int) bool {
	_, present := s.ids[id]
	if present {
		delete(s.ids, id)
		if i := slices.Index(s.order, id); i >= 0 {
			s.order = slices.Delete(s.order, i, i+1)
		}
	} else {
		s.ids[id] = struct{}{}
		s.order = append(s.order, id)
	}
	s.persist(ctx)
	return !present
}

// IDs returns the bookmarked ids in the order they were added.
func (s *Store) IDs() []int {
	return slices.Clone(s.order)
}

func (s *Store) Len() int {
	return len(s.ids)
}

func (s *Store) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Set(ctx, StorageKey, Encode(s.IDs())); err != nil {
		s.logger.Error().Err(err).Msg("write bookmarks")
	}
}

// Encode renders ids as a JSON array of integers.
func Encode(ids []int) string {
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// Decode parses a JSON array of integers; blank input is an empty list.
func Decode(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return []int{}, nil
	}
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		return []int{}, nil
	}
	return ids, nil
}
