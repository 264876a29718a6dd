// Package store holds the process-lifetime activity collection. State
// never outlives the process: the engine starts from a scenario or an
// empty reset, so there is no database behind this.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
)

type Store struct {
	byID  map[uuid.UUID]*activity.Activity
	order []uuid.UUID
}

func New() *Store {
	return &Store{byID: make(map[uuid.UUID]*activity.Activity)}
}

// InsertActivities appends the batch in request order. The store keeps
// its own copies; callers mutate through UpdateActivity only.
func (s *Store) InsertActivities(_ context.Context, acts []*activity.Activity) error {
	for _, a := range acts {
		s.byID[a.ID] = a.Clone()
		s.order = append(s.order, a.ID)
	}

	return nil
}

func (s *Store) GetActivity(_ context.Context, id uuid.UUID) (*activity.Activity, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, activity.ErrNotFound
	}

	return a.Clone(), nil
}

// ListActivities returns the collection in insertion order.
func (s *Store) ListActivities(_ context.Context) ([]*activity.Activity, error) {
	out := make([]*activity.Activity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}

	return out, nil
}

func (s *Store) UpdateActivity(_ context.Context, a *activity.Activity) error {
	if _, ok := s.byID[a.ID]; !ok {
		return activity.ErrNotFound
	}

	s.byID[a.ID] = a.Clone()

	return nil
}

func (s *Store) Reset(_ context.Context) error {
	s.byID = make(map[uuid.UUID]*activity.Activity)
	s.order = nil

	return nil
}
