// Package store holds the in-memory participants, works and results.
//
// A Store lives for the whole process. All methods are safe for concurrent
// use; new ids are assigned under the write lock so parallel creates never
// collide.
package store

import (
	"errors"
	"sync"

	"soc-api/internal/models"
	"soc-api/internal/seed"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	mu           sync.RWMutex
	participants []models.Participant
	works        []models.Work
	results      []models.Result
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewSeeded returns a store preloaded with d. Records are copied.
func NewSeeded(d seed.Data) *Store {
	return &Store{
		participants: append([]models.Participant(nil), d.Participants...),
		works:        append([]models.Work(nil), d.Works...),
		results:      append([]models.Result(nil), d.Results...),
	}
}

// ---------- Participants ----------

func (s *Store) ListParticipants() []models.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Participant{}, s.participants...)
}

// AddParticipant assigns the next id to p, ignoring any id it carries.
func (s *Store) AddParticipant(p models.Participant) models.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.participants {
		maxID = max(maxID, existing.ID)
	}
	p.ID = maxID + 1
	s.participants = append(s.participants, p)
	return p
}

// ---------- Works ----------

func (s *Store) ListWorks() []models.Work {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Work{}, s.works...)
}

// AddWork assigns the next id to w, ignoring any id it carries.
func (s *Store) AddWork(w models.Work) models.Work {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.works {
		maxID = max(maxID, existing.ID)
	}
	w.ID = maxID + 1
	s.works = append(s.works, w)
	return w
}

// DeleteWork removes the first work with the given id.
func (s *Store) DeleteWork(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, w := range s.works {
		if w.ID == id {
			s.works = append(s.works[:i], s.works[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---------- Results ----------

func (s *Store) ListResults() []models.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Result{}, s.results...)
}

// Counts returns the current collection sizes.
func (s *Store) Counts() (participants, works, results int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.participants), len(s.works), len(s.results)
}
