// Package session owns the ambient "currently selected chain" that the
// search box, navbar toggle and feed views all read. One store, one
// writer, many readers; nothing keeps a parallel local copy.
package session

import (
	"sync"

	"chainlens/internal/model"
)

type Store struct {
	mu     sync.RWMutex
	active model.Chain
}

func New(initial model.Chain) *Store {
	return &Store{active: initial}
}

func (s *Store) Active() model.Chain {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *Store) SetActive(c model.Chain) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = c
}

// Toggle flips to the other supported chain and returns the new value.
func (s *Store) Toggle() model.Chain {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = s.active.Other()
	return s.active
}
