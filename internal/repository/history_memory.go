package repository

import (
	"context"
	"errors"
	"sync"

	"ecosync/internal/models"
)

// HistoryLimit is the maximum number of entries kept in the history.
const HistoryLimit = 10

var ErrEntryNotFound = errors.New("history entry not found")

type HistoryMemory struct {
	mu      sync.RWMutex
	entries []models.HistoryEntry
	limit   int
}

func NewHistoryMemory(limit int) *HistoryMemory {
	if limit <= 0 {
		limit = HistoryLimit
	}
	return &HistoryMemory{
		entries: make([]models.HistoryEntry, 0, limit),
		limit:   limit,
	}
}

// Prepend puts e at the front and evicts the oldest entries beyond the limit.
func (r *HistoryMemory) Prepend(ctx context.Context, e models.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]models.HistoryEntry, 0, r.limit)
	next = append(next, e)
	next = append(next, r.entries...)
	if len(next) > r.limit {
		next = next[:r.limit]
	}
	r.entries = next
	return nil
}

// List returns a copy of the history, newest first.
func (r *HistoryMemory) List(ctx context.Context) ([]models.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.HistoryEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// SetReview updates the review state of the entry with the given id.
func (r *HistoryMemory) SetReview(ctx context.Context, id, review string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries[i].Review = review
			return nil
		}
	}
	return ErrEntryNotFound
}
