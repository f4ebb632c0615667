package repository

import (
	"context"

	"ecosync/internal/models"
)

// HistoryRepo keeps the rolling report history, newest entry first.
type HistoryRepo interface {
	Prepend(ctx context.Context, e models.HistoryEntry) error
	List(ctx context.Context) ([]models.HistoryEntry, error)
	SetReview(ctx context.Context, id, review string) error
}

// FactoryLog receives every successfully generated history entry.
type FactoryLog interface {
	Publish(ctx context.Context, e models.HistoryEntry) error
	Close() error
}

type Repository struct {
	History    HistoryRepo
	FactoryLog FactoryLog
}

// NewRepository wires the in-memory history with the given factory log.
// A nil factory log disables publishing.
func NewRepository(factoryLog FactoryLog) *Repository {
	if factoryLog == nil {
		factoryLog = NopFactoryLog{}
	}
	return &Repository{
		History:    NewHistoryMemory(HistoryLimit),
		FactoryLog: factoryLog,
	}
}
