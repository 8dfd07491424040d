package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"loan-tranche/domain"
)

// SearchRepositoryMemory is an in-memory SearchRepository. When full it
// drops the oldest search.
type SearchRepositoryMemory struct {
	mu       sync.RWMutex
	byID     map[string]domain.SearchOutcome
	order    []string
	capacity int
}

func NewSearchRepositoryMemory(capacity int) *SearchRepositoryMemory {
	return &SearchRepositoryMemory{
		byID:     make(map[string]domain.SearchOutcome),
		capacity: capacity,
	}
}

// Save assigns an id and a timestamp and stores the outcome.
func (r *SearchRepositoryMemory) Save(outcome domain.SearchOutcome) (domain.SearchOutcome, error) {
	outcome.ID = uuid.New().String()
	outcome.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.capacity > 0 && len(r.order) >= r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.byID, oldest)
	}
	r.byID[outcome.ID] = outcome
	r.order = append(r.order, outcome.ID)

	return outcome, nil
}

func (r *SearchRepositoryMemory) FindByID(id string) (domain.SearchOutcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	outcome, ok := r.byID[id]
	if !ok {
		return domain.SearchOutcome{}, ErrSearchNotFound
	}
	return outcome, nil
}
