package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"jokeapi/src/core/domain"
	"jokeapi/src/core/ports"
)

var _ ports.JokeRepository = (*MemoryRepository)(nil)

// MemoryRepository keeps jokes in process memory. Ids start at 1 and are
// never reused, matching a serial column.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	jokes  map[int64]domain.Joke
	now    func() time.Time
}

// NewMemoryRepository returns an empty store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		jokes:  make(map[int64]domain.Joke),
		now:    time.Now,
	}
}

// Health always succeeds; there is nothing to reach.
func (r *MemoryRepository) Health(context.Context) error {
	return nil
}

// Create stores a joke under the next id.
func (r *MemoryRepository) Create(_ context.Context, question, answer string) (*domain.Joke, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	j := domain.Joke{
		ID:        r.nextID,
		Question:  question,
		Answer:    answer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.jokes[j.ID] = j
	r.nextID++
	return &j, nil
}

func (r *MemoryRepository) FindAll(context.Context) ([]domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ordered(), nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id int64) (*domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jokes[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgJokeNotFound)
	}
	return &j, nil
}

func (r *MemoryRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.jokes)), nil
}

// FindWithOffsetLimit pages through jokes in id order. An offset past the
// end yields an empty slice.
func (r *MemoryRepository) FindWithOffsetLimit(_ context.Context, offset, limit int64) ([]domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.ordered()
	if offset < 0 || offset >= int64(len(all)) || limit <= 0 {
		return []domain.Joke{}, nil
	}
	// compare against the remaining rows so offset+limit cannot overflow
	end := int64(len(all))
	if limit < end-offset {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jokes[id]; !ok {
		return domain.NewNotFoundError(domain.MsgJokeNotFound)
	}
	delete(r.jokes, id)
	return nil
}

// ordered returns a copy sorted by id. Caller holds the lock.
func (r *MemoryRepository) ordered() []domain.Joke {
	out := make([]domain.Joke, 0, len(r.jokes))
	for _, j := range r.jokes {
		out = append(out, j)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}
