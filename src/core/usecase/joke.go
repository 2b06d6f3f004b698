package usecase

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"jokeapi/src/core/domain"
	"jokeapi/src/core/ports"
)

// CreateJokeInput is the validated shape of a new joke.
type CreateJokeInput struct {
	Question string `json:"question" validate:"required,notblank,max=255"`
	Answer   string `json:"answer" validate:"required,notblank,max=255"`
}

// JokeService implements the joke operations over an injected repository.
type JokeService struct {
	repo      ports.JokeRepository
	log       *slog.Logger
	validator *InputValidator
	intn      func(n int64) int64
}

// JokeServiceOption customizes a JokeService.
type JokeServiceOption func(*JokeService)

// WithRandomSource replaces the offset generator used by Random.
// intn must return a value in [0, n).
func WithRandomSource(intn func(n int64) int64) JokeServiceOption {
	return func(s *JokeService) {
		s.intn = intn
	}
}

// NewJokeService creates a JokeService. Offsets for Random come from
// math/rand/v2 unless WithRandomSource overrides them.
func NewJokeService(repo ports.JokeRepository, log *slog.Logger, opts ...JokeServiceOption) *JokeService {
	s := &JokeService{
		repo:      repo,
		log:       log,
		validator: NewInputValidator(),
		intn:      rand.Int64N,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the input and persists a new joke.
func (s *JokeService) Create(ctx context.Context, in CreateJokeInput) (*domain.Joke, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}
	joke, err := s.repo.Create(ctx, in.Question, in.Answer)
	if err != nil {
		return nil, s.storageError("create", err)
	}
	s.log.Info("joke created", "id", joke.ID)
	return joke, nil
}

// List returns every joke; an empty store yields an empty, non-nil slice.
func (s *JokeService) List(ctx context.Context) ([]domain.Joke, error) {
	jokes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.storageError("find_all", err)
	}
	if jokes == nil {
		jokes = []domain.Joke{}
	}
	return jokes, nil
}

// Random counts the jokes, draws an offset in [0, count) and returns the
// joke at that position. Count and fetch are separate calls, so a delete
// in between can leave the offset pointing past the end; that surfaces as
// not found.
func (s *JokeService) Random(ctx context.Context) (*domain.Joke, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, s.storageError("count", err)
	}
	if count == 0 {
		return nil, domain.NewNotFoundError(domain.MsgNoJokes)
	}

	// Pick a position and fetch the single row there
	offset := s.intn(count)
	page, err := s.repo.FindWithOffsetLimit(ctx, offset, 1)
	if err != nil {
		return nil, s.storageError("find_with_offset_limit", err)
	}
	if len(page) == 0 {
		s.log.Warn("random offset past end of table", "offset", offset, "count", count)
		return nil, domain.NewNotFoundError(domain.MsgNoJokes)
	}
	return &page[0], nil
}

// Get returns the joke with the given id.
func (s *JokeService) Get(ctx context.Context, id int64) (*domain.Joke, error) {
	joke, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewNotFoundError(domain.MsgJokeNotFound)
		}
		return nil, s.storageError("find_by_id", err)
	}
	return joke, nil
}

// Delete removes the joke with the given id and returns the confirmation
// message.
func (s *JokeService) Delete(ctx context.Context, id int64) (string, error) {
	// Check existence first so a missing id is reported as not found
	if _, err := s.Get(ctx, id); err != nil {
		return "", err
	}

	// A concurrent delete can still win the race here
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return "", domain.NewNotFoundError(domain.MsgJokeNotFound)
		}
		return "", s.storageError("delete", err)
	}
	s.log.Info("joke deleted", "id", id)
	return domain.DeleteConfirmation, nil
}

// storageError logs a failed repository call and wraps it as ErrStorage.
func (s *JokeService) storageError(op string, err error) error {
	s.log.Error("storage operation failed", "op", op, "error", err)
	return domain.NewStorageError(op, err)
}
