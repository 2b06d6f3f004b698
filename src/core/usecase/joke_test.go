package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokeapi/src/core/domain"
	"jokeapi/src/core/usecase"
	"jokeapi/src/infra/logger"
	"jokeapi/src/infra/repo"
	"jokeapi/src/testutil/stubs"
)

var errBoom = errors.New("connection refused")

// failingRepo wraps a working store; each flag breaks one operation.
type failingRepo struct {
	*repo.MemoryRepository

	failCreate   bool
	failFindAll  bool
	failFindByID bool
	failCount    bool
	failPage     bool
	failDelete   bool

	// pageOverride, when non-nil, is returned by FindWithOffsetLimit.
	pageOverride []domain.Joke
}

func (f *failingRepo) Create(ctx context.Context, q, a string) (*domain.Joke, error) {
	if f.failCreate {
		return nil, errBoom
	}
	return f.MemoryRepository.Create(ctx, q, a)
}

func (f *failingRepo) FindAll(ctx context.Context) ([]domain.Joke, error) {
	if f.failFindAll {
		return nil, errBoom
	}
	return f.MemoryRepository.FindAll(ctx)
}

func (f *failingRepo) FindByID(ctx context.Context, id int64) (*domain.Joke, error) {
	if f.failFindByID {
		return nil, errBoom
	}
	return f.MemoryRepository.FindByID(ctx, id)
}

func (f *failingRepo) Count(ctx context.Context) (int64, error) {
	if f.failCount {
		return 0, errBoom
	}
	return f.MemoryRepository.Count(ctx)
}

func (f *failingRepo) FindWithOffsetLimit(ctx context.Context, offset, limit int64) ([]domain.Joke, error) {
	if f.failPage {
		return nil, errBoom
	}
	if f.pageOverride != nil {
		return f.pageOverride, nil
	}
	return f.MemoryRepository.FindWithOffsetLimit(ctx, offset, limit)
}

func (f *failingRepo) Delete(ctx context.Context, id int64) error {
	if f.failDelete {
		return errBoom
	}
	return f.MemoryRepository.Delete(ctx, id)
}

func newService(t *testing.T, opts ...usecase.JokeServiceOption) (*usecase.JokeService, *failingRepo) {
	t.Helper()
	r := &failingRepo{MemoryRepository: repo.NewMemoryRepository()}
	return usecase.NewJokeService(r, logger.Discard(), opts...), r
}

func TestCreateAssignsFreshIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	seen := map[int64]bool{}
	for _, s := range stubs.Many(5) {
		j, err := svc.Create(ctx, usecase.CreateJokeInput{Question: s.Question, Answer: s.Answer})
		require.NoError(t, err)
		assert.False(t, seen[j.ID], "id %d reused", j.ID)
		seen[j.ID] = true
		assert.Equal(t, s.Question, j.Question)
		assert.Equal(t, s.Answer, j.Answer)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name  string
		in    usecase.CreateJokeInput
		field string
	}{
		{"missing question", usecase.CreateJokeInput{Answer: "a"}, "question"},
		{"missing answer", usecase.CreateJokeInput{Question: "q"}, "answer"},
		{"blank answer", usecase.CreateJokeInput{Question: "q", Answer: "   "}, "answer"},
		{"both missing", usecase.CreateJokeInput{}, "question"},
		{"too long", usecase.CreateJokeInput{Question: strings.Repeat("x", domain.MaxJokeFieldLength+1), Answer: "a"}, "question"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			svc, r := newService(t)

			_, err := svc.Create(ctx, tc.in)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))

			var de *domain.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.field, de.Field)

			n, err := r.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, n, "nothing persisted")
		})
	}
}

func TestCreateAcceptsMaximumLength(t *testing.T) {
	svc, _ := newService(t)
	long := strings.Repeat("é", domain.MaxJokeFieldLength)

	_, err := svc.Create(context.Background(), usecase.CreateJokeInput{Question: long, Answer: long})
	assert.NoError(t, err)
}

func TestListReturnsEveryJoke(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	empty, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, s := range stubs.Many(4) {
		_, err := svc.Create(ctx, usecase.CreateJokeInput{Question: s.Question, Answer: s.Answer})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for _, j := range all {
		got, err := svc.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, j, *got)
	}
}

func TestRandomOnEmptyStore(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Random(context.Background())
	assert.True(t, domain.IsNotFound(err))
}

func TestRandomDrawsFromFullRange(t *testing.T) {
	ctx := context.Background()
	var drawn []int64
	svc, _ := newService(t, usecase.WithRandomSource(func(n int64) int64 {
		off := int64(len(drawn)) % n
		drawn = append(drawn, n)
		return off
	}))

	var ids []int64
	for _, s := range stubs.Many(3) {
		j, err := svc.Create(ctx, usecase.CreateJokeInput{Question: s.Question, Answer: s.Answer})
		require.NoError(t, err)
		ids = append(ids, j.ID)
	}

	for i := 0; i < 3; i++ {
		j, err := svc.Random(ctx)
		require.NoError(t, err)
		assert.Equal(t, ids[i], j.ID)
	}
	assert.Equal(t, []int64{3, 3, 3}, drawn, "offset drawn against the current count")
}

func TestRandomEventuallyReturnsEveryJoke(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	want := map[int64]bool{}
	for _, s := range stubs.Many(5) {
		j, err := svc.Create(ctx, usecase.CreateJokeInput{Question: s.Question, Answer: s.Answer})
		require.NoError(t, err)
		want[j.ID] = true
	}

	got := map[int64]bool{}
	for i := 0; i < 1000 && len(got) < len(want); i++ {
		j, err := svc.Random(ctx)
		require.NoError(t, err)
		got[j.ID] = true
	}
	assert.Equal(t, want, got)
}

func TestRandomOffsetPastEndAfterConcurrentDelete(t *testing.T) {
	ctx := context.Background()
	svc, r := newService(t)
	_, err := svc.Create(ctx, usecase.CreateJokeInput{Question: "q", Answer: "a"})
	require.NoError(t, err)
	r.pageOverride = []domain.Joke{}

	_, err = svc.Random(ctx)
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	j, err := svc.Create(ctx, usecase.CreateJokeInput{
		Question: "Quelle est la femelle du hamster ?",
		Answer:   "L'amsterdam",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), j.ID)

	msg, err := svc.Delete(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "Joke deleted successfully.", msg)

	_, err = svc.Get(ctx, j.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteMissingLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, r := newService(t)
	_, err := svc.Create(ctx, usecase.CreateJokeInput{Question: "q", Answer: "a"})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, 99)
	assert.True(t, domain.IsNotFound(err))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStorageFailuresSurfaceAsStorageErrors(t *testing.T) {
	ctx := context.Background()
	svc, r := newService(t)
	j, err := svc.Create(ctx, usecase.CreateJokeInput{Question: "q", Answer: "a"})
	require.NoError(t, err)

	checks := []struct {
		name string
		fail func()
		call func() error
	}{
		{"create", func() { r.failCreate = true }, func() error {
			_, err := svc.Create(ctx, usecase.CreateJokeInput{Question: "q", Answer: "a"})
			return err
		}},
		{"list", func() { r.failFindAll = true }, func() error { _, err := svc.List(ctx); return err }},
		{"count", func() { r.failCount = true }, func() error { _, err := svc.Random(ctx); return err }},
		{"page", func() { r.failPage = true }, func() error { _, err := svc.Random(ctx); return err }},
		{"get", func() { r.failFindByID = true }, func() error { _, err := svc.Get(ctx, j.ID); return err }},
		{"delete lookup", func() { r.failFindByID = true }, func() error { _, err := svc.Delete(ctx, j.ID); return err }},
		{"delete", func() { r.failDelete = true }, func() error { _, err := svc.Delete(ctx, j.ID); return err }},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			*r = failingRepo{MemoryRepository: r.MemoryRepository}
			c.fail()

			err := c.call()
			require.Error(t, err)
			assert.True(t, domain.IsStorageError(err))
			assert.ErrorIs(t, err, errBoom)
		})
	}
}
