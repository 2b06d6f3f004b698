package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokeapi/src/core/domain"
	"jokeapi/src/core/ports"
	"jokeapi/src/infra/db"
	"jokeapi/src/infra/logger"
)

var _ ports.JokeRepository = (*JokeRepository)(nil)

// JokeRepository implements ports.JokeRepository using pgx.
type JokeRepository struct {
	pg   *db.Postgres
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewJokeRepository constructs a repository backed by Postgres.
func NewJokeRepository(pg *db.Postgres, log *slog.Logger) *JokeRepository {
	return &JokeRepository{
		pg:   pg,
		pool: pg.Pool,
		log:  logger.WithComponent(log, "joke_repo"),
	}
}

// Health delegates to the underlying pool's bounded ping.
func (r *JokeRepository) Health(ctx context.Context) error {
	return r.pg.Health(ctx)
}

const jokeColumns = `id, question, answer, created_at, updated_at`

// Create inserts a joke and returns the stored row.
func (r *JokeRepository) Create(ctx context.Context, question, answer string) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (question, answer)
		VALUES ($1, $2)
		RETURNING ` + jokeColumns
	row := r.pool.QueryRow(ctx, q, question, answer)
	j, err := scanJoke(row)
	if err != nil {
		return nil, fmt.Errorf("insert joke: %w", err)
	}
	r.log.Debug("joke inserted", "id", j.ID)
	return j, nil
}

// FindAll and FindWithOffsetLimit both order by id.
func (r *JokeRepository) FindAll(ctx context.Context) ([]domain.Joke, error) {
	const q = `SELECT ` + jokeColumns + ` FROM jokes ORDER BY id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list jokes: %w", err)
	}
	return collectJokes(rows)
}

// FindByID returns domain.ErrNotFound when no row matches.
func (r *JokeRepository) FindByID(ctx context.Context, id int64) (*domain.Joke, error) {
	const q = `SELECT ` + jokeColumns + ` FROM jokes WHERE id = $1`
	j, err := scanJoke(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.MsgJokeNotFound)
		}
		return nil, fmt.Errorf("get joke %d: %w", id, err)
	}
	return j, nil
}

// Count returns the number of stored jokes.
func (r *JokeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM jokes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count jokes: %w", err)
	}
	return n, nil
}

func (r *JokeRepository) FindWithOffsetLimit(ctx context.Context, offset, limit int64) ([]domain.Joke, error) {
	const q = `SELECT ` + jokeColumns + ` FROM jokes ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("page jokes (offset %d, limit %d): %w", offset, limit, err)
	}
	return collectJokes(rows)
}

// Delete removes one row; zero affected rows means not found.
func (r *JokeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM jokes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete joke %d: %w", id, err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.MsgJokeNotFound)
	}
	r.log.Debug("joke deleted", "id", id)
	return nil
}

func scanJoke(row pgx.Row) (*domain.Joke, error) {
	var j domain.Joke
	if err := row.Scan(&j.ID, &j.Question, &j.Answer, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}

func collectJokes(rows pgx.Rows) ([]domain.Joke, error) {
	jokes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Joke, error) {
		j, err := scanJoke(row)
		if err != nil {
			return domain.Joke{}, err
		}
		return *j, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan jokes: %w", err)
	}
	return jokes, nil
}
