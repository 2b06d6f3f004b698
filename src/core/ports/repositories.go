// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"jokeapi/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// JokeRepository persists jokes in a single table.
//
// FindByID and Delete return a domain not found error when no row matches.
// FindAll and FindWithOffsetLimit share one storage-defined order so that
// an offset taken from Count addresses a stable position between calls
// that are not interleaved with writes.
type JokeRepository interface {
	Repository

	Create(ctx context.Context, question, answer string) (*domain.Joke, error)
	FindAll(ctx context.Context) ([]domain.Joke, error)
	FindByID(ctx context.Context, id int64) (*domain.Joke, error)
	Count(ctx context.Context) (int64, error)
	FindWithOffsetLimit(ctx context.Context, offset, limit int64) ([]domain.Joke, error)
	Delete(ctx context.Context, id int64) error
}
