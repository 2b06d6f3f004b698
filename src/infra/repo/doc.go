// Package repo contains implementations of the repository ports.
//
// This package implements ports.JokeRepository twice:
//   - JokeRepository (joke_repo.go): PostgreSQL through a pgx pool
//   - MemoryRepository (memory_repo.go): a mutex-guarded map, used by tests
//     and by APP_STORAGE_DRIVER=memory
//
// Both return domain not found errors for missing ids and wrap every
// other failure with the operation that produced it. Both order by id.
package repo
