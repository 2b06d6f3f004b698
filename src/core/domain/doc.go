// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: the Joke, a question/answer pair identified by a storage-assigned id
//   - Domain Errors: validation, not-found and storage failures
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//
// Example:
//
//	joke := domain.Joke{Question: "Quelle est la femelle du hamster ?", Answer: "L'amsterdam"}
//	if err := repo.Delete(ctx, joke.ID); domain.IsNotFound(err) {
//	    // already gone
//	}
package domain
