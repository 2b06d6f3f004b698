// Package comparer holds go-cmp options shared by tests.
package comparer

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"jokeapi/src/core/domain"
)

// IgnoreFieldsFor ignores the named fields of T.
func IgnoreFieldsFor[T any](fields ...string) cmp.Option {
	var t T
	return cmpopts.IgnoreFields(t, fields...)
}

// JokeContent compares jokes by question and answer only.
func JokeContent() cmp.Option {
	return IgnoreFieldsFor[domain.Joke]("ID", "CreatedAt", "UpdatedAt")
}

// JokeIgnoringTimestamps compares id, question and answer.
func JokeIgnoringTimestamps() cmp.Option {
	return IgnoreFieldsFor[domain.Joke]("CreatedAt", "UpdatedAt")
}
