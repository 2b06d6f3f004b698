// Package stubs builds domain fixtures with fake content.
package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"jokeapi/src/core/domain"
)

// JokeStub builds a domain.Joke with random content. With* methods return
// a modified copy.
type JokeStub struct {
	joke domain.Joke
}

// NewJokeStub returns a stub with a fake question and answer.
func NewJokeStub() JokeStub {
	now := time.Now().UTC()

	return JokeStub{joke: domain.Joke{
		ID:        gofakeit.Int64(),
		Question:  gofakeit.Question(),
		Answer:    gofakeit.Sentence(6),
		CreatedAt: now,
		UpdatedAt: now,
	}}
}

func (js JokeStub) WithID(id int64) JokeStub {
	js.joke.ID = id
	return js
}

func (js JokeStub) WithQuestion(question string) JokeStub {
	js.joke.Question = question
	return js
}

func (js JokeStub) WithAnswer(answer string) JokeStub {
	js.joke.Answer = answer
	return js
}

// Get returns the built joke.
func (js JokeStub) Get() domain.Joke {
	return js.joke
}

// Many returns n stubs with distinct content.
func Many(n int) []domain.Joke {
	out := make([]domain.Joke, n)
	for i := range out {
		out[i] = NewJokeStub().Get()
	}
	return out
}
