package dto

import (
	"time"

	"jokeapi/src/core/domain"
	"jokeapi/src/core/usecase"
)

// CreateJokeRequest is the payload for POST /jokes. Presence and length
// are checked by the joke service, not by binding tags, so that failures
// carry the offending field.
type CreateJokeRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (r *CreateJokeRequest) ToInput() usecase.CreateJokeInput {
	return usecase.CreateJokeInput{
		Question: r.Question,
		Answer:   r.Answer,
	}
}

// JokeResponse is the JSON form of a joke.
type JokeResponse struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func JokeFromDomain(j *domain.Joke) JokeResponse {
	return JokeResponse{
		ID:        j.ID,
		Question:  j.Question,
		Answer:    j.Answer,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

// JokesFromDomain never returns nil, so an empty list encodes as [].
func JokesFromDomain(jokes []domain.Joke) []JokeResponse {
	out := make([]JokeResponse, 0, len(jokes))
	for i := range jokes {
		out = append(out, JokeFromDomain(&jokes[i]))
	}
	return out
}
