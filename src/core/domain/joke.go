package domain

import "time"

// MaxJokeFieldLength is the column width of question and answer.
const MaxJokeFieldLength = 255

// Joke is a question/answer pair. ID is assigned by storage on creation
// and never changes; there is no update path.
type Joke struct {
	ID        int64
	Question  string
	Answer    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Client-facing messages.
const (
	DeleteConfirmation = "Joke deleted successfully."
	MsgJokeNotFound    = "Joke not found"
	MsgNoJokes         = "No jokes in DB"
)
