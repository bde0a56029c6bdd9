package domain

import (
	"time"

	"github.com/google/uuid"
)

// Face identifies which side of a card is displayed.
type Face string

const (
	// FaceQuestion is the initial side of every newly created or rendered card.
	FaceQuestion Face = "question"
	// FaceAnswer is shown after a single flip.
	FaceAnswer Face = "answer"
)

// Flip returns the opposite face.
func (f Face) Flip() Face {
	if f == FaceAnswer {
		return FaceQuestion
	}
	return FaceAnswer
}

// IsFlipped reports whether the face is the answer side.
func (f Face) IsFlipped() bool {
	return f == FaceAnswer
}

// Card is a question/answer pair with a stable identity.
// Question and Answer are set once at creation; there is no edit operation.
// Empty text is permitted on either side.
type Card struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCard creates a Card with a fresh random ID.
func NewCard(question, answer string) Card {
	return Card{
		ID:        uuid.New(),
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	}
}

// Text returns the text displayed for the given face.
func (c Card) Text(face Face) string {
	if face == FaceAnswer {
		return c.Answer
	}
	return c.Question
}
