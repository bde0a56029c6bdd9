package deck

import (
	"github.com/flakeychalk/forcard/internal/domain"
	"github.com/google/uuid"
)

// Flips tracks which cards currently show their answer, keyed by card ID.
// A card without an entry shows its question.
type Flips struct {
	flipped map[uuid.UUID]bool
}

// NewFlips returns flip state with every card on its question side.
func NewFlips() *Flips {
	return &Flips{flipped: make(map[uuid.UUID]bool)}
}

// Toggle flips the card and returns the face now displayed.
func (f *Flips) Toggle(id uuid.UUID) domain.Face {
	next := f.Face(id).Flip()
	if next.IsFlipped() {
		f.flipped[id] = true
	} else {
		delete(f.flipped, id)
	}
	return next
}

// Face returns the face currently displayed for the card.
func (f *Flips) Face(id uuid.UUID) domain.Face {
	if f.flipped[id] {
		return domain.FaceAnswer
	}
	return domain.FaceQuestion
}

// Forget drops the state for one card.
func (f *Flips) Forget(id uuid.UUID) {
	delete(f.flipped, id)
}

// Reset drops the state of every card.
func (f *Flips) Reset() {
	f.flipped = make(map[uuid.UUID]bool)
}

// Len returns the number of cards showing their answer.
func (f *Flips) Len() int {
	return len(f.flipped)
}
