package session

import (
	"github.com/flakeychalk/forcard/internal/domain"
	"github.com/flakeychalk/forcard/internal/form"
	"github.com/google/uuid"
)

// CardView is a card as it should be rendered right now.
type CardView struct {
	ID       uuid.UUID   `json:"id"`
	Position int         `json:"position"`
	Face     domain.Face `json:"face"`
	Text     string      `json:"text"`
	Flipped  bool        `json:"flipped"`
}

// Screen is a render snapshot of the session. Cards holds only the requested
// window of the list.
type Screen struct {
	Cards  []CardView `json:"cards"`
	Total  int        `json:"total"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
	Form   form.Draft `json:"form"`
}

// HasMore reports whether cards exist past the rendered window.
func (s Screen) HasMore() bool {
	return s.Offset+len(s.Cards) < s.Total
}

// NextOffset returns the offset of the window following this one.
func (s Screen) NextOffset() int {
	return s.Offset + len(s.Cards)
}

func newCardView(card domain.Card, position int, face domain.Face) CardView {
	return CardView{
		ID:       card.ID,
		Position: position,
		Face:     face,
		Text:     card.Text(face),
		Flipped:  face.IsFlipped(),
	}
}
