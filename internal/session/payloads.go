package session

import (
	"github.com/flakeychalk/forcard/internal/domain"
	"github.com/google/uuid"
)

// CardAddedPayload accompanies events.TypeCardAdded and events.TypeFormSubmitted.
type CardAddedPayload struct {
	Card     domain.Card `json:"card"`
	Position int         `json:"position"`
	Total    int         `json:"total"`
}

// DeckClearedPayload accompanies events.TypeDeckCleared.
type DeckClearedPayload struct {
	Removed int `json:"removed"`
}

// CardFlippedPayload accompanies events.TypeCardFlipped.
type CardFlippedPayload struct {
	CardID uuid.UUID   `json:"card_id"`
	Face   domain.Face `json:"face"`
	Text   string      `json:"text"`
}

// FormPayload accompanies the form.* events.
type FormPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Visible  bool   `json:"visible"`
	// Field names the buffer that changed on form.draft_changed.
	Field string `json:"field,omitempty"`
}
