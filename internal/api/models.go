package api

import (
	"time"

	"github.com/flakeychalk/forcard/internal/domain"
	"github.com/flakeychalk/forcard/internal/form"
	"github.com/flakeychalk/forcard/internal/session"
	"github.com/google/uuid"
)

// AddCardRequest is the payload of POST /api/cards. Both fields must be
// present but may be empty.
type AddCardRequest struct {
	Question *string `json:"question" validate:"required"`
	Answer   *string `json:"answer"   validate:"required"`
}

// DraftTextRequest is the payload of the form field change handlers.
type DraftTextRequest struct {
	Text *string `json:"text" validate:"required"`
}

// PageQuery holds the list window parsed from the query string.
type PageQuery struct {
	Offset int `validate:"gte=0"`
	Limit  int `validate:"gte=1"`
}

// CardResponse is a committed card.
type CardResponse struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// CardViewResponse is a card as currently displayed.
type CardViewResponse struct {
	ID       uuid.UUID `json:"id"`
	Position int       `json:"position"`
	Face     string    `json:"face"`
	Text     string    `json:"text"`
	Flipped  bool      `json:"flipped"`
}

// FormResponse is the creation form state.
type FormResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Visible  bool   `json:"visible"`
}

// ScreenResponse is a page of the card list plus the form state.
type ScreenResponse struct {
	Cards      []CardViewResponse `json:"cards"`
	Total      int                `json:"total"`
	Offset     int                `json:"offset"`
	Limit      int                `json:"limit"`
	NextOffset *int               `json:"next_offset,omitempty"`
	Form       FormResponse       `json:"form"`
}

// ClearResponse reports the outcome of a clear.
type ClearResponse struct {
	Removed int `json:"removed"`
}

func cardToResponse(card domain.Card) CardResponse {
	return CardResponse{
		ID:        card.ID,
		Question:  card.Question,
		Answer:    card.Answer,
		CreatedAt: card.CreatedAt,
	}
}

func cardViewToResponse(view session.CardView) CardViewResponse {
	return CardViewResponse{
		ID:       view.ID,
		Position: view.Position,
		Face:     string(view.Face),
		Text:     view.Text,
		Flipped:  view.Flipped,
	}
}

func draftToResponse(draft form.Draft) FormResponse {
	return FormResponse{
		Question: draft.Question,
		Answer:   draft.Answer,
		Visible:  draft.Visible,
	}
}

func screenToResponse(screen session.Screen) ScreenResponse {
	cards := make([]CardViewResponse, len(screen.Cards))
	for i, view := range screen.Cards {
		cards[i] = cardViewToResponse(view)
	}

	resp := ScreenResponse{
		Cards:  cards,
		Total:  screen.Total,
		Offset: screen.Offset,
		Limit:  screen.Limit,
		Form:   draftToResponse(screen.Form),
	}
	if screen.HasMore() {
		next := screen.NextOffset()
		resp.NextOffset = &next
	}
	return resp
}
