package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/flakeychalk/forcard/internal/api/shared"
	"github.com/flakeychalk/forcard/internal/domain"
	"github.com/flakeychalk/forcard/internal/form"
	"github.com/flakeychalk/forcard/internal/platform/logger"
	"github.com/flakeychalk/forcard/internal/session"
	"github.com/google/uuid"
)

// StudySession is the set of session operations the handlers need.
// *session.Session implements it.
type StudySession interface {
	Append(ctx context.Context, question, answer string) domain.Card
	Clear(ctx context.Context) int
	NewFlashcard(ctx context.Context) form.Draft
	Toggle(ctx context.Context, id uuid.UUID) (session.CardView, error)
	UpdateQuestion(ctx context.Context, text string) form.Draft
	UpdateAnswer(ctx context.Context, text string) form.Draft
	Submit(ctx context.Context) domain.Card
	Dismiss(ctx context.Context) form.Draft
	Form() form.Draft
	Card(id uuid.UUID) (session.CardView, error)
	View(offset, limit int) session.Screen
}

// CardHandler handles card list HTTP requests
type CardHandler struct {
	session   StudySession
	paginator Paginator
	logger    *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(s StudySession, paginator Paginator, logger *slog.Logger) *CardHandler {
	if s == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("session cannot be nil for CardHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CardHandler{
		session:   s,
		paginator: paginator,
		logger:    logger.With(slog.String("component", "card_handler")),
	}
}

// ListCards handles GET /api/cards requests.
// It returns one window of the card list as currently displayed.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	page, err := h.paginator.Parse(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	screen := h.session.View(page.Offset, page.Limit)
	shared.RespondWithJSON(w, r, http.StatusOK, screenToResponse(screen))
}

// AddCard handles POST /api/cards requests.
func (h *CardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AddCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card := h.session.Append(r.Context(), *req.Question, *req.Answer)

	log.Debug("card added", slog.String("card_id", card.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// ClearCards handles DELETE /api/cards requests.
func (h *CardHandler) ClearCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	removed := h.session.Clear(r.Context())

	log.Debug("deck cleared", slog.Int("removed", removed))
	shared.RespondWithJSON(w, r, http.StatusOK, ClearResponse{Removed: removed})
}

// GetCard handles GET /api/cards/{id} requests.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	view, err := h.session.Card(cardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardViewToResponse(view))
}

// FlipCard handles POST /api/cards/{id}/flip requests.
// It toggles the card between its question and answer sides.
func (h *CardHandler) FlipCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, err := getPathUUID(r, "id")
	if err != nil {
		log.Warn("invalid card ID", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	view, err := h.session.Toggle(r.Context(), cardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("card flipped",
		slog.String("card_id", cardID.String()),
		slog.String("face", string(view.Face)))
	shared.RespondWithJSON(w, r, http.StatusOK, cardViewToResponse(view))
}
