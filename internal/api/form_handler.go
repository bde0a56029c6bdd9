package api

import (
	"log/slog"
	"net/http"

	"github.com/flakeychalk/forcard/internal/api/shared"
	"github.com/flakeychalk/forcard/internal/platform/logger"
)

// FormHandler handles creation form HTTP requests
type FormHandler struct {
	session StudySession
	logger  *slog.Logger
}

// NewFormHandler creates a new FormHandler
func NewFormHandler(s StudySession, logger *slog.Logger) *FormHandler {
	if s == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("session cannot be nil for FormHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FormHandler{
		session: s,
		logger:  logger.With(slog.String("component", "form_handler")),
	}
}

// GetForm handles GET /api/form requests.
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, draftToResponse(h.session.Form()))
}

// OpenForm handles POST /api/form/open requests.
func (h *FormHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	draft := h.session.NewFlashcard(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, draftToResponse(draft))
}

// UpdateQuestion handles PUT /api/form/question requests.
func (h *FormHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req DraftTextRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	draft := h.session.UpdateQuestion(r.Context(), *req.Text)
	shared.RespondWithJSON(w, r, http.StatusOK, draftToResponse(draft))
}

// UpdateAnswer handles PUT /api/form/answer requests.
func (h *FormHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	var req DraftTextRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	draft := h.session.UpdateAnswer(r.Context(), *req.Text)
	shared.RespondWithJSON(w, r, http.StatusOK, draftToResponse(draft))
}

// SubmitForm handles POST /api/form/submit requests.
// The draft is committed even when empty.
func (h *FormHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	card := h.session.Submit(r.Context())

	log.Debug("form submitted", slog.String("card_id", card.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// DismissForm handles POST /api/form/dismiss requests.
func (h *FormHandler) DismissForm(w http.ResponseWriter, r *http.Request) {
	draft := h.session.Dismiss(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, draftToResponse(draft))
}
