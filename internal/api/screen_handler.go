package api

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flakeychalk/forcard/internal/api/shared"
	"github.com/flakeychalk/forcard/internal/domain"
	"github.com/flakeychalk/forcard/internal/platform/logger"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templateFS embed.FS

var screenTemplate = template.Must(template.ParseFS(templateFS, "templates/screen.html"))

// ScreenHandler serves the single study screen as server-rendered HTML.
// Every user action is a plain form post answered with a redirect back to
// the screen.
type ScreenHandler struct {
	session   StudySession
	paginator Paginator
	logger    *slog.Logger
}

// NewScreenHandler creates a new ScreenHandler
func NewScreenHandler(s StudySession, paginator Paginator, logger *slog.Logger) *ScreenHandler {
	if s == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("session cannot be nil for ScreenHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ScreenHandler{
		session:   s,
		paginator: paginator,
		logger:    logger.With(slog.String("component", "screen_handler")),
	}
}

// Render handles GET / requests.
func (h *ScreenHandler) Render(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	page, err := h.paginator.Parse(r)
	if err != nil {
		http.Error(w, GetSafeErrorMessage(err), MapErrorToStatusCode(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := screenTemplate.Execute(w, h.session.View(page.Offset, page.Limit)); err != nil {
		log.Error("failed to render screen", slog.String("error", err.Error()))
	}
}

// Clear handles POST /clear requests.
func (h *ScreenHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.session.Clear(r.Context())
	redirectToScreen(w, r, 0, uuid.Nil)
}

// NewFlashcard handles POST /new requests.
func (h *ScreenHandler) NewFlashcard(w http.ResponseWriter, r *http.Request) {
	h.session.NewFlashcard(r.Context())
	redirectToScreen(w, r, 0, uuid.Nil)
}

// Flip handles POST /cards/{id}/flip requests.
func (h *ScreenHandler) Flip(w http.ResponseWriter, r *http.Request) {
	cardID, err := getPathUUID(r, "id")
	if err != nil {
		http.Error(w, GetSafeErrorMessage(err), MapErrorToStatusCode(err))
		return
	}
	offset, err := formOffset(r)
	if err != nil {
		http.Error(w, GetSafeErrorMessage(err), MapErrorToStatusCode(err))
		return
	}

	if _, err := h.session.Toggle(r.Context(), cardID); err != nil {
		// The card vanished, e.g. cleared from another tab. Show the fresh screen.
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("flip of unknown card",
			slog.String("card_id", cardID.String()),
			slog.String("trace_id", shared.GetTraceID(r.Context())))
		redirectToScreen(w, r, 0, uuid.Nil)
		return
	}
	redirectToScreen(w, r, offset, cardID)
}

// Submit handles POST /form requests. The posted fields go through the
// change handlers before the draft is committed.
func (h *ScreenHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := h.applyDraft(r); err != nil {
		http.Error(w, GetSafeErrorMessage(err), MapErrorToStatusCode(err))
		return
	}
	h.session.Submit(r.Context())
	redirectToScreen(w, r, 0, uuid.Nil)
}

// Dismiss handles POST /form/dismiss requests. The posted fields are kept
// as the draft before the form closes.
func (h *ScreenHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	if err := h.applyDraft(r); err != nil {
		http.Error(w, GetSafeErrorMessage(err), MapErrorToStatusCode(err))
		return
	}
	h.session.Dismiss(r.Context())
	redirectToScreen(w, r, 0, uuid.Nil)
}

// applyDraft passes the posted fields to the change handlers. Nothing is
// applied when the body cannot be parsed.
func (h *ScreenHandler) applyDraft(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("failed to parse form",
			slog.String("error", err.Error()))
		return domain.NewValidationError("form", "could not be parsed", domain.ErrValidation)
	}
	if values, ok := r.PostForm["question"]; ok && len(values) > 0 {
		h.session.UpdateQuestion(r.Context(), values[0])
	}
	if values, ok := r.PostForm["answer"]; ok && len(values) > 0 {
		h.session.UpdateAnswer(r.Context(), values[0])
	}
	return nil
}

// formOffset reads the list offset posted with a flip. A missing value means
// the top of the list.
func formOffset(r *http.Request) (int, error) {
	raw := r.FormValue("offset")
	if raw == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, domain.NewValidationError("offset", "must be a non-negative integer", domain.ErrValidation)
	}
	return offset, nil
}

func redirectToScreen(w http.ResponseWriter, r *http.Request, offset int, anchor uuid.UUID) {
	target := url.URL{Path: "/"}
	if offset > 0 {
		target.RawQuery = url.Values{"offset": {strconv.Itoa(offset)}}.Encode()
	}
	if anchor != uuid.Nil {
		target.Fragment = fmt.Sprintf("card-%s", anchor)
	}
	http.Redirect(w, r, target.String(), http.StatusSeeOther)
}
