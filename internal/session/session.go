package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/flakeychalk/forcard/internal/deck"
	"github.com/flakeychalk/forcard/internal/domain"
	"github.com/flakeychalk/forcard/internal/events"
	"github.com/flakeychalk/forcard/internal/form"
	"github.com/flakeychalk/forcard/internal/platform/logger"
	"github.com/google/uuid"
)

// Draft field names used in form.draft_changed payloads.
const (
	FieldQuestion = "question"
	FieldAnswer   = "answer"
)

// Options configures a Session.
type Options struct {
	// DismissPolicy decides whether the draft survives a dismiss.
	DismissPolicy form.DismissPolicy
	// Emitter receives an event after every change. Optional.
	// Handlers run after the change is applied and may call the read methods
	// (View, Form, Card, Cards, Len). They must not call a mutating method,
	// which would wait on the event in progress.
	Emitter events.EventEmitter
	// Logger is used for emitter failures and debug traces. Optional.
	Logger *slog.Logger
}

// Session is the root of a study screen: a card list, the Clear and
// New Flashcard actions, and the creation form.
type Session struct {
	mu      sync.Mutex
	emitMu  sync.Mutex
	cards   *deck.Collection
	flips   *deck.Flips
	form    *form.Form
	emitter events.EventEmitter
	logger  *slog.Logger
}

// New returns an empty session with the form closed.
func New(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		cards:   deck.NewCollection(),
		flips:   deck.NewFlips(),
		form:    form.New(opts.DismissPolicy),
		emitter: opts.Emitter,
		logger:  log.With(slog.String("component", "session")),
	}
}

// Append adds a card directly, bypassing the form.
func (s *Session) Append(ctx context.Context, question, answer string) domain.Card {
	s.lockForChange()
	card := s.cards.Append(question, answer)
	payload := s.addedPayload(card)
	s.publish(ctx, events.TypeCardAdded, payload)
	return card
}

// Clear removes every card and discards all flip state. It returns the
// number of cards removed.
func (s *Session) Clear(ctx context.Context) int {
	s.lockForChange()
	removed := s.cards.Clear()
	s.flips.Reset()
	s.requestLogger(ctx).Debug("deck cleared", slog.Int("removed", removed))
	s.publish(ctx, events.TypeDeckCleared, DeckClearedPayload{Removed: removed})
	return removed
}

// NewFlashcard opens the creation form.
func (s *Session) NewFlashcard(ctx context.Context) form.Draft {
	s.lockForChange()
	s.form.Open()
	draft := s.form.Draft()
	s.publish(ctx, events.TypeFormOpened, formPayload(draft, ""))
	return draft
}

// Toggle flips a card and returns its new view. It fails only when the card
// is not in the collection, for example because the deck was cleared.
func (s *Session) Toggle(ctx context.Context, id uuid.UUID) (CardView, error) {
	s.lockForChange()
	card, ok := s.cards.Get(id)
	if !ok {
		s.mu.Unlock()
		s.emitMu.Unlock()
		return CardView{}, domain.ErrCardNotFound
	}
	face := s.flips.Toggle(id)
	view := newCardView(card, s.cards.Position(id), face)
	s.publish(ctx, events.TypeCardFlipped, CardFlippedPayload{
		CardID: id,
		Face:   face,
		Text:   view.Text,
	})
	return view, nil
}

// UpdateQuestion is the change handler of the question field.
func (s *Session) UpdateQuestion(ctx context.Context, text string) form.Draft {
	s.lockForChange()
	s.form.UpdateQuestion(text)
	draft := s.form.Draft()
	s.publish(ctx, events.TypeFormDraftChanged, formPayload(draft, FieldQuestion))
	return draft
}

// UpdateAnswer is the change handler of the answer field.
func (s *Session) UpdateAnswer(ctx context.Context, text string) form.Draft {
	s.lockForChange()
	s.form.UpdateAnswer(text)
	draft := s.form.Draft()
	s.publish(ctx, events.TypeFormDraftChanged, formPayload(draft, FieldAnswer))
	return draft
}

// Submit commits the draft as a new card, resets the draft and closes the
// form. It succeeds for an empty draft too.
func (s *Session) Submit(ctx context.Context) domain.Card {
	s.lockForChange()
	card := s.form.Submit(s.cards.Append)
	payload := s.addedPayload(card)
	s.publish(ctx, events.TypeFormSubmitted, payload)
	return card
}

// Dismiss closes the form without submitting.
func (s *Session) Dismiss(ctx context.Context) form.Draft {
	s.lockForChange()
	s.form.Dismiss()
	draft := s.form.Draft()
	s.publish(ctx, events.TypeFormDismissed, formPayload(draft, ""))
	return draft
}

// Form returns the current form state.
func (s *Session) Form() form.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Draft()
}

// Len returns the number of cards.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cards.Len()
}

// Cards returns every card in display order.
func (s *Session) Cards() []domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cards.Cards()
}

// Card returns the current view of one card.
func (s *Session) Card(id uuid.UUID) (CardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards.Get(id)
	if !ok {
		return CardView{}, domain.ErrCardNotFound
	}
	return newCardView(card, s.cards.Position(id), s.flips.Face(id)), nil
}

// View renders a window of the card list together with the form state.
func (s *Session) View(offset, limit int) Screen {
	if offset < 0 {
		offset = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	window := s.cards.Window(offset, limit)
	views := make([]CardView, len(window))
	for i, card := range window {
		views[i] = newCardView(card, offset+i, s.flips.Face(card.ID))
	}

	return Screen{
		Cards:  views,
		Total:  s.cards.Len(),
		Offset: offset,
		Limit:  limit,
		Form:   s.form.Draft(),
	}
}

// addedPayload must be called with s.mu held.
func (s *Session) addedPayload(card domain.Card) CardAddedPayload {
	return CardAddedPayload{
		Card:     card,
		Position: s.cards.Position(card.ID),
		Total:    s.cards.Len(),
	}
}

// lockForChange takes the locks a mutation needs, emitMu before mu. The
// matching publish releases both. Events therefore leave in the order the
// changes were applied, and handlers may read the session while mu is free.
func (s *Session) lockForChange() {
	s.emitMu.Lock()
	s.mu.Lock()
}

// publish must be called after lockForChange. It releases mu, emits, then
// releases emitMu.
func (s *Session) publish(ctx context.Context, eventType string, payload interface{}) {
	s.mu.Unlock()
	defer s.emitMu.Unlock()
	s.emit(ctx, eventType, payload)
}

// requestLogger returns the request-scoped logger when ctx carries one,
// tagged with this component either way.
func (s *Session) requestLogger(ctx context.Context) *slog.Logger {
	if log := logger.FromContext(ctx); log != nil {
		return log.With(slog.String("component", "session"))
	}
	return s.logger
}

// emit publishes an event. Failures are logged and never reach the caller.
func (s *Session) emit(ctx context.Context, eventType string, payload interface{}) {
	if s.emitter == nil {
		return
	}
	log := s.requestLogger(ctx)

	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		log.Error("failed to build event", slog.String("event_type", eventType), slog.String("error", err.Error()))
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("event handler failed",
			slog.String("event_type", eventType),
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()))
	}
}

func formPayload(draft form.Draft, field string) FormPayload {
	return FormPayload{
		Question: draft.Question,
		Answer:   draft.Answer,
		Visible:  draft.Visible,
		Field:    field,
	}
}
