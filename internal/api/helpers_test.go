package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flakeychalk/forcard/internal/api/shared"
	"github.com/flakeychalk/forcard/internal/events"
	"github.com/flakeychalk/forcard/internal/form"
	"github.com/flakeychalk/forcard/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var testPaginator = Paginator{DefaultLimit: 20, MaxLimit: 100}

type testEnv struct {
	session *session.Session
	emitter *events.InMemoryEventEmitter
	router  chi.Router
}

func newTestEnv(t *testing.T, policy form.DismissPolicy) *testEnv {
	t.Helper()

	emitter := events.NewInMemoryEventEmitter(nil)
	sess := session.New(session.Options{DismissPolicy: policy, Emitter: emitter})

	cards := NewCardHandler(sess, testPaginator, nil)
	forms := NewFormHandler(sess, nil)
	screen := NewScreenHandler(sess, testPaginator, nil)

	r := chi.NewRouter()
	r.Get("/", screen.Render)
	r.Post("/clear", screen.Clear)
	r.Post("/new", screen.NewFlashcard)
	r.Post("/cards/{id}/flip", screen.Flip)
	r.Post("/form", screen.Submit)
	r.Post("/form/dismiss", screen.Dismiss)
	r.Route("/api", func(r chi.Router) {
		r.Get("/cards", cards.ListCards)
		r.Post("/cards", cards.AddCard)
		r.Delete("/cards", cards.ClearCards)
		r.Get("/cards/{id}", cards.GetCard)
		r.Post("/cards/{id}/flip", cards.FlipCard)
		r.Get("/form", forms.GetForm)
		r.Post("/form/open", forms.OpenForm)
		r.Put("/form/question", forms.UpdateQuestion)
		r.Put("/form/answer", forms.UpdateAnswer)
		r.Post("/form/submit", forms.SubmitForm)
		r.Post("/form/dismiss", forms.DismissForm)
	})

	return &testEnv{session: sess, emitter: emitter, router: r}
}

// do sends a request through the router. A non-empty body is sent as JSON.
func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(shared.SetTraceID(context.Background()))

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
