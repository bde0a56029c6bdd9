package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/flakeychalk/forcard/internal/form"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) postForm(t *testing.T, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return e.postRaw(t, path, values.Encode())
}

// postRaw posts an already encoded form body.
func (e *testEnv) postRaw(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func TestRenderScreen(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, form.PreserveDraft)

	t.Run("Empty deck", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

		body := rr.Body.String()
		assert.Contains(t, body, "No flashcards yet.")
		assert.Contains(t, body, `action="/clear"`)
		assert.Contains(t, body, `action="/new"`)
		assert.NotContains(t, body, `class="overlay"`)
	})

	card := env.session.Append(ctx, "<b>bold</b>?", "yes")
	env.session.Toggle(ctx, card.ID)
	env.session.Append(ctx, "plain", "answer")

	t.Run("Cards and flip state", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, rr.Code)

		body := rr.Body.String()
		assert.Contains(t, body, fmt.Sprintf(`action="/cards/%s/flip"`, card.ID))
		assert.Contains(t, body, `class="card flipped"`)
		assert.Contains(t, body, ">yes</button>")
		assert.Contains(t, body, ">plain</button>")
		assert.NotContains(t, body, "No flashcards yet.")
	})

	t.Run("Text is escaped", func(t *testing.T) {
		env.session.Toggle(ctx, card.ID)
		body := env.do(t, http.MethodGet, "/", "").Body.String()
		assert.Contains(t, body, "&lt;b&gt;bold&lt;/b&gt;?")
		assert.NotContains(t, body, "<b>bold</b>")
	})

	t.Run("Pagination link", func(t *testing.T) {
		body := env.do(t, http.MethodGet, "/?limit=1", "").Body.String()
		assert.Contains(t, body, `href="/?offset=1"`)
		assert.NotContains(t, body, ">plain</button>")
	})

	t.Run("Form overlay", func(t *testing.T) {
		env.session.NewFlashcard(ctx)
		env.session.UpdateQuestion(ctx, "draft q")

		body := env.do(t, http.MethodGet, "/", "").Body.String()
		assert.Contains(t, body, `class="overlay"`)
		assert.Contains(t, body, `value="draft q"`)
		assert.Contains(t, body, `formaction="/form/dismiss"`)
	})

	t.Run("Bad query", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/?limit=zero", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestScreenActions(t *testing.T) {
	ctx := context.Background()

	t.Run("New flashcard then submit", func(t *testing.T) {
		env := newTestEnv(t, form.PreserveDraft)

		rr := env.postForm(t, "/new", nil)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
		assert.True(t, env.session.Form().Visible)

		rr = env.postForm(t, "/form", url.Values{"question": {"Q"}, "answer": {"A"}})
		assert.Equal(t, http.StatusSeeOther, rr.Code)

		cards := env.session.Cards()
		require.Len(t, cards, 1)
		assert.Equal(t, "Q", cards[0].Question)
		assert.Equal(t, "A", cards[0].Answer)
		assert.False(t, env.session.Form().Visible)
		assert.Empty(t, env.session.Form().Question)
	})

	t.Run("Dismiss keeps typed text", func(t *testing.T) {
		env := newTestEnv(t, form.PreserveDraft)
		env.postForm(t, "/new", nil)

		rr := env.postForm(t, "/form/dismiss", url.Values{"question": {"typed"}, "answer": {""}})
		assert.Equal(t, http.StatusSeeOther, rr.Code)

		draft := env.session.Form()
		assert.False(t, draft.Visible)
		assert.Equal(t, "typed", draft.Question)
		assert.Equal(t, 0, env.session.Len())
	})

	t.Run("Flip redirects to the card", func(t *testing.T) {
		env := newTestEnv(t, form.PreserveDraft)
		card := env.session.Append(ctx, "Q", "A")

		rr := env.postForm(t, fmt.Sprintf("/cards/%s/flip", card.ID), url.Values{"offset": {"0"}})
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, fmt.Sprintf("/#card-%s", card.ID), rr.Header().Get("Location"))

		view, err := env.session.Card(card.ID)
		require.NoError(t, err)
		assert.True(t, view.Flipped)
	})

	t.Run("Flip keeps the page offset", func(t *testing.T) {
		env := newTestEnv(t, form.PreserveDraft)
		env.session.Append(ctx, "Q0", "A0")
		card := env.session.Append(ctx, "Q1", "A1")

		rr := env.postForm(t, fmt.Sprintf("/cards/%s/flip", card.ID), url.Values{"offset": {"1"}})
		assert.Equal(t, fmt.Sprintf("/?offset=1#card-%s", card.ID), rr.Header().Get("Location"))
	})

	t.Run("Flip of a cleared card", func(t *testing.T) {
		env := newTestEnv(t, form.PreserveDraft)

		rr := env.postForm(t, fmt.Sprintf("/cards/%s/flip", uuid.New()), nil)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("Flip with a malformed id", func(t *testing.T) {
		env := newTestEnv(t, form.PreserveDraft)

		rr := env.postForm(t, "/cards/nope/flip", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Submit with an unparsable body", func(t *testing.T) {
		env := newTestEnv(t, form.PreserveDraft)
		env.postForm(t, "/new", nil)
		env.session.UpdateQuestion(ctx, "earlier draft")

		rr := env.postRaw(t, "/form", "question=%zz&answer=A")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, 0, env.session.Len())

		draft := env.session.Form()
		assert.True(t, draft.Visible)
		assert.Equal(t, "earlier draft", draft.Question)
	})

	t.Run("Dismiss with an unparsable body", func(t *testing.T) {
		env := newTestEnv(t, form.PreserveDraft)
		env.postForm(t, "/new", nil)

		rr := env.postRaw(t, "/form/dismiss", "question=%zz")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.True(t, env.session.Form().Visible)
	})

	for _, offset := range []string{"abc", "-1"} {
		t.Run("Flip with offset "+offset, func(t *testing.T) {
			env := newTestEnv(t, form.PreserveDraft)
			card := env.session.Append(ctx, "Q", "A")

			rr := env.postForm(t, fmt.Sprintf("/cards/%s/flip", card.ID), url.Values{"offset": {offset}})
			assert.Equal(t, http.StatusBadRequest, rr.Code)

			view, err := env.session.Card(card.ID)
			require.NoError(t, err)
			assert.False(t, view.Flipped)
		})
	}

	t.Run("Clear", func(t *testing.T) {
		env := newTestEnv(t, form.PreserveDraft)
		env.session.Append(ctx, "Q", "A")

		rr := env.postForm(t, "/clear", nil)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, 0, env.session.Len())
	})
}
