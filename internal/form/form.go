// Package form implements the card creation form: a transient draft of
// question and answer text plus a visibility flag.
package form

import "github.com/flakeychalk/forcard/internal/domain"

// DismissPolicy controls what happens to the draft when the form is closed
// without submitting.
type DismissPolicy int

const (
	// PreserveDraft keeps the draft text until the next open.
	PreserveDraft DismissPolicy = iota
	// ResetDraft clears the draft on any close.
	ResetDraft
)

// Draft is a snapshot of the form state.
type Draft struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Visible  bool   `json:"visible"`
}

// CommitFunc adds a card built from the draft text to a collection.
type CommitFunc func(question, answer string) domain.Card

// Form holds the in-progress card. The zero value is closed with empty buffers.
type Form struct {
	question string
	answer   string
	visible  bool
	policy   DismissPolicy
}

// New returns a closed form with empty buffers.
func New(policy DismissPolicy) *Form {
	return &Form{policy: policy}
}

// Open makes the form visible. The draft is left as it is.
func (f *Form) Open() {
	f.visible = true
}

// UpdateQuestion replaces the question buffer. No validation is applied.
func (f *Form) UpdateQuestion(text string) {
	f.question = text
}

// UpdateAnswer replaces the answer buffer. No validation is applied.
func (f *Form) UpdateAnswer(text string) {
	f.answer = text
}

// Submit commits the draft, then clears both buffers and hides the form.
// It commits even when both buffers are empty, and whether or not the form
// is currently visible.
func (f *Form) Submit(commit CommitFunc) domain.Card {
	card := commit(f.question, f.answer)
	f.reset()
	return card
}

// Dismiss hides the form without submitting. Whether the draft survives
// depends on the form's DismissPolicy.
func (f *Form) Dismiss() {
	f.visible = false
	if f.policy == ResetDraft {
		f.question = ""
		f.answer = ""
	}
}

// Draft returns the current form state.
func (f *Form) Draft() Draft {
	return Draft{
		Question: f.question,
		Answer:   f.answer,
		Visible:  f.visible,
	}
}

// Visible reports whether the form is shown.
func (f *Form) Visible() bool {
	return f.visible
}

func (f *Form) reset() {
	f.question = ""
	f.answer = ""
	f.visible = false
}
