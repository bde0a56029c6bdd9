package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	// Define a sample payload
	type testPayload struct {
		CardID uuid.UUID `json:"card_id"`
		Face   string    `json:"face"`
	}

	payload := testPayload{
		CardID: uuid.New(),
		Face:   "answer",
	}

	event, err := NewEvent(TypeCardFlipped, payload)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeCardFlipped, event.Type)
	assert.NotNil(t, event.Payload)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	// Verify payload was correctly serialized
	var decodedPayload testPayload
	err = json.Unmarshal(event.Payload, &decodedPayload)
	require.NoError(t, err)
	assert.Equal(t, payload.CardID, decodedPayload.CardID)
	assert.Equal(t, payload.Face, decodedPayload.Face)

	var viaHelper testPayload
	require.NoError(t, event.UnmarshalPayload(&viaHelper))
	assert.Equal(t, payload, viaHelper)
}

func TestNewEventUnsupportedPayload(t *testing.T) {
	_, err := NewEvent(TypeCardAdded, make(chan int))
	assert.Error(t, err)
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *Event
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestHandlerFunc(t *testing.T) {
	var got *Event
	handler := HandlerFunc(func(ctx context.Context, event *Event) error {
		got = event
		return errors.New("handler error")
	})

	event, err := NewEvent(TypeFormOpened, struct{}{})
	require.NoError(t, err)

	err = handler.HandleEvent(context.Background(), event)
	assert.EqualError(t, err, "handler error")
	assert.Same(t, event, got)
}
