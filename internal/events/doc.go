// Package events provides the change notifications emitted by a study session.
//
// Renderers subscribe to events instead of depending on a UI binding system:
// every state change (a card added, the deck cleared, a card flipped, the form
// opened, edited, submitted or dismissed) is published as an Event after the
// change has been applied.
//
// The primary components are:
// - Event: a typed notification with a JSON payload
// - EventHandler: interface for components that react to events
// - EventEmitter: interface for components that publish events
// - InMemoryEventEmitter: synchronous fan-out to registered handlers
// - Subscriber: a handler that buffers events on a channel for streaming
package events
