// Package domain contains the core entities of the flashcard study session and
// the errors shared across layers. It has no knowledge of storage or delivery.
package domain
