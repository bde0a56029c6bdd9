// Package session composes the card collection, the per-card flip state and
// the creation form into a single study screen.
//
// A Session is the only owner of that state. Every operation runs to
// completion under one lock, so concurrent callers observe the same
// sequence of discrete events a single UI thread would. After each change
// the session publishes an event so that renderers can refresh.
package session
