// Package deck holds the in-memory state of a study deck: the ordered card
// collection and the per-card flip state.
//
// Types in this package are not safe for concurrent use. The session package
// serializes every mutation, in the same way a UI event loop would.
package deck
