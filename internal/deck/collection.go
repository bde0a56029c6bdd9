package deck

import (
	"github.com/flakeychalk/forcard/internal/domain"
	"github.com/google/uuid"
)

// Collection is an ordered sequence of cards. Insertion order is display order.
type Collection struct {
	cards []domain.Card
	index map[uuid.UUID]int
	// newCard is swapped in tests to force ID collisions.
	newCard func(question, answer string) domain.Card
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{
		index:   make(map[uuid.UUID]int),
		newCard: domain.NewCard,
	}
}

// Append creates a card with a fresh ID and adds it to the end of the
// collection. Text is stored as given, empty strings included.
func (c *Collection) Append(question, answer string) domain.Card {
	card := c.newCard(question, answer)
	for {
		if _, taken := c.index[card.ID]; !taken && card.ID != uuid.Nil {
			break
		}
		card.ID = uuid.New()
	}

	c.index[card.ID] = len(c.cards)
	c.cards = append(c.cards, card)
	return card
}

// Clear removes every card and returns how many were removed.
func (c *Collection) Clear() int {
	removed := len(c.cards)
	c.cards = nil
	c.index = make(map[uuid.UUID]int)
	return removed
}

// Len returns the number of cards.
func (c *Collection) Len() int {
	return len(c.cards)
}

// Get returns the card with the given ID.
func (c *Collection) Get(id uuid.UUID) (domain.Card, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Card{}, false
	}
	return c.cards[i], true
}

// Contains reports whether a card with the given ID is in the collection.
func (c *Collection) Contains(id uuid.UUID) bool {
	_, ok := c.index[id]
	return ok
}

// Position returns the zero-based display position of a card, or -1.
func (c *Collection) Position(id uuid.UUID) int {
	i, ok := c.index[id]
	if !ok {
		return -1
	}
	return i
}

// Cards returns a copy of all cards in display order.
func (c *Collection) Cards() []domain.Card {
	out := make([]domain.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Window returns a copy of at most limit cards starting at offset.
// Only the requested range is copied, so rendering a page costs O(limit)
// regardless of deck size. Out-of-range windows are empty, never an error.
func (c *Collection) Window(offset, limit int) []domain.Card {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(c.cards) {
		return []domain.Card{}
	}
	end := offset + limit
	if end > len(c.cards) {
		end = len(c.cards)
	}
	out := make([]domain.Card, end-offset)
	copy(out, c.cards[offset:end])
	return out
}
