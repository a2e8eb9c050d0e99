package cards

import "strings"

// Pile is a named face-up stack of cards, e.g. a discard pile.
type Pile struct {
	name  string
	cards []Card
}

// NewPile creates a new, empty pile.
func NewPile(name string) *Pile {
	return &Pile{name: name}
}

// Name returns the pile's name.
func (p *Pile) Name() string { return p.name }

// Len returns the number of cards in the pile.
func (p *Pile) Len() int { return len(p.cards) }

// Top returns the top card without removing it.
func (p *Pile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// AddCard puts a card on top of the pile.
func (p *Pile) AddCard(c Card) {
	p.cards = append(p.cards, c)
}

// TakeCard removes and returns the top card.
func (p *Pile) TakeCard() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	c := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return c, true
}

func (p *Pile) String() string {
	var b strings.Builder
	b.WriteString(p.name)
	b.WriteString(":[")
	for _, c := range p.cards {
		b.WriteString(c.String())
	}
	b.WriteString("]")
	return b.String()
}
