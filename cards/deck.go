package cards

import (
	"fmt"
	"math/rand/v2"

	"gametools"
)

// Deck is a named deck of playing cards.
type Deck struct {
	name  string
	cards []Card
}

// NewDeck creates a new, standard 52-card deck in sorted order.
func NewDeck(name string) *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{name: name, cards: cards}
}

// Name returns the deck's name.
func (d *Deck) Name() string { return d.name }

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int { return len(d.cards) }

// Cards returns a copy of the remaining cards.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Shuffle shuffles the cards in the deck in place.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw takes a card from the top of the deck. Returns false when the
// deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// DrawCards takes count cards from the deck.
func (d *Deck) DrawCards(count int) ([]Card, error) {
	if count > len(d.cards) {
		return nil, fmt.Errorf("draw %d of %d cards from %q: %w", count, len(d.cards), d.name, gametools.ErrStackTooSmall)
	}
	drawn := make([]Card, count)
	copy(drawn, d.cards[len(d.cards)-count:])
	d.cards = d.cards[:len(d.cards)-count]
	return drawn, nil
}

// DealToHands deals count cards to each hand in turn, as a dealer
// would around a table.
func (d *Deck) DealToHands(hands []*CardHand, count int) error {
	need := count * len(hands)
	if need > len(d.cards) {
		return fmt.Errorf("deal %d cards from %q: %w", need, d.name, gametools.ErrStackTooSmall)
	}
	for i := 0; i < count; i++ {
		for _, h := range hands {
			card, _ := d.Draw()
			h.AddCard(card)
		}
	}
	return nil
}

// AddCard returns a card to the deck.
func (d *Deck) AddCard(c Card) {
	d.cards = append(d.cards, c)
}

// TakeCard draws the top card, satisfying the TakeCard interface.
func (d *Deck) TakeCard() (Card, bool) {
	return d.Draw()
}
