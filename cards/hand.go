package cards

import (
	"fmt"
	"slices"
	"strings"

	"gametools"
)

// CardHand is a player's hand of cards in a game.
type CardHand struct {
	player string
	cards  []Card
}

// NewCardHand takes a player name or id and returns a new empty hand.
func NewCardHand(player string) *CardHand {
	return &CardHand{player: player}
}

// Player returns the hand owner's name.
func (h *CardHand) Player() string { return h.player }

// Len returns the number of cards in the hand.
func (h *CardHand) Len() int { return len(h.cards) }

// Cards returns a copy of the cards in the hand.
func (h *CardHand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// DrawCardFrom draws a single card from the deck into the hand.
func (h *CardHand) DrawCardFrom(d *Deck) error {
	card, ok := d.Draw()
	if !ok {
		return fmt.Errorf("draw into %s's hand: %w", h.player, gametools.ErrStackEmpty)
	}
	h.cards = append(h.cards, card)
	return nil
}

// DrawCardsFrom draws count cards from the deck into the hand.
func (h *CardHand) DrawCardsFrom(d *Deck, count int) error {
	drawn, err := d.DrawCards(count)
	if err != nil {
		return err
	}
	h.cards = append(h.cards, drawn...)
	return nil
}

// Contains reports whether the hand holds the given card.
func (h *CardHand) Contains(c Card) bool {
	return slices.Contains(h.cards, c)
}

// CountRank counts the cards of the given rank.
func (h *CardHand) CountRank(r Rank) int {
	count := 0
	for _, c := range h.cards {
		if c.Rank == r {
			count++
		}
	}
	return count
}

// CountSuit counts the cards of the given suit.
func (h *CardHand) CountSuit(s Suit) int {
	count := 0
	for _, c := range h.cards {
		if c.Suit == s {
			count++
		}
	}
	return count
}

// TransferCard moves a card from the hand to another collection.
func (h *CardHand) TransferCard(c Card, to AddCard) error {
	i := slices.Index(h.cards, c)
	if i == -1 {
		return fmt.Errorf("transfer %s from %s's hand: %w", c, h.player, gametools.ErrCardNotFound)
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	to.AddCard(c)
	return nil
}

// AddCard puts a card into the hand.
func (h *CardHand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// TakeCard removes and returns the last card in the hand.
func (h *CardHand) TakeCard() (Card, bool) {
	if len(h.cards) == 0 {
		return Card{}, false
	}
	c := h.cards[len(h.cards)-1]
	h.cards = h.cards[:len(h.cards)-1]
	return c, true
}

func (h *CardHand) String() string {
	var b strings.Builder
	b.WriteString(h.player)
	b.WriteString(":[")
	for _, c := range h.cards {
		b.WriteString(c.String())
	}
	b.WriteString("]")
	return b.String()
}
