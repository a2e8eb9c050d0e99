// Package cards handles standard 52-card decks, player hands, and
// discard piles, with interfaces for moving cards between them.
package cards

import "fmt"

// Rank is a card's face value.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Two: "Two", Three: "Three", Four: "Four", Five: "Five", Six: "Six",
	Seven: "Seven", Eight: "Eight", Nine: "Nine", Ten: "Ten",
	Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Ranks lists all ranks in ascending order.
func Ranks() []Rank {
	out := make([]Rank, 0, 13)
	for r := Two; r <= Ace; r++ {
		out = append(out, r)
	}
	return out
}

// Suit is a card's suit.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

var suitNames = map[Suit]string{
	Clubs: "Clubs", Diamonds: "Diamonds", Spades: "Spades", Hearts: "Hearts",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Suits lists all four suits.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Spades, Hearts}
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return fmt.Sprintf("(%s of %s)", c.Rank, c.Suit)
}

// AddCard is implemented by any collection cards can be added to.
type AddCard interface {
	AddCard(c Card)
}

// TakeCard is implemented by any collection cards can be drawn from.
type TakeCard interface {
	TakeCard() (Card, bool)
}
