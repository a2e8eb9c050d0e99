package cards

import (
	"errors"
	"testing"

	"gametools"
)

func TestNewDeckComposition(t *testing.T) {
	d := NewDeck("standard test deck")
	if d.Len() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Len())
	}

	suits := make(map[Suit]int)
	ranks := make(map[Rank]int)
	for _, c := range d.Cards() {
		suits[c.Suit]++
		ranks[c.Rank]++
	}
	for _, s := range Suits() {
		if suits[s] != 13 {
			t.Fatalf("expected 13 %s, got %d", s, suits[s])
		}
	}
	for _, r := range Ranks() {
		if ranks[r] != 4 {
			t.Fatalf("expected 4 of rank %s, got %d", r, ranks[r])
		}
	}
}

func TestDeckDraw(t *testing.T) {
	d := NewDeck("test deck")
	card, ok := d.Draw()
	if !ok {
		t.Fatal("draw from fresh deck should succeed")
	}
	if d.Len() != 51 {
		t.Fatalf("expected 51 cards left, got %d", d.Len())
	}

	remainingOfRank := 0
	for _, c := range d.Cards() {
		if c.Rank == card.Rank {
			remainingOfRank++
		}
	}
	if remainingOfRank != 3 {
		t.Fatalf("expected 3 remaining of rank %s, got %d", card.Rank, remainingOfRank)
	}
}

func TestDeckDrawCards(t *testing.T) {
	d := NewDeck("test deck")
	drawn, err := d.DrawCards(5)
	if err != nil {
		t.Fatalf("draw 5: %v", err)
	}
	if len(drawn) != 5 || d.Len() != 47 {
		t.Fatalf("expected 5 drawn and 47 left, got %d and %d", len(drawn), d.Len())
	}

	if _, err := d.DrawCards(100); !errors.Is(err, gametools.ErrStackTooSmall) {
		t.Fatalf("expected ErrStackTooSmall, got %v", err)
	}
}

func TestShufflePreservesCards(t *testing.T) {
	d := NewDeck("shuffled")
	before := make(map[Card]int)
	for _, c := range d.Cards() {
		before[c]++
	}

	d.Shuffle()

	after := make(map[Card]int)
	for _, c := range d.Cards() {
		after[c]++
	}
	for card, n := range before {
		if after[card] != n {
			t.Fatalf("card %s count changed after shuffle", card)
		}
	}
}

func TestHandDrawCardFrom(t *testing.T) {
	h := NewCardHand("Player 1")
	d := NewDeck("standard test deck")

	if err := h.DrawCardFrom(d); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if h.Len() != 1 || d.Len() != 51 {
		t.Fatalf("expected 1 in hand and 51 in deck, got %d and %d", h.Len(), d.Len())
	}

	d.DrawCards(51) // empty the deck and try again
	if err := h.DrawCardFrom(d); !errors.Is(err, gametools.ErrStackEmpty) {
		t.Fatalf("expected ErrStackEmpty, got %v", err)
	}
}

func TestHandDrawCardsFrom(t *testing.T) {
	h := NewCardHand("frank zappa")
	d := NewDeck("the poodle bites")

	if err := h.DrawCardsFrom(d, 5); err != nil {
		t.Fatalf("draw 5: %v", err)
	}
	if h.Len() != 5 || d.Len() != 47 {
		t.Fatalf("expected 5 and 47, got %d and %d", h.Len(), d.Len())
	}

	if err := h.DrawCardsFrom(d, 500); !errors.Is(err, gametools.ErrStackTooSmall) {
		t.Fatalf("expected ErrStackTooSmall, got %v", err)
	}
}

func TestHandCounts(t *testing.T) {
	h := NewCardHand("counter")
	h.AddCard(Card{Rank: Queen, Suit: Spades})
	h.AddCard(Card{Rank: Queen, Suit: Hearts})
	h.AddCard(Card{Rank: Two, Suit: Spades})

	if got := h.CountRank(Queen); got != 2 {
		t.Fatalf("expected 2 queens, got %d", got)
	}
	if got := h.CountSuit(Spades); got != 2 {
		t.Fatalf("expected 2 spades, got %d", got)
	}
	if !h.Contains(Card{Rank: Two, Suit: Spades}) {
		t.Fatal("expected hand to contain the two of spades")
	}
	if h.Contains(Card{Rank: Ace, Suit: Clubs}) {
		t.Fatal("did not expect the ace of clubs")
	}
}

func TestTransferCard(t *testing.T) {
	h := NewCardHand("giver")
	discard := NewPile("discard")
	target := Card{Rank: Ace, Suit: Clubs}
	h.AddCard(target)
	h.AddCard(Card{Rank: Two, Suit: Hearts})

	if err := h.TransferCard(target, discard); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if h.Len() != 1 || discard.Len() != 1 {
		t.Fatalf("expected 1 and 1, got %d and %d", h.Len(), discard.Len())
	}
	if top, _ := discard.Top(); top != target {
		t.Fatalf("expected %s on the pile, got %s", target, top)
	}

	if err := h.TransferCard(target, discard); !errors.Is(err, gametools.ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestDealToHands(t *testing.T) {
	d := NewDeck("dealer")
	d.Shuffle()
	hands := []*CardHand{NewCardHand("p1"), NewCardHand("p2"), NewCardHand("p3")}

	if err := d.DealToHands(hands, 7); err != nil {
		t.Fatalf("deal: %v", err)
	}
	for _, h := range hands {
		if h.Len() != 7 {
			t.Fatalf("expected 7 cards for %s, got %d", h.Player(), h.Len())
		}
	}
	if d.Len() != 52-21 {
		t.Fatalf("expected 31 cards left, got %d", d.Len())
	}

	if err := d.DealToHands(hands, 20); !errors.Is(err, gametools.ErrStackTooSmall) {
		t.Fatalf("expected ErrStackTooSmall, got %v", err)
	}
}

func TestPileTakeCard(t *testing.T) {
	p := NewPile("discard")
	if _, ok := p.TakeCard(); ok {
		t.Fatal("take from empty pile should fail")
	}
	p.AddCard(Card{Rank: King, Suit: Hearts})
	c, ok := p.TakeCard()
	if !ok || c.Rank != King {
		t.Fatalf("expected king of hearts, got %s (%v)", c, ok)
	}
}
