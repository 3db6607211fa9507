// Package poker implements the Texas Hold'em rules engine: card and deck
// primitives, hand evaluation with exact tie-break ordering, and
// starting-hand classification.
package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Common card and deck errors.
var (
	// ErrInvalidNotation is returned when a card string does not match the
	// <rank><suit> grammar (rank 2-10/J/Q/K/A, suit h/d/c/s).
	ErrInvalidNotation = errors.New("invalid card notation")

	// ErrInsufficientDeck is returned when more cards are drawn than remain.
	ErrInsufficientDeck = errors.New("not enough cards remaining in deck")

	// ErrCardNotInDeck is returned when removing a card that is absent.
	ErrCardNotInDeck = errors.New("card not in deck")
)

// Rank is a card rank, 2 through 14 where 14 is the Ace.
type Rank int

// Card ranks in ascending order.
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks lists all thirteen ranks in ascending order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Symbol returns the rank's notation token. Ten is the two-character
// token "10", not "T".
func (r Rank) Symbol() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Valid reports whether the rank is within 2..14.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// ParseRank converts a rank token ("2".."10", "J", "Q", "K", "A") to a Rank.
// The single-letter "T" is not part of the grammar.
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || Rank(n) < Two || Rank(n) > Ten {
		return 0, fmt.Errorf("%w: rank %q", ErrInvalidNotation, s)
	}
	return Rank(n), nil
}

// Suit is one of the four card suits.
type Suit int

// Card suits. The order is arbitrary; suits are unordered in play.
const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists all four suits.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Letter returns the suit's notation letter (h, d, c, s).
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "s"
	}
}

// Symbol returns the suit's display glyph.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "♠"
	}
}

// ParseSuit converts a suit letter to a Suit.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "h":
		return Hearts, nil
	case "d":
		return Diamonds, nil
	case "c":
		return Clubs, nil
	case "s":
		return Spades, nil
	}
	return 0, fmt.Errorf("%w: suit %q", ErrInvalidNotation, s)
}

// Card is an immutable playing card. Two cards are equal when both rank and
// suit match; 52 distinct values exist.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the card's notation, e.g. "Ah" or "10d".
func (c Card) String() string {
	return c.Rank.Symbol() + c.Suit.Letter()
}

// Display returns the card with its suit glyph, e.g. "A♥".
func (c Card) Display() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// ParseCard parses a card from its notation, e.g. "Ah", "Ks", "10d".
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	rank, err := ParseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(s[len(s)-1:])
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a list of card notations, failing on the first invalid one.
func ParseCards(notations []string) ([]Card, error) {
	cards := make([]Card, 0, len(notations))
	for _, s := range notations {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Deck is a standard 52-card deck. It is not safe for concurrent use; each
// generation call owns its deck exclusively.
type Deck struct {
	cards []Card
}

// NewDeck returns a full 52-card deck in an unspecified but deterministic
// order. Callers that want randomness must Shuffle it.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle randomizes the deck order using rng, or the shared source when rng
// is nil.
func (d *Deck) Shuffle(rng *rand.Rand) {
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Draw removes and returns the first n cards.
// Returns ErrInsufficientDeck if fewer than n remain.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientDeck, n, len(d.cards))
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// RemoveSpecific removes the given cards from the deck.
// Returns ErrCardNotInDeck if any of them is absent; the deck is left
// partially modified in that case, so callers should discard it on error.
func (d *Deck) RemoveSpecific(cards []Card) error {
	for _, want := range cards {
		found := false
		for i, c := range d.cards {
			if c == want {
				d.cards = append(d.cards[:i], d.cards[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrCardNotInDeck, want)
		}
	}
	return nil
}
