package poker

// HandRank is one of the ten poker hand categories, ordered from weakest
// (HighCard=1) to strongest (RoyalFlush=10). The integer value is the wire
// serialization.
type HandRank int

// Hand categories in ascending strength.
const (
	HighCard HandRank = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// HandRanks lists all ten categories in ascending order.
var HandRanks = []HandRank{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// Name returns the human-readable category name.
func (r HandRank) Name() string {
	switch r {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Description returns a one-line explanation of the category, used in
// question explanations and the rankings reference endpoint.
func (r HandRank) Description() string {
	switch r {
	case HighCard:
		return "No matching cards. Highest card plays."
	case OnePair:
		return "Two cards of the same rank."
	case TwoPair:
		return "Two different pairs."
	case ThreeOfAKind:
		return "Three cards of the same rank."
	case Straight:
		return "Five consecutive cards of mixed suits."
	case Flush:
		return "Five cards of the same suit."
	case FullHouse:
		return "Three of a kind plus a pair."
	case FourOfAKind:
		return "Four cards of the same rank."
	case StraightFlush:
		return "Five consecutive cards of the same suit."
	case RoyalFlush:
		return "A, K, Q, J, 10 all of the same suit."
	default:
		return ""
	}
}

// Example returns example card notations for the category.
func (r HandRank) Example() string {
	switch r {
	case HighCard:
		return "Ah, Kd, 9c, 7s, 2h"
	case OnePair:
		return "Ah, Ad, Kc, 7s, 2h"
	case TwoPair:
		return "Ah, Ad, Kc, Ks, 2h"
	case ThreeOfAKind:
		return "Ah, Ad, Ac, Ks, 2h"
	case Straight:
		return "9h, 8d, 7c, 6s, 5h"
	case Flush:
		return "Ah, Kh, 9h, 7h, 2h"
	case FullHouse:
		return "Ah, Ad, Ac, Ks, Kh"
	case FourOfAKind:
		return "Ah, Ad, Ac, As, Kh"
	case StraightFlush:
		return "9h, 8h, 7h, 6h, 5h"
	case RoyalFlush:
		return "Ah, Kh, Qh, Jh, 10h"
	default:
		return ""
	}
}

// Valid reports whether the rank is one of the ten categories.
func (r HandRank) Valid() bool {
	return r >= HighCard && r <= RoyalFlush
}
