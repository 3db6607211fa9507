package poker

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// HandCategory is a coarse preflop strength tier for a starting hand.
type HandCategory int

// Categories in ascending strength. Membership in the non-Weak tiers is a
// closed enumeration; Weak is the complement.
const (
	CategoryWeak HandCategory = iota
	CategoryMarginal
	CategoryPlayable
	CategoryStrong
	CategoryPremium
)

// Categories lists all five tiers in ascending strength.
var Categories = []HandCategory{
	CategoryWeak, CategoryMarginal, CategoryPlayable, CategoryStrong, CategoryPremium,
}

// Name returns the human-readable category name.
func (c HandCategory) Name() string {
	switch c {
	case CategoryPremium:
		return "Premium"
	case CategoryStrong:
		return "Strong"
	case CategoryPlayable:
		return "Playable"
	case CategoryMarginal:
		return "Marginal"
	default:
		return "Weak"
	}
}

// Position is a table position used for play/fold guidance.
type Position string

// Table positions.
const (
	PositionEarly  Position = "early"
	PositionMiddle Position = "middle"
	PositionLate   Position = "late"
	PositionBlinds Position = "blinds"
	PositionAny    Position = "any"
)

// Positions lists the concrete table positions (excluding "any").
var Positions = []Position{PositionEarly, PositionMiddle, PositionLate, PositionBlinds}

// StartingHand is a two-card preflop holding, rank-ordered with the higher
// rank first. Its notation is the classification key: "QQ" for pairs,
// "AKs"/"AKo" otherwise. Starting-hand notation writes ten as "T".
type StartingHand struct {
	High   Rank
	Low    Rank
	Suited bool
}

// notationSymbol is the rank token used inside starting-hand notation.
// Unlike card notation, ten is the single character "T".
func notationSymbol(r Rank) string {
	if r == Ten {
		return "T"
	}
	return r.Symbol()
}

// parseNotationRank is the inverse of notationSymbol.
func parseNotationRank(ch byte) (Rank, error) {
	switch ch {
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'A':
		return Ace, nil
	}
	if ch >= '2' && ch <= '9' {
		return Rank(ch - '0'), nil
	}
	return 0, fmt.Errorf("%w: starting hand rank %q", ErrInvalidNotation, string(ch))
}

// Notation returns the classification key, e.g. "AKs", "QTo", "77".
func (h StartingHand) Notation() string {
	if h.High == h.Low {
		return notationSymbol(h.High) + notationSymbol(h.Low)
	}
	suffix := "o"
	if h.Suited {
		suffix = "s"
	}
	return notationSymbol(h.High) + notationSymbol(h.Low) + suffix
}

// NewStartingHand builds a StartingHand from two concrete cards, ordering
// the ranks so High >= Low.
func NewStartingHand(a, b Card) StartingHand {
	high, low := a.Rank, b.Rank
	if low > high {
		high, low = low, high
	}
	return StartingHand{High: high, Low: low, Suited: a.Suit == b.Suit}
}

// ParseStartingHand parses starting-hand notation such as "AKs", "QQ", "72o".
// Pairs carry no suited suffix; a suffix on a pair is rejected.
func ParseStartingHand(notation string) (StartingHand, error) {
	if len(notation) != 2 && len(notation) != 3 {
		return StartingHand{}, fmt.Errorf("%w: starting hand %q", ErrInvalidNotation, notation)
	}
	high, err := parseNotationRank(notation[0])
	if err != nil {
		return StartingHand{}, err
	}
	low, err := parseNotationRank(notation[1])
	if err != nil {
		return StartingHand{}, err
	}
	if low > high {
		high, low = low, high
	}
	hand := StartingHand{High: high, Low: low}
	if len(notation) == 3 {
		switch notation[2] {
		case 's':
			hand.Suited = true
		case 'o':
		default:
			return StartingHand{}, fmt.Errorf("%w: starting hand %q", ErrInvalidNotation, notation)
		}
		if high == low {
			return StartingHand{}, fmt.Errorf("%w: pair %q cannot be suited or offsuit", ErrInvalidNotation, notation)
		}
	}
	return hand, nil
}

// Cards realizes the starting hand as two concrete cards with a freshly
// shuffled suit assignment: one shared suit when suited, two distinct suits
// otherwise.
func (h StartingHand) Cards(rng *rand.Rand) []Card {
	suits := make([]Suit, len(Suits))
	copy(suits, Suits)
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(suits), func(i, j int) {
		suits[i], suits[j] = suits[j], suits[i]
	})
	if h.Suited {
		return []Card{{Rank: h.High, Suit: suits[0]}, {Rank: h.Low, Suit: suits[0]}}
	}
	return []Card{{Rank: h.High, Suit: suits[0]}, {Rank: h.Low, Suit: suits[1]}}
}

// The fixed category memberships. These are strategy tables, not computed
// sets; they mirror the conventional preflop tiers.
var (
	premiumHands = notationSet("AA", "KK", "QQ", "AKs")

	strongHands = notationSet("JJ", "TT", "AKo", "AQs", "AQo", "AJs", "KQs")

	playableHands = notationSet(
		"99", "88", "77",
		"ATs", "AJo", "KQo", "KJs", "KTs",
		"QJs", "QTs", "JTs", "T9s", "98s", "87s", "76s",
	)

	marginalHands = notationSet(
		"66", "55", "44", "33", "22",
		"A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"ATo", "KJo", "KTo", "QJo", "QTo", "JTo",
		"K9s", "Q9s", "J9s", "T8s", "97s", "86s", "75s", "65s", "54s",
	)
)

func notationSet(notations ...string) map[string]bool {
	set := make(map[string]bool, len(notations))
	for _, n := range notations {
		set[n] = true
	}
	return set
}

// categorySets maps each non-Weak tier to its membership set.
var categorySets = map[HandCategory]map[string]bool{
	CategoryPremium:  premiumHands,
	CategoryStrong:   strongHands,
	CategoryPlayable: playableHands,
	CategoryMarginal: marginalHands,
}

// Categorize returns the tier for a starting hand. Anything absent from the
// four named sets is Weak.
func Categorize(hand StartingHand) HandCategory {
	notation := hand.Notation()
	for _, c := range []HandCategory{CategoryPremium, CategoryStrong, CategoryPlayable, CategoryMarginal} {
		if categorySets[c][notation] {
			return c
		}
	}
	return CategoryWeak
}

// ShouldPlay reports whether the hand clears the minimum tier for the given
// position: early demands Strong, middle Playable, late and blinds Marginal,
// anything else Playable.
func ShouldPlay(hand StartingHand, position Position) bool {
	category := Categorize(hand)
	switch position {
	case PositionEarly:
		return category >= CategoryStrong
	case PositionMiddle:
		return category >= CategoryPlayable
	case PositionLate, PositionBlinds:
		return category >= CategoryMarginal
	default:
		return category >= CategoryPlayable
	}
}

// RandomStartingHand samples uniformly across the union of the four named
// tiers.
func RandomStartingHand(rng *rand.Rand) StartingHand {
	var all []string
	for _, set := range categorySets {
		for n := range set {
			all = append(all, n)
		}
	}
	sort.Strings(all) // deterministic order under a seeded rng
	hand, _ := ParseStartingHand(all[intN(rng, len(all))])
	return hand
}

// RandomStartingHandInCategory samples a hand from the given tier. Weak
// hands are rejection-sampled: random (rank, rank, suited) proposals until
// one falls outside every named set.
func RandomStartingHandInCategory(rng *rand.Rand, category HandCategory) StartingHand {
	if category == CategoryWeak {
		for {
			high := Ranks[intN(rng, len(Ranks))]
			low := Ranks[intN(rng, len(Ranks))]
			if low > high {
				high, low = low, high
			}
			hand := StartingHand{High: high, Low: low, Suited: intN(rng, 2) == 0 && high != low}
			if Categorize(hand) == CategoryWeak {
				return hand
			}
		}
	}

	notations := make([]string, 0, len(categorySets[category]))
	for n := range categorySets[category] {
		notations = append(notations, n)
	}
	sort.Strings(notations)
	hand, _ := ParseStartingHand(notations[intN(rng, len(notations))])
	return hand
}

// ChartEntry is one row of the starting-hands reference chart.
type ChartEntry struct {
	Notation string
	Hand     StartingHand
	Category HandCategory
}

// Chart returns every hand in the four named tiers, strongest tier first,
// notation-sorted within each tier.
func Chart() []ChartEntry {
	var entries []ChartEntry
	for _, c := range []HandCategory{CategoryPremium, CategoryStrong, CategoryPlayable, CategoryMarginal} {
		notations := make([]string, 0, len(categorySets[c]))
		for n := range categorySets[c] {
			notations = append(notations, n)
		}
		sort.Strings(notations)
		for _, n := range notations {
			hand, _ := ParseStartingHand(n)
			entries = append(entries, ChartEntry{Notation: n, Hand: hand, Category: c})
		}
	}
	return entries
}

// intN draws from rng, or the shared source when rng is nil.
func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}
