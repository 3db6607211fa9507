package poker

import (
	"errors"
	"fmt"
	"sort"
)

// ErrTooFewCards is returned when fewer than 5 cards are evaluated.
var ErrTooFewCards = errors.New("need at least 5 cards to evaluate")

// EvaluatedHand is the result of scoring a hand. Hands compare by the key
// (Rank, PrimaryValues..., Kickers...) lexicographically, higher winning.
type EvaluatedHand struct {
	Rank          HandRank
	PrimaryValues []int // ranks that define the hand, e.g. quad rank then nothing
	Kickers       []int // remaining tie-break ranks, descending
	Cards         []Card // the winning 5-card subset
}

// scoreKey returns the full comparison key.
func (e EvaluatedHand) scoreKey() []int {
	key := make([]int, 0, 1+len(e.PrimaryValues)+len(e.Kickers))
	key = append(key, int(e.Rank))
	key = append(key, e.PrimaryValues...)
	key = append(key, e.Kickers...)
	return key
}

// CompareTo orders two evaluated hands: 1 if e wins, -1 if other wins, 0 on
// an exact tie.
func (e EvaluatedHand) CompareTo(other EvaluatedHand) int {
	a, b := e.scoreKey(), other.scoreKey()
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	// Keys for the same category always have equal length; differing
	// categories are decided at index 0.
	return 0
}

// Evaluate scores 5 to 7 cards and returns the best 5-card hand. For more
// than 5 cards every 5-card subset is evaluated and the maximum kept; the
// first maximum encountered wins ties.
func Evaluate(cards []Card) (EvaluatedHand, error) {
	if len(cards) < 5 {
		return EvaluatedHand{}, fmt.Errorf("%w: got %d", ErrTooFewCards, len(cards))
	}
	if len(cards) == 5 {
		return evaluateFive(cards), nil
	}

	var best EvaluatedHand
	first := true
	subset := make([]Card, 5)
	forEachFive(cards, subset, 0, 0, func(combo []Card) {
		hand := evaluateFive(combo)
		if first || hand.CompareTo(best) > 0 {
			best = hand
			first = false
		}
	})
	return best, nil
}

// forEachFive enumerates every 5-card subset of cards in order.
func forEachFive(cards, subset []Card, start, depth int, fn func([]Card)) {
	if depth == 5 {
		fn(subset)
		return
	}
	for i := start; i <= len(cards)-(5-depth); i++ {
		subset[depth] = cards[i]
		forEachFive(cards, subset, i+1, depth+1, fn)
	}
}

// Compare evaluates both hands and orders them: 1 if a wins, -1 if b wins,
// 0 on a tie.
func Compare(a, b []Card) (int, error) {
	ea, err := Evaluate(a)
	if err != nil {
		return 0, err
	}
	eb, err := Evaluate(b)
	if err != nil {
		return 0, err
	}
	return ea.CompareTo(eb), nil
}

// evaluateFive classifies exactly 5 cards. Predicates are checked in strict
// priority order because they overlap at the raw level (a full house also
// contains three of a kind).
func evaluateFive(cards []Card) EvaluatedHand {
	kept := make([]Card, 5)
	copy(kept, cards)

	ranks := make([]int, 5)
	for i, c := range kept {
		ranks[i] = int(c.Rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	counts := make(map[int]int, 5)
	for _, r := range ranks {
		counts[r]++
	}

	isFlush := true
	for _, c := range kept[1:] {
		if c.Suit != kept[0].Suit {
			isFlush = false
			break
		}
	}
	isStraight, straightHigh := checkStraight(ranks)

	if isFlush && isStraight {
		if straightHigh == int(Ace) {
			return EvaluatedHand{Rank: RoyalFlush, PrimaryValues: []int{int(Ace)}, Cards: kept}
		}
		return EvaluatedHand{Rank: StraightFlush, PrimaryValues: []int{straightHigh}, Cards: kept}
	}

	if quad, ok := rankWithCount(counts, 4); ok {
		return EvaluatedHand{
			Rank:          FourOfAKind,
			PrimaryValues: []int{quad},
			Kickers:       ranksExcept(ranks, quad),
			Cards:         kept,
		}
	}

	trips, hasTrips := rankWithCount(counts, 3)
	pairs := ranksWithCount(counts, 2)
	if hasTrips && len(pairs) == 1 {
		return EvaluatedHand{Rank: FullHouse, PrimaryValues: []int{trips, pairs[0]}, Cards: kept}
	}

	if isFlush {
		return EvaluatedHand{Rank: Flush, PrimaryValues: ranks, Cards: kept}
	}

	if isStraight {
		return EvaluatedHand{Rank: Straight, PrimaryValues: []int{straightHigh}, Cards: kept}
	}

	if hasTrips {
		return EvaluatedHand{
			Rank:          ThreeOfAKind,
			PrimaryValues: []int{trips},
			Kickers:       ranksExcept(ranks, trips),
			Cards:         kept,
		}
	}

	if len(pairs) == 2 {
		return EvaluatedHand{
			Rank:          TwoPair,
			PrimaryValues: pairs,
			Kickers:       ranksExcept(ranks, pairs[0], pairs[1]),
			Cards:         kept,
		}
	}

	if len(pairs) == 1 {
		return EvaluatedHand{
			Rank:          OnePair,
			PrimaryValues: []int{pairs[0]},
			Kickers:       ranksExcept(ranks, pairs[0]),
			Cards:         kept,
		}
	}

	return EvaluatedHand{
		Rank:          HighCard,
		PrimaryValues: []int{ranks[0]},
		Kickers:       ranks[1:],
		Cards:         kept,
	}
}

// checkStraight reports whether the 5 (descending-sorted) ranks form a run
// and the run's high card. The wheel A-2-3-4-5 counts as a 5-high straight.
func checkStraight(ranks []int) (bool, int) {
	unique := make([]int, 0, 5)
	seen := make(map[int]bool, 5)
	for _, r := range ranks {
		if !seen[r] {
			seen[r] = true
			unique = append(unique, r)
		}
	}
	if len(unique) != 5 {
		return false, 0
	}
	if unique[0]-unique[4] == 4 {
		return true, unique[0]
	}
	if unique[0] == 14 && unique[1] == 5 && unique[2] == 4 && unique[3] == 3 && unique[4] == 2 {
		return true, 5
	}
	return false, 0
}

// rankWithCount returns the rank appearing exactly n times, if any.
func rankWithCount(counts map[int]int, n int) (int, bool) {
	for r, c := range counts {
		if c == n {
			return r, true
		}
	}
	return 0, false
}

// ranksWithCount returns every rank appearing exactly n times, descending.
func ranksWithCount(counts map[int]int, n int) []int {
	var out []int
	for r, c := range counts {
		if c == n {
			out = append(out, r)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// ranksExcept returns the ranks not in excluded, preserving descending order.
func ranksExcept(ranks []int, excluded ...int) []int {
	var out []int
	for _, r := range ranks {
		skip := false
		for _, e := range excluded {
			if r == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, r)
		}
	}
	return out
}
