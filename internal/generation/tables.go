package generation

import (
	"github.com/dpoletti/pokertrain/internal/domain/poker"
)

// Per-difficulty target pools. These are fixed tables, not computed: each
// difficulty level restricts which ranks or categories a question may target.

// handRankingPools maps difficulty to the hand ranks a hand_ranking question
// may ask about. Low difficulty sticks to visually obvious hands; the top
// level focuses on hands that are easy to misread.
var handRankingPools = map[int][]poker.HandRank{
	1: {poker.OnePair, poker.TwoPair, poker.ThreeOfAKind, poker.Straight, poker.Flush, poker.FullHouse},
	2: {poker.OnePair, poker.TwoPair, poker.ThreeOfAKind, poker.Straight, poker.Flush, poker.FullHouse},
	3: {
		poker.HighCard, poker.OnePair, poker.TwoPair, poker.ThreeOfAKind, poker.Straight,
		poker.Flush, poker.FullHouse, poker.FourOfAKind, poker.StraightFlush, poker.RoyalFlush,
	},
	4: {
		poker.HighCard, poker.OnePair, poker.TwoPair, poker.ThreeOfAKind, poker.Straight,
		poker.Flush, poker.FullHouse, poker.FourOfAKind, poker.StraightFlush, poker.RoyalFlush,
	},
	5: {poker.HighCard, poker.OnePair, poker.TwoPair, poker.Straight, poker.Flush},
}

// whichWinsEasyFirstRanks are the first-hand targets for low-difficulty
// which_wins questions; the second hand is then picked at least two
// categories away so the answer is visually clear.
var whichWinsEasyFirstRanks = []poker.HandRank{poker.OnePair, poker.TwoPair, poker.Flush}

// startingHandPools maps difficulty to the categories a starting_hand
// question may target.
var startingHandPools = map[int][]poker.HandCategory{
	1: {poker.CategoryPremium, poker.CategoryStrong, poker.CategoryWeak},
	2: {poker.CategoryPremium, poker.CategoryStrong, poker.CategoryWeak},
	3: {poker.CategoryPlayable, poker.CategoryMarginal, poker.CategoryWeak},
	4: {poker.CategoryPlayable, poker.CategoryMarginal, poker.CategoryWeak},
	5: {poker.CategoryMarginal, poker.CategoryWeak},
}
