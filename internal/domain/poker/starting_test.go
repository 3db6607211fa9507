package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingHandNotation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hand StartingHand
		want string
	}{
		{name: "pair", hand: StartingHand{High: Queen, Low: Queen}, want: "QQ"},
		{name: "suited", hand: StartingHand{High: Ace, Low: King, Suited: true}, want: "AKs"},
		{name: "offsuit", hand: StartingHand{High: Ace, Low: King}, want: "AKo"},
		{name: "ten writes as T", hand: StartingHand{High: Ten, Low: Nine, Suited: true}, want: "T9s"},
		{name: "pair of tens", hand: StartingHand{High: Ten, Low: Ten}, want: "TT"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.hand.Notation())
		})
	}
}

func TestParseStartingHand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		notation string
		want     StartingHand
		wantErr  bool
	}{
		{notation: "AKs", want: StartingHand{High: Ace, Low: King, Suited: true}},
		{notation: "72o", want: StartingHand{High: Seven, Low: Two}},
		{notation: "QQ", want: StartingHand{High: Queen, Low: Queen}},
		{notation: "T9s", want: StartingHand{High: Ten, Low: Nine, Suited: true}},
		// Rank order normalizes: "KAs" means the same hand as "AKs".
		{notation: "KAs", want: StartingHand{High: Ace, Low: King, Suited: true}},
		{notation: "QQs", wantErr: true},
		{notation: "AKx", wantErr: true},
		{notation: "A", wantErr: true},
		{notation: "10Ko", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.notation, func(t *testing.T) {
			t.Parallel()
			got, err := ParseStartingHand(tc.notation)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNotation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewStartingHandOrdersRanks(t *testing.T) {
	t.Parallel()

	hand := NewStartingHand(Card{Rank: King, Suit: Hearts}, Card{Rank: Ace, Suit: Hearts})
	assert.Equal(t, StartingHand{High: Ace, Low: King, Suited: true}, hand)

	hand = NewStartingHand(Card{Rank: Two, Suit: Clubs}, Card{Rank: Seven, Suit: Spades})
	assert.Equal(t, StartingHand{High: Seven, Low: Two}, hand)
}

func TestStartingHandCards(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))

	suited, _ := ParseStartingHand("T9s")
	cards := suited.Cards(rng)
	require.Len(t, cards, 2)
	assert.Equal(t, Ten, cards[0].Rank)
	assert.Equal(t, Nine, cards[1].Rank)
	assert.Equal(t, cards[0].Suit, cards[1].Suit)

	offsuit, _ := ParseStartingHand("AKo")
	cards = offsuit.Cards(rng)
	require.Len(t, cards, 2)
	assert.NotEqual(t, cards[0].Suit, cards[1].Suit)
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		notation string
		want     HandCategory
	}{
		{"AA", CategoryPremium},
		{"KK", CategoryPremium},
		{"QQ", CategoryPremium},
		{"AKs", CategoryPremium},
		// AKo is strong, not premium; suitedness matters.
		{"AKo", CategoryStrong},
		{"JJ", CategoryStrong},
		{"TT", CategoryStrong},
		{"99", CategoryPlayable},
		{"T9s", CategoryPlayable},
		{"76s", CategoryPlayable},
		{"22", CategoryMarginal},
		{"A2s", CategoryMarginal},
		{"54s", CategoryMarginal},
		{"72o", CategoryWeak},
		{"T9o", CategoryWeak},
		{"J8s", CategoryWeak},
	}

	for _, tc := range tests {
		t.Run(tc.notation, func(t *testing.T) {
			t.Parallel()
			hand, err := ParseStartingHand(tc.notation)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Categorize(hand), "hand %s", tc.notation)
		})
	}
}

func TestShouldPlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		notation string
		position Position
		want     bool
	}{
		// Early position demands at least Strong.
		{"AKo", PositionEarly, true},
		{"99", PositionEarly, false},
		{"AA", PositionEarly, true},
		// Middle demands Playable.
		{"99", PositionMiddle, true},
		{"22", PositionMiddle, false},
		// Late and blinds demand Marginal.
		{"22", PositionLate, true},
		{"72o", PositionLate, false},
		{"A2s", PositionBlinds, true},
		// Unknown positions fall back to the Playable threshold.
		{"99", PositionAny, true},
		{"22", PositionAny, false},
	}

	for _, tc := range tests {
		t.Run(tc.notation+"_"+string(tc.position), func(t *testing.T) {
			t.Parallel()
			hand, err := ParseStartingHand(tc.notation)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ShouldPlay(hand, tc.position))
		})
	}
}

func TestRandomStartingHandInCategory(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))

	for _, category := range Categories {
		for i := 0; i < 50; i++ {
			hand := RandomStartingHandInCategory(rng, category)
			assert.Equal(t, category, Categorize(hand),
				"category %s produced %s", category.Name(), hand.Notation())
			if hand.High == hand.Low {
				assert.False(t, hand.Suited, "pair %s cannot be suited", hand.Notation())
			}
		}
	}
}

func TestRandomStartingHandIsNeverWeak(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 100; i++ {
		hand := RandomStartingHand(rng)
		assert.NotEqual(t, CategoryWeak, Categorize(hand), "got weak hand %s", hand.Notation())
	}
}

func TestChart(t *testing.T) {
	t.Parallel()

	entries := Chart()

	wantTotal := len(premiumHands) + len(strongHands) + len(playableHands) + len(marginalHands)
	require.Len(t, entries, wantTotal)

	// Strongest tier first, sorted within each tier.
	assert.Equal(t, CategoryPremium, entries[0].Category)
	assert.Equal(t, CategoryMarginal, entries[len(entries)-1].Category)

	seen := make(map[string]bool, len(entries))
	prev := CategoryPremium
	for _, e := range entries {
		assert.False(t, seen[e.Notation], "duplicate chart entry %s", e.Notation)
		seen[e.Notation] = true
		assert.Equal(t, e.Category, Categorize(e.Hand))
		assert.LessOrEqual(t, int(e.Category), int(prev), "tiers must descend")
		prev = e.Category
	}
}

func TestHandRankMetadata(t *testing.T) {
	t.Parallel()

	require.Len(t, HandRanks, 10)
	assert.Equal(t, HandRank(1), HandRanks[0])
	assert.Equal(t, RoyalFlush, HandRanks[9])

	for _, rank := range HandRanks {
		assert.True(t, rank.Valid())
		assert.NotEmpty(t, rank.Name())
		assert.NotEmpty(t, rank.Description())
		assert.NotEmpty(t, rank.Example())
	}

	assert.Equal(t, "Royal Flush", RoyalFlush.Name())
	assert.Equal(t, "High Card", HighCard.Name())
	assert.False(t, HandRank(0).Valid())
	assert.False(t, HandRank(11).Valid())
}
