package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCards parses card notations or fails the test.
func mustCards(t *testing.T, notations ...string) []Card {
	t.Helper()
	cards, err := ParseCards(notations)
	require.NoError(t, err)
	return cards
}

func TestEvaluateFiveCardHands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cards       []string
		wantRank    HandRank
		wantPrimary []int
		wantKickers []int
	}{
		{
			name:        "royal flush",
			cards:       []string{"Ah", "Kh", "Qh", "Jh", "10h"},
			wantRank:    RoyalFlush,
			wantPrimary: []int{14},
		},
		{
			name:        "straight flush nine high",
			cards:       []string{"9c", "8c", "7c", "6c", "5c"},
			wantRank:    StraightFlush,
			wantPrimary: []int{9},
		},
		{
			name:        "steel wheel is a five high straight flush",
			cards:       []string{"Ad", "2d", "3d", "4d", "5d"},
			wantRank:    StraightFlush,
			wantPrimary: []int{5},
		},
		{
			name:        "four of a kind",
			cards:       []string{"Qh", "Qd", "Qc", "Qs", "7h"},
			wantRank:    FourOfAKind,
			wantPrimary: []int{12},
			wantKickers: []int{7},
		},
		{
			name:        "full house",
			cards:       []string{"8h", "8d", "8c", "Kh", "Kd"},
			wantRank:    FullHouse,
			wantPrimary: []int{8, 13},
		},
		{
			name:        "flush",
			cards:       []string{"Ks", "Js", "9s", "6s", "3s"},
			wantRank:    Flush,
			wantPrimary: []int{13, 11, 9, 6, 3},
		},
		{
			name:        "straight",
			cards:       []string{"9h", "8d", "7c", "6s", "5h"},
			wantRank:    Straight,
			wantPrimary: []int{9},
		},
		{
			name:        "wheel straight counts ace low",
			cards:       []string{"Ah", "2d", "3c", "4s", "5h"},
			wantRank:    Straight,
			wantPrimary: []int{5},
		},
		{
			name:        "broadway straight",
			cards:       []string{"Ah", "Kd", "Qc", "Js", "10h"},
			wantRank:    Straight,
			wantPrimary: []int{14},
		},
		{
			name:        "three of a kind",
			cards:       []string{"7h", "7d", "7c", "Kh", "2d"},
			wantRank:    ThreeOfAKind,
			wantPrimary: []int{7},
			wantKickers: []int{13, 2},
		},
		{
			name:        "two pair with pairs descending",
			cards:       []string{"Jh", "Jd", "4c", "4s", "9h"},
			wantRank:    TwoPair,
			wantPrimary: []int{11, 4},
			wantKickers: []int{9},
		},
		{
			name:        "one pair",
			cards:       []string{"10h", "10d", "Ah", "7c", "3s"},
			wantRank:    OnePair,
			wantPrimary: []int{10},
			wantKickers: []int{14, 7, 3},
		},
		{
			name:        "high card",
			cards:       []string{"Ah", "Jd", "8c", "6s", "2h"},
			wantRank:    HighCard,
			wantPrimary: []int{14},
			wantKickers: []int{11, 8, 6, 2},
		},
		{
			name:        "ace to five offsuit is not a flush",
			cards:       []string{"Ah", "2h", "3h", "4h", "5d"},
			wantRank:    Straight,
			wantPrimary: []int{5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			hand, err := Evaluate(mustCards(t, tc.cards...))
			require.NoError(t, err)
			assert.Equal(t, tc.wantRank, hand.Rank)
			assert.Equal(t, tc.wantPrimary, hand.PrimaryValues)
			assert.Equal(t, tc.wantKickers, hand.Kickers)
			assert.Len(t, hand.Cards, 5)
		})
	}
}

func TestEvaluateRejectsShortHands(t *testing.T) {
	t.Parallel()

	for n := 0; n < 5; n++ {
		cards := mustCards(t, "Ah", "Kh", "Qh", "Jh")[:n]
		_, err := Evaluate(cards)
		assert.ErrorIs(t, err, ErrTooFewCards, "%d cards", n)
	}
}

func TestEvaluateSevenCardsFindsBestSubset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cards       []string
		wantRank    HandRank
		wantPrimary []int
	}{
		{
			name:        "royal flush buried in seven",
			cards:       []string{"Ah", "Kh", "2c", "Qh", "7d", "Jh", "10h"},
			wantRank:    RoyalFlush,
			wantPrimary: []int{14},
		},
		{
			name:        "full house beats the flush subset",
			cards:       []string{"9h", "9d", "9c", "Kh", "Kd", "7h", "2h"},
			wantRank:    FullHouse,
			wantPrimary: []int{9, 13},
		},
		{
			name:        "six cards pick the higher straight",
			cards:       []string{"5h", "6d", "7c", "8s", "9h", "10d"},
			wantRank:    Straight,
			wantPrimary: []int{10},
		},
		{
			name:        "two pair picks best two of three pairs",
			cards:       []string{"2h", "2d", "8c", "8s", "Kh", "Kd", "5c"},
			wantRank:    TwoPair,
			wantPrimary: []int{13, 8},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			hand, err := Evaluate(mustCards(t, tc.cards...))
			require.NoError(t, err)
			assert.Equal(t, tc.wantRank, hand.Rank)
			assert.Equal(t, tc.wantPrimary, hand.PrimaryValues)
		})
	}
}

func TestCompareOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    []string
		b    []string
		want int
	}{
		{
			name: "higher category wins",
			a:    []string{"2h", "2d", "2c", "7s", "9h"},
			b:    []string{"Ah", "Ad", "Kc", "Qs", "Jh"},
			want: 1,
		},
		{
			name: "same category decided by primary",
			a:    []string{"Kh", "Kd", "3c", "5s", "8h"},
			b:    []string{"Qh", "Qd", "Ac", "Js", "9h"},
			want: 1,
		},
		{
			name: "pair decided by last kicker",
			a:    []string{"Kh", "Kd", "Ah", "7c", "4s"},
			b:    []string{"Ks", "Kc", "Ad", "7d", "3s"},
			want: 1,
		},
		{
			name: "exact tie across suits",
			a:    []string{"Ah", "Kd", "Qc", "Js", "9h"},
			b:    []string{"As", "Kc", "Qh", "Jd", "9c"},
			want: 0,
		},
		{
			name: "wheel loses to six high straight",
			a:    []string{"Ah", "2d", "3c", "4s", "5h"},
			b:    []string{"2h", "3d", "4c", "5s", "6h"},
			want: -1,
		},
		{
			name: "two pair decided by second pair",
			a:    []string{"Ah", "Ad", "9c", "9s", "2h"},
			b:    []string{"As", "Ac", "8h", "8d", "Kh"},
			want: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Compare(mustCards(t, tc.a...), mustCards(t, tc.b...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// Antisymmetry.
			flipped, err := Compare(mustCards(t, tc.b...), mustCards(t, tc.a...))
			require.NoError(t, err)
			assert.Equal(t, -tc.want, flipped)
		})
	}
}

func TestCompareRejectsShortHands(t *testing.T) {
	t.Parallel()

	_, err := Compare(mustCards(t, "Ah", "Kh"), mustCards(t, "2h", "3d", "4c", "5s", "7h"))
	assert.ErrorIs(t, err, ErrTooFewCards)
}
