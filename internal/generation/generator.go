package generation

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/domain/poker"
)

// FallbackPolicy controls what happens when hand synthesis exhausts its
// attempt budget without producing a hand of the target rank.
type FallbackPolicy string

const (
	// FallbackDraw falls back to an arbitrary 5-card draw. The drawn hand is
	// not re-validated against the target, so the stored answer key can be
	// wrong for the shown cards. This matches the historical behavior.
	FallbackDraw FallbackPolicy = "draw"

	// FallbackError fails the generation with ErrSynthesisFailed instead.
	FallbackError FallbackPolicy = "error"
)

// ParseFallbackPolicy parses a configured fallback policy string.
func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch FallbackPolicy(s) {
	case FallbackDraw, FallbackError:
		return FallbackPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown fallback policy %q", s)
	}
}

// DefaultMaxSynthesisAttempts bounds the construct-validate retry loop.
const DefaultMaxSynthesisAttempts = 100

// Config holds generator settings.
type Config struct {
	// MaxSynthesisAttempts caps the construct-validate loop per hand.
	// Zero means DefaultMaxSynthesisAttempts.
	MaxSynthesisAttempts int
	// Fallback selects the exhaustion behavior. Empty means FallbackDraw.
	Fallback FallbackPolicy
}

// Generator produces training questions.
type Generator interface {
	// Generate builds a question of the given type and difficulty.
	// Difficulty is clamped to [1,5].
	Generate(questionType domain.QuestionType, difficulty int) (*domain.Question, error)

	// GenerateRandom builds a question of a random type, optionally
	// excluding some types.
	GenerateRandom(difficulty int, exclude []domain.QuestionType) (*domain.Question, error)
}

type ruleGenerator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a rule-based question generator. A nil rng gets a freshly
// seeded source; tests inject a deterministic one.
func New(cfg Config, rng *rand.Rand) Generator {
	if cfg.MaxSynthesisAttempts <= 0 {
		cfg.MaxSynthesisAttempts = DefaultMaxSynthesisAttempts
	}
	if cfg.Fallback == "" {
		cfg.Fallback = FallbackDraw
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ruleGenerator{cfg: cfg, rng: rng}
}

func (g *ruleGenerator) Generate(questionType domain.QuestionType, difficulty int) (*domain.Question, error) {
	difficulty = domain.ClampDifficulty(difficulty)
	switch questionType {
	case domain.QuestionHandRanking:
		return g.generateHandRanking(difficulty)
	case domain.QuestionWhichWins:
		return g.generateWhichWins(difficulty)
	case domain.QuestionStartingHand:
		return g.generateStartingHand(difficulty)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestionType, questionType)
	}
}

func (g *ruleGenerator) GenerateRandom(difficulty int, exclude []domain.QuestionType) (*domain.Question, error) {
	excluded := make(map[domain.QuestionType]bool, len(exclude))
	for _, t := range exclude {
		excluded[t] = true
	}
	var pool []domain.QuestionType
	for _, t := range domain.QuestionTypes {
		if !excluded[t] {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: all types excluded", ErrUnknownQuestionType)
	}
	return g.Generate(pool[g.intN(len(pool))], difficulty)
}

// generateHandRanking builds a "What hand is this?" question.
func (g *ruleGenerator) generateHandRanking(difficulty int) (*domain.Question, error) {
	pool, ok := handRankingPools[difficulty]
	if !ok {
		return nil, fmt.Errorf("%w: hand_ranking difficulty %d", ErrUnknownRankOrCategory, difficulty)
	}
	target := pool[g.intN(len(pool))]

	cards, err := g.synthesizeHand(target, nil)
	if err != nil {
		return nil, err
	}

	choices := g.buildRankChoices(target)

	payload, err := json.Marshal(map[string]any{
		"target_rank": int(target),
		"cards":       notations(cards),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode question payload: %w", err)
	}

	return &domain.Question{
		ID:            uuid.NewString(),
		Type:          domain.QuestionHandRanking,
		Prompt:        "What hand is this?",
		Cards:         cards,
		Choices:       choices,
		CorrectAnswer: target.Name(),
		Explanation:   fmt.Sprintf("This is a %s. %s", target.Name(), target.Description()),
		Difficulty:    difficulty,
		Payload:       payload,
	}, nil
}

// buildRankChoices returns 4 unique choices: the correct rank name, up to 2
// "nearby" ranks within ±2 ordinal distance, and random filler, shuffled.
func (g *ruleGenerator) buildRankChoices(target poker.HandRank) []string {
	choices := []string{target.Name()}

	var nearby []poker.HandRank
	for _, r := range poker.HandRanks {
		d := int(r) - int(target)
		if r != target && d >= -2 && d <= 2 {
			nearby = append(nearby, r)
		}
	}
	g.rng.Shuffle(len(nearby), func(i, j int) { nearby[i], nearby[j] = nearby[j], nearby[i] })
	for i := 0; i < len(nearby) && i < 2; i++ {
		choices = append(choices, nearby[i].Name())
	}

	for len(choices) < 4 {
		candidate := poker.HandRanks[g.intN(len(poker.HandRanks))].Name()
		if !contains(choices, candidate) {
			choices = append(choices, candidate)
		}
	}

	g.rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	return choices
}

// generateWhichWins builds a "Which hand wins?" question. Easy levels pit
// clearly different ranks against each other; hard levels use the same rank
// so the answer comes down to kickers.
func (g *ruleGenerator) generateWhichWins(difficulty int) (*domain.Question, error) {
	var rank1, rank2 poker.HandRank
	if difficulty <= 2 {
		rank1 = whichWinsEasyFirstRanks[g.intN(len(whichWinsEasyFirstRanks))]
		var distant []poker.HandRank
		for _, r := range poker.HandRanks {
			d := int(r) - int(rank1)
			if d >= 2 || d <= -2 {
				distant = append(distant, r)
			}
		}
		if len(distant) > 0 {
			rank2 = distant[g.intN(len(distant))]
		} else {
			rank2 = poker.HighCard
		}
	} else {
		rank1 = poker.HandRanks[g.intN(len(poker.HandRanks))]
		rank2 = rank1
	}

	cards1, err := g.synthesizeHand(rank1, nil)
	if err != nil {
		return nil, err
	}
	cards2, err := g.synthesizeHand(rank2, cards1)
	if err != nil {
		return nil, err
	}

	eval1, err := poker.Evaluate(cards1)
	if err != nil {
		return nil, err
	}
	eval2, err := poker.Evaluate(cards2)
	if err != nil {
		return nil, err
	}

	var correct, explanation string
	switch eval1.CompareTo(eval2) {
	case 1:
		correct = "Hand 1"
		explanation = fmt.Sprintf("Hand 1 (%s) beats Hand 2 (%s)", eval1.Rank.Name(), eval2.Rank.Name())
	case -1:
		correct = "Hand 2"
		explanation = fmt.Sprintf("Hand 2 (%s) beats Hand 1 (%s)", eval2.Rank.Name(), eval1.Rank.Name())
	default:
		correct = "Tie"
		explanation = fmt.Sprintf("Both hands are %s with equal kickers - it's a tie!", eval1.Rank.Name())
	}

	payload, err := json.Marshal(map[string]any{
		"cards1": notations(cards1),
		"cards2": notations(cards2),
		"eval1":  int(eval1.Rank),
		"eval2":  int(eval2.Rank),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode question payload: %w", err)
	}

	return &domain.Question{
		ID:            uuid.NewString(),
		Type:          domain.QuestionWhichWins,
		Prompt:        "Which hand wins?",
		Cards:         cards1,
		Cards2:        cards2,
		Choices:       []string{"Hand 1", "Hand 2", "Tie"},
		CorrectAnswer: correct,
		Explanation:   explanation,
		Difficulty:    difficulty,
		Payload:       payload,
	}, nil
}

// generateStartingHand builds a preflop question: a play/fold decision with
// a table position at difficulty 3 and above, otherwise a direct strength
// classification.
func (g *ruleGenerator) generateStartingHand(difficulty int) (*domain.Question, error) {
	pool, ok := startingHandPools[difficulty]
	if !ok {
		return nil, fmt.Errorf("%w: starting_hand difficulty %d", ErrUnknownRankOrCategory, difficulty)
	}
	category := pool[g.intN(len(pool))]
	hand := poker.RandomStartingHandInCategory(g.rng, category)
	cards := hand.Cards(g.rng)

	var prompt, correct, explanation string
	var choices []string
	var position *poker.Position

	if difficulty >= 3 {
		pos := poker.Positions[g.intN(len(poker.Positions))]
		position = &pos
		play := poker.ShouldPlay(hand, pos)

		prompt = fmt.Sprintf("Should you play %s from %s position?", hand.Notation(), pos)
		choices = []string{"Play", "Fold"}
		if play {
			correct = "Play"
			explanation = fmt.Sprintf("%s is a %s hand, playable from %s position.",
				hand.Notation(), category.Name(), pos)
		} else {
			correct = "Fold"
			explanation = fmt.Sprintf("%s is a %s hand, too weak for %s position.",
				hand.Notation(), category.Name(), pos)
		}
	} else {
		prompt = fmt.Sprintf("How strong is %s?", hand.Notation())
		choices = []string{"Premium", "Strong", "Playable", "Marginal", "Weak"}
		correct = category.Name()
		explanation = fmt.Sprintf("%s is categorized as a %s starting hand.", hand.Notation(), correct)
	}

	payloadFields := map[string]any{
		"notation": hand.Notation(),
		"category": int(category),
		"cards":    notations(cards),
	}
	if position != nil {
		payloadFields["position"] = string(*position)
	}
	payload, err := json.Marshal(payloadFields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode question payload: %w", err)
	}

	return &domain.Question{
		ID:            uuid.NewString(),
		Type:          domain.QuestionStartingHand,
		Prompt:        prompt,
		Cards:         cards,
		Choices:       choices,
		CorrectAnswer: correct,
		Explanation:   explanation,
		Difficulty:    difficulty,
		Payload:       payload,
	}, nil
}

// synthesizeHand builds 5 cards realizing exactly the target rank. Each
// candidate from the rank-specific constructor is validated against the
// evaluator and against the excluded cards; after MaxSynthesisAttempts the
// configured fallback applies.
func (g *ruleGenerator) synthesizeHand(target poker.HandRank, exclude []poker.Card) ([]poker.Card, error) {
	for attempt := 0; attempt < g.cfg.MaxSynthesisAttempts; attempt++ {
		cards := g.constructHand(target)
		if overlaps(cards, exclude) {
			continue
		}
		eval, err := poker.Evaluate(cards)
		if err != nil {
			return nil, err
		}
		if eval.Rank == target {
			return cards, nil
		}
	}

	if g.cfg.Fallback == FallbackError {
		return nil, fmt.Errorf("%w: %s after %d attempts", ErrSynthesisFailed, target.Name(), g.cfg.MaxSynthesisAttempts)
	}

	// Unvalidated fallback draw; see FallbackDraw.
	deck := poker.NewDeck()
	if len(exclude) > 0 {
		if err := deck.RemoveSpecific(exclude); err != nil {
			return nil, err
		}
	}
	deck.Shuffle(g.rng)
	return deck.Draw(5)
}

// constructHand dispatches to the rank-specific constructor.
func (g *ruleGenerator) constructHand(target poker.HandRank) []poker.Card {
	switch target {
	case poker.RoyalFlush:
		return g.makeRoyalFlush()
	case poker.StraightFlush:
		return g.makeStraightFlush()
	case poker.FourOfAKind:
		return g.makeFourOfAKind()
	case poker.FullHouse:
		return g.makeFullHouse()
	case poker.Flush:
		return g.makeFlush()
	case poker.Straight:
		return g.makeStraight()
	case poker.ThreeOfAKind:
		return g.makeThreeOfAKind()
	case poker.TwoPair:
		return g.makeTwoPair()
	case poker.OnePair:
		return g.makeOnePair()
	default:
		return g.makeHighCard()
	}
}

func (g *ruleGenerator) makeRoyalFlush() []poker.Card {
	suit := g.randomSuit()
	return []poker.Card{
		{Rank: poker.Ace, Suit: suit},
		{Rank: poker.King, Suit: suit},
		{Rank: poker.Queen, Suit: suit},
		{Rank: poker.Jack, Suit: suit},
		{Rank: poker.Ten, Suit: suit},
	}
}

// makeStraightFlush picks a 5-high to 9-high run in one suit; 5-high is the
// steel wheel A-2-3-4-5.
func (g *ruleGenerator) makeStraightFlush() []poker.Card {
	suit := g.randomSuit()
	high := 5 + g.intN(5)
	cards := make([]poker.Card, 0, 5)
	for _, r := range straightRanks(high) {
		cards = append(cards, poker.Card{Rank: poker.Rank(r), Suit: suit})
	}
	return cards
}

func (g *ruleGenerator) makeFourOfAKind() []poker.Card {
	quad := g.randomRank()
	cards := make([]poker.Card, 0, 5)
	for _, suit := range poker.Suits {
		cards = append(cards, poker.Card{Rank: quad, Suit: suit})
	}
	kicker := g.randomRankExcept(quad)
	cards = append(cards, poker.Card{Rank: kicker, Suit: g.randomSuit()})
	return cards
}

func (g *ruleGenerator) makeFullHouse() []poker.Card {
	trips := g.randomRank()
	pair := g.randomRankExcept(trips)
	suits := g.shuffledSuits()
	return []poker.Card{
		{Rank: trips, Suit: suits[0]},
		{Rank: trips, Suit: suits[1]},
		{Rank: trips, Suit: suits[2]},
		{Rank: pair, Suit: suits[0]},
		{Rank: pair, Suit: suits[1]},
	}
}

func (g *ruleGenerator) makeFlush() []poker.Card {
	suit := g.randomSuit()
	ranks := g.distinctRanks(5)
	for isRun(ranks) {
		ranks = g.distinctRanks(5)
	}
	cards := make([]poker.Card, 0, 5)
	for _, r := range ranks {
		cards = append(cards, poker.Card{Rank: poker.Rank(r), Suit: suit})
	}
	return cards
}

func (g *ruleGenerator) makeStraight() []poker.Card {
	high := 5 + g.intN(10) // 5-high wheel through ace-high
	ranks := straightRanks(high)
	suits := g.mixedSuits(5)
	cards := make([]poker.Card, 0, 5)
	for i, r := range ranks {
		cards = append(cards, poker.Card{Rank: poker.Rank(r), Suit: suits[i]})
	}
	return cards
}

func (g *ruleGenerator) makeThreeOfAKind() []poker.Card {
	trips := g.randomRank()
	suits := g.shuffledSuits()
	k1 := g.randomRankExcept(trips)
	k2 := g.randomRankExcept(trips, k1)
	return []poker.Card{
		{Rank: trips, Suit: suits[0]},
		{Rank: trips, Suit: suits[1]},
		{Rank: trips, Suit: suits[2]},
		{Rank: k1, Suit: g.randomSuit()},
		{Rank: k2, Suit: g.randomSuit()},
	}
}

func (g *ruleGenerator) makeTwoPair() []poker.Card {
	ranks := g.distinctRanks(3)
	suits := g.shuffledSuits()
	return []poker.Card{
		{Rank: poker.Rank(ranks[0]), Suit: suits[0]},
		{Rank: poker.Rank(ranks[0]), Suit: suits[1]},
		{Rank: poker.Rank(ranks[1]), Suit: suits[2]},
		{Rank: poker.Rank(ranks[1]), Suit: suits[3]},
		{Rank: poker.Rank(ranks[2]), Suit: g.randomSuit()},
	}
}

func (g *ruleGenerator) makeOnePair() []poker.Card {
	pair := g.randomRank()
	suits := g.shuffledSuits()
	k1 := g.randomRankExcept(pair)
	k2 := g.randomRankExcept(pair, k1)
	k3 := g.randomRankExcept(pair, k1, k2)
	return []poker.Card{
		{Rank: pair, Suit: suits[0]},
		{Rank: pair, Suit: suits[1]},
		{Rank: k1, Suit: g.randomSuit()},
		{Rank: k2, Suit: g.randomSuit()},
		{Rank: k3, Suit: g.randomSuit()},
	}
}

func (g *ruleGenerator) makeHighCard() []poker.Card {
	ranks := g.distinctRanks(5)
	for isRun(ranks) {
		ranks = g.distinctRanks(5)
	}
	suits := g.mixedSuits(5)
	cards := make([]poker.Card, 0, 5)
	for i, r := range ranks {
		cards = append(cards, poker.Card{Rank: poker.Rank(r), Suit: suits[i]})
	}
	return cards
}

// straightRanks returns the 5 ranks of a high-card run, descending. A 5-high
// run is the wheel and includes the ace.
func straightRanks(high int) []int {
	if high == 5 {
		return []int{5, 4, 3, 2, 14}
	}
	ranks := make([]int, 0, 5)
	for r := high; r > high-5; r-- {
		ranks = append(ranks, r)
	}
	return ranks
}

// isRun reports whether 5 distinct descending ranks form a straight,
// including the wheel.
func isRun(ranks []int) bool {
	if ranks[0]-ranks[4] == 4 {
		return true
	}
	return ranks[0] == 14 && ranks[1] == 5 && ranks[2] == 4 && ranks[3] == 3 && ranks[4] == 2
}

// distinctRanks returns n distinct rank values sorted descending.
func (g *ruleGenerator) distinctRanks(n int) []int {
	values := make([]int, len(poker.Ranks))
	for i, r := range poker.Ranks {
		values[i] = int(r)
	}
	g.rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	picked := values[:n]
	// insertion sort descending; n is at most 5
	for i := 1; i < len(picked); i++ {
		for j := i; j > 0 && picked[j] > picked[j-1]; j-- {
			picked[j], picked[j-1] = picked[j-1], picked[j]
		}
	}
	return picked
}

// mixedSuits returns n random suits that are guaranteed not to all match.
func (g *ruleGenerator) mixedSuits(n int) []poker.Suit {
	for {
		suits := make([]poker.Suit, n)
		same := true
		for i := range suits {
			suits[i] = g.randomSuit()
			if suits[i] != suits[0] {
				same = false
			}
		}
		if !same {
			return suits
		}
	}
}

func (g *ruleGenerator) randomRank() poker.Rank {
	return poker.Ranks[g.intN(len(poker.Ranks))]
}

func (g *ruleGenerator) randomRankExcept(excluded ...poker.Rank) poker.Rank {
	for {
		r := g.randomRank()
		ok := true
		for _, e := range excluded {
			if r == e {
				ok = false
				break
			}
		}
		if ok {
			return r
		}
	}
}

func (g *ruleGenerator) randomSuit() poker.Suit {
	return poker.Suits[g.intN(len(poker.Suits))]
}

func (g *ruleGenerator) shuffledSuits() []poker.Suit {
	suits := make([]poker.Suit, len(poker.Suits))
	copy(suits, poker.Suits)
	g.rng.Shuffle(len(suits), func(i, j int) { suits[i], suits[j] = suits[j], suits[i] })
	return suits
}

func (g *ruleGenerator) intN(n int) int {
	return g.rng.IntN(n)
}

func overlaps(cards, exclude []poker.Card) bool {
	for _, c := range cards {
		for _, e := range exclude {
			if c == e {
				return true
			}
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func notations(cards []poker.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
