package api

import (
	"net/http"

	"github.com/dpoletti/pokertrain/internal/api/shared"
	"github.com/dpoletti/pokertrain/internal/domain/poker"
)

// HandsHandler serves the static hand reference data. It has no dependencies;
// everything it returns is derived from the poker domain tables.
type HandsHandler struct{}

// NewHandsHandler creates a hands reference handler.
func NewHandsHandler() *HandsHandler {
	return &HandsHandler{}
}

// GetRankings handles GET /api/hands/rankings, returning all ten hand
// rankings strongest first.
func (h *HandsHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	rankings := make([]HandRankingInfo, 0, len(poker.HandRanks))
	for i := len(poker.HandRanks) - 1; i >= 0; i-- {
		rank := poker.HandRanks[i]
		rankings = append(rankings, HandRankingInfo{
			Rank:        int(rank),
			Name:        rank.Name(),
			Description: rank.Description(),
			Example:     rank.Example(),
			Strength:    int(rank),
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, RankingsResponse{Rankings: rankings})
}

// categoryDescriptions and categoryColors are chart rendering metadata.
var (
	categoryDescriptions = map[poker.HandCategory]string{
		poker.CategoryPremium:  "Top tier hands - always raise",
		poker.CategoryStrong:   "Strong hands - raise or call raises",
		poker.CategoryPlayable: "Playable hands - good in position",
		poker.CategoryMarginal: "Marginal hands - situational",
		poker.CategoryWeak:     "Weak hands - generally fold",
	}

	categoryColors = map[poker.HandCategory]string{
		poker.CategoryPremium:  "#4CAF50",
		poker.CategoryStrong:   "#8BC34A",
		poker.CategoryPlayable: "#FFC107",
		poker.CategoryMarginal: "#FF9800",
		poker.CategoryWeak:     "#f44336",
	}
)

// GetStartingHands handles GET /api/hands/starting, returning the full chart
// plus category metadata, strongest tier first.
func (h *HandsHandler) GetStartingHands(w http.ResponseWriter, r *http.Request) {
	chart := poker.Chart()
	hands := make([]ChartHand, 0, len(chart))
	for _, entry := range chart {
		notation := entry.Notation
		hands = append(hands, ChartHand{
			Notation:     notation,
			Card1:        notation[:1],
			Card2:        notation[1:2],
			Suited:       entry.Hand.Suited,
			Category:     int(entry.Category),
			CategoryName: entry.Category.Name(),
		})
	}

	categories := make([]CategoryInfo, 0, len(poker.Categories))
	for i := len(poker.Categories) - 1; i >= 0; i-- {
		c := poker.Categories[i]
		categories = append(categories, CategoryInfo{
			Value:       int(c),
			Name:        c.Name(),
			Description: categoryDescriptions[c],
			Color:       categoryColors[c],
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StartingHandsResponse{
		Hands:      hands,
		Categories: categories,
	})
}
