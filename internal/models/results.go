package models

import "github.com/shopspring/decimal"

// WinnerResult is one participant's outcome within a prize group.
type WinnerResult struct {
	Name        string          `json:"name"`
	Count       int             `json:"count"`
	TotalReward decimal.Decimal `json:"total_reward"`
}

// GroupResult holds a prize group's winners in participant registration
// order. An empty Winners slice means nobody reached the tier.
type GroupResult struct {
	Label   string         `json:"label"`
	Winners []WinnerResult `json:"winners"`
}

// Winner looks up one participant's result within the group.
func (g GroupResult) Winner(name string) (WinnerResult, bool) {
	for _, w := range g.Winners {
		if w.Name == name {
			return w, true
		}
	}
	return WinnerResult{}, false
}

// RaffleResults is the settlement outcome of one round: all four prize
// groups, always present, ordered by match count.
type RaffleResults []GroupResult

// Group looks up a group by its label.
func (r RaffleResults) Group(label string) (GroupResult, bool) {
	for _, g := range r {
		if g.Label == label {
			return g, true
		}
	}
	return GroupResult{}, false
}

// TotalPayout sums every winner's reward across all groups.
func (r RaffleResults) TotalPayout() decimal.Decimal {
	total := decimal.Zero
	for _, g := range r {
		for _, w := range g.Winners {
			total = total.Add(w.TotalReward)
		}
	}
	return total
}
