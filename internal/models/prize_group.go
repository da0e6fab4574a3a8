package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PrizeGroup is a reward tier: tickets matching exactly MatchCount winning
// numbers share RewardPercentage of the pot equally.
type PrizeGroup struct {
	MatchCount       int
	RewardPercentage decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// PrizeGroups returns the four fixed reward tiers in ascending match order:
// 2 matches pay 10% of the pot, 3 pay 15%, 4 pay 25%, 5 pay 50% (jackpot).
func PrizeGroups() []PrizeGroup {
	return []PrizeGroup{
		{MatchCount: 2, RewardPercentage: decimal.NewFromInt(10)},
		{MatchCount: 3, RewardPercentage: decimal.NewFromInt(15)},
		{MatchCount: 4, RewardPercentage: decimal.NewFromInt(25)},
		{MatchCount: 5, RewardPercentage: decimal.NewFromInt(50)},
	}
}

// Label returns the display name of the group.
func (g PrizeGroup) Label() string {
	if g.MatchCount == TicketSize {
		return fmt.Sprintf("Group %d (Jackpot)", g.MatchCount)
	}
	return fmt.Sprintf("Group %d", g.MatchCount)
}

// CalculateReward returns the reward per winning ticket, zero when the group
// has no winners. Rounding happens at settlement, not here.
func (g PrizeGroup) CalculateReward(potSize decimal.Decimal, winnerTicketCount int) decimal.Decimal {
	if winnerTicketCount == 0 {
		return decimal.Zero
	}
	return g.RewardPercentage.Div(oneHundred).Mul(potSize).Div(decimal.NewFromInt(int64(winnerTicketCount)))
}
