package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"raffle/internal/errors"
	"raffle/internal/models"

	"github.com/google/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pot accounting. Fixed amounts, not configuration.
var (
	basePotContribution = decimal.NewFromInt(100)
	ticketPrice         = decimal.NewFromInt(5)
)

// drawPhase tracks where the current round is in its lifecycle.
type drawPhase int

const (
	phaseInactive drawPhase = iota // no round in progress
	phaseActive                    // accepting entries, numbers not yet drawn
	phaseDrawn                     // numbers drawn, awaiting settlement
)

// EntrySummary reports the outcome of one RegisterEntry call.
type EntrySummary struct {
	Name            string
	Requested       int
	Issued          []*models.Ticket
	PotContribution decimal.Decimal
	// Note is set when the request was clamped to the remaining allowance
	// or rejected outright because the participant hit the ticket cap.
	Note string
}

// RaffleService owns the single in-process draw: pot accounting, the
// participant registry, winning-number generation, settlement, and the
// round reset. Every lifecycle precondition is enforced here, not by the
// callers.
type RaffleService struct {
	mu             sync.Mutex
	picker         models.NumberPicker
	phase          drawPhase
	potSize        decimal.Decimal
	participants   []*models.Participant
	winningNumbers []int
	roundID        uuid.UUID
	results        models.RaffleResults
	settled        bool // results belong to the current round
}

// NewRaffleService creates an engine with the default random picker.
func NewRaffleService() *RaffleService {
	return NewRaffleServiceWithPicker(models.NewRandPicker())
}

// NewRaffleServiceWithPicker creates an engine drawing numbers from picker.
func NewRaffleServiceWithPicker(picker models.NumberPicker) *RaffleService {
	return &RaffleService{
		picker:  picker,
		potSize: decimal.Zero,
	}
}

// DrawStatus returns the status line shown by both surfaces.
func (s *RaffleService) DrawStatus() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == phaseInactive {
		return "Status: Draw has not started"
	}
	return fmt.Sprintf("Status: Draw is ongoing. Raffle pot size is $%s", s.potSize)
}

// IsActive reports whether a round is in progress.
func (s *RaffleService) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase != phaseInactive
}

// PotSize returns the current pot.
func (s *RaffleService) PotSize() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.potSize
}

// RoundID returns the identifier assigned to the current round. It keeps the
// last round's value after finalisation, matching Results.
func (s *RaffleService) RoundID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roundID
}

// WinningNumbers returns the drawn numbers, empty before the draw.
func (s *RaffleService) WinningNumbers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.winningNumbers...)
}

// Results returns the most recently settled results; nil before any
// settlement. The finished round's results stay readable until the next
// SettleResults call overwrites them.
func (s *RaffleService) Results() models.RaffleResults {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// StartNewDraw activates a new round and adds the base contribution to the
// pot. Valid only while no round is in progress.
func (s *RaffleService) StartNewDraw() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseInactive {
		return decimal.Zero, errors.InvalidOperation("draw is already active")
	}

	s.phase = phaseActive
	s.roundID = uuid.New()
	s.settled = false
	s.potSize = s.potSize.Add(basePotContribution)
	logger.Infof("Started draw %s, pot size $%s", s.roundID, s.potSize)
	return s.potSize, nil
}

// ValidateEntryInput parses a raw "name,ticketCount" pair. Both fields are
// trimmed; the count must be a digits-only positive integer.
func (s *RaffleService) ValidateEntryInput(raw string) (string, int, error) {
	if strings.Count(raw, ",") != 1 {
		return "", 0, errors.InvalidInput("input must contain a single comma separating name and ticket count")
	}

	name, countField, _ := strings.Cut(raw, ",")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, errors.InvalidInput("name cannot be empty")
	}

	countField = strings.TrimSpace(countField)
	if !isDigits(countField) {
		return "", 0, errors.InvalidInput("ticket count must be a positive integer")
	}
	count, err := strconv.Atoi(countField)
	if err != nil || count <= 0 {
		return "", 0, errors.InvalidInput("ticket count must be a positive integer")
	}

	return name, count, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RegisterEntry looks up the participant by exact name, creating one on
// first purchase, issues tickets through the participant's allowance, and
// grows the pot by the per-ticket price for each ticket actually issued.
// Valid only while the round is accepting entries.
func (s *RaffleService) RegisterEntry(name string, ticketCount int) (*EntrySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case phaseInactive:
		return nil, errors.InvalidOperation("draw has not started")
	case phaseDrawn:
		return nil, errors.InvalidOperation("winning numbers have already been drawn")
	}

	participant := s.findParticipant(name)
	if participant == nil {
		participant = models.NewParticipant(name)
		s.participants = append(s.participants, participant)
	}

	remaining := participant.Remaining()
	issued := participant.PurchaseTickets(ticketCount, s.picker)

	summary := &EntrySummary{
		Name:            name,
		Requested:       ticketCount,
		Issued:          issued,
		PotContribution: ticketPrice.Mul(decimal.NewFromInt(int64(len(issued)))),
	}
	switch {
	case len(issued) == 0:
		summary.Note = fmt.Sprintf("%s has already purchased the maximum of %d tickets and cannot buy more.", name, models.MaxTickets)
	case len(issued) < ticketCount:
		summary.Note = fmt.Sprintf("%s requested %d tickets, but only %d more ticket(s) can be purchased.", name, ticketCount, remaining)
	}

	s.potSize = s.potSize.Add(summary.PotContribution)
	logger.Infof("Registered entry for %s: %d ticket(s) issued, pot size $%s", name, len(issued), s.potSize)
	return summary, nil
}

func (s *RaffleService) findParticipant(name string) *models.Participant {
	for _, p := range s.participants {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// DrawWinningNumbers generates the winning set and closes the round to new
// entries. Valid only while the round is active and not yet drawn.
func (s *RaffleService) DrawWinningNumbers() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case phaseInactive:
		return nil, errors.InvalidOperation("draw has not started")
	case phaseDrawn:
		return nil, errors.InvalidOperation("winning numbers have already been drawn")
	}

	s.winningNumbers = s.picker.Pick()
	s.phase = phaseDrawn
	logger.Infof("Draw %s winning numbers: %s", s.roundID, models.FormatNumbers(s.winningNumbers))
	return append([]int(nil), s.winningNumbers...), nil
}

// SettleResults computes the per-group, per-participant rewards. Each group's
// total winning-ticket count across all participants is the divisor for the
// per-ticket reward; a participant's total is their own count times that
// reward, rounded to 2 decimal places. All four groups are always present.
// Valid only after the winning numbers have been drawn.
func (s *RaffleService) SettleResults() (models.RaffleResults, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseDrawn {
		return nil, errors.InvalidOperation("winning numbers have not been drawn")
	}

	groups := models.PrizeGroups()
	results := make(models.RaffleResults, 0, len(groups))
	for _, group := range groups {
		// Registration order, so output is stable for a fixed picker.
		names := make([]string, 0)
		counts := make(map[string]int)
		totalTickets := 0
		for _, participant := range s.participants {
			for _, ticket := range participant.Tickets {
				if ticket.CountMatches(s.winningNumbers) != group.MatchCount {
					continue
				}
				if _, seen := counts[participant.Name]; !seen {
					names = append(names, participant.Name)
				}
				counts[participant.Name]++
				totalTickets++
			}
		}

		perTicket := group.CalculateReward(s.potSize, totalTickets)
		result := models.GroupResult{
			Label:   group.Label(),
			Winners: make([]models.WinnerResult, 0, len(names)),
		}
		for _, name := range names {
			count := counts[name]
			result.Winners = append(result.Winners, models.WinnerResult{
				Name:        name,
				Count:       count,
				TotalReward: perTicket.Mul(decimal.NewFromInt(int64(count))).Round(2),
			})
		}
		results = append(results, result)
	}

	s.results = results
	s.settled = true
	return results, nil
}

// FinalizeRound deducts the total payout from the pot, floored at zero, and
// resets the engine for the next round: participants and winning numbers are
// discarded and the draw goes inactive. Valid only after settlement.
func (s *RaffleService) FinalizeRound() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseDrawn || !s.settled {
		return decimal.Zero, errors.InvalidOperation("results have not been settled")
	}

	payout := s.results.TotalPayout()
	s.potSize = s.potSize.Sub(payout)
	if s.potSize.IsNegative() {
		s.potSize = decimal.Zero
	}
	s.participants = nil
	s.winningNumbers = nil
	s.phase = phaseInactive
	logger.Infof("Finalized draw %s: paid out $%s, pot size $%s", s.roundID, payout, s.potSize)
	return s.potSize, nil
}
