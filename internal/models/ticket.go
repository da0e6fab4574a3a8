package models

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Ticket numbers are drawn without replacement from [NumberMin, NumberMax].
const (
	TicketSize = 5
	NumberMin  = 1
	NumberMax  = 15
)

// NumberPicker produces one set of TicketSize distinct integers in
// [NumberMin, NumberMax], sorted ascending. Both ticket generation and the
// winning-number draw go through a picker so tests can fix the outcome.
type NumberPicker interface {
	Pick() []int
}

// RandPicker is the default NumberPicker backed by math/rand.
type RandPicker struct {
	rng *rand.Rand
}

// NewRandPicker returns a picker seeded from the current time.
func NewRandPicker() *RandPicker {
	return NewSeededPicker(time.Now().UnixNano())
}

// NewSeededPicker returns a picker with a fixed seed, for reproducible draws.
func NewSeededPicker(seed int64) *RandPicker {
	return &RandPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick draws TicketSize distinct numbers without replacement.
func (p *RandPicker) Pick() []int {
	perm := p.rng.Perm(NumberMax - NumberMin + 1)
	numbers := make([]int, TicketSize)
	for i := range numbers {
		numbers[i] = perm[i] + NumberMin
	}
	sort.Ints(numbers)
	return numbers
}

// Ticket is a fixed set of distinct numbers, immutable after creation.
type Ticket struct {
	Numbers []int `json:"numbers"`
}

// NewTicket generates a ticket from the given picker.
func NewTicket(picker NumberPicker) *Ticket {
	return &Ticket{Numbers: picker.Pick()}
}

// CountMatches returns how many of the ticket's numbers appear in the
// winning set.
func (t *Ticket) CountMatches(winningNumbers []int) int {
	winning := make(map[int]bool, len(winningNumbers))
	for _, n := range winningNumbers {
		winning[n] = true
	}
	count := 0
	for _, n := range t.Numbers {
		if winning[n] {
			count++
		}
	}
	return count
}

// String renders the ticket numbers as a space-separated line.
func (t *Ticket) String() string {
	return FormatNumbers(t.Numbers)
}

// FormatNumbers renders a number set the way tickets and winning numbers are
// displayed: space-separated, in the stored order.
func FormatNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
