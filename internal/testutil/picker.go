// Package testutil provides helpers shared by the package test suites.
package testutil

import "raffle/internal/models"

// SequencePicker feeds predetermined number sets to the engine in order,
// repeating the last set once the queue is exhausted. Tests use it to fix
// ticket numbers and the winning draw.
type SequencePicker struct {
	sets [][]int
	next int
}

var _ models.NumberPicker = (*SequencePicker)(nil)

// NewSequencePicker queues the given number sets.
func NewSequencePicker(sets ...[]int) *SequencePicker {
	return &SequencePicker{sets: sets}
}

// Pick returns the next queued set.
func (p *SequencePicker) Pick() []int {
	set := p.sets[p.next]
	if p.next < len(p.sets)-1 {
		p.next++
	}
	return append([]int(nil), set...)
}
