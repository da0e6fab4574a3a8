package models

import (
	"sort"
	"testing"
)

type fixedPicker struct {
	numbers []int
}

func (p fixedPicker) Pick() []int {
	return append([]int(nil), p.numbers...)
}

func TestRandPicker_Pick(t *testing.T) {
	picker := NewSeededPicker(1)

	for i := 0; i < 200; i++ {
		numbers := picker.Pick()

		if len(numbers) != TicketSize {
			t.Fatalf("Expected %d numbers, but got %d", TicketSize, len(numbers))
		}
		if !sort.IntsAreSorted(numbers) {
			t.Errorf("Expected sorted numbers, but got %v", numbers)
		}
		seen := make(map[int]bool)
		for _, n := range numbers {
			if n < NumberMin || n > NumberMax {
				t.Errorf("Number %d out of range [%d,%d]", n, NumberMin, NumberMax)
			}
			if seen[n] {
				t.Errorf("Duplicate number %d in %v", n, numbers)
			}
			seen[n] = true
		}
	}
}

func TestTicket_CountMatches(t *testing.T) {
	ticket := NewTicket(fixedPicker{numbers: []int{1, 2, 3, 4, 5}})

	tests := []struct {
		name     string
		winning  []int
		expected int
	}{
		{"no overlap", []int{6, 7, 8, 9, 10}, 0},
		{"partial overlap", []int{3, 4, 5, 6, 7}, 3},
		{"full overlap", []int{1, 2, 3, 4, 5}, 5},
		{"empty winning set", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ticket.CountMatches(tt.winning); got != tt.expected {
				t.Errorf("CountMatches(%v) = %d, expected %d", tt.winning, got, tt.expected)
			}
		})
	}
}

func TestTicket_String(t *testing.T) {
	ticket := NewTicket(fixedPicker{numbers: []int{1, 2, 10, 14, 15}})

	if got := ticket.String(); got != "1 2 10 14 15" {
		t.Errorf("Expected \"1 2 10 14 15\", but got %q", got)
	}
}
