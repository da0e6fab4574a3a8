package models

// MaxTickets caps how many tickets one participant may hold within a draw.
const MaxTickets = 5

// Participant is a named entrant owning the tickets purchased this draw.
type Participant struct {
	Name    string    `json:"name"`
	Tickets []*Ticket `json:"tickets"`
}

// NewParticipant creates a participant with no tickets.
func NewParticipant(name string) *Participant {
	return &Participant{Name: name}
}

// Remaining returns how many more tickets the participant may purchase.
func (p *Participant) Remaining() int {
	return MaxTickets - len(p.Tickets)
}

// PurchaseTickets issues up to requested new tickets, clamped to the
// remaining allowance, and returns the tickets actually issued. Zero tickets
// issued means the cap was already reached; that is a normal outcome, not an
// error.
func (p *Participant) PurchaseTickets(requested int, picker NumberPicker) []*Ticket {
	remaining := p.Remaining()
	if remaining <= 0 {
		return nil
	}
	if requested > remaining {
		requested = remaining
	}
	issued := make([]*Ticket, 0, requested)
	for i := 0; i < requested; i++ {
		ticket := NewTicket(picker)
		p.Tickets = append(p.Tickets, ticket)
		issued = append(issued, ticket)
	}
	return issued
}
