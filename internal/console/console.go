// Package console implements the interactive menu over the raffle engine.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"raffle/internal/models"
	"raffle/internal/services"
)

// Console reads menu selections from in and writes prompts and results to
// out. Engine errors are printed and the loop continues; the only way out is
// end of input.
type Console struct {
	service *services.RaffleService
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a console over the given engine and streams.
func New(service *services.RaffleService, in io.Reader, out io.Writer) *Console {
	return &Console{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops the menu until input is exhausted.
func (c *Console) Run() {
	for {
		c.printMenu()
		choice, ok := c.readLine()
		if !ok {
			return
		}
		c.handleChoice(strings.TrimSpace(choice))
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Welcome to My Raffle App")
	fmt.Fprintln(c.out, c.service.DrawStatus())
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "[1] Start a New Draw")
	fmt.Fprintln(c.out, "[2] Buy Tickets")
	fmt.Fprintln(c.out, "[3] Run Raffle")
	fmt.Fprint(c.out, "\nSelect an option: ")
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) handleChoice(choice string) {
	switch choice {
	case "1":
		c.startDraw()
	case "2":
		c.buyTickets()
	case "3":
		c.runRaffle()
	default:
		fmt.Fprintln(c.out, "Invalid choice, please select again.")
	}
}

func (c *Console) startDraw() {
	potSize, err := c.service.StartNewDraw()
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "\nNew Raffle draw has been started. Initial pot size: $%s\n", potSize)
}

func (c *Console) buyTickets() {
	fmt.Fprint(c.out, "\nEnter your name, no of tickets to purchase: ")
	line, ok := c.readLine()
	if !ok {
		return
	}

	name, ticketCount, err := c.service.ValidateEntryInput(line)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}

	summary, err := c.service.RegisterEntry(name, ticketCount)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}

	if summary.Note != "" {
		fmt.Fprintln(c.out, summary.Note)
	}
	if len(summary.Issued) == 0 {
		return
	}
	fmt.Fprintf(c.out, "\nHi %s, you are purchasing %d ticket(s).\n", summary.Name, len(summary.Issued))
	for i, ticket := range summary.Issued {
		fmt.Fprintf(c.out, "Ticket %d: %s\n", i+1, ticket)
	}
}

func (c *Console) runRaffle() {
	fmt.Fprintln(c.out, "\nRunning Raffle...")
	winningNumbers, err := c.service.DrawWinningNumbers()
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Winning Ticket is %s\n", models.FormatNumbers(winningNumbers))

	results, err := c.service.SettleResults()
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}

	for _, group := range results {
		fmt.Fprintf(c.out, "\n%s Winners:\n", group.Label)
		if len(group.Winners) == 0 {
			fmt.Fprintln(c.out, "Nil")
			continue
		}
		for _, winner := range group.Winners {
			fmt.Fprintf(c.out, "%s with %d winning ticket(s) - $%s\n", winner.Name, winner.Count, winner.TotalReward)
		}
	}

	if _, err := c.service.FinalizeRound(); err != nil {
		fmt.Fprintln(c.out, err)
	}
}
