// Package console drives a crawl session from a line-oriented text stream.
package console

import (
	"bufio"
	"fmt"
	"io"

	"card-crawl/internal/card"
	"card-crawl/internal/game"
)

const failedMessage = "Card application failed."

// Console reads commands from in and writes game state to out.
type Console struct {
	session *game.Session
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a console for the given session.
func New(s *game.Session, in io.Reader, out io.Writer) *Console {
	return &Console{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays the session to completion. It returns nil when the campaign
// ends, the player quits or input runs out.
func (c *Console) Run() error {
	for {
		enc, ok := c.session.Next()
		if !ok {
			break
		}
		if !enc.IsActive() {
			// An empty roster counts as a win; move on to the next one.
			c.session.Report()
			continue
		}
		c.println("New encounter!\n")

		quit, err := c.fight(enc)
		if err != nil {
			return err
		}
		c.session.Report()
		if quit {
			return nil
		}
		if enc.Lost() {
			c.println("\nYou have lost the game!\n")
			return nil
		}
		c.println("\nYou have won the encounter!\n")
	}
	if c.session.Won() {
		c.println("\nYou have won the game!\n")
	}
	return nil
}

// fight runs one encounter until it ends or the player quits.
func (c *Console) fight(enc *game.Encounter) (bool, error) {
	io.WriteString(c.out, renderState(enc.Snapshot()))
	for enc.IsActive() {
		io.WriteString(c.out, "Enter a move: ")
		if !c.in.Scan() {
			return true, c.in.Err()
		}
		cmd, err := parseCommand(c.in.Text())
		if err != nil {
			c.println("\n" + failedMessage + "\n")
			continue
		}

		switch cmd.Verb {
		case VerbQuit:
			return true, nil
		case VerbInspect:
			pile := enc.Player().Deck()
			if cmd.Pile == "discard" {
				pile = enc.Player().Discard()
			}
			c.println("\n" + card.Names(pile) + "\n")
		case VerbDescribe:
			c.println("\n" + card.Describe(cmd.Card) + "\n")
		case VerbPlay:
			if !enc.ApplyPlayerCard(cmd.Card.String(), cmd.Target) {
				c.println("\n" + failedMessage + "\n")
				continue
			}
			if enc.IsActive() {
				io.WriteString(c.out, renderState(enc.Snapshot()))
			}
		case VerbEnd:
			enc.EndPlayerTurn()
			enc.RunMonsterTurn()
			if enc.IsActive() {
				io.WriteString(c.out, renderState(enc.Snapshot()))
			}
		}
	}
	return false, nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
