// Package card holds the fixed catalog of playable cards.
package card

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a catalog entry.
type Kind int

const (
	KindNone Kind = iota
	Strike
	Defend
	Bash
	Neutralize
	Survivor
	Eruption
	Vigilance
)

// ErrUnknownCard is returned when a name does not match any catalog entry.
var ErrUnknownCard = errors.New("unknown card")

// Grants are the statuses a card applies when played.
// Strength goes to the caster; Weak and Vulnerable go to the target.
type Grants struct {
	Strength   int
	Weak       int
	Vulnerable int
}

// Card is an immutable catalog value. Copies move between piles by value.
type Card struct {
	Kind        Kind
	Damage      int
	Block       int
	Cost        int
	Grants      Grants
	Description string
	NeedsTarget bool
}

var catalog = map[Kind]Card{
	Strike:     {Kind: Strike, Damage: 6, Cost: 1, NeedsTarget: true, Description: "Deal 6 damage."},
	Defend:     {Kind: Defend, Block: 5, Cost: 1, Description: "Gain 5 block."},
	Bash:       {Kind: Bash, Damage: 7, Block: 5, Cost: 2, NeedsTarget: true, Description: "Deal 7 damage. Gain 5 block."},
	Neutralize: {Kind: Neutralize, Damage: 3, Cost: 0, NeedsTarget: true, Grants: Grants{Weak: 1, Vulnerable: 2}, Description: "Deal 3 damage. Apply 1 weak. Apply 2 vulnerable."},
	Survivor:   {Kind: Survivor, Block: 8, Cost: 1, Grants: Grants{Strength: 1}, Description: "Gain 8 block and 1 strength."},
	Eruption:   {Kind: Eruption, Damage: 9, Cost: 2, NeedsTarget: true, Description: "Deal 9 damage."},
	Vigilance:  {Kind: Vigilance, Block: 8, Cost: 2, Grants: Grants{Strength: 1}, Description: "Gain 8 block and 1 strength."},
}

// Kinds lists every catalog entry in declaration order.
var Kinds = []Kind{Strike, Defend, Bash, Neutralize, Survivor, Eruption, Vigilance}

func (k Kind) String() string {
	switch k {
	case Strike:
		return "Strike"
	case Defend:
		return "Defend"
	case Bash:
		return "Bash"
	case Neutralize:
		return "Neutralize"
	case Survivor:
		return "Survivor"
	case Eruption:
		return "Eruption"
	case Vigilance:
		return "Vigilance"
	default:
		return "Unknown"
	}
}

// ParseKind resolves a card name. Matching is exact, as in "Strike".
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("%w: %q", ErrUnknownCard, name)
}

// New returns a fresh card of the given kind. The zero Card is returned for
// kinds outside the catalog.
func New(k Kind) Card {
	return catalog[k]
}

// Describe returns the catalog description for k.
func Describe(k Kind) string {
	c, ok := catalog[k]
	if !ok {
		return ""
	}
	return c.Description
}

// Name returns the card's catalog name.
func (c Card) Name() string {
	return c.Kind.String()
}

func (c Card) String() string {
	return c.Name() + ": " + c.Description
}

// Names joins card names for display, e.g. "[Strike, Defend]".
func Names(cards []Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
