package game

import (
	"errors"
	"fmt"
	"strings"

	"card-crawl/internal/card"
)

// Character selects one of the starting player archetypes.
type Character int

const (
	IronClad Character = iota
	Silent
	Watcher
)

// ErrUnknownCharacter is returned by ParseCharacter for unrecognised names.
var ErrUnknownCharacter = errors.New("unknown character")

func (c Character) String() string {
	switch c {
	case IronClad:
		return "IronClad"
	case Silent:
		return "Silent"
	case Watcher:
		return "Watcher"
	default:
		return "Unknown"
	}
}

// ParseCharacter resolves an archetype name, ignoring case.
func ParseCharacter(name string) (Character, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ironclad":
		return IronClad, nil
	case "silent":
		return Silent, nil
	case "watcher":
		return Watcher, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
}

// stack is a run of identical cards in a starting deck.
type stack struct {
	kind  card.Kind
	count int
}

// startingDecks maps each archetype to its max health and opening deck.
var startingDecks = map[Character]struct {
	maxHP int
	deck  []stack
}{
	IronClad: {80, []stack{{card.Strike, 5}, {card.Defend, 4}, {card.Bash, 1}}},
	Silent:   {70, []stack{{card.Strike, 5}, {card.Defend, 5}, {card.Neutralize, 1}, {card.Survivor, 1}}},
	Watcher:  {72, []stack{{card.Strike, 4}, {card.Defend, 4}, {card.Eruption, 1}, {card.Vigilance, 1}}},
}

// Player is the controllable combatant. It owns energy and the three card
// piles; every card is in exactly one of deck, hand or discard.
type Player struct {
	Entity
	Name string

	energy  int
	deck    pile
	hand    pile
	discard pile
}

// NewPlayer creates a player with the given deck, drawn front first.
func NewPlayer(name string, maxHP int, deck []card.Card) *Player {
	return &Player{
		Entity: newEntity(maxHP),
		Name:   name,
		energy: TurnEnergy,
		deck:   newPile(deck),
	}
}

// NewCharacter creates a player for one of the starting archetypes.
func NewCharacter(c Character) *Player {
	def, ok := startingDecks[c]
	if !ok {
		def = startingDecks[IronClad]
		c = IronClad
	}
	var deck []card.Card
	for _, st := range def.deck {
		for i := 0; i < st.count; i++ {
			deck = append(deck, card.New(st.kind))
		}
	}
	return NewPlayer(c.String(), def.maxHP, deck)
}

func (p *Player) Energy() int { return p.energy }

// Hand, Deck and Discard return copies of the piles, front first.
func (p *Player) Hand() []card.Card    { return p.hand.Cards() }
func (p *Player) Deck() []card.Card    { return p.deck.Cards() }
func (p *Player) Discard() []card.Card { return p.discard.Cards() }

// CardCount is the total number of cards the player owns.
func (p *Player) CardCount() int {
	return p.deck.Len() + p.hand.Len() + p.discard.Len()
}

// StartNewEncounter returns the discard pile to the deck. It does nothing
// while the hand still holds cards.
func (p *Player) StartNewEncounter() {
	if p.hand.Len() != 0 {
		return
	}
	p.discard.moveAllTo(&p.deck)
}

// EndTurn discards the whole hand.
func (p *Player) EndTurn() {
	p.hand.moveAllTo(&p.discard)
}

// BeginNewTurn ticks statuses, draws a fresh hand and restores energy.
func (p *Player) BeginNewTurn() {
	p.BeginOwnTurn()
	p.Draw(HandSize)
	p.energy = TurnEnergy
}

// Draw moves up to n cards from the front of the deck into the hand. When
// the deck runs out the discard pile is appended to it and drawing resumes.
// Fewer than n cards are drawn only when both piles are exhausted.
func (p *Player) Draw(n int) {
	for ; n > 0; n-- {
		if p.deck.Len() == 0 {
			if p.discard.Len() == 0 {
				return
			}
			p.discard.moveAllTo(&p.deck)
		}
		c, _ := p.deck.popFront()
		p.hand.push(c)
	}
}

// Play spends energy on the first card in hand of the given kind and moves
// it to the discard pile. Only the first match is considered: if it costs
// more than the remaining energy the play fails even when a later copy
// would not. On failure nothing changes.
func (p *Player) Play(k card.Kind) (card.Card, bool) {
	i := p.hand.indexOf(k)
	if i < 0 {
		return card.Card{}, false
	}
	c := p.hand.cards[i]
	if c.Cost > p.energy {
		return card.Card{}, false
	}
	p.energy -= c.Cost
	p.discard.push(p.hand.removeAt(i))
	return c, true
}

// PlayNamed is Play keyed by card name.
func (p *Player) PlayNamed(name string) (card.Card, bool) {
	k, err := card.ParseKind(name)
	if err != nil {
		return card.Card{}, false
	}
	return p.Play(k)
}

func (p *Player) String() string {
	return p.Name + ": " + p.hpString()
}

// PlayerSnapshot is a read-only copy of the player for presentation.
type PlayerSnapshot struct {
	Name       string
	HP         int
	MaxHP      int
	Block      int
	Strength   int
	Weak       int
	Vulnerable int
	Energy     int
	Hand       []card.Card
	DeckSize   int
	Discarded  int
}

// Snapshot returns a read-only copy of the player.
func (p *Player) Snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		Name:       p.Name,
		HP:         p.hp,
		MaxHP:      p.maxHP,
		Block:      p.block,
		Strength:   p.strength,
		Weak:       p.weak,
		Vulnerable: p.vulnerable,
		Energy:     p.energy,
		Hand:       p.hand.Cards(),
		DeckSize:   p.deck.Len(),
		Discarded:  p.discard.Len(),
	}
}
