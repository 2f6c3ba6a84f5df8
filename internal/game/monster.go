package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// MonsterKind selects a monster's behavior.
type MonsterKind int

const (
	Louse MonsterKind = iota
	Cultist
	JawWorm
)

// ErrUnknownMonster is returned by ParseMonsterKind for unrecognised names.
var ErrUnknownMonster = errors.New("unknown monster")

// MonsterKinds lists every monster kind in declaration order.
var MonsterKinds = []MonsterKind{Louse, Cultist, JawWorm}

func (k MonsterKind) String() string {
	switch k {
	case Louse:
		return "Louse"
	case Cultist:
		return "Cultist"
	case JawWorm:
		return "JawWorm"
	default:
		return "Unknown"
	}
}

// ParseMonsterKind resolves a monster name such as "JawWorm".
func ParseMonsterKind(name string) (MonsterKind, error) {
	for _, k := range MonsterKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMonster, name)
}

// Spawn describes one monster in an encounter roster.
type Spawn struct {
	Kind  MonsterKind
	MaxHP int
}

// Intent is what a monster does on its turn. Damage targets the player;
// Weak and Vulnerable are applied to the player; Strength to the monster.
type Intent struct {
	Damage     int
	Weak       int
	Vulnerable int
	Strength   int
}

// Louse bite range, inclusive.
const (
	louseMinDamage = 5
	louseMaxDamage = 7
)

const cultistBaseDamage = 6

// Monster is an autonomous combatant. Its action depends only on its own
// history, held in the kind-specific counters below.
type Monster struct {
	Entity
	Kind MonsterKind
	ID   int

	louseDamage int // Louse: rolled once at spawn
	calls       int // Cultist: number of actions taken
}

// newMonster spawns a monster. rng is consulted only for kinds that roll at
// spawn time.
func newMonster(s Spawn, id int, rng *rand.Rand) *Monster {
	m := &Monster{
		Entity: newEntity(s.MaxHP),
		Kind:   s.Kind,
		ID:     id,
	}
	if s.Kind == Louse {
		m.louseDamage = louseMinDamage + rng.Intn(louseMaxDamage-louseMinDamage+1)
	}
	return m
}

// Intent reports what the next Action would return without taking it.
func (m *Monster) Intent() Intent {
	switch m.Kind {
	case Louse:
		return Intent{Damage: m.louseDamage}
	case Cultist:
		// Weak alternates 1, 0, 1, ... starting on the first call.
		return Intent{Damage: cultistBaseDamage + m.calls, Weak: 1 - m.calls%2}
	case JawWorm:
		taken := m.maxHP - m.hp
		return Intent{Damage: taken / 2}
	}
	return Intent{}
}

// Action takes the monster's turn: it advances the monster's own counters,
// applies any self-effects and returns the intent for the encounter to
// resolve against the player.
func (m *Monster) Action() Intent {
	in := m.Intent()
	switch m.Kind {
	case Cultist:
		m.calls++
	case JawWorm:
		// Block rounds up, damage rounds down.
		taken := m.maxHP - m.hp
		m.AddBlock((taken + 1) / 2)
	}
	return in
}

// Label is the display name, e.g. "Cultist #3".
func (m *Monster) Label() string {
	return fmt.Sprintf("%s #%d", m.Kind, m.ID)
}

func (m *Monster) String() string {
	return m.Kind.String() + ": " + m.hpString()
}

// MonsterSnapshot is a read-only view of a monster for rendering.
type MonsterSnapshot struct {
	ID         int
	Kind       MonsterKind
	Label      string
	HP         int
	MaxHP      int
	Block      int
	Strength   int
	Weak       int
	Vulnerable int
	Intent     Intent
}

// Snapshot returns a read-only copy of the monster.
func (m *Monster) Snapshot() MonsterSnapshot {
	return MonsterSnapshot{
		ID:         m.ID,
		Kind:       m.Kind,
		Label:      m.Label(),
		HP:         m.hp,
		MaxHP:      m.maxHP,
		Block:      m.block,
		Strength:   m.strength,
		Weak:       m.weak,
		Vulnerable: m.vulnerable,
		Intent:     m.Intent(),
	}
}

// IDAllocator hands out monster ids. Ids are unique and increasing for the
// lifetime of one allocator; share an allocator across the encounters of a
// session so targets never collide.
type IDAllocator struct {
	next int
}

// NewIDAllocator returns an allocator starting at 0.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the next unused id.
func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}
