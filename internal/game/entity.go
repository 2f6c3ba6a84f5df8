package game

import "fmt"

// Entity holds the combat attributes shared by the player and monsters.
type Entity struct {
	maxHP      int
	hp         int
	block      int
	strength   int
	weak       int
	vulnerable int
}

func newEntity(maxHP int) Entity {
	if maxHP < 0 {
		maxHP = 0
	}
	return Entity{maxHP: maxHP, hp: maxHP}
}

func (e *Entity) HP() int         { return e.hp }
func (e *Entity) MaxHP() int      { return e.maxHP }
func (e *Entity) Block() int      { return e.block }
func (e *Entity) Strength() int   { return e.strength }
func (e *Entity) Weak() int       { return e.weak }
func (e *Entity) Vulnerable() int { return e.vulnerable }

// Damage applies incoming damage. Block absorbs first; health floors at 0
// and any overkill is discarded.
func (e *Entity) Damage(amount int) {
	if amount <= 0 || e.hp == 0 {
		return
	}
	absorbed := min(e.block, amount)
	e.block -= absorbed
	e.hp -= amount - absorbed
	if e.hp < 0 {
		e.hp = 0
	}
}

// Defeated reports whether health has reached 0.
func (e *Entity) Defeated() bool {
	return e.hp == 0
}

func (e *Entity) AddBlock(n int)      { e.block += n }
func (e *Entity) AddStrength(n int)   { e.strength += n }
func (e *Entity) AddWeak(n int)       { e.weak += n }
func (e *Entity) AddVulnerable(n int) { e.vulnerable += n }

// BeginOwnTurn clears block and ticks down status timers. Call once per
// turn of this entity, not once per round.
func (e *Entity) BeginOwnTurn() {
	e.block = 0
	if e.weak > 0 {
		e.weak--
	}
	if e.vulnerable > 0 {
		e.vulnerable--
	}
}

func (e *Entity) hpString() string {
	return fmt.Sprintf("%d/%d HP", e.hp, e.maxHP)
}
