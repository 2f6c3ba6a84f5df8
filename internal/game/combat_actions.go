package game

import (
	"fmt"

	"card-crawl/internal/card"
)

// ResolveCard applies a played card. Block and strength go to the player.
// When target is non-nil it receives the card's weak and vulnerable first,
// then damage of (card damage + player strength) scaled by the target's
// vulnerable and the player's weak. Returns damage dealt and a log message.
func ResolveCard(p *Player, c card.Card, target *Monster) (int, string) {
	p.AddBlock(c.Block)
	p.AddStrength(c.Grants.Strength)

	if target == nil {
		msg := fmt.Sprintf("%s plays %s.", p.Name, c.Name())
		if c.Block > 0 {
			msg += fmt.Sprintf(" +%d block.", c.Block)
		}
		if c.Grants.Strength > 0 {
			msg += fmt.Sprintf(" +%d strength.", c.Grants.Strength)
		}
		return 0, msg
	}

	target.AddWeak(c.Grants.Weak)
	target.AddVulnerable(c.Grants.Vulnerable)

	dmg := scaleDamage(c.Damage+p.Strength(), target.Vulnerable() > 0, p.Weak() > 0)
	target.Damage(dmg)

	msg := fmt.Sprintf("%s plays %s on %s for %d damage!", p.Name, c.Name(), target.Label(), dmg)
	if target.Defeated() {
		msg += fmt.Sprintf(" %s defeated!", target.Label())
	}
	return dmg, msg
}

// ResolveMonsterAction takes one monster's action against the player.
// Weak and vulnerable land on the player and strength on the monster
// before damage is computed, so they affect this hit.
func ResolveMonsterAction(m *Monster, p *Player) (int, string) {
	in := m.Action()
	p.AddWeak(in.Weak)
	p.AddVulnerable(in.Vulnerable)
	m.AddStrength(in.Strength)

	dmg := scaleDamage(m.Strength()+in.Damage, p.Vulnerable() > 0, m.Weak() > 0)
	p.Damage(dmg)

	msg := fmt.Sprintf("%s hits %s for %d damage!", m.Label(), p.Name, dmg)
	if in.Weak > 0 {
		msg += fmt.Sprintf(" %s is weakened.", p.Name)
	}
	return dmg, msg
}
