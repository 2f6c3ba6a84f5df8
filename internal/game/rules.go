package game

// Turn rules. These are fixed by the game and not configurable.
const (
	TurnEnergy  = 3 // energy restored at the start of every player turn
	HandSize    = 5 // cards drawn at the start of every player turn
	MaxMonsters = 3 // largest roster an encounter accepts from a campaign file

	vulnerableMultiplier = 1.5
	weakMultiplier       = 0.75
)

// scaleDamage applies vulnerable on the defender, then weak on the attacker,
// and truncates toward zero once at the end: 10 becomes int(11.25) == 11.
func scaleDamage(base int, defenderVulnerable, attackerWeak bool) int {
	dmg := float64(base)
	if defenderVulnerable {
		dmg *= vulnerableMultiplier
	}
	if attackerWeak {
		dmg *= weakMultiplier
	}
	return int(dmg)
}
