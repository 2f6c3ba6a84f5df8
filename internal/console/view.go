package console

import (
	"fmt"
	"strings"

	"card-crawl/internal/card"
	"card-crawl/internal/game"
)

// renderState formats the encounter as plain text: monsters first, then
// the player, then the recent battle log.
func renderState(s game.EncounterSnapshot) string {
	var b strings.Builder

	b.WriteString("MONSTERS\n")
	for _, m := range s.Monsters {
		line := fmt.Sprintf("%s: %d/%d HP", m.Kind, m.HP, m.MaxHP)
		bar := strings.Repeat("-", len(line))
		fmt.Fprintf(&b, "%s\nMonster %d\n%s\n", bar, m.ID, line)
		fmt.Fprintf(&b, "Block: %d Strength: %d Vulnerable: %d Weak: %d\n", m.Block, m.Strength, m.Vulnerable, m.Weak)
		fmt.Fprintf(&b, "Intent: %s\n%s\n", intent(m.Intent), bar)
	}

	p := s.Player
	hand := "Hand: " + card.Names(p.Hand)
	bar := strings.Repeat("-", len(hand))
	fmt.Fprintf(&b, "\n\n\nPLAYER\n%s\n%s\n", bar, p.Name)
	fmt.Fprintf(&b, "HP: %d/%d\nEnergy: %d\n%s\n", p.HP, p.MaxHP, p.Energy, hand)
	fmt.Fprintf(&b, "Block: %d Strength: %d Vulnerable: %d Weak: %d\n%s\n", p.Block, p.Strength, p.Vulnerable, p.Weak, bar)

	if len(s.Log) > 0 {
		fmt.Fprintf(&b, "\nRound %d\n", s.Round)
		for _, line := range s.Log {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func intent(in game.Intent) string {
	parts := []string{fmt.Sprintf("attack %d", in.Damage)}
	if in.Weak > 0 {
		parts = append(parts, fmt.Sprintf("weak %d", in.Weak))
	}
	if in.Vulnerable > 0 {
		parts = append(parts, fmt.Sprintf("vulnerable %d", in.Vulnerable))
	}
	if in.Strength > 0 {
		parts = append(parts, fmt.Sprintf("strength %d", in.Strength))
	}
	return strings.Join(parts, ", ")
}
