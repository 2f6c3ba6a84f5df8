package game

import (
	"fmt"
	"math/rand"
	"time"
)

// CombatPhase tracks the current phase of an encounter.
type CombatPhase int

const (
	PhasePlayerTurn  CombatPhase = iota // waiting for the player to play cards or end the turn
	PhaseMonsterTurn                    // player turn ended, monsters yet to act
	PhaseWon                            // no monsters remain
	PhaseLost                           // player defeated; terminal
)

func (p CombatPhase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player turn"
	case PhaseMonsterTurn:
		return "monster turn"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// NoTarget is passed to ApplyPlayerCard for cards that need no target.
const NoTarget = -1

const defaultLogLines = 6

// EncounterConfig carries the collaborators an encounter borrows from its
// session. Zero values are replaced with fresh defaults.
type EncounterConfig struct {
	IDs      *IDAllocator // monster id source
	Rand     *rand.Rand   // spawn-time rolls
	LogLines int          // battle log capacity
}

// Encounter is one fight between the player and a fixed monster roster.
// It is not safe for concurrent use.
type Encounter struct {
	player   *Player
	monsters []*Monster // survivors, in spawn order
	phase    CombatPhase
	round    int
	log      []string
	maxLog   int
}

// NewEncounter spawns the roster, skipping entries with no health, returns the player's discard pile to the
// deck (only when the hand is empty) and deals the opening hand. The player
// is shared, not copied.
func NewEncounter(player *Player, roster []Spawn, cfg EncounterConfig) *Encounter {
	if cfg.IDs == nil {
		cfg.IDs = NewIDAllocator()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.LogLines <= 0 {
		cfg.LogLines = defaultLogLines
	}

	e := &Encounter{
		player:   player,
		monsters: make([]*Monster, 0, len(roster)),
		round:    1,
		maxLog:   cfg.LogLines,
	}
	for _, s := range roster {
		if s.MaxHP <= 0 {
			continue
		}
		e.monsters = append(e.monsters, newMonster(s, cfg.IDs.Next(), cfg.Rand))
	}

	player.StartNewEncounter()
	player.BeginNewTurn()
	e.phase = PhasePlayerTurn
	if len(e.monsters) == 0 {
		e.phase = PhaseWon
		return e
	}
	e.AddLog(fmt.Sprintf("%d monster(s) appear!", len(e.monsters)))
	return e
}

// AddLog appends a message to the battle log, keeping it trimmed.
func (e *Encounter) AddLog(msg string) {
	e.log = append(e.log, msg)
	if len(e.log) > e.maxLog {
		e.log = e.log[len(e.log)-e.maxLog:]
	}
}

// Log returns a copy of the battle log, oldest first.
func (e *Encounter) Log() []string {
	out := make([]string, len(e.log))
	copy(out, e.log)
	return out
}

func (e *Encounter) Player() *Player    { return e.player }
func (e *Encounter) Phase() CombatPhase { return e.phase }
func (e *Encounter) Round() int         { return e.round }

// Monsters returns the surviving monsters in spawn order.
func (e *Encounter) Monsters() []*Monster {
	out := make([]*Monster, len(e.monsters))
	copy(out, e.monsters)
	return out
}

// IsActive reports whether the fight is still going: at least one monster
// survives and the player has not been defeated.
func (e *Encounter) IsActive() bool {
	return e.phase == PhasePlayerTurn || e.phase == PhaseMonsterTurn
}

func (e *Encounter) Won() bool  { return e.phase == PhaseWon }
func (e *Encounter) Lost() bool { return e.phase == PhaseLost }

// Monster returns the living monster with the given id, or nil.
func (e *Encounter) Monster(id int) *Monster {
	for _, m := range e.monsters {
		if m.ID == id && !m.Defeated() {
			return m
		}
	}
	return nil
}

func (e *Encounter) removeMonster(target *Monster) {
	for i, m := range e.monsters {
		if m == target {
			e.monsters = append(e.monsters[:i], e.monsters[i+1:]...)
			break
		}
	}
	if len(e.monsters) == 0 {
		e.phase = PhaseWon
		e.AddLog("All monsters defeated!")
	}
}

// ApplyPlayerCard plays the first card in hand with the given name. Cards
// that need a target must name a living monster by id; any other card may
// pass NoTarget or a monster id, in which case it also strikes that monster
// for its damage plus the player's strength. Returns false without changing
// anything when called out of phase or when no affordable card matches. A
// card whose target is missing still spends its energy and goes to the
// discard pile.
func (e *Encounter) ApplyPlayerCard(name string, target int) bool {
	if e.phase != PhasePlayerTurn {
		return false
	}
	played, ok := e.player.PlayNamed(name)
	if !ok {
		return false
	}

	var m *Monster
	if played.NeedsTarget || target != NoTarget {
		m = e.Monster(target)
		if m == nil {
			e.AddLog(fmt.Sprintf("%s misses: no monster #%d.", played.Name(), target))
			return false
		}
	}

	_, msg := ResolveCard(e.player, played, m)
	e.AddLog(msg)
	if m != nil && m.Defeated() {
		e.removeMonster(m)
	}
	return true
}

// EndPlayerTurn discards the player's hand and starts every surviving
// monster's turn.
func (e *Encounter) EndPlayerTurn() bool {
	if e.phase != PhasePlayerTurn {
		return false
	}
	e.player.EndTurn()
	for _, m := range e.monsters {
		m.BeginOwnTurn()
	}
	e.phase = PhaseMonsterTurn
	return true
}

// RunMonsterTurn lets each surviving monster act in spawn order, then
// either ends the encounter in defeat or begins the next player turn.
func (e *Encounter) RunMonsterTurn() bool {
	if e.phase != PhaseMonsterTurn {
		return false
	}
	for _, m := range e.monsters {
		if m.Defeated() {
			continue
		}
		_, msg := ResolveMonsterAction(m, e.player)
		e.AddLog(msg)
	}
	if e.player.Defeated() {
		e.phase = PhaseLost
		e.AddLog(fmt.Sprintf("%s has fallen!", e.player.Name))
		return true
	}
	e.round++
	e.player.BeginNewTurn()
	e.phase = PhasePlayerTurn
	return true
}

// EncounterSnapshot is a read-only view of an encounter for rendering.
type EncounterSnapshot struct {
	Phase    CombatPhase
	Round    int
	Player   PlayerSnapshot
	Monsters []MonsterSnapshot
	Log      []string
}

// Snapshot builds an EncounterSnapshot.
func (e *Encounter) Snapshot() EncounterSnapshot {
	monsters := make([]MonsterSnapshot, len(e.monsters))
	for i, m := range e.monsters {
		monsters[i] = m.Snapshot()
	}
	return EncounterSnapshot{
		Phase:    e.phase,
		Round:    e.round,
		Player:   e.player.Snapshot(),
		Monsters: monsters,
		Log:      e.Log(),
	}
}
