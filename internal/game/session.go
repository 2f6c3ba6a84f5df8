package game

import (
	"log/slog"
	"math/rand"
)

// SessionConfig tunes a Session. Zero values pick defaults.
type SessionConfig struct {
	Seed     int64 // spawn RNG seed
	LogLines int   // battle log capacity per encounter
	Logger   *slog.Logger
}

// Session runs one player through an ordered list of encounters. It owns
// the monster id allocator and the RNG so that sessions never share state.
type Session struct {
	player     *Player
	encounters [][]Spawn
	ids        *IDAllocator
	rng        *rand.Rand
	logLines   int
	logger     *slog.Logger

	next    int // index of the next encounter to start
	current *Encounter
}

// NewSession prepares a session. No encounter starts until Next is called.
func NewSession(player *Player, encounters [][]Spawn, cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		player:     player,
		encounters: encounters,
		ids:        NewIDAllocator(),
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		logLines:   cfg.LogLines,
		logger:     logger,
	}
}

func (s *Session) Player() *Player { return s.player }

// Encounter returns the encounter in progress, or nil before the first
// call to Next.
func (s *Session) Encounter() *Encounter { return s.current }

// Remaining is the number of encounters not yet started.
func (s *Session) Remaining() int { return len(s.encounters) - s.next }

// Next starts the following encounter once the current one is won. It
// returns false when the current encounter is still running, the player
// has lost, or the campaign is over.
func (s *Session) Next() (*Encounter, bool) {
	if s.current != nil && !s.current.Won() {
		return nil, false
	}
	if s.next >= len(s.encounters) {
		return nil, false
	}

	roster := s.encounters[s.next]
	s.next++
	s.current = NewEncounter(s.player, roster, EncounterConfig{
		IDs:      s.ids,
		Rand:     s.rng,
		LogLines: s.logLines,
	})
	s.logger.Info("encounter started",
		slog.Int("encounter", s.next),
		slog.Int("monsters", len(roster)),
		slog.Int("player_hp", s.player.HP()),
	)
	return s.current, true
}

// Lost reports whether the player was defeated.
func (s *Session) Lost() bool {
	return s.current != nil && s.current.Lost()
}

// Won reports whether every encounter has been cleared.
func (s *Session) Won() bool {
	if s.next < len(s.encounters) {
		return false
	}
	return s.current == nil || s.current.Won()
}

// Report logs the outcome of the current encounter and of the campaign.
func (s *Session) Report() {
	if s.current == nil {
		return
	}
	switch {
	case s.current.Lost():
		s.logger.Info("encounter lost", slog.Int("encounter", s.next), slog.Int("round", s.current.Round()))
	case s.current.Won():
		s.logger.Info("encounter won",
			slog.Int("encounter", s.next),
			slog.Int("round", s.current.Round()),
			slog.Int("player_hp", s.player.HP()),
		)
	}
	if s.Won() {
		s.logger.Info("campaign won", slog.Int("encounters", len(s.encounters)))
	}
}
