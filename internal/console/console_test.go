package console

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"card-crawl/internal/card"
	"card-crawl/internal/game"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr bool
	}{
		{"blank", "   ", Command{Verb: VerbNone}, false},
		{"end", "end", Command{Verb: VerbEnd}, false},
		{"quit", "quit", Command{Verb: VerbQuit}, false},
		{"inspect deck", "inspect deck", Command{Verb: VerbInspect, Pile: "deck"}, false},
		{"inspect discard", "inspect  discard", Command{Verb: VerbInspect, Pile: "discard"}, false},
		{"inspect hand", "inspect hand", Command{}, true},
		{"describe", "describe Bash", Command{Verb: VerbDescribe, Card: card.Bash}, false},
		{"describe unknown", "describe Zap", Command{}, true},
		{"play targeted", "play Strike 3", Command{Verb: VerbPlay, Card: card.Strike, Target: 3}, false},
		{"play untargeted", "play Defend", Command{Verb: VerbPlay, Card: card.Defend, Target: game.NoTarget}, false},
		{"targeted without target", "play Bash", Command{}, true},
		{"untargeted with target", "play Survivor 1", Command{}, true},
		{"non-numeric target", "play Strike louse", Command{}, true},
		{"unknown card", "play Zap 1", Command{}, true},
		{"unknown verb", "dance", Command{}, true},
		{"unterminated quote", `play "Strike`, Command{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommand(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newSession(p *game.Player, encounters ...[]game.Spawn) *game.Session {
	return game.NewSession(p, encounters, game.SessionConfig{
		Seed:   1,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func run(t *testing.T, s *game.Session, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(s, strings.NewReader(input), &out).Run())
	return out.String()
}

func TestRunWinsCampaign(t *testing.T) {
	s := newSession(game.NewCharacter(game.IronClad), []game.Spawn{{Kind: game.Louse, MaxHP: 6}})

	out := run(t, s, "describe Bash\ninspect deck\nplay Defend 0\nplay Strike 0\n")

	assert.Contains(t, out, "New encounter!")
	assert.Contains(t, out, "Monster 0")
	assert.Contains(t, out, "Louse: 6/6 HP")
	assert.Contains(t, out, "Hand: [Strike, Strike, Strike, Strike, Strike]")
	assert.Contains(t, out, card.Describe(card.Bash))
	assert.Contains(t, out, "[Defend, Defend, Defend, Defend, Bash]")
	assert.Contains(t, out, failedMessage)
	assert.Contains(t, out, "You have won the encounter!")
	assert.Contains(t, out, "You have won the game!")
	assert.True(t, s.Won())
}

func TestRunLosesCampaign(t *testing.T) {
	deck := []card.Card{card.New(card.Defend)}
	s := newSession(game.NewPlayer("test", 3, deck), []game.Spawn{{Kind: game.Cultist, MaxHP: 40}})

	out := run(t, s, "end\n")

	assert.Contains(t, out, "You have lost the game!")
	assert.NotContains(t, out, "You have won the game!")
	assert.True(t, s.Lost())
}

func TestRunEndTurnRedrawsState(t *testing.T) {
	s := newSession(game.NewCharacter(game.IronClad), []game.Spawn{{Kind: game.JawWorm, MaxHP: 40}})

	out := run(t, s, "end\nquit\n")

	assert.Contains(t, out, "Hand: [Defend, Defend, Defend, Defend, Bash]")
	assert.Contains(t, out, "Round 2")
	assert.Contains(t, out, "JawWorm #0 hits IronClad for 0 damage!")
}

func TestRunFailedPlay(t *testing.T) {
	s := newSession(game.NewCharacter(game.IronClad), []game.Spawn{{Kind: game.JawWorm, MaxHP: 40}})

	out := run(t, s, "play Strike 9\nplay Bash 0\nquit\n")

	assert.Equal(t, 2, strings.Count(out, failedMessage))
	assert.NotContains(t, out, "You have won")
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	s := newSession(game.NewCharacter(game.Silent), []game.Spawn{{Kind: game.Louse, MaxHP: 10}})

	out := run(t, s, "")

	assert.Contains(t, out, "Enter a move:")
	assert.NotContains(t, out, "You have won")
	assert.False(t, s.Won())
}

func TestRunSkipsEmptyEncounters(t *testing.T) {
	s := newSession(game.NewCharacter(game.Watcher), nil, []game.Spawn{{Kind: game.Louse, MaxHP: 6}})

	out := run(t, s, "play Strike 0\n")

	assert.Equal(t, 1, strings.Count(out, "New encounter!"))
	assert.Contains(t, out, "You have won the game!")
}

func TestRenderState(t *testing.T) {
	p := game.NewCharacter(game.IronClad)
	e := game.NewEncounter(p, []game.Spawn{{Kind: game.Cultist, MaxHP: 48}}, game.EncounterConfig{})

	out := renderState(e.Snapshot())
	assert.Contains(t, out, "MONSTERS")
	assert.Contains(t, out, "Cultist: 48/48 HP")
	assert.Contains(t, out, "Intent: attack 6, weak 1")
	assert.Contains(t, out, "PLAYER")
	assert.Contains(t, out, "HP: 80/80")
	assert.Contains(t, out, "Energy: 3")
}
