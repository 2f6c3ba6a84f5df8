package console

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/anmitsu/go-shlex"

	"card-crawl/internal/card"
	"card-crawl/internal/game"
)

// Verb is a console command.
type Verb int

const (
	VerbNone Verb = iota
	VerbPlay
	VerbEnd
	VerbInspect
	VerbDescribe
	VerbQuit
)

// Command is one parsed input line.
type Command struct {
	Verb   Verb
	Card   card.Kind
	Target int    // monster id for VerbPlay, game.NoTarget when absent
	Pile   string // "deck" or "discard" for VerbInspect
}

var errBadCommand = errors.New("bad command")

// parseCommand tokenises a line and validates it. Blank lines yield
// VerbNone. Targeted cards must carry a monster id; untargeted cards must
// not.
func parseCommand(line string) (Command, error) {
	words, err := shlex.Split(line, true)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", errBadCommand, err)
	}
	if len(words) == 0 {
		return Command{Verb: VerbNone}, nil
	}

	switch words[0] {
	case "end":
		return Command{Verb: VerbEnd}, nil
	case "quit", "exit":
		return Command{Verb: VerbQuit}, nil
	case "inspect":
		if len(words) != 2 || (words[1] != "deck" && words[1] != "discard") {
			return Command{}, fmt.Errorf("%w: inspect deck|discard", errBadCommand)
		}
		return Command{Verb: VerbInspect, Pile: words[1]}, nil
	case "describe":
		if len(words) != 2 {
			return Command{}, fmt.Errorf("%w: describe <card>", errBadCommand)
		}
		k, err := card.ParseKind(words[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: VerbDescribe, Card: k}, nil
	case "play":
		return parsePlay(words[1:])
	}
	return Command{}, fmt.Errorf("%w: %q", errBadCommand, words[0])
}

func parsePlay(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: play <card> [target]", errBadCommand)
	}
	k, err := card.ParseKind(args[0])
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Verb: VerbPlay, Card: k, Target: game.NoTarget}

	if !card.New(k).NeedsTarget {
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: %s takes no target", errBadCommand, k)
		}
		return cmd, nil
	}
	if len(args) != 2 {
		return Command{}, fmt.Errorf("%w: %s needs a target", errBadCommand, k)
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: target %q is not a monster id", errBadCommand, args[1])
	}
	cmd.Target = id
	return cmd, nil
}
