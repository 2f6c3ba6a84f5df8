package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log"
	"log/slog"
	"os"

	"card-crawl/internal/campaign"
	"card-crawl/internal/config"
	"card-crawl/internal/console"
	"card-crawl/internal/game"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	character, err := game.ParseCharacter(cfg.Character)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	camp := campaign.Default()
	if cfg.CampaignFile != "" {
		camp, err = campaign.Load(cfg.CampaignFile)
		if err != nil {
			log.Fatalf("Campaign error: %v", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = newSeed(); err != nil {
			log.Fatalf("Seed error: %v", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	logger.Debug("starting crawl",
		slog.String("character", character.String()),
		slog.String("campaign", camp.Name),
		slog.Int("encounters", len(camp.Encounters)),
		slog.Int64("seed", seed),
	)

	session := game.NewSession(game.NewCharacter(character), camp.Encounters, game.SessionConfig{
		Seed:     seed,
		LogLines: cfg.BattleLogLines,
		Logger:   logger,
	})
	if err := console.New(session, os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatalf("Console error: %v", err)
	}
}

// newSeed draws a spawn seed from crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
