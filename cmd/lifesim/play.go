package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/lifesim-api/internal/catalog"
	"github.com/KirkDiggler/lifesim-api/internal/config"
	"github.com/KirkDiggler/lifesim-api/internal/history"
	"github.com/KirkDiggler/lifesim-api/internal/orchestrators/sim"
	"github.com/KirkDiggler/lifesim-api/internal/people"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/clock"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/idgen"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/random"
	"github.com/KirkDiggler/lifesim-api/internal/redis"
	"github.com/KirkDiggler/lifesim-api/internal/repositories/counters"
	"github.com/KirkDiggler/lifesim-api/internal/repositories/memorial"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the simulation interactively",
	Long:  `Start an interactive session: press enter to live a year, pick choices when events offer them, and start a new life when the current one ends.`,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// keep structured logs out of the play loop
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	countersRepo, memorialRepo, err := buildRepositories(cfg)
	if err != nil {
		return err
	}

	src := random.New(nil)
	if cfg.Seed != 0 {
		src = random.NewSeeded(cfg.Seed)
	}

	factory, err := people.NewRandomFactory(&people.RandomFactoryConfig{
		Random:      src,
		IDGenerator: idgen.NewUUID("person-"),
	})
	if err != nil {
		return err
	}

	registry, err := catalog.Default()
	if err != nil {
		return err
	}

	svc, err := sim.NewOrchestrator(&sim.Config{
		Catalog:       registry,
		History:       history.NewLog(),
		Counters:      countersRepo,
		Memorials:     memorialRepo,
		Factory:       factory,
		Random:        src,
		IDGenerator:   idgen.NewUUID("life-"),
		GameID:        cfg.GameID,
		StartingMoney: cfg.StartingMoney,
	})
	if err != nil {
		return err
	}

	return playLoop(cmd.Context(), svc)
}

// buildRepositories selects Redis-backed or in-memory persistence
// based on configuration.
func buildRepositories(cfg *config.Config) (counters.Repository, memorial.Repository, error) {
	if cfg.RedisAddr == "" {
		return counters.NewMemoryRepository(), memorial.NewMemoryRepository(nil), nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, err
	}

	countersRepo, err := counters.NewRedisRepository(&counters.Config{Client: client})
	if err != nil {
		return nil, nil, err
	}
	memorialRepo, err := memorial.NewRedisRepository(&memorial.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, nil, err
	}
	return countersRepo, memorialRepo, nil
}

func playLoop(ctx context.Context, svc sim.Service) error {
	in := bufio.NewScanner(os.Stdin)

	state, err := svc.GetState(ctx, &sim.GetStateInput{})
	if err != nil {
		return err
	}
	fmt.Printf("You are %s.\n", state.Snapshot.Name)
	printStatus(state.Snapshot)

	for {
		fmt.Print("\n[enter] live a year | s status | q quit > ")
		if !in.Scan() {
			return in.Err()
		}

		switch strings.TrimSpace(in.Text()) {
		case "q":
			return nil
		case "s":
			state, err := svc.GetState(ctx, &sim.GetStateInput{})
			if err != nil {
				return err
			}
			printStatus(state.Snapshot)
		case "":
			out, err := svc.AdvanceYear(ctx, &sim.AdvanceYearInput{})
			if err != nil {
				return err
			}
			payload := out.Payload

			if out.Phase == sim.PhaseAwaitingChoice {
				payload, err = resolveInteractively(ctx, svc, in, out.Payload)
				if err != nil {
					return err
				}
			} else {
				printPayload(out.Payload)
			}

			if payload != nil && payload.IsTerminal {
				done, err := handleDeath(ctx, svc, in, payload)
				if err != nil || done {
					return err
				}
			}
		}
	}
}

// resolveInteractively prompts for a choice until a valid index is
// given, then resolves it.
func resolveInteractively(ctx context.Context, svc sim.Service, in *bufio.Scanner, payload *sim.RenderPayload) (*sim.RenderPayload, error) {
	printPayload(payload)
	for i, choice := range payload.Choices {
		fmt.Printf("  %d) %s\n", i+1, choice.Text)
	}

	for {
		fmt.Print("choice > ")
		if !in.Scan() {
			return nil, in.Err()
		}

		idx, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil || idx < 1 || idx > len(payload.Choices) {
			fmt.Printf("pick a number between 1 and %d\n", len(payload.Choices))
			continue
		}

		out, err := svc.ResolveChoice(ctx, &sim.ResolveChoiceInput{ChoiceIndex: idx - 1})
		if err != nil {
			return nil, err
		}
		printPayload(out.Payload)
		return out.Payload, nil
	}
}

// handleDeath shows the death notice and offers a new life. Returns
// true when the player declines and the session should end.
func handleDeath(ctx context.Context, svc sim.Service, in *bufio.Scanner, payload *sim.RenderPayload) (bool, error) {
	fmt.Printf("\nYour life has come to an end. Cause of death: %s\n", payload.CauseOfDeath)

	fmt.Print("Start a new life? [y/n] > ")
	if !in.Scan() {
		return true, in.Err()
	}
	if strings.TrimSpace(strings.ToLower(in.Text())) != "y" {
		return true, nil
	}

	out, err := svc.NewLife(ctx, &sim.NewLifeInput{})
	if err != nil {
		return true, err
	}
	fmt.Printf("\nA new life begins. You are %s.\n", out.Snapshot.Name)
	return false, nil
}

func printPayload(p *sim.RenderPayload) {
	fmt.Printf("\n== %s ==\n%s\n", p.Title, p.Description)
	if p.Message != "" {
		fmt.Println(p.Message)
	}
}

func printStatus(s *sim.Snapshot) {
	fmt.Printf("\nYear %d | Age %d | $%d", s.Year, s.Age, s.Money)
	if s.Job != "" {
		fmt.Printf(" | %s", s.Job)
	}
	fmt.Printf("\nHappiness %d  Health %d  Smarts %d  Looks %d\n",
		s.Stats.Happiness, s.Stats.Health, s.Stats.Smarts, s.Stats.Looks)
	if len(s.Relationships) > 0 {
		fmt.Println("Relationships:")
		for _, rel := range s.Relationships {
			fmt.Printf("  %s (%s, level %d)\n", rel.Name, rel.Status, rel.Level)
		}
	}
	if len(s.Achievements) > 0 {
		fmt.Printf("Achievements: %s\n", strings.Join(s.Achievements, ", "))
	}
}
