package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/lifesim-api/internal/config"
	"github.com/KirkDiggler/lifesim-api/internal/repositories/memorial"
)

var memorialsCmd = &cobra.Command{
	Use:   "memorials",
	Short: "List the lives lived in this game",
	Long:  `List every completed life recorded for the configured game, oldest first. Requires the Redis backend; the in-memory backend does not persist across runs.`,
	RunE:  runMemorials,
}

func runMemorials(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	_, memorialRepo, err := buildRepositories(cfg)
	if err != nil {
		return err
	}

	out, err := memorialRepo.List(cmd.Context(), memorial.ListInput{GameID: cfg.GameID})
	if err != nil {
		return err
	}

	if len(out.Records) == 0 {
		fmt.Println("No lives recorded yet.")
		return nil
	}

	for i, rec := range out.Records {
		fmt.Printf("%d. %s, died at age %d (year %d)\n", i+1, rec.Name, rec.Age, rec.DiedYear)
		if rec.CauseOfDeath != "" {
			fmt.Printf("   Cause: %s\n", rec.CauseOfDeath)
		}
		for _, ach := range rec.Achievements {
			fmt.Printf("   * %s\n", ach)
		}
	}
	return nil
}
