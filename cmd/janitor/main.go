package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skynet2/netsuite-unified-target/pkg/repo"
)

const defaultRetentionDays = 30

// Prunes old state entries from Postgres. Meant to run on a schedule
// next to the ingestion server.
func main() {
	dataRepo, err := repo.NewPostgres(os.Getenv("POSTGRES_CONNECTION_STRING"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get postgres")
	}

	retentionDays := defaultRetentionDays
	if raw := os.Getenv("STATE_RETENTION_DAYS"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed <= 0 {
			log.Fatal().Str("value", raw).Msg("invalid STATE_RETENTION_DAYS")
		}

		retentionDays = parsed
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	pruned, err := dataRepo.PruneStateEntries(context.Background(), cutoff)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prune state entries")
	}

	log.Info().Int64("pruned", pruned).Time("cutoff", cutoff).Msg("state cleanup done")
}
