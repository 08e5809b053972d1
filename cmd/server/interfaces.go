package main

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/processor"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

type BatchProcessor interface {
	ProcessBatch(
		ctx context.Context,
		entityType database.EntityType,
		records []unified.Record,
	) ([]database.StateEntry, error)
}

type Notifier interface {
	SendBatchReport(
		ctx context.Context,
		entityType database.EntityType,
		summary processor.BatchSummary,
		text string,
	) error
}

type JournalParser interface {
	Parse(ctx context.Context, data []byte) ([]unified.Record, error)
}

type Repository interface {
	AddStateEntries(ctx context.Context, entries []database.StateEntry) error
	GetStateEntries(
		ctx context.Context,
		entityType database.EntityType,
		limit int,
	) ([]*database.StateEntry, error)
	GetStateEntriesByHash(
		ctx context.Context,
		hashes []string,
		entityType database.EntityType,
	) ([]*database.StateEntry, error)
	GetDuplicates(
		ctx context.Context,
		keys []string,
		entityType database.EntityType,
	) ([]string, error)
	AddDuplicateKey(ctx context.Context, key string, entityType database.EntityType) error
}
