package processor

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/sink"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type Repo interface {
	AddStateEntries(ctx context.Context, entries []database.StateEntry) error
	// GetStateEntriesByHash returns state entries matching the given
	// content hashes, most recent first.
	GetStateEntriesByHash(
		ctx context.Context,
		hashes []string,
		entityType database.EntityType,
	) ([]*database.StateEntry, error)
}

type DuplicateCleaner interface {
	GetDuplicates(
		ctx context.Context,
		keys []string,
		entityType database.EntityType,
	) (map[string]struct{}, error)
	AddDuplicateKey(ctx context.Context, key string, entityType database.EntityType) error
	HashKey(key string) string
}

type Sink interface {
	EntityType() database.EntityType
	BatchReferenceData(ctx context.Context, records []unified.Record) (*refdata.Set, error)
	Upsert(ctx context.Context, rec unified.Record, set *refdata.Set) (*sink.Result, error)
}
