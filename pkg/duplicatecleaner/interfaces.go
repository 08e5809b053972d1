package duplicatecleaner

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package duplicatecleaner_test -source=interfaces.go

type Repo interface {
	GetDuplicates(
		ctx context.Context,
		keys []string,
		entityType database.EntityType,
	) ([]string, error)
	AddDuplicateKey(ctx context.Context, key string, entityType database.EntityType) error
}
