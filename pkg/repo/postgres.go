package repo

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
)

// Postgres is the relational state store.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(connectionString string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(connectionString), &gorm.Config{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err = runMigrations(db); err != nil {
		return nil, err
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) AddStateEntries(ctx context.Context, entries []database.StateEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return errors.WithStack(p.db.WithContext(ctx).
		CreateInBatches(entries, 100).Error)
}

func (p *Postgres) GetStateEntries(
	ctx context.Context,
	entityType database.EntityType,
	limit int,
) ([]*database.StateEntry, error) {
	var entries []*database.StateEntry

	err := p.db.WithContext(ctx).
		Where("entity_type = ?", entityType).
		Order("created_at desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return entries, nil
}

// GetStateEntriesByHash returns state entries whose content hash is in
// the given set, newest first.
func (p *Postgres) GetStateEntriesByHash(
	ctx context.Context,
	hashes []string,
	entityType database.EntityType,
) ([]*database.StateEntry, error) {
	var entries []*database.StateEntry

	err := p.db.WithContext(ctx).
		Where("entity_type = ? and hash in ?", entityType, hashes).
		Order("created_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return entries, nil
}

// PruneStateEntries deletes state entries older than the cutoff and
// returns how many rows went away.
func (p *Postgres) PruneStateEntries(ctx context.Context, olderThan time.Time) (int64, error) {
	result := p.db.WithContext(ctx).
		Where("created_at < ?", olderThan).
		Delete(&database.StateEntry{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

func (p *Postgres) AddDuplicateKey(
	ctx context.Context,
	key string,
	entityType database.EntityType,
) error {
	return errors.WithStack(p.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&database.DuplicateKey{
			Key:        key,
			EntityType: entityType,
			CreatedAt:  time.Now().UTC(),
		}).Error)
}

func (p *Postgres) GetDuplicates(
	ctx context.Context,
	keys []string,
	entityType database.EntityType,
) ([]string, error) {
	var found []string

	err := p.db.WithContext(ctx).
		Model(&database.DuplicateKey{}).
		Where("entity_type = ? and key in ?", entityType, keys).
		Pluck("key", &found).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return found, nil
}
