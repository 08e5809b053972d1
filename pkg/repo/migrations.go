package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func runMigrations(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, getMigrations()).Migrate()
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2026_02_10_InitialState",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists state_entries
(
    id           text not null
        constraint state_entries_pk
            primary key,
    entity_type  text not null,
    hash         text,
    external_id  text,
    remote_id    text,
    success      boolean,
    is_duplicate boolean,
    is_updated   boolean,
    error        text,
    created_at   timestamp
);
`).Error
			},
		},
		{
			ID: "2026_02_10_DuplicateKeys",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists duplicate_keys
(
    key         text not null,
    entity_type text not null,
    created_at  timestamp,
    constraint duplicate_keys_pk
        primary key (key, entity_type)
);
`).Error
			},
		},
		{
			ID: "2026_02_10_StateEntityTypeIndex",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create index if not exists idx_state_entries_entity_type
    on state_entries (entity_type, created_at desc);
`).Error
			},
		},
	}
}
