package processor

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// Processor drives one batch of unified records through its sink:
// reference data snapshot, per-record dedup check, mapping, upsert,
// and a state entry per input record.
type Processor struct {
	repo       Repo
	duplicates DuplicateCleaner
	sinks      map[database.EntityType]Sink
}

func NewProcessor(
	repo Repo,
	duplicates DuplicateCleaner,
	sinks ...Sink,
) *Processor {
	byType := map[database.EntityType]Sink{}
	for _, s := range sinks {
		byType[s.EntityType()] = s
	}

	return &Processor{
		repo:       repo,
		duplicates: duplicates,
		sinks:      byType,
	}
}

// ProcessBatch runs every record of one batch and returns exactly one
// state entry per record. A reference data failure aborts the whole
// batch; any later failure is isolated to its record.
func (p *Processor) ProcessBatch(
	ctx context.Context,
	entityType database.EntityType,
	records []unified.Record,
) ([]database.StateEntry, error) {
	snk, ok := p.sinks[entityType]
	if !ok {
		return nil, errors.Newf("no sink registered for entity type %s", entityType)
	}

	set, err := snk.BatchReferenceData(ctx, records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch reference data")
	}

	keys := make([]string, len(records))
	hashErrs := make([]error, len(records))

	for i, rec := range records {
		canonical, hashErr := rec.CanonicalJSON()
		if hashErr != nil {
			hashErrs[i] = hashErr

			continue
		}

		keys[i] = string(canonical)
	}

	duplicates, err := p.duplicates.GetDuplicates(ctx, keys, entityType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check duplicate keys")
	}

	priorStates, err := p.fetchPriorStates(ctx, entityType, duplicates)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch prior state entries")
	}

	entries := make([]database.StateEntry, 0, len(records))

	for i, rec := range records {
		entries = append(entries, p.processRecord(ctx, recordInput{
			sink:        snk,
			entityType:  entityType,
			record:      rec,
			key:         keys[i],
			hashErr:     hashErrs[i],
			duplicates:  duplicates,
			priorStates: priorStates,
			set:         set,
		}))
	}

	if err = p.repo.AddStateEntries(ctx, entries); err != nil {
		return nil, errors.Wrap(err, "failed to persist state entries")
	}

	return entries, nil
}

type recordInput struct {
	sink        Sink
	entityType  database.EntityType
	record      unified.Record
	key         string
	hashErr     error
	duplicates  map[string]struct{}
	priorStates map[string]*database.StateEntry
	set         *refdata.Set
}

// fetchPriorStates loads the latest upsert outcome for every duplicate
// hash so that a duplicate entry can report the remote id the content
// already maps to.
func (p *Processor) fetchPriorStates(
	ctx context.Context,
	entityType database.EntityType,
	duplicates map[string]struct{},
) (map[string]*database.StateEntry, error) {
	priorStates := map[string]*database.StateEntry{}

	if len(duplicates) == 0 {
		return priorStates, nil
	}

	hashes := make([]string, 0, len(duplicates))
	for hash := range duplicates {
		hashes = append(hashes, hash)
	}

	prior, err := p.repo.GetStateEntriesByHash(ctx, hashes, entityType)
	if err != nil {
		return nil, err
	}

	for _, entry := range prior {
		// Duplicate entries only mirror an earlier outcome; the upsert
		// entry is the one carrying the authoritative remote id.
		if !entry.Success || entry.IsDuplicate {
			continue
		}

		if _, ok := priorStates[entry.Hash]; !ok {
			priorStates[entry.Hash] = entry
		}
	}

	return priorStates, nil
}

func (p *Processor) processRecord(
	ctx context.Context,
	in recordInput,
) database.StateEntry {
	entry := database.StateEntry{
		ID:         uuid.NewString(),
		EntityType: in.entityType,
		ExternalID: in.record.String("externalId"),
		CreatedAt:  time.Now().UTC(),
	}

	if in.hashErr != nil {
		entry.Error = in.hashErr.Error()

		return entry
	}

	entry.Hash = p.duplicates.HashKey(in.key)

	if _, isDuplicate := in.duplicates[entry.Hash]; isDuplicate {
		entry.Success = true
		entry.IsDuplicate = true

		if prior, ok := in.priorStates[entry.Hash]; ok {
			entry.RemoteID = prior.RemoteID
			entry.IsUpdated = prior.IsUpdated
		}

		return entry
	}

	res, err := in.sink.Upsert(ctx, in.record, in.set)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("entityType", string(in.entityType)).
			Str("externalId", entry.ExternalID).
			Msg("failed to upsert record")

		entry.Error = err.Error()

		return entry
	}

	entry.Success = true
	entry.RemoteID = res.ID
	entry.IsUpdated = res.IsUpdated

	if err = p.duplicates.AddDuplicateKey(ctx, in.key, in.entityType); err != nil {
		// The record made it to the remote side; a failed dedup write
		// only costs an extra remote update on resubmission.
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("externalId", entry.ExternalID).
			Msg("failed to store duplicate key")
	}

	return entry
}
