package sink

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/netsuite-unified-target/pkg/common"
	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// JournalEntry posts journal entries. Journals are immutable once
// booked, so a record matching an existing remote journal is rejected
// instead of updated.
type JournalEntry struct {
	transactionBase
	mapper mapper.Mapper
}

func NewJournalEntry(ns NetSuite) *JournalEntry {
	return &JournalEntry{
		transactionBase: transactionBase{
			base:   base{ns: ns, recordType: "journalEntry"},
			table:  refdata.TableJournalEntries,
			txType: "Journal",
		},
		mapper: mapper.NewJournalEntry(),
	}
}

func (s *JournalEntry) EntityType() database.EntityType {
	return database.EntityTypeJournalEntries
}

func (s *JournalEntry) BatchReferenceData(
	ctx context.Context,
	records []unified.Record,
) (*refdata.Set, error) {
	set := refdata.NewSet()

	if err := s.fetchExisting(ctx, set, records); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableAccounts, "account", netsuite.Filter{
		IDs:       lineValues(records, "accountId", journalLineKeys),
		Names:     lineValues(records, "accountName", journalLineKeys),
		EntityIDs: lineValues(records, "accountNumber", journalLineKeys),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableCustomers, "customer", netsuite.Filter{
		IDs:       lineValues(records, "customerId", journalLineKeys),
		Names:     lineValues(records, "customerName", journalLineKeys),
		EntityIDs: lineValues(records, "customerNumber", journalLineKeys),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableVendors, "vendor", netsuite.Filter{
		IDs:       lineValues(records, "vendorId", journalLineKeys),
		Names:     lineValues(records, "vendorName", journalLineKeys),
		EntityIDs: lineValues(records, "vendorNumber", journalLineKeys),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchCommonRefs(ctx, set, records, journalLineKeys); err != nil {
		return nil, err
	}

	return set, nil
}

var journalLineKeys = []string{"lineItems"}

func (s *JournalEntry) Upsert(
	ctx context.Context,
	rec unified.Record,
	set *refdata.Set,
) (*Result, error) {
	mapped, err := s.mapper.ToPayload(rec, set)
	if err != nil {
		return nil, err
	}

	if mapped.InternalID != "" {
		return nil, errors.Wrapf(common.ErrAlreadyExists,
			"journal entry %s is already booked as %s", rec.String("externalId"), mapped.InternalID)
	}

	return s.upsert(ctx, mapped)
}
