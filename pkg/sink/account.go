package sink

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

type Account struct {
	base
	mapper mapper.Mapper
}

func NewAccount(ns NetSuite) *Account {
	return &Account{
		base:   base{ns: ns, recordType: "account"},
		mapper: mapper.NewAccount(),
	}
}

func (s *Account) EntityType() database.EntityType {
	return database.EntityTypeAccounts
}

func (s *Account) BatchReferenceData(
	ctx context.Context,
	records []unified.Record,
) (*refdata.Set, error) {
	set := refdata.NewSet()

	// Parent references land in the same table as the accounts
	// themselves.
	if err := s.fetchRef(ctx, set, refdata.TableAccounts, "account", netsuite.Filter{
		IDs: merge(
			unified.Strings(records, "id"),
			unified.Strings(records, "parentId")),
		ExternalIDs: unified.Strings(records, "externalId"),
		Names:       unified.Strings(records, "parentName"),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchCommonRefs(ctx, set, records, nil); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableSubsidiaries, "subsidiary",
		refListFilter(records, "subsidiary", "subsidiaryRef")); err != nil {
		return nil, err
	}

	return set, nil
}

func (s *Account) Upsert(
	ctx context.Context,
	rec unified.Record,
	set *refdata.Set,
) (*Result, error) {
	mapped, err := s.mapper.ToPayload(rec, set)
	if err != nil {
		return nil, err
	}

	return s.upsert(ctx, mapped)
}
