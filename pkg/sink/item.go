package sink

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

type Item struct {
	base
	mapper mapper.Mapper
}

func NewItem(ns NetSuite) *Item {
	return &Item{
		base:   base{ns: ns, recordType: "inventoryItem"},
		mapper: mapper.NewItem(),
	}
}

func (s *Item) EntityType() database.EntityType {
	return database.EntityTypeItems
}

func (s *Item) BatchReferenceData(
	ctx context.Context,
	records []unified.Record,
) (*refdata.Set, error) {
	set := refdata.NewSet()

	if err := s.fetchRef(ctx, set, refdata.TableItems, "item", netsuite.Filter{
		IDs:         unified.Strings(records, "id"),
		ExternalIDs: unified.Strings(records, "externalId"),
		ItemIDs:     unified.Strings(records, "code"),
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

func (s *Item) Upsert(
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
