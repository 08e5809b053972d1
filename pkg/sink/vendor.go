package sink

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

type Vendor struct {
	base
	mapper mapper.Mapper
}

func NewVendor(ns NetSuite) *Vendor {
	return &Vendor{
		base:   base{ns: ns, recordType: "vendor"},
		mapper: mapper.NewVendor(),
	}
}

func (s *Vendor) EntityType() database.EntityType {
	return database.EntityTypeVendors
}

func (s *Vendor) BatchReferenceData(
	ctx context.Context,
	records []unified.Record,
) (*refdata.Set, error) {
	set := refdata.NewSet()

	if err := s.fetchRef(ctx, set, refdata.TableVendors, "vendor", netsuite.Filter{
		IDs:         unified.Strings(records, "id"),
		ExternalIDs: unified.Strings(records, "externalId"),
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

	return set, s.fetchAddresses(ctx, set, refdata.TableVendors, "vendor")
}

func (s *Vendor) Upsert(
	ctx context.Context,
	rec unified.Record,
	set *refdata.Set,
) (*Result, error) {
	mapped, err := s.mapper.ToPayload(rec, set)
	if err != nil {
		return nil, err
	}

	if mapped.InternalID != "" {
		pruneDefaultAddresses(mapped.Payload, set.Addresses(mapped.InternalID))
	}

	return s.upsert(ctx, mapped)
}
