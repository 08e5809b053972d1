package sink

import (
	"context"

	"github.com/samber/lo"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

type Customer struct {
	base
	mapper mapper.Mapper
}

func NewCustomer(ns NetSuite) *Customer {
	return &Customer{
		base:   base{ns: ns, recordType: "customer"},
		mapper: mapper.NewCustomer(),
	}
}

func (s *Customer) EntityType() database.EntityType {
	return database.EntityTypeCustomers
}

func (s *Customer) BatchReferenceData(
	ctx context.Context,
	records []unified.Record,
) (*refdata.Set, error) {
	set := refdata.NewSet()

	if err := s.fetchRef(ctx, set, refdata.TableCustomers, "customer", netsuite.Filter{
		IDs: merge(
			unified.Strings(records, "id"),
			unified.Strings(records, "parent")),
		ExternalIDs: unified.Strings(records, "externalId"),
		Names:       unified.Strings(records, "parentName"),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableEmployees, "employee", netsuite.Filter{
		IDs:   unified.Strings(records, "salesRep"),
		Names: unified.Strings(records, "salesRepName"),
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

	return set, s.fetchAddresses(ctx, set, refdata.TableCustomers, "customer")
}

// fetchAddresses pulls the default addresses of the already-existing
// entities so updates do not overwrite a remotely managed address.
func (b *base) fetchAddresses(
	ctx context.Context,
	set *refdata.Set,
	table string,
	recordType string,
) error {
	rows := set.Table(table)
	if len(rows) == 0 {
		return nil
	}

	ids := lo.Map(rows, func(row *netsuite.ReferenceRow, _ int) string {
		return row.InternalID
	})

	addresses, err := b.ns.GetDefaultAddresses(ctx, recordType, ids)
	if err != nil {
		return err
	}

	set.PutAddresses(addresses)

	return nil
}

func pruneDefaultAddresses(payload unified.Payload, existing netsuite.DefaultAddresses) {
	if existing.Shipping != "" {
		delete(payload, "defaultShippingAddress")
	}

	if existing.Billing != "" {
		delete(payload, "defaultBillingAddress")
	}
}

func (s *Customer) Upsert(
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
