package sink

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

type Bill struct {
	transactionBase
	mapper mapper.Mapper
}

func NewBill(ns NetSuite) *Bill {
	return &Bill{
		transactionBase: transactionBase{
			base:        base{ns: ns, recordType: "vendorBill"},
			table:       refdata.TableBills,
			txType:      "VendBill",
			paymentType: "VendPymt",
		},
		mapper: mapper.NewBill(),
	}
}

func (s *Bill) EntityType() database.EntityType {
	return database.EntityTypeBills
}

func (s *Bill) BatchReferenceData(
	ctx context.Context,
	records []unified.Record,
) (*refdata.Set, error) {
	set := refdata.NewSet()

	if err := s.fetchExisting(ctx, set, records); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableVendors, "vendor", netsuite.Filter{
		IDs:         unified.Strings(records, "vendorId"),
		Names:       unified.Strings(records, "vendorName"),
		ExternalIDs: unified.Strings(records, "vendorExternalId"),
		EntityIDs:   unified.Strings(records, "vendorNumber"),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableItems, "item", netsuite.Filter{
		IDs:         lineValues(records, "itemId", billLineKeys),
		Names:       lineValues(records, "itemName", billLineKeys),
		ExternalIDs: lineValues(records, "itemExternalId", billLineKeys),
		ItemIDs:     lineValues(records, "itemNumber", billLineKeys),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableAccounts, "account", netsuite.Filter{
		IDs:   lineValues(records, "accountId", billLineKeys),
		Names: lineValues(records, "accountName", billLineKeys),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchCommonRefs(ctx, set, records, billLineKeys); err != nil {
		return nil, err
	}

	return set, nil
}

var billLineKeys = []string{"lineItems", "expenses"}

func (s *Bill) Upsert(
	ctx context.Context,
	rec unified.Record,
	set *refdata.Set,
) (*Result, error) {
	mapped, err := s.mapper.ToPayload(rec, set)
	if err != nil {
		return nil, err
	}

	return s.upsertTransaction(ctx, mapped, set, "entity", "vendorPayment")
}
