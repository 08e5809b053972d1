package sink

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

type PurchaseOrder struct {
	transactionBase
	mapper mapper.Mapper
}

func NewPurchaseOrder(ns NetSuite) *PurchaseOrder {
	return &PurchaseOrder{
		transactionBase: transactionBase{
			base:   base{ns: ns, recordType: "purchaseOrder"},
			table:  refdata.TablePurchaseOrders,
			txType: "PurchOrd",
		},
		mapper: mapper.NewPurchaseOrder(),
	}
}

func (s *PurchaseOrder) EntityType() database.EntityType {
	return database.EntityTypePurchaseOrders
}

func (s *PurchaseOrder) BatchReferenceData(
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

	// Line-level projects resolve against the customer table.
	if err := s.fetchRef(ctx, set, refdata.TableCustomers, "customer", netsuite.Filter{
		IDs:         lineValues(records, "projectId", orderLineKeys),
		Names:       lineValues(records, "projectName", orderLineKeys),
		ExternalIDs: lineValues(records, "projectExternalId", orderLineKeys),
		EntityIDs:   lineValues(records, "projectNumber", orderLineKeys),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableItems, "item", netsuite.Filter{
		IDs:         lineValues(records, "itemId", orderLineKeys),
		Names:       lineValues(records, "itemName", orderLineKeys),
		ExternalIDs: lineValues(records, "itemExternalId", orderLineKeys),
		ItemIDs:     lineValues(records, "itemNumber", orderLineKeys),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableEmployees, "employee", netsuite.Filter{
		IDs: merge(
			unified.Strings(records, "employeeId"),
			lineValues(records, "employeeId", orderLineKeys)),
		Names: merge(
			unified.Strings(records, "employeeName"),
			lineValues(records, "employeeName", orderLineKeys)),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchCommonRefs(ctx, set, records, orderLineKeys); err != nil {
		return nil, err
	}

	return set, nil
}

var orderLineKeys = []string{"lineItems"}

func (s *PurchaseOrder) Upsert(
	ctx context.Context,
	rec unified.Record,
	set *refdata.Set,
) (*Result, error) {
	mapped, err := s.mapper.ToPayload(rec, set)
	if err != nil {
		return nil, err
	}

	return s.upsertTransaction(ctx, mapped, set, "entity", "")
}
