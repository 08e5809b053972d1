package sink

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

type Invoice struct {
	transactionBase
	mapper mapper.Mapper
}

func NewInvoice(ns NetSuite) *Invoice {
	return &Invoice{
		transactionBase: transactionBase{
			base:        base{ns: ns, recordType: "invoice"},
			table:       refdata.TableInvoices,
			txType:      "CustInvc",
			paymentType: "CustPymt",
		},
		mapper: mapper.NewInvoice(),
	}
}

func (s *Invoice) EntityType() database.EntityType {
	return database.EntityTypeInvoices
}

func (s *Invoice) BatchReferenceData(
	ctx context.Context,
	records []unified.Record,
) (*refdata.Set, error) {
	set := refdata.NewSet()

	if err := s.fetchExisting(ctx, set, records); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableCustomers, "customer", netsuite.Filter{
		IDs:         unified.Strings(records, "customerId"),
		Names:       unified.Strings(records, "customerName"),
		ExternalIDs: unified.Strings(records, "customerExternalId"),
		EntityIDs:   unified.Strings(records, "customerNumber"),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchRef(ctx, set, refdata.TableItems, "item", netsuite.Filter{
		IDs:         lineValues(records, "itemId", invoiceLineKeys),
		Names:       lineValues(records, "itemName", invoiceLineKeys),
		ExternalIDs: lineValues(records, "itemExternalId", invoiceLineKeys),
		ItemIDs:     lineValues(records, "itemNumber", invoiceLineKeys),
	}); err != nil {
		return nil, err
	}

	if err := s.fetchCommonRefs(ctx, set, records, invoiceLineKeys); err != nil {
		return nil, err
	}

	return set, nil
}

var invoiceLineKeys = []string{"lineItems"}

func (s *Invoice) Upsert(
	ctx context.Context,
	rec unified.Record,
	set *refdata.Set,
) (*Result, error) {
	mapped, err := s.mapper.ToPayload(rec, set)
	if err != nil {
		return nil, err
	}

	return s.upsertTransaction(ctx, mapped, set, "customer", "customerPayment")
}
