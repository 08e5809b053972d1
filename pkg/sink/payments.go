package sink

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// BillPayment handles standalone vendor payments that reference the
// bill they settle.
type BillPayment struct {
	base
	mapper mapper.Mapper
}

func NewBillPayment(ns NetSuite) *BillPayment {
	return &BillPayment{
		base:   base{ns: ns, recordType: "vendorPayment"},
		mapper: mapper.NewBillPayment(),
	}
}

func (s *BillPayment) EntityType() database.EntityType {
	return database.EntityTypeBillPayments
}

func (s *BillPayment) BatchReferenceData(
	ctx context.Context,
	records []unified.Record,
) (*refdata.Set, error) {
	return s.fetchPaymentRefs(ctx, records, paymentRefs{
		ownTable:     refdata.TableBillPayments,
		ownTxType:    "VendPymt",
		parentTable:  refdata.TableBills,
		parentTxType: "VendBill",
		parentBase:   "bill",
		entityTable:  refdata.TableVendors,
		entityType:   "vendor",
		entityBase:   "vendor",
	})
}

func (s *BillPayment) Upsert(
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

// InvoicePayment handles standalone customer payments that reference
// the invoice they settle.
type InvoicePayment struct {
	base
	mapper mapper.Mapper
}

func NewInvoicePayment(ns NetSuite) *InvoicePayment {
	return &InvoicePayment{
		base:   base{ns: ns, recordType: "customerPayment"},
		mapper: mapper.NewInvoicePayment(),
	}
}

func (s *InvoicePayment) EntityType() database.EntityType {
	return database.EntityTypeInvoicePayments
}

func (s *InvoicePayment) BatchReferenceData(
	ctx context.Context,
	records []unified.Record,
) (*refdata.Set, error) {
	return s.fetchPaymentRefs(ctx, records, paymentRefs{
		ownTable:     refdata.TableInvoicePayments,
		ownTxType:    "CustPymt",
		parentTable:  refdata.TableInvoices,
		parentTxType: "CustInvc",
		parentBase:   "invoice",
		entityTable:  refdata.TableCustomers,
		entityType:   "customer",
		entityBase:   "customer",
	})
}

func (s *InvoicePayment) Upsert(
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

type paymentRefs struct {
	ownTable  string
	ownTxType string

	parentTable  string
	parentTxType string
	parentBase   string

	entityTable string
	entityType  string
	entityBase  string
}

func (b *base) fetchPaymentRefs(
	ctx context.Context,
	records []unified.Record,
	cfg paymentRefs,
) (*refdata.Set, error) {
	set := refdata.NewSet()

	own, err := b.ns.GetTransactionData(ctx, cfg.ownTxType, netsuite.Filter{
		IDs:         unified.Strings(records, "id"),
		ExternalIDs: unified.Strings(records, "externalId"),
	})
	if err != nil {
		return nil, err
	}

	if len(own) > 0 {
		set.Put(cfg.ownTable, own)
	}

	parents, err := b.ns.GetTransactionData(ctx, cfg.parentTxType, netsuite.Filter{
		IDs:         unified.Strings(records, cfg.parentBase+"Id"),
		TranIDs:     unified.Strings(records, cfg.parentBase+"Number"),
		ExternalIDs: unified.Strings(records, cfg.parentBase+"ExternalId"),
	})
	if err != nil {
		return nil, err
	}

	if len(parents) > 0 {
		set.Put(cfg.parentTable, parents)
	}

	if err = b.fetchRef(ctx, set, cfg.entityTable, cfg.entityType, netsuite.Filter{
		IDs:         unified.Strings(records, cfg.entityBase+"Id"),
		Names:       unified.Strings(records, cfg.entityBase+"Name"),
		ExternalIDs: unified.Strings(records, cfg.entityBase+"ExternalId"),
		EntityIDs:   unified.Strings(records, cfg.entityBase+"Number"),
	}); err != nil {
		return nil, err
	}

	if err = b.fetchRef(ctx, set, refdata.TableAccounts, "account", netsuite.Filter{
		IDs:   unified.Strings(records, "accountId"),
		Names: unified.Strings(records, "accountName"),
	}); err != nil {
		return nil, err
	}

	return set, b.fetchRef(ctx, set, refdata.TableCurrencies, "currency", netsuite.Filter{
		Names: unified.Strings(records, "currency"),
	})
}
