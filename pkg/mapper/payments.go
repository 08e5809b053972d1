package mapper

import (
	"github.com/skynet2/netsuite-unified-target/pkg/common"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

var paymentFields = map[string]string{
	"externalId":   "externalId",
	"exchangeRate": "exchangeRate",
	"paymentDate":  "tranDate",
}

// MapChildPayment shapes one related payment of an already-upserted
// parent transaction. The entity reference comes resolved from the
// parent mapping so the child can never bind a different party.
func MapChildPayment(
	payment unified.Record,
	entity unified.Payload,
	entityField string,
	parentID string,
	set *refdata.Set,
) (unified.Payload, error) {
	payload := unified.Payload{}

	if entity != nil {
		payload[entityField] = entity
	}

	mapCurrency(payload, payment, set)

	if err := mapRef(payload, payment, set, "account", refdata.Lookup{
		Table:     refdata.TableAccounts,
		IDField:   "accountId",
		NameField: "accountName",
	}); err != nil {
		return nil, err
	}

	apply, err := applyBlock(parentID, payment)
	if err != nil {
		return nil, err
	}

	payload["apply"] = apply

	copyFields(payload, payment, paymentFields)

	return payload, nil
}

// applyBlock binds the payment amount to the parent transaction. An
// absent or null amount is a record failure, never a null in the
// payload.
func applyBlock(parentID string, payment unified.Record) (unified.Payload, error) {
	amount, ok := payment["amount"]
	if !ok || amount == nil {
		return nil, common.NewInvalidInputf("payment is missing amount")
	}

	return unified.Payload{
		"items": []unified.Payload{
			{
				"doc":    refPayload(parentID),
				"apply":  true,
				"amount": amount,
			},
		},
	}, nil
}

// BillPayment maps a standalone vendor payment targeting a bill.
type BillPayment struct {
}

func NewBillPayment() *BillPayment {
	return &BillPayment{}
}

func (m *BillPayment) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	return mapStandalonePayment(rec, set, standalonePayment{
		ownTable:         refdata.TableBillPayments,
		parentTable:      refdata.TableBills,
		parentKind:       "bill",
		entityTable:      refdata.TableVendors,
		entityKind:       "vendor",
		entityField:      "entity",
		parentIDField:    "billId",
		parentNumField:   "billNumber",
		parentExtField:   "billExternalId",
		entityIDField:    "vendorId",
		entityNameField:  "vendorName",
		entityNumField:   "vendorNumber",
		entityExtIDField: "vendorExternalId",
	})
}

// InvoicePayment maps a standalone customer payment targeting an
// invoice.
type InvoicePayment struct {
}

func NewInvoicePayment() *InvoicePayment {
	return &InvoicePayment{}
}

func (m *InvoicePayment) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	return mapStandalonePayment(rec, set, standalonePayment{
		ownTable:         refdata.TableInvoicePayments,
		parentTable:      refdata.TableInvoices,
		parentKind:       "invoice",
		entityTable:      refdata.TableCustomers,
		entityKind:       "customer",
		entityField:      "customer",
		parentIDField:    "invoiceId",
		parentNumField:   "invoiceNumber",
		parentExtField:   "invoiceExternalId",
		entityIDField:    "customerId",
		entityNameField:  "customerName",
		entityNumField:   "customerNumber",
		entityExtIDField: "customerExternalId",
	})
}

type standalonePayment struct {
	ownTable    string
	parentTable string
	parentKind  string
	entityTable string
	entityKind  string
	entityField string

	parentIDField  string
	parentNumField string
	parentExtField string

	entityIDField    string
	entityNameField  string
	entityNumField   string
	entityExtIDField string
}

func mapStandalonePayment(
	rec unified.Record,
	set *refdata.Set,
	cfg standalonePayment,
) (*Mapped, error) {
	payload := unified.Payload{}

	existing := mapInternalID(payload, rec, set, cfg.ownTable)

	parent := findTransaction(set.Table(cfg.parentTable), rec,
		cfg.parentIDField, cfg.parentNumField, cfg.parentExtField)
	if parent == nil {
		return nil, common.NewInvalidInputf("payment does not match any existing %s (%s=%q %s=%q %s=%q)",
			cfg.parentKind,
			cfg.parentIDField, rec.String(cfg.parentIDField),
			cfg.parentNumField, rec.String(cfg.parentNumField),
			cfg.parentExtField, rec.String(cfg.parentExtField))
	}

	explicit, err := set.Resolve(rec, refdata.Lookup{
		Table:           cfg.entityTable,
		IDField:         cfg.entityIDField,
		NameField:       cfg.entityNameField,
		ExternalIDField: cfg.entityExtIDField,
		NumberField:     cfg.entityNumField,
	})
	if err != nil {
		return nil, err
	}

	entityID := parent.EntityRef
	if explicit != nil {
		// An explicitly supplied party must agree with the one already
		// on the targeted transaction.
		if parent.EntityRef != "" && explicit.InternalID != parent.EntityRef {
			return nil, common.NewInvalidInputf(
				"payment %s %s conflicts with the %s on %s %s (%s)",
				cfg.entityKind, explicit.InternalID, cfg.entityKind,
				cfg.parentKind, parent.InternalID, parent.EntityRef)
		}

		entityID = explicit.InternalID
	}

	var entity unified.Payload
	if entityID != "" {
		entity = refPayload(entityID)
		payload[cfg.entityField] = entity
	}

	mapCurrency(payload, rec, set)

	if err = mapRef(payload, rec, set, "account", refdata.Lookup{
		Table:     refdata.TableAccounts,
		IDField:   "accountId",
		NameField: "accountName",
	}); err != nil {
		return nil, err
	}

	apply, err := applyBlock(parent.InternalID, rec)
	if err != nil {
		return nil, err
	}

	payload["apply"] = apply

	copyFields(payload, rec, paymentFields)

	return &Mapped{
		Payload:    payload,
		InternalID: internalIDOf(existing),
		Entity:     entity,
	}, nil
}

// findTransaction matches a referenced transaction by internal id,
// transaction number or external id, in that order.
func findTransaction(
	rows []*netsuite.ReferenceRow,
	rec unified.Record,
	idField, numField, extField string,
) *netsuite.ReferenceRow {
	if id := rec.String(idField); id != "" {
		for _, row := range rows {
			if row.InternalID == id {
				return row
			}
		}
	}

	if num := rec.String(numField); num != "" {
		for _, row := range rows {
			if row.TranID != "" && row.TranID == num {
				return row
			}
		}
	}

	if ext := rec.String(extField); ext != "" {
		for _, row := range rows {
			if row.ExternalID != "" && row.ExternalID == ext {
				return row
			}
		}
	}

	return nil
}
