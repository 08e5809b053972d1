package mapper

import (
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// Invoice maps a unified invoice record onto the remote invoice schema.
type Invoice struct {
}

func NewInvoice() *Invoice {
	return &Invoice{}
}

var invoiceFields = map[string]string{
	"externalId":   "externalId",
	"dueDate":      "dueDate",
	"issueDate":    "tranDate",
	"shipDate":     "shipDate",
	"exchangeRate": "exchangeRate",
}

func (m *Invoice) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	payload := unified.Payload{}

	existing := mapInternalID(payload, rec, set, refdata.TableInvoices)

	existingScope := ""
	if existing != nil {
		existingScope = existing.SubsidiaryID
	}

	scope, err := subsidiaryScope(rec, set, existingScope, "")
	if err != nil {
		return nil, err
	}

	customer, err := set.Resolve(rec, refdata.Lookup{
		Table:           refdata.TableCustomers,
		IDField:         "customerId",
		NameField:       "customerName",
		ExternalIDField: "customerExternalId",
		NumberField:     "customerNumber",
	})
	if err != nil {
		return nil, err
	}

	var entity unified.Payload
	if customer != nil {
		entity = refPayload(customer.InternalID)
		payload["entity"] = entity
	}

	mapCurrency(payload, rec, set)
	mapCustomFields(payload, rec)

	if err = mapRef(payload, rec, set, "location",
		scopedLookup(refdata.TableLocations, "location", scope)); err != nil {
		return nil, err
	}

	if err = mapRef(payload, rec, set, "subsidiary", refdata.Lookup{
		Table:     refdata.TableSubsidiaries,
		IDField:   "subsidiaryId",
		NameField: "subsidiaryName",
	}); err != nil {
		return nil, err
	}

	mapTransactionAddresses(payload, rec)

	if err = mapItemLines(payload, rec, set, scope, nil); err != nil {
		return nil, err
	}

	copyFields(payload, rec, invoiceFields)

	return &Mapped{
		Payload:         payload,
		InternalID:      internalIDOf(existing),
		RelatedPayments: rec.List("relatedPayments"),
		Entity:          entity,
	}, nil
}
