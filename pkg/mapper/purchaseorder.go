package mapper

import (
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// PurchaseOrder maps a unified purchase order onto the remote
// purchaseOrder schema.
type PurchaseOrder struct {
}

func NewPurchaseOrder() *PurchaseOrder {
	return &PurchaseOrder{}
}

var purchaseOrderFields = map[string]string{
	"externalId":          "externalId",
	"purchaseOrderNumber": "tranId",
	"description":         "memo",
	"exchangeRate":        "exchangeRate",
	"dueDate":             "dueDate",
	"issueDate":           "tranDate",
	"paidDate":            "endDate",
}

func (m *PurchaseOrder) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	payload := unified.Payload{}

	existing := mapInternalID(payload, rec, set, refdata.TablePurchaseOrders)

	existingScope := ""
	if existing != nil {
		existingScope = existing.SubsidiaryID
	}

	scope, err := subsidiaryScope(rec, set, existingScope, "")
	if err != nil {
		return nil, err
	}

	vendor, err := set.Resolve(rec, refdata.Lookup{
		Table:           refdata.TableVendors,
		IDField:         "vendorId",
		NameField:       "vendorName",
		ExternalIDField: "vendorExternalId",
		NumberField:     "vendorNumber",
	})
	if err != nil {
		return nil, err
	}

	var entity unified.Payload
	if vendor != nil {
		entity = refPayload(vendor.InternalID)
		payload["entity"] = entity
	}

	mapCurrency(payload, rec, set)
	mapCustomFields(payload, rec)

	if err = mapRef(payload, rec, set, "subsidiary", refdata.Lookup{
		Table:     refdata.TableSubsidiaries,
		IDField:   "subsidiaryId",
		NameField: "subsidiaryName",
	}); err != nil {
		return nil, err
	}

	if err = mapRef(payload, rec, set, "employee",
		scopedLookup(refdata.TableEmployees, "employee", scope)); err != nil {
		return nil, err
	}

	if err = m.mapLines(payload, rec, set, scope); err != nil {
		return nil, err
	}

	copyFields(payload, rec, purchaseOrderFields)

	return &Mapped{
		Payload:    payload,
		InternalID: internalIDOf(existing),
		Entity:     entity,
	}, nil
}

var purchaseOrderLineFields = map[string]string{
	"quantity":    "quantity",
	"unitPrice":   "rate",
	"totalPrice":  "amount",
	"description": "description",
}

func (m *PurchaseOrder) mapLines(
	payload unified.Payload,
	rec unified.Record,
	set *refdata.Set,
	scope string,
) error {
	lines := rec.List("lineItems")
	if len(lines) == 0 {
		return nil
	}

	items := make([]unified.Payload, 0, len(lines))

	for _, line := range lines {
		mapped, err := m.mapLine(line, set, scope)
		if err != nil {
			return err
		}

		items = append(items, mapped)
	}

	payload["item"] = unified.Payload{"items": items}

	return nil
}

func (m *PurchaseOrder) mapLine(
	line unified.Record,
	set *refdata.Set,
	scope string,
) (unified.Payload, error) {
	// Lines may override the parent subsidiary, and then every scoped
	// lookup on the line follows the override.
	lineScope, err := subsidiaryScope(line, set, "", scope)
	if err != nil {
		return nil, err
	}

	payload := unified.Payload{}

	mapCustomFields(payload, line)

	// Projects are customer records on the remote side.
	if err = mapRef(payload, line, set, "customer", refdata.Lookup{
		Table:           refdata.TableCustomers,
		IDField:         "projectId",
		NameField:       "projectName",
		ExternalIDField: "projectExternalId",
		NumberField:     "projectNumber",
	}); err != nil {
		return nil, err
	}

	if err = mapRef(payload, line, set, "item", refdata.Lookup{
		Table:           refdata.TableItems,
		IDField:         "itemId",
		NameField:       "itemName",
		ExternalIDField: "itemExternalId",
		NumberField:     "itemNumber",
	}); err != nil {
		return nil, err
	}

	for _, ref := range []struct {
		target string
		table  string
	}{
		{"class", refdata.TableClassifications},
		{"department", refdata.TableDepartments},
	} {
		if err = mapRef(payload, line, set, ref.target,
			scopedLookup(ref.table, ref.target, lineScope)); err != nil {
			return nil, err
		}
	}

	if err = mapRef(payload, line, set, "subsidiary", refdata.Lookup{
		Table:     refdata.TableSubsidiaries,
		IDField:   "subsidiaryId",
		NameField: "subsidiaryName",
	}); err != nil {
		return nil, err
	}

	if err = mapRef(payload, line, set, "employee",
		scopedLookup(refdata.TableEmployees, "employee", lineScope)); err != nil {
		return nil, err
	}

	copyFields(payload, line, purchaseOrderLineFields)

	return payload, nil
}
