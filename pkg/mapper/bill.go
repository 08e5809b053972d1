package mapper

import (
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// Bill maps a unified bill record onto the remote vendorBill schema.
type Bill struct {
}

func NewBill() *Bill {
	return &Bill{}
}

var billFields = map[string]string{
	"externalId":   "externalId",
	"dueDate":      "dueDate",
	"balance":      "balance",
	"totalAmount":  "total",
	"issueDate":    "tranDate",
	"exchangeRate": "exchangeRate",
}

func (m *Bill) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	payload := unified.Payload{}

	existing := mapInternalID(payload, rec, set, refdata.TableBills)

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

	taxes := newTaxCollector()

	if err = mapItemLines(payload, rec, set, scope, taxes); err != nil {
		return nil, err
	}

	if err = mapExpenseLines(payload, rec, set, scope, taxes); err != nil {
		return nil, err
	}

	taxes.Apply(payload)
	copyFields(payload, rec, billFields)

	return &Mapped{
		Payload:         payload,
		InternalID:      internalIDOf(existing),
		RelatedPayments: rec.List("relatedPayments"),
		Entity:          entity,
	}, nil
}

// mapItemLines maps the lineItems list into the item wrapper list,
// threading the parent's subsidiary scope into every child lookup.
func mapItemLines(
	payload unified.Payload,
	rec unified.Record,
	set *refdata.Set,
	scope string,
	taxes *taxCollector,
) error {
	lines := rec.List("lineItems")
	if len(lines) == 0 {
		return nil
	}

	items := make([]unified.Payload, 0, len(lines))

	for _, line := range lines {
		mapped, err := mapItemLine(line, set, scope, taxes)
		if err != nil {
			return err
		}

		items = append(items, mapped)
	}

	payload["item"] = unified.Payload{"items": items}

	return nil
}

var itemLineFields = map[string]string{
	"description": "description",
	"quantity":    "quantity",
	"unitPrice":   "rate",
	"totalPrice":  "amount",
}

func mapItemLine(
	line unified.Record,
	set *refdata.Set,
	scope string,
	taxes *taxCollector,
) (unified.Payload, error) {
	payload := unified.Payload{}

	mapCustomFields(payload, line)

	if err := mapRef(payload, line, set, "item", refdata.Lookup{
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
		{"location", refdata.TableLocations},
		{"class", refdata.TableClassifications},
		{"department", refdata.TableDepartments},
	} {
		if err := mapRef(payload, line, set, ref.target,
			scopedLookup(ref.table, ref.target, scope)); err != nil {
			return nil, err
		}
	}

	copyFields(payload, line, itemLineFields)

	if taxes != nil {
		if err := taxes.Collect(line, payload, set); err != nil {
			return nil, err
		}
	}

	return payload, nil
}

// mapExpenseLines maps account-based expense lines into the expense
// wrapper list.
func mapExpenseLines(
	payload unified.Payload,
	rec unified.Record,
	set *refdata.Set,
	scope string,
	taxes *taxCollector,
) error {
	lines := rec.List("expenses")
	if len(lines) == 0 {
		return nil
	}

	items := make([]unified.Payload, 0, len(lines))

	for _, line := range lines {
		mapped, err := mapExpenseLine(line, set, scope, taxes)
		if err != nil {
			return err
		}

		items = append(items, mapped)
	}

	payload["expense"] = unified.Payload{"items": items}

	return nil
}

var expenseLineFields = map[string]string{
	"description": "memo",
	"quantity":    "quantity",
	"totalPrice":  "amount",
}

func mapExpenseLine(
	line unified.Record,
	set *refdata.Set,
	scope string,
	taxes *taxCollector,
) (unified.Payload, error) {
	payload := unified.Payload{}

	mapCustomFields(payload, line)

	if err := mapRef(payload, line, set, "account", refdata.Lookup{
		Table:     refdata.TableAccounts,
		IDField:   "accountId",
		NameField: "accountName",
	}); err != nil {
		return nil, err
	}

	for _, ref := range []struct {
		target string
		table  string
	}{
		{"location", refdata.TableLocations},
		{"class", refdata.TableClassifications},
		{"department", refdata.TableDepartments},
	} {
		if err := mapRef(payload, line, set, ref.target,
			scopedLookup(ref.table, ref.target, scope)); err != nil {
			return nil, err
		}
	}

	copyFields(payload, line, expenseLineFields)

	if taxes != nil {
		if err := taxes.Collect(line, payload, set); err != nil {
			return nil, err
		}
	}

	return payload, nil
}

func internalIDOf(row *netsuite.ReferenceRow) string {
	if row == nil {
		return ""
	}

	return row.InternalID
}
