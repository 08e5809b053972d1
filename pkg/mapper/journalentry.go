package mapper

import (
	"github.com/skynet2/netsuite-unified-target/pkg/common"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// JournalEntry maps a unified journal entry onto the remote
// journalEntry schema. Journal lines carry the credit/debit split and
// may reference a customer or vendor entity.
type JournalEntry struct {
}

func NewJournalEntry() *JournalEntry {
	return &JournalEntry{}
}

var journalEntryFields = map[string]string{
	"externalId":         "externalId",
	"journalEntryNumber": "tranId",
	"transactionDate":    "tranDate",
	"description":        "memo",
	"exchangeRate":       "exchangeRate",
	"postingPeriod":      "postingPeriod",
}

func (m *JournalEntry) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	payload := unified.Payload{}

	existing := mapInternalID(payload, rec, set, refdata.TableJournalEntries)

	subsidiary, err := set.Resolve(rec, refdata.Lookup{
		Table:     refdata.TableSubsidiaries,
		IDField:   "subsidiaryId",
		NameField: "subsidiaryName",
	})
	if err != nil {
		return nil, err
	}

	scope := ""
	if subsidiary != nil {
		scope = subsidiary.InternalID
		payload["subsidiary"] = refPayload(scope)
	}

	mapCurrency(payload, rec, set)
	mapCustomFields(payload, rec)

	for _, ref := range []struct {
		target string
		table  string
	}{
		{"location", refdata.TableLocations},
		{"class", refdata.TableClassifications},
		{"department", refdata.TableDepartments},
	} {
		if err = mapRef(payload, rec, set, ref.target,
			scopedLookup(ref.table, ref.target, scope)); err != nil {
			return nil, err
		}
	}

	if err = m.mapLines(payload, rec, set, scope); err != nil {
		return nil, err
	}

	copyFields(payload, rec, journalEntryFields)

	return &Mapped{
		Payload:    payload,
		InternalID: internalIDOf(existing),
	}, nil
}

func (m *JournalEntry) mapLines(
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

	payload["line"] = unified.Payload{"items": items}

	return nil
}

func (m *JournalEntry) mapLine(
	line unified.Record,
	set *refdata.Set,
	scope string,
) (unified.Payload, error) {
	payload := unified.Payload{}

	if err := mapRef(payload, line, set, "account", refdata.Lookup{
		Table:       refdata.TableAccounts,
		IDField:     "accountId",
		NameField:   "accountName",
		NumberField: "accountNumber",
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

	if err := m.mapLineEntity(payload, line, set); err != nil {
		return nil, err
	}

	switch line.String("entryType") {
	case "Credit":
		if err := setLineAmount(payload, line, "credit", "creditAmount"); err != nil {
			return nil, err
		}
	case "Debit":
		if err := setLineAmount(payload, line, "debit", "debitAmount"); err != nil {
			return nil, err
		}
	default:
		return nil, common.NewInvalidInputf(
			"journal line entryType must be Credit or Debit, got %q", line.String("entryType"))
	}

	copyFields(payload, line, map[string]string{
		"description": "memo",
	})

	return payload, nil
}

// mapLineEntity binds the optional customer or vendor on a journal
// line. A line can reference one entity only.
func (m *JournalEntry) mapLineEntity(
	payload unified.Payload,
	line unified.Record,
	set *refdata.Set,
) error {
	customer, err := set.Resolve(line, refdata.Lookup{
		Table:       refdata.TableCustomers,
		IDField:     "customerId",
		NameField:   "customerName",
		NumberField: "customerNumber",
	})
	if err != nil {
		return err
	}

	if customer != nil {
		payload["entity"] = refPayload(customer.InternalID)

		return nil
	}

	vendor, err := set.Resolve(line, refdata.Lookup{
		Table:       refdata.TableVendors,
		IDField:     "vendorId",
		NameField:   "vendorName",
		NumberField: "vendorNumber",
	})
	if err != nil {
		return err
	}

	if vendor != nil {
		payload["entity"] = refPayload(vendor.InternalID)
	}

	return nil
}

// setLineAmount copies the amount the entry type selects. An absent or
// null amount is a record failure, never a null in the payload.
func setLineAmount(
	payload unified.Payload,
	line unified.Record,
	target string,
	source string,
) error {
	amount, ok := line[source]
	if !ok || amount == nil {
		return common.NewInvalidInputf("journal line is missing %s", source)
	}

	payload[target] = amount

	return nil
}
