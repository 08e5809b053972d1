package mapper

import (
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// Account maps a unified ledger account onto the remote account schema.
type Account struct {
}

func NewAccount() *Account {
	return &Account{}
}

var accountFields = map[string]string{
	"externalId":    "externalId",
	"name":          "acctName",
	"accountNumber": "acctNumber",
	"description":   "description",
	"type":          "acctType",
}

func (m *Account) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	payload := unified.Payload{}

	existing := mapInternalID(payload, rec, set, refdata.TableAccounts)

	subsidiaries, err := set.ResolveMany(rec, refdata.ManyLookup{
		Table:     refdata.TableSubsidiaries,
		IDsField:  "subsidiary",
		RefsField: "subsidiaryRef",
	})
	if err != nil {
		return nil, err
	}

	scope := ""
	if len(subsidiaries) > 0 {
		scope = subsidiaries[0].InternalID

		items := make([]unified.Payload, 0, len(subsidiaries))
		for _, row := range subsidiaries {
			items = append(items, refPayload(row.InternalID))
		}

		payload["subsidiary"] = unified.Payload{"items": items}
	}

	mapCurrency(payload, rec, set)

	if err = mapRef(payload, rec, set, "parent", refdata.Lookup{
		Table:     refdata.TableAccounts,
		IDField:   "parentId",
		NameField: "parentName",
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
		if err = mapRef(payload, rec, set, ref.target,
			scopedLookup(ref.table, ref.target, scope)); err != nil {
			return nil, err
		}
	}

	mapIsActive(payload, rec)
	copyFields(payload, rec, accountFields)

	return &Mapped{
		Payload:    payload,
		InternalID: internalIDOf(existing),
	}, nil
}
