package mapper

import (
	"fmt"

	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// Item maps a unified item onto the remote item schema. The accounts
// list fans out into typed account references (incomeAccount,
// expenseAccount, ...).
type Item struct {
}

func NewItem() *Item {
	return &Item{}
}

var itemFields = map[string]string{
	"code":        "itemId",
	"displayName": "displayName",
	"type":        "type",
	"category":    "category",
}

func (m *Item) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	payload := unified.Payload{}

	existing := mapInternalID(payload, rec, set, refdata.TableItems)

	if err := mapRefList(payload, rec, set, "subsidiary", refdata.ManyLookup{
		Table:     refdata.TableSubsidiaries,
		IDsField:  "subsidiary",
		RefsField: "subsidiaryRef",
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
		if err := mapRef(payload, rec, set, ref.target,
			scopedLookup(ref.table, ref.target, "")); err != nil {
			return nil, err
		}
	}

	for _, account := range rec.List("accounts") {
		accountType := account.String("accountType")
		id := account.String("id")

		if accountType == "" || id == "" {
			continue
		}

		payload[fmt.Sprintf("%sAccount", accountType)] = refPayload(id)
	}

	mapIsActive(payload, rec)
	copyFields(payload, rec, itemFields)

	return &Mapped{
		Payload:    payload,
		InternalID: internalIDOf(existing),
	}, nil
}
