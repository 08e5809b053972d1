package mapper

import (
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// Customer maps a unified customer onto the remote customer schema.
type Customer struct {
}

func NewCustomer() *Customer {
	return &Customer{}
}

var customerFields = map[string]string{
	"externalId":  "externalId",
	"companyName": "companyName",
	"prefix":      "salutation",
	"firstName":   "firstName",
	"middleName":  "middleName",
	"lastName":    "lastName",
	"title":       "title",
	"email":       "email",
	"website":     "url",
	"balance":     "balance",
}

func (m *Customer) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	payload := unified.Payload{}

	existing := mapInternalID(payload, rec, set, refdata.TableCustomers)

	if err := mapRef(payload, rec, set, "parent", refdata.Lookup{
		Table:     refdata.TableCustomers,
		IDField:   "parent",
		NameField: "parentName",
	}); err != nil {
		return nil, err
	}

	if err := mapRef(payload, rec, set, "salesRep", refdata.Lookup{
		Table:     refdata.TableEmployees,
		IDField:   "salesRep",
		NameField: "salesRepName",
	}); err != nil {
		return nil, err
	}

	if err := mapRefList(payload, rec, set, "subsidiary", refdata.ManyLookup{
		Table:     refdata.TableSubsidiaries,
		IDsField:  "subsidiary",
		RefsField: "subsidiaryRef",
	}); err != nil {
		return nil, err
	}

	mapCurrency(payload, rec, set)
	mapPhoneNumbers(payload, rec)
	mapEntityAddresses(payload, rec)
	mapIsActive(payload, rec)
	mapCustomFields(payload, rec)
	copyFields(payload, rec, customerFields)

	return &Mapped{
		Payload:    payload,
		InternalID: internalIDOf(existing),
	}, nil
}
