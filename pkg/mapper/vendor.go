package mapper

import (
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// Vendor maps a unified vendor onto the remote vendor schema.
type Vendor struct {
}

func NewVendor() *Vendor {
	return &Vendor{}
}

var vendorFields = map[string]string{
	"externalId": "externalId",
	"vendorName": "companyName",
	"prefix":     "salutation",
	"firstName":  "firstName",
	"middleName": "middleName",
	"lastName":   "lastName",
	"title":      "title",
	"email":      "email",
	"website":    "url",
	"checkName":  "printOnCheckAs",
	"balance":    "balance",
}

func (m *Vendor) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	payload := unified.Payload{}

	existing := mapInternalID(payload, rec, set, refdata.TableVendors)

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
	copyFields(payload, rec, vendorFields)

	return &Mapped{
		Payload:    payload,
		InternalID: internalIDOf(existing),
	}, nil
}
