package mapper

import (
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// VendorCredit maps a unified vendor credit onto the remote
// vendorCredit schema. The external id doubles as the transaction
// number on this record type.
type VendorCredit struct {
}

func NewVendorCredit() *VendorCredit {
	return &VendorCredit{}
}

var vendorCreditFields = map[string]string{
	"externalId":   "externalId",
	"issueDate":    "tranDate",
	"dueDate":      "dueDate",
	"exchangeRate": "exchangeRate",
	"description":  "memo",
}

func (m *VendorCredit) ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error) {
	payload := unified.Payload{}

	existing := mapInternalID(payload, rec, set, refdata.TableVendorCredits)

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

	if err = mapRef(payload, rec, set, "subsidiary", refdata.Lookup{
		Table:     refdata.TableSubsidiaries,
		IDField:   "subsidiaryId",
		NameField: "subsidiaryName",
	}); err != nil {
		return nil, err
	}

	for _, ref := range []struct {
		target string
		table  string
	}{
		{"location", refdata.TableLocations},
		{"department", refdata.TableDepartments},
	} {
		if err = mapRef(payload, rec, set, ref.target,
			scopedLookup(ref.table, ref.target, scope)); err != nil {
			return nil, err
		}
	}

	taxes := newTaxCollector()

	if err = mapItemLines(payload, rec, set, scope, taxes); err != nil {
		return nil, err
	}

	if err = mapExpenseLines(payload, rec, set, scope, taxes); err != nil {
		return nil, err
	}

	taxes.Apply(payload)
	mapCustomFields(payload, rec)
	copyFields(payload, rec, vendorCreditFields)

	if externalID := rec.String("externalId"); externalID != "" {
		payload["tranId"] = externalID
	}

	return &Mapped{
		Payload:    payload,
		InternalID: internalIDOf(existing),
		Entity:     entity,
	}, nil
}
