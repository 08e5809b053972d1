package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skynet2/netsuite-unified-target/pkg/common"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

func items(payload unified.Payload, key string) []unified.Payload {
	wrapper, ok := payload[key].(unified.Payload)
	if !ok {
		return nil
	}

	list, _ := wrapper["items"].([]unified.Payload)

	return list
}

func TestBillMapsVendorAndLineItems(t *testing.T) {
	set := refdata.NewSet().
		Put(refdata.TableVendors, []*netsuite.ReferenceRow{
			{InternalID: "42", Name: "Acme"},
		}).
		Put(refdata.TableItems, []*netsuite.ReferenceRow{
			{InternalID: "7", Name: "Widget"},
		})

	mapped, err := mapper.NewBill().ToPayload(unified.Record{
		"externalId": "B100",
		"vendorName": "Acme",
		"lineItems": []interface{}{
			map[string]interface{}{
				"itemName":  "Widget",
				"quantity":  float64(2),
				"unitPrice": 5.0,
			},
		},
	}, set)

	assert.NoError(t, err)
	assert.Equal(t, unified.Payload{"id": "42"}, mapped.Payload["entity"])
	assert.Equal(t, "B100", mapped.Payload["externalId"])
	assert.Empty(t, mapped.InternalID)

	lines := items(mapped.Payload, "item")
	assert.Len(t, lines, 1)
	assert.Equal(t, unified.Payload{"id": "7"}, lines[0]["item"])
	assert.Equal(t, float64(2), lines[0]["quantity"])
	assert.Equal(t, 5.0, lines[0]["rate"])
	assert.NotContains(t, lines[0], "amount")
}

func TestBillSparseMapping(t *testing.T) {
	mapped, err := mapper.NewBill().ToPayload(unified.Record{
		"externalId": "B200",
	}, refdata.NewSet())

	assert.NoError(t, err)
	assert.Equal(t, unified.Payload{"externalId": "B200"}, mapped.Payload)
}

func TestBillUnknownVendorFails(t *testing.T) {
	set := refdata.NewSet().
		Put(refdata.TableVendors, []*netsuite.ReferenceRow{
			{InternalID: "42", Name: "Acme"},
		})

	_, err := mapper.NewBill().ToPayload(unified.Record{
		"vendorName": "Nobody",
	}, set)

	assert.True(t, common.IsReferenceNotFound(err))
	assert.Contains(t, err.Error(), `vendorName="Nobody"`)
}

func TestBillExistingRecordScopesLineLookups(t *testing.T) {
	set := refdata.NewSet().
		Put(refdata.TableBills, []*netsuite.ReferenceRow{
			{InternalID: "300", ExternalID: "B300", SubsidiaryID: "2"},
		}).
		Put(refdata.TableLocations, []*netsuite.ReferenceRow{
			{InternalID: "10", Name: "Main", SubsidiaryID: "1"},
			{InternalID: "11", Name: "Main", SubsidiaryID: "2"},
		})

	mapped, err := mapper.NewBill().ToPayload(unified.Record{
		"externalId":   "B300",
		"locationName": "Main",
	}, set)

	assert.NoError(t, err)
	assert.Equal(t, "300", mapped.InternalID)
	assert.Equal(t, "300", mapped.Payload["internalId"])
	assert.Equal(t, unified.Payload{"id": "11"}, mapped.Payload["location"])
}

func TestBillTaxDetails(t *testing.T) {
	set := refdata.NewSet().
		Put(refdata.TableTaxCodes, []*netsuite.ReferenceRow{
			{InternalID: "5", Name: "VAT20"},
		})

	mapped, err := mapper.NewBill().ToPayload(unified.Record{
		"expenses": []interface{}{
			map[string]interface{}{
				"totalPrice": 100.0,
				"taxCode":    "VAT20",
				"taxAmount":  20.0,
			},
		},
	}, set)

	assert.NoError(t, err)
	assert.Equal(t, true, mapped.Payload["taxDetailsOverride"])

	expenses := items(mapped.Payload, "expense")
	assert.Len(t, expenses, 1)

	token, ok := expenses[0]["taxDetailsReference"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	details := items(mapped.Payload, "taxDetails")
	assert.Len(t, details, 1)
	assert.Equal(t, unified.Payload{"id": token}, details[0]["taxDetailsReference"])
	assert.Equal(t, unified.Payload{"id": "5"}, details[0]["taxType"])
	assert.Equal(t, 20.0, details[0]["taxAmount"])
}

func TestInvoiceCarriesRelatedPayments(t *testing.T) {
	set := refdata.NewSet().
		Put(refdata.TableCustomers, []*netsuite.ReferenceRow{
			{InternalID: "15", Name: "Globex"},
		})

	mapped, err := mapper.NewInvoice().ToPayload(unified.Record{
		"customerName": "Globex",
		"relatedPayments": []interface{}{
			map[string]interface{}{"amount": 50.0},
		},
	}, set)

	assert.NoError(t, err)
	assert.Equal(t, unified.Payload{"id": "15"}, mapped.Entity)
	assert.Len(t, mapped.RelatedPayments, 1)
	assert.Equal(t, 50.0, mapped.RelatedPayments[0]["amount"])
}

func TestVendorIsActiveInversion(t *testing.T) {
	mapped, err := mapper.NewVendor().ToPayload(unified.Record{
		"vendorName": "Acme",
		"isActive":   false,
	}, refdata.NewSet())

	assert.NoError(t, err)
	assert.Equal(t, true, mapped.Payload["isInactive"])
	assert.Equal(t, "Acme", mapped.Payload["companyName"])

	mapped, err = mapper.NewVendor().ToPayload(unified.Record{
		"vendorName": "Acme",
	}, refdata.NewSet())

	assert.NoError(t, err)
	assert.NotContains(t, mapped.Payload, "isInactive")
}

func TestCustomFieldsFlattened(t *testing.T) {
	mapped, err := mapper.NewVendor().ToPayload(unified.Record{
		"customFields": []interface{}{
			map[string]interface{}{"name": "custbody_region", "value": "EMEA"},
			map[string]interface{}{"value": "ignored"},
		},
	}, refdata.NewSet())

	assert.NoError(t, err)
	assert.Equal(t, "EMEA", mapped.Payload["custbody_region"])
	assert.Len(t, mapped.Payload, 1)
}

func TestJournalEntryLines(t *testing.T) {
	set := refdata.NewSet().
		Put(refdata.TableSubsidiaries, []*netsuite.ReferenceRow{
			{InternalID: "1", Name: "HQ"},
		}).
		Put(refdata.TableAccounts, []*netsuite.ReferenceRow{
			{InternalID: "100", Name: "Cash"},
			{InternalID: "200", Name: "Revenue"},
		})

	mapped, err := mapper.NewJournalEntry().ToPayload(unified.Record{
		"subsidiaryName":     "HQ",
		"journalEntryNumber": "JE-1",
		"lineItems": []interface{}{
			map[string]interface{}{
				"accountName":  "Cash",
				"entryType":    "Debit",
				"debitAmount":  75.0,
				"creditAmount": 0.0,
			},
			map[string]interface{}{
				"accountName":  "Revenue",
				"entryType":    "Credit",
				"creditAmount": 75.0,
			},
		},
	}, set)

	assert.NoError(t, err)
	assert.Equal(t, "JE-1", mapped.Payload["tranId"])
	assert.Equal(t, unified.Payload{"id": "1"}, mapped.Payload["subsidiary"])

	lines := items(mapped.Payload, "line")
	assert.Len(t, lines, 2)
	assert.Equal(t, 75.0, lines[0]["debit"])
	assert.NotContains(t, lines[0], "credit")
	assert.Equal(t, 75.0, lines[1]["credit"])
}

func TestJournalEntryRejectsUnknownEntryType(t *testing.T) {
	set := refdata.NewSet().
		Put(refdata.TableAccounts, []*netsuite.ReferenceRow{
			{InternalID: "100", Name: "Cash"},
		})

	_, err := mapper.NewJournalEntry().ToPayload(unified.Record{
		"lineItems": []interface{}{
			map[string]interface{}{
				"accountName": "Cash",
				"entryType":   "Both",
			},
		},
	}, set)

	assert.Error(t, err)

	var invalid *common.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestBillPaymentAppliesToBill(t *testing.T) {
	set := refdata.NewSet().
		Put(refdata.TableBills, []*netsuite.ReferenceRow{
			{InternalID: "900", TranID: "BILL-9", EntityRef: "42"},
		})

	mapped, err := mapper.NewBillPayment().ToPayload(unified.Record{
		"externalId": "P1",
		"billNumber": "BILL-9",
		"amount":     120.5,
	}, set)

	assert.NoError(t, err)
	assert.Equal(t, unified.Payload{"id": "42"}, mapped.Payload["entity"])
	assert.Equal(t, unified.Payload{"id": "42"}, mapped.Entity)

	apply := items(mapped.Payload, "apply")
	assert.Len(t, apply, 1)
	assert.Equal(t, unified.Payload{"id": "900"}, apply[0]["doc"])
	assert.Equal(t, true, apply[0]["apply"])
	assert.Equal(t, 120.5, apply[0]["amount"])
}

func TestBillPaymentUnknownBillFails(t *testing.T) {
	_, err := mapper.NewBillPayment().ToPayload(unified.Record{
		"billNumber": "BILL-404",
	}, refdata.NewSet())

	var invalid *common.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestInvoicePaymentCustomerConflict(t *testing.T) {
	set := refdata.NewSet().
		Put(refdata.TableInvoices, []*netsuite.ReferenceRow{
			{InternalID: "700", ExternalID: "INV-7", EntityRef: "15"},
		}).
		Put(refdata.TableCustomers, []*netsuite.ReferenceRow{
			{InternalID: "16", Name: "Initech"},
		})

	_, err := mapper.NewInvoicePayment().ToPayload(unified.Record{
		"invoiceExternalId": "INV-7",
		"customerName":      "Initech",
		"amount":            10.0,
	}, set)

	var invalid *common.InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	mapped, err := mapper.NewInvoicePayment().ToPayload(unified.Record{
		"invoiceExternalId": "INV-7",
		"amount":            10.0,
	}, set)

	assert.NoError(t, err)
	assert.Equal(t, unified.Payload{"id": "15"}, mapped.Payload["customer"])
}

func TestMapChildPayment(t *testing.T) {
	payload, err := mapper.MapChildPayment(unified.Record{
		"paymentDate": "2024-03-01",
		"amount":      30.0,
	}, unified.Payload{"id": "15"}, "customer", "700", refdata.NewSet())

	assert.NoError(t, err)
	assert.Equal(t, unified.Payload{"id": "15"}, payload["customer"])
	assert.Equal(t, "2024-03-01", payload["tranDate"])

	apply := items(payload, "apply")
	assert.Len(t, apply, 1)
	assert.Equal(t, unified.Payload{"id": "700"}, apply[0]["doc"])
	assert.Equal(t, 30.0, apply[0]["amount"])
}

func TestJournalEntryRejectsMissingAmount(t *testing.T) {
	set := refdata.NewSet().
		Put(refdata.TableAccounts, []*netsuite.ReferenceRow{
			{InternalID: "100", Name: "Cash"},
		})

	_, err := mapper.NewJournalEntry().ToPayload(unified.Record{
		"externalId": "JE-1",
		"lineItems": []interface{}{
			map[string]interface{}{
				"accountName": "Cash",
				"entryType":   "Credit",
			},
		},
	}, set)

	var invalid *common.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "creditAmount")
}

func TestChildPaymentRejectsMissingAmount(t *testing.T) {
	_, err := mapper.MapChildPayment(unified.Record{
		"paymentDate": "2024-03-01",
	}, unified.Payload{"id": "15"}, "customer", "700", refdata.NewSet())

	var invalid *common.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "amount")
}
