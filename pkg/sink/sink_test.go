package sink_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skynet2/netsuite-unified-target/pkg/common"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/sink"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

func TestBillCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	ns := NewMockNetSuite(ctrl)

	set := refdata.NewSet().
		Put(refdata.TableVendors, []*netsuite.ReferenceRow{
			{InternalID: "42", Name: "Acme"},
		})

	ns.EXPECT().CreateRecord(gomock.Any(), "vendorBill", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload unified.Payload) (string, error) {
			assert.Equal(t, unified.Payload{"id": "42"}, payload["entity"])

			return "900", nil
		})

	res, err := sink.NewBill(ns).Upsert(context.TODO(), unified.Record{
		"externalId": "B1",
		"vendorName": "Acme",
	}, set)

	assert.NoError(t, err)
	assert.Equal(t, "900", res.ID)
	assert.False(t, res.IsUpdated)
}

func TestBillUpdatePrunesExistingLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	ns := NewMockNetSuite(ctrl)

	set := refdata.NewSet().
		Put(refdata.TableBills, []*netsuite.ReferenceRow{
			{InternalID: "300", ExternalID: "B1"},
		}).
		PutLines(map[string]*netsuite.TransactionLines{
			"300": {
				Expenses: []netsuite.ExistingLine{{Memo: "already synced"}},
			},
		})

	ns.EXPECT().UpdateRecord(gomock.Any(), "vendorBill", "300", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, id string, payload unified.Payload) (string, error) {
			expenses := payload["expense"].(unified.Payload)["items"].([]unified.Payload)

			assert.Len(t, expenses, 1)
			assert.Equal(t, "fresh line", expenses[0]["memo"])

			return id, nil
		})

	res, err := sink.NewBill(ns).Upsert(context.TODO(), unified.Record{
		"externalId": "B1",
		"expenses": []interface{}{
			map[string]interface{}{"description": "already synced", "totalPrice": 10.0},
			map[string]interface{}{"description": "fresh line", "totalPrice": 20.0},
		},
	}, set)

	assert.NoError(t, err)
	assert.True(t, res.IsUpdated)
}

func TestBillCreatesOnlyMissingChildPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	ns := NewMockNetSuite(ctrl)

	set := refdata.NewSet().
		Put(refdata.TableBills, []*netsuite.ReferenceRow{
			{InternalID: "300", ExternalID: "B1", EntityRef: "42"},
		}).
		Put(refdata.TableVendors, []*netsuite.ReferenceRow{
			{InternalID: "42", Name: "Acme"},
		}).
		PutPayments(map[string][]*netsuite.ExistingPayment{
			"300": {
				{Amount: decimal.NewFromFloat(-50), TranDate: "3/1/2024"},
			},
		})

	ns.EXPECT().UpdateRecord(gomock.Any(), "vendorBill", "300", gomock.Any()).
		Return("300", nil)

	ns.EXPECT().CreateRecord(gomock.Any(), "vendorPayment", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload unified.Payload) (string, error) {
			apply := payload["apply"].(unified.Payload)["items"].([]unified.Payload)

			assert.Equal(t, unified.Payload{"id": "300"}, apply[0]["doc"])
			assert.Equal(t, 70.0, apply[0]["amount"])
			assert.Equal(t, unified.Payload{"id": "42"}, payload["entity"])

			return "901", nil
		})

	_, err := sink.NewBill(ns).Upsert(context.TODO(), unified.Record{
		"externalId": "B1",
		"vendorName": "Acme",
		"relatedPayments": []interface{}{
			map[string]interface{}{"amount": 50.0, "paymentDate": "2024-03-01T10:00:00"},
			map[string]interface{}{"amount": 70.0, "paymentDate": "2024-03-02"},
		},
	}, set)

	assert.NoError(t, err)
}

func TestJournalEntryNeverUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	ns := NewMockNetSuite(ctrl)

	set := refdata.NewSet().
		Put(refdata.TableJournalEntries, []*netsuite.ReferenceRow{
			{InternalID: "500", ExternalID: "JE-1"},
		})

	_, err := sink.NewJournalEntry(ns).Upsert(context.TODO(), unified.Record{
		"externalId": "JE-1",
	}, set)

	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestCustomerUpdateKeepsRemoteAddresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	ns := NewMockNetSuite(ctrl)

	set := refdata.NewSet().
		Put(refdata.TableCustomers, []*netsuite.ReferenceRow{
			{InternalID: "15", ExternalID: "C1"},
		}).
		PutAddresses(map[string]netsuite.DefaultAddresses{
			"15": {Shipping: "1 Main St, Springfield"},
		})

	ns.EXPECT().UpdateRecord(gomock.Any(), "customer", "15", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, id string, payload unified.Payload) (string, error) {
			assert.NotContains(t, payload, "defaultShippingAddress")
			assert.Contains(t, payload, "defaultBillingAddress")

			return id, nil
		})

	_, err := sink.NewCustomer(ns).Upsert(context.TODO(), unified.Record{
		"externalId": "C1",
		"addresses": []interface{}{
			map[string]interface{}{"addressType": "shipping", "line1": "2 Oak Ave", "city": "Shelbyville"},
			map[string]interface{}{"addressType": "billing", "line1": "3 Elm Rd", "city": "Shelbyville"},
		},
	}, set)

	assert.NoError(t, err)
}

func TestBillBatchReferenceData(t *testing.T) {
	ctrl := gomock.NewController(t)
	ns := NewMockNetSuite(ctrl)

	records := []unified.Record{
		{
			"externalId": "B1",
			"vendorName": "Acme",
			"currency":   "USD",
			"lineItems": []interface{}{
				map[string]interface{}{"itemName": "Widget"},
			},
		},
	}

	ns.EXPECT().GetTransactionData(gomock.Any(), "VendBill", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, f netsuite.Filter) ([]*netsuite.ReferenceRow, error) {
			assert.Equal(t, []string{"B1"}, f.ExternalIDs)

			return []*netsuite.ReferenceRow{{InternalID: "300", ExternalID: "B1"}}, nil
		})

	ns.EXPECT().GetTransactionLines(gomock.Any(), []string{"300"}).
		Return(map[string]*netsuite.TransactionLines{}, nil)

	ns.EXPECT().GetRelatedPayments(gomock.Any(), "VendPymt", []string{"300"}).
		Return(map[string][]*netsuite.ExistingPayment{}, nil)

	ns.EXPECT().GetReferenceData(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, refType string, f netsuite.Filter) ([]*netsuite.ReferenceRow, error) {
			switch refType {
			case "vendor":
				assert.Equal(t, []string{"Acme"}, f.Names)

				return []*netsuite.ReferenceRow{{InternalID: "42", Name: "Acme"}}, nil
			case "item":
				assert.Equal(t, []string{"Widget"}, f.Names)

				return []*netsuite.ReferenceRow{{InternalID: "7", Name: "Widget"}}, nil
			default:
				return nil, nil
			}
		}).AnyTimes()

	set, err := sink.NewBill(ns).BatchReferenceData(context.TODO(), records)

	assert.NoError(t, err)
	assert.Len(t, set.Table(refdata.TableBills), 1)
	assert.Len(t, set.Table(refdata.TableVendors), 1)
	assert.Len(t, set.Table(refdata.TableItems), 1)
	assert.Empty(t, set.Table(refdata.TableLocations))
}

func TestAccountBatchReferenceDataNumericSubsidiaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	ns := NewMockNetSuite(ctrl)

	records := []unified.Record{
		{
			"externalId": "A1",
			"subsidiary": []interface{}{float64(1), float64(2)},
		},
	}

	ns.EXPECT().GetReferenceData(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, refType string, f netsuite.Filter) ([]*netsuite.ReferenceRow, error) {
			if refType == "subsidiary" {
				assert.Equal(t, []string{"1", "2"}, f.IDs)

				return []*netsuite.ReferenceRow{
					{InternalID: "1", Name: "Sub One"},
					{InternalID: "2", Name: "Sub Two"},
				}, nil
			}

			return nil, nil
		}).AnyTimes()

	set, err := sink.NewAccount(ns).BatchReferenceData(context.TODO(), records)

	assert.NoError(t, err)
	assert.Len(t, set.Table(refdata.TableSubsidiaries), 2)
}
