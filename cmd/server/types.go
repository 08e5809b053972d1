package main

import (
	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/processor"
)

type BatchResponse struct {
	Summary processor.BatchSummary `json:"summary"`
	Entries []database.StateEntry  `json:"entries"`
}

type StateResponse struct {
	Entries []*database.StateEntry `json:"entries"`
}

var entityTypes = map[string]database.EntityType{
	"accounts":         database.EntityTypeAccounts,
	"customers":        database.EntityTypeCustomers,
	"vendors":          database.EntityTypeVendors,
	"items":            database.EntityTypeItems,
	"invoices":         database.EntityTypeInvoices,
	"bills":            database.EntityTypeBills,
	"journal-entries":  database.EntityTypeJournalEntries,
	"purchase-orders":  database.EntityTypePurchaseOrders,
	"vendor-credits":   database.EntityTypeVendorCredits,
	"bill-payments":    database.EntityTypeBillPayments,
	"invoice-payments": database.EntityTypeInvoicePayments,
}
