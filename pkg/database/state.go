package database

import (
	"time"
)

// EntityType identifies one unified record stream. The value doubles
// as the state partition key.
type EntityType string

const (
	EntityTypeAccounts        = EntityType("accounts")
	EntityTypeCustomers       = EntityType("customers")
	EntityTypeVendors         = EntityType("vendors")
	EntityTypeItems           = EntityType("items")
	EntityTypeInvoices        = EntityType("invoices")
	EntityTypeBills           = EntityType("bills")
	EntityTypeJournalEntries  = EntityType("journal_entries")
	EntityTypePurchaseOrders  = EntityType("purchase_orders")
	EntityTypeVendorCredits   = EntityType("vendor_credits")
	EntityTypeBillPayments    = EntityType("bill_payments")
	EntityTypeInvoicePayments = EntityType("invoice_payments")
)

// StateEntry records the outcome of one record in one batch run.
// Exactly one entry exists per input record, whatever the outcome.
type StateEntry struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	EntityType EntityType `json:"entityType" gorm:"index"`
	// Hash is the content hash of the canonicalized input record, used
	// for cross-run idempotence.
	Hash        string    `json:"hash"`
	ExternalID  string    `json:"externalId"`
	RemoteID    string    `json:"remoteId"`
	Success     bool      `json:"success"`
	IsDuplicate bool      `json:"isDuplicate"`
	IsUpdated   bool      `json:"isUpdated"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DuplicateKey is a persisted content hash of a successfully processed
// record. Its presence short-circuits a later resubmission of the same
// content.
type DuplicateKey struct {
	Key        string     `json:"id" gorm:"primaryKey"`
	EntityType EntityType `json:"entityType" gorm:"primaryKey"`
	CreatedAt  time.Time  `json:"createdAt"`
}
