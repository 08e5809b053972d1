package netsuite

import "github.com/shopspring/decimal"

type Config struct {
	Account        string
	ConsumerKey    string
	ConsumerSecret string
	TokenKey       string
	TokenSecret    string
}

// ReferenceRow is one row of bulk-fetched reference data. Only
// InternalID is guaranteed; the remaining identity fields depend on
// the record type the row was fetched for.
type ReferenceRow struct {
	InternalID string `json:"internalId"`
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`

	// EntityID is the business entity number (vendor/customer number).
	EntityID string `json:"entityId"`
	// ItemID is the item code, a secondary identity for items.
	ItemID string `json:"itemId"`
	// Symbol is set for currency rows only.
	Symbol string `json:"symbol"`
	// TranID is the transaction number for transaction rows.
	TranID string `json:"tranId"`
	// SubsidiaryID scopes the row to an organizational unit; empty for
	// unscoped record types.
	SubsidiaryID string `json:"subsidiaryId"`
	// EntityRef is the entity already attached to a transaction row,
	// used when a payment inherits its customer/vendor from the parent.
	EntityRef string `json:"entityRef"`
}

// Filter narrows a bulk reference lookup. All lists empty means the
// caller referenced nothing, and the client returns nothing instead of
// scanning the whole remote table.
type Filter struct {
	IDs         []string
	ExternalIDs []string
	Names       []string
	EntityIDs   []string
	ItemIDs     []string
	TranIDs     []string
}

func (f Filter) IsEmpty() bool {
	return len(f.IDs) == 0 && len(f.ExternalIDs) == 0 && len(f.Names) == 0 &&
		len(f.EntityIDs) == 0 && len(f.ItemIDs) == 0 && len(f.TranIDs) == 0
}

// ExistingLine is a line already present on a remote transaction,
// matched by memo text during update post-processing.
type ExistingLine struct {
	Memo string `json:"memo"`
}

type TransactionLines struct {
	LineItems []ExistingLine `json:"lineItems"`
	Expenses  []ExistingLine `json:"expenses"`
}

// ExistingPayment is a payment already applied to a remote
// transaction. TranDate keeps the remote m/d/Y formatting; comparison
// happens at calendar-day granularity.
type ExistingPayment struct {
	Amount   decimal.Decimal `json:"amount"`
	TranDate string          `json:"tranDate"`
}

type DefaultAddresses struct {
	Shipping string `json:"shipping"`
	Billing  string `json:"billing"`
}

type suiteQLResponse struct {
	Items []map[string]interface{} `json:"items"`
}

type errorResponse struct {
	ErrorDetails []errorDetail `json:"o:errorDetails"`
}

type errorDetail struct {
	Detail string `json:"detail"`
}
