package refdata

import (
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
)

// Table names used as Set keys. Sinks populate only the tables their
// record type can reference.
const (
	TableAccounts        = "Accounts"
	TableSubsidiaries    = "Subsidiaries"
	TableLocations       = "Locations"
	TableClassifications = "Classifications"
	TableDepartments     = "Departments"
	TableCustomers       = "Customers"
	TableVendors         = "Vendors"
	TableItems           = "Items"
	TableCurrencies      = "Currencies"
	TableEmployees       = "Employees"
	TableTaxCodes        = "TaxCodes"

	TableInvoices        = "Invoices"
	TableBills           = "Bills"
	TableJournalEntries  = "JournalEntries"
	TablePurchaseOrders  = "PurchaseOrders"
	TableVendorCredits   = "VendorCredits"
	TableInvoicePayments = "InvoicePayments"
	TableBillPayments    = "BillPayments"
)

// Set is the per-batch reference data snapshot. Built once before any
// record is mapped, read-only afterwards, discarded with the batch.
type Set struct {
	tables    map[string][]*netsuite.ReferenceRow
	lines     map[string]*netsuite.TransactionLines
	payments  map[string][]*netsuite.ExistingPayment
	addresses map[string]netsuite.DefaultAddresses
}

func NewSet() *Set {
	return &Set{
		tables:    map[string][]*netsuite.ReferenceRow{},
		lines:     map[string]*netsuite.TransactionLines{},
		payments:  map[string][]*netsuite.ExistingPayment{},
		addresses: map[string]netsuite.DefaultAddresses{},
	}
}

func (s *Set) Put(table string, rows []*netsuite.ReferenceRow) *Set {
	s.tables[table] = rows

	return s
}

func (s *Set) Table(table string) []*netsuite.ReferenceRow {
	return s.tables[table]
}

func (s *Set) PutLines(lines map[string]*netsuite.TransactionLines) *Set {
	s.lines = lines

	return s
}

// Lines returns the existing remote lines for one parent transaction.
func (s *Set) Lines(parentID string) *netsuite.TransactionLines {
	return s.lines[parentID]
}

func (s *Set) PutPayments(payments map[string][]*netsuite.ExistingPayment) *Set {
	s.payments = payments

	return s
}

func (s *Set) Payments(parentID string) []*netsuite.ExistingPayment {
	return s.payments[parentID]
}

func (s *Set) PutAddresses(addresses map[string]netsuite.DefaultAddresses) *Set {
	s.addresses = addresses

	return s
}

func (s *Set) Addresses(parentID string) netsuite.DefaultAddresses {
	return s.addresses[parentID]
}
