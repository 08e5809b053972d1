package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/printer"
)

func TestBatchReport(t *testing.T) {
	p := printer.NewPrinter()

	report := p.BatchReport(database.EntityTypeBills, []database.StateEntry{
		{ID: "e1", ExternalID: "B100", Success: true, RemoteID: "900"},
		{ID: "e2", ExternalID: "B101", Success: true, IsDuplicate: true},
		{ID: "e3", ExternalID: "B102", Error: "vendor not found"},
		{ID: "e4", Error: "bad payload"},
	})

	assert.Contains(t, report, "bills: 4 total, 1 succeeded (0 updated), 1 duplicates, 2 failed")
	assert.Contains(t, report, "B102: vendor not found")
	assert.Contains(t, report, "e4: bad payload")
}

func TestBatchReportNoErrors(t *testing.T) {
	p := printer.NewPrinter()

	report := p.BatchReport(database.EntityTypeInvoices, []database.StateEntry{
		{ID: "e1", ExternalID: "I100", Success: true, IsUpdated: true},
	})

	assert.Contains(t, report, "invoices: 1 total, 1 succeeded (1 updated), 0 duplicates, 0 failed")
	assert.Contains(t, report, "No errors.")
}
