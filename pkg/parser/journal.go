package parser

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// JournalSheet parses a journal entry spreadsheet into unified journal
// entry records. Rows sharing a journal number become the lines of one
// entry.
type JournalSheet struct {
}

func NewJournalSheet() *JournalSheet {
	return &JournalSheet{}
}

var dateLayouts = []string{
	"2006-01-02",
	"01-02-06",
	"1/2/2006",
	"02.01.2006",
}

func (p *JournalSheet) Parse(
	_ context.Context,
	data []byte,
) ([]unified.Record, error) {
	fileData, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(fileData.Sheets) == 0 {
		return nil, errors.New("no sheets found")
	}

	sheet := fileData.Sheets[0]
	if len(sheet.Rows) < 2 {
		return nil, errors.New("sheet has no data rows")
	}

	columns := map[string]int{}
	for i, cell := range sheet.Rows[0].Cells {
		header := strings.ToLower(strings.TrimSpace(cell.String()))
		if header != "" {
			columns[header] = i
		}
	}

	for _, required := range []string{"journal number", "account number"} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Newf("missing required column %q", required)
		}
	}

	var ordered []string
	entries := map[string]unified.Record{}

	for rowIdx, row := range sheet.Rows[1:] {
		number := cellValue(row, columns, "journal number")
		if number == "" {
			continue
		}

		entry, ok := entries[number]
		if !ok {
			entry = unified.Record{
				"externalId":         number,
				"journalEntryNumber": number,
			}

			setIfPresent(entry, row, columns, "description", "description")
			setIfPresent(entry, row, columns, "currency", "currency")
			setIfPresent(entry, row, columns, "subsidiary", "subsidiaryName")

			if raw := cellValue(row, columns, "transaction date"); raw != "" {
				date, dateErr := parseDate(raw)
				if dateErr != nil {
					return nil, errors.Wrapf(dateErr, "row %d", rowIdx+2)
				}

				entry["transactionDate"] = date
			}

			entries[number] = entry
			ordered = append(ordered, number)
		}

		line, err := p.parseLine(row, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", rowIdx+2)
		}

		lines, _ := entry["lineItems"].([]interface{})
		entry["lineItems"] = append(lines, line)
	}

	records := make([]unified.Record, 0, len(ordered))
	for _, number := range ordered {
		records = append(records, entries[number])
	}

	return records, nil
}

func (p *JournalSheet) parseLine(
	row *xlsx.Row,
	columns map[string]int,
) (map[string]interface{}, error) {
	line := map[string]interface{}{
		"accountNumber": cellValue(row, columns, "account number"),
	}

	for header, field := range map[string]string{
		"line description": "description",
		"customer":         "customerName",
		"vendor":           "vendorName",
		"class":            "className",
		"department":       "departmentName",
		"location":         "locationName",
	} {
		if val := cellValue(row, columns, header); val != "" {
			line[field] = val
		}
	}

	debit, err := cellAmount(row, columns, "debit")
	if err != nil {
		return nil, err
	}

	credit, err := cellAmount(row, columns, "credit")
	if err != nil {
		return nil, err
	}

	switch {
	case !debit.IsZero() && !credit.IsZero():
		return nil, errors.New("line carries both a debit and a credit amount")
	case !debit.IsZero():
		line["entryType"] = "Debit"
		line["debitAmount"] = debit.InexactFloat64()
	case !credit.IsZero():
		line["entryType"] = "Credit"
		line["creditAmount"] = credit.InexactFloat64()
	default:
		return nil, errors.New("line carries neither a debit nor a credit amount")
	}

	return line, nil
}

func setIfPresent(
	entry unified.Record,
	row *xlsx.Row,
	columns map[string]int,
	header string,
	field string,
) {
	if val := cellValue(row, columns, header); val != "" {
		entry[field] = val
	}
}

func cellValue(row *xlsx.Row, columns map[string]int, header string) string {
	idx, ok := columns[header]
	if !ok || idx >= len(row.Cells) {
		return ""
	}

	return strings.TrimSpace(row.Cells[idx].String())
}

func cellAmount(row *xlsx.Row, columns map[string]int, header string) (decimal.Decimal, error) {
	raw := cellValue(row, columns, header)
	if raw == "" {
		return decimal.Zero, nil
	}

	raw = strings.ReplaceAll(raw, " ", "")

	val, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "bad %s amount %q", header, raw)
	}

	return val, nil
}

func parseDate(raw string) (string, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("2006-01-02"), nil
		}
	}

	return "", errors.Newf("unsupported date format %q", raw)
}
