package mapper

import (
	"github.com/google/uuid"

	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// taxCollector accumulates the flat tax-details side list while lines
// are being mapped. Each taxed line gets a synthetic reference token;
// the matching side entry carries the same token so the remote system
// can join them back together.
type taxCollector struct {
	items    []unified.Payload
	newToken func() string
}

func newTaxCollector() *taxCollector {
	return &taxCollector{
		newToken: func() string {
			return uuid.NewString()
		},
	}
}

// Collect inspects one line for a tax code and, when present, stamps
// the line payload with a reference token and records the side entry.
func (t *taxCollector) Collect(
	line unified.Record,
	linePayload unified.Payload,
	set *refdata.Set,
) error {
	row, err := set.Resolve(line, refdata.Lookup{
		Table:     refdata.TableTaxCodes,
		IDField:   "taxCodeId",
		NameField: "taxCode",
	})
	if err != nil {
		return err
	}

	if row == nil {
		return nil
	}

	token := t.newToken()
	linePayload["taxDetailsReference"] = token

	detail := unified.Payload{
		"taxDetailsReference": refPayload(token),
		"taxType":             refPayload(row.InternalID),
	}

	copyFields(detail, line, map[string]string{
		"taxAmount": "taxAmount",
		"taxRate":   "taxRate",
	})

	t.items = append(t.items, detail)

	return nil
}

// Apply merges the collected side list into the parent payload. The
// override flag tells the remote system to take these entries instead
// of recomputing tax itself.
func (t *taxCollector) Apply(payload unified.Payload) {
	if len(t.items) == 0 {
		return
	}

	payload["taxDetails"] = unified.Payload{"items": t.items}
	payload["taxDetailsOverride"] = true
}
