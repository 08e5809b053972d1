package printer

import (
	"fmt"
	"strings"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/processor"
)

type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

// BatchReport renders one batch outcome as a short text message,
// counts first, then one line per failed record.
func (p *Printer) BatchReport(
	entityType database.EntityType,
	entries []database.StateEntry,
) string {
	var sb strings.Builder

	sb.WriteString(p.Stat(entityType, processor.Summarize(entries)))
	sb.WriteString("\n\n")
	sb.WriteString(p.Errors(entries))

	return sb.String()
}

func (p *Printer) Stat(
	entityType database.EntityType,
	summary processor.BatchSummary,
) string {
	return fmt.Sprintf(
		"%s: %v total, %v succeeded (%v updated), %v duplicates, %v failed",
		entityType,
		summary.Total,
		summary.Succeeded,
		summary.Updated,
		summary.Duplicates,
		summary.Failed,
	)
}

func (p *Printer) Errors(
	entries []database.StateEntry,
) string {
	var errCount int
	var sb strings.Builder

	for _, entry := range entries {
		if entry.Success {
			continue
		}

		label := entry.ExternalID
		if label == "" {
			label = entry.ID
		}

		sb.WriteString(fmt.Sprintf("%s: %s\n", label, entry.Error))

		errCount += 1
	}

	if errCount == 0 {
		return "No errors."
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
