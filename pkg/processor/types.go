package processor

import (
	"github.com/skynet2/netsuite-unified-target/pkg/database"
)

// BatchSummary aggregates the per-record outcomes of one batch run.
type BatchSummary struct {
	Total      int `json:"total"`
	Succeeded  int `json:"succeeded"`
	Failed     int `json:"failed"`
	Duplicates int `json:"duplicates"`
	Updated    int `json:"updated"`
}

func Summarize(entries []database.StateEntry) BatchSummary {
	summary := BatchSummary{Total: len(entries)}

	for _, entry := range entries {
		switch {
		case entry.IsDuplicate:
			summary.Duplicates++
		case entry.Success:
			summary.Succeeded++
		default:
			summary.Failed++
		}

		if entry.IsUpdated {
			summary.Updated++
		}
	}

	return summary
}
