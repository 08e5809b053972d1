package refdata

import (
	"github.com/cockroachdb/errors"

	"github.com/skynet2/netsuite-unified-target/pkg/common"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// Lookup names the identity fields a record may carry for one
// foreign-key-shaped field. Only IDField and NameField are common to
// every call site; the rest depend on the record type.
type Lookup struct {
	Table string

	IDField         string
	NameField       string
	ExternalIDField string
	// NumberField is the business entity number (vendor number,
	// customer number, item code).
	NumberField string

	// ScopeValue restricts name matches to rows belonging to one
	// subsidiary, so identically-named rows across subsidiaries cannot
	// collide. Rows without scoping data are never excluded by it.
	ScopeValue string
}

// Resolve returns the single reference row matching the record, or nil
// when the record carries none of the lookup's identity fields at all.
// Strategies run in a fixed precedence order and stop at the first
// match: internal id, business number, external id, scoped name.
func (s *Set) Resolve(rec unified.Record, l Lookup) (*netsuite.ReferenceRow, error) {
	rows := s.Table(l.Table)

	var attempts []common.LookupAttempt

	if l.IDField != "" {
		if val := rec.String(l.IDField); val != "" {
			for _, row := range rows {
				if row.InternalID == val {
					return row, nil
				}
			}

			attempts = append(attempts, common.LookupAttempt{Field: l.IDField, Value: val})
		}
	}

	if l.NumberField != "" {
		if val := rec.String(l.NumberField); val != "" {
			for _, row := range rows {
				if numberMatches(row, val) {
					return row, nil
				}
			}

			attempts = append(attempts, common.LookupAttempt{Field: l.NumberField, Value: val})
		}
	}

	if l.ExternalIDField != "" {
		if val := rec.String(l.ExternalIDField); val != "" {
			for _, row := range rows {
				if row.ExternalID != "" && row.ExternalID == val {
					return row, nil
				}
			}

			attempts = append(attempts, common.LookupAttempt{Field: l.ExternalIDField, Value: val})
		}
	}

	if l.NameField != "" {
		if val := rec.String(l.NameField); val != "" {
			matched, err := matchByName(rows, l, val)
			if err != nil {
				return nil, err
			}

			if matched != nil {
				return matched, nil
			}

			attempts = append(attempts, common.LookupAttempt{Field: l.NameField, Value: val})
		}
	}

	if len(attempts) == 0 {
		// No identity field was supplied: absence of intent, not a
		// failure.
		return nil, nil
	}

	return nil, common.NewReferenceNotFound(l.Table, attempts)
}

func matchByName(
	rows []*netsuite.ReferenceRow,
	l Lookup,
	val string,
) (*netsuite.ReferenceRow, error) {
	var matches []*netsuite.ReferenceRow

	for _, row := range rows {
		if row.Name != val {
			continue
		}

		if l.ScopeValue != "" && row.SubsidiaryID != "" && row.SubsidiaryID != l.ScopeValue {
			continue
		}

		matches = append(matches, row)
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, errors.WithStack(&common.AmbiguousReferenceError{
			Table:   l.Table,
			Field:   l.NameField,
			Value:   val,
			Matches: len(matches),
		})
	}
}

func numberMatches(row *netsuite.ReferenceRow, val string) bool {
	if row.EntityID != "" && row.EntityID == val {
		return true
	}

	return row.ItemID != "" && row.ItemID == val
}

// ManyLookup describes a field referencing a set of rows: a list of
// direct internal ids plus a list of {id|name} reference objects.
type ManyLookup struct {
	Table     string
	IDsField  string
	RefsField string
}

// ResolveMany unions every requested reference. A single unmatched
// entry fails the whole call so partial matches are never silently
// dropped.
func (s *Set) ResolveMany(rec unified.Record, l ManyLookup) ([]*netsuite.ReferenceRow, error) {
	rows := s.Table(l.Table)

	seen := map[string]struct{}{}
	var matched []*netsuite.ReferenceRow

	add := func(row *netsuite.ReferenceRow) {
		if _, ok := seen[row.InternalID]; ok {
			return
		}

		seen[row.InternalID] = struct{}{}
		matched = append(matched, row)
	}

	for _, id := range stringList(rec, l.IDsField) {
		row := findByInternalID(rows, id)
		if row == nil {
			return nil, common.NewReferenceNotFound(l.Table, []common.LookupAttempt{
				{Field: l.IDsField, Value: id},
			})
		}

		add(row)
	}

	for _, ref := range rec.List(l.RefsField) {
		row, err := resolveRefObject(rows, l.Table, ref)
		if err != nil {
			return nil, err
		}

		add(row)
	}

	return matched, nil
}

func resolveRefObject(
	rows []*netsuite.ReferenceRow,
	table string,
	ref unified.Record,
) (*netsuite.ReferenceRow, error) {
	var attempts []common.LookupAttempt

	if id := ref.String("id"); id != "" {
		if row := findByInternalID(rows, id); row != nil {
			return row, nil
		}

		attempts = append(attempts, common.LookupAttempt{Field: "id", Value: id})
	}

	if name := ref.String("name"); name != "" {
		for _, row := range rows {
			if row.Name == name {
				return row, nil
			}
		}

		attempts = append(attempts, common.LookupAttempt{Field: "name", Value: name})
	}

	return nil, common.NewReferenceNotFound(table, attempts)
}

// ResolveExisting finds the remote counterpart of the record itself:
// record id against internal then external id, falling back to the
// record's own external id. Nil means the record was never
// synchronized, so the caller creates instead of updating.
func (s *Set) ResolveExisting(rec unified.Record, table string) *netsuite.ReferenceRow {
	rows := s.Table(table)

	if id := rec.String("id"); id != "" {
		if row := findByInternalID(rows, id); row != nil {
			return row
		}

		for _, row := range rows {
			if row.ExternalID != "" && row.ExternalID == id {
				return row
			}
		}

		return nil
	}

	if externalID := rec.String("externalId"); externalID != "" {
		for _, row := range rows {
			if row.ExternalID != "" && row.ExternalID == externalID {
				return row
			}
		}
	}

	return nil
}

// ResolveCurrency matches by symbol first, then display name.
func (s *Set) ResolveCurrency(symbol string) *netsuite.ReferenceRow {
	if symbol == "" {
		return nil
	}

	for _, row := range s.Table(TableCurrencies) {
		if row.Symbol == symbol {
			return row
		}
	}

	for _, row := range s.Table(TableCurrencies) {
		if row.Name == symbol {
			return row
		}
	}

	return nil
}

func findByInternalID(rows []*netsuite.ReferenceRow, id string) *netsuite.ReferenceRow {
	for _, row := range rows {
		if row.InternalID == id {
			return row
		}
	}

	return nil
}

func stringList(rec unified.Record, key string) []string {
	val, ok := rec[key]
	if !ok {
		return nil
	}

	switch typed := val.(type) {
	case []string:
		return typed
	case []interface{}:
		var out []string
		for _, item := range typed {
			if str := unified.StringValue(item); str != "" {
				out = append(out, str)
			}
		}

		return out
	default:
		return nil
	}
}
