package mapper

import (
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// Mapped is the outcome of one mapping pass: the payload shaped for
// the remote record API plus everything the sink needs to drive the
// upsert (create-vs-update decision, child payments, resolved entity
// for those children).
type Mapped struct {
	Payload unified.Payload

	// InternalID is set when the record already exists remotely and
	// the sink should update instead of create.
	InternalID string

	// RelatedPayments are child payment records reconciled and created
	// separately after the parent upsert.
	RelatedPayments []unified.Record

	// Entity is the resolved entity reference ({"id": ...}) passed
	// down to child payment mapping.
	Entity unified.Payload
}

// Mapper converts one unified record into a remote payload using the
// batch's reference data snapshot. Implementations never mutate the
// record.
type Mapper interface {
	ToPayload(rec unified.Record, set *refdata.Set) (*Mapped, error)
}

// copyFields applies a static source->target rename table, skipping
// any source key absent from the record. Omitted stays omitted: sparse
// update semantics depend on never null-filling here.
func copyFields(payload unified.Payload, rec unified.Record, fields map[string]string) {
	for recordKey, payloadKey := range fields {
		if val, ok := rec[recordKey]; ok {
			payload[payloadKey] = val
		}
	}
}

func refPayload(id string) unified.Payload {
	return unified.Payload{"id": id}
}

// mapRef resolves one foreign-key-shaped field and writes the
// {"id": ...} reference under targetField when the record carries any
// identity for it.
func mapRef(
	payload unified.Payload,
	rec unified.Record,
	set *refdata.Set,
	targetField string,
	l refdata.Lookup,
) error {
	row, err := set.Resolve(rec, l)
	if err != nil {
		return err
	}

	if row != nil {
		payload[targetField] = refPayload(row.InternalID)
	}

	return nil
}

// mapRefList resolves a multi-valued reference into the wrapper-list
// shape {"items": [{"id": ...}, ...]}.
func mapRefList(
	payload unified.Payload,
	rec unified.Record,
	set *refdata.Set,
	targetField string,
	l refdata.ManyLookup,
) error {
	rows, err := set.ResolveMany(rec, l)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return nil
	}

	items := make([]unified.Payload, 0, len(rows))
	for _, row := range rows {
		items = append(items, refPayload(row.InternalID))
	}

	payload[targetField] = unified.Payload{"items": items}

	return nil
}

func mapCurrency(payload unified.Payload, rec unified.Record, set *refdata.Set) {
	if row := set.ResolveCurrency(rec.String("currency")); row != nil {
		payload["currency"] = refPayload(row.InternalID)
	}
}

// mapCustomFields flattens the {name, value} pair list into top-level
// payload keys.
func mapCustomFields(payload unified.Payload, rec unified.Record) {
	for _, field := range rec.List("customFields") {
		name := field.String("name")
		if name == "" {
			continue
		}

		payload[name] = field["value"]
	}
}

// mapIsActive inverts the unified isActive flag to the remote
// isInactive convention, only when the source field is present.
func mapIsActive(payload unified.Payload, rec unified.Record) {
	if active, ok := rec.Bool("isActive"); ok {
		payload["isInactive"] = !active
	}
}

// mapInternalID marks the payload with the remote internal id when the
// record was synchronized before, and hands the matched row back for
// the create-vs-update decision and scope fallbacks.
func mapInternalID(
	payload unified.Payload,
	rec unified.Record,
	set *refdata.Set,
	table string,
) *netsuite.ReferenceRow {
	row := set.ResolveExisting(rec, table)
	if row == nil {
		return nil
	}

	payload["internalId"] = row.InternalID

	return row
}

// subsidiaryScope resolves the subsidiary the record belongs to, used
// to scope every child name lookup. Falls back to the existing remote
// record's subsidiary, then to the scope inherited from the parent.
func subsidiaryScope(
	rec unified.Record,
	set *refdata.Set,
	existing string,
	parentScope string,
) (string, error) {
	if rec.Has("subsidiaryId") || rec.Has("subsidiaryName") {
		row, err := set.Resolve(rec, refdata.Lookup{
			Table:     refdata.TableSubsidiaries,
			IDField:   "subsidiaryId",
			NameField: "subsidiaryName",
		})
		if err != nil {
			return "", err
		}

		if row != nil {
			return row.InternalID, nil
		}
	}

	if existing != "" {
		return existing, nil
	}

	return parentScope, nil
}

func scopedLookup(table, base string, scope string) refdata.Lookup {
	return refdata.Lookup{
		Table:           table,
		IDField:         base + "Id",
		NameField:       base + "Name",
		ExternalIDField: base + "ExternalId",
		ScopeValue:      scope,
	}
}
