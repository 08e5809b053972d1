package sink

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/mapper"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/refdata"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// Result is the remote outcome of one upserted record.
type Result struct {
	ID        string
	IsUpdated bool
}

// Sink handles one unified record stream end to end: it declares what
// reference data the batch needs, then upserts records one at a time
// against that snapshot.
type Sink interface {
	EntityType() database.EntityType
	BatchReferenceData(ctx context.Context, records []unified.Record) (*refdata.Set, error)
	Upsert(ctx context.Context, rec unified.Record, set *refdata.Set) (*Result, error)
}

type base struct {
	ns NetSuite

	// recordType is the remote record API endpoint segment.
	recordType string
}

func (b *base) upsert(ctx context.Context, mapped *mapper.Mapped) (*Result, error) {
	if mapped.InternalID != "" {
		id, err := b.ns.UpdateRecord(ctx, b.recordType, mapped.InternalID, mapped.Payload)
		if err != nil {
			return nil, err
		}

		return &Result{ID: id, IsUpdated: true}, nil
	}

	id, err := b.ns.CreateRecord(ctx, b.recordType, mapped.Payload)
	if err != nil {
		return nil, err
	}

	return &Result{ID: id}, nil
}

func (b *base) fetchRef(
	ctx context.Context,
	set *refdata.Set,
	table string,
	refType string,
	f netsuite.Filter,
) error {
	rows, err := b.ns.GetReferenceData(ctx, refType, f)
	if err != nil {
		return err
	}

	if len(rows) > 0 {
		set.Put(table, rows)
	}

	return nil
}

// fetchCommonRefs pulls the dimension tables every transaction record
// type can reference, filtered to the identities the batch actually
// carries at both the record and the line level.
func (b *base) fetchCommonRefs(
	ctx context.Context,
	set *refdata.Set,
	records []unified.Record,
	lineKeys []string,
) error {
	for _, dim := range []struct {
		table   string
		refType string
		base    string
	}{
		{refdata.TableLocations, "location", "location"},
		{refdata.TableClassifications, "classification", "class"},
		{refdata.TableDepartments, "department", "department"},
	} {
		err := b.fetchRef(ctx, set, dim.table, dim.refType, netsuite.Filter{
			IDs: merge(
				unified.Strings(records, dim.base+"Id"),
				lineValues(records, dim.base+"Id", lineKeys)),
			Names: merge(
				unified.Strings(records, dim.base+"Name"),
				lineValues(records, dim.base+"Name", lineKeys)),
			ExternalIDs: merge(
				unified.Strings(records, dim.base+"ExternalId"),
				lineValues(records, dim.base+"ExternalId", lineKeys)),
		})
		if err != nil {
			return err
		}
	}

	if err := b.fetchRef(ctx, set, refdata.TableSubsidiaries, "subsidiary", netsuite.Filter{
		IDs: merge(
			unified.Strings(records, "subsidiaryId"),
			lineValues(records, "subsidiaryId", lineKeys)),
		Names: merge(
			unified.Strings(records, "subsidiaryName"),
			lineValues(records, "subsidiaryName", lineKeys)),
	}); err != nil {
		return err
	}

	if err := b.fetchRef(ctx, set, refdata.TableCurrencies, "currency", netsuite.Filter{
		Names: unified.Strings(records, "currency"),
	}); err != nil {
		return err
	}

	return b.fetchRef(ctx, set, refdata.TableTaxCodes, "taxcode", netsuite.Filter{
		IDs:   lineValues(records, "taxCodeId", lineKeys),
		Names: lineValues(records, "taxCode", lineKeys),
	})
}

// transactionBase extends base for sinks whose records live in the
// remote transaction table and may carry existing lines and payments.
type transactionBase struct {
	base

	table  string
	txType string

	// paymentType is the transaction type code of child payments, empty
	// for record types that cannot have payments applied.
	paymentType string
}

// fetchExisting pulls the already-synchronized transactions the batch
// may update, together with their remote lines and applied payments.
func (b *transactionBase) fetchExisting(
	ctx context.Context,
	set *refdata.Set,
	records []unified.Record,
) error {
	rows, err := b.ns.GetTransactionData(ctx, b.txType, netsuite.Filter{
		IDs:         unified.Strings(records, "id"),
		ExternalIDs: unified.Strings(records, "externalId"),
	})
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return nil
	}

	set.Put(b.table, rows)

	ids := lo.Map(rows, func(row *netsuite.ReferenceRow, _ int) string {
		return row.InternalID
	})

	lines, err := b.ns.GetTransactionLines(ctx, ids)
	if err != nil {
		return err
	}

	set.PutLines(lines)

	if b.paymentType == "" {
		return nil
	}

	payments, err := b.ns.GetRelatedPayments(ctx, b.paymentType, ids)
	if err != nil {
		return err
	}

	set.PutPayments(payments)

	return nil
}

// upsertTransaction runs the shared transaction flow: prune lines the
// remote record already has, upsert, then create the child payments
// that are not applied remotely yet.
func (b *transactionBase) upsertTransaction(
	ctx context.Context,
	mapped *mapper.Mapped,
	set *refdata.Set,
	entityField string,
	paymentRecordType string,
) (*Result, error) {
	if mapped.InternalID != "" {
		pruneExistingLines(mapped.Payload, set.Lines(mapped.InternalID))
	}

	res, err := b.upsert(ctx, mapped)
	if err != nil {
		return nil, err
	}

	if err = b.createMissingPayments(ctx, mapped, set, res.ID,
		entityField, paymentRecordType); err != nil {
		return nil, err
	}

	return res, nil
}

func (b *transactionBase) createMissingPayments(
	ctx context.Context,
	mapped *mapper.Mapped,
	set *refdata.Set,
	parentID string,
	entityField string,
	paymentRecordType string,
) error {
	if len(mapped.RelatedPayments) == 0 || paymentRecordType == "" {
		return nil
	}

	existing := set.Payments(mapped.InternalID)

	for _, payment := range mapped.RelatedPayments {
		if paymentExists(payment, existing) {
			continue
		}

		payload, err := mapper.MapChildPayment(payment, mapped.Entity,
			entityField, parentID, set)
		if err != nil {
			return err
		}

		if _, err = b.ns.CreateRecord(ctx, paymentRecordType, payload); err != nil {
			return err
		}
	}

	return nil
}

// paymentExists reports whether an equivalent payment is already
// applied remotely. Amounts compare sign-normalized because the remote
// side stores applied vendor payments negated; dates compare at
// calendar-day granularity.
func paymentExists(payment unified.Record, existing []*netsuite.ExistingPayment) bool {
	amount, err := payment.Decimal("amount")
	if err != nil {
		return false
	}

	date := payment.String("paymentDate")

	for _, remote := range existing {
		if !remote.Amount.Abs().Equal(amount.Abs()) {
			continue
		}

		if sameCalendarDay(date, remote.TranDate) {
			return true
		}
	}

	return false
}

// sameCalendarDay compares an ISO-formatted local date against the
// remote m/d/Y rendering, ignoring any time component.
func sameCalendarDay(local, remote string) bool {
	if len(local) > 10 {
		local = local[:10]
	}

	localDay, err := time.Parse("2006-01-02", local)
	if err != nil {
		return false
	}

	remoteDay, err := time.Parse("1/2/2006", remote)
	if err != nil {
		return false
	}

	return localDay.Equal(remoteDay)
}

// pruneExistingLines removes mapped lines whose memo text already
// appears on the remote record, so reposting a partially synchronized
// transaction does not duplicate its lines.
func pruneExistingLines(payload unified.Payload, existing *netsuite.TransactionLines) {
	if existing == nil {
		return
	}

	pruneLineList(payload, "item", "description", existing.LineItems)
	pruneLineList(payload, "expense", "memo", existing.Expenses)
}

func pruneLineList(
	payload unified.Payload,
	key string,
	memoKey string,
	existing []netsuite.ExistingLine,
) {
	wrapper, ok := payload[key].(unified.Payload)
	if !ok {
		return
	}

	lines, ok := wrapper["items"].([]unified.Payload)
	if !ok {
		return
	}

	memos := map[string]struct{}{}
	for _, line := range existing {
		if line.Memo != "" {
			memos[line.Memo] = struct{}{}
		}
	}

	if len(memos) == 0 {
		return
	}

	kept := make([]unified.Payload, 0, len(lines))

	for _, line := range lines {
		memo, _ := line[memoKey].(string)
		if _, found := memos[memo]; found {
			continue
		}

		kept = append(kept, line)
	}

	// An empty wrapper list would wipe the remote lines instead of
	// leaving them untouched.
	if len(kept) == 0 {
		delete(payload, key)

		return
	}

	payload[key] = unified.Payload{"items": kept}
}

func merge(lists ...[]string) []string {
	return lo.Uniq(lo.Flatten(lists))
}

// refListFilter collects identities from a multi-valued reference
// field: a plain internal-id list plus {id|name} reference objects.
func refListFilter(records []unified.Record, idsKey, refsKey string) netsuite.Filter {
	var ids, names []string

	for _, rec := range records {
		ids = append(ids, stringValues(rec, idsKey)...)

		for _, ref := range rec.List(refsKey) {
			if id := ref.String("id"); id != "" {
				ids = append(ids, id)
			}

			if name := ref.String("name"); name != "" {
				names = append(names, name)
			}
		}
	}

	return netsuite.Filter{IDs: lo.Uniq(ids), Names: lo.Uniq(names)}
}

func stringValues(rec unified.Record, key string) []string {
	switch typed := rec[key].(type) {
	case []string:
		return typed
	case []interface{}:
		var out []string

		for _, item := range typed {
			if val := unified.StringValue(item); val != "" {
				out = append(out, val)
			}
		}

		return out
	default:
		return nil
	}
}

// lineValues collects one field across every record's child lists.
func lineValues(records []unified.Record, key string, lineKeys []string) []string {
	var out [][]string

	for _, lineKey := range lineKeys {
		out = append(out, unified.LineStrings(records, lineKey, key))
	}

	return lo.Flatten(out)
}
