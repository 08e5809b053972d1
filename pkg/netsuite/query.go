package netsuite

import (
	"fmt"
	"strings"
)

// tableSpec describes how one remote record type maps onto SuiteQL
// columns. Name/entity/item columns differ per type, the resolver only
// ever sees the normalized ReferenceRow fields.
type tableSpec struct {
	table      string
	name       string
	entity     string
	itemID     string
	symbol     string
	subsidiary string
}

var tableSpecs = map[string]tableSpec{
	"vendor":         {table: "vendor", name: "companyname", entity: "entityid", subsidiary: "subsidiary"},
	"customer":       {table: "customer", name: "companyname", entity: "entityid", subsidiary: "subsidiary"},
	"employee":       {table: "employee", name: "entityid", subsidiary: "subsidiary"},
	"item":           {table: "item", name: "displayname", itemID: "itemid"},
	"account":        {table: "account", name: "acctname", entity: "acctnumber"},
	"subsidiary":     {table: "subsidiary", name: "name"},
	"location":       {table: "location", name: "name", subsidiary: "subsidiary"},
	"classification": {table: "classification", name: "name", subsidiary: "subsidiary"},
	"department":     {table: "department", name: "name", subsidiary: "subsidiary"},
	"currency":       {table: "currency", name: "name", symbol: "symbol"},
	"taxcode":        {table: "salestaxitem", name: "itemid"},
}

func buildReferenceQuery(spec tableSpec, f Filter) string {
	cols := []string{"id", "externalid"}

	if spec.name != "" {
		cols = append(cols, spec.name)
	}
	if spec.entity != "" {
		cols = append(cols, spec.entity)
	}
	if spec.itemID != "" {
		cols = append(cols, spec.itemID)
	}
	if spec.symbol != "" {
		cols = append(cols, spec.symbol)
	}
	if spec.subsidiary != "" {
		cols = append(cols, spec.subsidiary)
	}

	var conditions []string

	if clause := inClause("id", f.IDs); clause != "" {
		conditions = append(conditions, clause)
	}
	if clause := inClause("externalid", f.ExternalIDs); clause != "" {
		conditions = append(conditions, clause)
	}
	if spec.name != "" {
		if clause := inClause(spec.name, f.Names); clause != "" {
			conditions = append(conditions, clause)
		}
	}
	if spec.entity != "" {
		if clause := inClause(spec.entity, f.EntityIDs); clause != "" {
			conditions = append(conditions, clause)
		}
	}
	// Currency identities arrive as either the symbol or the full name,
	// so the name filter runs against both columns.
	if spec.symbol != "" {
		if clause := inClause(spec.symbol, f.Names); clause != "" {
			conditions = append(conditions, clause)
		}
	}
	if spec.itemID != "" {
		if clause := inClause(spec.itemID, f.ItemIDs); clause != "" {
			conditions = append(conditions, clause)
		}
	}

	return fmt.Sprintf("SELECT %s FROM %s WHERE %s",
		strings.Join(cols, ", "), spec.table, strings.Join(conditions, " OR "))
}

func buildTransactionQuery(txType string, f Filter) string {
	var conditions []string

	if clause := inClause("id", f.IDs); clause != "" {
		conditions = append(conditions, clause)
	}
	if clause := inClause("externalid", f.ExternalIDs); clause != "" {
		conditions = append(conditions, clause)
	}
	if clause := inClause("tranid", f.TranIDs); clause != "" {
		conditions = append(conditions, clause)
	}

	return fmt.Sprintf(
		"SELECT id, externalid, tranid, entity, subsidiary FROM transaction WHERE type = %s AND (%s)",
		quote(txType), strings.Join(conditions, " OR "))
}

func buildTransactionLinesQuery(parentIDs []string) string {
	return fmt.Sprintf(
		"SELECT transaction, memo, item FROM transactionline WHERE mainline = 'F' AND %s",
		inClause("transaction", parentIDs))
}

func buildRelatedPaymentsQuery(paymentType string, parentIDs []string) string {
	return fmt.Sprintf(
		"SELECT ntl.previousdoc AS parent, t.trandate, tl.foreignamount AS amount "+
			"FROM nexttransactionlink ntl "+
			"JOIN transaction t ON t.id = ntl.nextdoc "+
			"JOIN transactionline tl ON tl.transaction = t.id AND tl.mainline = 'T' "+
			"WHERE t.type = %s AND %s",
		quote(paymentType), inClause("ntl.previousdoc", parentIDs))
}

func buildDefaultAddressesQuery(recordType string, ids []string) string {
	return fmt.Sprintf(
		"SELECT entity, defaultshipping, defaultbilling, addressbookaddress_text "+
			"FROM %sAddressbook WHERE %s",
		recordType, inClause("entity", ids))
}

func inClause(column string, values []string) string {
	if len(values) == 0 {
		return ""
	}

	quoted := make([]string, 0, len(values))
	for _, val := range values {
		quoted = append(quoted, quote(val))
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(quoted, ", "))
}

func quote(val string) string {
	return "'" + strings.ReplaceAll(val, "'", "''") + "'"
}
