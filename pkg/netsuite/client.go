package netsuite

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/shopspring/decimal"

	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

type Client struct {
	cl      *req.Client
	signer  *oauthSigner
	baseURL string
}

func NewClient(
	cfg Config,
	baseURL string,
	cl *req.Client,
) *Client {
	return &Client{
		cl:      cl,
		signer:  newOauthSigner(cfg),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// BaseURLForAccount derives the SuiteTalk endpoint from the account id
// the way the remote system expects it (underscores become dashes,
// sandbox suffix lowercased).
func BaseURLForAccount(account string) string {
	account = strings.ReplaceAll(account, "_", "-")
	account = strings.ReplaceAll(account, "SB", "sb")

	return "https://" + account + ".suitetalk.api.netsuite.com/services/rest"
}

func (c *Client) recordURL(recordType string) string {
	return c.baseURL + "/record/v1/" + recordType
}

func (c *Client) suiteQLURL() string {
	return c.baseURL + "/query/v1/suiteql"
}

func (c *Client) authHeader(method, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return c.signer.Header(method, u), nil
}

// CreateRecord posts a mapped payload. The new record id comes back in
// the Location response header rather than the body.
func (c *Client) CreateRecord(
	ctx context.Context,
	recordType string,
	payload unified.Payload,
) (string, error) {
	reqURL := c.recordURL(recordType)

	auth, err := c.authHeader(http.MethodPost, reqURL)
	if err != nil {
		return "", err
	}

	resp, err := c.cl.R().
		SetContext(ctx).
		SetHeader("Authorization", auth).
		SetBody(payload).
		Post(reqURL)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if resp.IsErrorState() {
		return "", errors.Newf("create %s failed: %s", recordType, cleanErrorMessage(resp))
	}

	return idFromLocation(resp.Header.Get("Location")), nil
}

func (c *Client) UpdateRecord(
	ctx context.Context,
	recordType string,
	id string,
	payload unified.Payload,
) (string, error) {
	reqURL := c.recordURL(recordType) + "/" + id

	auth, err := c.authHeader(http.MethodPatch, reqURL)
	if err != nil {
		return "", err
	}

	resp, err := c.cl.R().
		SetContext(ctx).
		SetHeader("Authorization", auth).
		SetBody(payload).
		Patch(reqURL)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if resp.IsErrorState() {
		return "", errors.Newf("update %s %s failed: %s", recordType, id, cleanErrorMessage(resp))
	}

	return id, nil
}

// GetReferenceData bulk-fetches reference rows for one record type,
// filtered to the identity values the current batch actually
// references. An empty filter short-circuits to an empty result so a
// sink can never accidentally pull a whole remote table.
func (c *Client) GetReferenceData(
	ctx context.Context,
	recordType string,
	f Filter,
) ([]*ReferenceRow, error) {
	if f.IsEmpty() {
		return nil, nil
	}

	spec, ok := tableSpecs[recordType]
	if !ok {
		return nil, errors.Newf("unknown reference record type %s", recordType)
	}

	items, err := c.runSuiteQL(ctx, buildReferenceQuery(spec, f))
	if err != nil {
		return nil, err
	}

	rows := make([]*ReferenceRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, rowFromItem(spec, item))
	}

	return rows, nil
}

// GetTransactionData looks up existing transactions (invoices, bills,
// orders, journals, credits) by id, external id or transaction number.
func (c *Client) GetTransactionData(
	ctx context.Context,
	txType string,
	f Filter,
) ([]*ReferenceRow, error) {
	if f.IsEmpty() {
		return nil, nil
	}

	items, err := c.runSuiteQL(ctx, buildTransactionQuery(txType, f))
	if err != nil {
		return nil, err
	}

	rows := make([]*ReferenceRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, &ReferenceRow{
			InternalID:   itemString(item, "id"),
			ExternalID:   itemString(item, "externalid"),
			TranID:       itemString(item, "tranid"),
			EntityRef:    itemString(item, "entity"),
			SubsidiaryID: itemString(item, "subsidiary"),
		})
	}

	return rows, nil
}

// GetTransactionLines fetches the lines already present on the given
// transactions, keyed by parent internal id. Lines with an item ref
// land in LineItems, the rest in Expenses.
func (c *Client) GetTransactionLines(
	ctx context.Context,
	parentIDs []string,
) (map[string]*TransactionLines, error) {
	result := map[string]*TransactionLines{}

	if len(parentIDs) == 0 {
		return result, nil
	}

	items, err := c.runSuiteQL(ctx, buildTransactionLinesQuery(parentIDs))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		parent := itemString(item, "transaction")

		lines, ok := result[parent]
		if !ok {
			lines = &TransactionLines{}
			result[parent] = lines
		}

		line := ExistingLine{Memo: itemString(item, "memo")}

		if itemString(item, "item") != "" {
			lines.LineItems = append(lines.LineItems, line)
		} else {
			lines.Expenses = append(lines.Expenses, line)
		}
	}

	return result, nil
}

// GetRelatedPayments fetches payments already applied to the given
// transactions, keyed by parent internal id.
func (c *Client) GetRelatedPayments(
	ctx context.Context,
	paymentType string,
	parentIDs []string,
) (map[string][]*ExistingPayment, error) {
	result := map[string][]*ExistingPayment{}

	if len(parentIDs) == 0 {
		return result, nil
	}

	items, err := c.runSuiteQL(ctx, buildRelatedPaymentsQuery(paymentType, parentIDs))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		parent := itemString(item, "parent")

		amount, amountErr := decimal.NewFromString(itemString(item, "amount"))
		if amountErr != nil {
			return nil, errors.Wrapf(amountErr, "bad payment amount for parent %s", parent)
		}

		result[parent] = append(result[parent], &ExistingPayment{
			Amount:   amount,
			TranDate: itemString(item, "trandate"),
		})
	}

	return result, nil
}

func (c *Client) GetDefaultAddresses(
	ctx context.Context,
	recordType string,
	ids []string,
) (map[string]DefaultAddresses, error) {
	result := map[string]DefaultAddresses{}

	if len(ids) == 0 {
		return result, nil
	}

	items, err := c.runSuiteQL(ctx, buildDefaultAddressesQuery(recordType, ids))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		entity := itemString(item, "entity")
		addr := result[entity]

		text := itemString(item, "addressbookaddress_text")
		if itemString(item, "defaultshipping") == "T" {
			addr.Shipping = text
		}
		if itemString(item, "defaultbilling") == "T" {
			addr.Billing = text
		}

		result[entity] = addr
	}

	return result, nil
}

func (c *Client) runSuiteQL(
	ctx context.Context,
	query string,
) ([]map[string]interface{}, error) {
	reqURL := c.suiteQLURL()

	auth, err := c.authHeader(http.MethodPost, reqURL)
	if err != nil {
		return nil, err
	}

	var apiResp suiteQLResponse

	resp, err := c.cl.R().
		SetContext(ctx).
		SetHeader("Authorization", auth).
		SetHeader("Prefer", "transient").
		SetBody(map[string]string{"q": query}).
		SetSuccessResult(&apiResp).
		Post(reqURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("suiteql query failed: %s", cleanErrorMessage(resp))
	}

	return apiResp.Items, nil
}

func rowFromItem(spec tableSpec, item map[string]interface{}) *ReferenceRow {
	row := &ReferenceRow{
		InternalID: itemString(item, "id"),
		ExternalID: itemString(item, "externalid"),
	}

	if spec.name != "" {
		row.Name = itemString(item, spec.name)
	}
	if spec.entity != "" {
		row.EntityID = itemString(item, spec.entity)
	}
	if spec.itemID != "" {
		row.ItemID = itemString(item, spec.itemID)
	}
	if spec.symbol != "" {
		row.Symbol = itemString(item, spec.symbol)
	}
	if spec.subsidiary != "" {
		row.SubsidiaryID = itemString(item, spec.subsidiary)
	}

	return row
}

func itemString(item map[string]interface{}, key string) string {
	val, ok := item[key]
	if !ok || val == nil {
		return ""
	}

	switch typed := val.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		if typed {
			return "T"
		}
		return "F"
	default:
		return ""
	}
}

func idFromLocation(location string) string {
	if location == "" {
		return ""
	}

	parts := strings.Split(location, "/")

	return parts[len(parts)-1]
}

// cleanErrorMessage extracts the remote error detail so that record
// failures carry the actual reason instead of a JSON blob.
func cleanErrorMessage(resp *req.Response) string {
	var apiErr errorResponse

	if err := resp.UnmarshalJson(&apiErr); err == nil &&
		len(apiErr.ErrorDetails) > 0 && apiErr.ErrorDetails[0].Detail != "" {
		return apiErr.ErrorDetails[0].Detail
	}

	return resp.String()
}
