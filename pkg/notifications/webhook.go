package notifications

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/processor"
)

// Webhook posts batch outcomes to a configured endpoint, one call per
// processed batch.
type Webhook struct {
	client *req.Client
	url    string
}

func NewWebhook(
	url string,
	cl *req.Client,
) *Webhook {
	return &Webhook{
		client: cl,
		url:    url,
	}
}

func (w *Webhook) SendBatchReport(
	ctx context.Context,
	entityType database.EntityType,
	summary processor.BatchSummary,
	text string,
) error {
	resp, err := w.client.R().
		SetBody(map[string]interface{}{
			"entityType": entityType,
			"summary":    summary,
			"text":       text,
		}).
		SetContext(ctx).
		Post(w.url)

	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return fmt.Errorf("unexpected status code: %v and message %v", resp.StatusCode, resp.String())
	}

	return nil
}
