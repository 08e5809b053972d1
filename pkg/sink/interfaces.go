package sink

import (
	"context"

	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package sink_test -source=interfaces.go

type NetSuite interface {
	CreateRecord(ctx context.Context, recordType string, payload unified.Payload) (string, error)
	UpdateRecord(ctx context.Context, recordType string, id string, payload unified.Payload) (string, error)
	GetReferenceData(ctx context.Context, recordType string, f netsuite.Filter) ([]*netsuite.ReferenceRow, error)
	GetTransactionData(ctx context.Context, txType string, f netsuite.Filter) ([]*netsuite.ReferenceRow, error)
	GetTransactionLines(ctx context.Context, parentIDs []string) (map[string]*netsuite.TransactionLines, error)
	GetRelatedPayments(ctx context.Context, paymentType string, parentIDs []string) (map[string][]*netsuite.ExistingPayment, error)
	GetDefaultAddresses(ctx context.Context, recordType string, ids []string) (map[string]netsuite.DefaultAddresses, error)
}
