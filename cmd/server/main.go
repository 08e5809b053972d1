package main

import (
	"net/http"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog/log"

	"github.com/skynet2/netsuite-unified-target/pkg/duplicatecleaner"
	"github.com/skynet2/netsuite-unified-target/pkg/netsuite"
	"github.com/skynet2/netsuite-unified-target/pkg/notifications"
	"github.com/skynet2/netsuite-unified-target/pkg/parser"
	"github.com/skynet2/netsuite-unified-target/pkg/processor"
	"github.com/skynet2/netsuite-unified-target/pkg/repo"
	"github.com/skynet2/netsuite-unified-target/pkg/sink"
)

var apiKey string

func main() {
	apiKey = os.Getenv("API_KEY")

	cfg := netsuite.Config{
		Account:        os.Getenv("NS_ACCOUNT"),
		ConsumerKey:    os.Getenv("NS_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("NS_CONSUMER_SECRET"),
		TokenKey:       os.Getenv("NS_TOKEN_KEY"),
		TokenSecret:    os.Getenv("NS_TOKEN_SECRET"),
	}

	ns := netsuite.NewClient(
		cfg,
		netsuite.BaseURLForAccount(cfg.Account),
		req.DefaultClient(),
	)

	dataRepo, err := buildRepo()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init state store")
	}

	processorSvc := processor.NewProcessor(
		dataRepo,
		duplicatecleaner.NewDuplicateCleaner(dataRepo),
		sink.NewAccount(ns),
		sink.NewCustomer(ns),
		sink.NewVendor(ns),
		sink.NewItem(ns),
		sink.NewInvoice(ns),
		sink.NewBill(ns),
		sink.NewJournalEntry(ns),
		sink.NewPurchaseOrder(ns),
		sink.NewVendorCredit(ns),
		sink.NewBillPayment(ns),
		sink.NewInvoicePayment(ns),
	)

	var notifier Notifier
	if webhookURL := os.Getenv("NOTIFY_WEBHOOK_URL"); webhookURL != "" {
		notifier = notifications.NewWebhook(webhookURL, req.DefaultClient())
	}

	handler := NewHandler(processorSvc, parser.NewJournalSheet(), dataRepo, notifier)

	r := mux.NewRouter()
	r.HandleFunc("/api/batch/{entity}", handler.HandleBatch).Methods(http.MethodPost)
	r.HandleFunc("/api/upload/journal-entries", handler.HandleJournalSheet).Methods(http.MethodPost)
	r.HandleFunc("/api/state/{entity}", handler.HandleState).Methods(http.MethodGet)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("FUNCTIONS_CUSTOMHANDLER_PORT"); ok {
		listenAddr = ":" + val
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         listenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	panic(srv.ListenAndServe())
}

func buildRepo() (Repository, error) {
	if conn := os.Getenv("POSTGRES_CONNECTION_STRING"); conn != "" {
		pg, err := repo.NewPostgres(conn)
		if err != nil {
			return nil, err
		}

		return pg, nil
	}

	conn := os.Getenv("COSMO_DB_CONNECTION_STRING")
	if conn == "" {
		return nil, errors.New("no state store configured")
	}

	client, err := azcosmos.NewClientFromConnectionString(conn, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cosmo, err := repo.NewCosmo(client, os.Getenv("COSMO_DB_NAME"))
	if err != nil {
		return nil, err
	}

	return cosmo, nil
}
