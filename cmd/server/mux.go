package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
	"github.com/skynet2/netsuite-unified-target/pkg/printer"
	"github.com/skynet2/netsuite-unified-target/pkg/processor"
	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

const defaultStateLimit = 100

type Handler struct {
	processor BatchProcessor
	journals  JournalParser
	states    Repository
	reports   *printer.Printer
	notifier  Notifier
}

func NewHandler(
	processor BatchProcessor,
	journals JournalParser,
	states Repository,
	notifier Notifier,
) *Handler {
	return &Handler{
		processor: processor,
		journals:  journals,
		states:    states,
		reports:   printer.NewPrinter(),
		notifier:  notifier,
	}
}

func (h *Handler) HandleBatch(
	w http.ResponseWriter,
	r *http.Request,
) {
	if !authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	entityType, ok := entityTypes[mux.Vars(r)["entity"]]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	b, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var records []unified.Record
	if err = json.Unmarshal(b, &records); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	h.processBatch(w, r, entityType, records)
}

func (h *Handler) HandleJournalSheet(
	w http.ResponseWriter,
	r *http.Request,
) {
	if !authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	b, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	records, err := h.journals.Parse(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	h.processBatch(w, r, database.EntityTypeJournalEntries, records)
}

func (h *Handler) HandleState(
	w http.ResponseWriter,
	r *http.Request,
) {
	if !authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	entityType, ok := entityTypes[mux.Vars(r)["entity"]]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	limit := defaultStateLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.states.GetStateEntries(r.Context(), entityType, limit)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to fetch state entries")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, StateResponse{Entries: entries})
}

func (h *Handler) processBatch(
	w http.ResponseWriter,
	r *http.Request,
	entityType database.EntityType,
	records []unified.Record,
) {
	entries, err := h.processor.ProcessBatch(r.Context(), entityType, records)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).
			Str("entityType", string(entityType)).
			Msg("batch failed")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	summary := processor.Summarize(entries)

	if h.notifier != nil {
		notifyErr := h.notifier.SendBatchReport(
			r.Context(),
			entityType,
			summary,
			h.reports.BatchReport(entityType, entries),
		)
		if notifyErr != nil {
			log.Ctx(r.Context()).Warn().Err(notifyErr).Msg("failed to send batch report")
		}
	}

	writeJSON(w, BatchResponse{
		Summary: summary,
		Entries: entries,
	})
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func authorized(r *http.Request) bool {
	return apiKey != "" && apiKey == r.URL.Query().Get("api_key")
}
