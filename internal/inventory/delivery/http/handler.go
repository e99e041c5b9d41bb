package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mestakip/tiretrack/internal/inventory/usecase/command"
	"github.com/mestakip/tiretrack/internal/inventory/usecase/query"
	"github.com/mestakip/tiretrack/internal/server"
	"github.com/mestakip/tiretrack/pkg/logger"
)

var (
	inventoryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tiretrack_inventory_requests_total",
			Help: "Total number of inventory HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	inventoryRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tiretrack_inventory_request_duration_seconds",
			Help:    "Inventory HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	recordsCancelledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tiretrack_records_cancelled_total",
			Help: "Total number of record cancellations",
		},
	)
)

// RecordHandler exposes the tire record endpoints
type RecordHandler struct {
	saveCmd       *command.SaveRecordHandler
	cancelCmd     *command.CancelRecordHandler
	removeCmd     *command.RemoveRecordHandler
	notifyCmd     *command.NotifyRecordHandler
	listRecords   *query.ListRecordsHandler
	getRecord     *query.GetRecordHandler
	listCancelled *query.ListCancelledHandler
	listRemoved   *query.ListRemovedHandler
	reviewed      *query.ReviewedReportHandler
	dashboard     *query.DashboardHandler
}

func NewRecordHandler(
	saveCmd *command.SaveRecordHandler,
	cancelCmd *command.CancelRecordHandler,
	removeCmd *command.RemoveRecordHandler,
	notifyCmd *command.NotifyRecordHandler,
	listRecords *query.ListRecordsHandler,
	getRecord *query.GetRecordHandler,
	listCancelled *query.ListCancelledHandler,
	listRemoved *query.ListRemovedHandler,
	reviewed *query.ReviewedReportHandler,
	dashboard *query.DashboardHandler,
) *RecordHandler {
	return &RecordHandler{
		saveCmd:       saveCmd,
		cancelCmd:     cancelCmd,
		removeCmd:     removeCmd,
		notifyCmd:     notifyCmd,
		listRecords:   listRecords,
		getRecord:     getRecord,
		listCancelled: listCancelled,
		listRemoved:   listRemoved,
		reviewed:      reviewed,
		dashboard:     dashboard,
	}
}

func (h *RecordHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.Use(server.Auth)
	api.Use(h.metricsMiddleware)

	api.HandleFunc("/records", h.List).Methods(http.MethodGet)
	api.HandleFunc("/records", h.Create).Methods(http.MethodPost)
	api.HandleFunc("/records/reviewed", h.ListReviewed).Methods(http.MethodGet)
	api.HandleFunc("/records/cancelled", h.ListCancelled).Methods(http.MethodGet)
	api.HandleFunc("/records/removed", h.ListRemoved).Methods(http.MethodGet)
	api.HandleFunc("/records/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	api.HandleFunc("/records/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	api.HandleFunc("/records/{id:[0-9]+}", h.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/records/{id:[0-9]+}/cancel", h.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/records/{id:[0-9]+}/restore", h.Restore).Methods(http.MethodPost)
	api.HandleFunc("/records/{id:[0-9]+}/notify", h.Notify).Methods(http.MethodPost)
	api.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet)
}

func (h *RecordHandler) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := server.NewStatusRecorder(w)
		next.ServeHTTP(recorder, r)

		route := mux.CurrentRoute(r)
		endpoint := r.URL.Path
		if route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tmpl
			}
		}
		inventoryRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(recorder.StatusCode)).Inc()
		inventoryRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

// List godoc
// @Summary List active records
// @Description Working list: removed and reviewed rows are excluded
// @Tags records
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param search query string false "Counterparty or product contains"
// @Param range query string false "Date preset: 1m, 3m, 6m or custom"
// @Success 200 {object} server.Response
// @Router /api/records [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := query.ParseFilter(r.URL.Query(), time.Now())
	filter.Limit = queryInt(r, "limit", 50)
	filter.Offset = queryInt(r, "offset", 0)

	records, err := h.listRecords.Handle(r.Context(), query.ListRecordsQuery{
		Filter: filter,
		Scope:  server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: records})
}

// ListReviewed godoc
// @Summary Reviewed records with chart data
// @Description Archive view: reviewed rows plus brand, payment and season rollups
// @Tags records
// @Security BearerAuth
// @Success 200 {object} server.Response
// @Router /api/records/reviewed [get]
func (h *RecordHandler) ListReviewed(w http.ResponseWriter, r *http.Request) {
	filter := query.ParseFilter(r.URL.Query(), time.Now())
	filter.Limit = queryInt(r, "limit", 50)
	filter.Offset = queryInt(r, "offset", 0)

	report, err := h.reviewed.Handle(query.ReviewedReportQuery{
		Filter: filter,
		Scope:  server.ScopeFromContext(r.Context()),
		Year:   queryInt(r, "year", 0),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: report})
}

func (h *RecordHandler) ListCancelled(w http.ResponseWriter, r *http.Request) {
	records, err := h.listCancelled.Handle(query.ListCancelledQuery{
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
		Scope:  server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: records})
}

func (h *RecordHandler) ListRemoved(w http.ResponseWriter, r *http.Request) {
	records, err := h.listRemoved.Handle(query.ListRemovedQuery{
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
		Scope:  server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: records})
}

func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	record, err := h.getRecord.Handle(r.Context(), query.GetRecordQuery{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: record})
}

// Create godoc
// @Summary Create a record
// @Tags records
// @Security BearerAuth
// @Param record body command.CreateRecordCommand true "Record"
// @Success 201 {object} server.Response
// @Router /api/records [post]
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateRecordCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.Scope = server.ScopeFromContext(r.Context())

	record, err := h.saveCmd.HandleCreate(r.Context(), cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	logger.Info(r.Context()).
		Uint("record_id", record.ID).
		Str("counterparty", record.Counterparty).
		Msg("record created")
	server.RespondJSON(w, http.StatusCreated, server.Response{Success: true, Data: record})
}

func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var cmd command.UpdateRecordCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.ID = id
	cmd.Scope = server.ScopeFromContext(r.Context())

	record, err := h.saveCmd.HandleUpdate(r.Context(), cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: record})
}

// Cancel godoc
// @Summary Cancel a record
// @Description Owner or admin only; requires a reason of at least 3 characters
// @Tags records
// @Security BearerAuth
// @Success 200 {object} server.Response
// @Router /api/records/{id}/cancel [post]
func (h *RecordHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var cmd command.CancelRecordCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.ID = id
	cmd.Scope = server.ScopeFromContext(r.Context())

	record, err := h.cancelCmd.Handle(r.Context(), cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	recordsCancelledTotal.Inc()
	logger.Info(r.Context()).Uint("record_id", record.ID).Msg("record cancelled")
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: record})
}

func (h *RecordHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.removeCmd.HandleRemove(command.RemoveRecordCommand{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Message: "record removed"})
}

func (h *RecordHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.removeCmd.HandleRestore(command.RestoreRecordCommand{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Message: "record restored"})
}

// Notify godoc
// @Summary Prepare a WhatsApp notification for a record
// @Description Marks the record as notified and returns the wa.me link
// @Tags records
// @Security BearerAuth
// @Success 200 {object} server.Response
// @Router /api/records/{id}/notify [post]
func (h *RecordHandler) Notify(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	result, err := h.notifyCmd.Handle(r.Context(), command.NotifyRecordCommand{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: result})
}

// Dashboard godoc
// @Summary Inventory dashboard aggregates
// @Tags records
// @Security BearerAuth
// @Success 200 {object} server.Response
// @Router /api/dashboard [get]
func (h *RecordHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboard.Handle(query.DashboardQuery{
		Scope: server.ScopeFromContext(r.Context()),
		Year:  queryInt(r, "year", 0),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: dashboard})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
