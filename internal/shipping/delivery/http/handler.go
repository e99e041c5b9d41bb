package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mestakip/tiretrack/internal/server"
	"github.com/mestakip/tiretrack/internal/shipping/usecase/command"
	"github.com/mestakip/tiretrack/internal/shipping/usecase/query"
	"github.com/mestakip/tiretrack/pkg/logger"
)

var (
	shippingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tiretrack_shipping_requests_total",
			Help: "Total number of shipping HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	shippingRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tiretrack_shipping_request_duration_seconds",
			Help:    "Shipping HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// DeliveryHandler exposes delivery scheduling endpoints
type DeliveryHandler struct {
	deliveryCmd *command.DeliveryHandler
	listQuery   *query.ListDeliveriesHandler
	getQuery    *query.GetDeliveryHandler
}

func NewDeliveryHandler(
	deliveryCmd *command.DeliveryHandler,
	listQuery *query.ListDeliveriesHandler,
	getQuery *query.GetDeliveryHandler,
) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryCmd: deliveryCmd,
		listQuery:   listQuery,
		getQuery:    getQuery,
	}
}

func (h *DeliveryHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.Use(server.Auth)
	api.Use(h.metricsMiddleware)

	api.HandleFunc("/deliveries", h.List).Methods(http.MethodGet)
	api.HandleFunc("/deliveries", h.Create).Methods(http.MethodPost)
	api.HandleFunc("/deliveries/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	api.HandleFunc("/deliveries/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	api.HandleFunc("/deliveries/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/deliveries/{id:[0-9]+}/delivered", h.MarkDelivered).Methods(http.MethodPost)
}

func (h *DeliveryHandler) metricsMiddleware(next http.Handler) http.Handler {
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
		shippingRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(recorder.StatusCode)).Inc()
		shippingRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

// List godoc
// @Summary List deliveries
// @Tags deliveries
// @Security BearerAuth
// @Param search query string false "Customer name contains"
// @Param delivered query boolean false "Filter by delivered state"
// @Success 200 {object} server.Response
// @Router /api/deliveries [get]
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := query.ListDeliveriesQuery{
		Search: r.URL.Query().Get("search"),
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
		Scope:  server.ScopeFromContext(r.Context()),
	}
	if raw := r.URL.Query().Get("delivered"); raw == "true" || raw == "false" {
		delivered := raw == "true"
		q.Delivered = &delivered
	}

	deliveries, err := h.listQuery.Handle(q)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: deliveries})
}

func (h *DeliveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	delivery, err := h.getQuery.Handle(query.GetDeliveryQuery{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: delivery})
}

func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateDeliveryCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.Scope = server.ScopeFromContext(r.Context())

	delivery, err := h.deliveryCmd.HandleCreate(cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	logger.Info(r.Context()).
		Uint("delivery_id", delivery.ID).
		Str("customer", delivery.CustomerName).
		Msg("delivery scheduled")
	server.RespondJSON(w, http.StatusCreated, server.Response{Success: true, Data: delivery})
}

func (h *DeliveryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var cmd command.UpdateDeliveryCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.ID = id
	cmd.Scope = server.ScopeFromContext(r.Context())

	delivery, err := h.deliveryCmd.HandleUpdate(cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: delivery})
}

func (h *DeliveryHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	delivery, err := h.deliveryCmd.HandleMarkDelivered(command.MarkDeliveredCommand{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: delivery})
}

func (h *DeliveryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.deliveryCmd.HandleDelete(command.DeleteDeliveryCommand{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Message: "delivery deleted"})
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
