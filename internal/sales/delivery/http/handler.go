package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mestakip/tiretrack/internal/sales/usecase/command"
	"github.com/mestakip/tiretrack/internal/sales/usecase/query"
	"github.com/mestakip/tiretrack/internal/server"
	"github.com/mestakip/tiretrack/pkg/logger"
)

var (
	salesRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tiretrack_sales_requests_total",
			Help: "Total number of sales HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	salesRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tiretrack_sales_request_duration_seconds",
			Help:    "Sales HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	purchasesSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tiretrack_purchases_saved_total",
			Help: "Total number of purchase saves",
		},
	)
)

// SalesHandler exposes sale and purchase endpoints
type SalesHandler struct {
	saleCmd       *command.SaleHandler
	purchaseCmd   *command.PurchaseHandler
	listSales     *query.ListSalesHandler
	getSale       *query.GetSaleHandler
	listPurchases *query.ListPurchasesHandler
	topPartners   *query.TopPartnersHandler
}

func NewSalesHandler(
	saleCmd *command.SaleHandler,
	purchaseCmd *command.PurchaseHandler,
	listSales *query.ListSalesHandler,
	getSale *query.GetSaleHandler,
	listPurchases *query.ListPurchasesHandler,
	topPartners *query.TopPartnersHandler,
) *SalesHandler {
	return &SalesHandler{
		saleCmd:       saleCmd,
		purchaseCmd:   purchaseCmd,
		listSales:     listSales,
		getSale:       getSale,
		listPurchases: listPurchases,
		topPartners:   topPartners,
	}
}

func (h *SalesHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.Use(server.Auth)
	api.Use(h.metricsMiddleware)

	api.HandleFunc("/sales", h.ListSales).Methods(http.MethodGet)
	api.HandleFunc("/sales", h.CreateSale).Methods(http.MethodPost)
	api.HandleFunc("/sales/top-partners", h.TopPartners).Methods(http.MethodGet)
	api.HandleFunc("/sales/{id:[0-9]+}", h.GetSale).Methods(http.MethodGet)
	api.HandleFunc("/sales/{id:[0-9]+}", h.DeleteSale).Methods(http.MethodDelete)

	api.HandleFunc("/purchases", h.ListPurchases).Methods(http.MethodGet)
	api.HandleFunc("/purchases", h.CreatePurchase).Methods(http.MethodPost)
	api.HandleFunc("/purchases/{id:[0-9]+}", h.UpdatePurchase).Methods(http.MethodPut)
	api.HandleFunc("/purchases/{id:[0-9]+}", h.DeletePurchase).Methods(http.MethodDelete)
}

func (h *SalesHandler) metricsMiddleware(next http.Handler) http.Handler {
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
		salesRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(recorder.StatusCode)).Inc()
		salesRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

// ListSales godoc
// @Summary List sales
// @Tags sales
// @Security BearerAuth
// @Param start query string false "Start date (2006-01-02)"
// @Param end query string false "End date, inclusive (2006-01-02)"
// @Success 200 {object} server.Response
// @Router /api/sales [get]
func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	start, end := query.ParseDateRange(r.URL.Query())
	sales, err := h.listSales.Handle(query.ListSalesQuery{
		Start:  start,
		End:    end,
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
		Scope:  server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: sales})
}

func (h *SalesHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sale, err := h.getSale.Handle(query.GetSaleQuery{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: sale})
}

// CreateSale godoc
// @Summary Record a sale
// @Tags sales
// @Security BearerAuth
// @Param sale body command.CreateSaleCommand true "Sale"
// @Success 201 {object} server.Response
// @Router /api/sales [post]
func (h *SalesHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateSaleCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.Scope = server.ScopeFromContext(r.Context())

	sale, err := h.saleCmd.HandleCreate(cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	logger.Info(r.Context()).
		Uint("sale_id", sale.ID).
		Str("reference", sale.Reference).
		Msg("sale recorded")
	server.RespondJSON(w, http.StatusCreated, server.Response{Success: true, Data: sale})
}

func (h *SalesHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.saleCmd.HandleDelete(command.DeleteSaleCommand{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Message: "sale removed"})
}

// TopPartners godoc
// @Summary Sales report: leaderboards and sales by day
// @Tags sales
// @Security BearerAuth
// @Param start query string false "Range start (2006-01-02)"
// @Param end query string false "Range end, inclusive (2006-01-02)"
// @Success 200 {object} server.Response
// @Router /api/sales/top-partners [get]
func (h *SalesHandler) TopPartners(w http.ResponseWriter, r *http.Request) {
	start, end := query.ParseDateRange(r.URL.Query())
	partners, err := h.topPartners.Handle(query.TopPartnersQuery{
		Scope: server.ScopeFromContext(r.Context()),
		Start: start,
		End:   end,
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: partners})
}

func (h *SalesHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.listPurchases.Handle(query.ListPurchasesQuery{
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
		Scope:  server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: purchases})
}

// CreatePurchase godoc
// @Summary Record a purchase
// @Description Recomputes the total value and restocks the linked item
// @Tags sales
// @Security BearerAuth
// @Param purchase body command.CreatePurchaseCommand true "Purchase"
// @Success 201 {object} server.Response
// @Router /api/purchases [post]
func (h *SalesHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreatePurchaseCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.Scope = server.ScopeFromContext(r.Context())

	purchase, err := h.purchaseCmd.HandleCreate(r.Context(), cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	purchasesSavedTotal.Inc()
	logger.Info(r.Context()).
		Uint("purchase_id", purchase.ID).
		Float64("total_value", purchase.TotalValue).
		Msg("purchase recorded")
	server.RespondJSON(w, http.StatusCreated, server.Response{Success: true, Data: purchase})
}

func (h *SalesHandler) UpdatePurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var cmd command.UpdatePurchaseCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.ID = id
	cmd.Scope = server.ScopeFromContext(r.Context())

	purchase, err := h.purchaseCmd.HandleUpdate(r.Context(), cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	purchasesSavedTotal.Inc()
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: purchase})
}

func (h *SalesHandler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.purchaseCmd.HandleDelete(command.DeletePurchaseCommand{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Message: "purchase removed"})
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
