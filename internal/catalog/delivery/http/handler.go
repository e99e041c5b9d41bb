package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mestakip/tiretrack/internal/catalog/usecase/command"
	"github.com/mestakip/tiretrack/internal/catalog/usecase/query"
	"github.com/mestakip/tiretrack/internal/server"
	"github.com/mestakip/tiretrack/pkg/logger"
)

var (
	catalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tiretrack_catalog_requests_total",
			Help: "Total number of catalog HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	catalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tiretrack_catalog_request_duration_seconds",
			Help:    "Catalog HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// CatalogHandler exposes category and item endpoints
type CatalogHandler struct {
	categoryCmd *command.CategoryHandler
	itemCmd     *command.ItemHandler
	listItems   *query.ListItemsHandler
	getItem     *query.GetItemHandler
	listCats    *query.ListCategoriesHandler
	lookupItems *query.LookupItemsHandler
}

func NewCatalogHandler(
	categoryCmd *command.CategoryHandler,
	itemCmd *command.ItemHandler,
	listItems *query.ListItemsHandler,
	getItem *query.GetItemHandler,
	listCats *query.ListCategoriesHandler,
	lookupItems *query.LookupItemsHandler,
) *CatalogHandler {
	return &CatalogHandler{
		categoryCmd: categoryCmd,
		itemCmd:     itemCmd,
		listItems:   listItems,
		getItem:     getItem,
		listCats:    listCats,
		lookupItems: lookupItems,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.Use(server.Auth)
	api.Use(h.metricsMiddleware)

	api.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/{id:[0-9]+}", h.UpdateCategory).Methods(http.MethodPut)
	api.HandleFunc("/categories/{id:[0-9]+}", h.DeleteCategory).Methods(http.MethodDelete)

	api.HandleFunc("/items", h.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/items", h.CreateItem).Methods(http.MethodPost)
	api.HandleFunc("/items/search", h.SearchItems).Methods(http.MethodPost)
	api.HandleFunc("/items/{id:[0-9]+}", h.GetItem).Methods(http.MethodGet)
	api.HandleFunc("/items/{id:[0-9]+}", h.UpdateItem).Methods(http.MethodPut)
	api.HandleFunc("/items/{id:[0-9]+}", h.DeleteItem).Methods(http.MethodDelete)
}

func (h *CatalogHandler) metricsMiddleware(next http.Handler) http.Handler {
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
		catalogRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(recorder.StatusCode)).Inc()
		catalogRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

// ListCategories godoc
// @Summary List categories
// @Tags catalog
// @Security BearerAuth
// @Success 200 {object} server.Response
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCats.Handle(query.ListCategoriesQuery{
		Limit:  queryInt(r, "limit", 100),
		Offset: queryInt(r, "offset", 0),
		Scope:  server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: categories})
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateCategoryCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.Scope = server.ScopeFromContext(r.Context())

	category, err := h.categoryCmd.HandleCreate(cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	logger.Info(r.Context()).Uint("category_id", category.ID).Msg("category created")
	server.RespondJSON(w, http.StatusCreated, server.Response{Success: true, Data: category})
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var cmd command.UpdateCategoryCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.ID = id
	cmd.Scope = server.ScopeFromContext(r.Context())

	category, err := h.categoryCmd.HandleUpdate(cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: category})
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.categoryCmd.HandleDelete(command.DeleteCategoryCommand{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Message: "category deleted"})
}

// ListItems godoc
// @Summary List items
// @Tags catalog
// @Security BearerAuth
// @Param search query string false "Free-text name search"
// @Success 200 {object} server.Response
// @Router /api/items [get]
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.listItems.Handle(query.ListItemsQuery{
		Search: r.URL.Query().Get("search"),
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
		Scope:  server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: items})
}

func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	item, err := h.getItem.Handle(query.GetItemQuery{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: item})
}

func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateItemCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.Scope = server.ScopeFromContext(r.Context())

	item, err := h.itemCmd.HandleCreate(cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	logger.Info(r.Context()).Uint("item_id", item.ID).Str("slug", item.Slug).Msg("item created")
	server.RespondJSON(w, http.StatusCreated, server.Response{Success: true, Data: item})
}

func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var cmd command.UpdateItemCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.ID = id
	cmd.Scope = server.ScopeFromContext(r.Context())

	item, err := h.itemCmd.HandleUpdate(cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: item})
}

func (h *CatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.itemCmd.HandleDelete(command.DeleteItemCommand{
		ID:    id,
		Scope: server.ScopeFromContext(r.Context()),
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Message: "item deleted"})
}

// SearchItems godoc
// @Summary Item autocomplete for sale forms
// @Description Returns a bare JSON array of up to 10 matches
// @Tags catalog
// @Security BearerAuth
// @Success 200 {array} domain.LookupResult
// @Router /api/items/search [post]
func (h *CatalogHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Term string `json:"term"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		server.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.lookupItems.Handle(query.LookupItemsQuery{Term: body.Term})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	// This endpoint predates the response envelope; clients expect a bare
	// array.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(results)
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
