package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mestakip/tiretrack/internal/server"
	"github.com/mestakip/tiretrack/internal/user/domain"
	"github.com/mestakip/tiretrack/internal/user/usecase/command"
	"github.com/mestakip/tiretrack/internal/user/usecase/query"
	"github.com/mestakip/tiretrack/pkg/logger"
)

// UserHandler handles HTTP requests for accounts
type UserHandler struct {
	registerHandler     *command.RegisterUserHandler
	loginHandler        *command.LoginUserHandler
	updateHandler       *command.UpdateUserHandler
	deleteHandler       *command.DeleteUserHandler
	changeRoleHandler   *command.ChangeRoleHandler
	toggleStatusHandler *command.ToggleStatusHandler

	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler
	statsHandler   *query.GetStatsHandler

	repo           domain.UserRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	activeUsers    prometheus.Gauge
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tiretrack_user_requests_total",
			Help: "Total number of requests to account endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tiretrack_user_request_duration_seconds",
			Help:    "Duration of account requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	activeUsers := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tiretrack_active_users",
			Help: "Number of active accounts",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(activeUsers)

	return &UserHandler{
		registerHandler:     command.NewRegisterUserHandler(repo),
		loginHandler:        command.NewLoginUserHandler(repo),
		updateHandler:       command.NewUpdateUserHandler(repo),
		deleteHandler:       command.NewDeleteUserHandler(repo),
		changeRoleHandler:   command.NewChangeRoleHandler(repo),
		toggleStatusHandler: command.NewToggleStatusHandler(repo),
		getUserHandler:      query.NewGetUserHandler(repo),
		listHandler:         query.NewListUsersHandler(repo),
		statsHandler:        query.NewGetStatsHandler(repo),
		repo:                repo,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		activeUsers:         activeUsers,
	}
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := server.NewStatusRecorder(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.StatusCode)).Inc()
	}
}

// RegisterRoutes wires account endpoints onto the router
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/register", h.metricsMiddleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")

	router.HandleFunc("/users/me", h.metricsMiddleware("/users/me", server.AuthMiddleware(h.GetProfile))).Methods("GET")
	router.HandleFunc("/users/me", h.metricsMiddleware("/users/me", server.AuthMiddleware(h.UpdateProfile))).Methods("PUT")

	router.HandleFunc("/admin/users", h.metricsMiddleware("/admin/users", server.AdminMiddleware(h.CreateUser))).Methods("POST")
	router.HandleFunc("/admin/users", h.metricsMiddleware("/admin/users", server.AdminMiddleware(h.ListUsers))).Methods("GET")
	router.HandleFunc("/admin/users/stats", h.metricsMiddleware("/admin/users/stats", server.AdminMiddleware(h.GetStats))).Methods("GET")
	router.HandleFunc("/admin/users/{id}", h.metricsMiddleware("/admin/users/{id}", server.AdminMiddleware(h.GetUser))).Methods("GET")
	router.HandleFunc("/admin/users/{id}", h.metricsMiddleware("/admin/users/{id}", server.AdminMiddleware(h.UpdateUser))).Methods("PUT")
	router.HandleFunc("/admin/users/{id}", h.metricsMiddleware("/admin/users/{id}", server.AdminMiddleware(h.DeleteUser))).Methods("DELETE")
	router.HandleFunc("/admin/users/{id}/role", h.metricsMiddleware("/admin/users/{id}/role", server.AdminMiddleware(h.ChangeRole))).Methods("PUT")
	router.HandleFunc("/admin/users/{id}/status", h.metricsMiddleware("/admin/users/{id}/status", server.AdminMiddleware(h.ToggleStatus))).Methods("PUT")
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Telephone string `json:"telephone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.RegisterUserCommand{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Telephone: req.Telephone,
		Role:      domain.RoleOperator, // Self-registration never grants elevated roles
	}

	user, err := h.registerHandler.Handle(cmd)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	h.updateActiveUsersMetric()
	server.RespondJSON(w, http.StatusCreated, server.Response{Success: true, Data: user})
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.loginHandler.Handle(command.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		server.RespondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: response})
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(server.UserIDKey).(uint)
	if !ok {
		server.RespondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := h.getUserHandler.Handle(query.GetUserQuery{ID: userID})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: user})
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(server.UserIDKey).(uint)
	if !ok {
		server.RespondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Telephone string `json:"telephone"`
		Password  string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.updateHandler.Handle(command.UpdateUserCommand{
		ID:        userID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Telephone: req.Telephone,
		Password:  req.Password,
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: user})
}

// CreateUser handles POST /admin/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Telephone string `json:"telephone"`
		Role      string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.registerHandler.Handle(command.RegisterUserCommand{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Telephone: req.Telephone,
		Role:      req.Role, // Admin may set any role
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	h.updateActiveUsersMetric()
	server.RespondJSON(w, http.StatusCreated, server.Response{Success: true, Data: user})
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	users, err := h.listHandler.Handle(query.ListUsersQuery{
		Limit:  limit,
		Offset: offset,
		Role:   r.URL.Query().Get("role"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list users")
		server.RespondError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	h.updateActiveUsersMetric()
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: users})
}

// GetUser handles GET /admin/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.getUserHandler.Handle(query.GetUserQuery{ID: id})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: user})
}

// UpdateUser handles PUT /admin/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Telephone string `json:"telephone"`
		Password  string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.updateHandler.Handle(command.UpdateUserCommand{
		ID:        id,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Telephone: req.Telephone,
		Password:  req.Password,
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: user})
}

// DeleteUser handles DELETE /admin/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteUserCommand{ID: id}); err != nil {
		server.RespondDomainError(w, err)
		return
	}

	h.updateActiveUsersMetric()
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Message: "User deleted successfully"})
}

// ChangeRole handles PUT /admin/users/{id}/role
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		Role string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.changeRoleHandler.Handle(command.ChangeRoleCommand{
		UserID: id,
		Role:   req.Role,
	})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: user})
}

// ToggleStatus handles PUT /admin/users/{id}/status
func (h *UserHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.toggleStatusHandler.Handle(command.ToggleStatusCommand{UserID: id})
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	h.updateActiveUsersMetric()
	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: user})
}

// GetStats handles GET /admin/users/stats
func (h *UserHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get account stats")
		server.RespondError(w, http.StatusInternalServerError, "Failed to get statistics")
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: stats})
}

func (h *UserHandler) updateActiveUsersMetric() {
	count, err := h.repo.CountByStatus(domain.StatusActive)
	if err == nil {
		h.activeUsers.Set(float64(count))
	}
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}
