package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skillbridge/service-core/internal/application/service"
	"github.com/skillbridge/service-core/internal/domain"
	"github.com/skillbridge/service-core/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type Listings interface {
	BrowseWithStats(ctx context.Context, f domain.Filter, page, pageSize int) ([]domain.Listing, service.LookupStats, error)
	FeaturedWithStats(ctx context.Context, n int) ([]domain.Listing, service.LookupStats, error)
	Recommend(ctx context.Context, clientID string, limit int) ([]domain.Listing, error)
	AllTags() []string
}

type Orders interface {
	Place(ctx context.Context, o *domain.Order) error
	ClaimNext(ctx context.Context, providerID string) (*domain.Order, error)
	Advance(ctx context.Context, orderID string, next domain.Status) (*domain.Order, error)
	Cancel(ctx context.Context, orderID string) error
	OrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error)
	OrdersByProvider(ctx context.Context, providerID string) ([]domain.Order, error)
}

type Suggest interface {
	Suggest(ctx context.Context, q string, limit int) ([]string, error)
}

type Server struct {
	listings Listings
	orders   Orders
	suggest  Suggest
	router   chi.Router
	logger   *zap.Logger
	metrics  observability.Metrics
}

func New(listings Listings, orders Orders, suggest Suggest, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		listings: listings,
		orders:   orders,
		suggest:  suggest,
		router:   chi.NewRouter(),
		logger:   logger,
		metrics:  metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(ServerTimingApp(s.metrics))

	s.router.Get("/listings", s.browseListings)
	s.router.Get("/listings/featured", s.featuredListings)
	s.router.Get("/listings/recommended", s.recommendedListings)
	s.router.Get("/tags", s.allTags)
	s.router.Get("/search/suggest", s.suggestTitles)

	s.router.Get("/orders", s.orderHistory)
	s.router.Post("/orders", s.placeOrder)
	s.router.Post("/orders/claim", s.claimOrder)
	s.router.Post("/orders/{order_id}/status", s.advanceOrder)
	s.router.Delete("/orders/{order_id}", s.cancelOrder)

	s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func (s *Server) browseListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.Filter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		MinPrice: queryFloat(q.Get("min_price")),
		MaxPrice: queryFloat(q.Get("max_price")),
	}
	page := queryInt(q.Get("page"), 1)
	pageSize := queryInt(q.Get("page_size"), 0)

	listings, st, err := s.listings.BrowseWithStats(r.Context(), f, page, pageSize)
	if err != nil {
		s.writeError(w, "browse failed", err)
		return
	}

	writeLookupHeaders(w, st)
	writeJSON(w, listings)
}

func (s *Server) featuredListings(w http.ResponseWriter, r *http.Request) {
	n := queryInt(r.URL.Query().Get("n"), 10)

	listings, st, err := s.listings.FeaturedWithStats(r.Context(), n)
	if err != nil {
		s.writeError(w, "featured failed", err)
		return
	}

	writeLookupHeaders(w, st)
	writeJSON(w, listings)
}

func (s *Server) recommendedListings(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	limit := queryInt(r.URL.Query().Get("limit"), 10)

	listings, err := s.listings.Recommend(r.Context(), clientID, limit)
	if err != nil {
		s.writeError(w, "recommend failed", err)
		return
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	writeJSON(w, listings)
}

func (s *Server) allTags(w http.ResponseWriter, _ *http.Request) {
	tags := s.listings.AllTags()
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, tags)
}

func (s *Server) suggestTitles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit := queryInt(r.URL.Query().Get("limit"), 10)

	suggestions, err := s.suggest.Suggest(r.Context(), q, limit)
	if err != nil {
		s.writeError(w, "suggest failed", err)
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, suggestions)
}

type placeOrderRequest struct {
	ListingID  string `json:"listing_id"`
	ClientID   string `json:"client_id"`
	ProviderID string `json:"provider_id"`
	Rush       bool   `json:"rush"`
}

func (s *Server) placeOrder(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[placeOrderRequest](w, r, s.logger)
	if !ok {
		return
	}
	if req.ListingID == "" || req.ClientID == "" {
		http.Error(w, "listing_id and client_id are required", http.StatusBadRequest)
		return
	}

	o := &domain.Order{
		ID:         uuid.NewString(),
		ListingID:  req.ListingID,
		ClientID:   req.ClientID,
		ProviderID: req.ProviderID,
		Rush:       req.Rush,
	}
	if err := s.orders.Place(r.Context(), o); err != nil {
		s.writeError(w, "place order failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	writeBody(w, o)
}

type claimOrderRequest struct {
	ProviderID string `json:"provider_id"`
}

func (s *Server) claimOrder(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[claimOrderRequest](w, r, s.logger)
	if !ok {
		return
	}
	if req.ProviderID == "" {
		http.Error(w, "provider_id is required", http.StatusBadRequest)
		return
	}

	o, err := s.orders.ClaimNext(r.Context(), req.ProviderID)
	if err != nil {
		s.writeError(w, "claim failed", err)
		return
	}
	writeJSON(w, o)
}

type advanceOrderRequest struct {
	Status string `json:"status"`
}

func (s *Server) advanceOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	req, ok := decodeJSON[advanceOrderRequest](w, r, s.logger)
	if !ok {
		return
	}
	if req.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	o, err := s.orders.Advance(r.Context(), orderID, domain.Status(req.Status))
	if err != nil {
		s.writeError(w, "status change failed", err)
		return
	}
	writeJSON(w, o)
}

func (s *Server) orderHistory(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	providerID := r.URL.Query().Get("provider_id")

	var (
		orders []domain.Order
		err    error
	)
	switch {
	case clientID != "":
		orders, err = s.orders.OrdersByClient(r.Context(), clientID)
	case providerID != "":
		orders, err = s.orders.OrdersByProvider(r.Context(), providerID)
	default:
		http.Error(w, "client_id or provider_id is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		s.writeError(w, "order history failed", err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, orders)
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	if err := s.orders.Cancel(r.Context(), orderID); err != nil {
		s.writeError(w, "cancel failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNoPendingOrders):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrDuplicateOrder):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		s.logger.Error(msg, zap.Error(err))
	}
	http.Error(w, msg+": "+err.Error(), status)
}

func writeLookupHeaders(w http.ResponseWriter, st service.LookupStats) {
	observability.AppendServerTiming(w, "cache", st.CacheMs, "")
	observability.AppendServerTiming(w, "db", st.DBMs, "")
	observability.AppendServerTiming(w, "source", 0, string(st.Source))
	w.Header().Set("X-Source", string(st.Source))
	observability.SetIfPos(w, "X-Cache-Time", st.CacheMs)
	observability.SetIfPos(w, "X-DB-Time", st.DBMs)
}

func decodeJSON[T any](w http.ResponseWriter, r *http.Request, logger *zap.Logger) (T, bool) {
	var v T

	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return v, false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&v); err != nil {
		logger.Error(
			"Error while decoding JSON",
			zap.Error(err),
		)
		http.Error(w, "bad json", http.StatusBadRequest)
		return v, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	writeBody(w, v)
}

func writeBody(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func queryInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func queryFloat(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler { return s.router }
