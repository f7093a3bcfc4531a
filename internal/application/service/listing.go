package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/skillbridge/service-core/internal/domain"
	"github.com/skillbridge/service-core/internal/observability"
)

//go:generate mockgen -source internal/application/service/listing.go -destination=internal/application/service/listing_mock_test.go -package=service

type ListingCache interface {
	Get(key string) ([]domain.Listing, bool)
	Set(key string, value []domain.Listing, ttl time.Duration)
	Invalidate(key string)
	InvalidateByPrefix(prefix string)
}

type Ranker interface {
	TopN(listings []domain.Listing, n int) []domain.Listing
}

type Tags interface {
	Apply(listingID string, tags []string)
	All() []string
}

type ListingStorage interface {
	ActiveListings(ctx context.Context, f domain.Filter) ([]domain.Listing, error)
}

type SuggestionCache interface {
	Flush()
}

type OrderHistory interface {
	OrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error)
}

type ListingConfig struct {
	BrowseTTL   time.Duration
	FeaturedTTL time.Duration
}

// ListingService answers browse/featured queries from the cache first,
// falling back to the durable store on miss. All locks live inside the
// composed structures, so no lock is ever held across storage I/O.
type ListingService struct {
	cache   ListingCache
	ranker  Ranker
	tags    Tags
	storage ListingStorage
	history OrderHistory
	suggest SuggestionCache
	cfg     ListingConfig
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewListingService(
	cache ListingCache,
	ranker Ranker,
	tags Tags,
	storage ListingStorage,
	history OrderHistory,
	suggest SuggestionCache,
	cfg ListingConfig,
	logger *zap.Logger,
	metrics observability.Metrics,
) *ListingService {
	if cfg.BrowseTTL <= 0 {
		cfg.BrowseTTL = 60 * time.Second
	}
	if cfg.FeaturedTTL <= 0 {
		cfg.FeaturedTTL = 5 * time.Minute
	}
	return &ListingService{
		cache:   cache,
		ranker:  ranker,
		tags:    tags,
		storage: storage,
		history: history,
		suggest: suggest,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *ListingService) Browse(ctx context.Context, f domain.Filter, page, pageSize int) ([]domain.Listing, error) {
	out, _, err := s.BrowseWithStats(ctx, f, page, pageSize)
	return out, err
}

func (s *ListingService) BrowseWithStats(ctx context.Context, f domain.Filter, page, pageSize int) ([]domain.Listing, LookupStats, error) {
	var st LookupStats

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	key := domain.BrowseKey(f, page, pageSize)

	tCacheStart := time.Now()
	if cached, ok := s.cache.Get(key); ok {
		st.Source = SourceCache
		st.CacheMs = convertToMs(tCacheStart)
		s.metrics.IncCacheHit()
		s.metrics.ObserveLookup(string(st.Source), st.CacheMs, 0)
		return cached, st, nil
	}

	s.metrics.IncCacheMiss()
	st.CacheMs = convertToMs(tCacheStart)

	tDbStart := time.Now()
	listings, err := s.storage.ActiveListings(ctx, f)
	if err != nil {
		s.logger.Error("browse fallback to storage failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, st, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	st.Source = SourceDB
	st.DBMs = convertToMs(tDbStart)

	if f.Query != "" {
		rankByRelevance(listings, f.Query)
	}
	pageOut := paginate(listings, page, pageSize)

	for _, l := range listings {
		s.tags.Apply(l.ID, l.Tags)
	}
	s.cache.Set(key, pageOut, s.cfg.BrowseTTL)

	s.metrics.ObserveLookup(string(st.Source), st.CacheMs, st.DBMs)
	s.logger.Info("browse page fetched from storage",
		zap.String("key", key),
		zap.Int("candidates", len(listings)),
		zap.Int("page_len", len(pageOut)),
		zap.Float64("db_ms", st.DBMs),
	)
	return pageOut, st, nil
}

func (s *ListingService) Featured(ctx context.Context, n int) ([]domain.Listing, error) {
	out, _, err := s.FeaturedWithStats(ctx, n)
	return out, err
}

func (s *ListingService) FeaturedWithStats(ctx context.Context, n int) ([]domain.Listing, LookupStats, error) {
	var st LookupStats

	if n <= 0 {
		return nil, st, nil
	}
	key := domain.FeaturedKey(n)

	tCacheStart := time.Now()
	if cached, ok := s.cache.Get(key); ok {
		st.Source = SourceCache
		st.CacheMs = convertToMs(tCacheStart)
		s.metrics.IncCacheHit()
		s.metrics.ObserveLookup(string(st.Source), st.CacheMs, 0)
		return cached, st, nil
	}

	s.metrics.IncCacheMiss()
	st.CacheMs = convertToMs(tCacheStart)

	tDbStart := time.Now()
	listings, err := s.storage.ActiveListings(ctx, domain.Filter{})
	if err != nil {
		s.logger.Error("featured fallback to storage failed",
			zap.Int("n", n),
			zap.Error(err),
		)
		return nil, st, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	st.Source = SourceDB
	st.DBMs = convertToMs(tDbStart)

	top := s.ranker.TopN(listings, n)
	s.cache.Set(key, top, s.cfg.FeaturedTTL)

	s.metrics.ObserveLookup(string(st.Source), st.CacheMs, st.DBMs)
	s.logger.Info("featured set recomputed",
		zap.Int("n", n),
		zap.Int("candidates", len(listings)),
		zap.Float64("db_ms", st.DBMs),
	)
	return top, st, nil
}

// OnListingChanged is called for every create/update/delete of a listing.
// It drops the cache pages that could contain the listing and refreshes the
// tag index. Safe to call repeatedly for the same listing.
func (s *ListingService) OnListingChanged(ctx context.Context, l domain.Listing) error {
	if l.ID == "" {
		return fmt.Errorf("%w: listing id is empty", domain.ErrNotFound)
	}

	tags := l.Tags
	if !l.Active {
		tags = nil
	}
	s.tags.Apply(l.ID, tags)

	s.cache.InvalidateByPrefix(domain.FeaturedPrefix)
	s.cache.InvalidateByPrefix(domain.BrowsePrefix + l.Category + ":")
	if l.Category != "" {
		// Uncategorized browse pages see every listing.
		s.cache.InvalidateByPrefix(domain.BrowsePrefix + ":")
	}
	if s.suggest != nil {
		s.suggest.Flush()
	}

	s.logger.Info("listing change applied",
		zap.String("listing_id", l.ID),
		zap.String("category", l.Category),
		zap.Bool("active", l.Active),
	)
	return nil
}

func (s *ListingService) AllTags() []string {
	return s.tags.All()
}

// Recommend returns personalized picks for a client: the categories of
// their past orders seed the candidate set, which is then ranked by rating.
// Anonymous clients, or clients whose history yields no categories, get the
// featured set instead.
func (s *ListingService) Recommend(ctx context.Context, clientID string, limit int) ([]domain.Listing, error) {
	if limit <= 0 {
		return nil, nil
	}
	if clientID == "" {
		return s.Featured(ctx, limit)
	}

	orders, err := s.history.OrdersByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	listings, err := s.storage.ActiveListings(ctx, domain.Filter{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	byID := make(map[string]domain.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}
	categories := make(map[string]struct{})
	for _, o := range orders {
		if l, ok := byID[o.ListingID]; ok && l.Category != "" {
			categories[l.Category] = struct{}{}
		}
	}
	if len(categories) == 0 {
		return s.Featured(ctx, limit)
	}

	var picks []domain.Listing
	for _, l := range listings {
		if _, ok := categories[l.Category]; ok {
			picks = append(picks, l)
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		if picks[i].RatingAvg != picks[j].RatingAvg {
			return picks[i].RatingAvg > picks[j].RatingAvg
		}
		return picks[i].ID < picks[j].ID
	})
	if len(picks) > limit {
		picks = picks[:limit]
	}

	s.logger.Info("recommendations computed",
		zap.String("client_id", clientID),
		zap.Int("categories", len(categories)),
		zap.Int("count", len(picks)),
	)
	return picks, nil
}

// rankByRelevance orders search results by match quality: title match 10,
// tag match 5, description match 2, plus the rating.
func rankByRelevance(listings []domain.Listing, query string) {
	q := strings.ToLower(query)
	score := func(l domain.Listing) float64 {
		var sc float64
		if strings.Contains(strings.ToLower(l.Title), q) {
			sc += 10
		}
		for _, tag := range l.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				sc += 5
				break
			}
		}
		if strings.Contains(strings.ToLower(l.Description), q) {
			sc += 2
		}
		return sc + l.RatingAvg
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return score(listings[i]) > score(listings[j])
	})
}

func paginate(listings []domain.Listing, page, pageSize int) []domain.Listing {
	start := (page - 1) * pageSize
	if start >= len(listings) {
		return nil
	}
	end := start + pageSize
	if end > len(listings) {
		end = len(listings)
	}
	return listings[start:end]
}
