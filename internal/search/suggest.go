package search

import (
	"context"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/skillbridge/service-core/internal/domain"
)

type repo interface {
	ActiveListings(ctx context.Context, f domain.Filter) ([]domain.Listing, error)
}

// Suggester serves autocomplete candidates for the search box, built from
// listing titles and tags. Per-prefix results are kept in an LRU so hot
// prefixes never hit the durable store twice in a row.
type Suggester struct {
	repo   repo
	cache  *lru.Cache[string, []string]
	logger *zap.Logger
}

func New(repo repo, cacheSize int, logger *zap.Logger) (*Suggester, error) {
	c, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Suggester{
		repo:   repo,
		cache:  c,
		logger: logger,
	}, nil
}

// Suggest returns up to limit suggestions for the partial query q.
// Queries shorter than two runes produce nothing.
func (s *Suggester) Suggest(ctx context.Context, q string, limit int) ([]string, error) {
	q = strings.TrimSpace(strings.ToLower(q))
	if len([]rune(q)) < 2 || limit <= 0 {
		return nil, nil
	}

	if cached, ok := s.cache.Get(q); ok {
		return truncate(cached, limit), nil
	}

	listings, err := s.repo.ActiveListings(ctx, domain.Filter{Query: q})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Title), q) {
			seen[l.Title] = struct{}{}
		}
		for _, tag := range l.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				seen[tag] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for sg := range seen {
		out = append(out, sg)
	}
	sort.Strings(out)

	// The full list is cached; limit is applied per request so one entry
	// serves callers with different limits.
	s.cache.Add(q, out)
	s.logger.Debug("suggestions computed",
		zap.String("query", q),
		zap.Int("count", len(out)),
	)
	return truncate(out, limit), nil
}

func truncate(ss []string, limit int) []string {
	if len(ss) > limit {
		return ss[:limit]
	}
	return ss
}

// Flush drops all cached suggestions. Called when any listing changes,
// since a title or tag edit can alter arbitrary prefixes.
func (s *Suggester) Flush() {
	s.cache.Purge()
}
