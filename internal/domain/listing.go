package domain

import (
	"fmt"
	"strings"
	"time"
)

type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	RatingAvg   float64   `json:"rating_avg"`
	RatingCount int       `json:"rating_count"`
	ProviderID  string    `json:"provider_id"`
	CreatedAt   time.Time `json:"created_at"`
	Active      bool      `json:"active"`
}

// Filter narrows a listing query. Zero value means "all active listings".
type Filter struct {
	Query    string
	Category string
	Tag      string
	MinPrice float64
	MaxPrice float64
}

// Cache keys live in one place so the prefixes used for invalidation
// stay consistent with the keys used for lookup.
const (
	BrowsePrefix   = "browse:"
	FeaturedPrefix = "featured:"
)

// BrowseKey embeds the category right after the prefix, which lets
// OnListingChanged drop a single category's pages without touching the rest.
func BrowseKey(f Filter, page, pageSize int) string {
	return fmt.Sprintf("%s%s:%s:%s:%.2f:%.2f:%d:%d",
		BrowsePrefix, f.Category, strings.ToLower(f.Query), f.Tag,
		f.MinPrice, f.MaxPrice, page, pageSize,
	)
}

func FeaturedKey(n int) string {
	return fmt.Sprintf("%s%d", FeaturedPrefix, n)
}
