package ranking

import (
	"container/heap"
	"math"
	"time"

	"github.com/skillbridge/service-core/internal/domain"
)

// Weights tunes the featured-listing score. The constants are configuration,
// not contract: only monotonicity matters (better rated and newer wins).
type Weights struct {
	// RatingWeight multiplies ratingAvg * log(1 + ratingCount).
	RatingWeight float64
	// DecayPerDay is subtracted from the score for every day of listing age.
	DecayPerDay float64
}

func DefaultWeights() Weights {
	return Weights{RatingWeight: 1.0, DecayPerDay: 0.05}
}

// Selector computes top-N listings by weighted score. It is stateless per
// call and operates on the snapshot passed in, so it needs no locking.
type Selector struct {
	weights Weights
	now     func() time.Time
}

func New(w Weights) *Selector {
	if w.RatingWeight == 0 {
		w.RatingWeight = 1.0
	}
	return &Selector{weights: w, now: time.Now}
}

func (s *Selector) Score(l domain.Listing) float64 {
	rating := s.weights.RatingWeight * l.RatingAvg * math.Log1p(float64(l.RatingCount))
	ageDays := s.now().Sub(l.CreatedAt).Hours() / 24
	return rating - s.weights.DecayPerDay*ageDays
}

type candidate struct {
	listing domain.Listing
	score   float64
}

// better imposes a total order: higher score wins, ties go to the more
// recently created listing, then to the lexically smaller id.
func better(a, b candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if !a.listing.CreatedAt.Equal(b.listing.CreatedAt) {
		return a.listing.CreatedAt.After(b.listing.CreatedAt)
	}
	return a.listing.ID < b.listing.ID
}

// minHeap keeps the currently worst of the retained candidates on top.
type minHeap []candidate

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return better(h[j], h[i]) }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(candidate)) }

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// TopN returns the n best-scoring listings, descending. A bounded min-heap
// keeps this at O(len(listings) * log n) time and O(n) space, which is the
// point when candidates vastly outnumber n. n <= 0 yields an empty result.
func (s *Selector) TopN(listings []domain.Listing, n int) []domain.Listing {
	if n <= 0 || len(listings) == 0 {
		return nil
	}

	h := make(minHeap, 0, n)
	for _, l := range listings {
		c := candidate{listing: l, score: s.Score(l)}
		if h.Len() < n {
			heap.Push(&h, c)
			continue
		}
		if better(c, h[0]) {
			h[0] = c
			heap.Fix(&h, 0)
		}
	}

	// Heap extraction is worst-first; fill the result back to front.
	out := make([]domain.Listing, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(candidate).listing
	}
	return out
}
