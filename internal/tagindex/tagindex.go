package tagindex

import (
	"sort"
	"sync"
)

// Index tracks the set of tags in use across active listings. Tags are
// reference counted so removing one listing's tags cannot erase a tag
// another listing still carries.
type Index struct {
	mu        sync.Mutex
	refs      map[string]int
	byListing map[string][]string
}

func New() *Index {
	return &Index{
		refs:      make(map[string]int),
		byListing: make(map[string][]string),
	}
}

func (i *Index) Add(tags []string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.add(tags)
}

func (i *Index) Remove(tags []string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.remove(tags)
}

// Apply replaces whatever tags were previously recorded for the listing,
// making repeated calls for the same listing idempotent. Passing no tags
// (deactivated or deleted listing) drops its contribution entirely.
func (i *Index) Apply(listingID string, tags []string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.remove(i.byListing[listingID])
	if len(tags) == 0 {
		delete(i.byListing, listingID)
		return
	}
	i.add(tags)
	i.byListing[listingID] = append([]string(nil), tags...)
}

// All returns the tags with at least one referencing listing, sorted.
func (i *Index) All() []string {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := make([]string, 0, len(i.refs))
	for tag := range i.refs {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func (i *Index) add(tags []string) {
	for _, t := range tags {
		if t == "" {
			continue
		}
		i.refs[t]++
	}
}

func (i *Index) remove(tags []string) {
	for _, t := range tags {
		if i.refs[t] <= 1 {
			delete(i.refs, t)
			continue
		}
		i.refs[t]--
	}
}
