package cache

import (
	"strings"
	"time"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
	"recurring_finance/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

const keySeparator = "|"

// SummaryCache keeps monthly summaries per (space, day) in process memory.
// Keying on the day makes a summary go stale at midnight even without writes.
type SummaryCache struct {
	store *gocache.Cache
}

var _ interfaces.ISummaryCache = (*SummaryCache)(nil)

func NewSummaryCache(ttl time.Duration) *SummaryCache {
	return &SummaryCache{store: gocache.New(ttl, 2*ttl)}
}

func (c *SummaryCache) Get(ownerSpaceID string, asOf calendar.Date) (entities.MonthlySummary, bool) {
	v, ok := c.store.Get(key(ownerSpaceID, asOf))
	if !ok {
		return entities.MonthlySummary{}, false
	}
	summary, ok := v.(entities.MonthlySummary)
	return summary, ok
}

func (c *SummaryCache) Set(summary entities.MonthlySummary) {
	c.store.SetDefault(key(summary.OwnerSpaceID, summary.AsOf), summary)
}

// Invalidate drops every cached day of the space.
func (c *SummaryCache) Invalidate(ownerSpaceID string) {
	prefix := ownerSpaceID + keySeparator
	for k := range c.store.Items() {
		if strings.HasPrefix(k, prefix) {
			c.store.Delete(k)
		}
	}
}

func key(ownerSpaceID string, asOf calendar.Date) string {
	return ownerSpaceID + keySeparator + asOf.String()
}
