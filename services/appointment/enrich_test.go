package appointment

import (
	"context"
	"testing"
	"time"

	"stylebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSummaryCache struct {
	entries map[string]string
	sets    int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: map[string]string{}}
}

func (f *fakeSummaryCache) Get(ctx context.Context, key string) (string, bool) {
	v, ok := f.entries[key]
	return v, ok
}

func (f *fakeSummaryCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	f.entries[key] = value
	f.sets++
}

func TestEnrich_StylistSummaryServedFromCache(t *testing.T) {
	svc, _ := newTestService(newFakeBookingStore())
	stylists := svc.Stylists.(*fakeStylistStore)
	stylists.byUserID["sty-user-1"] = &models.Stylist{
		ID: "sty-1", UserID: "sty-user-1", Pseudo: "Lou", City: "Paris",
	}
	cache := newFakeSummaryCache()
	svc.Cache = cache

	b := &models.Booking{
		ID: "b1", UserID: "u1", StylistID: "sty-user-1", ServiceID: "svc-1",
		Date: "2026-08-25", Status: models.StatusPending, CreatedAt: testNow,
	}

	first := svc.enrich(context.Background(), b, testNow)
	second := svc.enrich(context.Background(), b, testNow)

	require.NotNil(t, first.Stylist)
	require.NotNil(t, second.Stylist)
	assert.Equal(t, "Lou", second.Stylist.Pseudo)
	assert.Equal(t, 1, stylists.userLookups)
	assert.Equal(t, 1, cache.sets)
}

func TestEnrich_SalonSummaryServedFromCache(t *testing.T) {
	svc, _ := newTestService(newFakeBookingStore())
	salons := svc.Salons.(*fakeSalonStore)
	cache := newFakeSummaryCache()
	svc.Cache = cache

	b := &models.Booking{
		ID: "b1", UserID: "u1", SalonID: "salon-1", ServiceID: "svc-1",
		Date: "2026-08-25", Status: models.StatusPending, CreatedAt: testNow,
	}

	svc.enrich(context.Background(), b, testNow)
	second := svc.enrich(context.Background(), b, testNow)

	require.NotNil(t, second.Salon)
	assert.Equal(t, "Chez Lou", second.Salon.Name)
	assert.Equal(t, 1, salons.lookups)
}

func TestEnrich_NilCacheAlwaysHitsDirectory(t *testing.T) {
	svc, _ := newTestService(newFakeBookingStore())
	stylists := svc.Stylists.(*fakeStylistStore)
	stylists.byUserID["sty-user-1"] = &models.Stylist{ID: "sty-1", UserID: "sty-user-1"}

	b := &models.Booking{
		ID: "b1", UserID: "u1", StylistID: "sty-user-1", ServiceID: "svc-1",
		Date: "2026-08-25", Status: models.StatusPending, CreatedAt: testNow,
	}

	svc.enrich(context.Background(), b, testNow)
	svc.enrich(context.Background(), b, testNow)

	assert.Equal(t, 2, stylists.userLookups)
}
