package market

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApps(now time.Time) []App {
	return []App{
		{
			ID: "app_0", Name: "Bill Hawk", Description: "Tracks utility bills.",
			Category: "finance", Rating: 3.2, Reviews: 120, PriceModel: "subscription",
			Price: 4.99, Downloads: 250000, LastUpdated: now.AddDate(0, -1, 0),
			Keywords: []string{"bills", "tracker"},
		},
		{
			ID: "app_1", Name: "Calm Calendar", Description: "A gentle scheduler.",
			Category: "productivity", Rating: 4.7, Reviews: 80, PriceModel: "free",
			Price: 0, Downloads: 5000, LastUpdated: now,
			Keywords: []string{"calendar"},
		},
	}
}

func TestStoreReplaceAndApps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.db")
	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Replace(testApps(now), now))

	apps, err := store.Apps()
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "Bill Hawk", apps[0].Name)
	assert.Equal(t, []string{"bills", "tracker"}, apps[0].Keywords)
	assert.Equal(t, 250000, apps[0].Downloads)
}

func TestStoreLastUpdatedPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.db")
	now := time.Now().UTC().Truncate(time.Second)

	store, err := OpenStore(path)
	require.NoError(t, err)

	_, ok, err := store.LastUpdated()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Replace(testApps(now), now))
	require.NoError(t, store.Close())

	reopened, err := OpenStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	updated, ok, err := reopened.LastUpdated()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, updated.Equal(now))

	apps, err := reopened.Apps()
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestStoreReplaceOverwritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.db")
	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Replace(testApps(now), now))
	require.NoError(t, store.Replace(testApps(now)[:1], now.Add(time.Hour)))

	apps, err := store.Apps()
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	updated, ok, err := store.LastUpdated()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, updated.Equal(now.Add(time.Hour)))
}
