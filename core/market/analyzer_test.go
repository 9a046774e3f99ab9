package market

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "market.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAnalyzeRefreshesEmptyStore(t *testing.T) {
	store := newTestStore(t)
	a := NewAnalyzer(AnalyzerConfig{Store: store, Rand: rand.New(rand.NewSource(1))})

	report, err := a.Analyze("", nil)
	require.NoError(t, err)
	assert.Equal(t, sampleAppCount, report.AppsAnalyzed)

	_, ok, err := store.LastUpdated()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAnalyzeSkipsFreshSnapshot(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().UTC()
	require.NoError(t, store.Replace(testApps(now), now.Add(-time.Hour)))

	a := NewAnalyzer(AnalyzerConfig{Store: store, Now: func() time.Time { return now }})

	report, err := a.Analyze("", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report.AppsAnalyzed)
}

func TestAnalyzeRefreshesStaleSnapshot(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().UTC()
	require.NoError(t, store.Replace(testApps(now), now.AddDate(0, 0, -8)))

	a := NewAnalyzer(AnalyzerConfig{
		Store: store,
		Rand:  rand.New(rand.NewSource(1)),
		Now:   func() time.Time { return now },
	})

	report, err := a.Analyze("", nil)
	require.NoError(t, err)
	assert.Equal(t, sampleAppCount, report.AppsAnalyzed)
}

func TestAnalyzeCategoryFilter(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().UTC()
	require.NoError(t, store.Replace(testApps(now), now))

	a := NewAnalyzer(AnalyzerConfig{Store: store, Now: func() time.Time { return now }})

	report, err := a.Analyze("Finance", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.AppsAnalyzed)
	assert.Equal(t, "Bill Hawk", report.Competition.TopCompetitors[0].Name)
}

func TestAnalyzeKeywordFilter(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().UTC()
	require.NoError(t, store.Replace(testApps(now), now))

	a := NewAnalyzer(AnalyzerConfig{Store: store, Now: func() time.Time { return now }})

	report, err := a.Analyze("", []string{"calendar"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.AppsAnalyzed)
	assert.Equal(t, "Calm Calendar", report.Competition.TopCompetitors[0].Name)
}

func TestIdentifyOpportunities(t *testing.T) {
	now := time.Now().UTC()
	a := NewAnalyzer(AnalyzerConfig{Now: func() time.Time { return now }})

	apps := []App{
		// Underserved: low rating, high downloads.
		{ID: "a", Name: "Meh Money", Category: "finance", Rating: 3.0, Downloads: 200000, PriceModel: "free", LastUpdated: now},
		// Premium niche: few apps, paid, avg price above 3.
		{ID: "b", Name: "Zen Pro", Category: "health", Rating: 4.6, Price: 5.50, Downloads: 2000, PriceModel: "paid", LastUpdated: now},
		// Outdated: popular but stale.
		{ID: "c", Name: "Old Timer", Category: "utilities", Rating: 4.4, Downloads: 500000, PriceModel: "free", LastUpdated: now.AddDate(0, -8, 0)},
	}

	ops := a.identifyOpportunities(apps)

	var types []string
	for _, op := range ops {
		types = append(types, op.Type)
	}
	assert.Contains(t, types, "underserved_category")
	assert.Contains(t, types, "premium_niche")
	assert.Contains(t, types, "outdated_app")

	for _, op := range ops {
		switch op.Type {
		case "underserved_category":
			assert.Equal(t, "finance", op.Category)
			assert.Equal(t, 3.0, op.AvgRating)
			assert.Equal(t, 200000, op.TotalDownloads)
		case "premium_niche":
			assert.Equal(t, "health", op.Category)
			assert.Equal(t, 5.50, op.AvgPrice)
			assert.Equal(t, 1, op.AppCount)
		case "outdated_app":
			assert.Equal(t, "Old Timer", op.AppName)
			assert.Greater(t, op.MonthsSinceUpdate, 6.0)
		}
	}
}

func TestIdentifyTrends(t *testing.T) {
	apps := []App{
		{PriceModel: "free"},
		{PriceModel: "free"},
		{PriceModel: "paid", Price: 2.99},
		{PriceModel: "subscription", Price: 9.99},
	}

	trends := identifyTrends(apps)
	require.Len(t, trends, 2)

	models := trends[0]
	assert.Equal(t, "Monetization Models", models.Name)
	assert.Equal(t, 50.0, models.Data["free"])
	assert.Equal(t, 25.0, models.Data["paid"])

	prices := trends[1]
	assert.Equal(t, "Average Prices", prices.Name)
	assert.Equal(t, 2.99, prices.Data["paid"])
	assert.Equal(t, 9.99, prices.Data["subscription"])
}

func TestAnalyzeCompetitionLevels(t *testing.T) {
	assert.Equal(t, "unknown", analyzeCompetition(nil).Level)

	makeApps := func(n int) []App {
		apps := make([]App, n)
		for i := range apps {
			apps[i] = App{Name: "x", Downloads: i}
		}
		return apps
	}

	assert.Equal(t, "very low", analyzeCompetition(makeApps(3)).Level)
	assert.Equal(t, "low", analyzeCompetition(makeApps(6)).Level)
	assert.Equal(t, "medium", analyzeCompetition(makeApps(11)).Level)
	assert.Equal(t, "high", analyzeCompetition(makeApps(21)).Level)
	assert.Equal(t, "very high", analyzeCompetition(makeApps(51)).Level)
}

func TestAnalyzeCompetitionTopFive(t *testing.T) {
	apps := []App{
		{Name: "third", Downloads: 100},
		{Name: "first", Downloads: 900},
		{Name: "second", Downloads: 500},
	}

	comp := analyzeCompetition(apps)
	require.Len(t, comp.TopCompetitors, 3)
	assert.Equal(t, "first", comp.TopCompetitors[0].Name)
	assert.Equal(t, "second", comp.TopCompetitors[1].Name)
	assert.Equal(t, "third", comp.TopCompetitors[2].Name)
}
