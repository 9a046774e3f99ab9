package market

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// staleAfter is how old a market snapshot may get before Analyze refreshes it.
const staleAfter = 7 * 24 * time.Hour

const sampleAppCount = 100

var categories = []string{
	"productivity", "finance", "lifestyle", "health",
	"utilities", "social", "education", "entertainment",
}

var priceModels = []string{"free", "paid", "freemium", "subscription"}

// Opportunity is one identified market gap.
type Opportunity struct {
	Type              string  `json:"type"`
	Category          string  `json:"category"`
	AppName           string  `json:"app_name,omitempty"`
	AvgRating         float64 `json:"avg_rating,omitempty"`
	TotalDownloads    int     `json:"total_downloads,omitempty"`
	AppCount          int     `json:"app_count,omitempty"`
	AvgPrice          float64 `json:"avg_price,omitempty"`
	Downloads         int     `json:"downloads,omitempty"`
	MonthsSinceUpdate float64 `json:"months_since_update,omitempty"`
	Potential         string  `json:"potential"`
	Description       string  `json:"description"`
}

// Trend is one named distribution over the analyzed apps.
type Trend struct {
	Name string             `json:"name"`
	Data map[string]float64 `json:"data"`
}

// Competitor summarizes one leading app.
type Competitor struct {
	Name       string  `json:"name"`
	Downloads  int     `json:"downloads"`
	Rating     float64 `json:"rating"`
	PriceModel string  `json:"price_model"`
}

// Competition summarizes how crowded the analyzed segment is.
type Competition struct {
	Level          string       `json:"level"`
	AppCount       int          `json:"app_count"`
	TopCompetitors []Competitor `json:"top_competitors"`
}

// Report is the output of one market analysis.
type Report struct {
	Timestamp     time.Time     `json:"timestamp"`
	Category      string        `json:"category,omitempty"`
	Keywords      []string      `json:"keywords,omitempty"`
	AppsAnalyzed  int           `json:"apps_analyzed"`
	Opportunities []Opportunity `json:"opportunities"`
	Trends        []Trend       `json:"market_trends"`
	Competition   Competition   `json:"competition_analysis"`
}

// Analyzer mines the market store. The snapshot is refreshed with simulated
// store data when missing or older than a week.
type Analyzer struct {
	store  *Store
	logger *zap.Logger
	now    func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// AnalyzerConfig configures an Analyzer. Store is required; a nil Rand is
// seeded from the clock and a nil Now uses time.Now.
type AnalyzerConfig struct {
	Store  *Store
	Rand   *rand.Rand
	Now    func() time.Time
	Logger *zap.Logger
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(cfg AnalyzerConfig) *Analyzer {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Analyzer{
		store:  cfg.Store,
		logger: cfg.Logger,
		now:    cfg.Now,
		rng:    cfg.Rand,
	}
}

// Analyze produces a market report, optionally filtered by category and
// keywords.
func (a *Analyzer) Analyze(category string, keywords []string) (*Report, error) {
	if err := a.refreshIfStale(); err != nil {
		return nil, err
	}

	apps, err := a.store.Apps()
	if err != nil {
		return nil, err
	}

	if category != "" {
		var filtered []App
		for _, app := range apps {
			if app.Category == strings.ToLower(category) {
				filtered = append(filtered, app)
			}
		}
		apps = filtered
	}

	if len(keywords) > 0 {
		var filtered []App
		for _, app := range apps {
			if appMatchesKeywords(app, keywords) {
				filtered = append(filtered, app)
			}
		}
		apps = filtered
	}

	return &Report{
		Timestamp:     a.now(),
		Category:      category,
		Keywords:      keywords,
		AppsAnalyzed:  len(apps),
		Opportunities: a.identifyOpportunities(apps),
		Trends:        identifyTrends(apps),
		Competition:   analyzeCompetition(apps),
	}, nil
}

func appMatchesKeywords(app App, keywords []string) bool {
	haystack := strings.ToLower(app.Name + " " + app.Description + " " + strings.Join(app.Keywords, " "))
	for _, keyword := range keywords {
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

func (a *Analyzer) refreshIfStale() error {
	updated, ok, err := a.store.LastUpdated()
	if err != nil {
		return err
	}
	if ok && a.now().Sub(updated) < staleAfter {
		return nil
	}

	a.logger.Info("refreshing market snapshot")
	return a.store.Replace(a.sampleApps(), a.now())
}

// sampleApps simulates an app store crawl.
func (a *Analyzer) sampleApps() []App {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	apps := make([]App, 0, sampleAppCount)
	for i := 0; i < sampleAppCount; i++ {
		category := categories[a.rng.Intn(len(categories))]
		model := priceModels[a.rng.Intn(len(priceModels))]

		var price float64
		switch model {
		case "paid":
			price = round2(0.99 + a.rng.Float64()*9.0)
		case "subscription":
			price = round2(1.99 + a.rng.Float64()*13.0)
		}

		downloads := int(math.Pow(10, 3+a.rng.Float64()*3))

		keywords := make([]string, 3+a.rng.Intn(8))
		for j := range keywords {
			keywords[j] = fmt.Sprintf("keyword_%d", j)
		}

		apps = append(apps, App{
			ID:          fmt.Sprintf("app_%d", i),
			Name:        fmt.Sprintf("Sample App %d", i),
			Description: fmt.Sprintf("This is a sample %s app with various features.", category),
			Category:    category,
			Rating:      math.Round((2.0+a.rng.Float64()*3.0)*10) / 10,
			Reviews:     int(float64(downloads) * (0.01 + a.rng.Float64()*0.09)),
			PriceModel:  model,
			Price:       price,
			Downloads:   downloads,
			LastUpdated: now.AddDate(0, -a.rng.Intn(12), -a.rng.Intn(28)),
			Keywords:    keywords,
		})
	}
	return apps
}

func (a *Analyzer) identifyOpportunities(apps []App) []Opportunity {
	var opportunities []Opportunity

	byCategory := make(map[string][]App)
	for _, app := range apps {
		byCategory[app.Category] = append(byCategory[app.Category], app)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, category := range names {
		group := byCategory[category]

		var ratingSum float64
		var totalDownloads int
		var priceSum float64
		var paidCount int
		for _, app := range group {
			ratingSum += app.Rating
			totalDownloads += app.Downloads
			if app.Price > 0 {
				priceSum += app.Price
				paidCount++
			}
		}
		avgRating := ratingSum / float64(len(group))
		var avgPrice float64
		if paidCount > 0 {
			avgPrice = priceSum / float64(paidCount)
		}

		if avgRating < 4.0 && totalDownloads > 100000 {
			opportunities = append(opportunities, Opportunity{
				Type:           "underserved_category",
				Category:       category,
				AvgRating:      math.Round(avgRating*10) / 10,
				TotalDownloads: totalDownloads,
				Potential:      "high",
				Description:    fmt.Sprintf("Underserved %s market with high demand but low satisfaction", category),
			})
		}

		if len(group) < 10 && avgPrice > 3.0 {
			opportunities = append(opportunities, Opportunity{
				Type:        "premium_niche",
				Category:    category,
				AppCount:    len(group),
				AvgPrice:    round2(avgPrice),
				Potential:   "medium",
				Description: fmt.Sprintf("Premium niche in %s with few competitors but higher price points", category),
			})
		}
	}

	now := a.now()
	for _, app := range apps {
		if app.Downloads <= 100000 {
			continue
		}
		months := now.Sub(app.LastUpdated).Hours() / 24 / 30
		if months > 6 {
			opportunities = append(opportunities, Opportunity{
				Type:              "outdated_app",
				Category:          app.Category,
				AppName:           app.Name,
				Downloads:         app.Downloads,
				MonthsSinceUpdate: math.Round(months*10) / 10,
				Potential:         "high",
				Description:       fmt.Sprintf("Popular app not updated in %.1f months", math.Round(months*10)/10),
			})
		}
	}

	return opportunities
}

func identifyTrends(apps []App) []Trend {
	modelCounts := make(map[string]float64)
	for _, app := range apps {
		modelCounts[app.PriceModel]++
	}

	percentages := make(map[string]float64, len(modelCounts))
	if len(apps) > 0 {
		for model, count := range modelCounts {
			percentages[model] = math.Round(count/float64(len(apps))*1000) / 10
		}
	}

	avgPrices := make(map[string]float64)
	for _, model := range []string{"paid", "subscription"} {
		var sum float64
		var count int
		for _, app := range apps {
			if app.PriceModel == model {
				sum += app.Price
				count++
			}
		}
		if count > 0 {
			avgPrices[model] = round2(sum / float64(count))
		}
	}

	return []Trend{
		{Name: "Monetization Models", Data: percentages},
		{Name: "Average Prices", Data: avgPrices},
	}
}

func analyzeCompetition(apps []App) Competition {
	if len(apps) == 0 {
		return Competition{Level: "unknown", TopCompetitors: []Competitor{}}
	}

	sorted := make([]App, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Downloads != sorted[j].Downloads {
			return sorted[i].Downloads > sorted[j].Downloads
		}
		return sorted[i].Name < sorted[j].Name
	})

	top := make([]Competitor, 0, 5)
	for _, app := range sorted {
		if len(top) == 5 {
			break
		}
		top = append(top, Competitor{
			Name:       app.Name,
			Downloads:  app.Downloads,
			Rating:     app.Rating,
			PriceModel: app.PriceModel,
		})
	}

	var level string
	switch {
	case len(apps) > 50:
		level = "very high"
	case len(apps) > 20:
		level = "high"
	case len(apps) > 10:
		level = "medium"
	case len(apps) > 5:
		level = "low"
	default:
		level = "very low"
	}

	return Competition{Level: level, AppCount: len(apps), TopCompetitors: top}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
