package pipeline

import (
	"fmt"
	"math"
)

func (o *Orchestrator) generateMarketingPlan(intent Intent, logic AppLogic) MarketingPlan {
	keywords := generateASOKeywords(logic.AppType, intent.Domain)
	channels := selectMarketingChannels(logic.AppType)

	return MarketingPlan{
		ASOKeywords:  keywords,
		AdCopy:       o.generateAdCopy(logic),
		Channels:     channels,
		Budget:       allocateBudget(channels),
		EstimatedCAC: estimateCAC(logic.AppType, channels),
		EstimatedROI: estimateROI(logic.AppType, channels, logic.Features),
	}
}

func generateASOKeywords(appType, domain string) []string {
	var keywords []string

	switch domain {
	case "billing":
		keywords = []string{"bill tracker", "utility monitor", "expense alert", "bill management"}
	case "scheduling":
		keywords = []string{"appointment", "scheduler", "calendar", "reminder", "time management"}
	case "decluttering":
		keywords = []string{"organize", "declutter", "donation", "minimalism", "tidy"}
	default:
		keywords = []string{"app", "utility", "tool", "helper"}
	}

	switch appType {
	case "bill_monitor":
		keywords = append(keywords, "bill alert", "utility tracker", "expense monitor")
	case "scheduler":
		keywords = append(keywords, "appointment booker", "time saver", "calendar sync")
	}

	return append(keywords, "free", "easy", "simple", "fast", "efficient")
}

func (o *Orchestrator) generateAdCopy(logic AppLogic) AdCopy {
	name := humanize(logic.AppType)
	plain := humanizeLower(logic.AppType)

	headlines := []string{
		fmt.Sprintf("Never Worry About %s Again", name),
		fmt.Sprintf("The Smartest %s App You'll Ever Use", name),
		fmt.Sprintf("Simplify Your Life with Our %s Solution", name),
	}
	descriptions := []string{
		fmt.Sprintf("Effortlessly manage %ss with our intuitive app.", plain),
		fmt.Sprintf("Save time and reduce stress with automated %s management.", plain),
		fmt.Sprintf("Join thousands of satisfied users who've simplified their %s process.", plain),
	}
	ctas := []string{
		"Download Now - Free!",
		"Try It Today",
		"Start Simplifying Now",
	}

	bullets := make([]string, 0, 3)
	for i, feature := range logic.Features {
		if i == 3 {
			break
		}
		bullets = append(bullets, "• "+humanize(feature))
	}

	return AdCopy{
		Headline:    o.pick(headlines),
		Description: o.pick(descriptions),
		Features:    bullets,
		CTA:         o.pick(ctas),
	}
}

func selectMarketingChannels(appType string) []string {
	channels := []string{"App Store", "Google Play"}

	switch appType {
	case "bill_monitor":
		channels = append(channels, "Facebook", "Google Search", "Finance Forums")
	case "scheduler":
		channels = append(channels, "LinkedIn", "Productivity Blogs", "Google Search")
	case "donation_pickup":
		channels = append(channels, "Facebook", "Local Community Groups", "Charity Networks")
	}
	return channels
}

func allocateBudget(channels []string) map[string]float64 {
	const totalBudget = 1000.0

	perChannel := round2(totalBudget / float64(len(channels)))
	allocation := make(map[string]float64, len(channels))
	for _, channel := range channels {
		allocation[channel] = perChannel
	}
	return allocation
}

var baseCAC = map[string]float64{
	"bill_monitor":    2.50,
	"scheduler":       3.75,
	"donation_pickup": 1.85,
}

var channelCACMultipliers = map[string]float64{
	"App Store":              1.0,
	"Google Play":            1.1,
	"Facebook":               1.2,
	"Google Search":          1.5,
	"LinkedIn":               2.0,
	"Productivity Blogs":     0.8,
	"Finance Forums":         0.7,
	"Local Community Groups": 0.5,
	"Charity Networks":       0.6,
}

func estimateCAC(appType string, channels []string) float64 {
	base, ok := baseCAC[appType]
	if !ok {
		base = 3.00
	}

	var total float64
	for _, channel := range channels {
		mult, ok := channelCACMultipliers[channel]
		if !ok {
			mult = 1.0
		}
		total += mult
	}
	return round2(base * total / float64(len(channels)))
}

var baseROI = map[string]float64{
	"bill_monitor":    2.5,
	"scheduler":       3.0,
	"donation_pickup": 1.8,
}

func estimateROI(appType string, channels, features []string) float64 {
	base, ok := baseROI[appType]
	if !ok {
		base = 2.0
	}

	featureMult := math.Min(1.0+float64(len(features))*0.1, 1.5)
	channelMult := math.Min(1.0+float64(len(channels))*0.05, 1.3)
	return round2(base * featureMult * channelMult)
}
