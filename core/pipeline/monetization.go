package pipeline

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func setupMonetization(logic AppLogic) MonetizationPlan {
	model := selectMonetizationModel(logic)
	pricing := generatePricingTiers(model, logic.Features)

	return MonetizationPlan{
		Model:     model,
		Pricing:   pricing,
		Stripe:    configureStripeProducts(logic.AppType, pricing),
		Revenue:   estimateRevenuePotential(logic.AppType, model, pricing),
		FeeBypass: feeBypassStrategy(model),
	}
}

func selectMonetizationModel(logic AppLogic) string {
	model := "freemium"

	switch logic.AppType {
	case "bill_monitor":
		model = "subscription"
	case "scheduler":
		if len(logic.Features) > 3 {
			model = "subscription"
		}
	case "donation_pickup":
		model = "transaction_fee"
	}

	for _, f := range logic.Features {
		switch f {
		case "premium_content":
			model = "subscription"
		case "in_app_purchases":
			model = "iap"
		}
	}
	return model
}

func generatePricingTiers(model string, features []string) []PricingTier {
	capped := func(n int) []string {
		if n > len(features) {
			n = len(features)
		}
		return features[:n]
	}

	switch model {
	case "freemium":
		return []PricingTier{
			{Name: "Free", Price: 0, Features: capped(2)},
			{Name: "Premium", Price: 4.99, Features: features},
		}
	case "subscription":
		return []PricingTier{
			{Name: "Basic", Price: 4.99, Billing: "monthly", Features: capped(3)},
			{Name: "Pro", Price: 9.99, Billing: "monthly", Features: features},
			{Name: "Annual Pro", Price: 99.99, Billing: "yearly", Features: features},
		}
	case "one_time":
		return []PricingTier{
			{Name: "Full Version", Price: 14.99, Features: features},
		}
	case "transaction_fee":
		return []PricingTier{
			{Name: "Per Transaction", Rate: "5%", Features: features},
		}
	case "iap":
		tiers := make([]PricingTier, 0, len(features))
		for i, feature := range features {
			tiers = append(tiers, PricingTier{
				Name:     humanize(feature) + " Pack",
				Price:    2.99 + float64(i),
				Features: []string{feature},
			})
		}
		return tiers
	}
	return nil
}

func configureStripeProducts(appType string, pricing []PricingTier) StripeConfig {
	productID := "prod_" + strings.ReplaceAll(strings.ToLower(appType), "_", "")

	products := make([]StripeProduct, 0, len(pricing))
	for _, tier := range pricing {
		if tier.Rate == "" && tier.Price <= 0 {
			continue
		}
		products = append(products, StripeProduct{
			ProductID:  productID,
			Name:       fmt.Sprintf("%s - %s", humanize(appType), tier.Name),
			PriceID:    "price_" + strings.ReplaceAll(strings.ToLower(tier.Name), " ", "_"),
			UnitAmount: tier.Price,
			Currency:   "usd",
			Recurring:  tier.Billing,
		})
	}

	return StripeConfig{
		Products:   products,
		WebhookURL: fmt.Sprintf("https://api.yourapp.com/webhooks/stripe/%s", productID),
		SuccessURL: fmt.Sprintf("https://yourapp.com/thanks?product=%s", productID),
		CancelURL:  fmt.Sprintf("https://yourapp.com/cancel?product=%s", productID),
	}
}

var baseMAU = map[string]int{
	"bill_monitor":    5000,
	"scheduler":       8000,
	"donation_pickup": 3000,
}

var conversionRates = map[string]float64{
	"freemium":        0.05,
	"subscription":    0.10,
	"one_time":        0.08,
	"transaction_fee": 0.15,
	"iap":             0.07,
}

func estimateRevenuePotential(appType, model string, pricing []PricingTier) RevenueEstimate {
	mau, ok := baseMAU[appType]
	if !ok {
		mau = 2000
	}
	rate, ok := conversionRates[model]
	if !ok {
		rate = 0.05
	}
	payingUsers := float64(mau) * rate

	var avgPrice float64
	switch model {
	case "freemium", "subscription", "one_time":
		var sum float64
		var paid int
		for _, tier := range pricing {
			if tier.Price > 0 {
				sum += tier.Price
				paid++
			}
		}
		if paid > 0 {
			avgPrice = sum / float64(paid)
		}
	case "transaction_fee":
		// Assume an average transaction value of $50 at a 5% fee.
		avgPrice = 50 * 0.05
	case "iap":
		if len(pricing) > 0 {
			var sum float64
			for _, tier := range pricing {
				sum += tier.Price
			}
			avgPrice = sum / float64(len(pricing)) * 1.5
		}
	}

	monthly := payingUsers * avgPrice
	return RevenueEstimate{
		MAU:            mau,
		PayingUsers:    int(math.Round(payingUsers)),
		MonthlyRevenue: round2(monthly),
		AnnualRevenue:  round2(monthly * 12),
	}
}

var feeBypassStrategies = map[string]FeeBypass{
	"subscription": {
		Name:        "Direct Billing",
		Description: "Implement web-based subscription management outside app stores",
		Savings:     "15-30% of subscription revenue",
	},
	"one_time": {
		Name:        "Web Purchase Unlock",
		Description: "Sell unlock codes on your website that activate the full app",
		Savings:     "15-30% of purchase revenue",
	},
	"iap": {
		Name:        "Web Store Integration",
		Description: "Offer IAPs through web interface with QR code linking",
		Savings:     "15-30% of IAP revenue",
	},
	"transaction_fee": {
		Name:        "Direct Payment Processing",
		Description: "Process transactions directly through Stripe instead of app store",
		Savings:     "15-30% of transaction fees",
	},
	"freemium": {
		Name:        "Web Upgrade Path",
		Description: "Direct premium upgrades to web portal",
		Savings:     "15-30% of premium upgrade revenue",
	},
}

func feeBypassStrategy(model string) FeeBypass {
	if strategy, ok := feeBypassStrategies[model]; ok {
		return strategy
	}
	return FeeBypass{
		Name:        "Standard Processing",
		Description: "No fee bypass implemented",
		Savings:     "0% (standard app store fees apply)",
	}
}

var (
	humanizeMu    sync.Mutex
	humanizeCaser = cases.Title(language.English)
)

func humanize(s string) string {
	humanizeMu.Lock()
	defer humanizeMu.Unlock()
	return humanizeCaser.String(strings.ReplaceAll(s, "_", " "))
}

func humanizeLower(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
