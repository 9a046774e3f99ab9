// Package pipeline turns a prompt into a full app blueprint through a fixed
// stage sequence: interpret, logic, UI, monetization, marketing, deploy.
package pipeline

import (
	"time"

	"github.com/google/uuid"
)

// Intent is the semantic reading of a prompt.
type Intent struct {
	Goal    string `json:"goal"`
	Emotion string `json:"emotion"`
	Domain  string `json:"domain"`
}

// AppLogic is the generated app blueprint.
type AppLogic struct {
	AppType  string   `json:"app_type"`
	Features []string `json:"features"`
}

// UITheme is the generated interface direction.
type UITheme struct {
	Theme       string `json:"theme"`
	ColorScheme string `json:"color_scheme"`
	Layout      string `json:"layout"`
}

// PricingTier is one entry of a monetization plan. Rate is set instead of
// Price for percentage-based tiers.
type PricingTier struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Rate     string   `json:"rate,omitempty"`
	Billing  string   `json:"billing,omitempty"`
	Features []string `json:"features"`
}

// StripeProduct mirrors one Stripe product/price pair.
type StripeProduct struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	PriceID    string  `json:"price_id"`
	UnitAmount float64 `json:"unit_amount"`
	Currency   string  `json:"currency"`
	Recurring  string  `json:"recurring,omitempty"`
}

// StripeConfig is the payment wiring for the plan.
type StripeConfig struct {
	Products   []StripeProduct `json:"products"`
	WebhookURL string          `json:"webhook_url"`
	SuccessURL string          `json:"success_url"`
	CancelURL  string          `json:"cancel_url"`
}

// RevenueEstimate projects the plan's earning potential.
type RevenueEstimate struct {
	MAU            int     `json:"estimated_mau"`
	PayingUsers    int     `json:"estimated_paying_users"`
	MonthlyRevenue float64 `json:"estimated_monthly_revenue"`
	AnnualRevenue  float64 `json:"estimated_annual_revenue"`
}

// FeeBypass describes how the plan avoids app store fees.
type FeeBypass struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Savings     string `json:"savings"`
}

// MonetizationPlan is the full revenue configuration.
type MonetizationPlan struct {
	Model     string          `json:"model"`
	Pricing   []PricingTier   `json:"pricing"`
	Stripe    StripeConfig    `json:"stripe_config"`
	Revenue   RevenueEstimate `json:"revenue_potential"`
	FeeBypass FeeBypass       `json:"fee_bypass_strategy"`
}

// AdCopy is generated advertising text.
type AdCopy struct {
	Headline    string   `json:"headline"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	CTA         string   `json:"cta"`
}

// MarketingPlan is the launch strategy for the app.
type MarketingPlan struct {
	ASOKeywords  []string           `json:"aso_keywords"`
	AdCopy       AdCopy             `json:"ad_copy"`
	Channels     []string           `json:"channels"`
	Budget       map[string]float64 `json:"budget_allocation"`
	EstimatedCAC float64            `json:"estimated_cac"`
	EstimatedROI float64            `json:"estimated_roi"`
}

// Deployment describes where the app ships.
type Deployment struct {
	Targets      []string `json:"targets"`
	Status       string   `json:"status"`
	Instructions string   `json:"instructions"`
}

// Result is the complete output of one build.
type Result struct {
	ID           uuid.UUID        `json:"id"`
	Timestamp    time.Time        `json:"timestamp"`
	Prompt       string           `json:"prompt"`
	Intent       Intent           `json:"intent"`
	Logic        AppLogic         `json:"logic"`
	UI           UITheme          `json:"visual"`
	Monetization MonetizationPlan `json:"monetization"`
	Marketing    MarketingPlan    `json:"marketing"`
	Deployment   Deployment       `json:"deployment"`
}
