package routing

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

var baseCosts = map[string]float64{
	"Aider":       0.05,
	"Codex CLI":   0.10,
	"Gemini CLI":  0.08,
	"Claude Code": 0.15,
}

var taskMultipliers = map[string]float64{
	"app-gen":  2.0,
	"deploy":   1.5,
	"monetize": 1.2,
	"vibe-gen": 0.8,
}

const (
	defaultBaseCost   = 0.10
	defaultMultiplier = 1.0
)

// Estimator produces per-dispatch cost estimates with a small random jitter.
type Estimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEstimator creates an Estimator. A nil rng is seeded from the clock; tests
// pass a pinned source for deterministic output.
func NewEstimator(rng *rand.Rand) *Estimator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Estimator{rng: rng}
}

// Estimate returns the projected cost in dollars for agent handling task,
// rounded to cents. Unknown agents and tasks use flat defaults, so the
// estimate never fails.
func (e *Estimator) Estimate(agent, task string) float64 {
	base, ok := baseCosts[agent]
	if !ok {
		base = defaultBaseCost
	}
	mult, ok := taskMultipliers[task]
	if !ok {
		mult = defaultMultiplier
	}

	e.mu.Lock()
	jitter := 0.9 + e.rng.Float64()*0.2
	e.mu.Unlock()

	return math.Round(base*mult*jitter*100) / 100
}
