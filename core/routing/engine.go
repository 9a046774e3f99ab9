package routing

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/str8zero/str8zero/core/mood"
)

// moodThreshold is the normalized score a mood must exceed before a mood rule
// fires.
const moodThreshold = 0.7

// Decision is the outcome of routing one request.
type Decision struct {
	Agent     string
	Reasoning string
	Cost      float64
	Emotions  mood.EmotionScores
	Syntax    mood.SyntaxFlags
}

// Engine routes requests to agents. Safe for concurrent use; the config may
// be swapped at runtime by the config watcher.
type Engine struct {
	mu        sync.RWMutex
	config    *Config
	detector  *mood.Detector
	estimator *Estimator
	logger    *zap.Logger
}

// EngineConfig configures an Engine. Zero values select the built-in routing
// config, a fresh detector, and a clock-seeded estimator.
type EngineConfig struct {
	Config    *Config
	Detector  *mood.Detector
	Estimator *Estimator
	Logger    *zap.Logger
}

// NewEngine creates a routing engine.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Config == nil {
		cfg.Config = DefaultConfig()
	}
	if cfg.Detector == nil {
		cfg.Detector = mood.NewDetector(mood.DetectorConfig{})
	}
	if cfg.Estimator == nil {
		cfg.Estimator = NewEstimator(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Engine{
		config:    cfg.Config,
		detector:  cfg.Detector,
		estimator: cfg.Estimator,
		logger:    cfg.Logger,
	}
}

// SetConfig swaps the routing config. Requests already in flight keep the
// config they started with.
func (e *Engine) SetConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	e.mu.Lock()
	e.config = cfg
	e.mu.Unlock()
}

// Config returns the active routing config.
func (e *Engine) Config() *Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.config
}

// Route picks the agent for a request. Precedence: manual override, then mood
// rules in declared order, then syntax rules in declared order, then the
// task fallback, then the config-wide default. Every outcome carries a
// human-readable reasoning line and a cost estimate.
func (e *Engine) Route(text, task, override string) Decision {
	emotions := e.detector.Classify(text)
	syntax := e.detector.MatchSyntax(text)

	agent, reasoning := e.selectAgent(emotions, syntax, task, override)

	decision := Decision{
		Agent:     agent,
		Reasoning: reasoning,
		Cost:      e.estimator.Estimate(agent, task),
		Emotions:  emotions,
		Syntax:    syntax,
	}

	e.logger.Debug("routed request",
		zap.String("task", task),
		zap.String("agent", decision.Agent),
		zap.String("reasoning", decision.Reasoning),
		zap.Float64("cost", decision.Cost),
	)
	return decision
}

func (e *Engine) selectAgent(emotions mood.EmotionScores, syntax mood.SyntaxFlags, task, override string) (string, string) {
	if override != "" {
		return override, fmt.Sprintf("Manual override to %s", override)
	}

	e.mu.RLock()
	cfg := e.config
	e.mu.RUnlock()

	prefs, ok := cfg.Preferences[task]
	if !ok {
		return cfg.Defaults.Agent, fmt.Sprintf("No specific routing for %s, using default", task)
	}

	for _, rule := range prefs.Mood {
		if score, present := emotions[rule.Key]; present && score > moodThreshold {
			return rule.Agent, fmt.Sprintf("%s mood (%.1f) matched to %s", rule.Key, score, rule.Agent)
		}
	}

	for _, rule := range prefs.Syntax {
		if syntax[rule.Key] {
			return rule.Agent, fmt.Sprintf("%s syntax matched to %s", rule.Key, rule.Agent)
		}
	}

	return prefs.Fallback, fmt.Sprintf("Fallback to %s for %s", prefs.Fallback, task)
}
