package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/str8zero/str8zero/core/mood"
	"github.com/str8zero/str8zero/core/profile"
)

// Orchestrator runs the build pipeline. Safe for concurrent builds.
type Orchestrator struct {
	detector *mood.Detector
	profiles *profile.Store
	logger   *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Config configures an Orchestrator. Detector and Profiles are required;
// a nil Rand is seeded from the clock.
type Config struct {
	Detector *mood.Detector
	Profiles *profile.Store
	Logger   *zap.Logger
	Rand     *rand.Rand
}

// New creates an Orchestrator.
func New(cfg Config) *Orchestrator {
	if cfg.Detector == nil {
		cfg.Detector = mood.NewDetector(mood.DetectorConfig{})
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Orchestrator{
		detector: cfg.Detector,
		profiles: cfg.Profiles,
		logger:   cfg.Logger,
		rng:      cfg.Rand,
	}
}

// Build runs the full stage sequence for prompt and appends a summary to
// userID's profile. The result is complete even when profile persistence
// fails; that failure comes back as the error.
func (o *Orchestrator) Build(ctx context.Context, userID, prompt string) (*Result, error) {
	res := &Result{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Prompt:    prompt,
	}

	o.stage(userID, "interpret")
	res.Intent = o.interpret(prompt)

	o.stage(userID, "generate-logic")
	res.Logic = generateAppLogic(res.Intent)

	o.stage(userID, "generate-ui")
	res.UI = generateUI(res.Intent)

	o.stage(userID, "configure-monetization")
	res.Monetization = setupMonetization(res.Logic)

	o.stage(userID, "generate-marketing")
	res.Marketing = o.generateMarketingPlan(res.Intent, res.Logic)

	o.stage(userID, "deploy")
	res.Deployment = deployToTargets(res.Logic)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if o.profiles != nil {
		entry := profile.HistoryEntry{
			Timestamp: res.Timestamp,
			Prompt:    prompt,
			Goal:      res.Intent.Goal,
			Emotion:   res.Intent.Emotion,
			Domain:    res.Intent.Domain,
			AppType:   res.Logic.AppType,
		}
		if err := o.profiles.Append(userID, entry); err != nil {
			return res, fmt.Errorf("record build history: %w", err)
		}
	}

	return res, nil
}

func (o *Orchestrator) stage(userID, name string) {
	o.logger.Info("pipeline stage",
		zap.String("user", userID),
		zap.String("stage", name),
	)
}

func (o *Orchestrator) pick(options []string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return options[o.rng.Intn(len(options))]
}
