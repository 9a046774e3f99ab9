package agents

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var vibeTemplates = []string{
	"'%s' gives off cosmic rebel energy with neon undertones",
	"'%s' feels like digital nostalgia with futuristic optimism",
	"'%s' embodies chaotic harmony with structured rebellion",
	"'%s' resonates with quantum possibilities and analog warmth",
	"'%s' channels cyberpunk aesthetics with spiritual undertones",
}

var (
	titleMu sync.Mutex
	titler  = cases.Title(language.English)
)

// appDirName derives a directory name for a generated app from its prompt,
// title-cased with the spaces squeezed out.
func appDirName(prompt string) string {
	titleMu.Lock()
	titled := titler.String(prompt)
	titleMu.Unlock()
	return strings.ReplaceAll(titled, " ", "")
}

// Simulator fabricates a plausible result for any request. It is the last
// dispatch tier and never fails, so the CLI always produces something even
// with no agents installed or configured.
type Simulator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	appsDir string
}

// NewSimulator creates a Simulator. A nil rng is seeded from the clock;
// appsDir is where generated apps are reported to live.
func NewSimulator(rng *rand.Rand, appsDir string) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{rng: rng, appsDir: appsDir}
}

// Simulate produces a successful result for req, attributed to agent.
func (s *Simulator) Simulate(agent string, req Request) Result {
	res := Result{Agent: agent, Success: true, Simulated: true}

	switch req.Task {
	case TaskVibeGen:
		s.mu.Lock()
		template := vibeTemplates[s.rng.Intn(len(vibeTemplates))]
		s.mu.Unlock()
		res.Output = fmt.Sprintf(template, req.Prompt)

	case TaskAppGen:
		name := appDirName(req.Prompt)
		res.Output = fmt.Sprintf("App '%s' generated successfully!", name)
		if s.appsDir != "" {
			res.Dir = filepath.Join(s.appsDir, name)
		}

	case TaskDeploy:
		platforms := []string{"android", "ios", "web"}
		if req.Platform != "" && req.Platform != "all" {
			platforms = []string{req.Platform}
		}
		lines := make([]string, len(platforms))
		for i, p := range platforms {
			lines[i] = fmt.Sprintf("Deployed to %s successfully!", strings.ToUpper(p))
		}
		res.Output = strings.Join(lines, "\n")

	case TaskMonetize:
		res.Output = "Monetization configured successfully! Subscription tiers: $4.99, $9.99, $19.99"

	default:
		res.Output = fmt.Sprintf("Processed: %s", req.Prompt)
	}

	return res
}
