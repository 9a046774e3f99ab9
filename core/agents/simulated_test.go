package agents

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateVibeGen(t *testing.T) {
	s := NewSimulator(rand.New(rand.NewSource(1)), "")

	res := s.Simulate("Gemini CLI", Request{Prompt: "neon skyline", Task: TaskVibeGen})
	assert.True(t, res.Success)
	assert.True(t, res.Simulated)
	assert.Equal(t, "Gemini CLI", res.Agent)
	assert.True(t, strings.HasPrefix(res.Output, "'neon skyline'"), res.Output)
}

func TestSimulateAppGen(t *testing.T) {
	appsDir := t.TempDir()
	s := NewSimulator(nil, appsDir)

	res := s.Simulate("Aider", Request{Prompt: "expense tracker", Task: TaskAppGen})
	assert.True(t, res.Success)
	assert.Equal(t, "App 'ExpenseTracker' generated successfully!", res.Output)
	assert.Equal(t, filepath.Join(appsDir, "ExpenseTracker"), res.Dir)
}

func TestSimulateDeploy(t *testing.T) {
	s := NewSimulator(nil, "")

	all := s.Simulate("Aider", Request{Prompt: "ship it", Task: TaskDeploy, Platform: "all"})
	assert.Equal(t, 3, len(strings.Split(all.Output, "\n")))
	assert.Contains(t, all.Output, "Deployed to ANDROID successfully!")
	assert.Contains(t, all.Output, "Deployed to IOS successfully!")
	assert.Contains(t, all.Output, "Deployed to WEB successfully!")

	single := s.Simulate("Aider", Request{Prompt: "ship it", Task: TaskDeploy, Platform: "ios"})
	assert.Equal(t, "Deployed to IOS successfully!", single.Output)
}

func TestSimulateMonetize(t *testing.T) {
	s := NewSimulator(nil, "")

	res := s.Simulate("Claude Code", Request{Prompt: "pro plan", Task: TaskMonetize})
	assert.Contains(t, res.Output, "Monetization configured successfully!")
}

func TestSimulateUnknownTask(t *testing.T) {
	s := NewSimulator(nil, "")

	res := s.Simulate("Aider", Request{Prompt: "hello", Task: "mystery"})
	assert.True(t, res.Success)
	assert.Equal(t, "Processed: hello", res.Output)
}

func TestSimulateDeterministicWithPinnedSeed(t *testing.T) {
	a := NewSimulator(rand.New(rand.NewSource(9)), "")
	b := NewSimulator(rand.New(rand.NewSource(9)), "")

	for i := range 10 {
		prompt := fmt.Sprintf("prompt %d", i)
		assert.Equal(t,
			a.Simulate("Aider", Request{Prompt: prompt, Task: TaskVibeGen}),
			b.Simulate("Aider", Request{Prompt: prompt, Task: TaskVibeGen}),
		)
	}
}

func TestAppDirName(t *testing.T) {
	assert.Equal(t, "ExpenseTracker", appDirName("expense tracker"))
	assert.Equal(t, "BillMonitor", appDirName("BILL monitor"))
}
