package agents

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var (
	musicStyles   = []string{"jazz", "electronic", "classical", "hip-hop", "ambient"}
	musicEmotions = []string{"melancholic", "uplifting", "energetic", "contemplative", "dreamy"}
)

// MusicAgent is a sample custom agent that only handles vibe generation,
// turning a prompt into a musical description. It shows how a custom agent
// declines tasks so the dispatcher falls through to the built-ins.
type MusicAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMusicAgent creates the music agent. A nil rng is seeded from the clock.
func NewMusicAgent(rng *rand.Rand) *MusicAgent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MusicAgent{rng: rng}
}

func (m *MusicAgent) Name() string { return "Music Agent" }

func (m *MusicAgent) Process(_ context.Context, req Request) Result {
	if req.Task != TaskVibeGen {
		return failure(m.Name(), fmt.Sprintf("Music Agent only supports vibe-gen tasks, not %s", req.Task))
	}

	m.mu.Lock()
	style := musicStyles[m.rng.Intn(len(musicStyles))]
	emotion := musicEmotions[m.rng.Intn(len(musicEmotions))]
	m.mu.Unlock()

	output := fmt.Sprintf("'%s' translates to %s %s with subtle rhythmic patterns", req.Prompt, emotion, style)
	if req.Explain {
		output += "\n\nThe prompt was analyzed for emotional tone and translated into musical parameters including tempo, key signature, and instrumentation."
	}
	return success(m.Name(), output)
}
