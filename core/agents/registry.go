package agents

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds user-registered custom agents. Custom agents take precedence
// over the built-ins at dispatch time.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Agent
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]Agent)}
}

// Register adds an agent under its own name. Names are unique.
func (r *Registry) Register(agent Agent) error {
	if agent == nil {
		return fmt.Errorf("agents: cannot register nil agent")
	}
	name := agent.Name()
	if name == "" {
		return fmt.Errorf("agents: agent name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.agents[name]; exists {
		return fmt.Errorf("agents: agent %q already registered", name)
	}
	r.agents[name] = agent
	return nil
}

// Get returns the agent registered under name.
func (r *Registry) Get(name string) (Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agent, ok := r.agents[name]
	return agent, ok
}

// Names returns the registered agent names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
