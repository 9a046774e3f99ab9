// Package routing decides which agent handles a request, combining mood and
// syntax signals from the detector with a user-editable preference config.
package routing

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Rule binds a mood or syntax key to an agent. Rules are evaluated in the
// order they are declared in the config document.
type Rule struct {
	Key   string
	Agent string
}

// RuleList preserves the declaration order of a YAML mapping. Decoding into a
// plain map would lose the order, and order decides ties.
type RuleList []Rule

// UnmarshalYAML decodes a mapping node, keeping its entry order.
func (r *RuleList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("routing: expected mapping for rule list, got %v", node.Kind)
	}
	rules := make(RuleList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		rules = append(rules, Rule{
			Key:   node.Content[i].Value,
			Agent: node.Content[i+1].Value,
		})
	}
	*r = rules
	return nil
}

// MarshalYAML emits the rules as a mapping in declaration order.
func (r RuleList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, rule := range r {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: rule.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: rule.Agent},
		)
	}
	return node, nil
}

// Agent returns the agent bound to key, if any rule declares it.
func (r RuleList) Agent(key string) (string, bool) {
	for _, rule := range r {
		if rule.Key == key {
			return rule.Agent, true
		}
	}
	return "", false
}

// TaskPrefs holds the routing preferences for one task type.
type TaskPrefs struct {
	Mood     RuleList `yaml:"mood,omitempty"`
	Syntax   RuleList `yaml:"syntax,omitempty"`
	Fallback string   `yaml:"fallback,omitempty"`
}

// Defaults holds the config-wide fallbacks.
type Defaults struct {
	Agent string `yaml:"agent"`
}

// Config is the full routing preference document.
type Config struct {
	Preferences map[string]TaskPrefs `yaml:"preferences"`
	Defaults    Defaults             `yaml:"defaults"`
}

// DefaultConfig returns the built-in routing preferences.
func DefaultConfig() *Config {
	return &Config{
		Preferences: map[string]TaskPrefs{
			"vibe-gen": {
				Mood: RuleList{
					{Key: "rebellious", Agent: "Gemini CLI"},
					{Key: "nostalgic", Agent: "Codex CLI"},
				},
				Syntax: RuleList{
					{Key: "sketch-based", Agent: "Gemini CLI"},
				},
				Fallback: "Aider",
			},
			"app-gen": {
				Mood: RuleList{
					{Key: "futuristic", Agent: "Gemini CLI"},
					{Key: "precise", Agent: "Claude Code"},
				},
				Syntax: RuleList{
					{Key: "code-refactor", Agent: "Aider"},
				},
				Fallback: "Codex CLI",
			},
		},
		Defaults: Defaults{Agent: "Aider"},
	}
}

// Load reads the routing config at path. A missing document is created from
// the defaults; a corrupt one falls back to the defaults without overwriting
// the user's file.
func Load(path string, logger *zap.Logger) *Config {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		cfg := DefaultConfig()
		if persistErr := Save(path, cfg); persistErr != nil {
			logger.Warn("persist default routing config",
				zap.String("path", path),
				zap.Error(persistErr),
			)
		}
		return cfg
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil || cfg.Preferences == nil {
		logger.Warn("corrupt routing config, using defaults", zap.String("path", path), zap.Error(err))
		return DefaultConfig()
	}
	if cfg.Defaults.Agent == "" {
		cfg.Defaults.Agent = DefaultConfig().Defaults.Agent
	}
	return &cfg
}

// Save writes the config document to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal routing config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write routing config: %w", err)
	}
	return nil
}
