package mood

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

// SyntaxFlags maps every declared pattern category to whether the text
// matched it. All categories are always present, defaulting false.
type SyntaxFlags map[string]bool

// PatternSet maps a category name to the regex word-patterns that signal it.
type PatternSet map[string][]string

// phraseRule force-sets a category when the text contains the phrase,
// independent of the pattern pass.
type phraseRule struct {
	phrase   string
	category string
}

var phraseRules = []phraseRule{
	{"create a ui", "sketch-based"},
	{"design an interface", "sketch-based"},
	{"improve performance", "code-refactor"},
	{"make it faster", "code-refactor"},
	{"project structure", "multi-file"},
	{"organize code", "multi-file"},
	{"connect to", "API-bindings"},
	{"integrate with", "API-bindings"},
}

// DefaultPatterns returns the built-in syntax pattern set.
func DefaultPatterns() PatternSet {
	return PatternSet{
		"sketch-based": {
			"sketch", "design", "wireframe", "mockup", "prototype",
			"layout", "ui", "ux", "interface", "visual",
		},
		"code-refactor": {
			"refactor", "improve", "optimize", "clean", "restructure",
			"rewrite", "enhance", "upgrade", "modernize", "fix",
		},
		"multi-file": {
			"files", "project", "codebase", "repository", "directory",
			"structure", "organize", "architecture", "system", "framework",
		},
		"API-bindings": {
			"api", "connect", "integrate", "binding", "interface",
			"endpoint", "service", "request", "response", "data",
		},
	}
}

// LoadPatterns reads the syntax pattern document at path, falling back to the
// built-in set (persisted best-effort) when it is missing or corrupt.
func LoadPatterns(path string, logger *zap.Logger) PatternSet {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err == nil {
		var ps PatternSet
		if jsonErr := json.Unmarshal(data, &ps); jsonErr == nil && len(ps) > 0 {
			return ps
		}
		logger.Warn("corrupt syntax patterns, using built-in default", zap.String("path", path))
	}

	ps := DefaultPatterns()
	persistDocument(path, ps, logger)
	return ps
}
