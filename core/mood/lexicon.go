package mood

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Lexicon maps an emotion name to the keywords that signal it. The set of
// emotion names is open: lexicon documents may declare new ones.
type Lexicon map[string][]string

// intensifiers boost a keyword match when they immediately precede it.
var intensifiers = []string{
	"very", "extremely", "deeply", "highly", "incredibly", "truly", "absolutely",
}

// contextRule adds a flat bonus to an emotion when the text contains all of
// the listed words, or any of the listed phrases.
type contextRule struct {
	emotion string
	all     []string
	any     []string
}

var contextRules = []contextRule{
	{emotion: "rebellious", all: []string{"freedom", "expression"}},
	{emotion: "elegant", all: []string{"clean", "code"}},
	{emotion: "nostalgic", any: []string{"like the old days", "remember when"}},
	{emotion: "futuristic", any: []string{"cutting edge", "next generation"}},
	{emotion: "precise", any: []string{"no errors", "perfect output"}},
	{emotion: "rapid", any: []string{"deadline", "as soon as possible"}},
	{emotion: "cautious", any: []string{"make sure", "double check"}},
}

// DefaultLexicon returns the built-in emotion lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		"rebellious": {"rebellion", "freedom", "break", "disrupt", "revolution", "anarchy", "resist", "defy", "challenge", "unconventional"},
		"elegant":    {"clean", "elegant", "minimal", "precise", "refined", "sophisticated", "polished", "sleek", "streamlined", "graceful"},
		"nostalgic":  {"retro", "nostalgia", "classic", "vintage", "old-school", "traditional", "legacy", "throwback", "memory", "reminiscent"},
		"futuristic": {"future", "prophecy", "advanced", "cutting-edge", "innovative", "forward", "next-gen", "tomorrow", "visionary", "ahead"},
		"precise":    {"precise", "exact", "accurate", "meticulous", "detailed", "rigorous", "specific", "exacting", "careful", "thorough"},
		"rapid":      {"rapid", "quick", "fast", "swift", "speedy", "immediate", "instant", "prompt", "expedient", "hasty"},
		"cautious":   {"cautious", "careful", "prudent", "wary", "vigilant", "guarded", "conservative", "safe", "measured", "deliberate"},
	}
}

// LoadLexicon reads the lexicon document at path. A missing or corrupt
// document falls back to the built-in lexicon, which is persisted on a
// best-effort basis so subsequent loads see it. Persist failures are logged
// and otherwise ignored: classification must proceed regardless.
func LoadLexicon(path string, logger *zap.Logger) Lexicon {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err == nil {
		var lex Lexicon
		if jsonErr := json.Unmarshal(data, &lex); jsonErr == nil && len(lex) > 0 {
			return lex
		}
		logger.Warn("corrupt emotion lexicon, using built-in default", zap.String("path", path))
	}

	lex := DefaultLexicon()
	persistDocument(path, lex, logger)
	return lex
}

func persistDocument(path string, doc any, logger *zap.Logger) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Warn("marshal default document", zap.String("path", path), zap.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("persist default document", zap.String("path", path), zap.Error(err))
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Warn("persist default document", zap.String("path", path), zap.Error(err))
	}
}
