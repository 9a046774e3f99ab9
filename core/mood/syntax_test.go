package mood

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSyntaxCoversEveryCategory(t *testing.T) {
	d := NewDetector(DetectorConfig{})

	for _, text := range []string{"", "refactor this codebase", "random words"} {
		flags := d.MatchSyntax(text)
		for _, category := range d.Categories() {
			_, ok := flags[category]
			assert.True(t, ok, "category %s missing for %q", category, text)
		}
		assert.Len(t, flags, len(d.Categories()))
	}
}

func TestMatchSyntaxRefactor(t *testing.T) {
	d := NewDetector(DetectorConfig{})

	flags := d.MatchSyntax("refactor this codebase")
	assert.True(t, flags["code-refactor"])
	assert.True(t, flags["multi-file"]) // "codebase"
	assert.False(t, flags["sketch-based"])
}

func TestMatchSyntaxNoMatch(t *testing.T) {
	d := NewDetector(DetectorConfig{})

	flags := d.MatchSyntax("hello world")
	for category, set := range flags {
		assert.False(t, set, "category %s", category)
	}
}

func TestMatchSyntaxContextualPhraseForcesFlag(t *testing.T) {
	d := NewDetector(DetectorConfig{})

	// No sketch-based pattern word appears, but the exact phrase does.
	flags := d.MatchSyntax("please create a UI for my shop")
	assert.True(t, flags["sketch-based"])

	flags = d.MatchSyntax("it should connect to my calendar")
	assert.True(t, flags["API-bindings"])
}

func TestMatchSyntaxWholeWordOnly(t *testing.T) {
	d := NewDetector(DetectorConfig{})

	// "apiary" must not match the "api" pattern.
	flags := d.MatchSyntax("my apiary design")
	assert.False(t, flags["API-bindings"])
	assert.True(t, flags["sketch-based"])
}

func TestLoadPatternsMissingPersistsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syntax_patterns.json")

	ps := LoadPatterns(path, nil)
	assert.Equal(t, DefaultPatterns(), ps)
	assert.FileExists(t, path)
}

func TestLoadPatternsCorruptFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syntax_patterns.json")
	require.NoError(t, os.WriteFile(path, []byte("]["), 0o644))

	assert.Equal(t, DefaultPatterns(), LoadPatterns(path, nil))
}

func TestLoadPatternsCustomDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syntax_patterns.json")
	custom := PatternSet{"data-pipeline": {"etl", "pipeline"}}
	data, err := json.Marshal(custom)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	d := NewDetector(DetectorConfig{Patterns: LoadPatterns(path, nil)})
	flags := d.MatchSyntax("build an ETL pipeline")
	assert.True(t, flags["data-pipeline"])
	assert.Len(t, flags, 1)
}
