package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// PreferenceDoc is one named preference document, persisted as YAML next to
// the JSON profile history.
type PreferenceDoc struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Preferences map[string]any `yaml:"preferences"`
}

// DefaultPreferences returns the built-in default preference document.
func DefaultPreferences() *PreferenceDoc {
	return &PreferenceDoc{
		Name:        "Default",
		Description: "Default profile for Str8ZeRO",
		Preferences: map[string]any{
			"theme":            "dark",
			"auto_commit":      true,
			"telemetry":        "minimal",
			"default_task":     "app-gen",
			"default_platform": "all",
			"default_agent":    "Aider",
			"api_keys":         map[string]any{"use_env": true},
		},
	}
}

// Prefs manages named preference documents under one directory.
type Prefs struct {
	dir    string
	logger *zap.Logger
}

// NewPrefs creates a preference manager rooted at dir, writing the default
// document if it is missing.
func NewPrefs(dir string, logger *zap.Logger) *Prefs {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Prefs{dir: dir, logger: logger}
	if _, err := os.Stat(p.path("default")); os.IsNotExist(err) {
		if err := p.write("default", DefaultPreferences()); err != nil {
			logger.Warn("write default preferences", zap.Error(err))
		}
	}
	return p
}

func (p *Prefs) path(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	return filepath.Join(p.dir, name+".yaml")
}

// Get returns the named document, falling back to the default document and
// then to an empty one. It never fails.
func (p *Prefs) Get(name string) *PreferenceDoc {
	if name == "" {
		name = "default"
	}
	if doc, err := p.read(name); err == nil {
		return doc
	}
	if doc, err := p.read("default"); err == nil {
		return doc
	}
	return &PreferenceDoc{
		Name:        "Default",
		Description: "Default profile for Str8ZeRO",
		Preferences: map[string]any{},
	}
}

// List returns every document in the directory, sorted by file name. A
// corrupt document is listed with an error description rather than skipped.
func (p *Prefs) List() []*PreferenceDoc {
	paths, err := filepath.Glob(filepath.Join(p.dir, "*.yaml"))
	if err != nil {
		return nil
	}
	sort.Strings(paths)

	docs := make([]*PreferenceDoc, 0, len(paths))
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		doc, err := p.read(name)
		if err != nil {
			docs = append(docs, &PreferenceDoc{Name: name, Description: "Error loading profile"})
			continue
		}
		if doc.Name == "" {
			doc.Name = name
		}
		docs = append(docs, doc)
	}
	return docs
}

// Create writes a new named document. It fails if the name is taken.
func (p *Prefs) Create(name string, preferences map[string]any) error {
	if _, err := os.Stat(p.path(name)); err == nil {
		return fmt.Errorf("profile %q already exists", name)
	}
	if preferences == nil {
		preferences = map[string]any{}
	}
	return p.write(name, &PreferenceDoc{
		Name:        name,
		Description: fmt.Sprintf("Custom profile: %s", name),
		Preferences: preferences,
	})
}

// Update merges preferences into an existing document.
func (p *Prefs) Update(name string, preferences map[string]any) error {
	doc, err := p.read(name)
	if err != nil {
		return fmt.Errorf("profile %q does not exist", name)
	}
	if doc.Preferences == nil {
		doc.Preferences = map[string]any{}
	}
	for key, value := range preferences {
		doc.Preferences[key] = value
	}
	return p.write(name, doc)
}

func (p *Prefs) read(name string) (*PreferenceDoc, error) {
	data, err := os.ReadFile(p.path(name))
	if err != nil {
		return nil, err
	}
	var doc PreferenceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse preferences %q: %w", name, err)
	}
	return &doc, nil
}

func (p *Prefs) write(name string, doc *PreferenceDoc) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	tmp, err := os.CreateTemp(p.dir, ".prefs-*")
	if err != nil {
		return fmt.Errorf("create temp preferences: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.path(name)); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}
