package storage

// activeDirs resolves the global directories, falling back to paths relative
// to the working directory when no home directory is available.
func activeDirs() *Dirs {
	if d, err := ResolveDirs(); err == nil {
		return d
	}
	return &Dirs{
		Config: appDirName,
		Data:   appDirName,
		State:  appDirName,
	}
}

// EnsureAll creates every standard directory for the resolved global dirs.
func EnsureAll() error {
	d, err := ResolveDirs()
	if err != nil {
		return err
	}
	return d.EnsureAll()
}

// StateDir returns the resolved state directory.
func StateDir() string {
	return activeDirs().State
}

// RoutingConfigPath returns the routing preference document path.
func RoutingConfigPath() string {
	return activeDirs().RoutingConfigPath()
}

// LexiconPath returns the emotion lexicon document path.
func LexiconPath() string {
	return activeDirs().LexiconPath()
}

// PatternsPath returns the syntax pattern document path.
func PatternsPath() string {
	return activeDirs().PatternsPath()
}

// HistoryLogPath returns the agent dispatch history path.
func HistoryLogPath() string {
	return activeDirs().HistoryLogPath()
}

// ProfilesDir returns the per-user profile directory.
func ProfilesDir() string {
	return activeDirs().ProfilesDir()
}

// GeneratedAppsDir returns the simulated app output directory.
func GeneratedAppsDir() string {
	return activeDirs().GeneratedAppsDir()
}

// MarketDBPath returns the market analysis database path.
func MarketDBPath() string {
	return activeDirs().MarketDBPath()
}
