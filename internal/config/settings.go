package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Setting keys.
const (
	KeyExcludePaths = "clean.exclude_paths"
	KeyExtensions   = "clean.extensions"
	KeyMaxDepth     = "clean.max_depth"
	KeyDedupe       = "clean.dedupe"
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
)

// DefaultMaxDepth bounds directory recursion during a scan.
const DefaultMaxDepth = 64

// Settings is the persistent key-value store behind the exclusion list,
// the extension filter, and a few scan knobs. It is read once per
// operation; nothing in the pipeline holds on to it.
type Settings struct {
	v    *viper.Viper
	path string
}

// DefaultSettingsPath returns <UserConfigDir>/winsweep/settings.yaml.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "winsweep", "settings.yaml"), nil
}

// LoadSettings reads settings from path. A missing file is not an error;
// defaults apply until Save writes one.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault(KeyExcludePaths, []string{})
	v.SetDefault(KeyExtensions, []string{})
	v.SetDefault(KeyMaxDepth, DefaultMaxDepth)
	v.SetDefault(KeyDedupe, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix("WINSWEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat settings %s: %w", path, err)
	}

	return &Settings{v: v, path: path}, nil
}

// Path returns the backing file path.
func (s *Settings) Path() string {
	return s.path
}

// Get returns the value for key, or def when the key is unset.
func (s *Settings) Get(key string, def any) any {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.Get(key)
}

// Set stores a value in memory. Call Save to persist it.
func (s *Settings) Set(key string, value any) {
	s.v.Set(key, value)
}

// Save writes all settings to the backing file, creating its directory.
func (s *Settings) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	return nil
}

// Exclusions returns the exclusion set in stored order.
func (s *Settings) Exclusions() []string {
	return s.v.GetStringSlice(KeyExcludePaths)
}

// Extensions returns the extension filter in stored order.
func (s *Settings) Extensions() []string {
	return s.v.GetStringSlice(KeyExtensions)
}

// MaxDepth returns the recursion limit; 0 means unlimited.
func (s *Settings) MaxDepth() int {
	d := s.v.GetInt(KeyMaxDepth)
	if d < 0 {
		return 0
	}
	return d
}

// Dedupe reports whether repeated paths are dropped when aggregating.
func (s *Settings) Dedupe() bool {
	return s.v.GetBool(KeyDedupe)
}

// LogLevel returns the configured log level name.
func (s *Settings) LogLevel() string {
	return s.v.GetString(KeyLogLevel)
}

// LogFile returns the optional log file path.
func (s *Settings) LogFile() string {
	return s.v.GetString(KeyLogFile)
}

// AddExclusion appends path to the exclusion set. It returns false if the
// exact string is already present.
func (s *Settings) AddExclusion(path string) bool {
	return s.addTo(KeyExcludePaths, path)
}

// RemoveExclusion removes the exact string path. It returns false if absent.
func (s *Settings) RemoveExclusion(path string) bool {
	return s.removeFrom(KeyExcludePaths, path)
}

// AddExtension appends ext to the filter, prefixing "." when missing.
func (s *Settings) AddExtension(ext string) bool {
	return s.addTo(KeyExtensions, NormalizeExtension(ext))
}

// RemoveExtension removes ext from the filter.
func (s *Settings) RemoveExtension(ext string) bool {
	return s.removeFrom(KeyExtensions, NormalizeExtension(ext))
}

// NormalizeExtension trims whitespace and ensures a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

func (s *Settings) addTo(key, value string) bool {
	if value == "" {
		return false
	}
	list := s.v.GetStringSlice(key)
	for _, existing := range list {
		if existing == value {
			return false
		}
	}
	s.v.Set(key, append(list, value))
	return true
}

func (s *Settings) removeFrom(key, value string) bool {
	list := s.v.GetStringSlice(key)
	out := make([]string, 0, len(list))
	removed := false
	for _, existing := range list {
		if existing == value {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	if removed {
		s.v.Set(key, out)
	}
	return removed
}
