package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Category names, in the order the scan pipeline visits them.
const (
	CategoryTemp    = "temp"
	CategoryTrash   = "trash"
	CategoryBrowser = "browser"
	CategoryLogs    = "logs"
)

// Categories lists every category in scan order.
var Categories = []string{CategoryTemp, CategoryTrash, CategoryBrowser, CategoryLogs}

// CategoryLabel returns the display label for a category.
func CategoryLabel(category string) string {
	switch category {
	case CategoryTemp:
		return "Temporary files"
	case CategoryTrash:
		return "Recycle bin"
	case CategoryBrowser:
		return "Browser caches"
	case CategoryLogs:
		return "Log files"
	default:
		return category
	}
}

// IsCategory reports whether name is a known category.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// CleanTarget represents one group of well-known locations to scan.
type CleanTarget struct {
	// Name is the unique identifier for this target.
	Name string

	// Category is one of the Category* constants.
	Category string

	// Paths lists directories to scan. Entries may contain glob
	// patterns (*, **, ?) which are expanded at scan time.
	Paths []string

	// Extensions, when non-nil, replaces the user's extension filter
	// for this target (log targets pin it to ".log").
	Extensions []string

	// Description is a human-readable description.
	Description string

	// RiskLevel is one of "low", "medium", "high".
	RiskLevel string
}

// Env carries the environment the catalogue is built from. Tests build
// one by hand; CurrentEnv reads the running process.
type Env struct {
	GOOS         string
	Home         string
	TempDir      string
	LocalAppData string
	AppData      string
	WinDir       string
	SystemDrive  string
	XDGDataHome  string
	XDGCacheHome string
}

// CurrentEnv returns the Env of the running process.
func CurrentEnv() Env {
	home, _ := os.UserHomeDir()
	return Env{
		GOOS:         runtime.GOOS,
		Home:         home,
		TempDir:      os.TempDir(),
		LocalAppData: os.Getenv("LOCALAPPDATA"),
		AppData:      os.Getenv("APPDATA"),
		WinDir:       os.Getenv("WINDIR"),
		SystemDrive:  os.Getenv("SYSTEMDRIVE"),
		XDGDataHome:  os.Getenv("XDG_DATA_HOME"),
		XDGCacheHome: os.Getenv("XDG_CACHE_HOME"),
	}
}

// winDir returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %WINDIR% is not set.
func (e Env) winDir() string {
	if e.WinDir != "" {
		return e.WinDir
	}
	return `C:\Windows`
}

// systemDrive returns the system drive letter with backslash (e.g., C:\).
func (e Env) systemDrive() string {
	if e.SystemDrive != "" {
		return e.SystemDrive + `\`
	}
	return `C:\`
}

func (e Env) localAppData() string {
	if e.LocalAppData != "" {
		return e.LocalAppData
	}
	return filepath.Join(e.Home, "AppData", "Local")
}

func (e Env) dataHome() string {
	if e.XDGDataHome != "" {
		return e.XDGDataHome
	}
	return filepath.Join(e.Home, ".local", "share")
}

func (e Env) cacheHome() string {
	if e.XDGCacheHome != "" {
		return e.XDGCacheHome
	}
	return filepath.Join(e.Home, ".cache")
}

// GetCleanTargets returns all cleanup targets for env, with paths expanded.
func GetCleanTargets(env Env) []CleanTarget {
	targets := []CleanTarget{
		{
			Name:        "SystemTemp",
			Category:    CategoryTemp,
			Paths:       []string{env.TempDir},
			Description: "System temporary files",
			RiskLevel:   "low",
		},
		trashTarget(env),
	}
	targets = append(targets, browserTargets(env)...)
	targets = append(targets, logTargets(env)...)
	return targets
}

// GetTargetsByCategory returns targets filtered by category.
func GetTargetsByCategory(targets []CleanTarget, category string) []CleanTarget {
	var result []CleanTarget
	for _, t := range targets {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

func trashTarget(env Env) CleanTarget {
	t := CleanTarget{
		Name:        "Trash",
		Category:    CategoryTrash,
		Description: "Trash folder",
		RiskLevel:   "medium",
	}
	switch env.GOOS {
	case "windows":
		t.Name = "RecycleBin"
		t.Description = "Windows Recycle Bin"
		t.Paths = []string{filepath.Join(env.systemDrive(), "$Recycle.Bin")}
	case "darwin":
		t.Paths = []string{filepath.Join(env.Home, ".Trash")}
	default:
		t.Paths = []string{filepath.Join(env.dataHome(), "Trash")}
	}
	return t
}

func browserTargets(env Env) []CleanTarget {
	var chrome, edge, firefox []string

	switch env.GOOS {
	case "windows":
		local := env.localAppData()
		chromeProfile := filepath.Join(local, "Google", "Chrome", "User Data", "Default")
		edgeProfile := filepath.Join(local, "Microsoft", "Edge", "User Data", "Default")
		chrome = []string{
			filepath.Join(chromeProfile, "Cache"),
			filepath.Join(chromeProfile, "Code Cache"),
			filepath.Join(chromeProfile, "GPUCache"),
		}
		edge = []string{
			filepath.Join(edgeProfile, "Cache"),
			filepath.Join(edgeProfile, "Code Cache"),
			filepath.Join(edgeProfile, "GPUCache"),
		}
		firefox = []string{
			filepath.Join(local, "Mozilla", "Firefox", "Profiles", "*", "cache2"),
			filepath.Join(local, "Mozilla", "Firefox", "Profiles", "*", "startupCache"),
		}
	case "darwin":
		caches := filepath.Join(env.Home, "Library", "Caches")
		chrome = []string{
			filepath.Join(caches, "Google", "Chrome", "Default", "Cache"),
			filepath.Join(caches, "Google", "Chrome", "Default", "Code Cache"),
		}
		edge = []string{
			filepath.Join(caches, "Microsoft Edge", "Default", "Cache"),
		}
		firefox = []string{
			filepath.Join(caches, "Firefox", "Profiles", "*", "cache2"),
		}
	default:
		cache := env.cacheHome()
		chrome = []string{
			filepath.Join(cache, "google-chrome", "Default", "Cache"),
			filepath.Join(cache, "chromium", "Default", "Cache"),
		}
		edge = []string{
			filepath.Join(cache, "microsoft-edge", "Default", "Cache"),
		}
		firefox = []string{
			filepath.Join(cache, "mozilla", "firefox", "*", "cache2"),
		}
	}

	return []CleanTarget{
		{
			Name:        "ChromeCache",
			Category:    CategoryBrowser,
			Paths:       chrome,
			Description: "Google Chrome browser cache",
			RiskLevel:   "low",
		},
		{
			Name:        "EdgeCache",
			Category:    CategoryBrowser,
			Paths:       edge,
			Description: "Microsoft Edge browser cache",
			RiskLevel:   "low",
		},
		{
			Name:        "FirefoxCache",
			Category:    CategoryBrowser,
			Paths:       firefox,
			Description: "Mozilla Firefox browser cache (cache2 within profiles)",
			RiskLevel:   "low",
		},
	}
}

func logTargets(env Env) []CleanTarget {
	var paths []string
	switch env.GOOS {
	case "windows":
		paths = []string{
			filepath.Join(env.winDir(), "Logs"),
			filepath.Join(env.winDir(), "Panther"),
		}
	case "darwin":
		paths = []string{
			"/Library/Logs",
			filepath.Join(env.Home, "Library", "Logs"),
			"/private/var/log",
		}
	default:
		paths = []string{"/var/log"}
	}

	return []CleanTarget{
		{
			Name:        "SystemLogs",
			Category:    CategoryLogs,
			Paths:       paths,
			Extensions:  []string{".log"},
			Description: "System log files",
			RiskLevel:   "low",
		},
	}
}

// GetNeverDeletePaths returns paths that must NEVER be deleted under any
// circumstances, even if a scan produced them.
func GetNeverDeletePaths(env Env) []string {
	switch env.GOOS {
	case "windows":
		w := env.winDir()
		sd := env.systemDrive()
		return []string{
			sd,
			w,
			filepath.Join(w, "System32"),
			filepath.Join(w, "SysWOW64"),
			filepath.Join(w, "WinSxS"),
			filepath.Join(w, "Logs"),
			filepath.Join(sd, "Users"),
			filepath.Join(sd, "$Recycle.Bin"),
			filepath.Join(sd, "Program Files"),
			filepath.Join(sd, "Program Files (x86)"),
			filepath.Join(sd, "ProgramData"),
			env.Home,
			env.TempDir,
		}
	default:
		return []string{
			"/",
			"/usr",
			"/etc",
			"/var",
			"/var/log",
			"/Library/Logs",
			env.Home,
			env.TempDir,
		}
	}
}
