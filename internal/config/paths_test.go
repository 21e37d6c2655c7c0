package config_test

import (
	"path/filepath"
	"testing"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	. "github.com/onsi/gomega"
)

func linuxEnv() config.Env {
	return config.Env{
		GOOS:    "linux",
		Home:    "/home/ana",
		TempDir: "/tmp",
	}
}

func TestCategoriesAreOrdered(t *testing.T) {
	g := NewWithT(t)
	g.Expect(config.Categories).To(Equal([]string{"temp", "trash", "browser", "logs"}))
	g.Expect(config.IsCategory("logs")).To(BeTrue())
	g.Expect(config.IsCategory("dev")).To(BeFalse())
	g.Expect(config.CategoryLabel(config.CategoryTrash)).To(Equal("Recycle bin"))
}

func TestEveryCategoryHasATarget(t *testing.T) {
	for _, goos := range []string{"windows", "darwin", "linux"} {
		env := linuxEnv()
		env.GOOS = goos
		targets := config.GetCleanTargets(env)
		for _, c := range config.Categories {
			if len(config.GetTargetsByCategory(targets, c)) == 0 {
				t.Errorf("%s: no targets for category %q", goos, c)
			}
		}
	}
}

func TestTempTargetUsesEnvTempDir(t *testing.T) {
	g := NewWithT(t)

	temp := config.GetTargetsByCategory(config.GetCleanTargets(linuxEnv()), config.CategoryTemp)
	g.Expect(temp).To(HaveLen(1))
	g.Expect(temp[0].Paths).To(Equal([]string{"/tmp"}))
	g.Expect(temp[0].Extensions).To(BeNil())
}

func TestTrashLocationPerPlatform(t *testing.T) {
	g := NewWithT(t)

	env := linuxEnv()
	trash := config.GetTargetsByCategory(config.GetCleanTargets(env), config.CategoryTrash)
	g.Expect(trash[0].Paths).To(Equal([]string{filepath.Join("/home/ana", ".local", "share", "Trash")}))

	env.XDGDataHome = "/data"
	trash = config.GetTargetsByCategory(config.GetCleanTargets(env), config.CategoryTrash)
	g.Expect(trash[0].Paths).To(Equal([]string{filepath.Join("/data", "Trash")}))

	env.GOOS = "darwin"
	trash = config.GetTargetsByCategory(config.GetCleanTargets(env), config.CategoryTrash)
	g.Expect(trash[0].Paths).To(Equal([]string{filepath.Join("/home/ana", ".Trash")}))

	env.GOOS = "windows"
	env.SystemDrive = "D:"
	trash = config.GetTargetsByCategory(config.GetCleanTargets(env), config.CategoryTrash)
	g.Expect(trash[0].Name).To(Equal("RecycleBin"))
	g.Expect(trash[0].Paths[0]).To(ContainSubstring("$Recycle.Bin"))
}

func TestLogTargetsPinLogExtension(t *testing.T) {
	g := NewWithT(t)

	for _, goos := range []string{"windows", "darwin", "linux"} {
		env := linuxEnv()
		env.GOOS = goos
		for _, tgt := range config.GetTargetsByCategory(config.GetCleanTargets(env), config.CategoryLogs) {
			g.Expect(tgt.Extensions).To(Equal([]string{".log"}), goos)
		}
	}
}

func TestBrowserTargetsIncludeFirefoxGlob(t *testing.T) {
	g := NewWithT(t)

	browser := config.GetTargetsByCategory(config.GetCleanTargets(linuxEnv()), config.CategoryBrowser)
	names := make([]string, 0, len(browser))
	for _, b := range browser {
		names = append(names, b.Name)
	}
	g.Expect(names).To(ConsistOf("ChromeCache", "EdgeCache", "FirefoxCache"))
	g.Expect(browser[2].Paths).To(ContainElement(filepath.Join("/home/ana", ".cache", "mozilla", "firefox", "*", "cache2")))
}

func TestNeverDeletePathsIncludeHomeAndRoot(t *testing.T) {
	g := NewWithT(t)

	paths := config.GetNeverDeletePaths(linuxEnv())
	g.Expect(paths).To(ContainElements("/", "/home/ana", "/tmp"))
}
