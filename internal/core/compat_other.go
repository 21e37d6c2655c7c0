//go:build !windows

package core

import (
	"runtime"
)

// OSVersionString returns the GOOS/GOARCH pair. The status view fills in
// the distribution name from gopsutil on these platforms.
func OSVersionString() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
