//go:build !windows

package status

import "context"

// osCaption is empty off Windows; gopsutil's platform name is used.
func osCaption(context.Context) string {
	return ""
}
