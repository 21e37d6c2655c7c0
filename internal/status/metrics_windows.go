//go:build windows

package status

import (
	"context"

	"github.com/yusufpapurcu/wmi"

	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/logger"
)

type win32OperatingSystem struct {
	Caption string
}

// osCaption asks WMI for the marketing name ("Microsoft Windows 11 Pro")
// and falls back to the version derived from the NT build number.
func osCaption(ctx context.Context) string {
	if ctx.Err() != nil {
		return core.OSVersionString()
	}

	var dst []win32OperatingSystem
	q := wmi.CreateQuery(&dst, "", "Win32_OperatingSystem")
	if err := wmi.Query(q, &dst); err != nil || len(dst) == 0 {
		logger.Get().Debug().Err(err).Msg("wmi query failed")
		return core.OSVersionString()
	}
	return dst[0].Caption
}
