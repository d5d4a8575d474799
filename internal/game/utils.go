package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/heatmap-visualization/internal/config"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// frameTime converts a replay sample index to playback time at the target
// frame rate.
func frameTime(index, tps int) time.Duration {
	if tps <= 0 {
		tps = config.TargetTPS
	}
	return time.Duration(index) * time.Second / time.Duration(tps)
}
