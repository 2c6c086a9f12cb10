package utils

import (
	"fmt"
	"strings"
	"time"
)

var sizeUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatSize renders a byte count in human-readable 1024-based units.
func FormatSize(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n)
	for _, u := range sizeUnits {
		v /= 1024
		if v < 1024 || u == sizeUnits[len(sizeUnits)-1] {
			return fmt.Sprintf("%.2f %s", v, u)
		}
	}
	return fmt.Sprintf("%d B", n) // unreachable
}

func formatETA(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.0fs", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1fm", seconds/60)
	default:
		return fmt.Sprintf("%.1fh", seconds/3600)
	}
}

// progressPrinter renders a single-line console progress bar with
// throughput and ETA. Updates are throttled to roughly one per megabyte
// (or one percent for small streams) so per-pixel callbacks stay cheap.
type progressPrinter struct {
	prefix   string
	start    time.Time
	interval uint64
	last     uint64
	finished bool
}

func newProgressPrinter(prefix string) *progressPrinter {
	return &progressPrinter{prefix: prefix, start: time.Now()}
}

const progressBarWidth = 40

func (p *progressPrinter) update(done, total uint64) {
	if total == 0 || p.finished {
		return
	}
	if p.interval == 0 {
		p.interval = 1 << 20
		if hundredth := total / 100; hundredth > 0 && hundredth < p.interval {
			p.interval = hundredth
		}
	}
	if done < total && done-p.last < p.interval {
		return
	}
	p.last = done

	filled := int(uint64(progressBarWidth) * done / total)
	bar := strings.Repeat("#", filled) + strings.Repeat("-", progressBarWidth-filled)
	line := fmt.Sprintf("\r%s [%s] %.1f%% (%s/%s)",
		p.prefix, bar, 100*float64(done)/float64(total), FormatSize(done), FormatSize(total))

	if elapsed := time.Since(p.start).Seconds(); elapsed > 0 && done > 0 {
		rate := float64(done) / elapsed
		line += fmt.Sprintf(" | %s/s", FormatSize(uint64(rate)))
		if done < total && rate > 0 {
			line += fmt.Sprintf(" | ETA %s", formatETA(float64(total-done)/rate))
		}
	}
	fmt.Print(line)
	if done >= total {
		fmt.Println()
		p.finished = true
	}
}
