package sim

import (
	"fmt"
	"time"

	"github.com/mondrian-wm/mondrian/internal/config"
)

// LogBuffer is a ring buffer of timestamped demo event lines, capped at the
// configured message limit. Oldest lines fall off the front.
type LogBuffer struct {
	lines []string
}

// Logf appends a formatted line with a timestamp prefix.
func (b *LogBuffer) Logf(format string, args ...any) {
	line := time.Now().Format("15:04:05") + " " + fmt.Sprintf(format, args...)
	if len(b.lines) >= config.MaxLogMessages {
		b.lines = b.lines[1:]
	}
	b.lines = append(b.lines, line)
}

// Lines returns the buffered lines, oldest first.
func (b *LogBuffer) Lines() []string { return b.lines }

// Len returns the number of buffered lines.
func (b *LogBuffer) Len() int { return len(b.lines) }

// Tail returns up to n of the newest lines, oldest first.
func (b *LogBuffer) Tail(n int) []string {
	if n >= len(b.lines) {
		return b.lines
	}
	return b.lines[len(b.lines)-n:]
}
