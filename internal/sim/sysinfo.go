package sim

import (
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/mondrian-wm/mondrian/internal/config"
)

// SysInfo samples host CPU and memory usage for the status bar. Sampling is
// rate limited so the render loop can call Update every tick.
type SysInfo struct {
	cpuHistory    []float64
	lastCPUUpdate time.Time
	ramUsage      float64
	lastRAMUpdate time.Time
}

// Update refreshes the cached samples when their intervals have elapsed.
func (s *SysInfo) Update() {
	now := time.Now()

	if now.Sub(s.lastCPUUpdate) >= config.CPUUpdateInterval {
		s.lastCPUUpdate = now

		usage := 0.0
		if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
			usage = pcts[0]
		}

		// Keep last 10 samples for a compact graph
		if len(s.cpuHistory) >= 10 {
			s.cpuHistory = s.cpuHistory[1:]
		}
		s.cpuHistory = append(s.cpuHistory, usage)
	}

	if now.Sub(s.lastRAMUpdate) >= config.RAMUpdateInterval {
		s.lastRAMUpdate = now

		if vm, err := mem.VirtualMemory(); err == nil {
			s.ramUsage = vm.UsedPercent
		}
	}
}

// CPUGraph returns a formatted string with CPU usage graph and percentage.
// Always returns a fixed-width string to prevent layout shifts.
func (s *SysInfo) CPUGraph() string {
	current := 0.0
	if len(s.cpuHistory) > 0 {
		current = s.cpuHistory[len(s.cpuHistory)-1]
	}

	// Create a mini bar graph - always exactly 10 characters
	graph := ""

	// If we have less than 10 samples, pad with spaces on the left
	startPadding := 10 - len(s.cpuHistory)
	if startPadding > 0 {
		graph = strings.Repeat(" ", startPadding)
	}

	for i, usage := range s.cpuHistory {
		if i >= 10 {
			break
		}
		// Convert to 0-8 scale for vertical bars
		height := min(
			// 100/8 = 12.5
			int(usage/12.5), 8)

		switch height {
		case 0:
			graph += "▁"
		case 1:
			graph += "▂"
		case 2:
			graph += "▃"
		case 3:
			graph += "▄"
		case 4:
			graph += "▅"
		case 5:
			graph += "▆"
		case 6:
			graph += "▇"
		case 7, 8:
			graph += "█"
		}
	}

	// Fixed width format: "CPU:" (4) + graph (10) + " " (1) + percentage (4) = 19 chars total
	return fmt.Sprintf("CPU:%s %3.0f%%", graph, current)
}

// RAMLabel returns a fixed-width memory usage label.
func (s *SysInfo) RAMLabel() string {
	return fmt.Sprintf("RAM:%3.0f%%", s.ramUsage)
}
