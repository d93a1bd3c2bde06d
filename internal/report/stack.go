package report

import (
	"regexp"
	"strings"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI color escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var locationPattern = regexp.MustCompile(`^\s+(\S+\.go:\d+)`)

// Frames of runner machinery are noise in a failure summary; only frames
// from the script (or whatever it called into) are worth surfacing.
var internalFrames = []string{
	"runtime.",
	"runtime/debug.",
	"testing.",
	"scriptest/assert.",
	"scriptest/internal/execution.",
}

// Frames extracts up to max compact "at <file:line>" entries from a Go
// stack trace, best-effort: an unparseable stack yields nothing.
func Frames(stack string, max int) []string {
	var frames []string
	lines := strings.Split(StripANSI(stack), "\n")

	skipNext := false
	for _, line := range lines {
		if !strings.HasPrefix(line, "\t") && !strings.HasPrefix(line, " ") {
			fn := strings.TrimSpace(line)
			skipNext = false
			for _, prefix := range internalFrames {
				if strings.HasPrefix(fn, prefix) {
					skipNext = true
					break
				}
			}
			continue
		}
		if skipNext {
			continue
		}
		if m := locationPattern.FindStringSubmatch(line); m != nil {
			frames = append(frames, "at "+m[1])
			if len(frames) >= max {
				break
			}
		}
	}

	return frames
}
