package probeservice

import (
	"strconv"
	"strings"
)

// countLines counts the non-blank lines in s.
func countLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// parseCount parses a non-negative integer, tolerating surrounding space and a
// trailing period (vm_stat prints "Pageouts: 1234."). Anything else is 0.
func parseCount(s string) int {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// lines splits s into non-blank, right-trimmed lines.
func lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// trimUnit drops the trailing unit letter from a df size such as "500G".
func trimUnit(s string) string {
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}

// osReleaseField returns key's value from os-release content, unquoted.
func osReleaseField(content, key string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, key+"=") {
			v := strings.TrimSpace(line[len(key)+1:])
			return strings.Trim(v, "\"'")
		}
	}
	return ""
}
