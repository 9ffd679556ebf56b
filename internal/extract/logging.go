package extract

import (
	"regexp"
	"sort"
	"strings"
)

const stringLit = `"((?:[^"\\]|\\.)*)"`

var (
	// slf4j / log4j style: log.info("..."), logger.warn("...").
	slf4jLogRe = regexp.MustCompile(`(?i)\b(?:log|logger)\.(trace|debug|info|warn|error|fatal)\s*\(\s*` + stringLit)

	// java.util.logging direct level methods: logger.severe("...").
	julLogRe = regexp.MustCompile(`\b(?:log|logger)\.(severe|warning|fine|finer|finest|config)\s*\(\s*` + stringLit)

	// java.util.logging with explicit Level: logger.log(Level.WARNING, "...").
	julLevelLogRe = regexp.MustCompile(`\b(?:log|logger)\.log\s*\(\s*Level\.(\w+)\s*,\s*` + stringLit)

	// Console output: System.out.println("..."), System.err.print("...").
	consoleLogRe = regexp.MustCompile(`System\.(out|err)\.print(?:ln)?\s*\(\s*` + stringLit)
)

// LogStatements returns the log calls found in the source, in source order,
// with levels normalized to the TRACE/DEBUG/INFO/WARN/ERROR scale.
func LogStatements(src string) []LogStatement {
	type located struct {
		s      LogStatement
		offset int
	}
	var found []located

	add := func(framework, level, msg string, offset int) {
		found = append(found, located{
			s: LogStatement{
				Framework: framework,
				Level:     normalizeLevel(level),
				Message:   msg,
				Line:      lineAt(src, offset),
			},
			offset: offset,
		})
	}

	for _, m := range slf4jLogRe.FindAllStringSubmatchIndex(src, -1) {
		add("slf4j", src[m[2]:m[3]], src[m[4]:m[5]], m[0])
	}
	for _, m := range julLogRe.FindAllStringSubmatchIndex(src, -1) {
		add("jul", src[m[2]:m[3]], src[m[4]:m[5]], m[0])
	}
	for _, m := range julLevelLogRe.FindAllStringSubmatchIndex(src, -1) {
		add("jul", src[m[2]:m[3]], src[m[4]:m[5]], m[0])
	}
	for _, m := range consoleLogRe.FindAllStringSubmatchIndex(src, -1) {
		add("console", src[m[2]:m[3]], src[m[4]:m[5]], m[0])
	}

	sort.Slice(found, func(i, j int) bool { return found[i].offset < found[j].offset })

	out := make([]LogStatement, 0, len(found))
	for _, l := range found {
		out = append(out, l.s)
	}
	return out
}

// normalizeLevel maps framework-specific level names onto a single scale.
func normalizeLevel(level string) string {
	switch strings.ToUpper(level) {
	case "SEVERE", "ERR", "FATAL":
		return "ERROR"
	case "WARNING":
		return "WARN"
	case "FINE", "FINER", "CONFIG":
		return "DEBUG"
	case "FINEST":
		return "TRACE"
	case "OUT":
		return "INFO"
	default:
		return strings.ToUpper(level)
	}
}
