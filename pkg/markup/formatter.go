// Package markup renders untrusted assistant plain text as safe HTML fragments.
// Escaping happens before any structure detection, so the detection patterns
// only ever see escaped text.
package markup

import (
	"regexp"
	"strings"
)

var (
	bulletPrefix = regexp.MustCompile(`^[-*]\s+`)
	numberPrefix = regexp.MustCompile(`^\d+\.\s+`)
	spaceRun     = regexp.MustCompile(`\s+`)
	lineBreak    = regexp.MustCompile(`\r?\n`)

	escaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
)

// Format classifies text as a bulleted list, a numbered list, or paragraphs,
// in that order, and returns the corresponding HTML. An empty or all-blank
// input yields an empty string.
func Format(text string) string {
	if text == "" {
		return ""
	}

	lines := lineBreak.Split(escaper.Replace(text), -1)
	nonEmpty := 0
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
		if lines[i] != "" {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		return ""
	}

	if allMatch(lines, bulletPrefix) {
		return wrapList("ul", lines, bulletPrefix)
	}
	if allMatch(lines, numberPrefix) {
		return wrapList("ol", lines, numberPrefix)
	}
	return paragraphs(lines)
}

// allMatch reports whether every non-empty line carries the prefix.
func allMatch(lines []string, prefix *regexp.Regexp) bool {
	for _, l := range lines {
		if l == "" {
			continue
		}
		if !prefix.MatchString(l) {
			return false
		}
	}
	return true
}

func wrapList(tag string, lines []string, prefix *regexp.Regexp) string {
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString("<li>")
		b.WriteString(prefix.ReplaceAllString(l, ""))
		b.WriteString("</li>")
	}
	b.WriteString("</" + tag + ">")
	return b.String()
}

// paragraphs groups lines into paragraphs at blank-line boundaries, joining
// lines inside a group with single spaces and collapsing whitespace runs.
func paragraphs(lines []string) string {
	var b strings.Builder
	var buffer []string

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		b.WriteString("<p>")
		b.WriteString(spaceRun.ReplaceAllString(strings.Join(buffer, " "), " "))
		b.WriteString("</p>")
		buffer = buffer[:0]
	}

	for _, l := range lines {
		if l == "" {
			flush()
			continue
		}
		buffer = append(buffer, l)
	}
	flush()

	return b.String()
}

// EscapeText escapes HTML-special characters without adding structure. User
// turns render through this, never through Format.
func EscapeText(text string) string {
	return escaper.Replace(text)
}
