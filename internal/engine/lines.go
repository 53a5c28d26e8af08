package engine

import "strings"

// splitLines splits text on \n, \r\n, or \r, preserving a final trailing
// empty line when the input ends with a line terminator. Mixed line
// endings within one input are honored per-line.
func splitLines(text string) []string {
	var lines []string
	start := 0
	i := 0
	for i < len(text) {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			i++
			start = i
		case '\r':
			lines = append(lines, text[start:i])
			i++
			if i < len(text) && text[i] == '\n' {
				i++
			}
			start = i
		default:
			i++
		}
	}
	lines = append(lines, text[start:])
	return lines
}

// joinLines always emits \n regardless of the input's original line
// endings, per the external interface contract.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
