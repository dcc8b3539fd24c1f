package parser

import "strings"

// DetectLineEnding inspects text and returns the dominant line-ending
// convention. Mixed files resolve to whichever convention terminates more
// lines; text without any line ending defaults to LF.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	lf := strings.Count(text, "\n") - crlf
	if crlf > lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}
