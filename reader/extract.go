package reader

import "strings"

// Extract turns one raw export line into a bare value token.
//
// Lines without a ':' are structural noise (braces, brackets) and yield
// ok == false. Otherwise the token is everything after the first ": ", with
// double quotes removed and trailing commas and whitespace stripped. The key
// in front of the ':' is not inspected; records are positional.
func Extract(line string) (token string, ok bool) {
	line = strings.TrimSpace(line)
	sep := strings.IndexByte(line, ':')
	if sep < 0 {
		return "", false
	}

	start := sep + 2
	if start > len(line) {
		return "", true
	}

	token = strings.ReplaceAll(line[start:], `"`, "")
	token = strings.TrimSpace(token)
	token = strings.TrimRight(token, ",")
	return strings.TrimSpace(token), true
}
