package rewrite

import (
	"net/url"
	"strings"
)

// rewriteValue applies the reduced pair to a single attribute value and
// returns the new value with the number of occurrences replaced.
//
// Literal substring replacement runs first and is global within the value.
// If it finds nothing and the value is a file:// URI, the match is retried
// against the percent-decoded path, since GES serializes asset references as
// quoted URIs ("My%20Clips") while users pass plain filesystem paths.
func rewriteValue(value, oldCore, newCore string) (string, int) {
	if oldCore == "" {
		return value, 0
	}
	if n := strings.Count(value, oldCore); n > 0 {
		return strings.ReplaceAll(value, oldCore, newCore), n
	}

	u, err := url.Parse(value)
	if err != nil || u.Scheme != "file" {
		return value, 0
	}
	n := strings.Count(u.Path, oldCore)
	if n == 0 {
		return value, 0
	}
	u.Path = strings.ReplaceAll(u.Path, oldCore, newCore)
	u.RawPath = ""
	return u.String(), n
}

// localTarget extracts the filesystem path a rewritten value points at, when
// it points anywhere checkable: a file:// URI or an absolute path. Used only
// to warn when a rewritten asset does not exist on disk.
func localTarget(value string) (string, bool) {
	if u, err := url.Parse(value); err == nil && u.Scheme == "file" {
		return u.Path, true
	}
	if strings.HasPrefix(value, "/") {
		return value, true
	}
	return "", false
}
