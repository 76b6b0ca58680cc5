// Package linkedin holds the profile-shaped pieces of the server: URL
// canonicalization, the optional-section allow-list, and the generic
// profile tree with its filter and YAML rendering.
package linkedin

import (
	"fmt"
	"regexp"
	"strings"
)

// profilePattern accepts linkedin.com/in/<handle> with an optional scheme
// and www. prefix, tolerating a trailing slash, query string, or fragment.
var profilePattern = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?linkedin\.com/in/([^/?#\s]+)/?(?:\?[^#\s]*)?(?:#\S*)?$`)

// NormalizeURL validates a LinkedIn profile URL and returns the canonical
// https://www.linkedin.com/in/<handle> form. Canonical input comes back
// unchanged.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("profile url is empty")
	}

	m := profilePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("invalid LinkedIn profile url %q: expected linkedin.com/in/<handle>", raw)
	}

	return "https://www.linkedin.com/in/" + m[1], nil
}
