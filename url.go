package direct

import (
	"fmt"
	"net/url"
	"strings"
)

// joinPath joins a root URL with zero or more path segments, placing
// exactly one separator between them. Each segment is stripped of leading
// and trailing slashes and percent-escaped, so a slash inside a segment is
// escaped rather than treated as a path divider. Empty segments are
// dropped; no segments returns the root with any trailing slash removed.
func joinPath(root string, segments ...any) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, strings.TrimRight(root, "/"))

	for _, segment := range segments {
		s := strings.Trim(fmt.Sprint(segment), "/")
		if s == "" {
			continue
		}
		parts = append(parts, url.PathEscape(s))
	}

	return strings.Join(parts, "/")
}
