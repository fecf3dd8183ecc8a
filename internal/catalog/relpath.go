package catalog

import "strings"

// Relative paths inside the catalog always use the forward slash, regardless
// of the platform the folder paths came from.
const separator = "/"

// splitSegments breaks a path into its non-empty segments. Leading and
// trailing separators carry no meaning, so "/music/jazz/" and "music/jazz"
// split identically.
func splitSegments(path string) []string {
	path = strings.ReplaceAll(path, "\\", separator)
	parts := strings.Split(path, separator)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// pathDepth counts the segments of an absolute folder path.
func pathDepth(path string) int {
	return len(splitSegments(path))
}

// relativeTo returns descendant's path relative to ancestor, joined with the
// catalog separator and carrying no leading or trailing separator. It reports
// false when ancestor's segments are not a strict prefix of descendant's,
// which covers both unrelated paths and the ancestor==descendant case.
func relativeTo(ancestor, descendant string) (string, bool) {
	ancestorSegs := splitSegments(ancestor)
	descendantSegs := splitSegments(descendant)
	if len(descendantSegs) <= len(ancestorSegs) {
		return "", false
	}
	for i, seg := range ancestorSegs {
		if descendantSegs[i] != seg {
			return "", false
		}
	}
	return strings.Join(descendantSegs[len(ancestorSegs):], separator), true
}

// parentOf returns the directory portion of a relative path: all segments but
// the last, or the empty string for a single-segment path.
func parentOf(rel string) string {
	segments := splitSegments(rel)
	if len(segments) <= 1 {
		return ""
	}
	return strings.Join(segments[:len(segments)-1], separator)
}

// stripSegmentPrefix removes the leading prefix segments from path. It reports
// false when the prefix does not match segment-for-segment; stripping a path
// equal to the prefix yields the empty string.
func stripSegmentPrefix(path string, prefix []string) (string, bool) {
	segments := splitSegments(path)
	if len(segments) < len(prefix) {
		return "", false
	}
	for i, seg := range prefix {
		if segments[i] != seg {
			return "", false
		}
	}
	return strings.Join(segments[len(prefix):], separator), true
}

// joinRel prepends rel to a folder-relative path. Joining with an empty path
// returns rel itself.
func joinRel(rel, path string) string {
	if path == "" {
		return rel
	}
	return rel + separator + path
}
