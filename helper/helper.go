package helper

import "strings"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}

	return false
}

// GetStringPart returns the part-th element of source split by separator, or empty string when there are
// not enough parts.
func GetStringPart(source, separator string, part int) string {
	parts := strings.Split(source, separator)
	if part < 0 || part >= len(parts) {
		return ""
	}

	return parts[part]
}
