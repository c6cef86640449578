package versioncheck

import (
	"fmt"
	"strconv"
	"strings"
)

// Compare compares two dotted numeric versions, for example "1.2.0" and "1.10".
// Returns -1 when a is older than b, 0 when equal, 1 when newer.
// Missing segments count as zero, so "1.2" equals "1.2.0".
func Compare(a, b string) (int, error) {
	aSegments, err := segments(a)
	if err != nil {
		return 0, err
	}

	bSegments, err := segments(b)
	if err != nil {
		return 0, err
	}

	length := len(aSegments)
	if len(bSegments) > length {
		length = len(bSegments)
	}

	for i := 0; i < length; i++ {
		av, bv := 0, 0
		if i < len(aSegments) {
			av = aSegments[i]
		}
		if i < len(bSegments) {
			bv = bSegments[i]
		}

		if av < bv {
			return -1, nil
		}
		if av > bv {
			return 1, nil
		}
	}

	return 0, nil
}

func segments(version string) ([]int, error) {
	version = strings.TrimSpace(strings.TrimPrefix(version, "v"))
	if version == "" {
		return nil, fmt.Errorf("%w: empty version string", ErrVersionCheck)
	}

	parts := strings.Split(version, ".")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not dotted numeric version", ErrVersionCheck, version)
		}

		out = append(out, n)
	}

	return out, nil
}
