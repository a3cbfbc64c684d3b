package validate

import "strconv"

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Page parses limit and offset query values. Empty values fall back to defaults.
func Page(limitStr, offsetStr string) (limit, offset int, ok bool) {
	limit, offset = DefaultLimit, 0
	if limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v < 1 {
			return 0, 0, false
		}
		limit = min(v, MaxLimit)
	}
	if offsetStr != "" {
		v, err := strconv.Atoi(offsetStr)
		if err != nil || v < 0 {
			return 0, 0, false
		}
		offset = v
	}
	return limit, offset, true
}
