package utils

import (
	"strconv"
)

// StringToUint converts a route parameter to a uint, returning 0 on any
// malformed input. Lookups with id 0 fall through to the not-found path.
func StringToUint(s string) uint {
	i, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(i)
}
