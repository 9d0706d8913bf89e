package util

import (
	"strconv"
)

// MustParseID converts a path parameter to a record ID, returning 0 when
// it does not parse.
func MustParseID(s string) int64 {
	id, _ := strconv.ParseInt(s, 10, 64)
	return id
}
