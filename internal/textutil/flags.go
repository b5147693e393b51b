package textutil

import "strings"

// truthy is the closed set of tokens the spreadsheets use for "yes".
// 是 appears in the carousel flag column.
var truthy = map[string]struct{}{
	"1":    {},
	"true": {},
	"yes":  {},
	"y":    {},
	"是":    {},
	"on":   {},
}

// ParseFlag interprets a cell as a boolean. Only the known truthy tokens
// count; everything else, including sentinels and empty cells, is false.
func ParseFlag(value string) bool {
	_, ok := truthy[strings.ToLower(Clean(value))]
	return ok
}
