package helpers

import (
	"fmt"
	"strings"
)

// GetField returns the whitespace-delimited token at index.
func GetField(target string, index int) (string, error) {
	fields := strings.Fields(target)
	if index < 0 || index >= len(fields) {
		return "", fmt.Errorf("field %d out of range (%d fields)", index, len(fields))
	}
	return fields[index], nil
}
