package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID converts a path parameter to a positive int64 row ID
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

// SanitizeFilename strips path separators and whitespace from an
// uploaded file name so it is safe to join onto the uploads dir.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\\", "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == ".." {
		name = "video.mp4"
	}
	return name
}
