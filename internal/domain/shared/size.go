// Package shared provides common domain types used across multiple domain
// packages: size parsing shared by the log writer and the topology loader.
package shared

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size unit multipliers.
const (
	Byte     int64 = 1
	Kilobyte int64 = 1024
	Megabyte int64 = 1024 * Kilobyte
	Gigabyte int64 = 1024 * Megabyte
)

const (
	base10    int = 10
	bitSize64 int = 64
)

// Error variables for size parsing.
var (
	ErrEmptySize    error = errors.New("empty size string")
	ErrNegativeSize error = errors.New("size cannot be negative")
)

// ParseSize parses a human-readable size string into bytes.
// Supported formats: "100", "100B", "100KB", "100MB", "100GB".
// Case-insensitive.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, ErrEmptySize
	}

	multiplier, numStr := extractSizeComponents(s)
	numStr = strings.TrimSpace(numStr)
	num, err := strconv.ParseInt(numStr, base10, bitSize64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number %q: %w", numStr, err)
	}
	if num < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSize, num)
	}

	return num * multiplier, nil
}

func extractSizeComponents(s string) (multiplier int64, numericPart string) {
	switch {
	case strings.HasSuffix(s, "GB"):
		return Gigabyte, strings.TrimSuffix(s, "GB")
	case strings.HasSuffix(s, "MB"):
		return Megabyte, strings.TrimSuffix(s, "MB")
	case strings.HasSuffix(s, "KB"):
		return Kilobyte, strings.TrimSuffix(s, "KB")
	case strings.HasSuffix(s, "B"):
		return Byte, strings.TrimSuffix(s, "B")
	default:
		return Byte, s
	}
}

// FormatSize formats a size in bytes to a human-readable string.
func FormatSize(bytes int64) string {
	switch {
	case bytes >= Gigabyte:
		return fmt.Sprintf("%dGB", bytes/Gigabyte)
	case bytes >= Megabyte:
		return fmt.Sprintf("%dMB", bytes/Megabyte)
	case bytes >= Kilobyte:
		return fmt.Sprintf("%dKB", bytes/Kilobyte)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
