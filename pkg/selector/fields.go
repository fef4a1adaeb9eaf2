package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOptionalInt reads a user-supplied integer field. Empty or
// non-integer text yields nil so the caller applies its default.
func ParseOptionalInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// ParseChannel resolves a channel given as a legend index or a legend name.
// Numeric text is taken as an index and checked later by Select.
func ParseChannel(s string, legend []string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	for i, name := range legend {
		if name == s {
			return i, nil
		}
	}
	for i, name := range legend {
		if strings.EqualFold(strings.TrimSpace(name), s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownChannel, s)
}

// ParseChannels resolves every entry of values with ParseChannel.
func ParseChannels(values []string, legend []string) ([]int, error) {
	channels := make([]int, 0, len(values))
	for _, v := range values {
		ch, err := ParseChannel(v, legend)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, nil
}
