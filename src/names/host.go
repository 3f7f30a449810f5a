package names

import (
	"errors"
	"fmt"
	"strings"
)

// MaxHostLen is the maximum length of a host name, in bytes, that can be
// represented by a single length-prefixed string on the wire.
const MaxHostLen = 255

// Host is the name of a host on the local link. Host names are single DNS
// labels; they do not contain any dots.
type Host string

// ParseHost parses n as a host name.
func ParseHost(n string) (Host, error) {
	v := Host(n)
	return v, v.Validate()
}

// MustParseHost parses n as a Host.
// It panics if n is invalid.
func MustParseHost(n string) Host {
	v, err := ParseHost(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate returns nil if the name is valid.
func (n Host) Validate() error {
	if n == "" {
		return errors.New("hostname must not be empty")
	}

	if len(n) > MaxHostLen {
		return fmt.Errorf("hostname '%s' is invalid, exceeds %d bytes", n, MaxHostLen)
	}

	if strings.Contains(string(n), ".") {
		return fmt.Errorf("hostname '%s' is invalid, contains unexpected dots", n)
	}

	return nil
}

// String returns a human-readable representation of the name.
func (n Host) String() string {
	return string(n)
}
