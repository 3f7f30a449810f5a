package transport

import "errors"

// ErrPollTimeout indicates that no matching frame arrived within a
// source's poll interval. It is the normal idle result of Poll and is
// not fatal.
var ErrPollTimeout = errors.New("no frame captured within the poll interval")

// RawFrameSource delivers the UDP payloads of raw link-layer frames that
// match a capture filter.
//
// Poll blocks for at most the source's poll interval, keeping a
// deadline-driven caller responsive. A source is owned by a single
// resolution attempt and is not safe for concurrent use.
type RawFrameSource interface {
	// Poll returns the UDP payload of the next matching frame, or
	// ErrPollTimeout if none arrived within the poll interval.
	Poll() ([]byte, error)

	// Close releases the underlying capture handle.
	Close() error
}
