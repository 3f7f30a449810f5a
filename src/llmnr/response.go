package llmnr

import "net"

// Response is a single answer received during a resolution attempt.
type Response struct {
	// Hostname is the answer record's owner name, with whatever case the
	// responder used. The protocol compares names case-insensitively but
	// replies may echo a different case than the query, and that case is
	// preserved.
	Hostname string

	// Addr is the host's IPv4 address.
	Addr net.IP
}

// ResultSet accumulates responses in arrival order.
//
// It is written by the listener goroutine and read by the coordinator
// only after the listener has signalled completion, so access is
// temporally disjoint and no locking is required.
type ResultSet struct {
	responses []Response
}

// Append adds r to the set.
func (s *ResultSet) Append(r Response) {
	s.responses = append(s.responses, r)
}

// Responses returns the accumulated responses in arrival order.
func (s *ResultSet) Responses() []Response {
	return s.responses
}

// TargetRecorder is a sink for the addresses of hosts discovered during
// resolution, such as a scanner's target registry.
type TargetRecorder interface {
	// RecordTarget registers a discovered host.
	RecordTarget(Response)
}
