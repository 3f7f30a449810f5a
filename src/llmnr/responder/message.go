package responder

import (
	"errors"

	"github.com/miekg/dns"
)

// ValidateQuery returns an error if m is not a valid LLMNR query.
func ValidateQuery(m *dns.Msg) error {
	if m.Response {
		panic("DNS message is a response")
	}

	// https://tools.ietf.org/html/rfc4795#section-2.1.1
	//
	// "OPCODE: A 4 bit field that specifies the kind of query in this
	// message. This value is set by the originator of a query and copied
	// into the response. This specification defines the behavior of
	// standard queries and responses (opcode value of zero)."
	if m.Opcode != dns.OpcodeQuery {
		return errors.New("OPCODE must be zero (query) in LLMNR queries")
	}

	// https://tools.ietf.org/html/rfc4795#section-2.1.1
	//
	// "RCODE: Response code -- this 4 bit field is set as part of LLMNR
	// responses. In an LLMNR query, the sender MUST set RCODE to zero;
	// the receiver ignores the RCODE."
	if m.Rcode != 0 {
		return errors.New("RCODE must be zero in LLMNR queries")
	}

	return nil
}

// NewResponse returns a new (empty) response to an LLMNR query.
//
// See https://tools.ietf.org/html/rfc4795#section-2.1.1.
func NewResponse(query *dns.Msg) *dns.Msg {
	m := &dns.Msg{}
	m.SetReply(query)

	// Unlike mDNS, LLMNR responses echo the query's transaction id and
	// question section; SetReply already arranges both.

	// "C (Conflict), TC (Truncation) and T (Tentative) MUST be zero in
	// responses to standard queries, and the RCODE zero." The conflict
	// and tentative bits occupy the positions miekg/dns exposes as the
	// AA and RD flags.
	m.Authoritative = false
	m.Truncated = false
	m.RecursionDesired = false
	m.RecursionAvailable = false
	m.Zero = false
	m.Rcode = dns.RcodeSuccess

	return m
}
