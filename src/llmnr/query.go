package llmnr

import (
	"math/rand"

	"github.com/emanuelduss/llmnr/src/names"
)

// Query is a single LLMNR query for the IPv4 address of a host.
type Query struct {
	// TransactionID identifies this exchange. It is chosen at random for
	// each query and echoed by responders, though it is deliberately not
	// checked on receipt.
	TransactionID uint16

	// Hostname is the name being resolved.
	Hostname names.Host
}

// NewQuery returns a query for hostname with a fresh random transaction id.
func NewQuery(hostname string) (Query, error) {
	h, err := names.ParseHost(hostname)
	if err != nil {
		return Query{}, err
	}

	return Query{
		TransactionID: uint16(rand.Intn(1 << 16)),
		Hostname:      h,
	}, nil
}

// Encode returns the query as a UDP payload.
func (q Query) Encode() []byte {
	return EncodeQuery(q.TransactionID, string(q.Hostname))
}
