package responder

import (
	"net"

	"github.com/dogmatiq/dodeca/logging"
)

// Option is a function that applies an option to a responder created by
// New().
type Option func(*Responder) error

// UseLogger returns an option that sets the logger used by the
// responder.
func UseLogger(l logging.Logger) Option {
	return func(r *Responder) error {
		r.logger = l
		return nil
	}
}

// UseInterface sets the network interface that is used by the responder.
//
// If this option is not provided, the responder answers on the interface
// that routes to the LLMNR multicast group.
func UseInterface(iface net.Interface) Option {
	return func(r *Responder) error {
		r.iface = &iface
		return nil
	}
}
