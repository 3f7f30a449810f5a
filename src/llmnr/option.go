package llmnr

import (
	"errors"
	"net"
	"time"

	"github.com/dogmatiq/dodeca/logging"

	"github.com/emanuelduss/llmnr/src/llmnr/transport"
)

// Option is a function that applies an option to a resolver created by
// New().
type Option func(*Resolver) error

// UseLogger returns an option that sets the logger used by the resolver.
func UseLogger(l logging.Logger) Option {
	return func(r *Resolver) error {
		r.logger = l
		return nil
	}
}

// UseInterface returns an option that sets the network interface used to
// capture responses.
//
// If this option is not provided, the resolver uses the sole available
// multicast interface, or probes which interface routes to the LLMNR
// group when there are several.
func UseInterface(iface net.Interface) Option {
	return func(r *Resolver) error {
		r.iface = &iface
		return nil
	}
}

// UseLocalAddress returns an option that sets the local IPv4 address
// that responses are expected to be addressed to. It is normally derived
// from the selected interface.
func UseLocalAddress(ip net.IP) Option {
	return func(r *Resolver) error {
		r.localAddr = ip
		return nil
	}
}

// UseTimeout returns an option that sets the listen window for
// responses.
func UseTimeout(d time.Duration) Option {
	return func(r *Resolver) error {
		if d <= 0 {
			return errors.New("listen timeout must be positive")
		}
		r.timeout = d
		return nil
	}
}

// UseGracePeriod returns an option that sets the delay between starting
// the listener and sending the query.
func UseGracePeriod(d time.Duration) Option {
	return func(r *Resolver) error {
		if d < 0 {
			return errors.New("grace period must not be negative")
		}
		r.grace = d
		return nil
	}
}

// UsePollInterval returns an option that sets the bound on each read of
// the capture source.
func UsePollInterval(d time.Duration) Option {
	return func(r *Resolver) error {
		if d <= 0 {
			return errors.New("poll interval must be positive")
		}
		r.poll = d
		return nil
	}
}

// UseFrameSourceOpener returns an option that sets how the resolver
// opens its capture source. The default opens a live pcap handle on the
// selected interface.
func UseFrameSourceOpener(open FrameSourceOpener) Option {
	return func(r *Resolver) error {
		r.openSource = open
		return nil
	}
}

// UseDatagramSink returns an option that sets the sink used to send the
// query. The default opens a transient UDP association per query.
func UseDatagramSink(sink transport.DatagramSink) Option {
	return func(r *Resolver) error {
		r.sink = sink
		return nil
	}
}

// UseTargetRecorder returns an option that registers every discovered
// host with rec after each resolution attempt completes.
func UseTargetRecorder(rec TargetRecorder) Option {
	return func(r *Resolver) error {
		r.recorder = rec
		return nil
	}
}
