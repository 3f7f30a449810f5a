package llmnr

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/dogmatiq/dodeca/logging"

	"github.com/emanuelduss/llmnr/src/llmnr/transport"
)

const (
	// DefaultTimeout is the default listen window for responses.
	DefaultTimeout = 3 * time.Second

	// DefaultGracePeriod is the default delay between starting the
	// listener and sending the query. Capture setup is not instantaneous;
	// a response arriving before the listener is armed would be lost.
	// This is an empirical constant, not a protocol requirement.
	DefaultGracePeriod = 500 * time.Millisecond

	// DefaultPollInterval is the default bound on each read of the
	// capture source, keeping the listener's deadline check responsive.
	// Empirical, like DefaultGracePeriod.
	DefaultPollInterval = 100 * time.Millisecond
)

// FrameSourceOpener opens a RawFrameSource scoped to one interface and
// filtered to LLMNR responses destined to localAddr.
type FrameSourceOpener func(
	device string,
	localAddr net.IP,
	poll time.Duration,
	logger logging.Logger,
) (transport.RawFrameSource, error)

// Resolver resolves hostnames to IPv4 addresses using LLMNR.
//
// Each call to Resolve is a fully self-contained attempt; attempts are
// not designed to run in parallel with each other.
type Resolver struct {
	iface      *net.Interface
	localAddr  net.IP
	timeout    time.Duration
	grace      time.Duration
	poll       time.Duration
	logger     logging.Logger
	openSource FrameSourceOpener
	sink       transport.DatagramSink
	recorder   TargetRecorder
}

// New returns a new LLMNR resolver.
func New(options ...Option) (*Resolver, error) {
	r := &Resolver{
		timeout: DefaultTimeout,
		grace:   DefaultGracePeriod,
		poll:    DefaultPollInterval,
	}

	for _, opt := range options {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.logger == nil {
		r.logger = logging.DefaultLogger
	}

	if r.openSource == nil {
		r.openSource = func(
			device string,
			localAddr net.IP,
			poll time.Duration,
			logger logging.Logger,
		) (transport.RawFrameSource, error) {
			return transport.OpenCapture(device, localAddr, poll, logger)
		}
	}

	if r.sink == nil {
		r.sink = transport.UDPSink{}
	}

	return r, nil
}

// Resolve multicasts a query for hostname and returns the responses that
// arrive within the listen window, in arrival order.
//
// An empty result with a nil error means no responder answered before
// the window closed; it is not an error. Errors are returned only for
// invalid input, interface or capture setup failures, and send failures.
// A send failure does not cancel the listener, which always runs out its
// window once started.
func (r *Resolver) Resolve(ctx context.Context, hostname string) ([]Response, error) {
	q, err := NewQuery(hostname)
	if err != nil {
		return nil, err
	}

	iface, localAddr := r.iface, r.localAddr
	if iface == nil {
		iface, localAddr, err = multicastInterface()
		if err != nil {
			return nil, err
		}
	} else if localAddr == nil {
		localAddr, err = interfaceAddr(iface)
		if err != nil {
			return nil, err
		}
	}

	source, err := r.openSource(iface.Name, localAddr, r.poll, r.logger)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	var (
		results ResultSet
		done    = make(chan struct{})
		lis     = &listener{
			Source:       source,
			Timeout:      r.timeout,
			PollInterval: r.poll,
			Logger:       r.logger,
		}
	)

	go lis.Listen(&results, done)

	// The query must not be sent before the listener is armed. There is
	// no early-cancel path below this point: even when the send fails or
	// ctx is canceled, the listener is drained before returning so the
	// capture handle is not pulled out from under it.
	if err := sleep(ctx, r.grace); err != nil {
		<-done
		return nil, err
	}

	logging.Debug(
		r.logger,
		"sending LLMNR query for '%s' (id 0x%04x) to %s via %s",
		q.Hostname,
		q.TransactionID,
		IPv4Address,
		iface.Name,
	)

	if err := r.sink.Send(q.Encode(), IPv4Address); err != nil {
		<-done
		return nil, fmt.Errorf("unable to send LLMNR query: %w", err)
	}

	<-done

	responses := results.Responses()

	if r.recorder != nil {
		for _, res := range responses {
			r.recorder.RecordTarget(res)
		}
	}

	return responses, nil
}
