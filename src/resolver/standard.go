package resolver

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/emanuelduss/llmnr/src/llmnr"
)

// ErrNotSupported is returned for lookup types that LLMNR cannot
// perform.
var ErrNotSupported = errors.New("lookup is not supported by LLMNR")

// StandardResolver resolves single-label host names on the local link
// via LLMNR.
//
// It mirrors the parts of net.Resolver's interface that map onto the
// protocol: host-to-address lookups. The listen window is taken from the
// context via WithListenWait, falling back to Wait.
type StandardResolver struct {
	// Wait is the minimum time to listen for responses to LLMNR queries
	// if the request's context does not specify a wait time. If it is
	// zero, llmnr.DefaultTimeout is used.
	//
	// The actual threshold time is found using ResolveListenWait(ctx, Wait).
	Wait time.Duration

	// Options are applied to the underlying LLMNR resolver for each
	// lookup.
	Options []llmnr.Option
}

// LookupHost looks up the given host on the local link. It returns a
// slice of that host's addresses.
func (r *StandardResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	responses, err := r.resolve(ctx, host)
	if err != nil {
		return nil, err
	}

	addrs := make([]string, 0, len(responses))
	for _, res := range responses {
		addrs = append(addrs, res.Addr.String())
	}

	return addrs, nil
}

// LookupIPAddr looks up host on the local link. It returns a slice of
// that host's IPv4 addresses.
func (r *StandardResolver) LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error) {
	responses, err := r.resolve(ctx, host)
	if err != nil {
		return nil, err
	}

	addrs := make([]net.IPAddr, 0, len(responses))
	for _, res := range responses {
		addrs = append(addrs, net.IPAddr{IP: res.Addr})
	}

	return addrs, nil
}

// LookupAddr performs a reverse lookup for the given address.
func (r *StandardResolver) LookupAddr(ctx context.Context, addr string) ([]string, error) {
	return nil, ErrNotSupported
}

// LookupCNAME returns the canonical name for the given host.
func (r *StandardResolver) LookupCNAME(ctx context.Context, host string) (string, error) {
	return "", ErrNotSupported
}

func (r *StandardResolver) resolve(ctx context.Context, host string) ([]llmnr.Response, error) {
	wait := r.Wait
	if wait == 0 {
		wait = llmnr.DefaultTimeout
	}

	window := time.Until(ResolveListenWait(ctx, wait))
	if window <= 0 {
		return nil, context.DeadlineExceeded
	}

	options := append(
		[]llmnr.Option{llmnr.UseTimeout(window)},
		r.Options...,
	)

	c, err := llmnr.New(options...)
	if err != nil {
		return nil, err
	}

	return c.Resolve(ctx, host)
}
