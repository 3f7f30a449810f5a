package responder

import (
	"context"
	"net"
	"sync"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/miekg/dns"
	"golang.org/x/sync/errgroup"

	"github.com/emanuelduss/llmnr/src/llmnr/transport"
)

// Responder answers LLMNR queries on a single network interface.
type Responder struct {
	answerer Answerer
	iface    *net.Interface
	logger   logging.Logger
}

// New returns a new LLMNR responder.
func New(
	answerer Answerer,
	options ...Option,
) (*Responder, error) {
	r := &Responder{
		answerer: answerer,
	}

	for _, opt := range options {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.iface == nil {
		iface, err := multicastInterface()
		if err != nil {
			return nil, err
		}
		r.iface = iface
	}

	if r.logger == nil {
		r.logger = logging.DefaultLogger
	}

	return r, nil
}

// Run responds to LLMNR queries until ctx is canceled or an error
// occurs.
func (r *Responder) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.receive(
			ctx,
			&transport.IPv4Transport{
				Logger: r.logger,
			},
		)
	})

	err := g.Wait()

	if err == context.Canceled {
		return nil
	}

	return err
}

// receive starts goroutines to handle each LLMNR message received via t.
func (r *Responder) receive(ctx context.Context, t transport.Transport) error {
	if err := t.Listen(r.iface); err != nil {
		return err
	}
	defer t.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = t.Close() // break out of t.Read() when the context is canceled
	}()

	var g sync.WaitGroup
	defer g.Wait()

	for {
		in, err := t.Read()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		g.Add(1)
		go func() {
			defer g.Done()
			r.handle(ctx, in)
		}()
	}
}

// handle handles an LLMNR message in a UDP packet.
func (r *Responder) handle(ctx context.Context, in *transport.InboundPacket) {
	defer in.Close()

	m, err := in.Message()
	if err != nil {
		logging.Log(r.logger, "error parsing LLMNR message: %s", err)
		return
	}

	if m.Response {
		// Responses on the group are other exchanges; a responder only
		// answers queries.
		return
	}

	if err := r.handleQuery(ctx, in, m); err != nil {
		logging.Log(r.logger, "error handling LLMNR query: %s", err)
	}
}

func (r *Responder) handleQuery(
	ctx context.Context,
	in *transport.InboundPacket,
	query *dns.Msg,
) error {
	res, err := r.Respond(ctx, in.Source, query)
	if err != nil {
		return err
	}

	sent, err := transport.SendUnicastResponse(in, res)
	if err != nil {
		return err
	}

	if sent {
		logging.Debug(
			r.logger,
			"answered LLMNR query 0x%04x from %s",
			query.Id,
			in.Source.Address,
		)
	}

	return nil
}

// Respond builds the response to an LLMNR query by consulting the
// responder's answerer. The response may be empty, in which case it
// should not be sent.
func (r *Responder) Respond(
	ctx context.Context,
	src transport.Endpoint,
	query *dns.Msg,
) (*dns.Msg, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	res := NewResponse(query)

	for _, dnsQ := range query.Question {
		var (
			q = Question{
				Question:  dnsQ,
				Query:     query,
				Interface: *r.iface,
			}
			a = Answer{}
		)

		if err := r.answerer.Answer(ctx, &q, &a); err != nil {
			return nil, err
		}

		a.appendToMessage(res)
	}

	return res, nil
}
