package llmnr

import (
	"time"

	"github.com/dogmatiq/dodeca/logging"

	"github.com/emanuelduss/llmnr/src/llmnr/transport"
)

// listener consumes raw frames from a capture source until a deadline
// elapses, accumulating decoded responses.
type listener struct {
	Source       transport.RawFrameSource
	Timeout      time.Duration
	PollInterval time.Duration
	Logger       logging.Logger
}

// Listen polls the capture source until the listen window closes,
// appending every decodable response to results, then closes done.
//
// done is closed exactly once, unconditionally, even if no response
// arrived. Frames that fail to decode are skipped, never fatal. A frame
// that arrives after the logical deadline may still be accepted if the
// loop observes it before the deadline check; this race is accepted
// rather than synchronized away.
func (l *listener) Listen(results *ResultSet, done chan<- struct{}) {
	defer close(done)

	deadline := time.Now().Add(l.Timeout)

	for time.Now().Before(deadline) {
		payload, err := l.Source.Poll()

		if err == transport.ErrPollTimeout {
			continue
		} else if err != nil {
			// Back off for one poll interval so a persistently failing
			// source cannot spin the loop hot before the deadline.
			logging.Log(l.Logger, "unable to read captured frame: %s", err)
			time.Sleep(l.PollInterval)
			continue
		}

		res, err := DecodeResponse(payload, 0)
		if err != nil {
			logging.Debug(l.Logger, "skipping captured frame: %s", err)
			continue
		}

		logging.Debug(
			l.Logger,
			"received LLMNR response: %s is at %s",
			res.Hostname,
			res.Addr,
		)

		results.Append(res)
	}
}
