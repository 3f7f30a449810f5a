package resolver

import (
	"context"
	"time"
)

// WithListenWait returns a new context that specifies the minimum time to
// listen for responses when performing an LLMNR query. This value is
// used by resolvers to decide when to stop waiting for additional
// responses.
//
// If the parent's wait time is already longer than w, parent is returned.
func WithListenWait(parent context.Context, w time.Duration) context.Context {
	if e, ok := parent.Value(listenWaitKey).(time.Duration); ok && e > w {
		return parent
	}

	return context.WithValue(parent, listenWaitKey, w)
}

// ListenWait returns the minimum time to listen for responses when
// performing an LLMNR query on behalf of ctx. ok is false if no wait
// duration is specified.
func ListenWait(ctx context.Context) (w time.Duration, ok bool) {
	w, ok = ctx.Value(listenWaitKey).(time.Duration)
	return
}

// ResolveListenWait resolves the minimum wait time specified by ctx to a
// point in time. If ctx does not specify a wait duration, w is added to
// the current time. If the context deadline occurs sooner than this
// resolved time, it is returned instead.
func ResolveListenWait(ctx context.Context, w time.Duration) time.Time {
	if e, ok := ctx.Value(listenWaitKey).(time.Duration); ok {
		w = e
	}

	t := time.Now().Add(w)

	if d, ok := ctx.Deadline(); ok {
		if d.Before(t) {
			return d
		}
	}

	return t
}

type listenWaitKeyType struct{}

var listenWaitKey listenWaitKeyType
