package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/utils/apperr"
)

// Dispatch runs handler in a new goroutine with a context detached from the
// request, so HTTP handlers can answer before slow work like Slack posting ends
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				apperr.Handle(newCtx, goerr.New("panic in async handler",
					goerr.V("recover", r),
					goerr.V("stack", string(debug.Stack())),
				))
			}
		}()

		if err := handler(newCtx); err != nil {
			apperr.Handle(newCtx, err)
		}
	}()
}

// newBackgroundContext keeps the logger but drops cancellation of the parent
func newBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
