package obs

import (
	"context"
	"route-roster-service/internal/platform/logger"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

var timingLog logger.Logger = logger.New("obs")

// SetLogger replaces the logger used for operation timings.
func SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.NopLogger{}
	}
	timingLog = l
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time starts timing an operation; call the returned func with a pointer to
// the operation's named error result.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		fields := map[string]any{
			"req_id": reqID,
			"op":     name,
			"dur_ms": time.Since(start).Milliseconds(),
		}
		if errp != nil && *errp != nil {
			fields["err"] = (*errp).Error()
		}
		timingLog.Debugw("op timing", fields)
	}
}
