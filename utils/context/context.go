package context

import (
	"context"

	"github.com/Samu0104/loucura-total/constant"
)

// WithRequestID stores the request id assigned by the logging middleware.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
