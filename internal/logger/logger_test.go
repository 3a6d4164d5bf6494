package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("carries request and identity fields", func(t *testing.T) {
		ctx := ContextWithRequestID(context.Background(), "req-1")
		ctx = ContextWithIdentity(ctx, "tenant-a", "user-7")

		l := WithContext(ctx)

		assert.Equal(t, "req-1", l.Data["request_id"])
		assert.Equal(t, "tenant-a", l.Data["tenant_id"])
		assert.Equal(t, "user-7", l.Data["user_id"])
	})

	t.Run("unknown user when identity is missing", func(t *testing.T) {
		l := WithContext(context.Background())

		assert.Equal(t, "unknown", l.Data["user_id"])
		_, hasTenant := l.Data["tenant_id"]
		assert.False(t, hasTenant)
	})
}

func TestWithFieldChaining(t *testing.T) {
	l := New().WithField("work_order", "WO-2025-0001").WithFields(map[string]interface{}{"status": "released"})
	l = l.WithError(errors.New("boom"))

	assert.Equal(t, "WO-2025-0001", l.Data["work_order"])
	assert.Equal(t, "released", l.Data["status"])
	assert.NotNil(t, l.Data["error"])
}
