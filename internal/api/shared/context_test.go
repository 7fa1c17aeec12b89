package shared

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	withTrace := SetTraceID(ctx)
	traceID := GetTraceID(withTrace)
	assert.Len(t, traceID, 32)
	_, err := hex.DecodeString(traceID)
	assert.NoError(t, err)

	assert.Empty(t, GetTraceID(ctx), "parent context unchanged")
	assert.Empty(t, GetTraceID(context.WithValue(ctx, TraceIDKey, 123)))
}

func TestGenerateTraceIDUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool, 500)
	for i := 0; i < 500; i++ {
		id := generateTraceID()
		assert.False(t, seen[id], "duplicate trace id %s", id)
		seen[id] = true
	}
	assert.Len(t, generateFallbackTraceID(), 32)
}

func TestUserIDContext(t *testing.T) {
	t.Parallel()
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserIDFromContext(WithUserID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := UserIDFromContext(WithUserID(context.Background(), "65f1c0ffee0000000000beef"))
	assert.True(t, ok)
	assert.Equal(t, "65f1c0ffee0000000000beef", id)
}
