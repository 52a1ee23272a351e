package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotientgraph/pact/telemetry"
)

func TestInit_Idempotent(t *testing.T) {
	require.NoError(t, telemetry.Init())
	require.NoError(t, telemetry.Init())
}

func TestStartExec_ReturnsUsableSpan(t *testing.T) {
	ctx, span := telemetry.StartExec(context.Background(), 3)
	defer span.End()
	assert.NotNil(t, ctx)
	telemetry.RecordExec(ctx, 0.01, 5)
	telemetry.RecordOverflow(ctx)
}

func TestNewLogger_FormatsBothWays(t *testing.T) {
	assert.NotNil(t, telemetry.NewLogger("debug", "json"))
	assert.NotNil(t, telemetry.NewLogger("info", "text"))
}
