package telemetry_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dnd-autoroll/internal/config"
	"github.com/KirkDiggler/dnd-autoroll/internal/telemetry"
	"github.com/stretchr/testify/require"
)

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: true})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
		Enabled:  false,
		Endpoint: "http://localhost:4318",
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_WithEndpoint(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
		Enabled:     true,
		Endpoint:    "http://localhost:4318",
		ServiceName: "autoroll-test",
	})
	require.NoError(t, err)
	// Flushing with nothing recorded does not contact the collector
	require.NoError(t, shutdown(context.Background()))
}
