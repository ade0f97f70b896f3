package telemetry_test

import (
	"context"
	"testing"

	"github.com/pkgseg/pkgseg/internal/adapters/telemetry"
	"github.com/pkgseg/pkgseg/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/mock/gomock"
)

func TestProvider_LogsCompletedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Debug("span ended", gomock.Any()).MinTimes(1)

	provider := telemetry.NewProvider(log)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	tracer := provider.Tracer()
	_, span := tracer.Start(context.Background(), "segment.generate")
	span.SetAttributes(attribute.String("segment", "docs"))
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}
