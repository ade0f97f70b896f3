package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/pkgseg/pkgseg/internal/app"
	"github.com/pkgseg/pkgseg/internal/core/ports/mocks"
	"github.com/pkgseg/pkgseg/internal/engine/generator"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

func newTestComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockSegmentsLoader) {
	mockSegments := mocks.NewMockSegmentsLoader(ctrl)
	mockStore := mocks.NewMockEnvStore(ctrl)
	mockWatcher := mocks.NewMockWatcher(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	gen := generator.New(mockStore, mockLogger, noop.NewTracerProvider().Tracer("test"))
	application := app.New(mockSegments, mockStore, gen, mockWatcher, mockLogger)

	return &app.Components{App: application, Logger: mockLogger}, mockSegments
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _ := newTestComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, mockSegments := newTestComponents(ctrl)
	mockSegments.EXPECT().Load(gomock.Any()).Return(nil, errors.New("load failed"))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"generate"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
