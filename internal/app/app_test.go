package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/toolres/internal/adapters/telemetry"
	"go.trai.ch/toolres/internal/app"
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestApp_Resolve(t *testing.T) {
	want := domain.CommandSpec{Path: "/usr/bin/dotnet", Args: "exec tool.dll --flag"}
	req := domain.ResolutionRequest{
		CommandName:      "dotnet-portable",
		CommandArguments: []string{"--flag"},
		ProjectDirectory: "/app",
	}

	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCommandResolver(ctrl)
	log := mocks.NewMockLogger(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), req).Return(want, true, nil)
	log.EXPECT().Debug(gomock.Any())

	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(recorder)
	a := app.New(resolver, tracer, log)

	spec, ok, err := a.Resolve(context.Background(), "dotnet-portable", []string{"--flag"}, "/app")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, spec)

	require.NoError(t, a.Shutdown(context.Background()))
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "toolres.resolve", spans[0].Name())
}

func TestApp_ResolveNoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCommandResolver(ctrl)
	log := mocks.NewMockLogger(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.CommandSpec{}, false, nil)
	log.EXPECT().Debug(gomock.Any())

	_, ok, err := app.New(resolver, telemetry.NewNoOpTracer(), log).
		Resolve(context.Background(), "missing", nil, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestApp_ResolveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockCommandResolver(ctrl)
	log := mocks.NewMockLogger(ctrl)
	cause := zerr.New("boom")
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.CommandSpec{}, false, cause)

	recorder := tracetest.NewSpanRecorder()
	a := app.New(resolver, telemetry.NewOTelTracer(recorder), log)

	_, ok, err := a.Resolve(context.Background(), "dotnet-portable", nil, "/app")
	assert.False(t, ok)
	assert.ErrorIs(t, err, cause)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Len(t, spans[0].Events(), 1, "the error is recorded on the root span")
}
