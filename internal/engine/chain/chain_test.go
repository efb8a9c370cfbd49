package chain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports/mocks"
	"go.trai.ch/toolres/internal/engine/chain"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestChain_Resolve(t *testing.T) {
	req := domain.ResolutionRequest{CommandName: "dotnet-portable", ProjectDirectory: "/app"}
	spec := domain.CommandSpec{Path: "/usr/bin/dotnet", Args: "exec tool.dll"}

	t.Run("first match wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := mocks.NewMockCommandResolver(ctrl)
		second := mocks.NewMockCommandResolver(ctrl)
		first.EXPECT().Resolve(gomock.Any(), req).Return(spec, true, nil)

		got, ok, err := chain.New(first, second).Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, spec, got)
	})

	t.Run("falls through to later resolvers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := mocks.NewMockCommandResolver(ctrl)
		second := mocks.NewMockCommandResolver(ctrl)
		gomock.InOrder(
			first.EXPECT().Resolve(gomock.Any(), req).Return(domain.CommandSpec{}, false, nil),
			second.EXPECT().Resolve(gomock.Any(), req).Return(spec, true, nil),
		)

		got, ok, err := chain.New(first, second).Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, spec, got)
	})

	t.Run("error stops the chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := mocks.NewMockCommandResolver(ctrl)
		second := mocks.NewMockCommandResolver(ctrl)
		cause := zerr.New("not restored")
		first.EXPECT().Resolve(gomock.Any(), req).Return(domain.CommandSpec{}, false, cause)

		_, ok, err := chain.New(first, second).Resolve(context.Background(), req)
		assert.False(t, ok)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("no match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		only := mocks.NewMockCommandResolver(ctrl)
		only.EXPECT().Resolve(gomock.Any(), req).Return(domain.CommandSpec{}, false, nil)

		_, ok, err := chain.New(only).Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty chain", func(t *testing.T) {
		_, ok, err := chain.New().Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
