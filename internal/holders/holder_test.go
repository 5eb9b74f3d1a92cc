package holders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-holders/internal/domain"
	"github.com/feral-file/nft-holders/internal/holders"
	"github.com/feral-file/nft-holders/internal/mocks"
)

func TestHolderResolver_Resolve_LiveBox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExplorer := mocks.NewMockExplorerClient(ctrl)
	resolver := holders.NewHolderResolver(mockExplorer)
	ctx := context.Background()

	mockExplorer.EXPECT().
		GetUnspentBoxesByTokenID(ctx, "nft1").
		Return(&domain.BoxPage{Items: []domain.Box{{Address: "9fHolderAddress"}}}, nil)

	result := resolver.Resolve(ctx, []string{"nft1"})

	address, ok := result.Get("nft1")
	require.True(t, ok)
	assert.Equal(t, "9fHolderAddress", address)
	assert.Equal(t, 1, result.Len())
}

func TestHolderResolver_Resolve_Burned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logs := observeLogs(t)
	mockExplorer := mocks.NewMockExplorerClient(ctrl)
	resolver := holders.NewHolderResolver(mockExplorer)
	ctx := context.Background()

	mockExplorer.EXPECT().
		GetUnspentBoxesByTokenID(ctx, "nft1").
		Return(&domain.BoxPage{Items: []domain.Box{}}, nil)

	result := resolver.Resolve(ctx, []string{"nft1"})

	_, ok := result.Get("nft1")
	assert.False(t, ok)
	assert.Equal(t, 0, result.Len())

	burned := logs.FilterMessage("NFT burned or not found").All()
	require.Len(t, burned, 1)
	assert.Equal(t, "nft1", burned[0].ContextMap()["token_id"])
}

func TestHolderResolver_Resolve_BoxWithoutAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logs := observeLogs(t)
	mockExplorer := mocks.NewMockExplorerClient(ctrl)
	resolver := holders.NewHolderResolver(mockExplorer)
	ctx := context.Background()

	mockExplorer.EXPECT().
		GetUnspentBoxesByTokenID(ctx, "nft1").
		Return(&domain.BoxPage{Items: []domain.Box{{BoxID: "b1"}}}, nil)

	result := resolver.Resolve(ctx, []string{"nft1"})

	assert.Equal(t, 0, result.Len())
	assert.Equal(t, 1, logs.FilterMessage("NFT burned or not found").Len())
}

func TestHolderResolver_Resolve_ContinuesAfterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logs := observeLogs(t)
	mockExplorer := mocks.NewMockExplorerClient(ctrl)
	resolver := holders.NewHolderResolver(mockExplorer)
	ctx := context.Background()

	gomock.InOrder(
		mockExplorer.EXPECT().
			GetUnspentBoxesByTokenID(ctx, "nft1").
			Return(nil, errors.New("request failed after retries")),
		mockExplorer.EXPECT().
			GetUnspentBoxesByTokenID(ctx, "nft2").
			Return(&domain.BoxPage{Items: []domain.Box{{Address: "addr2"}}}, nil),
	)

	result := resolver.Resolve(ctx, []string{"nft1", "nft2"})

	assert.Equal(t, []domain.Holding{{TokenID: "nft2", Address: "addr2"}}, result.Entries())
	assert.Equal(t, 1, logs.FilterMessageSnippet("failed to resolve holder").Len())
	assert.Equal(t, 0, logs.FilterMessage("NFT burned or not found").Len())
}

func TestHolderResolver_Lookup_NoLiveBox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExplorer := mocks.NewMockExplorerClient(ctrl)
	resolver := holders.NewHolderResolver(mockExplorer)
	ctx := context.Background()

	mockExplorer.EXPECT().
		GetUnspentBoxesByTokenID(ctx, "nft1").
		Return(&domain.BoxPage{}, nil)

	address, err := resolver.Lookup(ctx, "nft1")

	assert.Empty(t, address)
	assert.ErrorIs(t, err, domain.ErrNoLiveBox)
}
