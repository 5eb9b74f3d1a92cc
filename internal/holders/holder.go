package holders

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/nft-holders/internal/domain"
	"github.com/feral-file/nft-holders/internal/logger"
	"github.com/feral-file/nft-holders/internal/providers/ergo"
)

// HolderResolver looks up the current holder of minted NFTs
type HolderResolver struct {
	explorer ergo.ExplorerClient
}

// NewHolderResolver creates a new holder resolver
func NewHolderResolver(explorer ergo.ExplorerClient) *HolderResolver {
	return &HolderResolver{
		explorer: explorer,
	}
}

// Lookup returns the address owning the live box of tokenID.
// It returns domain.ErrNoLiveBox when the token has no unspent box with an address.
func (r *HolderResolver) Lookup(ctx context.Context, tokenID string) (string, error) {
	page, err := r.explorer.GetUnspentBoxesByTokenID(ctx, tokenID)
	if err != nil {
		return "", err
	}

	// An NFT is a single unit so at most one box is live
	if page == nil || len(page.Items) == 0 || page.Items[0].Address == "" {
		return "", fmt.Errorf("%w: token %s", domain.ErrNoLiveBox, tokenID)
	}

	return page.Items[0].Address, nil
}

// Resolve looks up the holders of tokenIDs one at a time.
// Burned tokens and failed lookups are logged and left out of the result.
func (r *HolderResolver) Resolve(ctx context.Context, tokenIDs []string) *domain.HolderMap {
	holders := domain.NewHolderMap()

	for _, tokenID := range tokenIDs {
		address, err := r.Lookup(ctx, tokenID)
		if err != nil {
			if errors.Is(err, domain.ErrNoLiveBox) {
				logger.InfoCtx(ctx, "NFT burned or not found", zap.String("token_id", tokenID))
			} else {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to resolve holder: %w", err), zap.String("token_id", tokenID))
			}
			continue
		}

		holders.Set(tokenID, address)
		logger.DebugCtx(ctx, "Resolved holder", zap.String("token_id", tokenID), zap.String("address", address))
	}

	return holders
}
