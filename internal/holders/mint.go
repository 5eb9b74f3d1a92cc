package holders

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/nft-holders/internal/domain"
	"github.com/feral-file/nft-holders/internal/logger"
)

// DetectMint reports the token minted by tx, if any.
//
// A transaction mints token T when T is carried by one of its outputs and T is also
// the id of one of its input boxes. The first match in output order wins.
// The collection token itself is not excluded.
func DetectMint(ctx context.Context, tx *domain.Transaction) (string, bool) {
	if err := tx.Validate(); err != nil {
		fields := []zap.Field{zap.Error(err)}
		if tx != nil {
			fields = append(fields, zap.String("tx_id", tx.ID))
		}
		logger.WarnCtx(ctx, "Invalid transaction data", fields...)
		return "", false
	}

	inputs := tx.InputBoxIDs()
	for _, tokenID := range tx.OutputTokenIDs() {
		if _, ok := inputs[tokenID]; ok {
			return tokenID, true
		}
	}

	return "", false
}

// DetectMints returns the minted token ids across transactions, in transaction order
func DetectMints(ctx context.Context, transactions []*domain.Transaction) []string {
	var mints []string
	for _, tx := range transactions {
		if tokenID, ok := DetectMint(ctx, tx); ok {
			mints = append(mints, tokenID)
		}
	}

	logger.InfoCtx(ctx, "Found mints", zap.Int("count", len(mints)))

	return mints
}
