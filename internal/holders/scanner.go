package holders

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/nft-holders/internal/domain"
	"github.com/feral-file/nft-holders/internal/logger"
	"github.com/feral-file/nft-holders/internal/providers/ergo"
)

// Scanner pages through every box that ever carried the collection token
type Scanner struct {
	explorer        ergo.ExplorerClient
	collectionToken string
	limit           int
}

// NewScanner creates a new box scanner
func NewScanner(explorer ergo.ExplorerClient, collectionToken string, limit int) *Scanner {
	return &Scanner{
		explorer:        explorer,
		collectionToken: collectionToken,
		limit:           limit,
	}
}

// Scan returns the distinct ids of the transactions that spent a collection box,
// in discovery order. A failing page ends the scan; what was collected so far is kept.
func (s *Scanner) Scan(ctx context.Context) []string {
	var txIDs []string
	seen := make(map[string]struct{})

	for offset := 0; ; offset += s.limit {
		page, err := s.explorer.GetBoxesByTokenID(ctx, s.collectionToken, s.limit, offset)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("token_id", s.collectionToken), zap.Int("offset", offset))
			break
		}

		if page == nil || len(page.Items) == 0 {
			break
		}

		kept := 0
		for _, box := range page.Items {
			if !domain.IsTxID(box.SpentTransactionID) {
				continue
			}
			kept++
			if _, ok := seen[box.SpentTransactionID]; ok {
				continue
			}
			seen[box.SpentTransactionID] = struct{}{}
			txIDs = append(txIDs, box.SpentTransactionID)
		}

		logger.InfoCtx(ctx, "Fetched collection boxes",
			zap.Int("offset", offset),
			zap.Int("spent", kept),
			zap.Int("total", len(txIDs)),
		)
	}

	logger.InfoCtx(ctx, "Retrieved spent collection boxes", zap.Int("count", len(txIDs)))

	return txIDs
}
