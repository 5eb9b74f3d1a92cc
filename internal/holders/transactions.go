package holders

import (
	"context"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/nft-holders/internal/domain"
	"github.com/feral-file/nft-holders/internal/logger"
	"github.com/feral-file/nft-holders/internal/providers/ergo"
)

// TransactionResolver fetches full transaction records concurrently
type TransactionResolver struct {
	explorer ergo.ExplorerClient
	// concurrency caps in-flight requests; 0 fetches the whole batch at once
	concurrency int
}

// NewTransactionResolver creates a new transaction resolver
func NewTransactionResolver(explorer ergo.ExplorerClient, concurrency int) *TransactionResolver {
	return &TransactionResolver{
		explorer:    explorer,
		concurrency: concurrency,
	}
}

// Resolve fetches every transaction and returns the ones that could be fetched,
// keeping the order of txIDs. Failed fetches are logged and dropped.
func (r *TransactionResolver) Resolve(ctx context.Context, txIDs []string) []*domain.Transaction {
	if len(txIDs) == 0 {
		return nil
	}

	size := r.concurrency
	if size <= 0 || size > len(txIDs) {
		size = len(txIDs)
	}

	pool := pond.NewResultPool[*domain.Transaction](size, pond.WithContext(ctx))
	defer pool.StopAndWait()

	// Submit everything before waiting on anything
	waits := make([]func() (*domain.Transaction, error), len(txIDs))
	for i, txID := range txIDs {
		task := pool.SubmitErr(func() (*domain.Transaction, error) {
			return r.explorer.GetTransaction(ctx, txID)
		})
		waits[i] = task.Wait
	}

	transactions := make([]*domain.Transaction, 0, len(txIDs))
	for i, wait := range waits {
		tx, err := wait()
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("tx_id", txIDs[i]))
			continue
		}
		if tx == nil {
			continue
		}
		transactions = append(transactions, tx)
	}

	logger.InfoCtx(ctx, "Retrieved transactions",
		zap.Int("requested", len(txIDs)),
		zap.Int("count", len(transactions)),
	)

	return transactions
}
