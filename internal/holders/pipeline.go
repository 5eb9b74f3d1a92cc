package holders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/nft-holders/internal/domain"
	"github.com/feral-file/nft-holders/internal/logger"
	"github.com/feral-file/nft-holders/internal/providers/ergo"
)

// ReportWriter persists the final holder map
type ReportWriter interface {
	Write(holders *domain.HolderMap) error
	Path() string
}

// Config holds the pipeline settings
type Config struct {
	CollectionToken string
	BatchLimit      int
	TxConcurrency   int
}

// Summary holds the counts of a completed run
type Summary struct {
	SpentBoxes   int
	Transactions int
	Mints        int
	Holders      int
	OutputFile   string
}

// Pipeline chains scan, transaction lookup, mint detection, holder lookup and report writing
type Pipeline struct {
	scanner        *Scanner
	txResolver     *TransactionResolver
	holderResolver *HolderResolver
	writer         ReportWriter
}

// NewPipeline creates a new pipeline reading from explorer and writing with writer
func NewPipeline(cfg Config, explorer ergo.ExplorerClient, writer ReportWriter) *Pipeline {
	return &Pipeline{
		scanner:        NewScanner(explorer, cfg.CollectionToken, cfg.BatchLimit),
		txResolver:     NewTransactionResolver(explorer, cfg.TxConcurrency),
		holderResolver: NewHolderResolver(explorer),
		writer:         writer,
	}
}

// Run executes the pipeline once. The report is written only at the very end;
// a canceled context before that point leaves no file behind.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	txIDs := p.scanner.Scan(ctx)
	transactions := p.txResolver.Resolve(ctx, txIDs)
	mints := DetectMints(ctx, transactions)
	holders := p.holderResolver.Resolve(ctx, mints)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run interrupted before writing report: %w", err)
	}

	if err := p.writer.Write(holders); err != nil {
		return nil, err
	}

	summary := &Summary{
		SpentBoxes:   len(txIDs),
		Transactions: len(transactions),
		Mints:        len(mints),
		Holders:      holders.Len(),
		OutputFile:   p.writer.Path(),
	}

	logger.InfoCtx(ctx, "CSV file has been created with NFT and Address data", zap.String("output_file", summary.OutputFile))
	logger.InfoCtx(ctx, "Run completed",
		zap.Int("nfts_processed", summary.Mints),
		zap.Int("nfts_with_address", summary.Holders),
	)

	return summary, nil
}
