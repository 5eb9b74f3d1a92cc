package ergo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/feral-file/nft-holders/internal/adapter"
	"github.com/feral-file/nft-holders/internal/domain"
)

// ExplorerClient defines an interface for Ergo explorer API client operations to enable mocking
//
//go:generate mockgen -source=explorer_client.go -destination=../../mocks/explorer_client.go -package=mocks -mock_names=ExplorerClient=MockExplorerClient
type ExplorerClient interface {
	// GetBoxesByTokenID returns one page of every box that ever carried the token
	GetBoxesByTokenID(ctx context.Context, tokenID string, limit, offset int) (*domain.BoxPage, error)

	// GetUnspentBoxesByTokenID returns the unspent boxes currently carrying the token
	GetUnspentBoxesByTokenID(ctx context.Context, tokenID string) (*domain.BoxPage, error)

	// GetTransaction retrieves a full transaction by its id
	GetTransaction(ctx context.Context, txID string) (*domain.Transaction, error)
}

// explorerClient is the concrete implementation of ExplorerClient
type explorerClient struct {
	baseURL    string
	httpClient adapter.HTTPClient
}

// NewExplorerClient creates a new Ergo explorer API client
func NewExplorerClient(baseURL string, httpClient adapter.HTTPClient) ExplorerClient {
	return &explorerClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetBoxesByTokenID returns one page of every box that ever carried the token
func (c *explorerClient) GetBoxesByTokenID(ctx context.Context, tokenID string, limit, offset int) (*domain.BoxPage, error) {
	u := fmt.Sprintf("%s/boxes/byTokenId/%s?limit=%d&offset=%d", c.baseURL, url.PathEscape(tokenID), limit, offset)

	var page domain.BoxPage
	if err := c.httpClient.Get(ctx, u, &page); err != nil {
		return nil, fmt.Errorf("failed to get boxes for token %s at offset %d: %w", tokenID, offset, err)
	}

	return &page, nil
}

// GetUnspentBoxesByTokenID returns the unspent boxes currently carrying the token
func (c *explorerClient) GetUnspentBoxesByTokenID(ctx context.Context, tokenID string) (*domain.BoxPage, error) {
	u := fmt.Sprintf("%s/boxes/unspent/byTokenId/%s", c.baseURL, url.PathEscape(tokenID))

	var page domain.BoxPage
	if err := c.httpClient.Get(ctx, u, &page); err != nil {
		return nil, fmt.Errorf("failed to get unspent boxes for token %s: %w", tokenID, err)
	}

	return &page, nil
}

// GetTransaction retrieves a full transaction by its id
func (c *explorerClient) GetTransaction(ctx context.Context, txID string) (*domain.Transaction, error) {
	u := fmt.Sprintf("%s/transactions/%s", c.baseURL, url.PathEscape(txID))

	var tx domain.Transaction
	if err := c.httpClient.Get(ctx, u, &tx); err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", txID, err)
	}

	return &tx, nil
}
