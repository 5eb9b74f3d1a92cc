package ergo_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-holders/internal/adapter"
	"github.com/feral-file/nft-holders/internal/domain"
	"github.com/feral-file/nft-holders/internal/logger"
	"github.com/feral-file/nft-holders/internal/mocks"
	"github.com/feral-file/nft-holders/internal/providers/ergo"
)

const (
	EXPLORER_URL = "https://api.ergoplatform.test/api/v1"
)

var (
	collectionToken = domain.DEFAULT_COLLECTION_TOKEN
	spentTxID       = strings.Repeat("ab", 32)
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestExplorerClient_GetBoxesByTokenID_BuildsURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := ergo.NewExplorerClient(EXPLORER_URL+"/", mockHTTPClient)

	ctx := context.Background()
	expectedURL := EXPLORER_URL + "/boxes/byTokenId/" + collectionToken + "?limit=100&offset=200"

	mockHTTPClient.EXPECT().
		Get(ctx, expectedURL, gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, result interface{}) error {
			page := result.(*domain.BoxPage)
			page.Items = []domain.Box{{BoxID: "box1", SpentTransactionID: spentTxID}}
			page.Total = 201
			return nil
		}).
		Times(1)

	page, err := client.GetBoxesByTokenID(ctx, collectionToken, 100, 200)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "box1", page.Items[0].BoxID)
	assert.Equal(t, spentTxID, page.Items[0].SpentTransactionID)
	assert.Equal(t, 201, page.Total)
}

func TestExplorerClient_GetBoxesByTokenID_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := ergo.NewExplorerClient(EXPLORER_URL, mockHTTPClient)

	ctx := context.Background()
	mockHTTPClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		Return(errors.New("network error")).
		Times(1)

	page, err := client.GetBoxesByTokenID(ctx, collectionToken, 100, 0)

	assert.Error(t, err)
	assert.Nil(t, page)
	assert.Contains(t, err.Error(), "failed to get boxes for token")
	assert.Contains(t, err.Error(), "network error")
}

func TestExplorerClient_GetUnspentBoxesByTokenID_BuildsURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := ergo.NewExplorerClient(EXPLORER_URL, mockHTTPClient)

	ctx := context.Background()
	mockHTTPClient.EXPECT().
		Get(ctx, EXPLORER_URL+"/boxes/unspent/byTokenId/nft1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, result interface{}) error {
			page := result.(*domain.BoxPage)
			page.Items = []domain.Box{{Address: "9fHolder"}}
			return nil
		})

	page, err := client.GetUnspentBoxesByTokenID(ctx, "nft1")

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "9fHolder", page.Items[0].Address)
}

func TestExplorerClient_GetTransaction_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := ergo.NewExplorerClient(EXPLORER_URL, mockHTTPClient)

	ctx := context.Background()
	mockHTTPClient.EXPECT().
		Get(ctx, EXPLORER_URL+"/transactions/t1", gomock.Any()).
		Return(&adapter.StatusError{StatusCode: http.StatusNotFound})

	tx, err := client.GetTransaction(ctx, "t1")

	assert.Nil(t, tx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get transaction t1")

	var statusErr *adapter.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

// TestExplorerClient_RealHTTPClient decodes explorer payloads through the retrying HTTP client
func TestExplorerClient_RealHTTPClient(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, EXPLORER_URL+"/transactions/t1",
		httpmock.NewStringResponder(http.StatusOK, `{
			"id": "t1",
			"inputs": [{"boxId": "A", "value": 1000000}],
			"outputs": [
				{"boxId": "out1", "address": "9fMinter", "assets": [{"tokenId": "A", "index": 0, "amount": 1}]},
				{"boxId": "out2", "address": "9fChange"}
			]
		}`))

	httpClient := adapter.NewHTTPClient(5*time.Second, adapter.RetryPolicy{MaxRetries: 0})
	client := ergo.NewExplorerClient(EXPLORER_URL, httpClient)

	tx, err := client.GetTransaction(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "t1", tx.ID)
	require.Len(t, tx.Inputs, 1)
	assert.Equal(t, "A", tx.Inputs[0].BoxID)
	require.Len(t, tx.Outputs, 2)
	assert.Equal(t, []domain.Asset{{TokenID: "A", Amount: 1}}, tx.Outputs[0].Assets)
	assert.Nil(t, tx.Outputs[1].Assets)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}
