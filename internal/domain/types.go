package domain

import (
	"fmt"
	"strings"
)

// Asset represents a token balance carried by a box
type Asset struct {
	TokenID string `json:"tokenId"`
	Amount  uint64 `json:"amount"`
}

// Box represents a UTXO-like output record returned by the explorer
type Box struct {
	BoxID              string  `json:"boxId"`
	TransactionID      string  `json:"transactionId"`
	SpentTransactionID string  `json:"spentTransactionId"`
	Address            string  `json:"address"`
	Assets             []Asset `json:"assets"`
}

// BoxPage represents a page of boxes from a paginated explorer endpoint
type BoxPage struct {
	Items []Box `json:"items"`
	Total int   `json:"total"`
}

// Input represents a box consumed by a transaction
type Input struct {
	BoxID string `json:"boxId"`
}

// Transaction represents a full transaction record.
// Inputs and Outputs are nil when the explorer omits them.
type Transaction struct {
	ID      string  `json:"id"`
	Inputs  []Input `json:"inputs"`
	Outputs []Box   `json:"outputs"`
}

// Validate reports whether the transaction carries both inputs and outputs
func (t *Transaction) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidTransaction)
	}
	if t.Inputs == nil {
		return fmt.Errorf("%w: missing inputs", ErrInvalidTransaction)
	}
	if t.Outputs == nil {
		return fmt.Errorf("%w: missing outputs", ErrInvalidTransaction)
	}

	return nil
}

// InputBoxIDs returns the set of box ids consumed by the transaction
func (t *Transaction) InputBoxIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(t.Inputs))
	for _, in := range t.Inputs {
		ids[in.BoxID] = struct{}{}
	}
	return ids
}

// OutputTokenIDs returns the token ids of all output assets, flattened in output order
func (t *Transaction) OutputTokenIDs() []string {
	var tokenIDs []string
	for _, out := range t.Outputs {
		for _, asset := range out.Assets {
			tokenIDs = append(tokenIDs, asset.TokenID)
		}
	}
	return tokenIDs
}

// IsTxID checks if s has the length of a transaction id.
// Only the length is checked.
func IsTxID(s string) bool {
	return len(s) == ID_LENGTH
}

// IsTokenID checks if s is a 64 character hex token id
func IsTokenID(s string) bool {
	if len(s) != ID_LENGTH {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F')
	}) == -1
}

// Holding is a single NFT to holder address row
type Holding struct {
	TokenID string
	Address string
}

// HolderMap maps minted token ids to their current holder address.
// Entries keep the order in which a token id was first set.
type HolderMap struct {
	order   []string
	holders map[string]string
}

// NewHolderMap creates an empty holder map
func NewHolderMap() *HolderMap {
	return &HolderMap{
		holders: make(map[string]string),
	}
}

// Set records the holder of a token, replacing any previous address
func (m *HolderMap) Set(tokenID, address string) {
	if _, ok := m.holders[tokenID]; !ok {
		m.order = append(m.order, tokenID)
	}
	m.holders[tokenID] = address
}

// Get returns the holder address of a token
func (m *HolderMap) Get(tokenID string) (string, bool) {
	address, ok := m.holders[tokenID]
	return address, ok
}

// Len returns the number of tokens in the map
func (m *HolderMap) Len() int {
	return len(m.order)
}

// Entries returns all holdings in insertion order
func (m *HolderMap) Entries() []Holding {
	entries := make([]Holding, 0, len(m.order))
	for _, tokenID := range m.order {
		entries = append(entries, Holding{
			TokenID: tokenID,
			Address: m.holders[tokenID],
		})
	}
	return entries
}
