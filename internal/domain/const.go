package domain

const (
	// Explorer constants
	DEFAULT_EXPLORER_BASE_URL = "https://api.ergoplatform.com/api/v1"

	// Collection constants
	DEFAULT_COLLECTION_TOKEN = "09fe0a68151c238bee4ecce065ef29ca1c896fdd64284c0a51e80ce0c5b30b33"

	// Identifier constants
	ID_LENGTH = 64
)
