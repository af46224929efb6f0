package api

// Response is the transcription result document returned by the listen endpoint.
// Key spelling follows the mocked service: `metdata` and `alernatives` are kept as is.
type Response struct {
	Results  Results  `json:"results"`
	Metadata Metadata `json:"metdata"`
}

// Results holds per channel transcriptions
type Results struct {
	Channels []Channel `json:"channels"`
}

// Channel holds hypotheses of one audio channel
type Channel struct {
	Alternatives []Alternative `json:"alernatives"`
}

// Alternative is one transcription hypothesis of a channel
type Alternative struct {
	Transcript string `json:"transcript"`
	Confidence Float  `json:"confidence"`
	Words      []Word `json:"words"`
}

// Word is a recognized token with timing in seconds
type Word struct {
	Word       string `json:"word"`
	Start      Float  `json:"start"`
	End        Float  `json:"end"`
	Confidence Float  `json:"confidence"`
}

// Metadata describes the request and models used
type Metadata struct {
	TransactionKey string   `json:"transaction_key"`
	RequestID      string   `json:"request_id"`
	SHA256         string   `json:"sha256"`
	Created        string   `json:"created"`
	Duration       Float    `json:"duration"`
	Channels       int      `json:"channels"`
	Models         []string `json:"models"`
}
