package api

const (
	// Transcript is the text of the only alternative
	Transcript = "lorem ipsum dolor sit amet"
	// Model is the model name reported in metadata
	Model = "nova"
)

// Words are the tokens of Transcript in order
var Words = [...]string{"lorem", "ipsum", "dolor", "sit", "amet"}

// NewResponse builds the fixed transcription result
func NewResponse() *Response {
	return &Response{
		Results: Results{
			Channels: []Channel{{Alternatives: []Alternative{NewAlternative()}}},
		},
		Metadata: NewMetadata(),
	}
}

// NewMetadata returns metadata filled with placeholder values
func NewMetadata() Metadata {
	return Metadata{
		TransactionKey: "transaction_key",
		RequestID:      "request_id",
		SHA256:         "sha256",
		Created:        "created",
		Duration:       20.0,
		Channels:       0,
		Models:         []string{Model},
	}
}

// NewAlternative returns the only hypothesis with words of Transcript
func NewAlternative() Alternative {
	res := Alternative{Transcript: Transcript, Confidence: 0.95}
	res.Words = make([]Word, 0, len(Words))
	for _, w := range Words {
		res.Words = append(res.Words, NewWord(w))
	}
	return res
}

// NewWord returns a word with fixed timing.
// Confidence stays 2.0 (outside of [0, 1]) as the mocked service returns.
func NewWord(w string) Word {
	return Word{Word: w, Start: 0.0, End: 1.1, Confidence: 2.0}
}
