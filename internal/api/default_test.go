package api

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	r := NewResponse()
	require.Len(t, r.Results.Channels, 1)
	require.Len(t, r.Results.Channels[0].Alternatives, 1)
	alt := r.Results.Channels[0].Alternatives[0]
	assert.Equal(t, "lorem ipsum dolor sit amet", alt.Transcript)
	assert.Equal(t, Float(0.95), alt.Confidence)
	require.Len(t, alt.Words, 5)
	for i, w := range []string{"lorem", "ipsum", "dolor", "sit", "amet"} {
		assert.Equal(t, Word{Word: w, Start: 0, End: 1.1, Confidence: 2}, alt.Words[i])
	}
	assert.Equal(t, Metadata{TransactionKey: "transaction_key", RequestID: "request_id", SHA256: "sha256",
		Created: "created", Duration: 20, Channels: 0, Models: []string{"nova"}}, r.Metadata)
}

func TestNewResponse_Fresh(t *testing.T) {
	r1 := NewResponse()
	r1.Results.Channels[0].Alternatives[0].Words[0].Word = "changed"
	r1.Metadata.Models[0] = "changed"

	r2 := NewResponse()
	assert.Equal(t, "lorem", r2.Results.Channels[0].Alternatives[0].Words[0].Word)
	assert.Equal(t, []string{"nova"}, r2.Metadata.Models)
}

func TestNewWord(t *testing.T) {
	tests := []struct {
		name string
		word string
	}{
		{name: "simple", word: "lorem"},
		{name: "empty", word: ""},
		{name: "non ascii", word: "ñandú"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewWord(tt.word)
			assert.Equal(t, tt.word, got.Word)
			assert.Equal(t, Float(0), got.Start)
			assert.Equal(t, Float(1.1), got.End)
			assert.True(t, got.End >= got.Start)
			assert.Equal(t, Float(2), got.Confidence)
		})
	}
}

func TestResponse_JSON(t *testing.T) {
	b, err := json.Marshal(NewResponse())
	require.NoError(t, err)
	want := `{"results":{"channels":[{"alernatives":[{"transcript":"lorem ipsum dolor sit amet","confidence":0.95,"words":[` +
		`{"word":"lorem","start":0.0,"end":1.1,"confidence":2.0},` +
		`{"word":"ipsum","start":0.0,"end":1.1,"confidence":2.0},` +
		`{"word":"dolor","start":0.0,"end":1.1,"confidence":2.0},` +
		`{"word":"sit","start":0.0,"end":1.1,"confidence":2.0},` +
		`{"word":"amet","start":0.0,"end":1.1,"confidence":2.0}]}]}]},` +
		`"metdata":{"transaction_key":"transaction_key","request_id":"request_id","sha256":"sha256","created":"created",` +
		`"duration":20.0,"channels":0,"models":["nova"]}}`
	assert.Equal(t, want, string(b))
}

func TestFloat_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		v       Float
		want    string
		wantErr bool
	}{
		{name: "zero", v: 0, want: "0.0"},
		{name: "integer", v: 20, want: "20.0"},
		{name: "fraction", v: 0.95, want: "0.95"},
		{name: "negative", v: -2, want: "-2.0"},
		{name: "big", v: 1e21, want: "1000000000000000000000.0"},
		{name: "NaN", v: Float(math.NaN()), wantErr: true},
		{name: "Inf", v: Float(math.Inf(1)), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
