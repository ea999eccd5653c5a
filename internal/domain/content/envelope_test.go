package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_JSON(t *testing.T) {
	var body struct {
		Content Envelope `json:"content"`
	}
	err := json.Unmarshal([]byte(`{"content":{"type":"phone","phone":"+15551234567"}}`), &body)
	require.NoError(t, err)
	assert.Equal(t, Phone{Phone: "+15551234567"}, body.Content.Descriptor)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":{"type":"phone","phone":"+15551234567"}}`, string(out))
}

func TestEnvelope_UnknownType(t *testing.T) {
	var e Envelope
	err := json.Unmarshal([]byte(`{"type":"fax"}`), &e)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestEnvelope_Null(t *testing.T) {
	var body struct {
		Content Envelope `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"content":null}`), &body))
	assert.Nil(t, body.Content.Descriptor)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))
	assert.Equal(t, Text{Text: "hi"}, Wrap(Text{Text: "hi"}).Descriptor)

	out, err := json.Marshal(struct {
		Content *Envelope `json:"content,omitempty"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}
