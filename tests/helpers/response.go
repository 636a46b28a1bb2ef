package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// Envelope is the standard response body of the API: a human readable message
// in Portuguese plus a machine readable code on errors.
type Envelope struct {
	Mensagem       string   `json:"mensagem"`
	Codigo         string   `json:"codigo"`
	Erro           []string `json:"erro"`
	Token          string   `json:"token"`
	LinhasAfetadas int64    `json:"linhasAfetadas"`
}

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// ParseEnvelope decodes the response body into the standard envelope.
func ParseEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()
	var env Envelope
	ParseJSON(t, resp, &env)
	return env
}

// JSONBody encodes a value as a request body reader.
func JSONBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to encode JSON body: %v", err)
	}
	return bytes.NewReader(raw)
}
