package turso

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutePipelineRequest(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody pipelineRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL, Token: "tok-123"})

	stmts := []Stmt{
		{SQL: "DELETE FROM sakima_shows"},
		{SQL: "INSERT INTO sakima_shows (title) VALUES (?)", Args: []Arg{Text("Friday Night")}},
	}
	resp, err := client.Execute(stmts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(resp))

	assert.Equal(t, "/v2/pipeline", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)

	// Every statement as an execute step, then a trailing close.
	require.Len(t, gotBody.Requests, 3)
	assert.Equal(t, "execute", gotBody.Requests[0].Type)
	assert.Equal(t, "DELETE FROM sakima_shows", gotBody.Requests[0].Stmt.SQL)
	assert.Equal(t, "execute", gotBody.Requests[1].Type)
	assert.Equal(t, "close", gotBody.Requests[2].Type)
	assert.Nil(t, gotBody.Requests[2].Stmt)
}

func TestExecuteArgsAreStrings(t *testing.T) {
	var raw map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &raw))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL, Token: "t"})
	_, err := client.Execute([]Stmt{
		{SQL: "INSERT", Args: []Arg{Text("hello"), Integer(42)}},
	})
	require.NoError(t, err)

	requests := raw["requests"].([]any)
	stmt := requests[0].(map[string]any)["stmt"].(map[string]any)
	args := stmt["args"].([]any)

	first := args[0].(map[string]any)
	assert.Equal(t, "text", first["type"])
	assert.Equal(t, "hello", first["value"])

	// Integers are typed integer but transmitted as strings.
	second := args[1].(map[string]any)
	assert.Equal(t, "integer", second["type"])
	assert.Equal(t, "42", second["value"])
}

func TestExecuteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad token"}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL, Token: "bad"})
	_, err := client.Execute([]Stmt{{SQL: "SELECT 1"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "bad token")
}

func TestExecuteConnectionRefused(t *testing.T) {
	client := NewClient(ClientConfig{URL: "http://127.0.0.1:1", Token: "t"})
	_, err := client.Execute([]Stmt{{SQL: "SELECT 1"}})
	require.Error(t, err)
}
