package policy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github-rebac/internal/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPermit(t *testing.T, handler http.HandlerFunc) *policy.PermitClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return policy.NewPermitClient(policy.PermitConfig{
		PDPURL:      server.URL,
		APIURL:      server.URL,
		APIKey:      "permit_key_test",
		Project:     "proj",
		Environment: "dev",
		Retries:     1,
	}, policy.WithRetryWait(time.Millisecond, time.Millisecond))
}

func TestPermitClient_Check(t *testing.T) {
	var got map[string]any
	client := newPermit(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/allowed", r.URL.Path)
		assert.Equal(t, "Bearer permit_key_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"allow": true}`))
	})

	allowed, err := client.Check(context.Background(), "user:alice@example.com", "write", "repository:7")
	require.NoError(t, err)
	assert.True(t, allowed)

	assert.Equal(t, "write", got["action"])
	assert.Equal(t, map[string]any{"key": "alice@example.com"}, got["user"])
	assert.Equal(t, map[string]any{"type": "repository", "key": "7", "tenant": "default"}, got["resource"])
}

func TestPermitClient_Check_Denied(t *testing.T) {
	client := newPermit(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"allow": false}`))
	})

	allowed, err := client.Check(context.Background(), "user:bob@example.com", "admin", "repository:7")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPermitClient_Check_RetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	client := newPermit(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Check(context.Background(), "user:bob@example.com", "read", "repository:1")
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPermitClient_Check_ClientError(t *testing.T) {
	client := newPermit(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	})

	_, err := client.Check(context.Background(), "user:bob@example.com", "read", "repository:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "bad key")
}

func TestPermitClient_Tuples(t *testing.T) {
	type call struct {
		method string
		path   string
		body   map[string]any
	}
	var calls []call

	client := newPermit(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, call{r.Method, r.URL.Path, body})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})

	ctx := context.Background()
	tuple := policy.Tuple{Subject: "user:alice@example.com", Relation: "admin", Object: "repository:3"}
	require.NoError(t, client.CreateTuple(ctx, tuple))
	require.NoError(t, client.DeleteTuple(ctx, tuple))
	require.NoError(t, client.CreateResourceInstance(ctx, policy.ResourceInstance{
		Resource:   "repository",
		Key:        "3",
		Attributes: map[string]any{"name": "demo"},
	}))

	require.Len(t, calls, 3)

	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Equal(t, "/v2/facts/proj/dev/relationship_tuples", calls[0].path)
	assert.Equal(t, "user:alice@example.com", calls[0].body["subject"])
	assert.Equal(t, "admin", calls[0].body["relation"])
	assert.Equal(t, "repository:3", calls[0].body["object"])
	assert.Equal(t, "default", calls[0].body["tenant"])

	assert.Equal(t, http.MethodDelete, calls[1].method)
	assert.Equal(t, "/v2/facts/proj/dev/relationship_tuples", calls[1].path)

	assert.Equal(t, "/v2/facts/proj/dev/resource_instances", calls[2].path)
	assert.Equal(t, "3", calls[2].body["key"])
	assert.Equal(t, "repository", calls[2].body["resource"])
	assert.Equal(t, map[string]any{"name": "demo"}, calls[2].body["attributes"])
}

func TestPermitClient_Ping(t *testing.T) {
	client := newPermit(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/schema/proj/dev/resources", r.URL.Path)
		_, _ = w.Write([]byte(`[{"key":"repository"},{"key":"team"},{"key":"pull_request"}]`))
	})

	n, err := client.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
