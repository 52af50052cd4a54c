package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupoherz/conversation-dashboard/pkg/logger"
)

func newTestClient(url string) *Client {
	return NewClient(Config{URL: url, Timeout: 2 * time.Second}, logger.NewNop())
}

func TestFetchArrayPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`[{"id":"1","from":"A","msg":"hi","tempo":1700000000}]`))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0].From)
	assert.True(t, records[0].ReceivedAt.Known())
}

func TestFetchWrappedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"1","from":"A","msg":"hi"},{"id":"2","from":"B"}]}`))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFetchMalformedBodyIsEmptyNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchUnreachable(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1").Fetch(context.Background())
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		body string
		kind PayloadKind
		n    int
	}{
		{"bare array", `[{"from":"A"},{"from":"B"}]`, PayloadArray, 2},
		{"empty array", `[]`, PayloadArray, 0},
		{"wrapped", `{"data":[{"from":"A"}]}`, PayloadWrapped, 1},
		{"wrapped non-array data", `{"data":{"from":"A"}}`, PayloadUnrecognized, 0},
		{"object without data", `{"rows":[]}`, PayloadUnrecognized, 0},
		{"scalar", `42`, PayloadUnrecognized, 0},
		{"garbage", `not json`, PayloadUnrecognized, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, kind := Classify([]byte(tc.body))
			assert.Equal(t, tc.kind, kind)
			assert.Len(t, records, tc.n)
		})
	}
}
