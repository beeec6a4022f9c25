package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(token, &Options{BaseURL: server.URL, HTTPClient: server.Client()})
	return client, server
}

func TestGetJSON_SendsHeaders(t *testing.T) {
	var gotAccept, gotUA, gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{}`)
	})
	client, _ := newTestClient(t, handler, "tok123")

	var out map[string]any
	require.NoError(t, client.getJSON(context.Background(), "/users/x", &out))

	assert.Equal(t, "application/vnd.github.v3+json", gotAccept)
	assert.Equal(t, DefaultUserAgent, gotUA)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestGetJSON_NoTokenOmitsAuthorization(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{}`)
	})
	client, _ := newTestClient(t, handler, "")

	var out map[string]any
	require.NoError(t, client.getJSON(context.Background(), "/users/x", &out))
	assert.Empty(t, gotAuth)
}

func TestGetJSON_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		headers    map[string]string
		checkError func(t *testing.T, err error)
	}{
		{
			name:   "404 maps to NotFoundError",
			status: http.StatusNotFound,
			checkError: func(t *testing.T, err error) {
				var notFound *NotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Contains(t, notFound.Endpoint, "/users/x")
			},
		},
		{
			name:    "403 maps to RateLimitError with quota headers",
			status:  http.StatusForbidden,
			headers: map[string]string{"X-RateLimit-Remaining": "0", "X-RateLimit-Reset": "1700000000"},
			checkError: func(t *testing.T, err error) {
				var rateLimit *RateLimitError
				require.ErrorAs(t, err, &rateLimit)
				assert.Equal(t, "0", rateLimit.Remaining)
				assert.Equal(t, "1700000000", rateLimit.Reset)
				assert.Contains(t, rateLimit.Error(), "rate limit")
			},
		},
		{
			name:   "500 maps to APIError",
			status: http.StatusInternalServerError,
			checkError: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			})
			client, _ := newTestClient(t, handler, "")

			var out map[string]any
			err := client.getJSON(context.Background(), "/users/x", &out)
			require.Error(t, err)
			tt.checkError(t, err)
		})
	}
}

func TestListAll_FullPageTriggersFollowUp(t *testing.T) {
	var pagesRequested []int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pagesRequested = append(pagesRequested, page)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		count := perPage
		if page == 2 {
			count = 3
		}
		items := make([]map[string]any, count)
		for i := range items {
			items[i] = map[string]any{"id": i}
		}
		_ = json.NewEncoder(w).Encode(items)
	})
	client, _ := newTestClient(t, handler, "")

	items, err := client.listAll(context.Background(), "/users/x/repos")
	require.NoError(t, err)
	assert.Len(t, items, perPage+3)
	assert.Equal(t, []int{1, 2}, pagesRequested)
}

func TestListAll_ShortFirstPageTerminates(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `[{"id": 1}]`)
	})
	client, _ := newTestClient(t, handler, "")

	items, err := client.listAll(context.Background(), "/users/x/repos")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, calls)
}

func TestListAll_EmptyFirstPageTerminates(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `[]`)
	})
	client, _ := newTestClient(t, handler, "")

	items, err := client.listAll(context.Background(), "/users/x/repos")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, calls)
}

func TestListAll_QueryEndpointUsesAmpersand(t *testing.T) {
	var rawQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		fmt.Fprint(w, `[]`)
	})
	client, _ := newTestClient(t, handler, "")

	_, err := client.listAll(context.Background(), "/repos/x/y/commits?sha=main")
	require.NoError(t, err)
	assert.Contains(t, rawQuery, "sha=main")
	assert.Contains(t, rawQuery, "page=1")
}
