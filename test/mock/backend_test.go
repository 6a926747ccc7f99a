package mock

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_RepliesAndRecords(t *testing.T) {
	b := NewBackend().On(http.MethodGet, "/seats?flight=F1", http.StatusOK, `[1]`)
	defer b.Close()

	req, err := http.NewRequest(http.MethodGet, b.URL()+"/seats?flight=F1", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "r1")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `[1]`, string(body))

	calls := b.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/seats", calls[0].Path)
	assert.Equal(t, "/seats?flight=F1", calls[0].URI())
	assert.Equal(t, "r1", calls[0].RequestID)
}

func TestBackend_UnconfiguredIs404(t *testing.T) {
	b := NewBackend()
	defer b.Close()

	resp, err := http.Post(b.URL()+"/x", "application/json", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"a":1}`, b.Calls()[0].Body)
}

func TestBackend_Reset(t *testing.T) {
	b := NewBackend()
	defer b.Close()

	resp, err := http.Get(b.URL() + "/")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 1, b.CallCount())

	b.Reset()
	assert.Equal(t, 0, b.CallCount())
}

func TestBackend_WithDelay(t *testing.T) {
	b := NewBackend().WithDelay(30 * time.Millisecond)
	defer b.Close()

	start := time.Now()
	resp, err := http.Get(b.URL() + "/")
	require.NoError(t, err)
	resp.Body.Close()

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestUnreachableURL(t *testing.T) {
	_, err := http.Get(UnreachableURL() + "/")
	assert.Error(t, err)
}
