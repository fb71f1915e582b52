package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_NothingConfigured(t *testing.T) {
	st, err := Open(Options{SupabaseURL: "https://x.supabase.co"})
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestOpen_REST(t *testing.T) {
	st, err := Open(Options{SupabaseURL: "https://x.supabase.co/", SupabaseKey: "anon", Timeout: 3 * time.Second})
	require.NoError(t, err)
	rs, ok := st.(*RESTStore)
	require.True(t, ok)
	assert.Equal(t, "https://x.supabase.co", rs.BaseURL)
	assert.Equal(t, "anon", rs.APIKey)
}
