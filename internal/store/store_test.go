package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewUnknownKind verifies that an unregistered backend kind is rejected.
func TestNewUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{Kind: "nope", Bucket: "b"})
	require.Error(t, err)

	_, err = New(context.Background(), Config{Bucket: "b"})
	require.Error(t, err)
}

// TestLocalRoundTrip exercises write, read, list and delete against the
// local backend.
func TestLocalRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := New(ctx, Config{Kind: "local", Bucket: t.TempDir()})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write(ctx, "crm/cust_info.csv", []byte("a,b\n1,2\n")))
	require.NoError(t, s.Write(ctx, "erp/LOC_A101.csv", []byte("x\n")))

	got, err := ReadAll(ctx, s, "crm/cust_info.csv")
	require.NoError(t, err)
	require.Equal(t, "a,b\n1,2\n", string(got))

	objs, err := s.List(ctx, "crm/")
	require.NoError(t, err)
	require.Len(t, objs, 1)
	require.Equal(t, "crm/cust_info.csv", objs[0].Key)
	require.Equal(t, int64(8), objs[0].Size)

	require.NoError(t, s.Delete(ctx, "crm/cust_info.csv"))
	require.NoError(t, s.Delete(ctx, "crm/cust_info.csv")) // idempotent

	objs, err = s.List(ctx, "crm/")
	require.NoError(t, err)
	require.Empty(t, objs)
}

// TestLocalWriteOverwrites verifies full-overwrite semantics per key.
func TestLocalWriteOverwrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := New(ctx, Config{Kind: "local", Bucket: t.TempDir()})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write(ctx, "k", []byte("old old old")))
	require.NoError(t, s.Write(ctx, "k", []byte("new")))

	got, err := ReadAll(ctx, s, "k")
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
}

// TestReplacePrefix verifies that a refresh writes the new part object and
// removes every stale object under the prefix, leaving exactly one.
func TestReplacePrefix(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := New(ctx, Config{Kind: "local", Bucket: t.TempDir()})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write(ctx, "crm/cust_info/part-old.parquet", []byte("stale")))
	require.NoError(t, s.Write(ctx, "crm/cust_info/extra.parquet", []byte("stale")))
	require.NoError(t, s.Write(ctx, "crm/prd_info/part-00000.parquet", []byte("other unit")))

	require.NoError(t, ReplacePrefix(ctx, s, "crm/cust_info", "part-00000.parquet", []byte("fresh")))

	objs, err := s.List(ctx, "crm/cust_info/")
	require.NoError(t, err)
	require.Len(t, objs, 1)
	require.Equal(t, "crm/cust_info/part-00000.parquet", objs[0].Key)

	got, err := ReadAll(ctx, s, "crm/cust_info/part-00000.parquet")
	require.NoError(t, err)
	require.Equal(t, "fresh", string(got))

	// Sibling prefixes are untouched.
	objs, err = s.List(ctx, "crm/prd_info/")
	require.NoError(t, err)
	require.Len(t, objs, 1)
}
