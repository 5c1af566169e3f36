package history

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	r := NewRecord(ModeDecrypt, true, 80, 12, at)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, TypeText, r.Type)
	assert.Equal(t, ModeDecrypt, r.Mode)
	assert.True(t, r.HasPassword)
	assert.Equal(t, 80, r.ContentLength)
	assert.Equal(t, 12, r.MessageLength)
	assert.Equal(t, at, r.Timestamp)

	assert.NotEqual(t, r.ID, NewRecord(ModeDecrypt, true, 80, 12, at).ID)
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		r := NewRecord(ModeEncrypt, false, i, i, time.Now())
		ids = append(ids, r.ID)
		require.NoError(t, s.Record(ctx, r))
	}

	got, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, ids[2], got[0].ID)
	assert.Equal(t, ids[0], got[2].ID)

	limited, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, ids[2], limited[0].ID)
}

func TestMemoryStore_DropsOldest(t *testing.T) {
	s := NewMemoryStore(2)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		r := NewRecord(ModeEncrypt, false, i, i, time.Now())
		ids = append(ids, r.ID)
		require.NoError(t, s.Record(ctx, r))
	}

	assert.Equal(t, 2, s.Len())

	got, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{ids[4], ids[3]}, []string{got[0].ID, got[1].ID})
}

func TestMemoryStore_Clear(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Record(ctx, NewRecord(ModeEncrypt, false, i, i, time.Now())))
	}
	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, 0, s.Len())

	got, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Record(ctx, NewRecord(ModeDecrypt, false, 1, 1, time.Now())))
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_Empty(t *testing.T) {
	got, err := NewMemoryStore(10).List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Record(ctx, NewRecord(ModeEncrypt, false, 1, 1, time.Now()))
			_, _ = s.List(ctx, 5)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}

func TestStores_ImplementInterfaces(_ *testing.T) {
	var _ Recorder = (*MemoryStore)(nil)
	var _ Lister = (*MemoryStore)(nil)
	var _ Clearer = (*MemoryStore)(nil)
	var _ Recorder = (*SQLiteStore)(nil)
	var _ Lister = (*SQLiteStore)(nil)
	var _ Clearer = (*SQLiteStore)(nil)
}
