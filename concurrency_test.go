package cas_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blobstore/cas"
)

func TestConcurrentIdenticalWrites(t *testing.T) {
	s := newStore(t)
	data := make([]byte, 10<<20) // 10 MiB
	_, err := rand.Read(data)
	require.NoError(t, err)

	const writers = 4
	addrs := make([]cas.Address, writers)
	errs := make([]error, writers)

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			addrs[i], errs[i] = s.Write(context.Background(), bytes.NewReader(data))
		}(i)
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, addrs[0], addrs[i])
	}

	f, ok := s.TryOpen(addrs[0], cas.ReadNone, "")
	require.True(t, ok)
	info, err := f.Stat()
	require.NoError(t, err)
	assert.EqualValues(t, len(data), info.Size())
	assert.Zero(t, info.Mode().Perm()&0o222)
	f.Close()

	var count int
	for range s.List() {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestConcurrentWritesOfDistinctContent(t *testing.T) {
	s := newStore(t)
	const writers = 8

	var wg sync.WaitGroup
	wg.Add(writers)
	addrs := make([]cas.Address, writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			buf := make([]byte, 256)
			_, _ = rand.Read(buf)
			addr, err := s.Write(context.Background(), bytes.NewReader(buf))
			require.NoError(t, err)
			addrs[i] = addr
		}(i)
	}
	wg.Wait()

	seen := make(map[cas.Address]bool)
	for _, a := range addrs {
		seen[a] = true
	}
	assert.Len(t, seen, writers, "distinct random buffers should yield distinct addresses")

	var count int
	for range s.List() {
		count++
	}
	assert.Equal(t, writers, count)
}

func TestWriteAfterReturnIsImmediatelyVisible(t *testing.T) {
	s := newStore(t)
	addr, err := s.Write(context.Background(), bytes.NewReader([]byte("ordering guarantee")))
	require.NoError(t, err)

	_, ok := s.TryOpen(addr, cas.ReadNone, "")
	assert.True(t, ok, "a successful Write must make the object visible to any subsequent TryOpen")
}
