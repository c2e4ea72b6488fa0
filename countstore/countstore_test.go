package countstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemCountStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cs := NewMemCountStore()

	c, err := cs.GetCount(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(0), c)

	n, err := cs.Increment(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(1), n)
	n, err = cs.Increment(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(2), n)

	c, err = cs.GetCount(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(2), c)

	// independent counters
	c, err = cs.GetCount(ctx, "test2")
	assert.NoError(err)
	assert.Equal(int64(0), c)

	// reset drops back to zero; resetting again is fine
	assert.NoError(cs.Reset(ctx, "test1"))
	c, err = cs.GetCount(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(0), c)
	assert.NoError(cs.Reset(ctx, "test1"))
}

func TestMemCountStoreConcurrent(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cs := NewMemCountStore()

	// Increment two different counters from four goroutines, and read from
	// two more. Reads are not asserted beyond "no error"; the point is that
	// there is no race (run this with `-race`!). A short sleep yields to the
	// scheduler so writes and reads interleave.
	var wg sync.WaitGroup
	fnInc := func(name string, times int) {
		for i := 0; i < times; i++ {
			_, err := cs.Increment(ctx, name)
			assert.NoError(err)
			time.Sleep(time.Nanosecond)
		}
		wg.Done()
	}
	fnRead := func(name string, times int) {
		for i := 0; i < times; i++ {
			_, err := cs.GetCount(ctx, name)
			assert.NoError(err)
			time.Sleep(time.Nanosecond)
		}
	}
	wg.Add(4)
	go fnInc("test1", 10)
	go fnInc("test1", 10)
	go fnRead("test1", 10)
	go fnInc("test2", 6)
	go fnInc("test2", 6)
	go fnRead("test2", 6)
	wg.Wait()

	// Final reads after all writer goroutines are collected should match the
	// sum of all writes.
	c, err := cs.GetCount(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(20), c)
	c, err = cs.GetCount(ctx, "test2")
	assert.NoError(err)
	assert.Equal(int64(12), c)
}
