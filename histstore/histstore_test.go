package histstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemHistoryStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	hs := NewMemHistoryStore()

	ins, err := hs.Inputs(ctx, "op")
	assert.NoError(err)
	assert.Empty(ins)
	outs, err := hs.Outputs(ctx, "op")
	assert.NoError(err)
	assert.Empty(outs)

	assert.NoError(hs.RecordInput(ctx, "op", "in-1"))
	assert.NoError(hs.RecordOutput(ctx, "op", "out-1"))
	assert.NoError(hs.RecordInput(ctx, "op", "in-2"))
	assert.NoError(hs.RecordOutput(ctx, "op", "out-2"))

	ins, err = hs.Inputs(ctx, "op")
	assert.NoError(err)
	assert.Equal([]string{"in-1", "in-2"}, ins)
	outs, err = hs.Outputs(ctx, "op")
	assert.NoError(err)
	assert.Equal([]string{"out-1", "out-2"}, outs)

	// a failed invocation records its input but no output
	assert.NoError(hs.RecordInput(ctx, "op", "in-3"))
	ins, err = hs.Inputs(ctx, "op")
	assert.NoError(err)
	outs, err = hs.Outputs(ctx, "op")
	assert.NoError(err)
	assert.Equal(3, len(ins))
	assert.Equal(2, len(outs))

	// histories are independent per operation name
	ins, err = hs.Inputs(ctx, "other")
	assert.NoError(err)
	assert.Empty(ins)
}

func TestMemHistoryStoreSnapshot(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	hs := NewMemHistoryStore()
	assert.NoError(hs.RecordInput(ctx, "op", "in-1"))

	ins, err := hs.Inputs(ctx, "op")
	assert.NoError(err)

	// mutating the returned slice must not affect the store
	ins[0] = "mangled"
	ins2, err := hs.Inputs(ctx, "op")
	assert.NoError(err)
	assert.Equal([]string{"in-1"}, ins2)
}
