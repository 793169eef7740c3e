package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecalc/internal/directory"
)

func TestProviderLookupCall(t *testing.T) {
	tool := NewProviderLookup(directory.NewMemoryStore(), 0)

	out, err := tool.Call(context.Background(), json.RawMessage(
		`{"service": "electrician", "location": "Denver, CO"}`))
	require.NoError(t, err)

	var providers []directory.ServiceProvider
	require.NoError(t, json.Unmarshal(out, &providers))
	require.NotEmpty(t, providers)
	for _, p := range providers {
		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.Contains(t, p.Address, "Denver, CO")
	}
}

func TestProviderLookupRejectsBadInput(t *testing.T) {
	tool := NewProviderLookup(directory.NewMemoryStore(), 0)

	cases := []string{
		`{"service": "plumber"}`,
		`{"service": "", "location": "Austin, TX"}`,
		`{"service": "plumber", "location": "Austin, TX", "radius": 10}`,
		`"plumber in austin"`,
	}
	for _, in := range cases {
		_, err := tool.Call(context.Background(), json.RawMessage(in))
		assert.Error(t, err, "input %s must be rejected", in)
	}
}

type failingDirectory struct{ err error }

func (f *failingDirectory) Search(context.Context, string, string) ([]directory.ServiceProvider, error) {
	return nil, f.err
}

func TestProviderLookupPropagatesDirectoryError(t *testing.T) {
	wantErr := errors.New("connection refused")
	tool := NewProviderLookup(&failingDirectory{err: wantErr}, 0)

	_, err := tool.Call(context.Background(), json.RawMessage(
		`{"service": "plumber", "location": "Austin, TX"}`))
	assert.ErrorIs(t, err, wantErr)
}

type deadlineDirectory struct{ sawDeadline bool }

func (d *deadlineDirectory) Search(ctx context.Context, _, _ string) ([]directory.ServiceProvider, error) {
	_, d.sawDeadline = ctx.Deadline()
	return []directory.ServiceProvider{}, nil
}

func TestProviderLookupAppliesTimeout(t *testing.T) {
	dir := &deadlineDirectory{}
	tool := NewProviderLookup(dir, 50*time.Millisecond)

	_, err := tool.Call(context.Background(), json.RawMessage(
		`{"service": "plumber", "location": "Austin, TX"}`))
	require.NoError(t, err)
	assert.True(t, dir.sawDeadline, "lookup context must carry a deadline")
}

func TestRegistrySpecsKeepRegistrationOrder(t *testing.T) {
	a := NewProviderLookup(directory.NewMemoryStore(), 0)
	r := NewRegistry(a)
	r.Register(a) // re-registering must not duplicate

	specs := r.Specs()
	require.Len(t, specs, 1)
	assert.Equal(t, ProviderLookupName, specs[0].Name)
	assert.NotEmpty(t, specs[0].InputSchema)
}

func TestRegistryUnknownTool(t *testing.T) {
	r := NewRegistry()
	_, err := r.Call(context.Background(), "nope", nil)
	assert.Error(t, err)
}
