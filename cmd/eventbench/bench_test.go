package main

import (
	"bytes"
	"context"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

func TestMeasure(t *testing.T) {
	p := params{keys: 3, handlers: 2, rounds: 4}
	require.NoError(t, p.validate())
	for _, name := range collectionNames() {
		t.Run(name, func(t *testing.T) {
			res, err := measure(context.Background(), name, p)
			require.NoError(t, err)
			assert.Equal(t, name, res.collection)
			assert.Equal(t, 3*2*4, res.calls, "Every handler should be called once per key per round")
		})
	}
}

func TestMeasure_Errors(t *testing.T) {
	_, err := measure(context.Background(), "tree", params{keys: 1, handlers: 1, rounds: 1})
	assert.ErrorIs(t, err, ErrUnknownCollection)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = measure(ctx, "dict", params{keys: 1, handlers: 1, rounds: 1})
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, params{keys: 0, handlers: 1, rounds: 1}.validate(), ErrInvalidParams)
}

func TestRun_Flags(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, run([]string{"-k", "2", "-n", "1", "-r", "1", "-c", "list,dict"}, &out))
	assert.Contains(t, out.String(), `"collection":"dict"`, "Non-terminal output should be JSON")
	assert.ErrorIs(t, run([]string{"--collections", "tree", "-r", "1"}, io.Discard), ErrUnknownCollection)
	assert.ErrorIs(t, run([]string{"--rounds", "0"}, io.Discard), ErrInvalidParams)
	assert.Error(t, run([]string{"--unknown"}, io.Discard))
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run([]string{"--help"}, &out), flag.ErrHelp)
	assert.Contains(t, out.String(), "eventbench measures")
	assert.Contains(t, out.String(), "--collections")
}
