package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keilerkonzept/countish"
)

func TestObserveLines(t *testing.T) {
	counter := countish.NewNaive()
	n, err := observeLines(counter, strings.NewReader("a\na\nb\n"), false)
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
	require.Equal(t, uint64(2), counter.Count("a"))
	require.Equal(t, uint64(1), counter.Count("b"))
}

func TestObserveLinesHashed(t *testing.T) {
	counter := countish.NewNaive()
	n, err := observeLines(counter, strings.NewReader("one long line\none long line\nanother\n"), true)
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
	require.Equal(t, 2, counter.Len())
	// raw lines are not stored
	require.Equal(t, uint64(0), counter.Count("one long line"))
}

func TestNewCounter(t *testing.T) {
	for _, algorithm := range []string{"naive", "lossy", "sticky"} {
		counter, err := newCounter(algorithm, 0.1, 0.05, 0.01)
		require.NoError(t, err, algorithm)
		require.NotNil(t, counter, algorithm)
	}

	_, err := newCounter("exact", 0.1, 0.05, 0.01)
	require.Error(t, err)

	_, err = newCounter("lossy", 0.1, 0.2, 0.01)
	require.ErrorIs(t, err, countish.ErrInvalidParameter)
}
