//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	out, err := tf.Run("--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage")
	assert.Contains(t, out, "--base-url")
	assert.Contains(t, out, "list")
	assert.Contains(t, out, "version")
}

func TestVersion(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	out, err := tf.Run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "expodir ")
}

func TestMissingBaseURL(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	out, err := tf.Run()
	require.Error(t, err)
	assert.Contains(t, out, "base_url is not set")
}

func TestListCommand(t *testing.T) {
	t.Parallel()
	api := newFakeDirectory(t)
	tf := NewTUITest(t)

	out, err := tf.Run("list", "--base-url", api.URL, "--letter", "b")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Bakery Co")
	assert.Contains(t, out, "Brewer Ltd")
	assert.Contains(t, out, "Banyan Nuts")
	assert.Contains(t, out, "Indonesia")
	assert.Contains(t, out, "Showing 3 results, page 1 of 1")
}

func TestConfigInitThenBrowse(t *testing.T) {
	t.Parallel()
	api := newFakeDirectory(t)
	tf := NewTUITest(t)
	defer tf.Cleanup()

	out, err := tf.Run("config", "init", "--base-url", api.URL, "--page-size", "10")
	require.NoError(t, err, out)

	out, err = tf.Run("config", "show")
	require.NoError(t, err, out)
	assert.Contains(t, out, api.URL)
	assert.Contains(t, out, "page_size = 10")

	// the saved base URL is used without flags
	out, err = tf.Run("list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Showing 42 results, page 1 of 5")
}
