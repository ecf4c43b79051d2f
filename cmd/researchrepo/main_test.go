package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"search", "version", "generate-config"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, flag := range []string{"config", "server", "log-level"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"search"})
	require.NoError(t, err)
	assert.Error(t, cmd.Args(cmd, nil), "search without a query must be rejected")
}
