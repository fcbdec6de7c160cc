package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagPassed(t *testing.T) {
	parse := func(args ...string) *flag.FlagSet {
		fs := flag.NewFlagSet("dicewars", flag.ContinueOnError)
		fs.Bool("render", false, "")
		require.NoError(t, fs.Parse(args))
		return fs
	}

	assert.False(t, flagPassed(parse(), "render"))
	assert.True(t, flagPassed(parse("-render"), "render"))
	assert.True(t, flagPassed(parse("-render=false"), "render"),
		"an explicit false is still a decision and must not fall back to config")
}
