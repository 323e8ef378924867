package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHelloDemo(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"hello"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "6\nHello, world!\n", out.String())
}

func TestRunUnknownDemoIsAnError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"nope"})
	assert.Error(t, cmd.Execute())
}

func TestListDemosWithNoArgs(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.Contains(out.String(), "factorial"))
}

func TestASTFlagPrintsBeforeOutput(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--ast", "for"})

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.Contains(out.String(), "NumericFor"))
	assert.True(t, strings.Contains(out.String(), "Loop ended"))
	assert.Less(t, strings.Index(out.String(), "NumericFor"), strings.Index(out.String(), "Loop ended"))
}
