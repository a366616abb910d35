package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/procpane/procpane"
)

func TestParseSpecs(t *testing.T) {
	specs, err := parseSpecs([]string{"web=python -m http.server", "tail=tail -f log"})
	require.NoError(t, err)
	require.Len(t, specs, 2)
	require.Equal(t, "web", specs[0].name)
	require.Equal(t, "python -m http.server", specs[0].command)
	require.Equal(t, "tail", specs[1].name)
}

func TestParseSpecsKeepsEqualsInCommand(t *testing.T) {
	specs, err := parseSpecs([]string{"env=FOO=bar printenv FOO"})
	require.NoError(t, err)
	require.Equal(t, "FOO=bar printenv FOO", specs[0].command)
}

func TestParseSpecsRejectsMalformed(t *testing.T) {
	for _, arg := range []string{"no-equals", "=cmd", "name="} {
		_, err := parseSpecs([]string{arg})
		require.Error(t, err, "spec %q", arg)
	}
}

func TestParseSpecsRejectsDuplicateNames(t *testing.T) {
	_, err := parseSpecs([]string{"web=a", "web=b"})
	require.ErrorContains(t, err, "duplicate")
}

func TestParseScrollFlags(t *testing.T) {
	keys, err := parseScrollFlags([]string{"web=i,k"})
	require.NoError(t, err)
	require.Equal(t, procpane.ScrollKeys{Back: "i", Forward: "k"}, keys["web"])
}

func TestParseScrollFlagsRejectsMalformed(t *testing.T) {
	for _, v := range []string{"web", "web=i", "web=,k", "web=i,"} {
		_, err := parseScrollFlags([]string{v})
		require.Error(t, err, "scroll %q", v)
	}
}
