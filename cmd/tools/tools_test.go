package tools

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Manu343726/mipsdis/pkg/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) string {
	var out bytes.Buffer
	ToolsCmd.SetOut(&out)
	ToolsCmd.SetArgs(args)
	t.Cleanup(func() { ToolsCmd.SetArgs(nil) })

	require.NoError(t, ToolsCmd.Execute())
	return out.String()
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("MIPSDIS_BYTE_ORDER", "big")

	out := run(t, "config")

	var dumped map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &dumped))
	assert.Equal(t, "big", dumped["byte-order"])
	assert.Equal(t, "text", dumped["format"])
}

func TestDocsCommand(t *testing.T) {
	out := run(t, "docs", "isa")

	assert.Equal(t, isa.DocString()+"\n", out)
}

func TestDocsCommandWritesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isa.txt")
	t.Cleanup(func() { require.NoError(t, docsCmd.Flags().Set("output", "")) })

	assert.Empty(t, run(t, "docs", "isa", "--output", path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, isa.DocString()+"\n", string(contents))
}

func TestDocsCommandRejectsUnknownModule(t *testing.T) {
	ToolsCmd.SetArgs([]string{"docs", "cpu"})
	t.Cleanup(func() { ToolsCmd.SetArgs(nil) })

	assert.Error(t, ToolsCmd.Execute())
}
