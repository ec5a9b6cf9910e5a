package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"formats.md":        {Data: []byte("# Formats\n\nname/year")},
		"links.txt":         {Data: []byte("Link types")},
		"option-dry-run.md": {Data: []byte("Dry run details")},
		"nested/config.md":  {Data: []byte("Config details")},
		"ignore.json":       {Data: []byte("{}")},
		"notes.txxt":        {Data: []byte("custom extension")},
	}
}

func TestScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"config", "formats", "links", "option-dry-run"}, tm.ListTopics())

		topic, ok := tm.GetTopic("formats")
		require.True(t, ok)
		assert.Equal(t, "# Formats\n\nname/year", topic.Content)
		assert.Equal(t, "formats.md", topic.FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil filesystem", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"dry-run", "--dry-run", "-dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "Dry run details", topic.Content)
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return strings.ToUpper(content) + "|" + format
}

func newRoot(t *testing.T, opts Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "tool", Short: "A tool", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "version", Short: "Print the version", Run: func(*cobra.Command, []string) {}})

	_, err := InitializeWithOptions(root, testFS(), opts)
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, out := newRoot(t, Options{Renderer: upperRenderer{}})
		root.SetArgs([]string{"help", "links"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "LINK TYPES|.txt", out.String())
	})

	t.Run("topic list", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "General topics:\n  config\n  formats\n  links\n")
		assert.Contains(t, out.String(), "Option topics:\n  --dry-run\n")
		assert.Contains(t, out.String(), "Use 'tool help <topic>'")
	})

	t.Run("command", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help", "version"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Print the version")
	})

	t.Run("no args", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "A tool")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRendererMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Formats\n\nSegments are separated by a slash.", ".md")
	assert.Contains(t, out, "Formats")
	assert.Contains(t, out, "separated")
}
