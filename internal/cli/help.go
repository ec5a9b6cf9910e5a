package cli

import (
	"embed"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/shortcut-maker/pkg/cobrax/topics"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics installs the topic aware help command. Logging is not set up
// yet when this runs, so failures are silent and leave cobra's help in place.
func initTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return
	}
	_, _ = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
		Renderer: helpRenderer(),
	})
}

func helpRenderer() topics.Renderer {
	if !stdoutIsTerminal() {
		return &topics.GlamourRenderer{Style: "notty"}
	}
	return topics.NewGlamourRenderer()
}
