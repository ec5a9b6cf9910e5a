package cli

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/shortcut-maker/pkg/arguments"
	"github.com/arthur-debert/shortcut-maker/pkg/config"
	"github.com/arthur-debert/shortcut-maker/pkg/core"
	"github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/filesystem"
	"github.com/arthur-debert/shortcut-maker/pkg/links"
	"github.com/arthur-debert/shortcut-maker/pkg/logging"
	"github.com/arthur-debert/shortcut-maker/pkg/types"
	"github.com/arthur-debert/shortcut-maker/pkg/ui"
)

// ErrReported is returned once a failure has been shown to the user. The
// caller only has to exit non zero.
var ErrReported = stderrors.New("error already reported")

// runMirror is the root command: validate, then clean and fill the shortcut tree.
func runMirror(cmd *cobra.Command, args []string, opts *rootOptions) error {
	logger := logging.GetLogger("cli.mirror")

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return reportFailure(cmd, nil, err)
	}

	renderer, err := newRenderer(cmd, cfg)
	if err != nil {
		return reportFailure(cmd, nil, err)
	}

	fsys := filesystem.NewOS()

	parsed, err := arguments.Parse(args, fsys)
	if err != nil {
		return reportFailure(cmd, renderer, err)
	}

	recognition, err := links.ParseRecognition(cfg.Links.Recognize)
	if err != nil {
		return reportFailure(cmd, renderer, err)
	}
	provider, err := links.New(links.Kind(cfg.Links.Type), fsys, links.Options{
		Suffix:      cfg.Links.Suffix,
		Recognition: recognition,
	})
	if err != nil {
		return reportFailure(cmd, renderer, err)
	}

	trees := parsed.Trees()
	logger.Debug().
		Str("linkType", provider.Name()).
		Str("suffix", provider.Suffix()).
		Bool("dryRun", opts.dryRun).
		Msg("Arguments validated")

	report, err := core.Mirror(core.MirrorOptions{
		Trees:      trees,
		FileSystem: fsys,
		Links:      provider,
		DryRun:     opts.dryRun,
		PruneEmpty: cfg.Clean.Prune,
		OnAction: func(action types.Action) {
			if rerr := renderer.RenderAction(action, opts.dryRun); rerr != nil {
				logger.Warn().Err(rerr).Msg("Failed to render action")
			}
		},
	})
	if err != nil {
		return reportFailure(cmd, renderer, err)
	}

	if err := renderer.RenderSummary(report, trees.Shortcut.Root); err != nil {
		return err
	}
	return nil
}

func newRenderer(cmd *cobra.Command, cfg *config.Config) (ui.Renderer, error) {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// reportFailure shows err as a usage problem or as an error and returns
// ErrReported. Without a renderer, plain text goes to the command output.
func reportFailure(cmd *cobra.Command, renderer ui.Renderer, err error) error {
	logger := logging.GetLogger("cli")
	logger.Debug().
		Err(err).
		Str("code", string(errors.GetErrorCode(err))).
		Msg("Command failed")

	if renderer == nil {
		var rerr error
		renderer, rerr = ui.NewRenderer(ui.FormatText, cmd.OutOrStdout())
		if rerr != nil {
			return err
		}
	}

	var rerr error
	if errors.IsArgumentError(err) {
		rerr = renderer.RenderUsage(errors.Message(err))
	} else {
		rerr = renderer.RenderError(err)
	}
	if rerr != nil {
		return err
	}
	return ErrReported
}
