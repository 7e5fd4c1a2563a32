package commands

import (
	"github.com/spf13/cobra"

	"github.com/diogo/thrivemum/internal/render"
	"github.com/diogo/thrivemum/internal/session"
	"github.com/diogo/thrivemum/internal/tui"
)

// NewChatCmd creates the interactive chat command
func NewChatCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session with the ThriveMum assistant.

Press Alt+1-5 to send a quick question before your first message.
Type 'exit', 'quit', or press Esc or Ctrl+C to end the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, deps)
		},
	}
}

func runChat(cmd *cobra.Command, deps *Dependencies) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, true)
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	s := session.New(deps.newResponder(ctx, cfg, logger), session.WithLogger(logger))

	return deps.TUI.RunChat(ctx, s, tui.Options{
		Backend:         backendLabel(cfg),
		RefreshInterval: cfg.GetRefreshInterval(),
		Render:          render.OptionsFromConfig(cfg.Markdown),
		Logger:          logger,
	})
}
