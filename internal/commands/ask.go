package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/diogo/thrivemum/internal/render"
	"github.com/diogo/thrivemum/internal/session"
)

// Styles matching the chat TUI
var assistantLabelStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

var assistantBubbleStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(colorPrimary).
	Foreground(colorText).
	Padding(0, 1)

var copyFlag bool

// NewAskCmd creates the one-shot question command
func NewAskCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question",
		Long: `Ask one question and print the reply. The question is read from stdin
when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question, err := readQuestion(args, deps.stdin())
			if err != nil {
				return err
			}
			return runAsk(cmd, deps, question, copyFlag)
		},
	}
	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the reply to the clipboard")
	return cmd
}

// readQuestion takes the first argument, or all of stdin when there is none
func readQuestion(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	if stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// runAsk runs one session turn and prints the assistant reply
func runAsk(cmd *cobra.Command, deps *Dependencies, question string, copyReply bool) error {
	if question == "" {
		return fmt.Errorf("question cannot be empty")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, false)
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	s := session.New(deps.newResponder(ctx, cfg, logger), session.WithLogger(logger))

	interactive := deps.isTerminal()
	var spin *spinner
	if interactive && !cfg.Offline {
		spin = newSpinner(cmd.ErrOrStderr(), "Asking "+backendLabel(cfg))
		spin.start()
	}

	reply, err := s.Send(ctx, question)
	if spin != nil {
		spin.halt()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if interactive {
		width := terminalWidth() - 4
		rendered := render.Reply(reply.Text, render.OptionsFromConfig(cfg.Markdown).WithWidth(width-4))
		fmt.Fprintln(out, assistantLabelStyle.Render("✦ ThriveMum"))
		fmt.Fprintln(out, assistantBubbleStyle.Width(width).Render(rendered))
	} else {
		fmt.Fprintln(out, reply.Text)
	}

	if (copyReply || cfg.CopyToClipboard) && deps.CopyToClipboard != nil {
		if err := deps.CopyToClipboard(reply.Text); err != nil {
			logger.Warn("copy to clipboard failed", zap.Error(err))
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: could not copy reply to clipboard")
		} else if interactive {
			printSuccess(cmd.ErrOrStderr(), "Copied to clipboard")
		}
	}
	return nil
}

// terminalWidth returns the stdout width, or 80 when unknown
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		return 80
	}
	return width
}
