package commands

import (
	"context"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/diogo/thrivemum/internal/api"
	"github.com/diogo/thrivemum/internal/config"
	"github.com/diogo/thrivemum/internal/models"
	"github.com/diogo/thrivemum/internal/responder"
	"github.com/diogo/thrivemum/internal/session"
	"github.com/diogo/thrivemum/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(ctx context.Context, s *session.Session, opts tui.Options) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// TUI is the terminal user interface.
	TUI TUIInterface

	// Responder overrides the responder built from configuration.
	Responder responder.Responder

	// HTTPClient overrides the REST backend's TLS client.
	HTTPClient api.Doer

	// Stdin is read by ask when no question argument is given.
	Stdin io.Reader

	// CopyToClipboard writes text to the system clipboard.
	CopyToClipboard func(text string) error

	// IsTerminal reports whether stdout is an interactive terminal.
	IsTerminal func() bool
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(ctx context.Context, s *session.Session, opts tui.Options) error {
	return tui.RunChat(ctx, s, opts)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI:             &DefaultTUI{},
		Stdin:           os.Stdin,
		CopyToClipboard: clipboard.WriteAll,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

func (d *Dependencies) stdin() io.Reader {
	if d.Stdin == nil {
		return nil
	}
	// Only read piped input; an interactive stdin would block.
	if f, ok := d.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return d.Stdin
}

func (d *Dependencies) isTerminal() bool {
	return d.IsTerminal != nil && d.IsTerminal()
}

// newResponder picks the reply source for cfg
func (d *Dependencies) newResponder(ctx context.Context, cfg config.Config, logger *zap.Logger) responder.Responder {
	if d.Responder != nil {
		return d.Responder
	}
	if cfg.Offline {
		return responder.NewLocal(nil)
	}

	if !cfg.HasCredentials() {
		logger.Debug("no API key configured, replies will use the fallback table")
	}

	var gen api.Generator
	switch cfg.Backend {
	case models.BackendSDK:
		sdk, err := api.NewSDKClient(ctx, cfg.APIKey, cfg.Model, cfg.SDKBaseURL())
		if err != nil {
			logger.Warn("sdk backend unavailable, replies will use the fallback table", zap.Error(err))
		} else {
			gen = sdk
		}
	default:
		var opts []api.ClientOption
		if d.HTTPClient != nil {
			opts = append(opts, api.WithHTTPClient(d.HTTPClient))
		}
		client, err := api.NewClient(cfg.Endpoint, cfg.APIKey, opts...)
		if err != nil {
			logger.Warn("rest backend unavailable, replies will use the fallback table", zap.Error(err))
		} else {
			gen = client
		}
	}

	return responder.NewRemote(gen, responder.WithLogger(logger))
}
