package responder

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/diogo/thrivemum/internal/api"
	apierrors "github.com/diogo/thrivemum/internal/errors"
	"github.com/diogo/thrivemum/internal/logging"
	"github.com/diogo/thrivemum/internal/models"
	"github.com/diogo/thrivemum/internal/rules"
)

// Remote asks a generative-language backend and falls back to a keyword
// table when the single attempt fails.
type Remote struct {
	generator api.Generator
	fallback  *rules.Table
	logger    *zap.Logger
}

// RemoteOption configures a Remote responder
type RemoteOption func(*Remote)

// WithLogger sets the diagnostics logger
func WithLogger(logger *zap.Logger) RemoteOption {
	return func(r *Remote) {
		r.logger = logging.OrNop(logger)
	}
}

// NewRemote creates a Remote responder around generator
func NewRemote(generator api.Generator, opts ...RemoteOption) *Remote {
	r := &Remote{
		generator: generator,
		fallback:  rules.Fallback(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond issues one generate call. Any failure is logged and replaced by the
// fallback table's reply; it is never returned to the caller.
func (r *Remote) Respond(ctx context.Context, text string, history []models.Message) string {
	if r.generator == nil {
		r.logger.Warn("no generator configured, using fallback")
		return r.fallback.Respond(text)
	}

	reply, err := r.generator.Generate(ctx, BuildPrompt(text, history))
	if err != nil {
		fields := []zap.Field{
			zap.Error(err),
			zap.String("cause", failureCause(err)),
			zap.Int("history_len", len(history)),
		}
		if status := apierrors.GetHTTPStatus(err); status > 0 {
			fields = append(fields, zap.Int("status", status))
		}
		r.logger.Warn("generate failed, using fallback reply", fields...)
		return r.fallback.Respond(text)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		r.logger.Warn("generate returned empty text, using fallback reply")
		return r.fallback.Respond(text)
	}

	r.logger.Debug("generate succeeded", zap.Int("reply_len", len(reply)))
	return reply
}

// failureCause classifies a generate error for the log
func failureCause(err error) string {
	switch {
	case errors.Is(err, apierrors.ErrNoCredentials):
		return "credentials"
	case apierrors.IsNetworkError(err):
		return "network"
	case apierrors.IsParseError(err):
		return "parse"
	case apierrors.GetHTTPStatus(err) > 0:
		return "status"
	default:
		return "other"
	}
}
