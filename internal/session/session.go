// Package session holds the conversation log and the Idle/AwaitingReply state
// machine that serializes user turns.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/diogo/thrivemum/internal/logging"
	"github.com/diogo/thrivemum/internal/models"
	"github.com/diogo/thrivemum/internal/responder"
)

// Greeting is the assistant message every new session starts with
const Greeting = "Hi! I'm your ThriveMum assistant. Ask me anything about saving money, batch cooking, investing, or DIY projects. I give specific, actionable advice!"

var (
	// ErrEmptyInput is returned when the submitted text is blank after trimming
	ErrEmptyInput = errors.New("empty input")
	// ErrAwaitingReply is returned when a reply is still outstanding
	ErrAwaitingReply = errors.New("awaiting reply")
	// ErrNoPendingTurn is returned when completing a turn that is not the pending one
	ErrNoPendingTurn = errors.New("no pending turn")
)

// State is the session's request state
type State int

const (
	Idle State = iota
	AwaitingReply
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingReply:
		return "awaiting_reply"
	default:
		return "unknown"
	}
}

// Turn is a submitted user message waiting for its reply.
// History is the log as it was before the user message was appended.
type Turn struct {
	Message models.Message
	History []models.Message
}

// Text returns the trimmed user text
func (t *Turn) Text() string {
	return t.Message.Text
}

// Session is safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	messages  []models.Message
	state     State
	pending   *Turn
	responder responder.Responder
	logger    *zap.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logging.OrNop(logger)
	}
}

// New creates a session seeded with the greeting
func New(r responder.Responder, opts ...Option) *Session {
	s := &Session{
		responder: r,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.messages = []models.Message{newMessage(models.RoleAssistant, Greeting)}
	return s
}

func newMessage(role models.Role, text string) models.Message {
	return models.Message{ID: uuid.NewString(), Role: role, Text: text}
}

// Submit appends the user message and moves the session to AwaitingReply.
// Blank input and submissions while a reply is pending change nothing.
func (s *Session) Submit(text string) (*Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == AwaitingReply {
		s.logger.Debug("submit ignored while awaiting reply")
		return nil, ErrAwaitingReply
	}

	history := make([]models.Message, len(s.messages))
	copy(history, s.messages)

	msg := newMessage(models.RoleUser, text)
	s.messages = append(s.messages, msg)
	s.state = AwaitingReply
	s.pending = &Turn{Message: msg, History: history}

	s.logger.Debug("turn submitted", zap.String("id", msg.ID), zap.Int("history_len", len(history)))
	return s.pending, nil
}

// Complete appends the assistant reply for turn and returns the session to Idle
func (s *Session) Complete(turn *Turn, reply string) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if turn == nil || s.pending != turn {
		return models.Message{}, ErrNoPendingTurn
	}

	msg := newMessage(models.RoleAssistant, reply)
	s.messages = append(s.messages, msg)
	s.state = Idle
	s.pending = nil

	s.logger.Debug("turn completed", zap.String("id", msg.ID), zap.Int("messages", len(s.messages)))
	return msg, nil
}

// Reply asks the session's responder for turn's answer without touching the log
func (s *Session) Reply(ctx context.Context, turn *Turn) string {
	return s.responder.Respond(ctx, turn.Text(), turn.History)
}

// Send submits text, waits for the responder, and records the reply
func (s *Session) Send(ctx context.Context, text string) (models.Message, error) {
	turn, err := s.Submit(text)
	if err != nil {
		return models.Message{}, err
	}
	return s.Complete(turn, s.Reply(ctx, turn))
}

// Messages returns a copy of the log in order
func (s *Session) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// State returns the current request state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Len returns the number of messages in the log
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
