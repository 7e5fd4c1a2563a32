package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/thrivemum/internal/models"
	"github.com/diogo/thrivemum/internal/responder"
	"github.com/diogo/thrivemum/internal/rules"
)

type countingResponder struct {
	calls    atomic.Int32
	lastText string
	lastHist []models.Message
}

func (c *countingResponder) Respond(_ context.Context, text string, history []models.Message) string {
	c.calls.Add(1)
	c.lastText = text
	c.lastHist = history
	return "reply to " + text
}

func TestNew_SeedsGreeting(t *testing.T) {
	s := New(responder.NewLocal(nil))

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleAssistant, msgs[0].Role)
	assert.Equal(t, Greeting, msgs[0].Text)
	assert.NotEmpty(t, msgs[0].ID)
	assert.Equal(t, Idle, s.State())
}

func TestSend_AlternatesAndGrows(t *testing.T) {
	r := &countingResponder{}
	s := New(r)
	ctx := context.Background()

	inputs := []string{"groceries", "  batch cooking  ", "invest", "diy"}
	for i, in := range inputs {
		reply, err := s.Send(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAssistant, reply.Role)
		assert.Equal(t, 2*(i+1)+1, s.Len())
	}

	msgs := s.Messages()
	for i, m := range msgs {
		want := models.RoleAssistant
		if i%2 == 1 {
			want = models.RoleUser
		}
		assert.Equal(t, want, m.Role, "message %d", i)
	}
	assert.Equal(t, "batch cooking", msgs[3].Text)
	assert.Equal(t, int32(len(inputs)), r.calls.Load())
}

func TestSend_InvestExample(t *testing.T) {
	s := New(responder.NewLocal(nil))

	_, err := s.Send(context.Background(), "How to start investing?")
	require.NoError(t, err)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, models.RoleUser, msgs[1].Role)
	assert.Equal(t, "How to start investing?", msgs[1].Text)
	assert.Equal(t, rules.InvestResponse, msgs[2].Text)
	assert.Equal(t, Idle, s.State())
}

func TestSubmit_EmptyInputIsNoop(t *testing.T) {
	r := &countingResponder{}
	s := New(r)

	for _, in := range []string{"", "   ", "\n\t"} {
		_, err := s.Send(context.Background(), in)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
	assert.Equal(t, 1, s.Len())
	assert.Zero(t, r.calls.Load())
}

func TestSubmit_WhileAwaitingReply(t *testing.T) {
	r := &countingResponder{}
	s := New(r)

	turn, err := s.Submit("first")
	require.NoError(t, err)
	assert.Equal(t, AwaitingReply, s.State())
	assert.Equal(t, 2, s.Len())

	_, err = s.Submit("second")
	assert.ErrorIs(t, err, ErrAwaitingReply)
	_, err = s.Send(context.Background(), "third")
	assert.ErrorIs(t, err, ErrAwaitingReply)

	assert.Equal(t, 2, s.Len())
	assert.Zero(t, r.calls.Load(), "no responder dispatch while busy")

	_, err = s.Complete(turn, s.Reply(context.Background(), turn))
	require.NoError(t, err)
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, 3, s.Len())
}

func TestTurn_HistoryExcludesNewMessage(t *testing.T) {
	r := &countingResponder{}
	s := New(r)

	_, err := s.Send(context.Background(), "one")
	require.NoError(t, err)
	_, err = s.Send(context.Background(), "two")
	require.NoError(t, err)

	assert.Equal(t, "two", r.lastText)
	require.Len(t, r.lastHist, 3)
	assert.Equal(t, Greeting, r.lastHist[0].Text)
	assert.Equal(t, "one", r.lastHist[1].Text)
	assert.Equal(t, "reply to one", r.lastHist[2].Text)
}

func TestComplete_RejectsStaleTurn(t *testing.T) {
	s := New(&countingResponder{})

	turn, err := s.Submit("hello")
	require.NoError(t, err)
	_, err = s.Complete(turn, "hi")
	require.NoError(t, err)

	_, err = s.Complete(turn, "again")
	assert.ErrorIs(t, err, ErrNoPendingTurn)
	_, err = s.Complete(nil, "nil")
	assert.ErrorIs(t, err, ErrNoPendingTurn)
	assert.Equal(t, 3, s.Len())
}

func TestMessages_ReturnsCopy(t *testing.T) {
	s := New(&countingResponder{})
	msgs := s.Messages()
	msgs[0].Text = "changed"

	assert.Equal(t, Greeting, s.Messages()[0].Text)
}

func TestSubmit_ConcurrentOnlyOneWins(t *testing.T) {
	s := New(&countingResponder{})

	var wg sync.WaitGroup
	var accepted atomic.Int32
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Submit("race"); err == nil {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	assert.Equal(t, 2, s.Len())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "awaiting_reply", AwaitingReply.String())
	assert.Equal(t, "unknown", State(7).String())
}
