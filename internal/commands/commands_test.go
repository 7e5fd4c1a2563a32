package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/thrivemum/internal/config"
	"github.com/diogo/thrivemum/internal/models"
	"github.com/diogo/thrivemum/internal/responder"
	"github.com/diogo/thrivemum/internal/rules"
	"github.com/diogo/thrivemum/internal/session"
	"github.com/diogo/thrivemum/internal/tui"
)

type fakeTUI struct {
	called  bool
	opts    tui.Options
	session *session.Session
}

func (f *fakeTUI) RunChat(_ context.Context, s *session.Session, opts tui.Options) error {
	f.called = true
	f.session = s
	f.opts = opts
	return nil
}

// isolate points the config dir at a temp HOME and clears env overrides
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{config.EnvAPIURL, config.EnvAPIKey, config.EnvBackend, config.EnvOffline, "GLAMOUR_STYLE"} {
		t.Setenv(key, "")
	}
	return home
}

func testDeps() *Dependencies {
	return &Dependencies{
		TUI:        &fakeTUI{},
		IsTerminal: func() bool { return false },
	}
}

func execute(t *testing.T, deps *Dependencies, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(deps)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Metadata(t *testing.T) {
	root := NewRootCmd(testDeps())
	assert.Equal(t, "thrivemum [question]", root.Use)
	assert.NotEmpty(t, root.Short)
	assert.NotEmpty(t, root.Long)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"chat", "ask", "calc", "suggestions", "config"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCommand_Version(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, testDeps(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "thrivemum "+Version)
}

func TestRootCommand_QuestionArgument(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, testDeps(), "--offline", "How to start investing?")
	require.NoError(t, err)
	assert.Equal(t, rules.InvestResponse+"\n", out)
}

func TestAsk_OfflineUsesLocalTable(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, testDeps(), "ask", "--offline", "Best stores for deals?")
	require.NoError(t, err)
	assert.Equal(t, rules.GroceryResponse, strings.TrimSpace(out))
}

func TestAsk_ReadsStdin(t *testing.T) {
	isolate(t)
	deps := testDeps()
	deps.Stdin = strings.NewReader("  Build emergency fund?\n")

	out, _, err := execute(t, deps, "ask", "--offline")
	require.NoError(t, err)
	assert.Equal(t, rules.EmergencyResponse, strings.TrimSpace(out))
}

func TestAsk_EmptyQuestion(t *testing.T) {
	isolate(t)
	deps := testDeps()
	deps.Stdin = strings.NewReader("   ")

	_, _, err := execute(t, deps, "ask", "--offline")
	assert.Error(t, err)
}

func TestAsk_NoCredentialsFallsBack(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, testDeps(), "ask", "where should I shop?")
	require.NoError(t, err)
	assert.Equal(t, rules.FallbackGrocery, strings.TrimSpace(out))
}

type cannedDoer struct {
	calls int
	query string
}

func (d *cannedDoer) Do(req *fhttp.Request) (*fhttp.Response, error) {
	d.calls++
	d.query = req.URL.RawQuery
	body := `{"candidates":[{"content":{"parts":[{"text":" Shop Aldi on Wednesdays. "}]}}]}`
	return &fhttp.Response{
		StatusCode: 200,
		Header:     fhttp.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

func TestAsk_RESTBackendUsesInjectedClient(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvAPIKey, "test-key")
	doer := &cannedDoer{}
	deps := testDeps()
	deps.HTTPClient = doer

	out, _, err := execute(t, deps, "ask", "where should I shop?")
	require.NoError(t, err)
	assert.Equal(t, "Shop Aldi on Wednesdays.", strings.TrimSpace(out))
	assert.Equal(t, 1, doer.calls)
	assert.Contains(t, doer.query, "key=test-key")
}

func TestAsk_SDKBackendWithoutKeyFallsBack(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, testDeps(), "ask", "--backend", "sdk", "investing")
	require.NoError(t, err)
	assert.Equal(t, rules.FallbackInvest, strings.TrimSpace(out))
}

func TestAsk_ResponderReceivesHistory(t *testing.T) {
	isolate(t)
	var gotHistory []models.Message
	deps := testDeps()
	deps.Responder = responder.Func(func(_ context.Context, text string, history []models.Message) string {
		gotHistory = history
		return "echo " + text
	})

	out, _, err := execute(t, deps, "ask", "hi")
	require.NoError(t, err)
	assert.Equal(t, "echo hi", strings.TrimSpace(out))
	require.Len(t, gotHistory, 1)
	assert.Equal(t, session.Greeting, gotHistory[0].Text)
}

func TestAsk_Copy(t *testing.T) {
	isolate(t)
	var copied string
	deps := testDeps()
	deps.CopyToClipboard = func(text string) error {
		copied = text
		return nil
	}

	_, _, err := execute(t, deps, "ask", "--offline", "--copy", "debt")
	require.NoError(t, err)
	assert.Equal(t, rules.DebtResponse, copied)
}

func TestAsk_CopyConfirmedOnTerminal(t *testing.T) {
	isolate(t)
	t.Setenv("GLAMOUR_STYLE", "notty")
	deps := testDeps()
	deps.IsTerminal = func() bool { return true }
	deps.CopyToClipboard = func(string) error { return nil }

	out, stderr, err := execute(t, deps, "ask", "--offline", "--copy", "debt")
	require.NoError(t, err)
	assert.Contains(t, out, "ThriveMum")
	assert.Contains(t, stderr, "Copied to clipboard")
}

func TestAsk_CopyFailureIsWarning(t *testing.T) {
	isolate(t)
	deps := testDeps()
	deps.CopyToClipboard = func(string) error { return errors.New("no clipboard") }

	_, stderr, err := execute(t, deps, "ask", "--offline", "-c", "debt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "could not copy")
}

func TestAsk_InvalidBackend(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, testDeps(), "ask", "--backend", "grpc", "hi")
	assert.Error(t, err)
}

func TestChat_PassesOptions(t *testing.T) {
	isolate(t)
	deps := testDeps()

	_, _, err := execute(t, deps, "chat", "--offline")
	require.NoError(t, err)

	fake := deps.TUI.(*fakeTUI)
	require.True(t, fake.called)
	assert.Equal(t, "offline", fake.opts.Backend)
	assert.Equal(t, 5*time.Minute, fake.opts.RefreshInterval)
	require.NotNil(t, fake.session)
	assert.Equal(t, 1, fake.session.Len())
}

func TestChat_ConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: sdk\nrefresh_interval: 1m\n"), 0o600))
	deps := testDeps()

	_, _, err := execute(t, deps, "chat", "--config", path)
	require.NoError(t, err)

	fake := deps.TUI.(*fakeTUI)
	assert.Equal(t, "Gemini SDK", fake.opts.Backend)
	assert.Equal(t, time.Minute, fake.opts.RefreshInterval)
}

func TestSuggestions(t *testing.T) {
	out, _, err := execute(t, testDeps(), "suggestions")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "1. "+rules.QuickSuggestions()[0], lines[0])
}

func TestSuggestions_Tips(t *testing.T) {
	out, _, err := execute(t, testDeps(), "suggestions", "--tips")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(rules.Tips()))
	assert.Equal(t, "[Groceries] "+rules.Tips()[0].String(), lines[0])
}

func TestSuggestions_Topics(t *testing.T) {
	out, _, err := execute(t, testDeps(), "suggestions", "--topics")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, rules.Default().Len())
	assert.Contains(t, lines[0], "groceries")
	assert.Contains(t, lines[0], "grocery, shopping, store")
}

func TestSuggestions_FlagsExclusive(t *testing.T) {
	_, _, err := execute(t, testDeps(), "suggestions", "--tips", "--topics")
	assert.Error(t, err)
}

func TestConfig_MasksKey(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvAPIKey, "AIzaSySecretValue9876")

	out, _, err := execute(t, testDeps(), "config")
	require.NoError(t, err)
	assert.NotContains(t, out, "AIzaSySecretValue")
	assert.Contains(t, out, "9876")
	assert.Contains(t, out, "backend:")
	assert.Contains(t, out, "replies:")
}

func TestReplySource(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Contains(t, replySource(cfg), "no API key")

	cfg.APIKey = "k"
	assert.Equal(t, "Gemini", replySource(cfg))

	cfg.Offline = true
	assert.Contains(t, replySource(cfg), "offline")
}

func TestConfigInit_WritesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "out", "config.yaml")

	out, _, err := execute(t, testDeps(), "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, models.BackendREST, cfg.Backend)
}

func TestReadQuestion(t *testing.T) {
	q, err := readQuestion([]string{"  hi  "}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "hi", q)

	q, err = readQuestion(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, q)
}

func TestBackendLabel(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, "Gemini", backendLabel(cfg))
	cfg.Backend = models.BackendSDK
	assert.Equal(t, "Gemini SDK", backendLabel(cfg))
	cfg.Offline = true
	assert.Equal(t, "offline", backendLabel(cfg))
}
