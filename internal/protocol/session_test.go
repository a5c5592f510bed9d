package protocol

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/seabattle/internal/engine"
)

type harness struct {
	session *Session
	out     bytes.Buffer
	errOut  bytes.Buffer
}

func newHarness() *harness {
	h := &harness{}
	h.session = NewSession(engine.NewDefault(), &h.out, &h.errOut, nil)
	return h
}

func (h *harness) run(t *testing.T, lines ...string) []string {
	t.Helper()
	h.out.Reset()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, h.session.Serve(context.Background(), in))
	return strings.Split(strings.TrimRight(h.out.String(), "\n"), "\n")
}

func TestSessionScript(t *testing.T) {
	h := newHarness()

	got := h.run(t,
		"ping",
		"create master",
		"get width",
		"get height",
		"get count 4",
		"set count 4 11",
		"set count 4 2",
		"get count 4",
		"set width abc",
		"set strategy ordered",
		"start",
		"shot 0 0",
		"shot 1 0",
		"shot",
		"win",
		"lose",
		"finished",
		"stop",
		"finished",
		"bogus",
		"exit",
		"ping",
	)

	assert.Equal(t, []string{
		"pong",
		"ok",
		"10",
		"10",
		"1",
		"failed",
		"ok",
		"2",
		"failed",
		"ok",
		"ok",
		"hit",
		"hit",
		"1 0",
		"no",
		"no",
		"no",
		"ok",
		"yes",
	}, got)
	assert.Equal(t, ErrorLine+"\n", h.errOut.String())
}

func TestSessionWinByReportedKills(t *testing.T) {
	h := newHarness()

	got := h.run(t,
		"create master",
		"start",
		"set result kill",
		"set result kill",
		"set result hit",
		"set result kill",
		"win",
		"set result kill",
		"win",
	)

	assert.Equal(t, []string{"ok", "ok", "ok", "ok", "ok", "ok", "no", "ok", "yes"}, got)
}

func TestSessionLoseBySinkingFleet(t *testing.T) {
	h := newHarness()

	got := h.run(t,
		"create slave",
		"set width 4",
		"set height 4",
		"set count 1 1",
		"start",
		"shot 3 3",
		"shot 0 0",
		"lose",
		"print",
	)

	assert.Equal(t, []string{
		"ok", "ok", "ok", "ok", "ok",
		"miss",
		"kill",
		"yes",
		"* 0 0 0 ",
		"0 0 0 0 ",
		"0 0 0 0 ",
		"0 0 0 0 ",
	}, got)
}

func TestSessionDumpAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my fleet.txt")

	src := newHarness()
	got := src.run(t, "create master", "start", "dump "+path)
	assert.Equal(t, []string{"ok", "ok", "ok"}, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "10 10\n4 h 0 0\n3 h 0 2\n2 h 0 4\n1 h 0 6\n", string(data))

	dst := newHarness()
	got = dst.run(t, "load "+path, "get width", "get count 3", "shot 0 6", "shot 0 7")
	assert.Equal(t, []string{"ok", "10", "1", "kill", "miss"}, got)
}

func TestSessionFileFailures(t *testing.T) {
	h := newHarness()
	missing := filepath.Join(t.TempDir(), "missing.txt")

	got := h.run(t, "load "+missing, "dump "+filepath.Join(missing, "x.txt"), "get width")

	assert.Equal(t, []string{"failed", "failed", "0"}, got)
}

func TestSessionRejectsMalformedCommands(t *testing.T) {
	tests := []string{
		"",
		"create king",
		"set strategy random",
		"set depth 3",
		"get count x",
		"get depth",
		"shot a b",
		"shot 1",
		"load",
		"ping pong",
	}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			h := newHarness()

			quit := h.session.Handle(line)

			assert.False(t, quit)
			assert.Empty(t, h.out.String())
			assert.Equal(t, ErrorLine+"\n", h.errOut.String())
		})
	}
}

func TestSessionSetCountFailures(t *testing.T) {
	h := newHarness()

	got := h.run(t, "create master", "set count 5 1", "set count 1", "set count 1 -2", "set count 12 1")

	assert.Equal(t, []string{"ok", "failed", "failed", "failed", "failed"}, got)
}

func TestServeStopsOnCancelledContext(t *testing.T) {
	h := newHarness()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.session.Serve(ctx, strings.NewReader("ping\n"))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, h.out.String())
}

func TestHandleExit(t *testing.T) {
	h := newHarness()

	assert.True(t, h.session.Handle("exit"))
	assert.True(t, h.session.Handle("exit\r"))
}

func TestSetResultTakesRestOfLine(t *testing.T) {
	h := newHarness()

	got := h.run(t,
		"create master",
		"start",
		"set result kill extra",
		"set result   kill  ",
		"set result kill",
		"set result kill",
		"win",
	)

	// "kill extra" is not a verdict, so only three kills count.
	assert.Equal(t, []string{"ok", "ok", "ok", "ok", "ok", "ok", "no"}, got)
	assert.Empty(t, h.errOut.String())
	assert.Equal(t, int64(1), h.session.Game().Field().EnemyAlive)
}

func TestServeHandlesLongLines(t *testing.T) {
	h := newHarness()

	got := h.run(t,
		"create master",
		"set result "+strings.Repeat("x", 256*1024),
		"ping",
	)

	assert.Equal(t, []string{"ok", "ok", "pong"}, got)
}

func TestServeLastLineWithoutNewline(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.session.Serve(context.Background(), strings.NewReader("ping\nping")))

	assert.Equal(t, "pong\npong\n", h.out.String())
}

func TestSessionHugeBoard(t *testing.T) {
	h := newHarness()

	got := h.run(t,
		"create master",
		"set width 10000000000",
		"set height 10000000000",
		"set count 1 9000000000000000000",
		"get count 1",
		"set count 4 9223372036854775808",
		"get count 4",
	)

	assert.Equal(t, []string{"ok", "ok", "ok", "ok", "9000000000000000000", "failed", "1"}, got)
}
