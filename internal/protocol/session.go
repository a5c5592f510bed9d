// Package protocol serves the line-oriented sea battle command protocol.
// Each request line yields one response line (print yields a block);
// malformed requests get an error line on the error stream.
package protocol

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seabattle/internal/engine"
)

// Responses shared by several commands.
const (
	RespOK     = "ok"
	RespFailed = "failed"
	RespYes    = "yes"
	RespNo     = "no"
	RespPong   = "pong"

	ErrorLine = "Error: Wrong argument!"
)

// Session drives one game from a stream of commands.
type Session struct {
	game   *engine.Game
	out    io.Writer
	errOut io.Writer
	logger *log.Logger
}

// NewSession creates a session writing responses to out and error lines
// to errOut. A nil logger discards log output.
func NewSession(game *engine.Game, out, errOut io.Writer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:   game,
		out:    out,
		errOut: errOut,
		logger: logger,
	}
}

// Game returns the game driven by the session.
func (s *Session) Game() *engine.Game {
	return s.game
}

// Serve reads commands from in until "exit", end of input or ctx is done.
// Lines have no length limit.
func (s *Session) Serve(ctx context.Context, in io.Reader) error {
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line == "" && err == io.EOF {
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if quit := s.Handle(strings.TrimSuffix(line, "\n")); quit {
			s.logger.Debug("session closed by peer")
			return nil
		}
		if err == io.EOF {
			return nil
		}
	}
}

// Handle executes a single command line. It reports true for "exit".
func (s *Session) Handle(line string) bool {
	line = strings.TrimRight(line, "\r")
	fields := strings.Fields(line)
	s.logger.Debug("command", "line", line)

	if len(fields) == 0 {
		s.reject(line)
		return false
	}

	switch fields[0] {
	case "exit":
		if len(fields) == 1 {
			return true
		}
		s.reject(line)
	case "ping":
		s.respondIf(len(fields) == 1, line, RespPong)
	case "create":
		s.handleCreate(line, fields)
	case "set":
		s.handleSet(line, fields)
	case "get":
		s.handleGet(line, fields)
	case "start":
		s.handleStart(line, fields)
	case "stop":
		if len(fields) != 1 {
			s.reject(line)
			return false
		}
		s.game.Stop()
		s.respond(RespOK)
	case "print":
		if len(fields) != 1 {
			s.reject(line)
			return false
		}
		if err := s.game.PrintField(s.out); err != nil {
			s.logger.Error("print failed", "err", err)
		}
	case "shot":
		s.handleShot(line, fields)
	case "win":
		s.respondIf(len(fields) == 1, line, yesNo(s.game.IsWin()))
	case "lose":
		s.respondIf(len(fields) == 1, line, yesNo(s.game.IsLose()))
	case "finished":
		s.respondIf(len(fields) == 1, line, yesNo(s.game.IsFinished()))
	case "load", "dump":
		s.handleFile(line, fields[0])
	default:
		s.reject(line)
	}
	return false
}

func (s *Session) handleCreate(line string, fields []string) {
	if len(fields) != 2 {
		s.reject(line)
		return
	}
	role, ok := engine.ParseRole(fields[1])
	if !ok {
		s.reject(line)
		return
	}
	s.game.Create(role)
	s.logger.Info("player created", "role", role)
	s.respond(RespOK)
}

func (s *Session) handleSet(line string, fields []string) {
	if len(fields) < 3 {
		s.reject(line)
		return
	}

	switch fields[1] {
	case "width", "height":
		if len(fields) != 3 {
			s.reject(line)
			return
		}
		v, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			s.respond(RespFailed)
			return
		}
		var ok bool
		if fields[1] == "width" {
			ok = s.game.SetWidth(v)
		} else {
			ok = s.game.SetHeight(v)
		}
		s.respond(okFailed(ok))

	case "count":
		if len(fields) != 4 {
			s.respond(RespFailed)
			return
		}
		n, nok := parseDigit(fields[2])
		v, err := strconv.ParseUint(fields[3], 10, 64)
		if !nok || err != nil {
			s.respond(RespFailed)
			return
		}
		ok := s.game.SetCount(n, v)
		if !ok {
			s.logger.Warn("quota rejected", "size", n, "count", v,
				"width", s.game.GetWidth(), "height", s.game.GetHeight())
		}
		s.respond(okFailed(ok))

	case "strategy":
		kind, ok := engine.ParseStrategyKind(fields[2])
		if len(fields) != 3 || !ok {
			s.reject(line)
			return
		}
		s.game.SetStrategy(kind)
		s.respond(RespOK)

	case "result":
		// The verdict is the rest of the line; anything but a single
		// known word reads as undefined.
		verdict := afterFields(line, 2)
		r := s.game.SetShotResult(verdict)
		if r == engine.ShotUndefined {
			s.logger.Warn("unknown shot result", "result", verdict)
		}
		s.respond(RespOK)

	default:
		s.reject(line)
	}
}

func (s *Session) handleGet(line string, fields []string) {
	switch {
	case len(fields) == 2 && fields[1] == "width":
		s.respond(strconv.FormatUint(s.game.GetWidth(), 10))
	case len(fields) == 2 && fields[1] == "height":
		s.respond(strconv.FormatUint(s.game.GetHeight(), 10))
	case len(fields) == 3 && fields[1] == "count":
		n, ok := parseDigit(fields[2])
		if !ok {
			s.reject(line)
			return
		}
		s.respond(strconv.FormatUint(s.game.GetCount(n), 10))
	default:
		s.reject(line)
	}
}

func (s *Session) handleStart(line string, fields []string) {
	if len(fields) != 1 {
		s.reject(line)
		return
	}
	if err := s.game.Start(); err != nil {
		s.logger.Warn("start failed", "err", err)
		s.respond(RespFailed)
		return
	}
	s.logger.Info("fleet placed",
		"ships", s.game.Field().OwnAlive,
		"strategy", s.game.Strategy().Kind())
	s.respond(RespOK)
}

func (s *Session) handleShot(line string, fields []string) {
	switch len(fields) {
	case 1:
		s.respond(s.game.SetShot().String())
	case 3:
		x, xerr := strconv.ParseInt(fields[1], 10, 64)
		y, yerr := strconv.ParseInt(fields[2], 10, 64)
		if xerr != nil || yerr != nil {
			s.reject(line)
			return
		}
		res := s.game.CheckShot(engine.C(x, y))
		if s.game.IsLose() {
			s.logger.Info("own fleet destroyed")
		}
		s.respond(res.String())
	default:
		s.reject(line)
	}
}

// handleFile serves load and dump. The path is the rest of the line so
// it may contain spaces.
func (s *Session) handleFile(line, cmd string) {
	path := afterFields(line, 1)
	if path == "" {
		s.reject(line)
		return
	}

	var err error
	if cmd == "load" {
		err = s.game.Load(path)
	} else {
		err = s.game.Dump(path)
	}
	if err != nil {
		s.logger.Warn(cmd+" failed", "path", path, "err", err)
		s.respond(RespFailed)
		return
	}
	s.respond(RespOK)
}

func (s *Session) respond(resp string) {
	fmt.Fprintln(s.out, resp)
}

func (s *Session) respondIf(ok bool, line, resp string) {
	if !ok {
		s.reject(line)
		return
	}
	s.respond(resp)
}

func (s *Session) reject(line string) {
	s.logger.Warn("rejected command", "line", line)
	fmt.Fprintln(s.errOut, ErrorLine)
}

// afterFields returns line without its first n fields and without
// surrounding blanks.
func afterFields(line string, n int) string {
	rest := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			return ""
		}
		rest = strings.TrimLeftFunc(rest[end:], unicode.IsSpace)
	}
	return rest
}

// parseDigit accepts a single decimal digit.
func parseDigit(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}

func okFailed(ok bool) string {
	if ok {
		return RespOK
	}
	return RespFailed
}

func yesNo(ok bool) string {
	if ok {
		return RespYes
	}
	return RespNo
}
