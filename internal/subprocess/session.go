package subprocess

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/exmaude/maude-sdk-go/internal/errors"
	"github.com/exmaude/maude-sdk-go/internal/maude"
)

const (
	// stopGracePeriod is how long Stop waits for the interpreter to exit
	// voluntarily after the quit command before force-killing it.
	stopGracePeriod = 100 * time.Millisecond

	// maxStderrBufferSize caps the retained stderr tail. The drain
	// goroutine keeps reading past this limit (so the child can never
	// block on a full stderr pipe), but the buffer stops growing.
	maxStderrBufferSize = 1 * 1024 * 1024 // 1MB
)

// State is the lifecycle state of a Session.
type State int32

const (
	// StateStarting is the state between construction and a completed
	// handshake read. Execute is rejected in this state.
	StateStarting State = iota
	// StateReady means the interpreter has emitted its first prompt and
	// accepts commands.
	StateReady
	// StateTerminated means Stop has run (or startup failed). Sessions are
	// single-use and never leave this state.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateReady:
		return "ready"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Config holds the inputs for a Session. MaudePath must already be
// resolved; discovery happens a layer above.
type Config struct {
	Logger      *slog.Logger
	MaudePath   string
	ModuleFiles []string
	Env         []string // nil means inherit the parent environment
	Cwd         string
	Stderr      func(string) // optional per-line stderr callback
}

// Session owns one live Maude process and its three standard streams.
//
// The protocol is strictly request/response with no correlation
// identifiers, so at most one Execute may be in flight per Session; a
// concurrent Execute fails with ErrExecuteInFlight rather than queueing.
// The child handle, stdin and stdout are guarded by independent locks so
// Stop can proceed while an Execute is blocked reading.
type Session struct {
	log  *slog.Logger
	id   string
	cfg  *Config
	args []string

	state atomic.Int32
	began atomic.Bool // Start called (successfully or not)

	// execMu serializes Execute calls. Acquired with TryLock: a losing
	// caller gets an error instead of silently interleaving two commands'
	// frames on the shared streams.
	execMu sync.Mutex

	procMu sync.Mutex // guards cmd, exited, reaped
	cmd    *exec.Cmd
	exited bool
	reaped bool

	stdinMu sync.Mutex
	stdin   *bufio.Writer

	stdoutMu sync.Mutex
	stdout   *bufio.Reader

	stderr     io.ReadCloser
	stderrWg   sync.WaitGroup
	stderrMu   sync.Mutex
	stderrTail strings.Builder
}

// NewSession creates a Session for the given configuration. The process
// is not spawned until Start.
func NewSession(cfg *Config) *Session {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	id := ulid.Make().String()

	return &Session{
		log:  log.With("component", "maude_session", "session_id", id),
		id:   id,
		cfg:  cfg,
		args: maude.BuildArgs(cfg.ModuleFiles),
	}
}

// ID returns the session's ULID, used to correlate log records.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return State(s.state.Load()) }

// Start spawns the Maude process and performs the handshake read that
// consumes the startup output up to the first prompt. The Session is
// usable only after Start returns nil.
//
// The context covers only the pre-spawn phase; a started session is
// deliberately not tied to it, since a gateway handle must outlive the
// call that created it and must never be killed by an unrelated
// cancellation. Use Stop to terminate the process.
//
// If the process exits before emitting a prompt, Start still returns nil
// with the partial startup text consumed; the death becomes visible
// through Alive or the first Execute. Genuine read errors during the
// handshake terminate the session and are returned.
//
// A session is single use. Once Stop has run, whether before Start or
// concurrently with it, Start fails with ErrTerminated and the handle
// stays terminated.
func (s *Session) Start(ctx context.Context) error {
	if !s.began.CompareAndSwap(false, true) {
		return errors.ErrAlreadyStarted
	}

	// Terminated is final: a Stop that ran before this Start must not be
	// undone by spawning a fresh process under the same handle.
	if s.State() == StateTerminated {
		return errors.ErrTerminated
	}

	if err := ctx.Err(); err != nil {
		s.state.Store(int32(StateTerminated))

		return err
	}

	s.log.Info("Starting Maude subprocess", "maude_path", s.cfg.MaudePath, "args", s.args)

	//nolint:gosec // G204: spawning a caller-supplied interpreter path is the point of this package
	cmd := exec.Command(s.cfg.MaudePath, s.args...)
	cmd.Dir = s.cfg.Cwd

	if s.cfg.Env != nil {
		cmd.Env = s.cfg.Env
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		s.state.Store(int32(StateTerminated))

		return &errors.PipeError{Stream: "stdin", Err: err}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.state.Store(int32(StateTerminated))

		return &errors.PipeError{Stream: "stdout", Err: err}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		s.state.Store(int32(StateTerminated))

		return &errors.PipeError{Stream: "stderr", Err: err}
	}

	if err := cmd.Start(); err != nil {
		s.state.Store(int32(StateTerminated))
		s.log.Error("Failed to start Maude process", "error", err)

		return &errors.SpawnError{Path: s.cfg.MaudePath, Err: err}
	}

	s.procMu.Lock()
	s.cmd = cmd
	s.procMu.Unlock()

	s.stdinMu.Lock()
	s.stdin = bufio.NewWriter(stdin)
	s.stdinMu.Unlock()

	s.stdoutMu.Lock()
	s.stdout = bufio.NewReader(stdout)
	s.stdoutMu.Unlock()

	s.stderr = stderr
	s.drainStderr()

	s.log.Info("Maude subprocess started", "pid", cmd.Process.Pid)

	// Handshake: advance the stream to the first prompt so the session is
	// returned only once the interpreter is ready for a command.
	s.stdoutMu.Lock()
	banner, err := s.readUntilPrompt()
	s.stdoutMu.Unlock()

	if err != nil {
		s.log.Error("Handshake read failed", "error", err, "stderr", s.StderrTail())
		s.Stop()

		return err
	}

	if banner != "" {
		s.log.Debug("Consumed startup output", "banner", banner)
	}

	// A concurrent Stop during the handshake has already swapped the state
	// to Terminated and killed the child; it must stay terminated.
	if !s.state.CompareAndSwap(int32(StateStarting), int32(StateReady)) {
		s.Stop()

		return errors.ErrTerminated
	}

	return nil
}

// Execute writes command plus a line terminator to the interpreter,
// flushes, then performs exactly one read-until-prompt cycle and returns
// the trimmed frame.
//
// The context is honored only until the command has been written. Once
// written, the matching read cannot be aborted except by Stop from
// another goroutine, which makes this call observe a read error or a
// premature end-of-stream. Expect unbounded blocking for long-running
// rewrites; run Execute somewhere that tolerates it.
func (s *Session) Execute(ctx context.Context, command string) (string, error) {
	switch s.State() {
	case StateStarting:
		return "", errors.ErrNotStarted
	case StateTerminated:
		return "", errors.ErrTerminated
	case StateReady:
	}

	if !s.execMu.TryLock() {
		return "", errors.ErrExecuteInFlight
	}
	defer s.execMu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.log.Debug("Executing command", "command", command)

	if err := s.writeCommand(command); err != nil {
		return "", err
	}

	s.stdoutMu.Lock()
	defer s.stdoutMu.Unlock()

	output, err := s.readUntilPrompt()
	if err != nil {
		s.log.Error("Response read failed", "error", err, "stderr", s.StderrTail())

		return "", err
	}

	s.log.Debug("Command completed", "output_len", len(output))

	return output, nil
}

// writeCommand sends one command line and flushes it so the interpreter
// observes it without buffering delay.
func (s *Session) writeCommand(command string) error {
	s.stdinMu.Lock()
	defer s.stdinMu.Unlock()

	if s.stdin == nil {
		return errors.ErrNotStarted
	}

	if _, err := s.stdin.WriteString(command); err != nil {
		return &errors.WriteError{Err: err}
	}

	if err := s.stdin.WriteByte('\n'); err != nil {
		return &errors.WriteError{Err: err}
	}

	if err := s.stdin.Flush(); err != nil {
		return &errors.FlushError{Err: err}
	}

	return nil
}

// readUntilPrompt accumulates lines from the interpreter's stdout until
// the prompt literal appears, then returns the accumulated text with the
// prompt excluded and surrounding whitespace trimmed.
//
// The prompt may share a line with trailing response text and no newline
// between them; the portion before the literal is kept, the rest of that
// line is discarded. End-of-stream returns whatever accumulated so far,
// which is how a dead interpreter is observed mid-read. A response that
// legitimately contains the literal mid-content ends the frame early;
// Maude's textual protocol offers no way to tell the difference.
//
// Caller must hold stdoutMu.
func (s *Session) readUntilPrompt() (string, error) {
	var out strings.Builder

	for {
		line, err := s.stdout.ReadString('\n')

		if len(line) > 0 {
			if idx := strings.Index(line, maude.Prompt); idx >= 0 {
				out.WriteString(line[:idx])

				return strings.TrimSpace(out.String()), nil
			}

			out.WriteString(line)
		}

		if err != nil {
			if stderrors.Is(err, io.EOF) {
				s.log.Debug("Output stream closed before prompt")

				return strings.TrimSpace(out.String()), nil
			}

			return "", &errors.ReadError{Err: err}
		}
	}
}

// Stop terminates the session: best-effort quit command, a grace period,
// then unconditional kill and reap. It never fails and is safe to call
// from any state, any number of times, including concurrently with a
// blocked Execute (which will then observe a read error or EOF).
func (s *Session) Stop() {
	prev := State(s.state.Swap(int32(StateTerminated)))
	s.log.Info("Stopping Maude subprocess", "previous_state", prev.String())

	// Graceful phase. TryLock: a wedged writer must not block shutdown.
	if s.stdinMu.TryLock() {
		if s.stdin != nil {
			_, _ = s.stdin.WriteString(maude.QuitCommand + "\n")
			_ = s.stdin.Flush()
		}
		s.stdinMu.Unlock()
	}

	time.Sleep(stopGracePeriod)

	// Forced phase. All errors ignored: the process may already be gone.
	s.procMu.Lock()

	if s.cmd != nil && s.cmd.Process != nil {
		if !s.exited {
			_ = s.cmd.Process.Kill()
		}

		if !s.reaped {
			// Wait reaps the child (or errors if a liveness probe already
			// reaped it) and in either case closes the parent's pipe ends,
			// unblocking any reader still parked on stdout.
			_ = s.cmd.Wait()
			s.reaped = true
			s.exited = true
		}
	}

	started := s.cmd != nil
	s.procMu.Unlock()

	if started {
		s.stderrWg.Wait()
	}

	s.log.Info("Maude subprocess stopped")
}

// Alive reports whether the interpreter process is still running. It
// never fails: any problem determining the status is reported as false.
// The check is non-blocking and does not disturb the I/O streams.
func (s *Session) Alive() bool {
	if s.State() == StateTerminated {
		return false
	}

	s.procMu.Lock()
	defer s.procMu.Unlock()

	if s.cmd == nil || s.cmd.Process == nil || s.exited {
		return false
	}

	return s.tryWait()
}

// StderrTail returns the retained stderr output, capped at
// maxStderrBufferSize. Used to annotate failure logs.
func (s *Session) StderrTail() string {
	s.stderrMu.Lock()
	defer s.stderrMu.Unlock()

	return s.stderrTail.String()
}

// drainStderr continuously consumes the stderr pipe so the interpreter
// can never block on it filling up. Lines are retained (capped) for
// failure diagnostics and forwarded to the configured callback.
func (s *Session) drainStderr() {
	s.stderrWg.Go(func() {
		scanner := bufio.NewScanner(s.stderr)
		for scanner.Scan() {
			line := scanner.Text()

			s.stderrMu.Lock()

			if s.stderrTail.Len() < maxStderrBufferSize {
				if s.stderrTail.Len() > 0 {
					s.stderrTail.WriteString("\n")
				}

				s.stderrTail.WriteString(line)
			}

			s.stderrMu.Unlock()

			if s.cfg.Stderr != nil {
				s.cfg.Stderr(line)
			}
		}

		// Scanner errors are expected when Stop closes the pipe under us.
		if err := scanner.Err(); err != nil {
			s.log.Debug("Stderr scanner stopped", "error", err)
		}
	})
}
