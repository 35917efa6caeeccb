package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout is the wall-clock budget for one interpreter process.
const DefaultTimeout = 5 * time.Second

var ErrEmptyProgram = errors.New("sandbox: empty program")

// RunResult is the raw outcome of one interpreter process.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// Failed reports a runtime error: the process exited non-zero or wrote to
// stderr. A timeout is reported via TimedOut, never via Failed, because
// callers treat the two differently.
func (r RunResult) Failed() bool {
	return !r.TimedOut && (r.ExitCode != 0 || r.Stderr != "")
}

// Runner executes one materialized program in a fresh OS process.
type Runner interface {
	// Execute writes source to a uniquely named temp file with the given
	// extension and runs "bin preArgs... <path>" under the runner's timeout.
	Execute(ctx context.Context, bin string, preArgs []string, source, ext string) (RunResult, error)
}

// ProcessRunner spawns local interpreter processes with a hard wall-clock
// timeout. Each invocation gets its own temp file; the file is removed on
// every exit path, including timeout-induced kills, so concurrent evaluations
// never share or leak files.
type ProcessRunner struct {
	timeout time.Duration
}

func NewProcessRunner(timeout time.Duration) *ProcessRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ProcessRunner{timeout: timeout}
}

func (r *ProcessRunner) Execute(ctx context.Context, bin string, preArgs []string, source, ext string) (RunResult, error) {
	if source == "" {
		return RunResult{}, ErrEmptyProgram
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("skillforge-%s%s", uuid.NewString(), ext))
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		return RunResult{}, fmt.Errorf("failed to write program file: %w", err)
	}
	// The process is killed before this runs on the timeout path, so removal
	// never races with an executing interpreter.
	defer func() {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to remove temp program file")
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := append(append([]string{}, preArgs...), path)
	cmd := exec.CommandContext(runCtx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if runCtx.Err() == context.DeadlineExceeded {
		// CommandContext already killed the process; Run has returned, so the
		// subprocess is gone and no orphan remains.
		result.TimedOut = true
		log.Warn().Str("bin", bin).Dur("timeout", r.timeout).Msg("Sandbox process timed out and was killed")
		return result, nil
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Runtime error inside the candidate's program, not a runner fault.
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("failed to start %s: %w", bin, err)
	}

	return result, nil
}
