package sandbox

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func requireBinary(t *testing.T, bin string) {
	t.Helper()
	if _, err := exec.LookPath(bin); err != nil {
		t.Skipf("%s not installed, skipping", bin)
	}
}

func TestProcessRunnerCapturesStdout(t *testing.T) {
	requireBinary(t, "python3")

	r := NewProcessRunner(DefaultTimeout)
	res, err := r.Execute(context.Background(), "python3", nil, "print('hello')", ".py")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if strings.TrimSpace(res.Stdout) != "hello" {
		t.Errorf("stdout = %q", res.Stdout)
	}
	if res.TimedOut || res.Failed() {
		t.Errorf("unexpected failure: %+v", res)
	}
}

func TestProcessRunnerReportsRuntimeError(t *testing.T) {
	requireBinary(t, "python3")

	r := NewProcessRunner(DefaultTimeout)
	res, err := r.Execute(context.Background(), "python3", nil, "raise ValueError('boom')", ".py")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.TimedOut {
		t.Fatal("runtime error must not be reported as timeout")
	}
	if !res.Failed() {
		t.Fatalf("expected runtime failure, got %+v", res)
	}
	if !strings.Contains(res.Stderr, "ValueError") {
		t.Errorf("stderr = %q", res.Stderr)
	}
}

func TestProcessRunnerKillsOnTimeout(t *testing.T) {
	requireBinary(t, "python3")

	r := NewProcessRunner(500 * time.Millisecond)
	start := time.Now()
	res, err := r.Execute(context.Background(), "python3", nil, "while True:\n    pass", ".py")
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !res.TimedOut {
		t.Fatal("expected timeout")
	}
	if elapsed > 3*time.Second {
		t.Errorf("kill took too long: %v", elapsed)
	}
}

func TestProcessRunnerRejectsEmptyProgram(t *testing.T) {
	r := NewProcessRunner(DefaultTimeout)
	if _, err := r.Execute(context.Background(), "python3", nil, "", ".py"); err == nil {
		t.Fatal("expected error for empty program")
	}
}

func TestEvaluatorEndToEndPython(t *testing.T) {
	requireBinary(t, "python3")

	ev := NewEvaluator(NewProcessRunner(DefaultTimeout), NewPythonAdapter(""))
	eval, err := ev.Evaluate(context.Background(), "python", addSource, "", []TestCase{
		{Input: "1\n2", ExpectedOutput: "3"},
		{Input: "40\n2", ExpectedOutput: "42"},
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if eval.PassedCount != 2 {
		t.Errorf("passed = %d, results %+v", eval.PassedCount, eval.Results)
	}
}

func TestEvaluatorEndToEndJavaScript(t *testing.T) {
	requireBinary(t, "node")

	ev := NewEvaluator(NewProcessRunner(DefaultTimeout), NewJavaScriptAdapter(""))
	eval, err := ev.Evaluate(context.Background(), "javascript",
		"function add(a, b) { return a + b; }", "", []TestCase{
			{Input: "1\n2", ExpectedOutput: "3"},
		})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if eval.PassedCount != 1 {
		t.Errorf("passed = %d, results %+v", eval.PassedCount, eval.Results)
	}
}
