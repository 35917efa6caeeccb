package sandbox

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// CaseResult is the verdict for one test case.
type CaseResult struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	ActualOutput   string `json:"actual_output"`
	Passed         bool   `json:"passed"`
	TimedOut       bool   `json:"timed_out"`
	Error          string `json:"error,omitempty"`
}

// RunOutcome is the raw result of an ungraded free-run.
type RunOutcome struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// Evaluation aggregates one submission's run.
//
// Exactly one of FreeRun / Results is populated: FreeRun when the caller
// supplied no test cases, Results otherwise. Results always covers a prefix of
// the case list in original order; evaluation halts at the first timeout.
type Evaluation struct {
	FreeRun *RunOutcome `json:"free_run,omitempty"`

	CompileError  bool   `json:"compile_error"`
	CompileOutput string `json:"compile_output,omitempty"`

	Results     []CaseResult `json:"results,omitempty"`
	TimedOut    bool         `json:"timed_out"`
	AllErrored  bool         `json:"all_errored"`
	PassedCount int          `json:"passed_count"`
	TotalCount  int          `json:"total_count"`

	// Score is the exact fraction of cases passed, in [0,1].
	Score float64 `json:"score"`
}

// Evaluator drives the Runner across a submission's test cases.
type Evaluator struct {
	runner   Runner
	adapters []Adapter
}

func NewEvaluator(runner Runner, adapters ...Adapter) *Evaluator {
	return &Evaluator{runner: runner, adapters: adapters}
}

// Languages lists the languages this evaluator can execute.
func (e *Evaluator) Languages() []string {
	langs := make([]string, len(e.adapters))
	for i, a := range e.adapters {
		langs[i] = a.Language()
	}
	return langs
}

// Evaluate runs code against cases in order.
//
// With no cases it performs a single free-run with the ad hoc input and
// returns the raw output without a verdict. Otherwise it syntax-checks the
// submission once (a failure or a timeout during the check skips every case),
// then executes cases strictly in order, short-circuiting the remainder on the
// first timeout so one infinite loop costs at most one timeout budget.
func (e *Evaluator) Evaluate(ctx context.Context, language, code, adHocInput string, cases []TestCase) (*Evaluation, error) {
	adapter, err := adapterFor(e.adapters, language)
	if err != nil {
		return nil, err
	}

	if len(cases) == 0 {
		return e.freeRun(ctx, adapter, code, adHocInput)
	}

	eval := &Evaluation{TotalCount: len(cases)}

	// One syntax check per submission, never per case.
	checkBin, checkArgs := adapter.CheckCommand()
	check, err := e.runner.Execute(ctx, checkBin, checkArgs, code, adapter.FileExt())
	if err != nil {
		return nil, err
	}
	if check.TimedOut {
		eval.TimedOut = true
		log.Debug().Str("language", language).Msg("Submission timed out during syntax check")
		return eval, nil
	}
	if check.ExitCode != 0 {
		eval.CompileError = true
		eval.CompileOutput = strings.TrimSpace(check.Stderr)
		log.Debug().Str("language", language).Msg("Submission failed syntax check")
		return eval, nil
	}

	entry, ok := adapter.DetectEntryPoint(code)
	if !ok {
		entry = EntryPoint{Name: FallbackEntryPointName}
	}

	runBin, runArgs := adapter.RunCommand()
	for _, tc := range cases {
		program := adapter.WrapFunction(code, entry, callArgs(entry, tc.Input))
		run, err := e.runner.Execute(ctx, runBin, runArgs, program, adapter.FileExt())
		if err != nil {
			return nil, err
		}

		result := CaseResult{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
			ActualOutput:   strings.TrimSpace(run.Stdout),
		}

		if run.TimedOut {
			result.TimedOut = true
			eval.Results = append(eval.Results, result)
			eval.TimedOut = true
			break
		}

		if run.Failed() {
			result.Error = strings.TrimSpace(run.Stderr)
		} else {
			result.Passed = result.ActualOutput == strings.TrimSpace(tc.ExpectedOutput)
		}
		if result.Passed {
			eval.PassedCount++
		}
		eval.Results = append(eval.Results, result)
	}

	eval.Score = float64(eval.PassedCount) / float64(eval.TotalCount)
	eval.AllErrored = allErrored(eval.Results)
	return eval, nil
}

func (e *Evaluator) freeRun(ctx context.Context, adapter Adapter, code, input string) (*Evaluation, error) {
	runBin, runArgs := adapter.RunCommand()
	program := adapter.WrapScript(code, input)
	run, err := e.runner.Execute(ctx, runBin, runArgs, program, adapter.FileExt())
	if err != nil {
		return nil, err
	}

	outcome := &RunOutcome{Output: strings.TrimSpace(run.Stdout)}
	if run.TimedOut {
		outcome.Error = "execution timed out"
	} else if run.Stderr != "" {
		outcome.Error = strings.TrimSpace(run.Stderr)
	}
	return &Evaluation{FreeRun: outcome, TimedOut: run.TimedOut}, nil
}

// allErrored distinguishes "program fundamentally broken" (every executed case
// errored and produced nothing) from "program logically wrong".
func allErrored(results []CaseResult) bool {
	if len(results) == 0 {
		return false
	}
	for _, r := range results {
		if r.ActualOutput != "" {
			return false
		}
		if r.Error == "" && !r.TimedOut {
			return false
		}
	}
	return true
}
