package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/vthang/Skillforge/internal/dto"
	"github.com/vthang/Skillforge/internal/sandbox"
)

// CodeEvaluator is the slice of the sandbox the services depend on.
type CodeEvaluator interface {
	Evaluate(ctx context.Context, language, code, adHocInput string, cases []sandbox.TestCase) (*sandbox.Evaluation, error)
	Languages() []string
}

// ExecutionService runs ad hoc code for the practice/execute endpoint.
type ExecutionService interface {
	Execute(ctx context.Context, req *dto.ExecuteCodeRequest) (*dto.ExecutionResultDTO, error)
	Languages() []string
}

type executionService struct {
	evaluator CodeEvaluator
}

func NewExecutionService(evaluator CodeEvaluator) ExecutionService {
	return &executionService{evaluator: evaluator}
}

func (s *executionService) Execute(ctx context.Context, req *dto.ExecuteCodeRequest) (*dto.ExecutionResultDTO, error) {
	cases := make([]sandbox.TestCase, 0, len(req.TestCases))
	for _, tc := range req.TestCases {
		cases = append(cases, sandbox.TestCase{Input: tc.Input, ExpectedOutput: tc.ExpectedOutput})
	}

	eval, err := s.evaluator.Evaluate(ctx, req.Language, req.Code, req.Input, cases)
	if err != nil {
		log.Error().Err(err).Str("language", req.Language).Msg("Execute: Evaluation failed")
		return nil, err
	}
	return ExecutionResultFromEvaluation(eval), nil
}

func (s *executionService) Languages() []string {
	return s.evaluator.Languages()
}

// ExecutionResultFromEvaluation maps a sandbox evaluation onto the wire shape
// shared by the execute endpoint and per-answer feedback.
func ExecutionResultFromEvaluation(eval *sandbox.Evaluation) *dto.ExecutionResultDTO {
	out := &dto.ExecutionResultDTO{
		CompileError:  eval.CompileError,
		CompileOutput: eval.CompileOutput,
		TimedOut:      eval.TimedOut,
		AllErrored:    eval.AllErrored,
		Score:         eval.Score,
	}
	if eval.FreeRun != nil {
		out.Output = eval.FreeRun.Output
		out.OutputError = eval.FreeRun.Error
		return out
	}
	for _, r := range eval.Results {
		out.Results = append(out.Results, dto.TestCaseResultDTO{
			Input:          r.Input,
			ExpectedOutput: r.ExpectedOutput,
			ActualOutput:   r.ActualOutput,
			Passed:         r.Passed,
			TimedOut:       r.TimedOut,
			Error:          r.Error,
		})
	}
	return out
}
