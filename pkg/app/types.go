package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-ledgerbuild/internal/parsers/elfsymbols"
	"github.com/deploymenttheory/go-ledgerbuild/internal/runner"
)

// Stage identifies which ledgerbuild operation produced an error
type Stage string

const (
	StageSize    Stage = "size"
	StageExport  Stage = "export"
	StageInstall Stage = "install"
)

// RunInfo identifies a single operation run in reports
type RunInfo struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// NewRunInfo starts a run with a fresh identifier
func NewRunInfo() RunInfo {
	return RunInfo{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Finish records the elapsed time since the run started
func (r *RunInfo) Finish() {
	r.Duration = time.Since(r.StartedAt)
}

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Stage   Stage
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	prefix := fmt.Sprintf("[%s] ", e.Code)
	if e.Stage != "" {
		prefix = fmt.Sprintf("%s: [%s] ", e.Stage, e.Code)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %v", prefix, e.Message, e.Cause)
	}
	return prefix + e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeIOFailure         = "IO_FAILURE"
	ErrCodeFormatFailure     = "FORMAT_FAILURE"
	ErrCodeSymbolResolution  = "SYMBOL_RESOLUTION_FAILURE"
	ErrCodeRegionInvariant   = "REGION_INVARIANT_FAILURE"
	ErrCodeToolNotFound      = "TOOL_NOT_FOUND"
	ErrCodeToolExecution     = "TOOL_EXECUTION_FAILURE"
	ErrCodeOutputFailure     = "OUTPUT_FAILURE"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewStageError creates a new CommonError attributed to stage
func NewStageError(stage Stage, code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}

// NewRegionError maps a region reader failure onto its error kind
func NewRegionError(err error) *CommonError {
	switch {
	case errors.Is(err, elfsymbols.ErrReadFailed):
		return NewStageError(StageSize, ErrCodeIOFailure, "cannot read ELF file", err)
	case errors.Is(err, elfsymbols.ErrMalformedBinary):
		return NewStageError(StageSize, ErrCodeFormatFailure, "not a valid ELF binary", err)
	case errors.Is(err, elfsymbols.ErrMissingSymbol):
		return NewStageError(StageSize, ErrCodeSymbolResolution, "cannot resolve region symbols", err)
	case errors.Is(err, elfsymbols.ErrInvalidRegion):
		return NewStageError(StageSize, ErrCodeRegionInvariant, "region end precedes region start", err)
	default:
		return NewStageError(StageSize, ErrCodeIOFailure, "region size computation failed", err)
	}
}

// NewToolError maps a command runner failure for tool onto its error kind
func NewToolError(stage Stage, tool string, err error) *CommonError {
	if errors.Is(err, runner.ErrToolNotFound) {
		return NewStageError(stage, ErrCodeToolNotFound, fmt.Sprintf("%s not found", tool), err)
	}
	return NewStageError(stage, ErrCodeToolExecution, fmt.Sprintf("%s failed", tool), err)
}

// ErrorCode returns the code of the first CommonError in err's chain
func ErrorCode(err error) string {
	var ce *CommonError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
