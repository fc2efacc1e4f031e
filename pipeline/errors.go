package pipeline

import (
	"errors"
	"fmt"
)

// Stage names the pipeline step an error originated from. It is what the
// presentation layer shows to the operator.
type Stage string

const (
	StageFetch     Stage = "fetch"
	StageExtract   Stage = "extract"
	StageGenerate  Stage = "generate"
	StageSynthesis Stage = "synthesize"
	StageCompose   Stage = "compose"
)

// StageError is implemented by every pipeline error type.
type StageError interface {
	error
	Stage() Stage
}

// FetchError reports a failed page retrieval.
type FetchError struct{ Err error }

func (e *FetchError) Error() string { return fmt.Sprintf("failed to fetch product page: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }
func (e *FetchError) Stage() Stage  { return StageFetch }

// ExtractionError reports that product metadata could not be located in
// the page. Callers must not proceed with partial data.
type ExtractionError struct{ Err error }

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract product info: %v", e.Err)
}
func (e *ExtractionError) Unwrap() error { return e.Err }
func (e *ExtractionError) Stage() Stage  { return StageExtract }

// GenerationError reports a failed or empty language-model completion.
type GenerationError struct{ Err error }

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate ad script: %v", e.Err)
}
func (e *GenerationError) Unwrap() error { return e.Err }
func (e *GenerationError) Stage() Stage  { return StageGenerate }

// SynthesisError reports a text-to-speech failure.
type SynthesisError struct{ Err error }

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("failed to synthesize voiceover: %v", e.Err)
}
func (e *SynthesisError) Unwrap() error { return e.Err }
func (e *SynthesisError) Stage() Stage  { return StageSynthesis }

// CompositionError reports a failed video composition.
type CompositionError struct{ Err error }

func (e *CompositionError) Error() string {
	return fmt.Sprintf("failed to compose video: %v", e.Err)
}
func (e *CompositionError) Unwrap() error { return e.Err }
func (e *CompositionError) Stage() Stage  { return StageCompose }

// StageOf returns the stage an error belongs to, or "" for errors that did
// not come out of a pipeline stage.
func StageOf(err error) Stage {
	var staged StageError
	if errors.As(err, &staged) {
		return staged.Stage()
	}
	return ""
}
