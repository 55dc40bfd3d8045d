package evaluator

import (
	"os"

	"github.com/sty00a4/funx-go/internal/ferrors"
)

// stdCore is the optional preload path of spec.md §6: present its contents
// install standard-library definitions before the user file runs; absent,
// the run proceeds without it.
const stdCore = "std/core.funx"

// Run reads path, optionally preloads std/core.funx, and evaluates the
// file to completion, returning the Evaluator (so the CLI can render a
// failed run's trace with source excerpts) and any error.
func Run(path string) (*Evaluator, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, ferrors.NewTargetNotFound(path)
	}

	e := New(path)

	if _, err := os.Stat(stdCore); err == nil {
		if _, err := evalFile(e, stdCore); err != nil {
			return e, err
		}
	}

	if _, err := evalFile(e, path); err != nil {
		return e, err
	}
	return e, nil
}
