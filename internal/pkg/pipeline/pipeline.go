// Package pipeline runs ordered sequences of fallible steps where the first
// failure wins and every later step is skipped.
//
// Use cases describe a request as a pipeline (lookup, validate, guard, mutate)
// and validators describe a payload as a list of checks:
//
//	err := pipeline.Run(ctx,
//	    func(ctx context.Context) error { d, err = repo.FindByID(ctx, id); return err },
//	    func(context.Context) error { return dish.ValidatePayload(payload) },
//	    func(ctx context.Context) error { return repo.Update(ctx, d) },
//	)
package pipeline

import "context"

// Step is one stage of a request pipeline.
type Step func(ctx context.Context) error

// Check is one context-free rule, typically a field validation.
type Check func() error

// Run executes steps in order and returns the first error. A cancelled
// context stops the pipeline before the next step starts.
func Run(ctx context.Context, steps ...Step) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// First evaluates checks in order and returns the first error.
func First(checks ...Check) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
