package rsacore

import "context"

// Retry calls fn with attempt numbers starting at 1 until fn reports done,
// fn returns an error, ctx is cancelled, or maxAttempts calls have been made.
// It returns the number of attempts consumed. Running out of attempts yields
// ErrRandomSourceExhausted: callers use Retry for searches that only fail to
// terminate when their randomness is broken.
func Retry(ctx context.Context, maxAttempts int, fn func(attempt int) (bool, error)) (int, error) {
	if maxAttempts < 1 {
		return 0, Errorf("retry", ErrMalformedInput, "max attempts must be positive, got %d", maxAttempts)
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return attempt - 1, err
		}
		done, err := fn(attempt)
		if err != nil {
			return attempt, err
		}
		if done {
			return attempt, nil
		}
	}
	return maxAttempts, Errorf("retry", ErrRandomSourceExhausted, "no result after %d attempts", maxAttempts)
}
