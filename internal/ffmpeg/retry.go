package ffmpeg

// RetryPolicy is the error-classification/retry-scheduling external
// collaborator: the core consults it after an encoder failure to decide
// whether the job should be retried, but the policy's internals (backoff,
// max-attempt bookkeeping, persistence) are out of scope for the core.
type RetryPolicy interface {
	// ShouldRetry reports whether a job that failed with the given error
	// family on the given attempt number (1-indexed) should be retried.
	ShouldRetry(family Family, attempt int) bool
}

// FixedAttemptPolicy is a minimal RetryPolicy that retries any
// classified failure until MaxAttempts attempts (the first one included)
// have been made. The CLI passes it to the driver explicitly; a driver
// with a nil RetryPolicy never retries.
type FixedAttemptPolicy struct {
	MaxAttempts int
}

// ShouldRetry retries anything but FamilyUnknown, up to MaxAttempts.
func (p FixedAttemptPolicy) ShouldRetry(family Family, attempt int) bool {
	if family == FamilyUnknown {
		return false
	}
	return attempt < p.MaxAttempts
}

// RecordingRetryPolicy is a test RetryPolicy that records every decision
// query and always answers from a canned list, so tests can assert what
// the driver asked without needing real retry logic.
type RecordingRetryPolicy struct {
	Decisions []bool
	Queries   []struct {
		Family  Family
		Attempt int
	}
	next int
}

// ShouldRetry records the query and returns the next canned decision (or
// false once the canned list is exhausted).
func (r *RecordingRetryPolicy) ShouldRetry(family Family, attempt int) bool {
	r.Queries = append(r.Queries, struct {
		Family  Family
		Attempt int
	}{family, attempt})
	if r.next < len(r.Decisions) {
		d := r.Decisions[r.next]
		r.next++
		return d
	}
	return false
}
