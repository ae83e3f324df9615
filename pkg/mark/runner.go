package mark

import (
	"sync"

	"k8s.io/klog/v2"
)

// Runner serializes the results of overlapping pipeline runs. A new upload
// starts a fresh run and makes every earlier run stale; a stale run's late
// completion must not overwrite the newer result. Begin returns a token
// captured at upload time, and Commit installs a result only while its
// token is still current.
type Runner struct {
	mu     sync.Mutex
	run    uint64
	result *Result
}

// Begin starts a new run, invalidating all earlier tokens. The previous
// result is cleared so a cleared view never shows stale pixels.
func (r *Runner) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.run++
	r.result = nil
	return r.run
}

// Commit installs res if token is still the current run. It reports whether
// the result was accepted.
func (r *Runner) Commit(token uint64, res *Result) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token != r.run {
		klog.V(1).Infof("dropping stale result from run %d (current %d)", token, r.run)
		return false
	}
	r.result = res
	return true
}

// Current returns the most recently committed result, or nil.
func (r *Runner) Current() *Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}
