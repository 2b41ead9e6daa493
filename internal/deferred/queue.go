// Package deferred provides the FIFO queue for operations that must run
// after an install's immediate phase: asset creation and scene wiring.
//
// Each queued operation must be individually idempotent and must tolerate
// running zero, one, or more times, since the user may re-trigger an install
// before a previous queue drained. Operations from one install run in
// submission order; ordering across interleaved installs is not guaranteed
// and is mitigated only by idempotence.
package deferred

import "github.com/gamekit-dev/gamekit/internal/output"

// Op is a queued zero-argument operation. A transient condition (type not
// yet registered) is not an error; ops log and return nil for those.
type Op struct {
	// Label identifies the operation in logs.
	Label string

	// Run performs the operation.
	Run func() error
}

// Queue is a FIFO of deferred operations, drained exactly once per drain
// call. It is not safe for concurrent use; the CLI is single-threaded by
// construction.
type Queue struct {
	ops []Op
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends an operation.
func (q *Queue) Enqueue(label string, run func() error) {
	q.ops = append(q.ops, Op{Label: label, Run: run})
}

// Len returns the number of pending operations.
func (q *Queue) Len() int {
	return len(q.ops)
}

// Drain runs every pending operation in submission order and empties the
// queue. A failing operation is logged and does not stop the drain; the
// blast radius of any one op is a single file or asset. Returns the first
// error encountered, if any.
func (q *Queue) Drain() error {
	ops := q.ops
	q.ops = nil

	var first error
	for _, op := range ops {
		output.Debug("running deferred op", "label", op.Label)
		if err := op.Run(); err != nil {
			output.Error("deferred op failed", "label", op.Label, "error", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
