// SPDX-License-Identifier: MIT

package protocol

// CoordinatorState is a phase of Coordinator.Multiply.
type CoordinatorState int

const (
	CoordinatorIdle CoordinatorState = iota
	Splitting
	Dispatching
	LocalCompute
	Collecting
	Combining
	CoordinatorDone
	CoordinatorFailed
)

var coordinatorStateNames = [...]string{
	CoordinatorIdle:   "idle",
	Splitting:         "splitting",
	Dispatching:       "dispatching",
	LocalCompute:      "local-compute",
	Collecting:        "collecting",
	Combining:         "combining",
	CoordinatorDone:   "done",
	CoordinatorFailed: "failed",
}

// String implements fmt.Stringer.
func (s CoordinatorState) String() string {
	if s < 0 || int(s) >= len(coordinatorStateNames) {
		return "unknown"
	}

	return coordinatorStateNames[s]
}

// WorkerState is a phase of Worker.Serve.
type WorkerState int

const (
	WorkerIdle WorkerState = iota
	Waiting
	Computing
	Reporting
	WorkerDone
	WorkerFailed
)

var workerStateNames = [...]string{
	WorkerIdle:   "idle",
	Waiting:      "waiting",
	Computing:    "computing",
	Reporting:    "reporting",
	WorkerDone:   "done",
	WorkerFailed: "failed",
}

// String implements fmt.Stringer.
func (s WorkerState) String() string {
	if s < 0 || int(s) >= len(workerStateNames) {
		return "unknown"
	}

	return workerStateNames[s]
}

// Transition describes a state change of either role.
type Transition struct {
	Rank int
	From string
	To   string
}
