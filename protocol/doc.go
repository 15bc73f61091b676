// Package protocol runs one level of Strassen's decomposition across a
// seven-member process group.
//
// The coordinator (rank 0) splits both operands into quadrants, dispatches
// six operand pairs to the workers, computes the seventh product itself,
// collects the six results and combines them into the final product. Each
// worker (ranks 1..6) receives exactly one operand pair, multiplies it with
// the sequential engine and reports back.
//
// Both roles are explicit state machines:
//
//	Coordinator: Splitting → Dispatching → LocalCompute → Collecting → Combining → Done
//	Worker:      Waiting → Computing → Reporting → Done
//
// Any failure moves the role to Failed. A worker that cannot compute its
// product reports an explicit failure envelope, which the coordinator turns
// into a *RemoteError instead of waiting forever.
//
// Which product goes to which rank is the strassen.Table; roles never branch
// on rank numbers directly.
package protocol
