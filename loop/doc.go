// Package loop drives rebuild cycles and translates the tree-wide
// aggregate redraw request into a wait directive for the hosting event
// loop.
//
// # Cycle
//
// One cycle runs four phases in strict order with no overlap:
//
//	Idle → Updating → Rendering → Scheduled → Idle
//
// Updating drains queued events into the application. Rendering reads the
// clock once, walks the widget tree, and collects every widget's redraw
// request. Scheduled hands the aggregate minimum to the host. Nothing
// inside a cycle suspends; the only suspension point is between cycles,
// inside the host's [Waiter].
//
// # Scheduling
//
// Exactly one aggregate request reaches the scheduler per cycle. The
// mapping from request to wait policy is the pure function [For]:
// Immediate polls, At(t) waits until max(now, t) or an event, None blocks
// for an event. A requested wake time is never cancelled; the next
// aggregate simply supersedes it.
//
// Every cycle re-evaluates the full tree. An incremental dirty-region
// optimization for large mostly-static trees is a possible future
// extension; the aggregation itself is already a single O(tree) fold.
package loop
