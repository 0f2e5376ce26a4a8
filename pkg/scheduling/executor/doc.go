// Package executor provides execution contexts for re-scheduling pipeline
// delivery, most notably for the pipe.ReceiveOn operator.
//
// An Executor is the dispatch collaborator of a pipeline: it receives
// functions and runs them on its own context, preserving submission order.
// Two implementations are provided:
//
//   - Immediate runs functions inline on the calling goroutine.
//   - Serial runs functions on a single dedicated goroutine with a bounded
//     FIFO queue, the way a UI framework's main-thread dispatcher would.
//
// Basic usage:
//
//	ui := executor.NewSerial()
//	defer ui.Close()
//
//	onMain := pipe.ReceiveOn(publisher, ui)
package executor
