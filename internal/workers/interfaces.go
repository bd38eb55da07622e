// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs and stops
// several workers in a unified way, and Pool, a fixed-size goroutine pool
// for CPU-bound work such as password hash comparisons.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns once it is accepting work; Stop blocks
// until the worker has released its goroutines.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run()  { go w.loop() }
//	func (w *MyWorker) Stop() { w.cancel(); w.wg.Wait() }
type Worker interface {
	Run()
	Stop()
}
