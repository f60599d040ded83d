// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package workers

import "context"

// Workers runs a set of background workers, one goroutine each.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in its own goroutine and returns immediately.
// Workers stop when the context is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
