// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "sync"

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range workers {
		w.Add(worker)
	}
	return w
}

// Add registers worker. Nil workers are skipped.
func (w *Workers) Add(worker Worker) {
	if worker == nil {
		return
	}
	w.workers = append(w.workers, worker)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Start runs every worker in its own goroutine. The returned channel is
// closed once all of them have returned.
func (w *Workers) Start() <-chan struct{} {
	done := make(chan struct{})

	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(worker.Run)
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	return done
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run() {
	<-w.Start()
}
