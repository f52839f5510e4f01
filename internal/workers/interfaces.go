// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs a set of blocking workers concurrently and reports
// when all of them have returned.
package workers

// Worker is a blocking unit of work. Run returns when the work is done or
// was stopped from elsewhere.
type Worker interface {
	Run()
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func()

func (f WorkerFunc) Run() {
	f()
}
