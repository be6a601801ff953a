// Package workers runs the client's background jobs. A Worker is started
// with a context and runs until that context ends or Stop is called; the
// Workers aggregate starts and stops a group of them together.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is a restartable background job.
//
// Start must not block. Stop blocks until the job has exited and is a no-op
// when the job isn't running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Pinger reports whether the API answered at all. adapter.ServerAdapter
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}
