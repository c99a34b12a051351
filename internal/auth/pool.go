package auth

import (
	"context"
	"sync"

	"newsletter/pkg/serrors"
)

// verifyRequest is a single password check queued on the pool.
type verifyRequest struct {
	stored    string
	candidate string
	resp      chan error
}

// VerifyPool runs password hash verification on a fixed set of workers.
// Argon2 hashing is deliberately expensive, so an unbounded number of
// concurrent verifications could starve the rest of the process of CPU.
type VerifyPool struct {
	requests chan verifyRequest
	quit     chan struct{}
	wg       sync.WaitGroup
}

// NewVerifyPool starts workers goroutines ready to serve verification
// requests. queueSize bounds how many requests may wait for a free worker.
func NewVerifyPool(workers int, queueSize int) *VerifyPool {
	p := &VerifyPool{
		requests: make(chan verifyRequest, queueSize),
		quit:     make(chan struct{}),
	}

	for range workers {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

func (p *VerifyPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.quit:
			return
		case req := <-p.requests:
			req.resp <- VerifyPHC(req.stored, req.candidate)
		}
	}
}

// Verify schedules a password check on the pool and waits for its result.
// Failure to schedule or await, e.g. because the context was canceled or the
// pool was closed, is reported as an internal error rather than an
// authentication failure.
func (p *VerifyPool) Verify(ctx context.Context, stored string, candidate string) error {
	req := verifyRequest{
		stored:    stored,
		candidate: candidate,
		// buffered so the worker never blocks on a caller that gave up
		resp: make(chan error, 1),
	}

	select {
	case p.requests <- req:
	case <-p.quit:
		return serrors.With(serrors.ErrInternal, "verification pool is closed")
	case <-ctx.Done():
		return serrors.Wrap(serrors.ErrInternal, ctx.Err(), "could not schedule password verification")
	}

	select {
	case err := <-req.resp:
		return err
	case <-ctx.Done():
		return serrors.Wrap(serrors.ErrInternal, ctx.Err(), "password verification interrupted")
	}
}

// Close stops accepting new requests and waits for the workers to exit.
func (p *VerifyPool) Close() {
	close(p.quit)
	p.wg.Wait()
}
