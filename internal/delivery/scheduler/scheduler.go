// Package scheduler runs the periodic maintenance jobs of the service.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"foodlink/internal/delivery"
	"foodlink/internal/domain/lifecycle"
	"foodlink/internal/domain/service"
	"foodlink/internal/errors"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

const lockKeyPrefix = "foodlink:scheduler:"

// ErrJobBusy means the job is already running in this process or on another replica.
var ErrJobBusy = errors.New("job is already running")

// LockKey is the cross-replica lock name for a job.
func LockKey(name string) string {
	return lockKeyPrefix + name
}

// Job is a unit of periodic work. Timeout defaults to Interval.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Run      func(ctx context.Context) error
}

type registeredJob struct {
	Job
	running atomic.Bool
}

// Params holds dependencies for the Scheduler, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Clock  clockwork.Clock
	Locker service.Locker
	Logger *slog.Logger
}

// Scheduler owns its job registry and runs every job on its own ticker.
type Scheduler struct {
	clock  clockwork.Clock
	locker service.Locker
	logger *slog.Logger

	mu     sync.Mutex
	jobs   []*registeredJob
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Scheduler that stops with the application.
func New(params Params) *Scheduler {
	s := newScheduler(params.Clock, params.Locker, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.Stop,
	})

	return s
}

func newScheduler(clock clockwork.Clock, locker service.Locker, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		clock:  clock,
		locker: locker,
		logger: logger,
	}
}

// NewDelivery exposes the scheduler to the application's delivery group.
func NewDelivery(s *Scheduler) delivery.Delivery {
	return s
}

// Register adds a job. Jobs cannot be added once the scheduler runs.
func (s *Scheduler) Register(job Job) error {
	if job.Name == "" || job.Run == nil || job.Interval <= 0 {
		return errors.Errorf("invalid job %q: name, run and a positive interval are required", job.Name)
	}
	if job.Timeout <= 0 {
		job.Timeout = job.Interval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return errors.Errorf("cannot register job %q: scheduler already running", job.Name)
	}

	for _, existing := range s.jobs {
		if existing.Name == job.Name {
			return errors.Errorf("job %q already registered", job.Name)
		}
	}

	s.jobs = append(s.jobs, &registeredJob{Job: job})

	return nil
}

// Serve starts one loop per job and blocks until the scheduler is stopped.
func (s *Scheduler) Serve(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()

		return errors.New("scheduler already running")
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	jobs := s.jobs
	s.wg.Add(len(jobs))
	s.mu.Unlock()

	s.logger.Info("Starting scheduler", slog.Int("jobs", len(jobs)))

	for _, job := range jobs {
		go s.loop(runCtx, job)
	}

	<-runCtx.Done()

	return nil
}

// Stop cancels the loops and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}

	s.logger.Info("Stopping scheduler")
	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler jobs did not finish")
	}
}

func (s *Scheduler) loop(ctx context.Context, job *registeredJob) {
	defer s.wg.Done()

	ticker := s.clock.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.trigger(ctx, job)
		}
	}
}

// trigger starts a run unless the previous one is still executing, and reports whether it started.
func (s *Scheduler) trigger(ctx context.Context, job *registeredJob) bool {
	if !job.running.CompareAndSwap(false, true) {
		s.logger.Warn("Skipping job tick, previous run still in progress", slog.String("job", job.Name))

		return false
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer job.running.Store(false)

		s.run(ctx, job)
	}()

	return true
}

func (s *Scheduler) run(ctx context.Context, job *registeredJob) {
	logger := s.logger.With(slog.String("job", job.Name))

	start := s.clock.Now()
	err := s.execute(ctx, job, job.Run)
	switch {
	case errors.Is(err, ErrJobBusy):
		logger.Info("Job is running on another replica, skipping")
	case err != nil:
		logger.Error("Job failed",
			slog.Any("error", err),
			slog.Duration("duration", s.clock.Since(start)),
		)
	default:
		logger.Debug("Job finished", slog.Duration("duration", s.clock.Since(start)))
	}
}

// RunExclusive runs fn in place of a registered job's next tick. It shares the job's
// running flag, lock and timeout, and returns ErrJobBusy instead of waiting.
func (s *Scheduler) RunExclusive(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	job := s.lookup(name)
	if job == nil {
		return errors.Errorf("job %q is not registered", name)
	}

	if !job.running.CompareAndSwap(false, true) {
		return ErrJobBusy
	}
	defer job.running.Store(false)

	return s.execute(ctx, job, fn)
}

func (s *Scheduler) lookup(name string) *registeredJob {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if job.Name == name {
			return job
		}
	}

	return nil
}

// execute holds the job lock for the duration of fn.
func (s *Scheduler) execute(ctx context.Context, job *registeredJob, fn func(ctx context.Context) error) error {
	runCtx, cancel := context.WithTimeout(ctx, job.Timeout)
	defer cancel()

	lock, err := s.locker.Obtain(runCtx, LockKey(job.Name), job.Timeout)
	if errors.Is(err, service.ErrLockNotObtained) {
		return ErrJobBusy
	}
	if err != nil {
		return errors.Wrap(err, "failed to obtain job lock")
	}
	defer func() {
		releaseCtx, releaseCancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer releaseCancel()

		if err := lock.Release(releaseCtx); err != nil {
			s.logger.Warn("Failed to release job lock",
				slog.String("job", job.Name),
				slog.Any("error", err),
			)
		}
	}()

	return fn(runCtx)
}
