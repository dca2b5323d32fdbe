package contact

import (
	"context"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/Emynado01/portfolio/internal/logger"
	"github.com/Emynado01/portfolio/internal/relay"
)

const (
	DefaultSentDelay  = 1500 * time.Millisecond
	DefaultErrorDelay = 3 * time.Second

	// DefaultTimeFormat renders submittedAt as day/month/year wall-clock time.
	DefaultTimeFormat = "02/01/2006 15:04:05"
)

// Options configure a Form. Sender is required.
type Options struct {
	Sender     relay.Sender
	Clock      clock.WithDelayedExecution
	SentDelay  time.Duration
	ErrorDelay time.Duration
	TimeFormat string
	Location   *time.Location
	Logger     *logger.Logger
}

// Snapshot is a consistent copy of the form state for rendering.
type Snapshot struct {
	Open    bool
	Draft   Draft
	Status  Status
	LastErr error
}

// Form is the modal controller and submission state machine of one visitor.
//
// Every transition that invalidates pending work bumps gen; relay results and
// timer callbacks carrying an older gen are dropped.
type Form struct {
	opts Options

	mu       sync.Mutex
	open     bool
	draft    Draft
	status   Status
	lastErr  error
	gen      uint64
	cancel   context.CancelFunc
	timer    clock.Timer
	shutdown bool
	inflight sync.WaitGroup
}

// NewForm returns a closed, idle form with an empty draft.
func NewForm(opts Options) *Form {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.SentDelay <= 0 {
		opts.SentDelay = DefaultSentDelay
	}
	if opts.ErrorDelay <= 0 {
		opts.ErrorDelay = DefaultErrorDelay
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Form{opts: opts}
}

// Snapshot returns the current state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{Open: f.open, Draft: f.draft, Status: f.status, LastErr: f.lastErr}
}

// Open shows the modal. Opening an open modal changes nothing.
func (f *Form) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shutdown {
		return
	}
	f.open = true
}

// CloseModal hides the modal. It is always safe to call.
//
// An in-flight request is cancelled and its result discarded. A pending Sent
// reset is applied immediately; a pending Error reset is dropped. The draft is
// kept unless the message was already sent.
func (f *Form) CloseModal() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.invalidate()
	f.open = false
	if f.status == StatusSent {
		f.draft = Draft{}
	}
	f.status = StatusIdle
	f.lastErr = nil
}

// UpdateField sets one draft field while the modal is open.
func (f *Form) UpdateField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.open || f.shutdown {
		return ErrModalClosed
	}
	next, err := f.draft.With(field, value)
	if err != nil {
		return err
	}
	f.draft = next
	return nil
}

// Submit validates the draft and hands it to the relay without blocking.
//
// A draft with a malformed email moves straight to StatusError and returns
// ErrInvalidEmail. Otherwise the form enters StatusSending and the returned
// channel yields the status reached once the relay resolves. The channel is
// closed without a value if the result was discarded by CloseModal or Close.
func (f *Form) Submit() (<-chan Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.open || f.shutdown {
		return nil, ErrModalClosed
	}
	if !f.status.AcceptsSubmit() {
		return nil, ErrSubmitInProgress
	}

	f.invalidate()
	gen := f.gen

	if !Validate(f.draft) {
		f.status = StatusError
		f.lastErr = ErrInvalidEmail
		f.schedule(gen, f.opts.ErrorDelay, f.resetAfterError)
		f.opts.Logger.Debug("contact submit rejected: invalid email")
		return nil, ErrInvalidEmail
	}

	payload := relay.Payload{
		Name:    f.draft.Name,
		Email:   f.draft.Email,
		Subject: f.draft.Subject,
		Time:    f.opts.Clock.Now().In(f.opts.Location).Format(f.opts.TimeFormat),
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.status = StatusSending
	f.lastErr = nil

	done := make(chan Status, 1)
	f.inflight.Add(1)
	go func() {
		defer f.inflight.Done()
		defer cancel()
		err := f.opts.Sender.Send(ctx, payload)
		f.complete(gen, err, done)
	}()

	f.opts.Logger.Debug("contact submit dispatched")
	return done, nil
}

// Close tears the form down: pending timers stop, an in-flight request is
// cancelled, and later operations are rejected.
func (f *Form) Close() {
	f.mu.Lock()
	f.invalidate()
	f.shutdown = true
	f.open = false
	f.mu.Unlock()
}

// Wait blocks until every dispatched relay call has returned.
func (f *Form) Wait() {
	f.inflight.Wait()
}

func (f *Form) complete(gen uint64, err error, done chan<- Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer close(done)

	if gen != f.gen || f.shutdown {
		f.opts.Logger.Debug("contact relay result discarded")
		return
	}
	f.cancel = nil

	if err != nil {
		f.status = StatusError
		f.lastErr = err
		f.schedule(gen, f.opts.ErrorDelay, f.resetAfterError)
		f.opts.Logger.Error(err, "contact relay failed")
	} else {
		f.status = StatusSent
		f.schedule(gen, f.opts.SentDelay, f.resetAfterSent)
		f.opts.Logger.Info("contact message sent")
	}
	done <- f.status
}

func (f *Form) resetAfterSent() {
	f.open = false
	f.status = StatusIdle
	f.draft = Draft{}
	f.lastErr = nil
}

func (f *Form) resetAfterError() {
	f.status = StatusIdle
	f.lastErr = nil
}

// schedule arms the single reset timer. Callers hold f.mu. The callback must
// not touch the clock: fake clocks run it while holding their own lock.
func (f *Form) schedule(gen uint64, d time.Duration, reset func()) {
	f.timer = f.opts.Clock.AfterFunc(d, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.gen || f.shutdown {
			return
		}
		f.timer = nil
		reset()
	})
}

// invalidate bumps gen, stops the reset timer and cancels any in-flight request.
// Callers hold f.mu.
func (f *Form) invalidate() {
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

