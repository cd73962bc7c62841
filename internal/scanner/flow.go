// Package scanner runs the door check-in loop: sample camera frames, decode
// the first QR code, resolve it against the API and show the verdict for a
// fixed dwell before scanning again.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type State int

const (
	Stopped State = iota
	Scanning
	Resolving
	Resolved
	Rejected
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Resolving:
		return "resolving"
	case Resolved:
		return "resolved"
	case Rejected:
		return "rejected"
	default:
		return "stopped"
	}
}

// ErrNoFrame means the source had nothing new to offer; sampling continues.
var ErrNoFrame = errors.New("no frame available")

// ErrSourceExhausted ends the flow cleanly when a finite source runs out.
var ErrSourceExhausted = errors.New("frame source exhausted")

type Camera interface {
	Open(ctx context.Context) (FrameSource, error)
}

type FrameSource interface {
	Next(ctx context.Context) (image.Image, error)
	Close() error
}

type Decoder interface {
	Decode(img image.Image) (string, error)
}

type DecoderFunc func(img image.Image) (string, error)

func (f DecoderFunc) Decode(img image.Image) (string, error) {
	return f(img)
}

type Resolver interface {
	Resolve(ctx context.Context, text string) (Resolution, error)
}

// Resolution is what the door screen shows for a successful scan.
type Resolution struct {
	ParticipantID string
	FullName      string
	PaymentStatus string
	StatusLabel   string
	Message       string
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	PendingAmount decimal.Decimal
	ResolvedVia   string
}

type Transition struct {
	From       State
	To         State
	Text       string
	Resolution *Resolution
	Err        error
	At         time.Time
}

type Observer func(Transition)

type Options struct {
	FrameInterval time.Duration
	ResolvedDwell time.Duration
	RejectedDwell time.Duration
}

func DefaultOptions() Options {
	return Options{
		FrameInterval: 16 * time.Millisecond,
		ResolvedDwell: 4 * time.Second,
		RejectedDwell: 2500 * time.Millisecond,
	}
}

// Flow is single-threaded: Run drives every state on the calling goroutine,
// so at most one resolution is ever in flight and the camera is only held
// while scanning.
type Flow struct {
	camera   Camera
	decoder  Decoder
	resolver Resolver
	observer Observer

	mu    sync.Mutex
	opts  Options
	state State
}

func NewFlow(camera Camera, decoder Decoder, resolver Resolver, observer Observer, opts Options) *Flow {
	if observer == nil {
		observer = func(Transition) {}
	}

	defaults := DefaultOptions()
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaults.FrameInterval
	}
	if opts.ResolvedDwell <= 0 {
		opts.ResolvedDwell = defaults.ResolvedDwell
	}
	if opts.RejectedDwell <= 0 {
		opts.RejectedDwell = defaults.RejectedDwell
	}

	return &Flow{
		camera:   camera,
		decoder:  decoder,
		resolver: resolver,
		observer: observer,
		opts:     opts,
	}
}

// SetDwell changes the dwell times; the next verdict picks them up.
func (f *Flow) SetDwell(resolved, rejected time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if resolved > 0 {
		f.opts.ResolvedDwell = resolved
	}
	if rejected > 0 {
		f.opts.RejectedDwell = rejected
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

func (f *Flow) options() Options {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.opts
}

// Run loops until ctx is done, the camera fails, or a finite source is
// exhausted (reported as nil).
func (f *Flow) Run(ctx context.Context) error {
	defer f.transition(Transition{To: Stopped})

	for {
		f.transition(Transition{To: Scanning})

		text, err := f.scan(ctx)
		if err != nil {
			if errors.Is(err, ErrSourceExhausted) {
				return nil
			}
			return err
		}

		f.transition(Transition{To: Resolving, Text: text})

		res, err := f.resolver.Resolve(ctx, text)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		opts := f.options()
		dwell := opts.ResolvedDwell
		if err != nil {
			f.transition(Transition{To: Rejected, Text: text, Err: err})
			dwell = opts.RejectedDwell
		} else {
			f.transition(Transition{To: Resolved, Text: text, Resolution: &res})
		}

		if err := sleep(ctx, dwell); err != nil {
			return err
		}
	}
}

// scan holds the camera only for the duration of the Scanning state.
func (f *Flow) scan(ctx context.Context) (string, error) {
	src, err := f.camera.Open(ctx)
	if err != nil {
		return "", fmt.Errorf("f.camera.Open -> %w", err)
	}
	defer src.Close()

	ticker := time.NewTicker(f.options().FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}

		img, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrNoFrame) {
				continue
			}
			return "", err
		}

		text, err := f.decoder.Decode(img)
		if err != nil || text == "" {
			continue
		}

		return text, nil
	}
}

func (f *Flow) transition(t Transition) {
	f.mu.Lock()
	t.From = f.state
	f.state = t.To
	f.mu.Unlock()

	t.At = time.Now()
	f.observer(t)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
