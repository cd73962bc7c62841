package scanner

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	image.Image
	text string
}

func frames(texts ...string) []image.Image {
	out := make([]image.Image, 0, len(texts))
	for _, t := range texts {
		out = append(out, frame{Image: image.NewGray(image.Rect(0, 0, 1, 1)), text: t})
	}
	return out
}

var frameDecoder = DecoderFunc(func(img image.Image) (string, error) {
	f := img.(frame)
	if f.text == "" {
		return "", errors.New("no code")
	}
	return f.text, nil
})

// fakeCamera replays frames and, once they run out, either reports
// exhaustion or idles with ErrNoFrame.
type fakeCamera struct {
	mu      sync.Mutex
	frames  []image.Image
	pos     int
	idle    bool
	openErr error
	opens   int
	isOpen  bool
}

func (c *fakeCamera) Open(ctx context.Context) (FrameSource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.openErr != nil {
		return nil, c.openErr
	}
	if c.isOpen {
		return nil, errors.New("camera already open")
	}
	c.isOpen = true
	c.opens++

	return &fakeSource{camera: c}, nil
}

func (c *fakeCamera) open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOpen
}

type fakeSource struct {
	camera *fakeCamera
}

func (s *fakeSource) Next(ctx context.Context) (image.Image, error) {
	c := s.camera
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pos >= len(c.frames) {
		if c.idle {
			return nil, ErrNoFrame
		}
		return nil, ErrSourceExhausted
	}
	img := c.frames[c.pos]
	c.pos++
	return img, nil
}

func (s *fakeSource) Close() error {
	s.camera.mu.Lock()
	s.camera.isOpen = false
	s.camera.mu.Unlock()
	return nil
}

type fakeResolver struct {
	mu            sync.Mutex
	rejected      map[string]error
	calls         []string
	cameraOpenAt  []bool
	camera        *fakeCamera
	blockUntilCtx bool
}

func (r *fakeResolver) Resolve(ctx context.Context, text string) (Resolution, error) {
	r.mu.Lock()
	r.calls = append(r.calls, text)
	if r.camera != nil {
		r.cameraOpenAt = append(r.cameraOpenAt, r.camera.open())
	}
	r.mu.Unlock()

	if r.blockUntilCtx {
		<-ctx.Done()
		return Resolution{}, ctx.Err()
	}
	if err := r.rejected[text]; err != nil {
		return Resolution{}, err
	}
	return Resolution{ParticipantID: text, PaymentStatus: "paid"}, nil
}

type recorder struct {
	mu          sync.Mutex
	transitions []Transition
}

func (r *recorder) observe(t Transition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, t)
}

func (r *recorder) states() []State {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]State, 0, len(r.transitions))
	for _, t := range r.transitions {
		out = append(out, t.To)
	}
	return out
}

func fastOptions() Options {
	return Options{
		FrameInterval: time.Millisecond,
		ResolvedDwell: time.Millisecond,
		RejectedDwell: time.Millisecond,
	}
}

func TestFlow_Run(t *testing.T) {
	camera := &fakeCamera{frames: frames("", "", "a", "", "b")}
	resolver := &fakeResolver{
		rejected: map[string]error{"b": errors.New("participant not found")},
		camera:   camera,
	}
	rec := &recorder{}

	flow := NewFlow(camera, frameDecoder, resolver, rec.observe, fastOptions())

	err := flow.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []State{
		Scanning, Resolving, Resolved,
		Scanning, Resolving, Rejected,
		Scanning, Stopped,
	}, rec.states())
	assert.Equal(t, []string{"a", "b"}, resolver.calls)
	assert.Equal(t, []bool{false, false}, resolver.cameraOpenAt, "camera must be released while resolving")
	assert.Equal(t, 3, camera.opens)
	assert.False(t, camera.open())
	assert.Equal(t, Stopped, flow.State())

	rec.mu.Lock()
	defer rec.mu.Unlock()
	resolved := rec.transitions[2]
	require.NotNil(t, resolved.Resolution)
	assert.Equal(t, "a", resolved.Resolution.ParticipantID)
	assert.Equal(t, Resolving, resolved.From)
	rejected := rec.transitions[5]
	assert.EqualError(t, rejected.Err, "participant not found")
	assert.Equal(t, "b", rejected.Text)
}

func TestFlow_Run_CancelWhileScanning(t *testing.T) {
	camera := &fakeCamera{idle: true}
	flow := NewFlow(camera, frameDecoder, &fakeResolver{}, nil, fastOptions())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := flow.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, camera.open())
	assert.Equal(t, 1, camera.opens)
}

func TestFlow_Run_CancelWhileResolving(t *testing.T) {
	camera := &fakeCamera{frames: frames("a"), idle: true}
	resolver := &fakeResolver{blockUntilCtx: true, camera: camera}
	rec := &recorder{}
	flow := NewFlow(camera, frameDecoder, resolver, rec.observe, fastOptions())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- flow.Run(ctx) }()

	require.Eventually(t, func() bool { return flow.State() == Resolving }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("flow did not stop")
	}

	assert.Equal(t, []bool{false}, resolver.cameraOpenAt)
	assert.False(t, camera.open())
	assert.Equal(t, []State{Scanning, Resolving, Stopped}, rec.states())
}

func TestFlow_Run_CameraError(t *testing.T) {
	camera := &fakeCamera{openErr: errors.New("device busy")}
	flow := NewFlow(camera, frameDecoder, &fakeResolver{}, nil, fastOptions())

	err := flow.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device busy")
}

func TestFlow_RejectedDwell(t *testing.T) {
	camera := &fakeCamera{frames: frames("x")}
	resolver := &fakeResolver{rejected: map[string]error{"x": errors.New("nope")}}
	rec := &recorder{}

	opts := fastOptions()
	flow := NewFlow(camera, frameDecoder, resolver, rec.observe, opts)
	flow.SetDwell(0, 40*time.Millisecond)

	require.NoError(t, flow.Run(context.Background()))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.transitions, 5)
	assert.Equal(t, Rejected, rec.transitions[2].To)
	assert.Equal(t, Scanning, rec.transitions[3].To)
	assert.GreaterOrEqual(t, rec.transitions[3].At.Sub(rec.transitions[2].At), 40*time.Millisecond)
}

func TestNewFlow_Defaults(t *testing.T) {
	flow := NewFlow(&fakeCamera{}, frameDecoder, &fakeResolver{}, nil, Options{})

	assert.Equal(t, DefaultOptions(), flow.options())
	assert.Equal(t, Stopped, flow.State())

	flow.SetDwell(time.Second, 0)
	assert.Equal(t, time.Second, flow.options().ResolvedDwell)
	assert.Equal(t, DefaultOptions().RejectedDwell, flow.options().RejectedDwell)
}
