package scanner

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/vietanh2810/eventpass-api/internal/pkg/qrcode"
)

var ErrCameraBusy = errors.New("camera already in use")

// DirCamera replays the PNG and JPEG files of a directory in name order.
// The position survives Close so each Scanning phase continues where the
// previous one stopped.
type DirCamera struct {
	mu     sync.Mutex
	files  []string
	next   int
	opened bool
}

func NewDirCamera(dir string) (*DirCamera, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir -> %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(files)

	return &DirCamera{files: files}, nil
}

// Open fails if a previous FrameSource has not been closed; the camera has a
// single owner.
func (c *DirCamera) Open(ctx context.Context) (FrameSource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opened {
		return nil, ErrCameraBusy
	}
	c.opened = true

	return &dirSource{camera: c}, nil
}

type dirSource struct {
	camera *DirCamera
	closed bool
}

func (s *dirSource) Next(ctx context.Context) (image.Image, error) {
	c := s.camera
	c.mu.Lock()
	if c.next >= len(c.files) {
		c.mu.Unlock()
		return nil, ErrSourceExhausted
	}
	path := c.files[c.next]
	c.next++
	c.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open -> %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		// unreadable files are skipped like blurry frames
		return nil, ErrNoFrame
	}

	return img, nil
}

func (s *dirSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.camera.mu.Lock()
	s.camera.opened = false
	s.camera.mu.Unlock()

	return nil
}

// QRDecoder decodes frames with the gozxing reader.
var QRDecoder = DecoderFunc(qrcode.Decode)
