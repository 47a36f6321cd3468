package raster

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// fontCache loads the font source once and keeps one face per size.
type fontCache struct {
	once   sync.Once
	source *text.FontSource
	err    error

	mu    sync.Mutex
	faces map[float64]text.Face
}

var defaultFonts = &fontCache{}

func (f *fontCache) face(size float64) (text.Face, error) {
	f.once.Do(func() {
		f.source, f.err = text.NewFontSource(goregular.TTF)
	})
	if f.err != nil {
		return nil, f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	if f.faces == nil {
		f.faces = make(map[float64]text.Face)
	}
	face := f.source.Face(size)
	f.faces[size] = face
	return face, nil
}
