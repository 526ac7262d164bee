package engine

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// SlideFileName is the part name of the index-th (from 1) slide.
func SlideFileName(index int) string {
	return fmt.Sprintf("slide%d.xml", index)
}

// bufferPool reuses serialization buffers across slides to keep GC pressure
// down on large decks.
var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(b *bytes.Buffer) {
	b.Reset()
	bufferPool.Put(b)
}

// Write saves every slide of deck into dir as slideN.xml, numbered in deck
// order, and returns the paths written.
func (p *DeckProject) Write(deck *Deck, dir string) ([]string, error) {
	if deck == nil || len(deck.Slides) == 0 {
		return nil, ErrNoSlides
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(deck.Slides))
	for i, s := range deck.Slides {
		path := filepath.Join(dir, SlideFileName(i+1))
		if err := writeSlide(path, s); err != nil {
			return paths, fmt.Errorf("slide %d: %w", s.ID, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeSlide(path string, s *SlideResult) error {
	buf := getBuffer()
	defer putBuffer(buf)

	if _, err := s.Tree.WriteTo(buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
