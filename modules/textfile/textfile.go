// Package textfile provides a resource type backed by a plain text file
// on disk.
package textfile

import (
	"fmt"
	"os"
	"sync"

	"github.com/vk/assetcore/internal/resource"
)

// TextFile is a text resource loaded from disk. The contents live in
// memory after Initialize; mutations are visible through every handle
// to the same instance.
type TextFile struct {
	mu   sync.Mutex
	path string
	text string
}

// Initialize loads the file named by the "filename" property. Duplicate
// "filename" properties resolve to the first occurrence. A missing
// property or an unreadable file fails initialization.
func (f *TextFile) Initialize(props resource.Properties) error {
	filename, err := props.String("filename")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read text file: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.path = filename
	f.text = string(data)
	return nil
}

// AppendText appends s to the in-memory contents.
func (f *TextFile) AppendText(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text += s
}

// Text returns the current in-memory contents.
func (f *TextFile) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

// Path returns the file the contents were loaded from.
func (f *TextFile) Path() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path
}
