// SPDX-License-Identifier: EPL-2.0

// Package song loads note lists from JSON song files.
//
// A song file is an array of records:
//
//	[
//	  {"note": "A4", "duration": 0.5},
//	  {"note": "C#5", "duration": 0.25}
//	]
//
// Durations are in seconds. Note names are not validated here; that is the
// job of package pitch.
package song

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Ext is the file extension of song files.
const Ext = ".json"

var (
	ErrSongNotFound = errors.New("song not found")
	ErrEmptyName    = errors.New("song name is empty")
)

// Note is one entry of a song.
type Note struct {
	Name     string  `json:"note"`
	Duration float64 `json:"duration"`
}

// Decode reads a JSON song from r. Unknown fields are rejected.
func Decode(r io.Reader) ([]Note, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var notes []Note
	if err := dec.Decode(&notes); err != nil {
		return nil, fmt.Errorf("decoding song: %w", err)
	}

	return notes, nil
}

// Library is a directory of song files.
type Library struct {
	Dir string
}

// List returns the song names in the library, sorted, without extension.
func (l Library) List() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading songs directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	slices.Sort(names)

	return names, nil
}

// Resolve maps a song name to its file, adding the extension when missing.
func (l Library) Resolve(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	if !strings.HasSuffix(name, Ext) {
		name += Ext
	}

	path := filepath.Join(l.Dir, name)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return "", fmt.Errorf("%w: %s", ErrSongNotFound, strings.TrimSuffix(name, Ext))
	}
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	return path, nil
}

// Load resolves name and decodes the song file.
func (l Library) Load(name string) ([]Note, error) {
	path, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	notes, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return notes, nil
}
