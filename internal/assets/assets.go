// Package assets loads the read-only text resources the Sudoku board is drawn
// with. Built-in copies are embedded in the binary; a directory on disk can
// replace them, in which case every file must be present.
package assets

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed background.txt cell.txt
var FS embed.FS

// Asset file names.
const (
	BackgroundFile = "background.txt"
	CellFile       = "cell.txt"
)

// ErrMissingAsset is returned (wrapped) when a required file does not exist.
var ErrMissingAsset = errors.New("assets: missing asset")

// Pack holds loaded assets as rows of runes.
type Pack struct {
	Background []string // Text art drawn at the surface origin; spaces are transparent
	Cell       []string // Cell texture, tinted with the cell state color
}

// Load reads the assets from dir, or the embedded copies if dir is empty.
func Load(dir string) (*Pack, error) {
	var fsys fs.FS = FS
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: directory %s", ErrMissingAsset, dir)
			}
			return nil, fmt.Errorf("assets: cannot open %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("assets: %s is not a directory", dir)
		}
		fsys = os.DirFS(dir)
	}

	background, err := readRows(fsys, BackgroundFile)
	if err != nil {
		return nil, err
	}
	cell, err := readRows(fsys, CellFile)
	if err != nil {
		return nil, err
	}
	if len(cell) == 0 {
		return nil, fmt.Errorf("assets: %s is empty", CellFile)
	}

	return &Pack{Background: background, Cell: cell}, nil
}

// readRows returns the file's lines with trailing whitespace removed.
// Leading whitespace is significant for text art and is kept.
func readRows(fsys fs.FS, name string) ([]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, name)
		}
		return nil, fmt.Errorf("assets: cannot read %s: %w", name, err)
	}

	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", name, err)
	}

	// Drop trailing blank lines
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}
