// Package cache persists a rendered LL1 or SLR table dump to a TOML sidecar
// file next to the grammar file it was built from, and reloads it on a
// later run if the grammar file has not been modified since. Only the
// rendered text is stored; the cfgtoolkit CLI still builds the table on
// every run and uses a cached rendering only in place of the text it prints.
//
// Table construction here is cheap enough for homework-sized grammars that
// this is mostly a convenience; it is CLI-layer plumbing and is never
// imported by the grammar, ll1, lr0, or slr packages themselves.
package cache

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Entry is one cached table rendering, keyed by the grammar file it was
// built from and that file's modification time at build time.
type Entry struct {
	GrammarFile string    `toml:"grammar_file"`
	ModTime     time.Time `toml:"mod_time"`
	Kind        string    `toml:"kind"` // "ll1" or "slr"
	Rendering   string    `toml:"rendering"`
}

// file is the on-disk shape of a sidecar cache file: one entry per
// (grammar file, kind) pair seen so far.
type file struct {
	Entries []Entry `toml:"entry"`
}

// SidecarPath returns the cache file path for a grammar file.
func SidecarPath(grammarFile string) string {
	return grammarFile + ".cfgtoolkit-cache.toml"
}

// Lookup returns the cached rendering for (grammarFile, kind) if the
// sidecar cache exists, names an entry for that pair, and that entry's
// recorded mod time still matches the grammar file's current mod time.
func Lookup(grammarFile, kind string) (string, bool) {
	info, err := os.Stat(grammarFile)
	if err != nil {
		return "", false
	}

	f, err := readSidecar(SidecarPath(grammarFile))
	if err != nil {
		return "", false
	}

	for _, e := range f.Entries {
		if e.GrammarFile == grammarFile && e.Kind == kind && e.ModTime.Equal(info.ModTime()) {
			return e.Rendering, true
		}
	}
	return "", false
}

// Store writes (or updates) the cached rendering for (grammarFile, kind),
// replacing any existing entry for that same pair.
func Store(grammarFile, kind, rendering string) error {
	info, err := os.Stat(grammarFile)
	if err != nil {
		return fmt.Errorf("%q: stat: %w", grammarFile, err)
	}

	path := SidecarPath(grammarFile)
	f, err := readSidecar(path)
	if err != nil {
		f = file{}
	}

	replaced := false
	for i, e := range f.Entries {
		if e.GrammarFile == grammarFile && e.Kind == kind {
			f.Entries[i] = Entry{GrammarFile: grammarFile, ModTime: info.ModTime(), Kind: kind, Rendering: rendering}
			replaced = true
			break
		}
	}
	if !replaced {
		f.Entries = append(f.Entries, Entry{GrammarFile: grammarFile, ModTime: info.ModTime(), Kind: kind, Rendering: rendering})
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%q: creating cache file: %w", path, err)
	}
	defer out.Close()

	enc := toml.NewEncoder(out)
	return enc.Encode(f)
}

func readSidecar(path string) (file, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return file{}, err
	}
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return file{}, err
	}
	return f, nil
}
