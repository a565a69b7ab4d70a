package buildgen

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

// DefaultCompDBPath is the default file name for the compilation database
const DefaultCompDBPath = "compile_commands.json"

// CompDBEntry is a single entry of a clang compilation database (compile_commands.json)
type CompDBEntry struct {
	Directory string   `json:"directory"`
	Arguments []string `json:"arguments"`
	File      string   `json:"file"`
}

// CompDB builds the compilation database for the given sources. The arguments match the compiler
// calls of the compile script, unescaped, and run from the objects directory.
func CompDB(sources []string, objectsDir string, opts ScriptOptions) []CompDBEntry {
	opts = opts.withDefaults()
	entries := make([]CompDBEntry, len(sources))
	for idx, file := range sources {
		args := []string{opts.Compiler}
		if opts.Verbose {
			args = append(args, "-v")
		}

		entries[idx] = CompDBEntry{
			Directory: objectsDir,
			Arguments: append(args, "--config", opts.ConfigFile, file),
			File:      file,
		}
	}

	return entries
}

// MarshalCompDB encodes the entries the same way clang tooling writes them
func MarshalCompDB(entries []CompDBEntry) ([]byte, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "failed to encode compilation database")
	}

	return append(data, '\n'), nil
}

// ReadCompDB loads an existing compilation database, i.e. one that was written for a library
func ReadCompDB(fs afero.Fs, path string) ([]CompDBEntry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read %s", path)
	}

	var entries []CompDBEntry
	err = json.Unmarshal(data, &entries)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to decode %s", path)
	}

	return entries, nil
}

// MergeCompDB appends the entries of the given databases to entries. Entries for files that are already
// listed are skipped so the project's own commands win.
func MergeCompDB(fs afero.Fs, entries []CompDBEntry, paths ...string) ([]CompDBEntry, error) {
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		seen[entry.File] = true
	}

	for _, path := range paths {
		chunk, err := ReadCompDB(fs, path)
		if err != nil {
			return nil, err
		}

		for _, entry := range chunk {
			if !seen[entry.File] {
				seen[entry.File] = true
				entries = append(entries, entry)
			}
		}
	}

	return entries, nil
}
