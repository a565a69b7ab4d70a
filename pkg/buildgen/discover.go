package buildgen

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

// ErrRootNotFound is returned by FindSources if the project root is missing
var ErrRootNotFound = eris.New("project root not found")

// FindSources recursively collects all files below root that end in one of the SourceSuffixes.
// Entries are visited in lexical order. A missing root is an error.
func FindSources(ctx context.Context, fs afero.Fs, root string) ([]string, error) {
	info, err := fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(ErrRootNotFound, "failed to search %s", root)
		}
		return nil, eris.Wrapf(err, "failed to check project root %s", root)
	}

	if !info.IsDir() {
		return nil, eris.Errorf("project root %s is not a directory", root)
	}

	sources, err := collectFiles(ctx, fs, root, SourceSuffixes)
	if err != nil {
		return nil, err
	}

	log(ctx).Debug().
		Str("path", root).
		Int("count", len(sources)).
		Msgf("found %d sources in %s", len(sources), root)
	return sources, nil
}

// FindLibraries recursively collects all files below dir that end in one of the LibrarySuffixes.
// If dir doesn't exist, the returned set is marked as not present and no error is returned.
func FindLibraries(ctx context.Context, fs afero.Fs, dir string) (LibrarySet, error) {
	result := LibrarySet{Dir: dir, Paths: []string{}}

	info, err := fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log(ctx).Debug().Str("path", dir).Msgf("no library directory at %s", dir)
			return result, nil
		}
		return result, eris.Wrapf(err, "failed to check library directory %s", dir)
	}

	if !info.IsDir() {
		log(ctx).Warn().Str("path", dir).Msgf("%s is not a directory, ignoring it", dir)
		return result, nil
	}

	result.Present = true
	result.Paths, err = collectFiles(ctx, fs, dir, LibrarySuffixes)
	if err != nil {
		return result, err
	}

	log(ctx).Debug().
		Str("path", dir).
		Int("count", len(result.Paths)).
		Msgf("found %d libraries in %s", len(result.Paths), dir)
	return result, nil
}

func collectFiles(ctx context.Context, fs afero.Fs, root string, suffixes []string) ([]string, error) {
	result := []string{}

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == root {
				return eris.Wrapf(err, "failed to read %s", root)
			}

			// unreadable sub directories are skipped
			log(ctx).Warn().Err(err).Str("path", path).Msgf("skipping %s", path)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() || !hasSuffix(info.Name(), suffixes) {
			return nil
		}

		// links to directories are never listed; dangling links are
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fs.Stat(path)
			if err == nil && target.IsDir() {
				return nil
			}
		}

		result = append(result, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
