package buildgen

import (
	"context"
	"os"
	"path/filepath"

	"github.com/aidarkhanov/nanoid"
	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

// WriteScript renders the script and writes it to dest
func WriteScript(ctx context.Context, fs afero.Fs, dest string, script *Script) error {
	return WriteFile(ctx, fs, dest, script.Bytes())
}

// WriteFile writes data to a temporary file next to dest and moves it into place once it has been
// written and closed. The parent directory has to exist. On failure, dest is left untouched.
func WriteFile(ctx context.Context, fs afero.Fs, dest string, data []byte) error {
	dir := filepath.Dir(dest)
	tmpPath := filepath.Join(dir, "."+filepath.Base(dest)+"."+nanoid.New()+".tmp")

	hdl, err := fs.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return eris.Wrapf(err, "failed to open %s for writing", dest)
	}

	_, err = hdl.Write(data)
	if err != nil {
		hdl.Close()
		fs.Remove(tmpPath)
		return eris.Wrapf(err, "failed to write %s", dest)
	}

	err = hdl.Close()
	if err != nil {
		fs.Remove(tmpPath)
		return eris.Wrapf(err, "failed to write %s", dest)
	}

	err = fs.Rename(tmpPath, dest)
	if err != nil {
		fs.Remove(tmpPath)
		return eris.Wrapf(err, "failed to move %s into place", dest)
	}

	log(ctx).Debug().Str("path", dest).Int("size", len(data)).Msgf("wrote %s", dest)
	return nil
}
