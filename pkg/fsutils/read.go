package fsutils

import (
	"io"

	"github.com/spf13/afero"
)

// ReadFileData reads a file from fsys.
// max == 0 reads everything, max > 0 reads the first max bytes,
// max < 0 reads the last -max bytes.
func ReadFileData(fsys afero.Fs, name string, max int) (data []byte, err error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	switch {
	case max == 0:
		return io.ReadAll(f)
	case max > 0:
		return io.ReadAll(io.LimitReader(f, int64(max)))
	}
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if absMax := int64(-max); info.Size() > absMax {
		if _, err = f.Seek(-absMax, io.SeekEnd); err != nil {
			return nil, err
		}
	}
	return io.ReadAll(f)
}
