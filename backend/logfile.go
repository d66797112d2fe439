package backend

import (
	"io"
	"os"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"golang.org/x/xerrors"
)

// LogWriter returns a writer appending to the repo log file.
// The caller owns the writer and is in charge of closing it
func (b *Backend) LogWriter() (io.WriteCloser, error) {
	f, err := b.fs.OpenFile(eginternals.LogFilePath(b.config), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, xerrors.Errorf("could not open the log file: %w", err)
	}
	return f, nil
}
