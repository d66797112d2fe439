package backend

import (
	"bytes"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/FoolCoder-code/easy-git/eginternals/config"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
	"gopkg.in/ini.v1"
)

// setDefaultCfg sets and persists the default configuration for the
// repository
func (b *Backend) setDefaultCfg() error {
	cfg := ini.Empty()

	section, err := cfg.NewSection(config.SectionLog)
	if err != nil {
		return xerrors.Errorf("could not create the %s section: %w", config.SectionLog, err)
	}
	if _, err = section.NewKey(config.KeyLogLevel, config.DefaultLogLevel); err != nil {
		return xerrors.Errorf("could not set %s: %w", config.KeyLogLevel, err)
	}

	// SaveTo writes to the OS filesystem, so the data goes through a
	// buffer to stay on b.fs
	buf := new(bytes.Buffer)
	if _, err = cfg.WriteTo(buf); err != nil {
		return xerrors.Errorf("could not serialize the config: %w", err)
	}
	return afero.WriteFile(b.fs, eginternals.ConfigPath(b.config), buf.Bytes(), 0o644)
}
