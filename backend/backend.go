// Package backend contains the filesystem storage layer of a
// repository
package backend

import (
	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/FoolCoder-code/easy-git/eginternals/config"
	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
	"github.com/FoolCoder-code/easy-git/eginternals/record"
	"github.com/FoolCoder-code/easy-git/internal/cache"
	"github.com/FoolCoder-code/easy-git/internal/syncutil"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

const (
	// recordCacheSize is the number of parsed commit records kept in
	// memory
	recordCacheSize = 100
	// using a prime number as the mutex count offers better
	// performance
	recordMutexCount = 101
)

// Backend stores and retrieves every part of a repository on a
// filesystem
type Backend struct {
	fs       afero.Fs
	config   *config.Config
	records  *cache.LRU[eghash.Digest, *record.Record]
	recordMu *syncutil.NamedMutex
}

// New returns a new Backend object using the provided config
func New(cfg *config.Config) (*Backend, error) {
	records, err := cache.NewLRU[eghash.Digest, *record.Record](recordCacheSize)
	if err != nil {
		return nil, xerrors.Errorf("could not create the record cache: %w", err)
	}
	return &Backend{
		fs:       cfg.FS,
		config:   cfg,
		records:  records,
		recordMu: syncutil.NewNamedMutex(recordMutexCount),
	}, nil
}

// Init initializes a repository: it creates the directory skeleton,
// the empty HEAD and log files, and the default config
func (b *Backend) Init() error {
	// Create the directories
	dirs := []string{
		eginternals.CommitsPath(b.config),
		eginternals.ChangesPath(b.config),
		eginternals.LogDirPath(b.config),
	}
	for _, d := range dirs {
		if err := b.fs.MkdirAll(d, 0o750); err != nil {
			return xerrors.Errorf("could not create directory %s: %w", d, err)
		}
	}

	// Create the files with their default content
	files := []struct {
		path    string
		content []byte
	}{
		{
			path:    eginternals.HeadPath(b.config),
			content: []byte{},
		},
		{
			path:    eginternals.LogFilePath(b.config),
			content: []byte{},
		},
	}
	for _, f := range files {
		if err := afero.WriteFile(b.fs, f.path, f.content, 0o644); err != nil {
			return xerrors.Errorf("could not create file %s: %w", f.path, err)
		}
	}

	if err := b.setDefaultCfg(); err != nil {
		return xerrors.Errorf("could not set the default config: %w", err)
	}
	return nil
}
