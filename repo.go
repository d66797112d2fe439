// Package easygit implements a minimal content tracker: files get
// staged, captured into commits, and restored from any commit that is
// still reachable
package easygit

import (
	"errors"
	"io"

	"github.com/FoolCoder-code/easy-git/backend"
	"github.com/FoolCoder-code/easy-git/eginternals/config"
	"github.com/FoolCoder-code/easy-git/internal/env"
	"github.com/FoolCoder-code/easy-git/internal/errutil"
	"github.com/FoolCoder-code/easy-git/internal/logutil"
	"github.com/FoolCoder-code/easy-git/internal/pathutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// List of errors returned by the Repository struct
var (
	ErrRepositoryNotExist = errors.New("repository does not exist")
	ErrRepositoryExists   = errors.New("repository already exists")
)

// AllFiles is the path sentinel meaning "every file of the working
// tree"
const AllFiles = "."

// DefaultSearchDepth is the number of commits walked down from HEAD
// when the caller provides no depth
const DefaultSearchDepth = 5

// Repository represents an easygit repository.
// The repository is the .easygit/ folder inside a project: it holds
// the staging set, one record and one blob directory per commit, and
// the repo's own log file
type Repository struct {
	cfg   *config.Config
	store *backend.Backend
	logW  io.WriteCloser
	log   *logrus.Logger
}

// Options contains all the optional data used to initialize or open a
// repository
type Options struct {
	// FS represents the file system implementation to use to look for
	// files and directories.
	// Defaults to the regular filesystem.
	FS afero.Fs
	// Env represents the environment variables to read the overrides
	// from.
	// Defaults to the process environment.
	Env *env.Env
}

// InitRepository initializes a new repository by creating the
// .easygit directory in the given path
func InitRepository(path string) (*Repository, error) {
	return InitRepositoryWithOptions(path, Options{})
}

// InitRepositoryWithOptions initializes a new repository by creating
// the .easygit directory in the given path.
// ErrRepositoryExists is returned when path is already inside a
// repository, nesting repos tracking absolute paths would make their
// staging sets ambiguous
func InitRepositoryWithOptions(path string, opts Options) (*Repository, error) {
	cfg, err := config.LoadConfig(config.LoadConfigOptions{
		FS:               opts.FS,
		WorkingDirectory: path,
		SkipDotDirLookUp: true,
		Env:              opts.Env,
	})
	if err != nil {
		return nil, err
	}

	if _, err = pathutil.WorkTreeFromPath(cfg.FS, cfg.WorkTreePath); err == nil {
		return nil, ErrRepositoryExists
	}

	store, err := backend.New(cfg)
	if err != nil {
		return nil, err
	}
	if err = store.Init(); err != nil {
		return nil, xerrors.Errorf("could not init the repository: %w", err)
	}
	return newRepository(cfg, store)
}

// OpenRepository loads the repository containing the given path
func OpenRepository(path string) (*Repository, error) {
	return OpenRepositoryWithOptions(path, Options{})
}

// OpenRepositoryWithOptions loads the repository containing the given
// path.
// ErrRepositoryNotExist is returned when neither path nor any of its
// parents holds an .easygit directory
func OpenRepositoryWithOptions(path string, opts Options) (*Repository, error) {
	cfg, err := config.LoadConfig(config.LoadConfigOptions{
		FS:               opts.FS,
		WorkingDirectory: path,
		Env:              opts.Env,
	})
	if err != nil {
		if errors.Is(err, pathutil.ErrNoRepo) {
			return nil, ErrRepositoryNotExist
		}
		return nil, err
	}

	store, err := backend.New(cfg)
	if err != nil {
		return nil, err
	}
	return newRepository(cfg, store)
}

func newRepository(cfg *config.Config, store *backend.Backend) (r *Repository, err error) {
	level, err := logutil.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, xerrors.Errorf("could not parse the log level: %w", err)
	}
	logW, err := store.LogWriter()
	if err != nil {
		return nil, err
	}
	return &Repository{
		cfg:   cfg,
		store: store,
		logW:  logW,
		log:   logutil.New(logW, level),
	}, nil
}

// Config returns the config the repository runs on
func (r *Repository) Config() *config.Config {
	return r.cfg
}

// Close frees the resources used by the repository
func (r *Repository) Close() (err error) {
	errutil.Close(r.logW, &err)
	return err
}
