// Package config contains structs to interact with the repository
// configuration as well as to configure the library
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FoolCoder-code/easy-git/internal/egpath"
	"github.com/FoolCoder-code/easy-git/internal/env"
	"github.com/FoolCoder-code/easy-git/internal/pathutil"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	// SectionLog is the name of the config file section holding the
	// logging options
	SectionLog = "log"
	// KeyLogLevel is the name of the config file key holding the
	// minimum severity a line needs to reach the repo log
	KeyLogLevel = "level"
	// DefaultLogLevel is the level used when the config file is
	// missing or holds no valid value
	DefaultLogLevel = "debug"
	// EnvLogLevel is the environment variable overriding the config
	// file's log level
	EnvLogLevel = "EASYGIT_LOG_LEVEL"
)

// LogLevels contains the valid values of the log level option,
// ordered from least to most severe
var LogLevels = []string{"debug", "info", "warning", "error", "critical"}

// Config represents the config of a repository, whether it's from the
// config file or from the options that can be set by the caller
//
// If you decide to create a Config by yourself, make sure to set
// correct values everywhere
type Config struct {
	// FS represents the file system implementation to use to look for
	// files and directories.
	// Defaults to the regular filesystem.
	FS afero.Fs

	// WorkingDirectory represents the directory relative path
	// arguments are resolved against.
	// Defaults to the current working directory.
	WorkingDirectory string
	// WorkTreePath represents the path to the root of the working
	// tree.
	// Defaults to finding a ".easygit" folder in the working
	// directory, going up in the tree until reaching /
	WorkTreePath string
	// DotDirPath represents the path to the .easygit directory.
	// Always $(WorkTreePath)/.easygit
	DotDirPath string
	// LogLevel holds the minimum severity a line needs to reach the
	// repo log. One of LogLevels.
	// Defaults to DefaultLogLevel.
	LogLevel string
}

// LoadConfigOptions represents all the params used to set the default
// values of a Config object
type LoadConfigOptions struct {
	// FS represents the file system implementation to use to look for
	// files and directories.
	// Defaults to the regular filesystem.
	FS afero.Fs
	// WorkingDirectory represents the current working directory
	// Defaults to the current working directory
	WorkingDirectory string
	// WorkTreePath corresponds to the directory that should contain
	// the .easygit.
	// Set this value to disable the automatic lookup.
	WorkTreePath string
	// SkipDotDirLookUp will disable automatic lookup of the .easygit
	// directory.
	// Defaults to false which means the method will look for a
	// .easygit dir in $WorkingDirectory and will go up the tree until
	// it finds one.
	//
	// You should only set this value to true if you want to
	// initialize a new repository.
	SkipDotDirLookUp bool
	// Env represents the environment variables to read the overrides
	// from.
	// Defaults to the process environment.
	Env *env.Env
}

// LoadConfig returns a new Config with the defaults resolved and the
// repository config file applied when one exists
func LoadConfig(opts LoadConfigOptions) (cfg *Config, err error) {
	cfg = &Config{
		FS: opts.FS,
	}
	if cfg.FS == nil {
		cfg.FS = afero.NewOsFs()
	}
	e := opts.Env
	if e == nil {
		e = env.NewFromOs()
	}

	// afero has no concept of a working directory, the process one is
	// the only possible default
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("could not get the current directory: %w", err)
	}
	if opts.WorkingDirectory == "" {
		opts.WorkingDirectory = wd
	}
	if !filepath.IsAbs(opts.WorkingDirectory) {
		opts.WorkingDirectory = filepath.Join(wd, opts.WorkingDirectory)
	}
	cfg.WorkingDirectory = opts.WorkingDirectory

	// WorkTree rules:
	// - opts.WorkTreePath contains either nothing or a path that
	//   disables the lookup.
	// - If nothing is set, a .easygit directory will be looked for by
	//   walking up from the working directory.
	// - If the lookup is skipped the working directory is used, which
	//   is what initializing a new repository needs.
	workTree := opts.WorkTreePath
	if workTree == "" {
		workTree = opts.WorkingDirectory
		if !opts.SkipDotDirLookUp {
			workTree, err = pathutil.WorkTreeFromPath(cfg.FS, opts.WorkingDirectory)
			if err != nil {
				return nil, fmt.Errorf("could not find working tree: %w", err)
			}
		}
	}
	if !filepath.IsAbs(workTree) {
		workTree = filepath.Join(opts.WorkingDirectory, workTree)
	}
	cfg.WorkTreePath = workTree
	cfg.DotDirPath = filepath.Join(workTree, egpath.DotDirName)

	if err = cfg.loadFileConfig(e); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFileConfig applies the repository config file and the
// environment on top of the defaults. A missing file is not an error,
// an unreadable or unparsable one is
func (cfg *Config) loadFileConfig(e *env.Env) error {
	cfg.LogLevel = DefaultLogLevel

	data, err := afero.ReadFile(cfg.FS, filepath.Join(cfg.DotDirPath, egpath.ConfigName))
	switch {
	case err == nil:
		f, err := ini.Load(data)
		if err != nil {
			return fmt.Errorf("could not parse the config file: %w", err)
		}
		cfg.LogLevel = f.Section(SectionLog).Key(KeyLogLevel).In(DefaultLogLevel, LogLevels)
	case os.IsNotExist(err):
		// a repo without config file runs on the defaults
	default:
		return fmt.Errorf("could not read the config file: %w", err)
	}

	// the env beats the config file
	if lvl := e.Get(EnvLogLevel); isValidLogLevel(lvl) {
		cfg.LogLevel = lvl
	}
	return nil
}

func isValidLogLevel(lvl string) bool {
	for _, valid := range LogLevels {
		if lvl == valid {
			return true
		}
	}
	return false
}
