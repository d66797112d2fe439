package eginternals

import (
	"path/filepath"

	"github.com/FoolCoder-code/easy-git/eginternals/config"
	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
	"github.com/FoolCoder-code/easy-git/internal/egpath"
)

// DotDirPath returns the path to the .easygit directory
func DotDirPath(cfg *config.Config) string {
	return cfg.DotDirPath
}

// ConfigPath returns the path to the repository config file
func ConfigPath(cfg *config.Config) string {
	return filepath.Join(cfg.DotDirPath, egpath.ConfigName)
}

// CommitsPath returns the path to the directory that contains the
// commit records
func CommitsPath(cfg *config.Config) string {
	return filepath.Join(cfg.DotDirPath, egpath.CommitDirName)
}

// HeadPath returns the path to the HEAD file
func HeadPath(cfg *config.Config) string {
	return filepath.Join(CommitsPath(cfg), egpath.HeadName)
}

// RecordPath returns the path of a commit record
func RecordPath(cfg *config.Config, id eghash.Digest) string {
	return filepath.Join(CommitsPath(cfg), id.String())
}

// ChangesPath returns the path to the directory that contains the
// per-commit blob directories
func ChangesPath(cfg *config.Config) string {
	return filepath.Join(cfg.DotDirPath, egpath.ChangesDirName)
}

// BlobDirPath returns the path to the blob directory of a commit
func BlobDirPath(cfg *config.Config, commitID eghash.Digest) string {
	return filepath.Join(ChangesPath(cfg), commitID.String())
}

// BlobPath returns the path of a blob.
// Path is .easygit/changes/commit_digest/blob_digest
func BlobPath(cfg *config.Config, commitID, blobID eghash.Digest) string {
	return filepath.Join(BlobDirPath(cfg, commitID), blobID.String())
}

// StagingPath returns the path to the staging set file
func StagingPath(cfg *config.Config) string {
	return filepath.Join(cfg.DotDirPath, egpath.StagingName)
}

// LogDirPath returns the path to the directory that contains the repo
// log
func LogDirPath(cfg *config.Config) string {
	return filepath.Join(cfg.DotDirPath, egpath.LogDirName)
}

// LogFilePath returns the path to the repo log file
func LogFilePath(cfg *config.Config) string {
	return filepath.Join(LogDirPath(cfg), egpath.LogFileName)
}
