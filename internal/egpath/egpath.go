// Package egpath contains consts to work with paths inside
// the .easygit directory
package egpath

// .easygit/ files and directories
const (
	DotDirName = ".easygit"

	// ConfigName is the repository config file, an INI file holding
	// the logging verbosity
	ConfigName = "config"

	// CommitDirName holds one record file per commit, plus HEAD
	CommitDirName = "commit"
	HeadName      = "HEAD"

	// ChangesDirName holds one subdirectory per commit, each
	// containing the blobs captured by that commit
	ChangesDirName = "changes"

	// StagingName is the persisted staging set, one absolute path
	// per line. The file being absent means the set is unset, which
	// is not the same as the set being empty
	StagingName = "stagingCache"

	LogDirName  = "log"
	LogFileName = "log.log"
)
