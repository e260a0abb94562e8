package ports

import "errors"

// ErrNoRepository reports that a directory is not inside a version-control
// repository. The exec adapter maps the client's "no repository" exit code
// to this sentinel so callers can test for it with errors.Is.
var ErrNoRepository = errors.New("no repository found")

// VersionControlClient abstracts version-control queries for testability.
// Production code uses ExecGitClient adapter; tests use MockVCSClient.
type VersionControlClient interface {
	// HashObject returns the content hash of the file's current bytes.
	// The hash depends only on content, not on whether the file is tracked
	// or whether dir is inside a repository.
	HashObject(dir, file string) (string, error)

	// CurrentRevision returns the identifier of the checked-out revision
	// for the repository containing dir. The returned error wraps
	// ErrNoRepository when dir is not inside a repository.
	CurrentRevision(dir string) (string, error)

	// StatusOf returns the working-tree status code for the file, the
	// first whitespace-delimited token of its porcelain status line.
	// A file identical to its committed content yields the empty string.
	StatusOf(dir, file string) (string, error)
}
