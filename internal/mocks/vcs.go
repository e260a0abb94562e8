package mocks

import (
	"fmt"
	"path/filepath"

	"github.com/mglenn/gitstamp/internal/ports"
)

// MockVCSClient implements ports.VersionControlClient for testing.
type MockVCSClient struct {
	// Hashes maps dir-joined file paths to content hashes
	Hashes map[string]string
	// Revisions maps directories to checked-out revision hashes;
	// directories not in the map behave like paths outside any repository
	Revisions map[string]string
	// StatusCodes maps dir-joined file paths to porcelain status codes;
	// files not in the map report clean
	StatusCodes map[string]string

	// HashErr, RevisionErr and StatusErr force the corresponding query to fail
	HashErr     error
	RevisionErr error
	StatusErr   error
}

// NewMockVCSClient creates a new mock version-control client.
func NewMockVCSClient() *MockVCSClient {
	return &MockVCSClient{
		Hashes:      make(map[string]string),
		Revisions:   make(map[string]string),
		StatusCodes: make(map[string]string),
	}
}

// HashObject returns the configured hash for the file.
func (m *MockVCSClient) HashObject(dir, file string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	if hash, ok := m.Hashes[filepath.Join(dir, file)]; ok {
		return hash, nil
	}
	return "", fmt.Errorf("no hash configured for %s", filepath.Join(dir, file))
}

// CurrentRevision returns the configured revision for the directory, or
// ErrNoRepository when none is configured.
func (m *MockVCSClient) CurrentRevision(dir string) (string, error) {
	if m.RevisionErr != nil {
		return "", m.RevisionErr
	}
	if rev, ok := m.Revisions[dir]; ok {
		return rev, nil
	}
	return "", fmt.Errorf("%w: %s", ports.ErrNoRepository, dir)
}

// StatusOf returns the configured status code for the file. Files without
// one report clean.
func (m *MockVCSClient) StatusOf(dir, file string) (string, error) {
	if m.StatusErr != nil {
		return "", m.StatusErr
	}
	return m.StatusCodes[filepath.Join(dir, file)], nil
}

// Compile-time check that MockVCSClient implements ports.VersionControlClient.
var _ ports.VersionControlClient = (*MockVCSClient)(nil)
