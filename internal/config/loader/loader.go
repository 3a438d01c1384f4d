// Package loader reads splitview configuration sources into generic maps.
//
// Each source (a TOML file with its includes, the environment) becomes a
// nested map[string]any. The config package merges the maps with DeepMerge
// and decodes the result over its defaults.
package loader

import (
	"io/fs"
	"os"
)

// Loader produces one configuration layer.
// A source that does not exist yields nil, nil.
type Loader interface {
	Load() (map[string]any, error)
}

var (
	_ Loader = (*TOMLLoader)(nil)
	_ Loader = (*EnvLoader)(nil)
)

// FileSystem is what the TOML loader reads files from. testing/fstest.MapFS
// satisfies it, as does OSFS.
type FileSystem interface {
	fs.ReadFileFS
	fs.StatFS
}

// OSFS reads from the operating system. Unlike os.DirFS it accepts absolute
// and relative paths as given on the command line.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) { return os.Open(name) }

// ReadFile implements fs.ReadFileFS.
func (OSFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// Stat implements fs.StatFS.
func (OSFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// DefaultFS returns the operating system file system.
func DefaultFS() FileSystem {
	return OSFS{}
}
