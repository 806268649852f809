package testutils

import (
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/composefs"
	"github.com/mandelsoft/vfs/pkg/layerfs"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/projectionfs"
	"github.com/mandelsoft/vfs/pkg/readonlyfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// Files maps file paths to their content.
type Files map[string]string

// TestFileSystem provides a temporary file system with the model
// directory path of the real file system mounted under the same path.
// If not readonly, modifications go to a temporary layer and never
// touch the test data. The given files, for example config files,
// are created on the temporary root.
func TestFileSystem(path string, readonly bool, files ...Files) (vfs.FileSystem, error) {
	tmpfs, err := osfs.NewTempFileSystem()
	if err != nil {
		return nil, err
	}

	fs, err := mount(tmpfs, path, readonly)
	if err == nil {
		err = seed(fs, files...)
	}
	if err != nil {
		vfs.Cleanup(tmpfs)
		return nil, err
	}
	return fs, nil
}

func mount(tmpfs vfs.FileSystem, path string, readonly bool) (vfs.FileSystem, error) {
	err := tmpfs.MkdirAll(path, 0o700)
	if err != nil {
		return nil, err
	}

	data, err := projectionfs.New(osfs.OsFs, path)
	if err != nil {
		return nil, err
	}
	if readonly {
		data = readonlyfs.New(data)
	} else {
		layer, err := projectionfs.New(tmpfs, path)
		if err != nil {
			return nil, err
		}
		data = layerfs.New(layer, data)
	}

	fs := composefs.New(tmpfs, "/tmp")
	return fs, fs.Mount(path, data)
}

func seed(fs vfs.FileSystem, files ...Files) error {
	for _, set := range files {
		for name, content := range set {
			if dir := filepath.Dir(name); dir != "." {
				if err := fs.MkdirAll(dir, 0o700); err != nil {
					return err
				}
			}
			if err := vfs.WriteFile(fs, name, []byte(content), 0o600); err != nil {
				return err
			}
		}
	}
	return nil
}
