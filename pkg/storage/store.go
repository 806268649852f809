package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/femodel/pkg/manager"
	"github.com/mandelsoft/femodel/pkg/utils"
)

// Store keeps named models as files in a directory.
// Every model is stored with the format of the store.
type Store struct {
	lock   sync.Mutex
	path   string
	format Format
	fs     vfs.FileSystem
}

func NewStore(path string, format Format, fss ...vfs.FileSystem) (*Store, error) {
	if format == HCL {
		return nil, fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, format)
	}
	fs := utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)

	err := fs.MkdirAll(path, 0o0700)
	if err != nil && !errors.Is(err, vfs.ErrExist) {
		return nil, err
	}
	return &Store{path: path, format: format, fs: fs}, nil
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.path, name+"."+string(s.format))
}

// List provides the names of all stored models in alphabetical order.
func (s *Store) List() ([]string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	list, err := vfs.ReadDir(s.fs, s.path)
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var result []string
	suffix := "." + string(s.format)
	for _, e := range list {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			result = append(result, strings.TrimSuffix(e.Name(), suffix))
		}
	}
	slices.Sort(result)
	return result, nil
}

func (s *Store) Get(name string, opts ...Option) (*manager.ModelManager, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return LoadModel(s.fs, s.Path(name), opts...)
}

func (s *Store) Put(name string, m *manager.ModelManager) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return SaveModel(s.fs, s.Path(name), m)
}

func (s *Store) Delete(name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.fs.Remove(s.Path(name))
}
