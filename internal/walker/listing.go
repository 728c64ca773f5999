package walker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ListDir lists dir's immediate entry names sorted by byte order.
// Only names are read, so a directory that can be read but not searched
// still lists. A permission failure while opening or reading is reported
// as Listing.Denied; every other error is returned.
func ListDir(fsys afero.Fs, dir string) (Listing, error) {
	f, err := fsys.Open(dir)
	if err != nil {
		return deniedOr(err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return deniedOr(err)
	}
	sort.Strings(names)

	return Listing{Names: names}, nil
}

func deniedOr(err error) (Listing, error) {
	if errors.Is(err, fs.ErrPermission) {
		return Listing{Denied: true}, nil
	}
	return Listing{}, err
}

// isDir follows symlinks; anything that cannot be stat'ed is not a directory
func isDir(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// joinPath appends name to parent without cleaning parent, so ignore
// patterns see the path as the user spelled the root.
func joinPath(parent, name string) string {
	if strings.HasSuffix(parent, string(filepath.Separator)) || strings.HasSuffix(parent, "/") {
		return parent + name
	}
	return parent + string(os.PathSeparator) + name
}
