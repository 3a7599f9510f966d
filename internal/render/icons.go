package render

import (
	"os"
	"path/filepath"
	"time"

	devicons "github.com/epilande/go-devicons"
)

// dirInfo is a minimal fs.FileInfo so go-devicons can pick a directory
// icon without touching the filesystem.
type dirInfo struct {
	name string
}

func (d dirInfo) Name() string       { return d.name }
func (d dirInfo) Size() int64        { return 0 }
func (d dirInfo) Mode() os.FileMode  { return os.ModeDir | 0o755 }
func (d dirInfo) ModTime() time.Time { return time.Time{} }
func (d dirInfo) IsDir() bool        { return true }
func (d dirInfo) Sys() any           { return nil }

// dirIcon returns the Nerd Font icon for the directory's own name.
func dirIcon(path string) string {
	name := filepath.Base(path)
	if name == "" || name == "." {
		return ""
	}
	return devicons.IconForInfo(dirInfo{name: name}).Icon
}
