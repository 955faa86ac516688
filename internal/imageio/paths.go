package imageio

import (
	"path/filepath"
	"strings"
)

// HighlightSuffix is appended to the base name of generated overlays.
const HighlightSuffix = "-highlight"

// InputPath joins a directory prefix, base name and extension as
// dir + name + "." + ext. dir is used verbatim and should end in a
// separator when it names a directory.
func InputPath(dir, name, ext string) string {
	return dir + name + "." + strings.TrimPrefix(ext, ".")
}

// OutputPath returns dir + name + "-highlight." + ext.
func OutputPath(dir, name, ext string) string {
	return dir + name + HighlightSuffix + "." + strings.TrimPrefix(ext, ".")
}

// SplitPath breaks path into the triple accepted by InputPath, so that
// InputPath(SplitPath(p)) == p for paths with an extension.
func SplitPath(path string) (dir, name, ext string) {
	dir, file := filepath.Split(path)
	ext = filepath.Ext(file)
	name = strings.TrimSuffix(file, ext)
	return dir, name, strings.TrimPrefix(ext, ".")
}

// SiblingPath returns dir + name + suffix + "." + ext, used for
// diagnostic images written next to the overlay.
func SiblingPath(path, suffix, ext string) string {
	dir, name, _ := SplitPath(path)
	return dir + name + suffix + "." + strings.TrimPrefix(ext, ".")
}
