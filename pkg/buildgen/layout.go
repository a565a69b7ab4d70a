package buildgen

import (
	"path/filepath"
	"strings"
)

// Layout describes where a build run looks for files and where it writes its script.
// The generator runs inside <project>/build and the project root is its parent.
type Layout struct {
	WorkDir    string
	Root       string
	LibDir     string
	ObjectsDir string
	Output     string
}

// ResolveLayout derives the default layout from the working directory
func ResolveLayout(wd string) Layout {
	wd = filepath.Clean(wd)
	root := filepath.Dir(wd)

	return Layout{
		WorkDir:    wd,
		Root:       root,
		LibDir:     filepath.Join(root, "lib"),
		ObjectsDir: filepath.Join(wd, "objects"),
		Output:     filepath.Join(wd, DefaultScriptPath),
	}
}

// WithRoot returns a copy of the layout that searches the given root instead.
// The library directory moves along with the root.
func (l Layout) WithRoot(root string) Layout {
	l.Root = l.resolve(root)
	l.LibDir = filepath.Join(l.Root, "lib")
	return l
}

// WithOutput returns a copy of the layout that writes to the given path
func (l Layout) WithOutput(output string) Layout {
	l.Output = l.resolve(output)
	return l
}

func (l Layout) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(l.WorkDir, path)
}

// ProductName returns the value the SeeLess app exports as $PRODUCT_NAME for a project directory:
// the directory's name with a .bc extension, spaces replaced with dashes and quotes escaped.
func ProductName(projectDir string) string {
	name := filepath.Base(filepath.Clean(projectDir))
	name = strings.TrimSuffix(name, filepath.Ext(name)) + ".bc"
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "'", `\'`)
	return strings.ReplaceAll(name, `"`, `\"`)
}
