package buildgen

import "strings"

// Default values for the commands written into the compile script
const (
	DefaultCompiler   = "clang"
	DefaultConfigFile = "../../configuration/configuration.txt"
	DefaultLinker     = "llvm-link"
	DefaultProduct    = "../$PRODUCT_NAME"
)

var (
	// SourceSuffixes lists the file endings that are compiled
	SourceSuffixes = []string{".c", ".cpp"}
	// LibrarySuffixes lists the file endings of prebuilt bitcode that is passed to the linker
	LibrarySuffixes = []string{".ll", ".bc"}
)

// WordKind decides how a Word is rendered into the script
type WordKind int

const (
	// Raw words are written verbatim. Globs and variable references stay unexpanded.
	Raw WordKind = iota
	// Path words are escaped with EscapePath
	Path
	// PathList words hold any number of paths which are escaped and joined by single spaces
	PathList
)

// Word is a single token of a generated command
type Word struct {
	Kind   WordKind
	Values []string
}

// RawWord returns a word that is written as is
func RawWord(text string) Word {
	return Word{Kind: Raw, Values: []string{text}}
}

// PathWord returns a word for a single path
func PathWord(path string) Word {
	return Word{Kind: Path, Values: []string{path}}
}

// PathListWord returns a word for a list of paths. An empty list renders as an empty string.
func PathListWord(paths ...string) Word {
	return Word{Kind: PathList, Values: paths}
}

// String renders the word for the script
func (w Word) String() string {
	switch w.Kind {
	case Path, PathList:
		escaped := make([]string, len(w.Values))
		for idx, value := range w.Values {
			escaped[idx] = EscapePath(value)
		}

		return strings.Join(escaped, " ")
	default:
		return strings.Join(w.Values, " ")
	}
}

// fieldCount returns the number of shell arguments the word should expand to
func (w Word) fieldCount() int {
	switch w.Kind {
	case Path:
		return 1
	case PathList:
		return len(w.Values)
	default:
		return len(strings.Fields(w.String()))
	}
}

// Command is one line of the generated script
type Command []Word

// String joins the rendered words with single spaces. Empty words are kept which means that an
// empty PathList produces two consecutive spaces.
func (c Command) String() string {
	parts := make([]string, len(c))
	for idx, word := range c {
		parts[idx] = word.String()
	}

	return strings.Join(parts, " ")
}

func (c Command) fieldCount() int {
	count := 0
	for _, word := range c {
		count += word.fieldCount()
	}

	return count
}

// pathFields reports for each shell argument of the command whether it was rendered from a path
func (c Command) pathFields() []bool {
	fields := make([]bool, 0, c.fieldCount())
	for _, word := range c {
		for i := 0; i < word.fieldCount(); i++ {
			fields = append(fields, word.Kind != Raw)
		}
	}

	return fields
}

// LibrarySet is the result of a library search. Present is false if the library directory doesn't exist
// which is different from a directory that exists but contains no libraries.
type LibrarySet struct {
	Dir     string
	Present bool
	Paths   []string
}

// ScriptOptions controls the rendering of compile scripts
type ScriptOptions struct {
	Verbose    bool
	Compiler   string
	ConfigFile string
	Linker     string
	Product    string
}

// DefaultScriptOptions returns the options that reproduce the standard SeeLess build script
func DefaultScriptOptions() ScriptOptions {
	return ScriptOptions{
		Compiler:   DefaultCompiler,
		ConfigFile: DefaultConfigFile,
		Linker:     DefaultLinker,
		Product:    DefaultProduct,
	}
}

func (o ScriptOptions) withDefaults() ScriptOptions {
	if o.Compiler == "" {
		o.Compiler = DefaultCompiler
	}
	if o.ConfigFile == "" {
		o.ConfigFile = DefaultConfigFile
	}
	if o.Linker == "" {
		o.Linker = DefaultLinker
	}
	if o.Product == "" {
		o.Product = DefaultProduct
	}
	return o
}

// EscapePath backslash-escapes spaces, single quotes and double quotes (in that order) so the path can be
// placed unquoted on a shell command line. Existing backslashes are left alone.
func EscapePath(path string) string {
	path = strings.ReplaceAll(path, " ", `\ `)
	path = strings.ReplaceAll(path, "'", `\'`)
	return strings.ReplaceAll(path, `"`, `\"`)
}

func hasSuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
