package buildgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain", "/proj/src/main.c", "/proj/src/main.c"},
		{"space", "/my proj/main.c", `/my\ proj/main.c`},
		{"all special characters", `a b'c"d.bc`, `a\ b\'c\"d.bc`},
		{"backslash is kept", `a\ b.c`, `a\\ b.c`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapePath(tt.path))
		})
	}
}

func TestEscapePathLeavesSafePathsUnchanged(t *testing.T) {
	for _, path := range []string{"main.c", "lib/x.ll", "/a/b-c_d/e.cpp"} {
		assert.Equal(t, path, EscapePath(path))
		assert.Equal(t, path, EscapePath(EscapePath(path)))
	}
}

func TestCommandString(t *testing.T) {
	cmd := Command{RawWord("llvm-link"), RawWord("*.ll"), PathListWord(), RawWord("-o"), RawWord("../$PRODUCT_NAME")}
	assert.Equal(t, "llvm-link *.ll  -o ../$PRODUCT_NAME", cmd.String())
	assert.Equal(t, 4, cmd.fieldCount())

	cmd[2] = PathListWord("lib/a b.ll", "lib/c.bc")
	assert.Equal(t, `llvm-link *.ll lib/a\ b.ll lib/c.bc -o ../$PRODUCT_NAME`, cmd.String())
	assert.Equal(t, 6, cmd.fieldCount())
}

func TestWordString(t *testing.T) {
	assert.Equal(t, "Compiling a b.c...", RawWord("Compiling a b.c...").String())
	assert.Equal(t, `a\ b.c`, PathWord("a b.c").String())
	assert.Equal(t, "", PathListWord().String())
}
