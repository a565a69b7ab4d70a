package buildgen

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs,
		"/Hello.cproj/main.c",
		"/Hello.cproj/src/util.cpp",
		"/Hello.cproj/src/util.h",
		"/Hello.cproj/lib/libfoo.bc",
		"/Hello.cproj/configuration/configuration.txt",
	)
	require.NoError(t, fs.MkdirAll("/Hello.cproj/build/objects", 0755))

	layout := ResolveLayout("/Hello.cproj/build")
	result, err := Run(context.Background(), fs, layout, DefaultScriptOptions())
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.True(t, result.Libraries.Present)

	data, err := afero.ReadFile(fs, "/Hello.cproj/build/objects/.compile.sh")
	require.NoError(t, err)
	assert.Equal(t, `echo Compiling main.c...
clang --config ../../configuration/configuration.txt /Hello.cproj/main.c
echo Compiling util.cpp...
clang --config ../../configuration/configuration.txt /Hello.cproj/src/util.cpp
echo Linking...
llvm-link *.ll /Hello.cproj/lib/libfoo.bc -o ../$PRODUCT_NAME
`, string(data))
}

func TestRunIsDeterministic(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/p/z.c", "/p/a.c", "/p/m/n.cpp", "/p/lib/b.ll", "/p/lib/a.ll")
	require.NoError(t, fs.MkdirAll("/p/build/objects", 0755))

	layout := ResolveLayout("/p/build")
	_, err := Run(context.Background(), fs, layout, DefaultScriptOptions())
	require.NoError(t, err)
	first, err := afero.ReadFile(fs, layout.Output)
	require.NoError(t, err)

	_, err = Run(context.Background(), fs, layout, DefaultScriptOptions())
	require.NoError(t, err)
	second, err := afero.ReadFile(fs, layout.Output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateMissingRoot(t *testing.T) {
	fs := afero.NewMemMapFs()

	layout := ResolveLayout("/missing/build")
	_, err := Generate(context.Background(), fs, layout, DefaultScriptOptions())
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrRootNotFound))
}

func TestGenerateWithoutLibraries(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/p/main.c")

	result, err := Generate(context.Background(), fs, ResolveLayout("/p/build"), DefaultScriptOptions())
	require.NoError(t, err)
	assert.False(t, result.Libraries.Present)
	assert.Contains(t, result.Script.String(), "llvm-link *.ll  -o ../$PRODUCT_NAME\n")
}
