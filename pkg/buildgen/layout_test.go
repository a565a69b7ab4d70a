package buildgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLayout(t *testing.T) {
	layout := ResolveLayout("/projects/Hello.cproj/build/")

	assert.Equal(t, Layout{
		WorkDir:    "/projects/Hello.cproj/build",
		Root:       "/projects/Hello.cproj",
		LibDir:     "/projects/Hello.cproj/lib",
		ObjectsDir: "/projects/Hello.cproj/build/objects",
		Output:     "/projects/Hello.cproj/build/objects/.compile.sh",
	}, layout)
}

func TestLayoutOverrides(t *testing.T) {
	layout := ResolveLayout("/p/build").WithRoot("../other").WithOutput("out.sh")

	assert.Equal(t, "/p/other", layout.Root)
	assert.Equal(t, "/p/other/lib", layout.LibDir)
	assert.Equal(t, "/p/build/out.sh", layout.Output)

	layout = layout.WithOutput("/tmp/x.sh")
	assert.Equal(t, "/tmp/x.sh", layout.Output)
}

func TestProductName(t *testing.T) {
	tests := map[string]string{
		"/p/Hello.cproj":        "Hello.bc",
		"/p/My Project.cproj/":  "My-Project.bc",
		"/p/noext":              "noext.bc",
		`/p/Bob's "Game".cproj`: `Bob\'s-\"Game\".bc`,
	}

	for dir, want := range tests {
		assert.Equal(t, want, ProductName(dir), dir)
	}
}
