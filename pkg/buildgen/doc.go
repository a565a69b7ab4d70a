// Package buildgen discovers the sources and prebuilt libraries of a SeeLess C project
// and renders the shell script that compiles them with clang and links the result with llvm-link.
// Nothing is compiled here; the script is meant to be run by a separate shell from the objects directory.
package buildgen
