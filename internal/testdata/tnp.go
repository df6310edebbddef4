/*
Package testdata gives tests access to the TNP fixture files in directory
tnp/ of this package.
*/
package testdata

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Fixture files.
const (
	London      = "london.tnp"       // a single CTR with an arc
	Carry       = "carry.tnp"        // declarations carried over three blocks
	Latin1      = "latin1.tnp"       // ISO-8859-1 encoded title
	MissingTops = "missing_tops.tnp" // BASE without TOPS
)

var fixtureDir = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(file), "tnp")
}()

// Path returns the path of a fixture file.
func Path(name string) string {
	return filepath.Join(fixtureDir, name)
}

// Source returns the contents of a fixture file, without any decoding.
func Source(name string) (string, error) {
	data, err := os.ReadFile(Path(name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Reader returns a reader for the contents of a fixture file.
func Reader(name string) (*strings.Reader, error) {
	src, err := Source(name)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(src), nil
}

// Fixtures lists the names of all fixture files, sorted.
func Fixtures() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(fixtureDir, "*.tnp"))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = filepath.Base(m)
	}
	sort.Strings(names)
	return names, nil
}
