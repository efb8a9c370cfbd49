package manifest

import "io/fs"

// SetWriteFileForTest replaces the function used to write manifests.
func (g *Generator) SetWriteFileForTest(fn func(name string, data []byte, perm fs.FileMode) error) {
	g.writeFile = fn
}
