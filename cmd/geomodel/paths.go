package main

import (
	"path/filepath"
	"strings"
)

// pngName replaces the model suffix of path with .png
func pngName(path string) string {
	if c, err := registry.Lookup(path); err == nil {
		return path[:len(path)-len(c.Suffix())-1] + ".png"
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
}
