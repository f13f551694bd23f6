// Package model defines the data structures shared by the droidtest tools.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system or repository-relative path.
type Path string

// SourceExtension identifies the language of a test source file.
type SourceExtension string

const (
	// ExtKotlin marks Kotlin sources.
	ExtKotlin SourceExtension = ".kt"
	// ExtJava marks Java sources.
	ExtJava SourceExtension = ".java"
)

// SourceExtensions lists the recognised test source extensions in resolution order.
var SourceExtensions = []SourceExtension{ExtKotlin, ExtJava}

// Ext returns the source extension of the path, or an empty string when the
// file is neither Kotlin nor Java.
func (p Path) Ext() SourceExtension {
	ext := SourceExtension(filepath.Ext(string(p)))
	for _, known := range SourceExtensions {
		if ext == known {
			return ext
		}
	}

	return ""
}

// Stem returns the file base name without its extension.
func (p Path) Stem() string {
	base := filepath.Base(string(p))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Slash returns the path with forward slashes.
func (p Path) Slash() string {
	return filepath.ToSlash(string(p))
}

// SourceFile is a path plus its full text content.
type SourceFile struct {
	Path    Path
	Content string
}

// Lines splits the content into lines without their terminators.
func (f SourceFile) Lines() []string {
	content := strings.ReplaceAll(f.Content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")

	if content == "" {
		return nil
	}

	return strings.Split(content, "\n")
}
