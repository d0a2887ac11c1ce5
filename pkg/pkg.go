// Package pkg holds build metadata shared by the command and its help output.
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It also names the configuration and cache
	// directories.
	Name = "psplibdoc"
	// Description is a one-line summary used in help output.
	Description = "PSP library document query tool"
)

// DefaultDocument is the document read when none is given on the command
// line.
const DefaultDocument = "psplibdoc_660.xml"

// AuthorInfo is an author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
