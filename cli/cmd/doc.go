// Package cmd implements the psplibdoc subcommands.
//
// Every command reads the document named by [WithDocument] and writes its
// results to the writer named by [WithOutput], which defaults to the
// standard output of the running [kong.Context].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"

	// DocumentIdentifier is the kong variable identifier containing the
	// default document path.
	DocumentIdentifier = "document"
)
