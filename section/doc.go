// Package section scans flat, tag-delimited text.
//
// A section is the text between an open delimiter <TAG> and a close
// delimiter </TAG>. The scanner is a first-match substring extractor, not an
// XML parser: it neither balances nested tags nor decodes entities. Input
// must never nest a tag inside another tag of the same name, and field values
// must never contain a literal close delimiter. Either violation produces a
// silently truncated span.
//
// # Iteration
//
// The usual pattern views a section, consumes it, and advances past it:
//
//	for body := range section.All(doc, "LIBRARY") {
//		name := section.Field(body, "NAME")
//		...
//	}
//
// [All] wraps the [Scanner.View] / [Scanner.Next] loop and may be ranged
// over repeatedly.
package section
