// Package pages is the document collaborator behind the extraction
// pipeline: it opens a PDF once, validates it, and serves positioned text
// fragments, drawn rectangles, and page-region text to the table and
// glossary extractors. Everything above this package is agnostic to how
// page content is produced.
package pages
