// Package doctidy provides batch sanitization of HTML documentation
// exported by static site generators. It locates the primary content
// region of each page, discards navigation chrome and scripts, strips
// framework-scoped markup, and rewrites each file as a minimal
// standalone HTML document suitable for offline viewing or indexing.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// gohtml/, fs/).
package doctidy
