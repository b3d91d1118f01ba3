// Package llmstxt turns the rendered HTML output of a static documentation
// site into plain-text artifacts for language-model agents: an llms.txt
// index and one document set per configured selection of pages.
//
// This package contains domain types, interfaces and the pure parts of the
// assembly pipeline (page selection, priority ordering, formatting) following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// htmltomarkdown/, doublestar/).
package llmstxt
