// Package alias stores directory bookmarks: a flat, insertion-ordered mapping
// from alias name to absolute path, persisted as a single JSON document.
//
// Store owns the document (load, save, locked update). Manager implements the
// add/remove/list/resolve operations on top of it.
package alias
