// Package catalog persists music folders, catalog entries, and per-user
// folder visibility in SQLite, and implements subtree reassignment between
// nested folders.
//
// Every entry belongs to exactly one folder and stores its location as a path
// relative to that folder's root; the entry with an empty path is the folder's
// root directory marker. Reassign moves the ownership of a whole subtree
// between an ancestor folder and a descendant folder with two bulk updates
// per direction, rewriting path, parent_path, and cover_art_path in lockstep
// so the relative-path invariants hold for every affected row without a
// rescan.
//
// The store never creates or deletes rows during reassignment; it only
// mutates ownership and path columns on existing rows. Deleting a folder is
// deliberately unconditional: cleaning up entries and grants that still
// reference it is the caller's job.
package catalog
