// Package fsnode models filesystem entries reached relative to an open
// directory descriptor, and lazy iteration over directory contents.
//
// Syscall failures that depend on the environment (permissions, races
// with deletion, I/O errors) are captured as values on the Entry or
// Iter that hit them, never raised, so one unreadable subtree cannot
// abort a walk of its siblings or ancestors.
package fsnode
