// Package source loads the old and new versions of a file for diffing.
//
// Pairs come from the filesystem, from a git revision against the working
// tree, or from two git revisions, by shelling out to git show. Loads are
// guarded by a size limit and a binary-content sniff so the diff engine only
// ever sees text.
package source
