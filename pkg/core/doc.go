// Package core drives a shortcut-maker run.
//
// A run has two passes over the trees:
//
//  1. Clean: walk the shortcut tree and remove every link whose target no
//     longer exists, then prune the folders this leaves empty.
//
//  2. Create: walk the target tree and add a link for every leaf directory
//     that has none in the shortcut tree.
//
// Cleaning first means a target that moved inside the target tree gets its
// old link removed and a new one created in the same run. Both passes are
// idempotent, so running twice in a row changes nothing the second time.
package core
