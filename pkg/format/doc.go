// Package format models the nesting templates of the two trees.
//
// A Format is an ordered list of categories, one per directory level:
// "name/year" describes a tree laid out as <name>/<year>. Two formats that
// describe the same pair of trees hold the same categories in any order.
// A Mapper answers, for a level of the tree being walked, which category
// that level holds and where that category sits in the other tree's format.
package format
