// Package pagination holds the list-slicing and sorting flags shared by the
// calckit commands that print catalogs.
package pagination
