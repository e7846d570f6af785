// Package report renders search results for people and for machines.
//
// The text layout prints one block per algorithm:
//
//	a_star Path: [down right]
//	Total Cost: 2
//	Search Depth: 3
//	----------------------------------------
//
// Paths longer than 50 moves are cut, labelled "Path (first 50 moves)" and
// followed by "...". An unreachable result prints "Path: none" and
// "Total Cost: inf".
//
// The JSON layout is an array of records with the cost set to null when no
// goal was reached.
package report
