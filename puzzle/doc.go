// Package puzzle loads rink definitions from HCL files.
//
// A file holds one or more puzzle blocks:
//
//	puzzle "rink" {
//	  description = "reference rink"
//	  encoding    = "tokens"               # or "letters", the default
//	  rows = [
//	    "1p 1 1 x",                         # a row as text
//	    ["0g", "1", "1b", 1],               # or as a list of cell tokens
//	  ]
//	  algorithms = ["bfs", "a_star"]        # default: all six
//	}
//
// rows is read as a dynamic value so string rows and token-list rows can be
// mixed. Every puzzle is decoded into a grid.Grid immediately, so a loaded
// Puzzle is ready to search.
package puzzle
