// Package textgrid decodes literal rink encodings into grid.Cell records and
// builds a grid.Grid from them.
//
// Two encodings are supported:
//
//   - Letters: every cell is one token matched exactly. "X" is an obstacle,
//     "P" the start, "G" a goal and "B" a puck; anything else is a cost.
//   - Tokens: every cell is a short string of an optional leading cost and
//     lowercase marker letters found by substring containment ("x", "p",
//     "g", "b"), so "0g" is a goal of cost 0 and "1b" a puck of cost 1.
//
// In both encodings the cost is the token's leading decimal digits; a token
// without them (or whose number does not fit in int64) costs
// grid.DefaultCost. Cost parsing never fails.
//
// Text layout for Parse: one row per line, blank lines and text after "#"
// ignored. Cells are separated by whitespace or commas; a Letters row with
// no separators is read one character per cell.
package textgrid
