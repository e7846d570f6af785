package grid

// Component returns the traversable cells 4-connected to p, in BFS
// discovery order starting with p. It returns nil when p itself is not
// traversable.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Component(p Position) []Position {
	if !g.Traversable(p) {
		return nil
	}
	seen := make([]bool, g.Rows*g.Cols)
	seen[g.offset(p)] = true
	queue := []Position{p}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, m := range Moves {
			v := u.Add(m)
			if !g.Traversable(v) || seen[g.offset(v)] {
				continue
			}
			seen[g.offset(v)] = true
			queue = append(queue, v)
		}
	}
	return queue
}

// offset maps p to a row-major index: Row*Cols + Col.
func (g *Grid) offset(p Position) int {
	return p.Row*g.Cols + p.Col
}
