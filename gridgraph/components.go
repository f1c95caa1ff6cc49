package gridgraph

// ConnectedComponents finds the islands of land cells under the configured
// connectivity. Islands are ordered by their first cell in row-major order
// and each lists its vertex IDs in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]string {
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if gg.opts.Conn == Conn8 {
		offsets = append(offsets, [2]int{1, -1}, [2]int{1, 1}, [2]int{-1, 1}, [2]int{-1, -1})
	}

	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]string
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Land(x, y) || seen[y*gg.Width+x] {
				continue
			}
			seen[y*gg.Width+x] = true
			queue := [][2]int{{x, y}}
			var comp []string
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := queue[qi][0], queue[qi][1]
				comp = append(comp, VertexID(ux, uy))
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Land(vx, vy) || seen[vy*gg.Width+vx] {
						continue
					}
					seen[vy*gg.Width+vx] = true
					queue = append(queue, [2]int{vx, vy})
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
