package rawvol

// Vertex is one mesh corner with a grayscale shade in [0,1] derived
// from the voxel value that produced it.
type Vertex struct {
	Position [3]float32
	Shade    float32
}

// Mesh is an indexed triangle mesh suitable for GLB export.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

type dirSpec struct {
	normal [3]float32
	u, v   int
	du, dv [3]int
}

var directions = []dirSpec{
	{[3]float32{1, 0, 0}, 1, 2, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
	{[3]float32{-1, 0, 0}, 1, 2, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, 1, 0}, 0, 2, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, -1, 0}, 0, 2, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, 0, 1}, 0, 1, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
	{[3]float32{0, 0, -1}, 0, 1, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
}

// getSolid returns the voxel value when it reaches the threshold,
// 0 otherwise. Out-of-range indices count as empty.
func getSolid(vol *Volume, x, y, z int, threshold uint16) uint16 {
	if x < 0 || x >= vol.W || y < 0 || y >= vol.H || z < 0 || z >= vol.D {
		return 0
	}
	v := vol.At(x, y, z)
	if v < threshold {
		return 0
	}
	return v
}

func addQuad(mesh *Mesh, dir dirSpec, start [3]int, w, h int, shade float32, perp int) {
	base := [3]float32{}
	base[perp] = float32(start[0])
	if dir.normal[perp] > 0 {
		base[perp] += 1
	}
	base[dir.u] = float32(start[1])
	base[dir.v] = float32(start[2])

	verts := [4]Vertex{
		{Position: base, Shade: shade},
		{Position: [3]float32{base[0] + float32(dir.du[0]*h), base[1] + float32(dir.du[1]*h), base[2] + float32(dir.du[2]*h)}, Shade: shade},
		{Position: [3]float32{base[0] + float32(dir.du[0]*h) + float32(dir.dv[0]*w), base[1] + float32(dir.du[1]*h) + float32(dir.dv[1]*w), base[2] + float32(dir.du[2]*h) + float32(dir.dv[2]*w)}, Shade: shade},
		{Position: [3]float32{base[0] + float32(dir.dv[0]*w), base[1] + float32(dir.dv[1]*w), base[2] + float32(dir.dv[2]*w)}, Shade: shade},
	}

	swap := (dir.normal[perp] < 0) != (perp == 1)
	if swap {
		verts[1], verts[3] = verts[3], verts[1]
	}

	baseIdx := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, verts[:]...)
	mesh.Indices = append(mesh.Indices, baseIdx, baseIdx+1, baseIdx+2, baseIdx, baseIdx+2, baseIdx+3)
}

// GenerateMesh builds a greedy surface mesh of all voxels whose value
// is at least threshold. Exposed faces of equal voxel value are merged
// into maximal quads, so the quad's shade stays uniform.
func GenerateMesh(vol *Volume, threshold uint16) *Mesh {
	if threshold < 1 {
		threshold = 1
	}
	mesh := &Mesh{}
	dims := [3]int{vol.W, vol.H, vol.D}
	maxVal := float32(vol.Type.MaxValue())

	for _, dir := range directions {
		perp := 3 - dir.u - dir.v

		for p := 0; p < dims[perp]; p++ {
			mask := make([][]uint16, dims[dir.u])
			visited := make([][]bool, dims[dir.u])
			for i := range mask {
				mask[i] = make([]uint16, dims[dir.v])
				visited[i] = make([]bool, dims[dir.v])
			}

			for u := 0; u < dims[dir.u]; u++ {
				for v := 0; v < dims[dir.v]; v++ {
					pos := [3]int{}
					pos[dir.u] = u
					pos[dir.v] = v
					pos[perp] = p

					voxel := getSolid(vol, pos[0], pos[1], pos[2], threshold)
					if voxel == 0 {
						continue
					}

					adj := pos
					if dir.normal[perp] < 0 {
						adj[perp] = p - 1
					} else {
						adj[perp] = p + 1
					}

					if adj[perp] < 0 || adj[perp] >= dims[perp] || getSolid(vol, adj[0], adj[1], adj[2], threshold) == 0 {
						mask[u][v] = voxel
					}
				}
			}

			for u := 0; u < dims[dir.u]; u++ {
				for v := 0; v < dims[dir.v]; {
					if mask[u][v] == 0 || visited[u][v] {
						v++
						continue
					}
					value := mask[u][v]
					width := 1
					for w := v + 1; w < dims[dir.v] && mask[u][w] == value && !visited[u][w]; w++ {
						width++
					}
					height := 1
					stop := false
					for h := u + 1; h < dims[dir.u] && !stop; h++ {
						for w := v; w < v+width; w++ {
							if mask[h][w] != value || visited[h][w] {
								stop = true
								break
							}
						}
						if !stop {
							height++
						}
					}
					for hu := u; hu < u+height; hu++ {
						for hv := v; hv < v+width; hv++ {
							visited[hu][hv] = true
						}
					}
					addQuad(mesh, dir, [3]int{p, u, v}, width, height, float32(value)/maxVal, perp)
					v += width
				}
			}
		}
	}
	return mesh
}
