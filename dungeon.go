package mapgen

// Constants governing dungeon composition, named exactly as the system
// they were distilled from names them.
const (
	RoomMinWidth  = 2
	RoomMinHeight = 2
	RoomMaxWidth  = 5
	RoomMaxHeight = 5

	RoomPlacementAttempts = 10

	RoomMinExits = 1
	RoomMaxExits = 3

	OutsideMinExits = 1
	OutsideMaxExits = 4
)

// Dungeon is the result of Compose: the carved maze, the rooms placed
// within it, and the materialized tile map.
type Dungeon struct {
	Maze    *Maze
	Rooms   []Room
	TileMap *TileMap
}

// forceOpenDir opens dir in cell unconditionally, without requiring (or
// touching) a neighbor on the other side. Used only for outside exits,
// where the whole point is that no neighbor exists.
func (m *Maze) forceOpenDir(cell Point, dir Direction) {
	m.set(cell, m.At(cell).AddDir(dir))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Compose builds a complete dungeon: rooms placed without overlap, a maze
// carved through the remaining cells, room interiors and exits opened,
// global connectivity repaired, a chosen ratio of corridor dead ends
// pruned, and the result projected into a TileMap with rooms stamped.
func Compose(rows, cols int, wrap WrapLevel, gt GenerationType, numRooms int, pruneRatio float64, outsideExits bool, rng RNG) (*Dungeon, error) {
	if rows <= 0 || cols <= 0 {
		return nil, newShapeError("Compose", "rows and cols must be positive")
	}
	pruneRatio = clamp01(pruneRatio)

	bounds := Room{BasePoint: Point{Row: 0, Col: 0}, Dimensions: Point{Row: rows - 1, Col: cols - 1}}
	var rooms []Room
	for i := 0; i < numRooms; i++ {
		dim := Point{
			Row: uniformInt(rng, RoomMinHeight-1, RoomMaxHeight-1),
			Col: uniformInt(rng, RoomMinWidth-1, RoomMaxWidth-1),
		}
		room, ok := GenerateRoomInBounds(bounds, dim, RoomPlacementAttempts, rooms, rng)
		if !ok {
			continue
		}
		rooms = append(rooms, room)
	}

	mask := make([][]bool, rows)
	for r := range mask {
		mask[r] = make([]bool, cols)
		for c := range mask[r] {
			mask[r][c] = true
		}
	}
	for _, room := range rooms {
		max := room.opposite()
		for r := room.BasePoint.Row; r <= max.Row; r++ {
			for c := room.BasePoint.Col; c <= max.Col; c++ {
				mask[r][c] = false
			}
		}
	}

	m, err := BuildMaze(rows, cols, wrap, mask, gt, rng)
	if err != nil {
		return nil, err
	}

	for _, room := range rooms {
		carveRoomInterior(m, room)
	}

	for _, room := range rooms {
		openRoomExits(m, room, rooms, rng)
	}

	connectDungeon(m, rooms)

	var outsideWalls []Wall
	if outsideExits && wrap == WrapNone {
		n := uniformInt(rng, OutsideMinExits, OutsideMaxExits)
		boundaryWalls := bounds.Walls()
		for i := 0; i < n; i++ {
			w := boundaryWalls[rng.Intn(len(boundaryWalls))]
			m.forceOpenDir(w.Cell, w.Dir)
			outsideWalls = append(outsideWalls, w)
		}
	}

	if pruneRatio > 0 {
		pruneDeadEnds(m, rooms, pruneRatio, rng)
	}

	tm := Project(m)
	for _, room := range rooms {
		stampRoom(tm, room)
	}
	for _, w := range outsideWalls {
		markExitTile(tm, w)
	}

	return &Dungeon{Maze: m, Rooms: rooms, TileMap: tm}, nil
}

// carveRoomInterior opens every internal grid edge within room, forming a
// fully-connected rectangular blob. The room's own outer boundary is left
// closed; exits are opened separately.
func carveRoomInterior(m *Maze, room Room) {
	max := room.opposite()
	for row := room.BasePoint.Row; row <= max.Row; row++ {
		for col := room.BasePoint.Col; col < max.Col; col++ {
			m.openEdge(Point{Row: row, Col: col}, East)
		}
	}
	for row := room.BasePoint.Row; row < max.Row; row++ {
		for col := room.BasePoint.Col; col <= max.Col; col++ {
			m.openEdge(Point{Row: row, Col: col}, North)
		}
	}
}

// openRoomExits chooses a random number of exits for room, preferring
// walls that lead into the open maze over walls that lead into another
// room, and opens them.
func openRoomExits(m *Maze, room Room, allRooms []Room, rng RNG) {
	k := uniformInt(rng, RoomMinExits, RoomMaxExits)
	var toMaze, toOtherRoom []Wall
	for _, w := range room.Walls() {
		neighbor, ok := m.step(w.Cell, w.Dir)
		if !ok {
			continue
		}
		if room.Contains(neighbor) {
			continue
		}
		if containsCellInAny(allRooms, neighbor) {
			toOtherRoom = append(toOtherRoom, w)
		} else {
			toMaze = append(toMaze, w)
		}
	}
	for i := 0; i < k; i++ {
		var pick Wall
		if len(toMaze) > 0 {
			idx := rng.Intn(len(toMaze))
			pick = toMaze[idx]
			toMaze = append(toMaze[:idx], toMaze[idx+1:]...)
		} else if len(toOtherRoom) > 0 {
			idx := rng.Intn(len(toOtherRoom))
			pick = toOtherRoom[idx]
			toOtherRoom = append(toOtherRoom[:idx], toOtherRoom[idx+1:]...)
		} else {
			break
		}
		m.openEdge(pick.Cell, pick.Dir)
	}
}

// connectDungeon floods from (0,0) following open edges; whenever the
// flood stalls with cells still unreached, it scans row-major for the
// first such cell, carves one passage to an already-reached cardinal
// neighbor (first match in canonical direction order), and resumes.
func connectDungeon(m *Maze, rooms []Room) {
	total := m.Rows * m.Cols
	visited := make([]bool, total)
	idx := func(p Point) int { return p.Row*m.Cols + p.Col }

	queue := []Point{{Row: 0, Col: 0}}
	visited[idx(queue[0])] = true
	flood := func() {
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			c := m.At(p)
			for _, d := range AllDirections {
				if !c.HasDir(d) {
					continue
				}
				n, ok := m.step(p, d)
				if !ok || visited[idx(n)] {
					continue
				}
				visited[idx(n)] = true
				queue = append(queue, n)
			}
		}
	}
	flood()

	for {
		var stalled Point
		found := false
		for row := 0; row < m.Rows && !found; row++ {
			for col := 0; col < m.Cols; col++ {
				p := Point{Row: row, Col: col}
				if !visited[idx(p)] {
					stalled = p
					found = true
					break
				}
			}
		}
		if !found {
			return
		}
		visited[idx(stalled)] = true
		for _, d := range AllDirections {
			n, ok := m.step(stalled, d)
			if !ok || !visited[idx(n)] {
				continue
			}
			m.openEdge(stalled, d)
			break
		}
		queue = append(queue, stalled)
		flood()
	}
}

// pruneDeadEnds collects corridor dead ends outside any room, shuffles
// them, and erases the leading ratio-sized fraction. Runs after
// connectivity repair so pruning can never disconnect the map.
func pruneDeadEnds(m *Maze, rooms []Room, ratio float64, rng RNG) {
	allDeadEnds := m.DeadEnds()
	var eligible []Point
	for _, p := range allDeadEnds {
		if !containsCellInAny(rooms, p) {
			eligible = append(eligible, p)
		}
	}
	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	n := int(float64(len(eligible)) * ratio)
	for i := 0; i < n; i++ {
		cell := eligible[i]
		if m.At(cell).NumExits() == 0 {
			continue
		}
		m.EraseDeadEnd(cell)
	}
}

// stampRoom tags every tile inside room's doubled rectangle as TileRoom.
func stampRoom(tm *TileMap, room Room) {
	max := room.opposite()
	for row := 2*room.BasePoint.Row + 1; row <= 2*max.Row+1; row++ {
		for col := 2*room.BasePoint.Col + 1; col <= 2*max.Col+1; col++ {
			tm.SetTile(row, col, TileRoom)
		}
	}
}

// markExitTile tags the TileMap position corresponding to an opened
// outside wall as TileExit rather than plain Floor.
func markExitTile(tm *TileMap, w Wall) {
	row, col := w.Cell.Row, w.Cell.Col
	switch w.Dir {
	case North:
		tm.SetTile(2*row+2, 2*col+1, TileExit)
	case South:
		tm.SetTile(2*row, 2*col+1, TileExit)
	case East:
		tm.SetTile(2*row+1, 2*col+2, TileExit)
	case West:
		tm.SetTile(2*row+1, 2*col, TileExit)
	}
}
