package mapgen

import (
	"image"
	"image/color"
)

// TileKind is one of the four tile categories a projected map can contain.
// Room and Exit are both walkable, just like Floor; they exist so renderers
// can distinguish them without re-deriving the information from the
// originating maze.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileRoom
	TileExit
)

// Glyph returns the ASCII rendering character for this tile kind. Wall is
// '#'; Floor, Room, and Exit all share the space glyph.
func (k TileKind) Glyph() byte {
	if k == TileWall {
		return '#'
	}
	return ' '
}

// color returns the RGB pixel color used by image rendering: Floor is
// white, Wall is black, Exit is green, and anything else (Room) is red.
func (k TileKind) color() color.Color {
	switch k {
	case TileFloor:
		return color.White
	case TileWall:
		return color.Black
	case TileExit:
		return color.RGBA{R: 0, G: 200, B: 0, A: 255}
	default:
		return color.RGBA{R: 200, G: 0, B: 0, A: 255}
	}
}

// TileMap is the materialized (2R+1)x(2C+1) grid produced by projecting a
// Maze or stamping a Dungeon. It implements image.Image so it can be
// rasterized directly through github.com/yalue/image_utils, the same way
// Cave is.
type TileMap struct {
	Rows int
	Cols int
	// PixelsPerTile controls how many square pixels each tile occupies
	// when this TileMap is read as an image.Image. Defaults to 1.
	PixelsPerTile int
	tiles         []TileKind
}

func newTileMap(rows, cols int) *TileMap {
	return &TileMap{
		Rows:          rows,
		Cols:          cols,
		PixelsPerTile: 1,
		tiles:         make([]TileKind, rows*cols),
	}
}

func (t *TileMap) index(row, col int) int {
	return row*t.Cols + col
}

// Tile returns the tile kind at (row, col).
func (t *TileMap) Tile(row, col int) TileKind {
	return t.tiles[t.index(row, col)]
}

// SetTile sets the tile kind at (row, col).
func (t *TileMap) SetTile(row, col int, kind TileKind) {
	t.tiles[t.index(row, col)] = kind
}

// Project maps a Maze into a TileMap of dimensions (2R+1, 2C+1): every tile
// begins as Wall; a cell with any open exit becomes a Floor tile at its
// center, and each open passage becomes a Floor tile between the two
// cells' centers. The col-0 West and row-0 South boundary cases expose
// cylinder/torus wrap passages at the edge of the doubled grid.
func Project(m *Maze) *TileMap {
	rows := 2*m.Rows + 1
	cols := 2*m.Cols + 1
	tm := newTileMap(rows, cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			c := m.At(Point{Row: i, Col: j})
			if c.NumExits() > 0 {
				tm.SetTile(2*i+1, 2*j+1, TileFloor)
			}
			if c.HasDir(North) {
				tm.SetTile(2*i+2, 2*j+1, TileFloor)
			}
			if c.HasDir(East) {
				tm.SetTile(2*i+1, 2*j+2, TileFloor)
			}
		}
		c := m.At(Point{Row: i, Col: 0})
		if c.HasDir(West) {
			tm.SetTile(2*i+1, 0, TileFloor)
		}
	}
	for j := 0; j < m.Cols; j++ {
		c := m.At(Point{Row: 0, Col: j})
		if c.HasDir(South) {
			tm.SetTile(0, 2*j+1, TileFloor)
		}
	}
	return tm
}

// ASCII renders the tile map as ASCII text, one character per tile, rows
// top to bottom, with a trailing newline after each row.
func (t *TileMap) ASCII() string {
	buf := make([]byte, 0, t.Rows*(t.Cols+1))
	for row := 0; row < t.Rows; row++ {
		for col := 0; col < t.Cols; col++ {
			buf = append(buf, t.Tile(row, col).Glyph())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func (t *TileMap) ColorModel() color.Model {
	return color.RGBAModel
}

func (t *TileMap) Bounds() image.Rectangle {
	p := t.PixelsPerTile
	if p < 1 {
		p = 1
	}
	return image.Rect(0, 0, t.Cols*p, t.Rows*p)
}

func (t *TileMap) At(x, y int) color.Color {
	p := t.PixelsPerTile
	if p < 1 {
		p = 1
	}
	bounds := t.Bounds()
	if x < 0 || y < 0 || x >= bounds.Max.X || y >= bounds.Max.Y {
		return color.Transparent
	}
	col := x / p
	row := y / p
	return t.Tile(row, col).color()
}
