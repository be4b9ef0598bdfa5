package tui

// brailleBuf is a 2x4 micro-pixel grid per terminal cell. Each cell also
// remembers the series that last drew into it so it can be coloured.
type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	owner [][]int   // series index per cell, -1 when empty
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	owner := make([][]int, h)
	for i := range m {
		m[i] = make([]uint8, w)
		owner[i] = make([]int, w)
		for j := range owner[i] {
			owner[i][j] = -1
		}
	}
	return &brailleBuf{w: w, h: h, m: m, owner: owner}
}

// dotBits maps a micro position (column, row) inside a cell to its braille bit.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords on behalf of series s.
func (b *brailleBuf) setPixel(mx, my, s int) bool {
	if mx < 0 || my < 0 {
		return false
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return false
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	b.owner[cy][cx] = s
	return true
}

// cell returns the braille rune and owning series at a cell; ' ' and -1 when empty.
func (b *brailleBuf) cell(cx, cy int) (rune, int) {
	mask := b.m[cy][cx]
	if mask == 0 {
		return ' ', -1
	}
	return rune(0x2800 + int(mask)), b.owner[cy][cx]
}
