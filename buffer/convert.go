package buffer

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// ConvertPolicy controls how out-of-range input is treated by the offset
// conversions.
type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// ByteLen returns the UTF-8 length of Text().
func (b *Buffer) ByteLen() int {
	total := len(b.lines) - 1
	for _, line := range b.lines {
		for _, cluster := range line {
			total += len(cluster)
		}
	}
	return total
}

// PosFromByteOffset maps a byte offset in Text() to a position.
// Offsets inside a grapheme cluster are rejected.
func (b *Buffer) PosFromByteOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.ByteLen(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}

	cur := 0
	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row}, true
		}
		for col, cluster := range line {
			next := cur + len(cluster)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			if off == cur {
				return Pos{Row: row, GraphemeCol: col + 1}, true
			}
		}
		cur++ // '\n'
	}
	return Pos{}, false
}

// ByteOffsetFromPos maps a position to a byte offset in Text().
func (b *Buffer) ByteOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	switch p.ClampMode {
	case OffsetError:
		if b.clampPos(pos) != pos {
			return 0, false
		}
	case OffsetClamp:
		pos = b.clampPos(pos)
	default:
		return 0, false
	}

	off := 0
	for row := 0; row < pos.Row; row++ {
		for _, cluster := range b.lines[row] {
			off += len(cluster)
		}
		off++
	}
	for _, cluster := range b.lines[pos.Row][:pos.GraphemeCol] {
		off += len(cluster)
	}
	return off, true
}

func clampOffset(off, hi int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > hi {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, hi), true
	default:
		return 0, false
	}
}
