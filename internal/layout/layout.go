// Package layout computes struct/union byte offsets and bit-field
// packing. It is the one component internal/types defers to through
// the types.LayoutLookup injection point, since laying out a compound
// type needs to walk its member entities — something the type graph
// itself cannot do without importing internal/entity.
package layout

import (
	"github.com/cparsecore/cparsecore/internal/diag"
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/types"
)

const bitsPerByte = 8

// Layout is a computed size/alignment pair, satisfying
// types.CompoundLayout. It is kept separate from entity.Compound
// itself because Compound already exposes Size and Alignment as
// plain fields, which a same-named method set could not coexist with.
type Layout struct {
	size      int
	alignment int
}

func (l *Layout) Size() int      { return l.size }
func (l *Layout) Alignment() int { return l.alignment }

// Engine lays out compound types on demand and caches the result per
// entity, so a member type referenced from several places is only
// laid out once.
type Engine struct {
	tb    *types.Table
	sink  diag.Sink
	flags *diag.WarningFlags
	cache map[*entity.Compound]*Layout
}

// New returns an Engine backed by tb, reporting padding/packing
// warnings to sink (which may be nil to silence them).
func New(tb *types.Table, sink diag.Sink, flags *diag.WarningFlags) *Engine {
	return &Engine{tb: tb, sink: sink, flags: flags, cache: make(map[*entity.Compound]*Layout)}
}

// Lookup implements types.LayoutLookup, resolving a compound entity
// reference to its computed layout, laying it out first if needed.
func (e *Engine) Lookup(ref types.EntityRef) (types.CompoundLayout, bool) {
	c, ok := ref.(*entity.Compound)
	if !ok {
		return nil, false
	}
	return e.Layout(c)
}

// Layout returns c's computed size and alignment, computing and
// caching it on first use. Returns ok=false for an incomplete type.
func (e *Engine) Layout(c *entity.Compound) (*Layout, bool) {
	if !c.Complete {
		return nil, false
	}
	if l, ok := e.cache[c]; ok {
		return l, true
	}
	var l *Layout
	if c.Kind() == entity.KindUnion {
		l = e.layoutUnion(c)
	} else {
		l = e.layoutStruct(c)
	}
	c.Size = l.size
	c.Alignment = l.alignment
	c.Layouted = true
	e.cache[c] = l
	return l, true
}

func compoundMembers(c *entity.Compound) []*entity.CompoundMember {
	var members []*entity.CompoundMember
	if c.Members == nil {
		return members
	}
	for _, e := range c.Members.Entities {
		if m, ok := e.(*entity.CompoundMember); ok {
			members = append(members, m)
		}
	}
	return members
}

func alignUp(offset, alignment int) int {
	if alignment <= 0 {
		return offset
	}
	return (offset + alignment - 1) &^ (alignment - 1)
}

// layoutStruct assigns each member a byte offset in declaration
// order, inserting padding for alignment and delegating runs of
// consecutive bit-field members to the little- or big-endian packer.
func (e *Engine) layoutStruct(c *entity.Compound) *Layout {
	members := compoundMembers(c)
	offset := 0
	alignment := c.Alignment
	if alignment == 0 {
		alignment = 1
	}
	needPad := false

	i := 0
	for i < len(members) {
		m := members[i]
		mType := m.DeclType
		skipped := types.SkipTyperef(mType)

		if skipped.Kind() == types.KindBitfield {
			if e.tb.Machine().ByteOrderBigEndian {
				i = e.packBitfieldBigEndian(&offset, &alignment, c.Packed, members, i)
			} else {
				i = e.packBitfield(&offset, &alignment, c.Packed, members, i)
			}
			continue
		}

		mAlignment := e.tb.GetTypeAlignment(mType, e.Lookup)
		if mAlignment > alignment {
			alignment = mAlignment
		}
		if !c.Packed {
			newOffset := alignUp(offset, mAlignment)
			if newOffset > offset {
				needPad = true
				offset = newOffset
			}
		}

		m.Offset = offset
		offset += e.tb.GetTypeSize(mType, e.Lookup)
		i++
	}

	if !c.Packed {
		newOffset := alignUp(offset, alignment)
		if newOffset > offset {
			needPad = true
			offset = newOffset
		}
	}

	if e.sink != nil {
		if needPad {
			diag.Warnf(e.sink, e.flags, diag.WarnPadded, diag.StageLayout, c.Pos(), "%q needs padding", c.Symbol())
		} else if c.Packed {
			diag.Warnf(e.sink, e.flags, diag.WarnPacked, diag.StageLayout, c.Pos(), "superfluous packed attribute on %q", c.Symbol())
		}
	}

	return &Layout{size: offset, alignment: alignment}
}

// layoutUnion gives every member offset zero and takes the largest
// member size/alignment as the union's own.
func (e *Engine) layoutUnion(c *entity.Compound) *Layout {
	members := compoundMembers(c)
	size := 0
	alignment := c.Alignment
	if alignment == 0 {
		alignment = 1
	}

	for _, m := range members {
		mType := m.DeclType
		m.Offset = 0
		if mSize := e.tb.GetTypeSize(mType, e.Lookup); mSize > size {
			size = mSize
		}
		if mAlignment := e.tb.GetTypeAlignment(mType, e.Lookup); mAlignment > alignment {
			alignment = mAlignment
		}
	}

	size = alignUp(size, alignment)
	return &Layout{size: size, alignment: alignment}
}

// packBitfield packs a run of little-endian bit-field members
// starting at index i, returning the index just past the run.
func (e *Engine) packBitfield(offset, alignment *int, packed bool, members []*entity.CompoundMember, i int) int {
	bitOffset := 0
	off := *offset
	align := *alignment

	for ; i < len(members); i++ {
		m := members[i]
		mType := types.SkipTyperef(m.DeclType)
		if mType.Kind() != types.KindBitfield {
			break
		}

		baseType := types.SkipTyperef(mType.BitfieldBase())
		baseAlignment := e.tb.GetTypeAlignment(baseType, e.Lookup)
		if baseAlignment > align {
			align = baseAlignment
		}

		bitSize := int(mType.BitfieldBitSize())
		if !packed {
			bitOffset += (off % baseAlignment) * bitsPerByte
			off -= off % baseAlignment
			baseSize := e.tb.GetTypeSize(baseType, e.Lookup) * bitsPerByte

			if bitOffset+bitSize > baseSize || bitSize == 0 {
				off += (bitOffset + bitsPerByte - 1) / bitsPerByte
				off = alignUp(off, baseAlignment)
				bitOffset = 0
			}
		}

		m.Offset = off
		m.BitOffset = bitOffset

		bitOffset += bitSize
		off += bitOffset / bitsPerByte
		bitOffset %= bitsPerByte
	}

	if bitOffset > 0 {
		off++
	}

	*offset = off
	*alignment = align
	return i
}

// packBitfieldBigEndian packs a run of big-endian bit-field members,
// grouping members into storage-unit "buckets" counted down from the
// top bit rather than up from the bottom. Packed big-endian
// bit-fields are not supported, matching the panic the little-endian
// path never needs.
func (e *Engine) packBitfieldBigEndian(offset, alignment *int, packed bool, members []*entity.CompoundMember, i int) int {
	if packed {
		diag.Bug("layout", "packed bitfields on a big-endian target are not supported")
	}

	off := *offset
	align := *alignment
	bitOffset := 0
	var currentBase *types.Type

	for ; i < len(members); i++ {
		m := members[i]
		mType := types.SkipTyperef(m.DeclType)
		if mType.Kind() != types.KindBitfield {
			break
		}

		bitSize := int(mType.BitfieldBitSize())
		baseType := types.SkipTyperef(mType.BitfieldBase())

		if baseType != currentBase || bitSize > bitOffset {
			if currentBase != nil {
				off += e.tb.GetTypeSize(currentBase, e.Lookup)
			}
			currentBase = baseType
			baseAlignment := e.tb.GetTypeAlignment(baseType, e.Lookup)
			if baseAlignment > align {
				align = baseAlignment
			}
			off = alignUp(off, baseAlignment)
			bitOffset = e.tb.GetTypeSize(baseType, e.Lookup) * bitsPerByte
		}

		bitOffset -= bitSize
		m.Offset = off
		m.BitOffset = bitOffset
	}

	if currentBase != nil {
		off += e.tb.GetTypeSize(currentBase, e.Lookup)
	}

	*offset = off
	*alignment = align
	return i
}
