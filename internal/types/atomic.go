package types

import "github.com/cparsecore/cparsecore/internal/config"

// AtomicKind enumerates the fundamental scalar kinds an Atomic type
// can carry.
type AtomicKind uint8

const (
	Void AtomicKind = iota
	Bool
	WCharT
	Char
	SChar
	UChar
	Short
	UShort
	Int
	UInt
	Long
	ULong
	LongLong
	ULongLong
	Float
	Double
	LongDouble
)

var atomicNames = [...]string{
	Void: "void", Bool: "_Bool", WCharT: "wchar_t", Char: "char",
	SChar: "signed char", UChar: "unsigned char", Short: "short",
	UShort: "unsigned short", Int: "int", UInt: "unsigned int",
	Long: "long", ULong: "unsigned long", LongLong: "long long",
	ULongLong: "unsigned long long", Float: "float", Double: "double",
	LongDouble: "long double",
}

func (k AtomicKind) String() string {
	if int(k) < len(atomicNames) {
		return atomicNames[k]
	}
	return "?"
}

// AtomicFlags is the flags bitset attached to every atomic kind.
type AtomicFlags uint8

const (
	FlagInteger AtomicFlags = 1 << iota
	FlagFloat
	FlagArithmetic
	FlagComplexCapable
	FlagSigned
)

// AtomicProperties is the {size, alignment, flags} triple
// looked up for a given machine configuration.
type AtomicProperties struct {
	Size      int
	Alignment int
	Flags     AtomicFlags
}

// atomicTable builds the fixed table indexed by AtomicKind, applying
// the initialization rules:
//   - char is SIGNED iff cfg.CharIsSigned.
//   - int/long/long long sizes depend on cfg.MachineSize.
//   - wchar_t's properties equal those of cfg.WcharKind (int when
//     cfg.WcharKind is empty or names no atomic kind).
//   - bool equals unsigned char.
//   - long long/double/long double align to 4 on 32-bit (x86 convention).
func atomicTable(cfg config.Machine) [17]AtomicProperties {
	intSize := 4
	if cfg.MachineSize < 32 {
		intSize = 2
	}
	longSize := 4
	if cfg.MachineSize >= 64 {
		longSize = 8
	}
	longLongSize := 8
	if longLongSize < longSize {
		longLongSize = longSize
	}

	wideAlign := 8
	if cfg.MachineSize <= 32 {
		wideAlign = 4
	}

	ldSize := 12
	if cfg.ForceLongDoubleSize > 0 {
		ldSize = cfg.ForceLongDoubleSize
	} else if cfg.MachineSize >= 64 {
		ldSize = 16
	}

	var t [17]AtomicProperties
	t[Void] = AtomicProperties{Size: 0, Alignment: 1}
	t[Bool] = AtomicProperties{Size: 1, Alignment: 1, Flags: FlagInteger | FlagArithmetic}
	t[Char] = charProps(cfg.CharIsSigned)
	t[SChar] = AtomicProperties{Size: 1, Alignment: 1, Flags: FlagInteger | FlagArithmetic | FlagSigned}
	t[UChar] = AtomicProperties{Size: 1, Alignment: 1, Flags: FlagInteger | FlagArithmetic}
	t[Short] = AtomicProperties{Size: 2, Alignment: 2, Flags: FlagInteger | FlagArithmetic | FlagSigned}
	t[UShort] = AtomicProperties{Size: 2, Alignment: 2, Flags: FlagInteger | FlagArithmetic}
	t[Int] = AtomicProperties{Size: intSize, Alignment: intSize, Flags: FlagInteger | FlagArithmetic | FlagSigned}
	t[UInt] = AtomicProperties{Size: intSize, Alignment: intSize, Flags: FlagInteger | FlagArithmetic}
	t[Long] = AtomicProperties{Size: longSize, Alignment: longSize, Flags: FlagInteger | FlagArithmetic | FlagSigned}
	t[ULong] = AtomicProperties{Size: longSize, Alignment: longSize, Flags: FlagInteger | FlagArithmetic}
	t[LongLong] = AtomicProperties{Size: longLongSize, Alignment: wideAlign, Flags: FlagInteger | FlagArithmetic | FlagSigned}
	t[ULongLong] = AtomicProperties{Size: longLongSize, Alignment: wideAlign, Flags: FlagInteger | FlagArithmetic}
	t[Float] = AtomicProperties{Size: 4, Alignment: 4, Flags: FlagFloat | FlagArithmetic | FlagSigned | FlagComplexCapable}
	t[Double] = AtomicProperties{Size: 8, Alignment: wideAlign, Flags: FlagFloat | FlagArithmetic | FlagSigned | FlagComplexCapable}
	t[LongDouble] = AtomicProperties{Size: ldSize, Alignment: wideAlign, Flags: FlagFloat | FlagArithmetic | FlagSigned | FlagComplexCapable}
	t[WCharT] = wcharProps(cfg, t)
	return t
}

func charProps(signed bool) AtomicProperties {
	flags := AtomicFlags(FlagInteger | FlagArithmetic)
	if signed {
		flags |= FlagSigned
	}
	return AtomicProperties{Size: 1, Alignment: 1, Flags: flags}
}

func wcharProps(cfg config.Machine, t [17]AtomicProperties) AtomicProperties {
	for k, name := range atomicNames {
		if name == string(cfg.WcharKind) && AtomicKind(k) != WCharT {
			return t[k]
		}
	}
	return t[Int]
}

// GetAtomicSize returns the byte size of kind under cfg.
func GetAtomicSize(kind AtomicKind, cfg config.Machine) int {
	return atomicTable(cfg)[kind].Size
}

// GetAtomicAlignment returns the alignment of kind under cfg.
func GetAtomicAlignment(kind AtomicKind, cfg config.Machine) int {
	return atomicTable(cfg)[kind].Alignment
}

// GetAtomicFlags returns the flags of kind under cfg.
func GetAtomicFlags(kind AtomicKind, cfg config.Machine) AtomicFlags {
	return atomicTable(cfg)[kind].Flags
}

// FindSignedIntKindForSize returns the smallest signed integer kind
// whose exact byte size is n, or false if none matches.
func FindSignedIntKindForSize(n int, cfg config.Machine) (AtomicKind, bool) {
	table := atomicTable(cfg)
	candidates := []AtomicKind{SChar, Short, Int, Long, LongLong}
	for _, k := range candidates {
		if table[k].Size == n {
			return k, true
		}
	}
	return 0, false
}

// FindUnsignedIntKindForSize returns the smallest unsigned integer
// kind whose exact byte size is n, or false if none matches.
func FindUnsignedIntKindForSize(n int, cfg config.Machine) (AtomicKind, bool) {
	table := atomicTable(cfg)
	candidates := []AtomicKind{UChar, UShort, UInt, ULong, ULongLong}
	for _, k := range candidates {
		if table[k].Size == n {
			return k, true
		}
	}
	return 0, false
}
