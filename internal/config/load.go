package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// file is the on-disk shape of a machine configuration file, e.g.:
//
//	machine-size = 64
//	char-is-signed = true
//	byte-order-big-endian = false
//	wchar-kind = "int"
//	c-mode = ["c89", "c99", "gnuc"]
//	calling-convention = "cdecl"
//	force-long-double-size = 0
type file struct {
	MachineSize            int      `toml:"machine-size"`
	CharIsSigned           bool     `toml:"char-is-signed"`
	ByteOrderBigEndian     bool     `toml:"byte-order-big-endian"`
	WcharKind              string   `toml:"wchar-kind"`
	CMode                  []string `toml:"c-mode"`
	CallingConvention      string   `toml:"calling-convention"`
	ForceLongDoubleSize    int      `toml:"force-long-double-size"`
}

var cModeNames = map[string]CMode{
	"c89":  CModeC89,
	"c99":  CModeC99,
	"gnuc": CModeGNUC,
	"ms":   CModeMS,
	"cxx":  CModeCXX,
}

// LoadFile parses a TOML machine-configuration file, starting from
// Default() so a partial file only overrides what it names.
func LoadFile(path string) (Machine, error) {
	m := Default()
	var f file
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return m, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if meta.IsDefined("machine-size") {
		m.MachineSize = f.MachineSize
	}
	if meta.IsDefined("char-is-signed") {
		m.CharIsSigned = f.CharIsSigned
	}
	if meta.IsDefined("byte-order-big-endian") {
		m.ByteOrderBigEndian = f.ByteOrderBigEndian
	}
	if meta.IsDefined("wchar-kind") {
		m.WcharKind = WcharKind(f.WcharKind)
	}
	if meta.IsDefined("c-mode") {
		var mode CMode
		for _, name := range f.CMode {
			bit, ok := cModeNames[name]
			if !ok {
				return m, fmt.Errorf("config: unknown c-mode %q", name)
			}
			mode |= bit
		}
		m.CMode = mode
	}
	if meta.IsDefined("calling-convention") {
		m.DefaultCallingConvention = CallingConvention(f.CallingConvention)
	}
	if meta.IsDefined("force-long-double-size") {
		m.ForceLongDoubleSize = f.ForceLongDoubleSize
	}
	return m, nil
}

// LoadFileIfExists behaves like LoadFile but returns Default() without
// error when path does not exist, so the CLI can treat a config file
// as optional.
func LoadFileIfExists(path string) (Machine, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(path)
}
