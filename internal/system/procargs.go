package system

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ParseProcArgs decodes a kern.procargs2 buffer into the argument vector the
// process was started with.
//
// Layout: a little-endian int32 argc, the NUL-terminated exec path, NUL
// padding, then argc NUL-terminated arguments followed by the environment.
func ParseProcArgs(buf []byte) ([]string, error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("procargs: short buffer (%d bytes)", len(buf))
	}
	argc := int(binary.LittleEndian.Uint32(buf[:4]))
	rest := buf[4:]

	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return nil, fmt.Errorf("procargs: unterminated exec path")
	}
	rest = rest[end:]
	for len(rest) > 0 && rest[0] == 0 {
		rest = rest[1:]
	}

	args := make([]string, 0, argc)
	for len(args) < argc && len(rest) > 0 {
		end := bytes.IndexByte(rest, 0)
		if end < 0 {
			args = append(args, string(rest))
			rest = nil
			break
		}
		args = append(args, string(rest[:end]))
		rest = rest[end+1:]
	}
	if len(args) != argc {
		return nil, fmt.Errorf("procargs: expected %d arguments, found %d", argc, len(args))
	}
	return args, nil
}
