package opset

import (
	"bytes"
	"fmt"
)

func forEachByte(lo, hi byte, f func(op byte)) {
	for i := uint(lo); i <= uint(hi); i++ {
		f(byte(i))
	}
}

func genericForEach(s Set, f func(op byte)) {
	for i := uint(0); i < 256; i++ {
		if s.Contains(byte(i)) {
			f(byte(i))
		}
	}
}

func genericString(s Set) string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	s.ForEach(func(op byte) {
		if !first {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "0x%02x", op)
		first = false
	})
	buf.WriteByte('}')
	return buf.String()
}
