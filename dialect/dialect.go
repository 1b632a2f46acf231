// Package dialect holds the sorted, binary-searched opcode dispatch table
// described in spec.md §4.6-4.7: a mapping from a numeric opcode to the
// operator it names, plus a reservation map answering "does this dialect
// define this opcode at all."
//
// Grounded on peggyvm/opcode.go's OpCode.Meta(): a sorted []OpMeta slice
// searched with sort.Search, generalized from a fixed 8-bit instruction
// set to CLVM's open-ended opcode space, and from a single global table to
// one Table value per dialect (so soft-fork extensions can build their own
// table without mutating a shared global).
package dialect

import (
	"sort"

	"github.com/chia-network/clvm-go/opctx"
	"github.com/chia-network/clvm-go/opset"
)

// Opcode identifies a CLVM operator. Every operator defined by this module
// fits in a single byte; values above 0xFF are accepted by Table.Lookup
// (they simply won't be found) so a caller can always decode an operator
// atom into an Opcode without a separate range check.
type Opcode uint32

// Entry binds one opcode to its name and handler.
type Entry struct {
	Code    Opcode
	Name    string
	Handler opctx.Handler
}

// Table is an immutable, binary-searchable operator dispatch table.
type Table struct {
	entries []Entry
	defined opset.Set
}

// New builds a Table from entries. Entries need not be pre-sorted.
// Duplicate codes are not diagnosed here; the first wins under binary
// search ties, so callers should not rely on that and should not supply
// duplicates.
func New(entries []Entry) *Table {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	var bytes []byte
	for _, e := range sorted {
		if e.Code <= 0xFF {
			bytes = append(bytes, byte(e.Code))
		}
	}

	return &Table{
		entries: sorted,
		defined: opset.Sparse(bytes...).Optimize(),
	}
}

// Lookup returns the Entry for code, if this dialect defines it.
func (t *Table) Lookup(code Opcode) (Entry, bool) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Code >= code })
	if i < len(t.entries) && t.entries[i].Code == code {
		return t.entries[i], true
	}
	return Entry{}, false
}

// Defined reports, for single-byte opcodes, which ones this dialect
// defines. Opcodes above 0xFF are never included even if some Entry names
// one; real CLVM operators are all single-byte, so this is purely a
// convenience view over the common case (e.g. for error messages or
// reserved-range diagnostics), not a general membership test — use Lookup
// for that.
func (t *Table) Defined() opset.Set {
	return t.defined
}

// Len returns the number of operators this dialect defines.
func (t *Table) Len() int { return len(t.entries) }
