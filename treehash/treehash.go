// Package treehash computes the CLVM tree hash described in spec.md §4.4:
// sha256(0x01 || atom_bytes) for a leaf, sha256(0x02 || hash(left) ||
// hash(right)) for a pair. The traversal uses an explicit work stack so
// that hashing a program many times deeper than the native call stack
// cannot overflow it.
//
// Grounded on peggyvm/execution.go's explicit-stack walk of a Program, here
// retargeted from "walk and execute" to "walk and fold a digest".
package treehash

import (
	"crypto/sha256"

	"github.com/chia-network/clvm-go/allocator"
)

const (
	leafPrefix = 0x01
	pairPrefix = 0x02
)

// Hash is a tree hash: the 32-byte SHA-256 digest of a CLVM node.
type Hash [sha256.Size]byte

// Cache memoizes Hash by node handle across repeated calls against the
// same Allocator. It must not be reused across allocators, and is invalid
// after any Allocator.Rollback that removes nodes it has cached.
type Cache struct {
	m map[allocator.Ptr]Hash
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{m: make(map[allocator.Ptr]Hash)}
}

// Get returns the cached hash for p, if any. Populated entries persist for
// every node TreeHash has computed through this cache, including
// descendants of a root passed to TreeHash, not just roots looked up
// directly.
func (c *Cache) Get(p allocator.Ptr) (Hash, bool) {
	h, ok := c.m[p]
	return h, ok
}

// TreeHash returns the tree hash of p, using and populating cache if
// non-nil.
func TreeHash(a *allocator.Allocator, p allocator.Ptr, cache *Cache) Hash {
	if cache != nil {
		if h, ok := cache.m[p]; ok {
			return h
		}
	}

	type frame struct {
		p       allocator.Ptr
		visited bool
	}
	var results []Hash
	stack := []frame{{p, false}}

	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]

		if !f.visited && cache != nil {
			if h, ok := cache.m[f.p]; ok {
				stack = stack[:n]
				results = append(results, h)
				continue
			}
		}

		if b, ok := a.Atom(f.p); ok {
			stack = stack[:n]
			h := hashLeaf(b)
			if cache != nil {
				cache.m[f.p] = h
			}
			results = append(results, h)
			continue
		}

		left, right, _ := a.Pair(f.p)
		if !f.visited {
			stack[n].visited = true
			stack = append(stack, frame{right, false}, frame{left, false})
			continue
		}

		stack = stack[:n]
		rr := len(results) - 1
		lr := len(results) - 2
		h := hashPair(results[lr], results[rr])
		results = results[:lr]
		if cache != nil {
			cache.m[f.p] = h
		}
		results = append(results, h)
	}

	return results[0]
}

func hashLeaf(b []byte) Hash {
	h := sha256.New()
	h.Write([]byte{leafPrefix})
	h.Write(b)
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func hashPair(left, right Hash) Hash {
	h := sha256.New()
	h.Write([]byte{pairPrefix})
	h.Write(left[:])
	h.Write(right[:])
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}
