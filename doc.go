/*
Package rbtree implements an ordered set of integer keys as a red-black tree.

Red-Black Trees

A red-black tree is a binary search tree where every node carries a color,
either red or black. Insertion and deletion restore a small set of structural
invariants by recoloring and rotating nodes:

1. The root is black.

2. Every leaf is the sentinel, which is black.

3. A red node never has a red child.

4. Every path from a node down to a descendant sentinel contains the same
number of black nodes.

Together these bound the height of a tree with n keys to 2·log(n+1), so that
Insert, Search, Delete and Min run in O(log n).

Instead of nil pointers the tree uses a single black sentinel node per tree
instance for absent children and for the parent of the root. Clients may see
the sentinel as a return value of Search, Minimum or Successor; they can
recognize it with Node.IsSentinel.

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to provide their own locking.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// KeyError is an error type for the rbtree module
type KeyError string

func (e KeyError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged whenever Delete is called for a key which is not
// stored in the tree.
const ErrKeyNotFound = KeyError("key not found")

// ErrEmptyTree is flagged when asking an empty tree for its minimum or maximum.
const ErrEmptyTree = KeyError("tree is empty")

// ErrDuplicateKey is flagged when inserting a key which is already present into
// a tree which rejects duplicates.
const ErrDuplicateKey = KeyError("duplicate key")

// ErrInvariant is flagged by Check whenever a red-black invariant is violated.
const ErrInvariant = KeyError("red-black invariant violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = KeyError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
