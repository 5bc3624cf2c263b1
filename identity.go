package pulse

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Identity is a stable key correlating a widget across rebuild cycles.
//
// Identities are assigned either structurally (same position under the same
// parent across rebuilds, via [Identity.Child]) or explicitly (a
// user-supplied key via [Identity.Keyed]). An explicit key shields a widget
// from reordering among its siblings: as long as the key stays the same, the
// widget keeps its snapshot even if its index changes.
//
// Identity is comparable and usable as a map key. The zero value is the
// root identity.
type Identity struct {
	path string
}

// RootIdentity returns the identity of the tree root.
func RootIdentity() Identity { return Identity{} }

// Child derives the structural identity of the child at the given index.
func (id Identity) Child(index int) Identity {
	return Identity{path: id.path + "/" + strconv.Itoa(index)}
}

// keyEscaper escapes the separator inside user keys so the path encoding
// stays injective: a '/' in a key must not read as a segment boundary.
var (
	keyEscaper   = strings.NewReplacer(`\`, `\\`, `/`, `\/`)
	keyUnescaper = strings.NewReplacer(`\\`, `\`, `\/`, `/`)
)

// Keyed derives an explicit identity from a user-supplied key.
// Keys are scoped to the parent: the same key under different parents
// yields different identities. Keys may contain any characters,
// separators included.
func (id Identity) Keyed(key string) Identity {
	return Identity{path: id.path + "/key:" + keyEscaper.Replace(key)}
}

// IsRoot reports whether id is the root identity.
func (id Identity) IsRoot() bool { return id.path == "" }

// Key returns the explicit key of the final path segment, if any.
func (id Identity) Key() (string, bool) {
	i := lastSegmentStart(id.path)
	if i < 0 {
		return "", false
	}
	seg, ok := strings.CutPrefix(id.path[i+1:], "key:")
	if !ok {
		return "", false
	}
	return keyUnescaper.Replace(seg), true
}

// lastSegmentStart returns the index of the '/' opening the final path
// segment. Slashes escaped inside a key do not count as boundaries.
func lastSegmentStart(path string) int {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] != '/' {
			continue
		}
		n := 0
		for j := i - 1; j >= 0 && path[j] == '\\'; j-- {
			n++
		}
		if n%2 == 0 {
			return i
		}
	}
	return -1
}

// Hash computes a 64-bit FNV-1a hash of the identity path.
func (id Identity) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id.path)) // fnv.Write never returns an error
	return h.Sum64()
}

// String returns the identity in path form, e.g. "/0/2" or "/0/key:sidebar".
func (id Identity) String() string {
	if id.path == "" {
		return "/"
	}
	return id.path
}
