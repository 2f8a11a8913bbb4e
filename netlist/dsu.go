package netlist

// dsu is a disjoint-set union over a dense integer id space, with path
// compression and union by rank. It is an arena: ids are indices into
// growable slices, allocated per Resolve call and discarded with it,
// so no state outlives one resolution.
type dsu struct {
	parent []int // parent[i] == i marks a root
	rank   []int // tree-depth bound used to balance unions
}

// alloc returns a fresh singleton id.
func (d *dsu) alloc() int {
	id := len(d.parent)
	d.parent = append(d.parent, id) // self-parented root
	d.rank = append(d.rank, 0)

	return id
}

// find returns the representative of u's set.
// Iterative path compression: each step points u at its grandparent,
// halving the path without recursion.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank. Merging a set with itself
// is a no-op.
func (d *dsu) union(u, v int) {
	rootU := d.find(u)
	rootV := d.find(v)
	if rootU == rootV {
		return
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[rootU] < d.rank[rootV] {
		d.parent[rootU] = rootV
	} else {
		d.parent[rootV] = rootU
		if d.rank[rootU] == d.rank[rootV] {
			d.rank[rootU]++
		}
	}
}
