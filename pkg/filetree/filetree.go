// Package filetree reconstructs a directory forest from one page of flat
// file records. The builder never fails and never drops a record: a record
// whose parent is missing from the page is promoted to a root, since the
// parent may simply live on another page.
package filetree

import (
	"github.com/segmentio/encoding/json"

	"github.com/W4153WASMCoder/ApplicationService/pkg/models"
)

// Node wraps one file record together with the children resolved from the
// same batch.
type Node struct {
	File     *models.File
	Children *ChildMap
}

// MarshalJSON serializes the node as {"file": ..., "children": {...}}.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		File     *models.File `json:"file"`
		Children *ChildMap    `json:"children"`
	}{n.File, n.Children})
}

// Build reconstructs the forest representable by one batch of records and
// returns its roots in input order.
//
// Nodes are created for every record up front so linkage doesn't depend on
// whether a parent appears before its children. Parent links are resolved
// next and any linkage cycle inside the batch is cut before attachment, so
// every record stays reachable from a root. Two siblings sharing a name
// overwrite each other, last one in input order wins. O(n) time and space.
func Build(records []*models.File) []*Node {
	nodes := make(map[int]*Node, len(records))
	for _, record := range records {
		nodes[record.ID] = &Node{File: record, Children: NewChildMap()}
	}

	parents := make(map[int]*Node, len(records))
	for _, record := range records {
		if record.IsRoot() {
			continue
		}
		// A record naming itself as its parent would otherwise vanish into
		// its own children and cycle on serialization.
		if parent, ok := nodes[*record.ParentID]; ok && parent != nodes[record.ID] {
			parents[record.ID] = parent
		}
	}

	// A loop of parent links would pull every member out of the root
	// sequence and drop the whole loop from the forest. Chase each chain of
	// parents once; when a link leads back into the chain being walked, cut
	// it there so that member surfaces as a root.
	const (
		onChain = 1
		settled = 2
	)
	state := make(map[int]int, len(records))
	chain := make([]int, 0, len(records))
	for _, record := range records {
		chain = chain[:0]
		id := record.ID
		for state[id] == 0 {
			state[id] = onChain
			chain = append(chain, id)
			parent, ok := parents[id]
			if !ok {
				break
			}
			id = parent.File.ID
		}
		if state[id] == onChain {
			delete(parents, id)
		}
		for _, walked := range chain {
			state[walked] = settled
		}
	}

	roots := make([]*Node, 0, len(records))
	for _, record := range records {
		node := nodes[record.ID]
		if parent, ok := parents[record.ID]; ok {
			parent.Children.Set(record.Name, node)
			continue
		}
		roots = append(roots, node)
	}

	return roots
}

// Count returns the total number of nodes reachable from the given roots,
// including the roots themselves.
func Count(roots []*Node) int {
	total := 0
	for _, root := range roots {
		total++
		total += Count(root.Children.Nodes())
	}
	return total
}
