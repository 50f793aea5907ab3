package filetree

import (
	"strings"
	"testing"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/W4153WASMCoder/ApplicationService/pkg/models"
)

func record(id int, parentID *int, name string, isDirectory bool) *models.File {
	return &models.File{
		ID:          id,
		ProjectID:   1,
		ParentID:    parentID,
		Name:        name,
		IsDirectory: isDirectory,
		CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func intp(v int) *int {
	return &v
}

func TestBuildEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Build(nil))
	assert.Empty(t, Build([]*models.File{}))
}

func TestBuildSingleRoot(t *testing.T) {
	t.Parallel()

	roots := Build([]*models.File{record(1, nil, "src", true)})

	require.Len(t, roots, 1)
	assert.Equal(t, "src", roots[0].File.Name)
	assert.Zero(t, roots[0].Children.Len())
}

func TestBuildNestedHierarchy(t *testing.T) {
	t.Parallel()

	records := []*models.File{
		record(1, nil, "src", true),
		record(2, intp(1), "lib", true),
		record(3, intp(2), "util.go", false),
		record(4, intp(1), "main.go", false),
	}

	roots := Build(records)

	require.Len(t, roots, 1)
	src := roots[0]
	assert.Equal(t, 2, src.Children.Len())

	lib, ok := src.Children.Get("lib")
	require.True(t, ok)
	util, ok := lib.Children.Get("util.go")
	require.True(t, ok)
	assert.Equal(t, 3, util.File.ID)

	_, ok = src.Children.Get("main.go")
	assert.True(t, ok)
}

func TestBuildChildBeforeParent(t *testing.T) {
	t.Parallel()

	// Linkage must not depend on whether a parent precedes its children.
	records := []*models.File{
		record(3, intp(2), "util.go", false),
		record(2, intp(1), "lib", true),
		record(1, nil, "src", true),
	}

	roots := Build(records)

	require.Len(t, roots, 1)
	assert.Equal(t, "src", roots[0].File.Name)
	lib, ok := roots[0].Children.Get("lib")
	require.True(t, ok)
	_, ok = lib.Children.Get("util.go")
	assert.True(t, ok)
}

func TestBuildMissingParentPromotedToRoot(t *testing.T) {
	t.Parallel()

	// Parent id 99 lives on another page: the record becomes a root for this
	// page, never dropped.
	records := []*models.File{
		record(1, nil, "src", true),
		record(2, intp(1), "a.txt", false),
		record(3, intp(99), "b.txt", false),
	}

	roots := Build(records)

	require.Len(t, roots, 2)
	assert.Equal(t, "src", roots[0].File.Name)
	assert.Equal(t, "b.txt", roots[1].File.Name)

	_, ok := roots[0].Children.Get("a.txt")
	assert.True(t, ok)
}

func TestBuildDuplicateSiblingNameLastWriteWins(t *testing.T) {
	t.Parallel()

	records := []*models.File{
		record(1, nil, "src", true),
		record(2, intp(1), "a.txt", false),
		record(3, intp(1), "a.txt", false),
	}

	roots := Build(records)

	require.Len(t, roots, 1)
	require.Equal(t, 1, roots[0].Children.Len())
	winner, ok := roots[0].Children.Get("a.txt")
	require.True(t, ok)
	assert.Equal(t, 3, winner.File.ID)
}

func TestBuildTotality(t *testing.T) {
	t.Parallel()

	// Every input record stays reachable, whatever the shape, except that
	// duplicate sibling names collapse a subtree entry (the overwritten node
	// loses its slot but its own subtree came with it).
	records := []*models.File{
		record(1, nil, "a", true),
		record(2, intp(1), "b", true),
		record(3, intp(2), "c", true),
		record(4, intp(3), "d", false),
		record(5, intp(42), "orphan", false),
		record(6, nil, "e", false),
	}

	roots := Build(records)

	assert.Equal(t, len(records), Count(roots))
}

func TestBuildPermutationKeepsShape(t *testing.T) {
	t.Parallel()

	records := []*models.File{
		record(1, nil, "src", true),
		record(2, intp(1), "lib", true),
		record(3, intp(2), "util.go", false),
		record(4, intp(1), "main.go", false),
		record(5, intp(9), "stray.txt", false),
	}
	permuted := []*models.File{records[4], records[2], records[0], records[3], records[1]}

	shape := func(roots []*Node) map[string][]string {
		out := map[string][]string{}
		var walk func(n *Node)
		walk = func(n *Node) {
			names := n.Children.Names()
			out[n.File.Name] = names
			for _, child := range n.Children.Nodes() {
				walk(child)
			}
		}
		for _, root := range roots {
			walk(root)
		}
		return out
	}

	original := Build(records)
	reordered := Build(permuted)

	assert.Equal(t, Count(original), Count(reordered))
	for name, children := range shape(original) {
		assert.ElementsMatch(t, children, shape(reordered)[name], "children of %s", name)
	}
}

func TestBuildSelfReferencingRecordBecomesRoot(t *testing.T) {
	t.Parallel()

	records := []*models.File{record(1, intp(1), "loop", true)}

	roots := Build(records)

	require.Len(t, roots, 1)
	assert.Zero(t, roots[0].Children.Len())
}

func TestBuildMutualCycleKeepsBothRecords(t *testing.T) {
	t.Parallel()

	// Two records naming each other as parents would otherwise both leave
	// the root sequence and vanish from the forest.
	records := []*models.File{
		record(1, intp(2), "a", true),
		record(2, intp(1), "b", true),
	}

	roots := Build(records)

	require.Len(t, roots, 1)
	assert.Equal(t, 1, roots[0].File.ID)
	child, ok := roots[0].Children.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, child.File.ID)
	assert.Equal(t, len(records), Count(roots))
}

func TestBuildLongerCycleKeepsEveryRecord(t *testing.T) {
	t.Parallel()

	records := []*models.File{
		record(1, intp(2), "a", true),
		record(2, intp(3), "b", true),
		record(3, intp(1), "c", true),
		record(4, intp(3), "leaf.txt", false),
	}

	roots := Build(records)

	require.Len(t, roots, 1)
	assert.Equal(t, len(records), Count(roots))

	// The cut member still serializes without recursing forever.
	_, err := json.Marshal(roots[0])
	require.NoError(t, err)
}

func TestChildMapInsertionOrderAndOverwrite(t *testing.T) {
	t.Parallel()

	m := NewChildMap()
	m.Set("b", &Node{File: record(1, nil, "b", false), Children: NewChildMap()})
	m.Set("a", &Node{File: record(2, nil, "a", false), Children: NewChildMap()})
	m.Set("b", &Node{File: record(3, nil, "b", false), Children: NewChildMap()})

	// Overwrite keeps the original position.
	assert.Equal(t, []string{"b", "a"}, m.Names())
	node, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 3, node.File.ID)
}

func TestChildMapChildResolvesTaggedVariant(t *testing.T) {
	t.Parallel()

	records := []*models.File{
		record(1, nil, "src", true),
		record(2, intp(1), "docs", true),
		record(3, intp(1), "a.txt", false),
		record(4, intp(1), "notes.txt", false),
		record(5, intp(4), "nested.txt", false),
	}

	roots := Build(records)
	require.Len(t, roots, 1)
	children := roots[0].Children

	docs, ok := children.Child("docs")
	require.True(t, ok)
	assert.NotNil(t, docs.Branch)
	assert.Nil(t, docs.Leaf)

	leaf, ok := children.Child("a.txt")
	require.True(t, ok)
	assert.Nil(t, leaf.Branch)
	require.NotNil(t, leaf.Leaf)
	assert.Equal(t, 3, leaf.Leaf.ID)

	// A plain file that ended up with a child still resolves as a branch so
	// its subtree stays visible.
	parented, ok := children.Child("notes.txt")
	require.True(t, ok)
	require.NotNil(t, parented.Branch)
	assert.False(t, parented.Branch.File.IsDirectory)
	assert.Equal(t, 1, parented.Branch.Children.Len())

	_, ok = children.Child("missing")
	assert.False(t, ok)
}

func TestMarshalBranchAndLeaf(t *testing.T) {
	t.Parallel()

	records := []*models.File{
		record(1, nil, "src", true),
		record(2, intp(1), "docs", true),
		record(3, intp(1), "a.txt", false),
	}

	roots := Build(records)
	require.Len(t, roots, 1)

	data, err := json.Marshal(roots[0])
	require.NoError(t, err)

	var out struct {
		File     models.File                `json:"file"`
		Children map[string]json.RawMessage `json:"children"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "src", out.File.Name)
	require.Len(t, out.Children, 2)

	// An empty directory still serializes as a full node.
	var docs struct {
		File     *models.File               `json:"file"`
		Children map[string]json.RawMessage `json:"children"`
	}
	require.NoError(t, json.Unmarshal(out.Children["docs"], &docs))
	require.NotNil(t, docs.File)
	assert.True(t, docs.File.IsDirectory)
	assert.Empty(t, docs.Children)

	// A plain file with no descendants serializes as the bare record.
	var leaf models.File
	require.NoError(t, json.Unmarshal(out.Children["a.txt"], &leaf))
	assert.Equal(t, 3, leaf.ID)
	assert.False(t, leaf.IsDirectory)
}

func TestMarshalChildOrderFollowsInsertion(t *testing.T) {
	t.Parallel()

	records := []*models.File{
		record(1, nil, "src", true),
		record(2, intp(1), "zeta", false),
		record(3, intp(1), "alpha", false),
	}

	roots := Build(records)
	data, err := json.Marshal(roots[0].Children)
	require.NoError(t, err)

	// Insertion order, not lexicographic order.
	s := string(data)
	assert.Less(t, strings.Index(s, `"zeta"`), strings.Index(s, `"alpha"`))
}
