package extensions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m1gwings/treedrawer/tree"
	"github.com/picolang/pico"
)

// GraphDebug renders a derived-node dependency graph for diagnostics: given
// a database and the id of a node of interest (typically one that just
// failed to validate, or one an application wants to inspect), it prints a
// horizontal ASCII tree of everything that depends on it, plus a flat
// detailed listing — the same two-view shape a dependency-graph debug tool
// for a reactive engine would produce.
type GraphDebug struct {
	db *pico.Database
}

// NewGraphDebug builds a GraphDebug over db.
func NewGraphDebug(db *pico.Database) *GraphDebug {
	return &GraphDebug{db: db}
}

// Render returns a human-readable dump of everything reachable from root in
// the dependent (reverse) direction: "what would have to re-run if root
// changed".
func (g *GraphDebug) Render(root pico.DerivedNodeId) string {
	graph := g.db.DependentGraph()

	var sb strings.Builder
	if len(graph) == 0 {
		sb.WriteString("(empty - no dependencies tracked)\n")
		return sb.String()
	}

	if t := g.buildTree(root, graph, make(map[pico.DerivedNodeId]bool)); t != nil {
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}

	sb.WriteString("\nDetailed view:\n")
	children := graph[root]
	sorted := append([]pico.DerivedNodeId(nil), children...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	if len(sorted) == 0 {
		sb.WriteString(fmt.Sprintf("  %s (no dependents)\n", g.label(root)))
	}
	for i, child := range sorted {
		connector := "├─>"
		if i == len(sorted)-1 {
			connector = "└─>"
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s\n", g.label(root), connector, g.label(child)))
	}
	return sb.String()
}

// buildTree recursively builds a treedrawer tree of dependents, guarding
// against revisiting a node twice (the dependent graph is acyclic by
// construction, but a node can have more than one dependent path into it).
func (g *GraphDebug) buildTree(id pico.DerivedNodeId, graph map[pico.DerivedNodeId][]pico.DerivedNodeId, visited map[pico.DerivedNodeId]bool) *tree.Tree {
	if visited[id] {
		return nil
	}
	visited[id] = true

	node := tree.NewTree(tree.NodeString(g.label(id)))
	children := append([]pico.DerivedNodeId(nil), graph[id]...)
	sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })

	for _, child := range children {
		childTree := g.buildTree(child, graph, visited)
		if childTree == nil {
			continue
		}
		newChild := node.AddChild(childTree.Val())
		for _, grandchild := range childTree.Children() {
			addTreeAsChild(newChild, grandchild)
		}
	}
	return node
}

func addTreeAsChild(parent *tree.Tree, child *tree.Tree) {
	newChild := parent.AddChild(child.Val())
	for _, grandchild := range child.Children() {
		addTreeAsChild(newChild, grandchild)
	}
}

func (g *GraphDebug) label(id pico.DerivedNodeId) string {
	status := ""
	if g.db.IsRetained(id) {
		status = " (retained)"
	}
	return fmt.Sprintf("%#x%s", uint64(id), status)
}
