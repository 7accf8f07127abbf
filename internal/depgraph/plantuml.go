package depgraph

import (
	"fmt"
	"strings"
)

// edgeColors is the cycle of colors assigned to a module's outgoing edges
// so neighbouring arrows stay distinguishable in dense diagrams.
var edgeColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Diagram renders the dependency graph as a PlantUML component diagram:
// a package tree grouping the modules, followed by one colored arrow per
// dependency. rootName labels the tree's top-level package.
func Diagram(g *Graph, rootName string) []string {
	lines := []string{"@startuml", ""}
	lines = append(lines, styleHeader()...)
	lines = append(lines, "")

	tree := newTreeNode(rootName)
	for _, module := range g.Modules() {
		tree.insert(append(module.Packages, module.Name))
	}
	lines = append(lines, tree.render(0)...)
	lines = append(lines, "")

	for _, module := range g.Modules() {
		deps := g.DependenciesOf(module)
		if len(deps) == 0 {
			continue
		}
		for i, dep := range deps {
			color := edgeColors[i%len(edgeColors)]
			lines = append(lines, fmt.Sprintf("[\"%s\"] -[%s]-> [\"%s\"]", module.Name, color, dep.Name))
		}
		lines = append(lines, "")
	}

	return append(lines, "@enduml")
}

func styleHeader() []string {
	return []string{
		"skinparam packageStyle rectangle",
		"skinparam linetype ortho",
		"skinparam class {",
		"    BackgroundColor White",
		"    BorderColor Black",
		"}",
		"left to right direction",
	}
}

// treeNode groups modules by their package path for nested rendering.
type treeNode struct {
	value    string
	children []*treeNode
}

func newTreeNode(value string) *treeNode {
	return &treeNode{value: value}
}

// insert adds a module path below the node, creating intermediate package
// nodes as needed. Children keep insertion order.
func (n *treeNode) insert(path []string) {
	if len(path) == 0 {
		return
	}

	for _, child := range n.children {
		if child.value == path[0] {
			child.insert(path[1:])
			return
		}
	}

	child := newTreeNode(path[0])
	n.children = append(n.children, child)
	child.insert(path[1:])
}

// render emits the node as a component leaf or a package block with its
// children indented one level deeper.
func (n *treeNode) render(level int) []string {
	indent := strings.Repeat(" ", level*4)

	if len(n.children) == 0 {
		return []string{fmt.Sprintf("%s[\"%s\"]", indent, n.value)}
	}

	lines := []string{fmt.Sprintf("%spackage \"%s\" {", indent, n.value)}
	for _, child := range n.children {
		lines = append(lines, child.render(level+1)...)
	}
	return append(lines, indent+"}")
}
