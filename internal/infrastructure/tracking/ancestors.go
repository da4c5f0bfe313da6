package tracking

import "github.com/alexisbeaulieu97/floatkit/internal/ports"

// ScrollParents returns every ancestor of node whose overflow lets it
// scroll, nearest first. The node itself is not included.
func ScrollParents(node ports.Node) []ports.Node {
	if node == nil {
		return nil
	}
	var parents []ports.Node
	for p := node.Parent(); p != nil; p = p.Parent() {
		if p.Overflow().Scrollable() {
			parents = append(parents, p)
		}
	}
	return parents
}

// OffsetParent returns the nearest ancestor that establishes a positioning
// context, or nil when coordinates resolve against the document.
func OffsetParent(node ports.Node) ports.Node {
	if node == nil {
		return nil
	}
	for p := node.Parent(); p != nil; p = p.Parent() {
		if p.Positioning().EstablishesContext() {
			return p
		}
	}
	return nil
}
