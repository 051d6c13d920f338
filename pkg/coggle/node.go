package coggle

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const nodePath = "/api/1/diagrams/:diagram/nodes/:node"

// NodeResource is the server's JSON representation of a node and, when
// present, its subtree.
type NodeResource struct {
	ID       string         `json:"_id"`
	Text     string         `json:"text"`
	Offset   Offset         `json:"offset"`
	Parent   *string        `json:"parent,omitempty"`
	Children []NodeResource `json:"children,omitempty"`
}

// NodeUpdate holds the properties to change on a node. Nil fields are not
// sent and stay unchanged on the server.
type NodeUpdate struct {
	Text   *string `json:"text,omitempty"`
	Offset *Offset `json:"offset,omitempty"`
	Parent *string `json:"parent,omitempty"`
}

// Node is a handle on one node of a diagram. Children form a snapshot of the
// subtree at fetch time and do not track later changes.
type Node struct {
	diagram *Diagram

	ID       string
	Text     string
	Offset   Offset
	ParentID *string
	Children []*Node
}

// newNode builds a node and its subtree. A child without a parent field in
// the response gets the id of the node it is nested under.
func newNode(diagram *Diagram, res *NodeResource, enclosingID *string) *Node {
	node := &Node{
		diagram:  diagram,
		ID:       res.ID,
		Text:     res.Text,
		Offset:   res.Offset,
		ParentID: res.Parent,
		Children: make([]*Node, 0, len(res.Children)),
	}
	if node.ParentID == nil && enclosingID != nil {
		parent := *enclosingID
		node.ParentID = &parent
	}

	for i := range res.Children {
		node.Children = append(node.Children, newNode(diagram, &res.Children[i], &node.ID))
	}
	return node
}

// Diagram returns the diagram the node belongs to.
func (n *Node) Diagram() *Diagram {
	return n.diagram
}

// ReplaceIDs substitutes the first ":node" placeholder with the node id, then
// the first ":diagram" placeholder with the diagram id.
func (n *Node) ReplaceIDs(template string) string {
	return n.diagram.ReplaceID(strings.Replace(template, ":node", url.PathEscape(n.ID), 1))
}

// AddChild creates a child node under n. offset may be nil to let the server
// place it. The returned node's ParentID is n.ID.
func (n *Node) AddChild(ctx context.Context, text string, offset *Offset) (*Node, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	requestBody := struct {
		Parent string  `json:"parent"`
		Offset *Offset `json:"offset,omitempty"`
		Text   string  `json:"text"`
	}{
		Parent: n.ID,
		Offset: offset,
		Text:   text,
	}

	var res NodeResource
	if err := n.diagram.client.Post(ctx, n.ReplaceIDs(diagramNodesPath), "", requestBody, &res); err != nil {
		return nil, fmt.Errorf("failed to add child to node %s: %w", n.ID, err)
	}

	child := newNode(n.diagram, &res, nil)
	parent := n.ID
	child.ParentID = &parent
	return child, nil
}

// Update changes the given properties of the node. The returned node's
// ParentID is set to the id of n.
func (n *Node) Update(ctx context.Context, props NodeUpdate) (*Node, error) {
	if props.Text != nil {
		if err := ValidateText(*props.Text); err != nil {
			return nil, err
		}
	}

	client := n.diagram.client
	var res NodeResource
	if err := client.do(ctx, client.nodeUpdateMethod, n.ReplaceIDs(nodePath), "", props, &res); err != nil {
		return nil, fmt.Errorf("failed to update node %s: %w", n.ID, err)
	}

	updated := newNode(n.diagram, &res, nil)
	id := n.ID
	updated.ParentID = &id
	return updated, nil
}

// SetText replaces the node text.
func (n *Node) SetText(ctx context.Context, text string) (*Node, error) {
	return n.Update(ctx, NodeUpdate{Text: &text})
}

// Move sets the node offset.
func (n *Node) Move(ctx context.Context, offset Offset) (*Node, error) {
	return n.Update(ctx, NodeUpdate{Offset: &offset})
}

// Remove deletes the node from the diagram.
func (n *Node) Remove(ctx context.Context) error {
	if err := n.diagram.client.Delete(ctx, n.ReplaceIDs(nodePath), "", nil); err != nil {
		return fmt.Errorf("failed to remove node %s: %w", n.ID, err)
	}
	return nil
}

// Walk calls fn for n and each node of its subtree, depth first, parents
// before children. depth is 0 for n. Returning false skips the node's
// children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// FindNode returns the node with the given id from a forest such as the one
// returned by Diagram.Nodes, or nil.
func FindNode(nodes []*Node, id string) *Node {
	var found *Node
	for _, root := range nodes {
		root.Walk(func(node *Node, depth int) bool {
			if found != nil {
				return false
			}
			if node.ID == id {
				found = node
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}
