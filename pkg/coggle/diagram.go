package coggle

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	diagramsPath             = "/api/1/diagrams"
	organisationDiagramsPath = "/api/1/organisations/:org/diagrams"
	diagramNodesPath         = "/api/1/diagrams/:diagram/nodes"
	diagramWebPath           = "/diagram/:diagram"
)

// DiagramResource is the server's JSON representation of a diagram.
type DiagramResource struct {
	ID        string     `json:"_id"`
	Title     string     `json:"title"`
	Timestamp wireTime   `json:"timestamp,omitempty"`
	Modified  wireTime   `json:"modified,omitempty"`
	Owner     string     `json:"owner,omitempty"`
	MyAccess  accessList `json:"my_access,omitempty"`
	Folder    string     `json:"folder,omitempty"`
}

// Diagram is a handle on one remote diagram.
type Diagram struct {
	client *Client

	ID        string
	Title     string
	Timestamp *time.Time
	Modified  *time.Time
	Owner     string
	MyAccess  []string
	FolderID  string
}

func newDiagram(client *Client, res DiagramResource) *Diagram {
	return &Diagram{
		client:    client,
		ID:        res.ID,
		Title:     res.Title,
		Timestamp: res.Timestamp.Time(),
		Modified:  res.Modified.Time(),
		Owner:     res.Owner,
		MyAccess:  res.MyAccess,
		FolderID:  res.Folder,
	}
}

// Diagram wraps a diagram id obtained from an earlier fetch. No request is
// made.
func (c *Client) Diagram(id string) *Diagram {
	return &Diagram{client: c, ID: id}
}

// ListDiagrams lists the caller's diagrams.
func (c *Client) ListDiagrams(ctx context.Context) ([]*Diagram, error) {
	return c.listDiagrams(ctx, diagramsPath)
}

// ListOrganizationDiagrams lists the diagrams of an organization. An invalid
// organization name, including the empty string, is rejected before any
// request is sent.
func (c *Client) ListOrganizationDiagrams(ctx context.Context, organization string) ([]*Diagram, error) {
	if err := ValidateOrganizationName(organization); err != nil {
		return nil, err
	}
	return c.listDiagrams(ctx, strings.Replace(organisationDiagramsPath, ":org", organization, 1))
}

func (c *Client) listDiagrams(ctx context.Context, endpoint string) ([]*Diagram, error) {
	var resources []DiagramResource
	if err := c.Get(ctx, endpoint, "", &resources); err != nil {
		return nil, fmt.Errorf("failed to list diagrams: %w", err)
	}

	diagrams := make([]*Diagram, 0, len(resources))
	for _, res := range resources {
		diagrams = append(diagrams, newDiagram(c, res))
	}
	return diagrams, nil
}

// CreateDiagram creates a new diagram with the given title.
func (c *Client) CreateDiagram(ctx context.Context, title string) (*Diagram, error) {
	requestBody := map[string]string{
		"title": title,
	}

	var res DiagramResource
	if err := c.Post(ctx, diagramsPath, "", requestBody, &res); err != nil {
		return nil, fmt.Errorf("failed to create diagram: %w", err)
	}

	return newDiagram(c, res), nil
}

// Node wraps a node id of the diagram obtained from an earlier fetch. No
// request is made and the returned handle has no text, offset or children.
func (d *Diagram) Node(id string) *Node {
	return &Node{diagram: d, ID: id}
}

// Client returns the client this diagram issues requests through.
func (d *Diagram) Client() *Client {
	return d.client
}

// ReplaceID substitutes the first ":diagram" placeholder in template with the
// diagram id.
func (d *Diagram) ReplaceID(template string) string {
	return strings.Replace(template, ":diagram", url.PathEscape(d.ID), 1)
}

// WebURL returns the browser URL of the diagram.
func (d *Diagram) WebURL() string {
	return d.ReplaceID(d.client.BaseURL() + diagramWebPath)
}

// Nodes fetches the diagram's node tree. The result is a snapshot.
func (d *Diagram) Nodes(ctx context.Context) ([]*Node, error) {
	var resources []NodeResource
	if err := d.client.Get(ctx, d.ReplaceID(diagramNodesPath), "", &resources); err != nil {
		return nil, fmt.Errorf("failed to get nodes of diagram %s: %w", d.ID, err)
	}
	return d.newNodes(resources), nil
}

// Arrange asks the server to lay out the diagram automatically and returns
// the nodes with their new offsets.
func (d *Diagram) Arrange(ctx context.Context) ([]*Node, error) {
	var resources []NodeResource
	if err := d.client.Put(ctx, d.ReplaceID(diagramNodesPath), "action=arrange", struct{}{}, &resources); err != nil {
		return nil, fmt.Errorf("failed to arrange diagram %s: %w", d.ID, err)
	}
	return d.newNodes(resources), nil
}

func (d *Diagram) newNodes(resources []NodeResource) []*Node {
	nodes := make([]*Node, 0, len(resources))
	for i := range resources {
		nodes = append(nodes, newNode(d, &resources[i], nil))
	}
	return nodes
}
