// Package coggle provides a client for the Coggle REST API (diagrams, nodes
// and folders).
//
// # Overview
//
// A Client issues one authenticated request per operation and decodes the
// JSON response into typed handles. Diagram and Node handles remember the
// Client they came from, so further operations can be called on them
// directly:
//
//	client, err := coggle.NewClient(&coggle.Config{Token: os.Getenv("COGGLE_TOKEN")})
//	if err != nil {
//		return err
//	}
//
//	diagrams, err := client.ListDiagrams(ctx)
//	roots, err := diagrams[0].Nodes(ctx)
//	child, err := roots[0].AddChild(ctx, "hello", nil)
//
// Handles are snapshots of the server's response. They are not refreshed
// when the diagram changes remotely; fetch again to see the new state.
//
// # Authentication
//
// The access token travels as the access_token query parameter on every
// request. A static Config.Token is enough for most uses; Config.TokenSource
// accepts any oauth2.TokenSource for tokens that need refreshing.
//
// # Endpoints
//
//   - GET    /api/1/diagrams
//   - GET    /api/1/organisations/:org/diagrams
//   - POST   /api/1/diagrams
//   - GET    /api/1/diagrams/:diagram/nodes
//   - PUT    /api/1/diagrams/:diagram/nodes?action=arrange
//   - POST   /api/1/diagrams/:diagram/nodes
//   - POST   /api/1/diagrams/:diagram/nodes/:node (PUT when Config.NodeUpdateMethod is PUT)
//   - DELETE /api/1/diagrams/:diagram/nodes/:node
//
// # Error Handling
//
// Input rejected before a request is sent is reported as a *ValidationError
// wrapping ErrTextTooLong or ErrInvalidOrganizationName. Everything that
// goes wrong on the wire is a *TransportError carrying the status code and
// the underlying cause. Requests are not retried unless Config.MaxRetries is
// set.
//
// # Concurrency
//
// A Client is safe for concurrent use. The client does not order concurrent
// mutations of the same node; the server decides the final state.
package coggle
