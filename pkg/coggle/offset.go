package coggle

import "fmt"

// Offset is a node position relative to its parent, in diagram units.
type Offset struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

func (o Offset) String() string {
	return fmt.Sprintf("(%d, %d)", o.X, o.Y)
}
