package node

import (
	"fmt"
	"slices"

	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/femodel/pkg/model"
)

// Node is a point of the structural model.
// It has 1 to 3 coordinates, an optional lumped mass
// per coordinate and optional fixed DOFs (two per coordinate,
// translational and rotational).
type Node struct {
	model.ObjectMeta `json:",inline"`
	Coordinates      []float64 `json:"coordinates"`
	Mass             []float64 `json:"mass"`
	FixedDofs        []bool    `json:"fixed_dofs"`
}

var _ model.Object = (*Node)(nil)

func New(id int, meta model.Metadata, coords ...float64) *Node {
	return &Node{
		ObjectMeta:  model.NewObjectMeta(id, meta),
		Coordinates: slices.Clone(coords),
	}
}

func (n *Node) GetObjectType() model.ObjectType {
	return model.NODE
}

// Dimension is the number of coordinates.
func (n *Node) Dimension() int {
	return len(n.Coordinates)
}

func (n *Node) SetCoordinates(coords ...float64) {
	n.Coordinates = slices.Clone(coords)
}

func (n *Node) X() float64 {
	return n.coordinate(0)
}

func (n *Node) Y() float64 {
	return n.coordinate(1)
}

func (n *Node) Z() float64 {
	return n.coordinate(2)
}

func (n *Node) SetX(v float64) {
	n.setCoordinate(0, v)
}

func (n *Node) SetY(v float64) {
	n.setCoordinate(1, v)
}

func (n *Node) SetZ(v float64) {
	n.setCoordinate(2, v)
}

func (n *Node) coordinate(i int) float64 {
	if i < len(n.Coordinates) {
		return n.Coordinates[i]
	}
	return 0
}

// setCoordinate extends the coordinate list if required.
func (n *Node) setCoordinate(i int, v float64) {
	for len(n.Coordinates) <= i {
		n.Coordinates = append(n.Coordinates, 0)
	}
	n.Coordinates[i] = v
}

func (n *Node) SetMass(mass ...float64) {
	n.Mass = slices.Clone(mass)
}

func (n *Node) SetFixedDofs(dofs ...bool) {
	n.FixedDofs = slices.Clone(dofs)
}

func (n *Node) Validate() bool {
	n.ResetValidation()
	if l := len(n.Coordinates); l < 1 || l > 3 {
		n.AddValidationMessage("Node coordinates must have 1, 2, or 3 components, got %d", l)
	}
	if n.Mass != nil && len(n.Mass) != len(n.Coordinates) {
		n.AddValidationMessage("Node mass must have the same number of components as coordinates")
	}
	if n.FixedDofs != nil && len(n.FixedDofs) != 2*len(n.Coordinates) {
		n.AddValidationMessage("Fixed DOFs must have twice the number of components as coordinates")
	}
	return n.ValidationResult()
}

func (n *Node) ToTcl() string {
	cmd := fmt.Sprintf("node %d %s", n.Id, model.Floats(n.Coordinates, " "))
	if len(n.Mass) > 0 {
		cmd += fmt.Sprintf("\nmass %d %s", n.Id, model.Floats(n.Mass, " "))
	}
	if len(n.FixedDofs) > 0 {
		cmd += fmt.Sprintf("\nfix %d %s", n.Id, model.Flags(n.FixedDofs, " "))
	}
	return cmd
}

func (n *Node) ToPy() string {
	cmd := fmt.Sprintf("ops.node(%d, %s)", n.Id, model.Floats(n.Coordinates, ", "))
	if len(n.Mass) > 0 {
		cmd += fmt.Sprintf("\nops.mass(%d, %s)", n.Id, model.Floats(n.Mass, ", "))
	}
	if len(n.FixedDofs) > 0 {
		cmd += fmt.Sprintf("\nops.fix(%d, %s)", n.Id, model.Flags(n.FixedDofs, ", "))
	}
	return cmd
}

type encoding struct{}

// Encoding decodes serialized nodes.
var Encoding model.Decoder[*Node] = encoding{}

func (encoding) Decode(data []byte) (*Node, error) {
	var n Node
	err := yaml.Unmarshal(data, &n)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func Decode(data []byte) (*Node, error) {
	return model.Decode(Encoding, model.NODE, data)
}

func FromDict(m map[string]interface{}) (*Node, error) {
	return model.FromDict(Encoding, model.NODE, m)
}
