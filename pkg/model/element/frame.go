package element

import (
	"fmt"
	"slices"
)

const (
	FRAME               = "FrameElement"
	ELASTIC_BEAM_COLUMN = "ElasticBeamColumn"
	DISP_BEAM_COLUMN    = "DispBeamColumn"
)

const (
	TRANSFORM_LINEAR       = "Linear"
	TRANSFORM_PDELTA       = "PDelta"
	TRANSFORM_COROTATIONAL = "Corotational"
)

var GeometricTransformations = []string{TRANSFORM_LINEAR, TRANSFORM_PDELTA, TRANSFORM_COROTATIONAL}

const DefaultIntegrationPoints = 5

// Frame covers beam and column elements.
type Frame struct {
	Base                 `json:",inline"`
	GeomTransformType    string   `json:"geom_transform_type"`
	MassPerUnitLength    *float64 `json:"mass_per_unit_length"`
	NumIntegrationPoints int      `json:"num_integration_points"`
}

var _ Element = (*Frame)(nil)

func (f *Frame) Default() {
	f.GeomTransformType = TRANSFORM_LINEAR
	f.NumIntegrationPoints = DefaultIntegrationPoints
}

func (f *Frame) Validate() bool {
	f.validateBase()
	if len(f.Nodes) != 2 {
		f.AddValidationMessage("Frame element must have exactly 2 nodes")
	}
	if f.MaterialId == nil {
		f.AddValidationMessage("Frame element must have a material assigned")
	}
	if f.SectionId == nil {
		f.AddValidationMessage("Frame element must have a section assigned")
	}
	if !slices.Contains(GeometricTransformations, f.GeomTransformType) {
		f.AddValidationMessage("Geometric transformation type must be one of [Linear PDelta Corotational], got %s", f.GeomTransformType)
	}
	if f.ElementType == DISP_BEAM_COLUMN && f.NumIntegrationPoints < 2 {
		f.AddValidationMessage("Displacement-based beam-column must have at least 2 integration points")
	}
	return f.ValidationResult()
}

func (f *Frame) ToTcl() string {
	switch f.ElementType {
	case ELASTIC_BEAM_COLUMN:
		return fmt.Sprintf("element elasticBeamColumn %d %s $secTag%s $transfTag%d", f.Id, f.nodes(" "), f.section(), f.TransformationId())
	case DISP_BEAM_COLUMN:
		return fmt.Sprintf("element dispBeamColumn %d %s %d $secTag%s $transfTag%d", f.Id, f.nodes(" "), f.NumIntegrationPoints, f.section(), f.TransformationId())
	}
	return fmt.Sprintf("# Frame element %d with nodes %s", f.Id, f.nodes(" "))
}

func (f *Frame) ToPy() string {
	switch f.ElementType {
	case ELASTIC_BEAM_COLUMN:
		return fmt.Sprintf("ops.element('elasticBeamColumn', %d, %s, secTag%s, transfTag%d)", f.Id, f.nodes(", "), f.section(), f.TransformationId())
	case DISP_BEAM_COLUMN:
		return fmt.Sprintf("ops.element('dispBeamColumn', %d, %s, %d, secTag%s, transfTag%d)", f.Id, f.nodes(", "), f.NumIntegrationPoints, f.section(), f.TransformationId())
	}
	return fmt.Sprintf("# Frame element %d with nodes %s", f.Id, f.nodes(", "))
}

func WithGeometricTransformation(t string) Initializer {
	return func(e Element) {
		if f, ok := e.(*Frame); ok {
			f.GeomTransformType = t
		}
	}
}

func WithIntegrationPoints(n int) Initializer {
	return func(e Element) {
		if f, ok := e.(*Frame); ok {
			f.NumIntegrationPoints = n
		}
	}
}
