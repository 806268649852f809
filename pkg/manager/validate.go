package manager

import (
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/stage"
)

var referenceNames = map[model.ObjectType]string{
	model.NODE:               "node",
	model.ELEMENT:            "element",
	model.MATERIAL:           "material",
	model.SECTION:            "section",
	model.LOAD:               "load",
	model.BOUNDARY_CONDITION: "boundary condition",
}

// Validate validates all objects and the references between them.
// Every object is validated, the detailed results are kept as
// validation messages on the objects. Reference problems are
// reported on the referring object.
func (m *ModelManager) Validate() bool {
	valid := true
	for _, typ := range Categories {
		for _, o := range m.Objects(typ) {
			valid = o.Validate() && valid
		}
	}

	for _, e := range m.elements.All() {
		valid = m.checkRefs(e, model.NODE, e.GetNodes()...) && valid
		if id := e.GetMaterialId(); id != nil {
			valid = m.checkRefs(e, model.MATERIAL, *id) && valid
		}
		if id := e.GetSectionId(); id != nil {
			valid = m.checkRefs(e, model.SECTION, *id) && valid
		}
	}
	for _, s := range m.sections.All() {
		valid = m.checkRefs(s, model.MATERIAL, s.GetMaterialIds()...) && valid
	}
	for _, c := range m.constraints.All() {
		valid = m.checkRefs(c, model.NODE, c.GetNodeIds()...) && valid
	}
	for _, l := range m.loads.All() {
		valid = m.checkRefs(l, model.NODE, l.GetNodeIds()...) && valid
		valid = m.checkRefs(l, model.ELEMENT, l.GetElementIds()...) && valid
		if p, ok := l.(interface{ GetLoadIds() []int }); ok {
			valid = m.checkRefs(l, model.LOAD, p.GetLoadIds()...) && valid
		}
	}
	for _, s := range m.stages.AllStages() {
		valid = m.checkStage(s) && valid
	}
	for _, c := range m.stages.Cycles() {
		valid = false
		path := stage.CyclePath(c)
		for _, id := range c[:len(c)-1] {
			m.stages.GetStage(id).AddValidationMessage("Stage parent cycle detected: %s", path)
		}
	}
	if !valid {
		log.Debug("model {{model}} is invalid", "model", m.uid)
	}
	return valid
}

func (m *ModelManager) checkStage(s *stage.Stage) bool {
	valid := m.checkRefs(s, model.NODE, s.ActiveNodes.List()...)
	valid = m.checkRefs(s, model.ELEMENT, s.ActiveElements.List()...) && valid
	valid = m.checkRefs(s, model.LOAD, s.ActiveLoads.List()...) && valid
	valid = m.checkRefs(s, model.BOUNDARY_CONDITION, s.ActiveBoundaryConditions.List()...) && valid
	if p := s.ParentStageId; p != nil && m.stages.GetStage(*p) == nil {
		s.AddValidationMessage("Parent stage %d does not exist", *p)
		valid = false
	}
	return valid
}

// checkRefs adds a message for every id not found in the given category.
func (m *ModelManager) checkRefs(o model.Object, typ model.ObjectType, ids ...int) bool {
	valid := true
	for _, id := range ids {
		if !m.Has(typ, id) {
			o.AddValidationMessage("Referenced %s %d does not exist", referenceNames[typ], id)
			valid = false
		}
	}
	return valid
}

// Invalid provides all objects with validation messages
// in category order.
func (m *ModelManager) Invalid() []model.Object {
	var list []model.Object
	for _, typ := range Categories {
		for _, o := range m.Objects(typ) {
			if !o.IsValid() {
				list = append(list, o)
			}
		}
	}
	return list
}
