package model

import (
	"maps"
	"slices"
)

// Metadata describes a model object for humans.
type Metadata struct {
	Name             string                 `json:"name"`
	Description      string                 `json:"description,omitempty"`
	Tags             []string               `json:"tags"`
	CustomProperties map[string]interface{} `json:"custom_properties"`
}

func NewMetadata(name string, tags ...string) Metadata {
	return Metadata{
		Name:             name,
		Tags:             append([]string{}, tags...),
		CustomProperties: map[string]interface{}{},
	}
}

func (m *Metadata) AddTag(tags ...string) {
	for _, t := range tags {
		if !slices.Contains(m.Tags, t) {
			m.Tags = append(m.Tags, t)
		}
	}
}

func (m *Metadata) HasTag(tag string) bool {
	return slices.Contains(m.Tags, tag)
}

func (m *Metadata) SetCustomProperty(key string, value interface{}) {
	if m.CustomProperties == nil {
		m.CustomProperties = map[string]interface{}{}
	}
	m.CustomProperties[key] = value
}

func (m *Metadata) GetCustomProperty(key string) (interface{}, bool) {
	v, ok := m.CustomProperties[key]
	return v, ok
}

func (m Metadata) Copy() Metadata {
	m.Tags = slices.Clone(m.Tags)
	m.CustomProperties = maps.Clone(m.CustomProperties)
	return m
}
