package runtime

import (
	"sigs.k8s.io/yaml"
)

type TypeExtractor func(data []byte) (string, error)

type accessorPointer[P any] interface {
	TypeAccessor
	*P
}

// TypeExtractorFor provides a TypeExtractor reading the
// type discriminant described by the meta type O.
func TypeExtractorFor[O any, P accessorPointer[O]]() TypeExtractor {
	return func(data []byte) (string, error) {
		var meta O

		err := yaml.Unmarshal(data, &meta)
		if err != nil {
			return "", err
		}
		return P(&meta).GetType(), nil
	}
}

// Encoding provides object decoding for scheme types.
type Encoding[T Object] interface {
	SchemeTypes[T]

	Decode(data []byte) (T, error)
}

// Scheme is an encoding with registration.
type Scheme[E Object] interface {
	Encoding[E]
	TypeScheme[E]
}

type scheme[E Object] struct {
	*types[E]
	typeExtractor TypeExtractor
}

var _ Scheme[Object] = (*scheme[Object])(nil)

// NewYAMLScheme provides a scheme decoding JSON or YAML
// representations. The type extractor is used to determine the
// Go type for a serialized object.
func NewYAMLScheme[E Object](kind string, e TypeExtractor) Scheme[E] {
	return &scheme[E]{NewTypeScheme[E](kind), e}
}

func (s *scheme[E]) Decode(data []byte) (E, error) {
	var _nil E

	ty, err := s.typeExtractor(data)
	if err != nil {
		return _nil, err
	}

	v, err := s.CreateObject(ty)
	if err != nil {
		return _nil, err
	}

	err = yaml.Unmarshal(data, v)
	if err != nil {
		return _nil, err
	}
	v.SetType(ty)
	return v, nil
}
