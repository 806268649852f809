package runtime

// TypeAccessor provides access to the type discriminant
// of a serializable object.
type TypeAccessor interface {
	GetType() string
}

type Object interface {
	TypeAccessor
	SetType(string)
}

// Defaulter is implemented by objects providing default
// values for newly created instances.
type Defaulter interface {
	Default()
}
