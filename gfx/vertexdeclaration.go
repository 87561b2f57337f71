// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "errors"

// declaration errors
var (
	ErrEmptyDeclaration      = errors.New("gfx: declaration needs at least one component")
	ErrComponentOverlap      = errors.New("gfx: component offsets must be monotonic and non-overlapping")
	ErrDuplicateComponent    = errors.New("gfx: component already declared for this semantic")
	ErrComponentIndexIgnored = errors.New("gfx: only userdata components can carry an index")
)

// VertexComponent identifies the semantic of a vertex attribute.
type VertexComponent int

// Supported vertex semantics
const (
	PositionComponent VertexComponent = iota
	NormalComponent
	TexCoordComponent
	ColorComponent
	TangentComponent

	// UserdataComponent is an application-defined slot; several may be
	// declared as long as their indexes differ.
	UserdataComponent
)

// ComponentType is the scalar/vector type of a vertex attribute.
type ComponentType int

// Supported component types
const (
	Float1 ComponentType = iota
	Float2
	Float3
	Float4
	Int1
	Int2
	Int3
	Int4
	Byte4
)

// ByteSize returns the packed byte size of the component type.
func (t ComponentType) ByteSize() int {
	switch t {
	case Float1, Int1, Byte4:
		return 4
	case Float2, Int2:
		return 8
	case Float3, Int3:
		return 12
	case Float4, Int4:
		return 16
	}
	return 0
}

// VertexInputRate tells how often the declaration advances.
type VertexInputRate int

// Supported input rates
const (
	PerVertexInputRate VertexInputRate = iota
	PerInstanceInputRate
)

// Component is one attribute record inside a VertexDeclaration.
type Component struct {
	Component VertexComponent
	Index     int
	Type      ComponentType
	Offset    int
}

// NewVertexDeclaration builds a declaration from an ordered component list.
// Offsets must be monotonic and non-overlapping, and only one component per
// (semantic, index) pair may exist; only userdata components may use a
// non-zero index. The stride is the end of the last component.
func NewVertexDeclaration(rate VertexInputRate, components ...Component) (*VertexDeclaration, error) {
	if len(components) == 0 {
		return nil, ErrEmptyDeclaration
	}

	end := 0
	for _, c := range components {
		if c.Index != 0 && c.Component != UserdataComponent {
			return nil, ErrComponentIndexIgnored
		}
		if c.Offset < end {
			return nil, ErrComponentOverlap
		}
		end = c.Offset + c.Type.ByteSize()
	}

	for i, c := range components {
		for _, o := range components[:i] {
			if o.Component == c.Component && o.Index == c.Index {
				return nil, ErrDuplicateComponent
			}
		}
	}

	decl := &VertexDeclaration{
		components: make([]Component, len(components)),
		stride:     end,
		inputRate:  rate,
	}
	copy(decl.components, components)
	return decl, nil
}

// VertexDeclaration describes the typed layout of vertex data stored in a
// Buffer. Declarations are immutable once built and may be shared by any
// number of VertexBuffer views.
type VertexDeclaration struct {
	components []Component
	stride     int
	inputRate  VertexInputRate
}

// FindComponent returns the component carrying the given semantic, or nil
// when the declaration does not contain it. Optional attributes are treated
// as absent, not as an error.
func (vd *VertexDeclaration) FindComponent(component VertexComponent, index int) *Component {
	for i := range vd.components {
		if vd.components[i].Component == component && vd.components[i].Index == index {
			return &vd.components[i]
		}
	}
	return nil
}

// HasComponent reports whether the declaration contains the given semantic.
func (vd *VertexDeclaration) HasComponent(component VertexComponent, index int) bool {
	return vd.FindComponent(component, index) != nil
}

// Component returns the i-th component record.
func (vd *VertexDeclaration) Component(i int) Component {
	return vd.components[i]
}

// ComponentCount returns the number of declared components.
func (vd *VertexDeclaration) ComponentCount() int {
	return len(vd.components)
}

// Stride returns the byte distance between two consecutive vertices.
func (vd *VertexDeclaration) Stride() int {
	return vd.stride
}

// InputRate returns the declared input rate.
func (vd *VertexDeclaration) InputRate() VertexInputRate {
	return vd.inputRate
}

// VertexLayout names a standard, process-wide shared declaration.
type VertexLayout int

// Standard layouts
const (
	LayoutXYZ VertexLayout = iota
	LayoutXYZColor
	LayoutXYZNormal
	LayoutXYZNormalUV
	LayoutXYZNormalUVTangent
	LayoutXYZUV

	layoutMax
)

var declarations [layoutMax]*VertexDeclaration

func init() {
	mustDeclare := func(layout VertexLayout, components ...Component) {
		decl, err := NewVertexDeclaration(PerVertexInputRate, components...)
		if err != nil {
			panic(err)
		}
		declarations[layout] = decl
	}

	mustDeclare(LayoutXYZ,
		Component{Component: PositionComponent, Type: Float3, Offset: 0})
	mustDeclare(LayoutXYZColor,
		Component{Component: PositionComponent, Type: Float3, Offset: 0},
		Component{Component: ColorComponent, Type: Float4, Offset: 12})
	mustDeclare(LayoutXYZNormal,
		Component{Component: PositionComponent, Type: Float3, Offset: 0},
		Component{Component: NormalComponent, Type: Float3, Offset: 12})
	mustDeclare(LayoutXYZNormalUV,
		Component{Component: PositionComponent, Type: Float3, Offset: 0},
		Component{Component: NormalComponent, Type: Float3, Offset: 12},
		Component{Component: TexCoordComponent, Type: Float2, Offset: 24})
	mustDeclare(LayoutXYZNormalUVTangent,
		Component{Component: PositionComponent, Type: Float3, Offset: 0},
		Component{Component: NormalComponent, Type: Float3, Offset: 12},
		Component{Component: TexCoordComponent, Type: Float2, Offset: 24},
		Component{Component: TangentComponent, Type: Float3, Offset: 32})
	mustDeclare(LayoutXYZUV,
		Component{Component: PositionComponent, Type: Float3, Offset: 0},
		Component{Component: TexCoordComponent, Type: Float2, Offset: 12})
}

// Declaration returns the shared declaration for a standard layout.
// The same pointer is handed out for the whole process lifetime.
func Declaration(layout VertexLayout) *VertexDeclaration {
	return declarations[layout]
}
