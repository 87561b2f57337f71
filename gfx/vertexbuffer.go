// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "errors"

// vertex buffer errors
var (
	ErrNilDeclaration = errors.New("gfx: vertex buffer needs a declaration")
	ErrNilBuffer      = errors.New("gfx: vertex buffer needs a valid buffer")
	ErrStrideMismatch = errors.New("gfx: window length is not a multiple of the declaration stride")
)

// NewVertexBuffer creates a view over [startOffset, endOffset) of buffer,
// interpreted through declaration. The window length must be a multiple of
// the declaration stride.
func NewVertexBuffer(declaration *VertexDeclaration, buffer *Buffer, startOffset, endOffset int) (*VertexBuffer, error) {
	if declaration == nil {
		return nil, ErrNilDeclaration
	}
	if buffer == nil || !buffer.IsValid() {
		return nil, ErrNilBuffer
	}
	if startOffset < 0 || endOffset < startOffset || endOffset > buffer.Size() {
		return nil, ErrOutOfBounds
	}
	if (endOffset-startOffset)%declaration.Stride() != 0 {
		return nil, ErrStrideMismatch
	}

	return &VertexBuffer{
		buffer:      buffer,
		declaration: declaration,
		startOffset: startOffset,
		endOffset:   endOffset,
		vertexCount: (endOffset - startOffset) / declaration.Stride(),
	}, nil
}

// NewVertexBufferFor creates a buffer sized for vertexCount vertices of the
// given declaration and wraps it whole.
func NewVertexBufferFor(declaration *VertexDeclaration, device Device, vertexCount int, usage BufferUsage, storage DataStorage) (*VertexBuffer, error) {
	if declaration == nil {
		return nil, ErrNilDeclaration
	}
	buffer, err := NewBuffer(device, VertexBufferType, vertexCount*declaration.Stride(), usage, storage)
	if err != nil {
		return nil, err
	}
	return NewVertexBuffer(declaration, buffer, 0, buffer.Size())
}

// VertexBuffer is a non-owning byte window into a Buffer, interpreted
// through a shared VertexDeclaration.
type VertexBuffer struct {
	buffer      *Buffer
	declaration *VertexDeclaration

	startOffset int
	endOffset   int
	vertexCount int
}

// Fill writes data at offset bytes from the window start. Writes past the
// window end are rejected.
func (vb *VertexBuffer) Fill(data []byte, offset int, forceDiscard bool) error {
	if offset < 0 || vb.startOffset+offset+len(data) > vb.endOffset {
		return ErrOutOfBounds
	}
	return vb.buffer.Fill(data, vb.startOffset+offset, forceDiscard)
}

// FillVertices writes data starting at the given vertex index, translating
// the index range into bytes through the declaration stride.
func (vb *VertexBuffer) FillVertices(data []byte, startVertex int, forceDiscard bool) error {
	if startVertex < 0 || startVertex > vb.vertexCount {
		return ErrOutOfBounds
	}
	return vb.Fill(data, startVertex*vb.declaration.Stride(), forceDiscard)
}

// Map returns a byte window over [offset, offset+size) relative to the
// window start.
func (vb *VertexBuffer) Map(access BufferAccess, offset, size int) ([]byte, error) {
	if offset < 0 || size < 0 || vb.startOffset+offset+size > vb.endOffset {
		return nil, ErrOutOfBounds
	}
	return vb.buffer.Map(access, vb.startOffset+offset, size)
}

// MapVertices maps count vertices starting at startVertex.
func (vb *VertexBuffer) MapVertices(access BufferAccess, startVertex, count int) ([]byte, error) {
	if startVertex < 0 || count < 0 || startVertex+count > vb.vertexCount {
		return nil, ErrOutOfBounds
	}
	stride := vb.declaration.Stride()
	return vb.Map(access, startVertex*stride, count*stride)
}

// Unmap invalidates the window returned by the previous Map/MapVertices.
func (vb *VertexBuffer) Unmap() error {
	return vb.buffer.Unmap()
}

// SetDeclaration swaps the declaration; the window length must remain a
// multiple of the new stride.
func (vb *VertexBuffer) SetDeclaration(declaration *VertexDeclaration) error {
	if declaration == nil {
		return ErrNilDeclaration
	}
	if (vb.endOffset-vb.startOffset)%declaration.Stride() != 0 {
		return ErrStrideMismatch
	}
	vb.declaration = declaration
	vb.vertexCount = (vb.endOffset - vb.startOffset) / declaration.Stride()
	return nil
}

// SetStorage migrates the underlying buffer to a different storage.
func (vb *VertexBuffer) SetStorage(device Device, storage DataStorage) error {
	return vb.buffer.SetStorage(device, storage)
}

// Buffer returns the underlying buffer.
func (vb *VertexBuffer) Buffer() *Buffer {
	return vb.buffer
}

// Declaration returns the shared vertex declaration.
func (vb *VertexBuffer) Declaration() *VertexDeclaration {
	return vb.declaration
}

// Stride returns the declaration stride.
func (vb *VertexBuffer) Stride() int {
	return vb.declaration.Stride()
}

// StartOffset returns the window start in bytes.
func (vb *VertexBuffer) StartOffset() int {
	return vb.startOffset
}

// EndOffset returns the window end in bytes.
func (vb *VertexBuffer) EndOffset() int {
	return vb.endOffset
}

// VertexCount returns the number of whole vertices in the window.
func (vb *VertexBuffer) VertexCount() int {
	return vb.vertexCount
}

// IsHardware reports whether the underlying buffer lives in device memory.
func (vb *VertexBuffer) IsHardware() bool {
	return vb.buffer.HasStorage(HardwareStorage)
}
