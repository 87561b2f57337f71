// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "errors"

// package errors
var (
	ErrInvalidBuffer = errors.New("gfx: buffer has no storage implementation")
	ErrOutOfBounds   = errors.New("gfx: range exceeds buffer bounds")
	ErrAlreadyMapped = errors.New("gfx: buffer is already mapped")
	ErrNotMapped     = errors.New("gfx: buffer is not mapped")
	ErrNoDevice      = errors.New("gfx: hardware storage requires a device")
)

// AbstractBuffer is the storage contract a backend fulfils for a Buffer.
// Bounds are validated by the owning Buffer, implementations may assume
// ranges are in bounds.
type AbstractBuffer interface {
	Releasable

	// Fill writes data at offset bytes into the storage. forceDiscard
	// tells a hardware backend it may drop prior contents instead of
	// preserving unwritten regions.
	Fill(data []byte, offset int, forceDiscard bool) error

	// Map returns a byte window over [offset, offset+size), valid until
	// the matching Unmap.
	Map(access BufferAccess, offset, size int) ([]byte, error)

	// Unmap invalidates the window returned by Map.
	Unmap() error

	// Storage reports where the bytes live.
	Storage() DataStorage
}

// NewBuffer creates a buffer of size bytes with the requested storage.
// device may be nil for SoftwareStorage.
func NewBuffer(device Device, typ BufferType, size int, usage BufferUsage, storage DataStorage) (*Buffer, error) {
	if size <= 0 {
		return nil, ErrOutOfBounds
	}

	b := &Buffer{
		device: device,
		size:   size,
		typ:    typ,
		usage:  usage,
	}

	impl, err := b.newImpl(storage)
	if err != nil {
		return nil, err
	}
	b.impl = impl
	return b, nil
}

// Buffer is a storage-agnostic byte buffer. It owns at most one backend
// implementation; a buffer with no implementation is invalid and rejects
// every operation with ErrInvalidBuffer.
type Buffer struct {
	impl   AbstractBuffer
	device Device

	size   int
	typ    BufferType
	usage  BufferUsage
	mapped bool
}

func (b *Buffer) newImpl(storage DataStorage) (AbstractBuffer, error) {
	switch storage {
	case SoftwareStorage:
		return newSoftwareBuffer(b.size), nil
	case HardwareStorage:
		if b.device == nil {
			return nil, ErrNoDevice
		}
		return b.device.NewBuffer(b.typ, b.size, b.usage)
	}
	return nil, errors.New("gfx: unknown data storage")
}

// Fill writes data at offset bytes. The write is rejected when it would
// run past the declared size or while a mapped window is outstanding.
func (b *Buffer) Fill(data []byte, offset int, forceDiscard bool) error {
	if b.impl == nil {
		return ErrInvalidBuffer
	}
	if b.mapped {
		return ErrAlreadyMapped
	}
	if offset < 0 || offset+len(data) > b.size {
		return ErrOutOfBounds
	}
	return b.impl.Fill(data, offset, forceDiscard)
}

// Map returns a byte window over [offset, offset+size). Only one mapped
// window may be live at a time; it stays valid until Unmap.
func (b *Buffer) Map(access BufferAccess, offset, size int) ([]byte, error) {
	if b.impl == nil {
		return nil, ErrInvalidBuffer
	}
	if b.mapped {
		return nil, ErrAlreadyMapped
	}
	if offset < 0 || size < 0 || offset+size > b.size {
		return nil, ErrOutOfBounds
	}
	view, err := b.impl.Map(access, offset, size)
	if err != nil {
		return nil, err
	}
	b.mapped = true
	return view, nil
}

// Unmap invalidates the window returned by the previous Map.
func (b *Buffer) Unmap() error {
	if b.impl == nil {
		return ErrInvalidBuffer
	}
	if !b.mapped {
		return ErrNotMapped
	}
	if err := b.impl.Unmap(); err != nil {
		return err
	}
	b.mapped = false
	return nil
}

// SetStorage migrates the buffer contents to a different storage by
// re-creating the backend implementation and copying the bytes over.
// The previous implementation is kept on failure.
func (b *Buffer) SetStorage(device Device, storage DataStorage) error {
	if b.impl == nil {
		return ErrInvalidBuffer
	}
	if b.mapped {
		return ErrAlreadyMapped
	}
	if device != nil {
		b.device = device
	}
	if b.impl.Storage() == storage {
		return nil
	}

	impl, err := b.newImpl(storage)
	if err != nil {
		return err
	}

	contents, err := b.impl.Map(ReadOnlyAccess, 0, b.size)
	if err != nil {
		impl.Release()
		return err
	}
	if err := impl.Fill(contents, 0, true); err != nil {
		b.impl.Unmap()
		impl.Release()
		return err
	}
	if err := b.impl.Unmap(); err != nil {
		impl.Release()
		return err
	}

	b.impl.Release()
	b.impl = impl
	return nil
}

// Impl returns the backend implementation, nil for an invalid buffer.
func (b *Buffer) Impl() AbstractBuffer {
	return b.impl
}

// IsValid reports whether the buffer has a storage implementation.
func (b *Buffer) IsValid() bool {
	return b.impl != nil
}

// Size returns the declared byte size.
func (b *Buffer) Size() int {
	return b.size
}

// Type returns the declared buffer type.
func (b *Buffer) Type() BufferType {
	return b.typ
}

// Usage returns the declared usage hint.
func (b *Buffer) Usage() BufferUsage {
	return b.usage
}

// Storage reports where the bytes currently live.
func (b *Buffer) Storage() DataStorage {
	if b.impl == nil {
		return SoftwareStorage
	}
	return b.impl.Storage()
}

// HasStorage reports whether the buffer currently uses the given storage.
func (b *Buffer) HasStorage(storage DataStorage) bool {
	return b.impl != nil && b.impl.Storage() == storage
}

// Release frees the backend implementation. The buffer is invalid afterwards.
func (b *Buffer) Release() {
	if b.impl == nil {
		return
	}
	if b.mapped {
		b.impl.Unmap()
		b.mapped = false
	}
	b.impl.Release()
	b.impl = nil
}
