// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// newSoftwareBuffer creates storage backed by system memory.
func newSoftwareBuffer(size int) *softwareBuffer {
	return &softwareBuffer{
		data: make([]byte, size),
	}
}

// softwareBuffer keeps buffer contents in system memory. It backs
// SoftwareStorage buffers and serves as the staging source when contents
// migrate to a hardware implementation.
type softwareBuffer struct {
	data   []byte
	mapped bool
}

// Fill implements AbstractBuffer
func (s *softwareBuffer) Fill(data []byte, offset int, forceDiscard bool) error {
	if s.data == nil {
		return ErrInvalidBuffer
	}
	copy(s.data[offset:], data)
	return nil
}

// Map implements AbstractBuffer
func (s *softwareBuffer) Map(access BufferAccess, offset, size int) ([]byte, error) {
	if s.data == nil {
		return nil, ErrInvalidBuffer
	}
	if s.mapped {
		return nil, ErrAlreadyMapped
	}
	s.mapped = true
	return s.data[offset : offset+size], nil
}

// Unmap implements AbstractBuffer
func (s *softwareBuffer) Unmap() error {
	if !s.mapped {
		return ErrNotMapped
	}
	s.mapped = false
	return nil
}

// Storage implements AbstractBuffer
func (s *softwareBuffer) Storage() DataStorage {
	return SoftwareStorage
}

// Release implements Releasable
func (s *softwareBuffer) Release() {
	s.data = nil
	s.mapped = false
}
