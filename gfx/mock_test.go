// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"errors"

	"github.com/515760058/NazaraEngine/gfx"
)

// mockDevice is a hardware backend stand-in that counts live native
// handles, so tests can assert that no resource leaks past Release.
type mockDevice struct {
	liveBuffers  int
	liveTextures int
	failCreate   bool
}

var errMockCreate = errors.New("mock: creation rejected")

func (d *mockDevice) NewBuffer(typ gfx.BufferType, size int, usage gfx.BufferUsage) (gfx.AbstractBuffer, error) {
	if d.failCreate {
		return nil, errMockCreate
	}
	d.liveBuffers++
	return &mockBuffer{device: d, data: make([]byte, size)}, nil
}

func (d *mockDevice) NewTexture(info gfx.TextureInfo) (gfx.AbstractTexture, error) {
	if d.failCreate {
		return nil, errMockCreate
	}
	d.liveTextures++
	return &mockTexture{device: d, info: info}, nil
}

type mockBuffer struct {
	device   *mockDevice
	data     []byte
	mapped   bool
	discards int
}

func (b *mockBuffer) Fill(data []byte, offset int, forceDiscard bool) error {
	if forceDiscard {
		b.discards++
	}
	copy(b.data[offset:], data)
	return nil
}

func (b *mockBuffer) Map(access gfx.BufferAccess, offset, size int) ([]byte, error) {
	if b.mapped {
		return nil, gfx.ErrAlreadyMapped
	}
	b.mapped = true
	return b.data[offset : offset+size], nil
}

func (b *mockBuffer) Unmap() error {
	if !b.mapped {
		return gfx.ErrNotMapped
	}
	b.mapped = false
	return nil
}

func (b *mockBuffer) Storage() gfx.DataStorage {
	return gfx.HardwareStorage
}

func (b *mockBuffer) Release() {
	if b.data == nil {
		return
	}
	b.data = nil
	b.device.liveBuffers--
}

type mockTexture struct {
	device  *mockDevice
	info    gfx.TextureInfo
	pixels  []byte
	updates int
}

func (t *mockTexture) Update(pixels []byte) error {
	t.pixels = append(t.pixels[:0], pixels...)
	t.updates++
	return nil
}

func (t *mockTexture) Info() gfx.TextureInfo {
	return t.info
}

func (t *mockTexture) Release() {
	if t.device == nil {
		return
	}
	t.device.liveTextures--
	t.device = nil
}
