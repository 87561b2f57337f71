// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"bytes"
	"testing"

	"github.com/515760058/NazaraEngine/gfx"
)

func TestFillThenMapObservesWrittenBytes(t *testing.T) {
	buffer, err := gfx.NewBuffer(nil, gfx.VertexBufferType, 256, gfx.StaticUsage, gfx.SoftwareStorage)
	if err != nil {
		t.Fatal(err)
	}
	defer buffer.Release()

	payload := make([]byte, 64)
	for i := range payload {
		payload[i] = byte(i * 3)
	}
	if err := buffer.Fill(payload, 0, false); err != nil {
		t.Fatal(err)
	}

	view, err := buffer.Map(gfx.ReadOnlyAccess, 0, 64)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(view, payload) {
		t.Error("mapped bytes do not match the written bytes")
	}
	if err := buffer.Unmap(); err != nil {
		t.Error(err)
	}
}

func TestFillAtOffset(t *testing.T) {
	buffer, err := gfx.NewBuffer(nil, gfx.IndexBufferType, 32, gfx.DynamicUsage, gfx.SoftwareStorage)
	if err != nil {
		t.Fatal(err)
	}
	defer buffer.Release()

	if err := buffer.Fill([]byte{1, 2, 3, 4}, 8, false); err != nil {
		t.Fatal(err)
	}

	view, err := buffer.Map(gfx.ReadOnlyAccess, 8, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(view, []byte{1, 2, 3, 4}) {
		t.Errorf("unexpected bytes at offset: %v", view)
	}
	buffer.Unmap()
}

func TestFillBounds(t *testing.T) {
	buffer, err := gfx.NewBuffer(nil, gfx.VertexBufferType, 16, gfx.StaticUsage, gfx.SoftwareStorage)
	if err != nil {
		t.Fatal(err)
	}
	defer buffer.Release()

	if err := buffer.Fill(make([]byte, 8), 12, false); err != gfx.ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if err := buffer.Fill(make([]byte, 4), -1, false); err != gfx.ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestMapDiscipline(t *testing.T) {
	buffer, err := gfx.NewBuffer(nil, gfx.VertexBufferType, 64, gfx.StaticUsage, gfx.SoftwareStorage)
	if err != nil {
		t.Fatal(err)
	}
	defer buffer.Release()

	if _, err := buffer.Map(gfx.ReadWriteAccess, 0, 64); err != nil {
		t.Fatal(err)
	}
	if _, err := buffer.Map(gfx.ReadWriteAccess, 0, 16); err != gfx.ErrAlreadyMapped {
		t.Errorf("second map should be rejected, got %v", err)
	}
	if err := buffer.Unmap(); err != nil {
		t.Fatal(err)
	}
	if err := buffer.Unmap(); err != gfx.ErrNotMapped {
		t.Errorf("unmap while not mapped should be rejected, got %v", err)
	}

	// map-unmap-map cycles keep working
	if _, err := buffer.Map(gfx.ReadOnlyAccess, 16, 16); err != nil {
		t.Fatal(err)
	}
	if err := buffer.Unmap(); err != nil {
		t.Fatal(err)
	}
}

func TestFillWhileMappedRejected(t *testing.T) {
	buffer, err := gfx.NewBuffer(nil, gfx.VertexBufferType, 64, gfx.StaticUsage, gfx.SoftwareStorage)
	if err != nil {
		t.Fatal(err)
	}
	defer buffer.Release()

	if _, err := buffer.Map(gfx.ReadWriteAccess, 0, 64); err != nil {
		t.Fatal(err)
	}
	if err := buffer.Fill([]byte{1}, 0, false); err != gfx.ErrAlreadyMapped {
		t.Errorf("fill while mapped should be rejected, got %v", err)
	}
	buffer.Unmap()
}

func TestInvalidBufferRejectsEverything(t *testing.T) {
	buffer, err := gfx.NewBuffer(nil, gfx.VertexBufferType, 16, gfx.StaticUsage, gfx.SoftwareStorage)
	if err != nil {
		t.Fatal(err)
	}
	buffer.Release()

	if buffer.IsValid() {
		t.Error("buffer should be invalid after Release")
	}
	if err := buffer.Fill([]byte{1}, 0, false); err != gfx.ErrInvalidBuffer {
		t.Errorf("expected ErrInvalidBuffer, got %v", err)
	}
	if _, err := buffer.Map(gfx.ReadOnlyAccess, 0, 1); err != gfx.ErrInvalidBuffer {
		t.Errorf("expected ErrInvalidBuffer, got %v", err)
	}

	// releasing twice is a no-op
	buffer.Release()
}

func TestHardwareStorageNeedsDevice(t *testing.T) {
	if _, err := gfx.NewBuffer(nil, gfx.VertexBufferType, 16, gfx.StaticUsage, gfx.HardwareStorage); err != gfx.ErrNoDevice {
		t.Errorf("expected ErrNoDevice, got %v", err)
	}
}

func TestStorageMigration(t *testing.T) {
	device := &mockDevice{}

	buffer, err := gfx.NewBuffer(nil, gfx.VertexBufferType, 32, gfx.StaticUsage, gfx.SoftwareStorage)
	if err != nil {
		t.Fatal(err)
	}
	defer buffer.Release()

	payload := []byte("0123456789abcdefghijklmnopqrstuv")
	if err := buffer.Fill(payload, 0, false); err != nil {
		t.Fatal(err)
	}

	if err := buffer.SetStorage(device, gfx.HardwareStorage); err != nil {
		t.Fatal(err)
	}
	if !buffer.HasStorage(gfx.HardwareStorage) {
		t.Fatal("buffer should report hardware storage after migration")
	}
	if device.liveBuffers != 1 {
		t.Fatalf("expected one live backend buffer, have %d", device.liveBuffers)
	}

	view, err := buffer.Map(gfx.ReadOnlyAccess, 0, len(payload))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(view, payload) {
		t.Error("contents were not preserved across storage migration")
	}
	buffer.Unmap()

	// migrating to the storage already in use is a no-op
	if err := buffer.SetStorage(device, gfx.HardwareStorage); err != nil {
		t.Fatal(err)
	}
	if device.liveBuffers != 1 {
		t.Errorf("no-op migration should not allocate, have %d live buffers", device.liveBuffers)
	}
}

func TestStorageMigrationFailureKeepsOldStorage(t *testing.T) {
	device := &mockDevice{failCreate: true}

	buffer, err := gfx.NewBuffer(nil, gfx.VertexBufferType, 16, gfx.StaticUsage, gfx.SoftwareStorage)
	if err != nil {
		t.Fatal(err)
	}
	defer buffer.Release()

	payload := []byte("0123456789abcdef")
	if err := buffer.Fill(payload, 0, false); err != nil {
		t.Fatal(err)
	}

	if err := buffer.SetStorage(device, gfx.HardwareStorage); err == nil {
		t.Fatal("migration should fail when the backend rejects creation")
	}
	if !buffer.HasStorage(gfx.SoftwareStorage) {
		t.Error("failed migration must keep the previous storage")
	}

	view, err := buffer.Map(gfx.ReadOnlyAccess, 0, len(payload))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(view, payload) {
		t.Error("failed migration must keep the previous contents")
	}
	buffer.Unmap()
}

func TestNoLeakedHandles(t *testing.T) {
	device := &mockDevice{}

	buffer, err := gfx.NewBuffer(device, gfx.VertexBufferType, 256, gfx.StaticUsage, gfx.HardwareStorage)
	if err != nil {
		t.Fatal(err)
	}

	payload := make([]byte, 64)
	for i := range payload {
		payload[i] = byte(255 - i)
	}
	if err := buffer.Fill(payload, 0, false); err != nil {
		t.Fatal(err)
	}

	view, err := buffer.Map(gfx.ReadOnlyAccess, 0, 64)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(view, payload) {
		t.Error("mapped bytes do not match the written bytes")
	}
	if err := buffer.Unmap(); err != nil {
		t.Fatal(err)
	}
	buffer.Release()

	if device.liveBuffers != 0 {
		t.Errorf("leaked %d backend buffer handles", device.liveBuffers)
	}
}

func BenchmarkBufferFill(b *testing.B) {
	buffer, err := gfx.NewBuffer(nil, gfx.VertexBufferType, 1<<16, gfx.DynamicUsage, gfx.SoftwareStorage)
	if err != nil {
		b.Fatal(err)
	}
	defer buffer.Release()

	payload := make([]byte, 1<<16)
	b.ResetTimer()
	for idx := 0; idx < b.N; idx++ {
		buffer.Fill(payload, 0, true)
	}
}
