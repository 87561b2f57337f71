// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"testing"

	"github.com/515760058/NazaraEngine/gfx"
	vk "github.com/devblok/vulkan"
)

var testMemoryTypes = []memoryType{
	{propertyFlags: vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit), heapIndex: 0},
	{propertyFlags: vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit), heapIndex: 1},
	{propertyFlags: vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit), heapIndex: 1},
	{propertyFlags: vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit | vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit), heapIndex: 0},
}

func TestFindMemoryTypePicksFirstMatch(t *testing.T) {
	wanted := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	idx, err := findMemoryType(testMemoryTypes, 0xFFFFFFFF, wanted)
	if err != nil {
		t.Fatal(err)
	}
	if idx != 2 {
		t.Errorf("expected type 2, got %d", idx)
	}
}

func TestFindMemoryTypeHonoursTypeBits(t *testing.T) {
	wanted := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	idx, err := findMemoryType(testMemoryTypes, 1<<3, wanted)
	if err != nil {
		t.Fatal(err)
	}
	if idx != 3 {
		t.Errorf("expected type 3, got %d", idx)
	}
}

func TestFindMemoryTypeRequiresAllProperties(t *testing.T) {
	wanted := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCachedBit)
	if _, err := findMemoryType(testMemoryTypes, 0xFFFFFFFF, wanted); err != ErrNoSuitableMemoryType {
		t.Errorf("expected ErrNoSuitableMemoryType, got %v", err)
	}
}

func TestFindMemoryTypeEmptyTable(t *testing.T) {
	if _, err := findMemoryType(nil, 0xFFFFFFFF, 0); err != ErrNoSuitableMemoryType {
		t.Errorf("expected ErrNoSuitableMemoryType, got %v", err)
	}
}

func TestBufferUsageFlagsByType(t *testing.T) {
	cases := []struct {
		typ  gfx.BufferType
		want vk.BufferUsageFlags
	}{
		{gfx.VertexBufferType, vk.BufferUsageFlags(vk.BufferUsageVertexBufferBit)},
		{gfx.IndexBufferType, vk.BufferUsageFlags(vk.BufferUsageIndexBufferBit)},
		{gfx.UniformBufferType, vk.BufferUsageFlags(vk.BufferUsageUniformBufferBit)},
	}
	for _, c := range cases {
		if got := bufferUsageFlags(c.typ); got != c.want {
			t.Errorf("type %d: expected %b, got %b", c.typ, c.want, got)
		}
	}
}
