// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"github.com/515760058/NazaraEngine/gfx"
	vk "github.com/devblok/vulkan"
)

func nativeFormat(format gfx.PixelFormat) vk.Format {
	switch format {
	case gfx.FormatBGRA8:
		return vk.FormatB8g8r8a8Unorm
	case gfx.FormatR8:
		return vk.FormatR8Unorm
	case gfx.FormatDepth16:
		return vk.FormatD16Unorm
	default:
		return vk.FormatR8g8b8a8Unorm
	}
}

func nativeImageType(typ gfx.TextureType) vk.ImageType {
	switch typ {
	case gfx.Texture1D:
		return vk.ImageType1d
	case gfx.Texture3D:
		return vk.ImageType3d
	default:
		return vk.ImageType2d
	}
}

// texture is the vulkan implementation of gfx.AbstractTexture. The image
// uses linear tiling and host-visible memory so Update can write texels
// directly; sampled use goes through a layout transition by the renderer.
type texture struct {
	image *Image
	info  gfx.TextureInfo
}

func newTexture(device *Device, info gfx.TextureInfo) (gfx.AbstractTexture, error) {
	createInfo := vk.ImageCreateInfo{
		SType:     vk.StructureTypeImageCreateInfo,
		ImageType: nativeImageType(info.Type),
		Format:    nativeFormat(info.Format),
		Extent: vk.Extent3D{
			Width:  uint32(info.Width),
			Height: uint32(info.Height),
			Depth:  uint32(info.Depth),
		},
		MipLevels:     uint32(info.MipLevels),
		ArrayLayers:   1,
		Samples:       vk.SampleCount1Bit,
		Tiling:        vk.ImageTilingLinear,
		Usage:         vk.ImageUsageFlags(vk.ImageUsageTransferSrcBit | vk.ImageUsageSampledBit),
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutPreinitialized,
	}
	if info.Type == gfx.TextureCubemap {
		createInfo.Flags = vk.ImageCreateFlags(vk.ImageCreateCubeCompatibleBit)
		createInfo.ArrayLayers = 6
	}

	image, err := NewImage(device, createInfo)
	if err != nil {
		return nil, err
	}
	properties := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	if err := image.AllocateAndBind(properties); err != nil {
		image.Release()
		return nil, err
	}
	return &texture{image: image, info: info}, nil
}

// Update implements gfx.AbstractTexture.
func (t *texture) Update(pixels []byte) error {
	if t.image == nil || !t.image.IsValid() {
		return gfx.ErrInvalidTexture
	}
	memory := t.image.Memory()
	if err := memory.Map(0, vk.DeviceSize(len(pixels))); err != nil {
		return err
	}
	copy(memory.MappedBytes(), pixels)
	return memory.Unmap()
}

// Info implements gfx.AbstractTexture.
func (t *texture) Info() gfx.TextureInfo {
	return t.info
}

// Image exposes the underlying image for renderers that need to build
// views or record layout transitions.
func (t *texture) Image() *Image {
	return t.image
}

// Release implements gfx.AbstractTexture. Idempotent.
func (t *texture) Release() {
	if t.image != nil {
		t.image.Release()
		t.image = nil
	}
}
