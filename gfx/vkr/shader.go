// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"github.com/515760058/NazaraEngine/core"
	"github.com/515760058/NazaraEngine/gfx"
	vk "github.com/devblok/vulkan"
)

// ShaderModule wraps a compiled SPIR-V shader module.
type ShaderModule struct {
	object[vk.ShaderModule]

	stage gfx.ShaderType
}

// NewShaderModule creates a shader module from SPIR-V bytecode. The code
// length must be a multiple of four bytes.
func NewShaderModule(device *Device, stage gfx.ShaderType, code []byte) (*ShaderModule, error) {
	if len(code) == 0 || len(code)%4 != 0 {
		return nil, ErrBadShaderCode
	}

	module := &ShaderModule{stage: stage}
	err := module.create(device, "vk.CreateShaderModule", func(dev vk.Device) (vk.ShaderModule, vk.Result) {
		createInfo := vk.ShaderModuleCreateInfo{
			SType:    vk.StructureTypeShaderModuleCreateInfo,
			CodeSize: uint(len(code)),
			PCode:    core.SliceUint32(code),
		}
		var handle vk.ShaderModule
		result := vk.CreateShaderModule(dev, &createInfo, nil, &handle)
		return handle, result
	})
	if err != nil {
		return nil, err
	}
	return module, nil
}

// Stage returns the pipeline stage the module was created for.
func (s *ShaderModule) Stage() gfx.ShaderType {
	return s.stage
}

// StageFlag returns the native stage bit for pipeline creation.
func (s *ShaderModule) StageFlag() vk.ShaderStageFlagBits {
	switch s.stage {
	case gfx.VertexShaderType:
		return vk.ShaderStageVertexBit
	case gfx.FragmentShaderType:
		return vk.ShaderStageFragmentBit
	case gfx.GeometryShaderType:
		return vk.ShaderStageGeometryBit
	case gfx.ComputeShaderType:
		return vk.ShaderStageComputeBit
	default:
		return 0
	}
}

// Release destroys the module. Idempotent.
func (s *ShaderModule) Release() {
	s.destroy(func(dev vk.Device, handle vk.ShaderModule) {
		vk.DestroyShaderModule(dev, handle, nil)
	})
}
