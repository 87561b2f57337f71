// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"strings"
	"unsafe"

	"github.com/515760058/NazaraEngine/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
)

var glShaderStages = map[gfx.ShaderType]uint32{
	gfx.VertexShaderType:   gl.VERTEX_SHADER,
	gfx.FragmentShaderType: gl.FRAGMENT_SHADER,
	gfx.GeometryShaderType: gl.GEOMETRY_SHADER,
}

func stageName(stage gfx.ShaderType) string {
	switch stage {
	case gfx.VertexShaderType:
		return "vertex"
	case gfx.FragmentShaderType:
		return "fragment"
	case gfx.GeometryShaderType:
		return "geometry"
	case gfx.ComputeShaderType:
		return "compute"
	default:
		return "unknown"
	}
}

// Shader manages a single GL shader object through its compile lifecycle.
type Shader struct {
	handle uint32
	stage  gfx.ShaderType
	source string
}

// Create allocates a shader object for the given stage. A previously
// held handle is destroyed first, so a Shader can be recycled.
func (s *Shader) Create(stage gfx.ShaderType) error {
	glStage, ok := glShaderStages[stage]
	if !ok {
		return ErrBadShaderStage
	}
	s.Destroy()
	s.handle = gl.CreateShader(glStage)
	if s.handle == 0 {
		return ErrNoShaderHandle
	}
	s.stage = stage
	return nil
}

// SetSource uploads GLSL source to the shader object.
func (s *Shader) SetSource(source string) error {
	if s.handle == 0 {
		return ErrNoShaderHandle
	}
	if len(source) == 0 {
		return ErrEmptySource
	}
	s.source = source
	csources, free := gl.Strs(source + "\x00")
	length := int32(len(source))
	gl.ShaderSource(s.handle, 1, csources, &length)
	free()
	return nil
}

// SetBinarySource uploads a pre-compiled shader binary to the shader
// object. binaryFormat is a driver-reported format token.
func (s *Shader) SetBinarySource(binary []byte, binaryFormat uint32) error {
	if s.handle == 0 {
		return ErrNoShaderHandle
	}
	if len(binary) == 0 {
		return ErrEmptySource
	}
	handles := [1]uint32{s.handle}
	gl.ShaderBinary(1, &handles[0], binaryFormat, unsafe.Pointer(&binary[0]), int32(len(binary)))
	return nil
}

// Compile compiles the uploaded source. On failure the driver info log
// is returned inside a *CompileError.
func (s *Shader) Compile() error {
	if s.handle == 0 {
		return ErrNoShaderHandle
	}
	gl.CompileShader(s.handle)

	var status int32
	gl.GetShaderiv(s.handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(s.handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(s.handle, logLength, nil, gl.Str(log))
		return &CompileError{
			Stage: stageName(s.stage),
			Log:   strings.TrimRight(log, "\x00"),
		}
	}
	return nil
}

// Handle returns the GL shader object name, zero before Create and
// after Destroy.
func (s *Shader) Handle() uint32 {
	return s.handle
}

// IsValid reports whether the shader currently owns a GL object.
func (s *Shader) IsValid() bool {
	return s.handle != 0
}

// Stage returns the pipeline stage set by Create.
func (s *Shader) Stage() gfx.ShaderType {
	return s.stage
}

// Source returns the last source uploaded with SetSource.
func (s *Shader) Source() string {
	return s.source
}

// Destroy deletes the GL shader object. Idempotent.
func (s *Shader) Destroy() {
	if s.handle == 0 {
		return
	}
	gl.DeleteShader(s.handle)
	s.handle = 0
	s.source = ""
}
