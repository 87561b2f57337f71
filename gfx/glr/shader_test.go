// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"strings"
	"testing"

	"github.com/515760058/NazaraEngine/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
)

func TestShaderStageMapping(t *testing.T) {
	cases := []struct {
		stage gfx.ShaderType
		want  uint32
	}{
		{gfx.VertexShaderType, gl.VERTEX_SHADER},
		{gfx.FragmentShaderType, gl.FRAGMENT_SHADER},
		{gfx.GeometryShaderType, gl.GEOMETRY_SHADER},
	}
	for _, c := range cases {
		if got := glShaderStages[c.stage]; got != c.want {
			t.Errorf("stage %s: expected %#x, got %#x", stageName(c.stage), c.want, got)
		}
	}
	if _, ok := glShaderStages[gfx.ComputeShaderType]; ok {
		t.Error("compute stage must not map on the 3.3 core profile")
	}
}

func TestShaderStageRejectedWithoutHandle(t *testing.T) {
	var shader Shader
	if err := shader.SetSource("void main() {}"); err != ErrNoShaderHandle {
		t.Errorf("expected ErrNoShaderHandle, got %v", err)
	}
	if err := shader.SetBinarySource([]byte{1, 2, 3, 4}, 0); err != ErrNoShaderHandle {
		t.Errorf("expected ErrNoShaderHandle, got %v", err)
	}
	if err := shader.Compile(); err != ErrNoShaderHandle {
		t.Errorf("expected ErrNoShaderHandle, got %v", err)
	}
}

func TestShaderCreateRejectsUnknownStage(t *testing.T) {
	var shader Shader
	if err := shader.Create(gfx.UnknownShaderType); err != ErrBadShaderStage {
		t.Errorf("expected ErrBadShaderStage, got %v", err)
	}
}

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Stage: "vertex", Log: "0:1(1): error: syntax error"}
	if !strings.Contains(err.Error(), "vertex") || !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestBufferTargetMapping(t *testing.T) {
	if glBufferTarget(gfx.VertexBufferType) != gl.ARRAY_BUFFER {
		t.Error("vertex buffers must bind as GL_ARRAY_BUFFER")
	}
	if glBufferTarget(gfx.IndexBufferType) != gl.ELEMENT_ARRAY_BUFFER {
		t.Error("index buffers must bind as GL_ELEMENT_ARRAY_BUFFER")
	}
	if glBufferTarget(gfx.UniformBufferType) != gl.UNIFORM_BUFFER {
		t.Error("uniform buffers must bind as GL_UNIFORM_BUFFER")
	}
}

func TestMapAccessMapping(t *testing.T) {
	if glMapAccess(gfx.DiscardAndWriteAccess)&gl.MAP_INVALIDATE_RANGE_BIT == 0 {
		t.Error("discard access must invalidate the mapped range")
	}
	if glMapAccess(gfx.ReadOnlyAccess)&gl.MAP_WRITE_BIT != 0 {
		t.Error("read-only access must not request writing")
	}
	rw := glMapAccess(gfx.ReadWriteAccess)
	if rw&gl.MAP_READ_BIT == 0 || rw&gl.MAP_WRITE_BIT == 0 {
		t.Error("read-write access must request both directions")
	}
}
