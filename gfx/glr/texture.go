// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"github.com/515760058/NazaraEngine/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
)

func glTextureTarget(typ gfx.TextureType) uint32 {
	switch typ {
	case gfx.Texture1D:
		return gl.TEXTURE_1D
	case gfx.Texture3D:
		return gl.TEXTURE_3D
	case gfx.TextureCubemap:
		return gl.TEXTURE_CUBE_MAP
	default:
		return gl.TEXTURE_2D
	}
}

// glPixelFormat maps the engine format to internal format, upload format
// and component type.
func glPixelFormat(format gfx.PixelFormat) (internal int32, upload, typ uint32) {
	switch format {
	case gfx.FormatBGRA8:
		return gl.RGBA8, gl.BGRA, gl.UNSIGNED_BYTE
	case gfx.FormatR8:
		return gl.R8, gl.RED, gl.UNSIGNED_BYTE
	case gfx.FormatDepth16:
		return gl.DEPTH_COMPONENT16, gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT
	default:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
	}
}

// texture is the OpenGL implementation of gfx.AbstractTexture.
type texture struct {
	handle uint32
	target uint32
	info   gfx.TextureInfo
}

func newTexture(info gfx.TextureInfo) (gfx.AbstractTexture, error) {
	tex := &texture{
		target: glTextureTarget(info.Type),
		info:   info,
	}
	gl.GenTextures(1, &tex.handle)
	if tex.handle == 0 {
		return nil, gfx.ErrInvalidTexture
	}

	internal, upload, typ := glPixelFormat(info.Format)
	gl.BindTexture(tex.target, tex.handle)
	switch tex.target {
	case gl.TEXTURE_1D:
		gl.TexImage1D(tex.target, 0, internal, int32(info.Width), 0, upload, typ, nil)
	case gl.TEXTURE_3D:
		gl.TexImage3D(tex.target, 0, internal, int32(info.Width), int32(info.Height), int32(info.Depth), 0, upload, typ, nil)
	case gl.TEXTURE_CUBE_MAP:
		for face := uint32(0); face < 6; face++ {
			gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+face, 0, internal, int32(info.Width), int32(info.Height), 0, upload, typ, nil)
		}
	default:
		gl.TexImage2D(tex.target, 0, internal, int32(info.Width), int32(info.Height), 0, upload, typ, nil)
	}
	gl.TexParameteri(tex.target, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(tex.target, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return tex, nil
}

// Update implements gfx.AbstractTexture.
func (t *texture) Update(pixels []byte) error {
	if t.handle == 0 {
		return gfx.ErrInvalidTexture
	}
	_, upload, typ := glPixelFormat(t.info.Format)
	gl.BindTexture(t.target, t.handle)
	switch t.target {
	case gl.TEXTURE_1D:
		gl.TexSubImage1D(t.target, 0, 0, int32(t.info.Width), upload, typ, gl.Ptr(pixels))
	case gl.TEXTURE_3D:
		gl.TexSubImage3D(t.target, 0, 0, 0, 0, int32(t.info.Width), int32(t.info.Height), int32(t.info.Depth), upload, typ, gl.Ptr(pixels))
	case gl.TEXTURE_CUBE_MAP:
		// the cubemap target takes no uploads itself, faces do
		faceSize := len(pixels) / 6
		for face := 0; face < 6; face++ {
			gl.TexSubImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(face), 0, 0, 0,
				int32(t.info.Width), int32(t.info.Height), upload, typ, gl.Ptr(pixels[face*faceSize:]))
		}
	default:
		gl.TexSubImage2D(t.target, 0, 0, 0, int32(t.info.Width), int32(t.info.Height), upload, typ, gl.Ptr(pixels))
	}
	return nil
}

// Info implements gfx.AbstractTexture.
func (t *texture) Info() gfx.TextureInfo {
	return t.info
}

// Handle returns the GL texture object name for renderers binding it.
func (t *texture) Handle() uint32 {
	return t.handle
}

// Release implements gfx.AbstractTexture. Idempotent.
func (t *texture) Release() {
	if t.handle == 0 {
		return
	}
	gl.DeleteTextures(1, &t.handle)
	t.handle = 0
}
