// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "errors"

// texture errors
var (
	ErrInvalidTexture     = errors.New("gfx: texture has no backend implementation")
	ErrInvalidTextureInfo = errors.New("gfx: texture dimensions are invalid")
	ErrPixelSizeMismatch  = errors.New("gfx: pixel data does not match texture dimensions")
)

// TextureType tells the dimensionality of a texture.
type TextureType int

// Supported texture types
const (
	Texture1D TextureType = iota
	Texture2D
	Texture3D
	TextureCubemap
)

// PixelFormat is the texel format of a texture.
type PixelFormat int

// Supported pixel formats
const (
	FormatRGBA8 PixelFormat = iota
	FormatBGRA8
	FormatR8
	FormatDepth16
)

// BytesPerPixel returns the byte size of one texel.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatRGBA8, FormatBGRA8:
		return 4
	case FormatR8:
		return 1
	case FormatDepth16:
		return 2
	}
	return 0
}

// TextureInfo describes a texture at creation time. Height and Depth
// default to 1 when left zero for lower-dimensional types, as does MipLevels.
type TextureInfo struct {
	Type      TextureType
	Format    PixelFormat
	Width     int
	Height    int
	Depth     int
	MipLevels int
}

func (info *TextureInfo) normalize() error {
	if info.Height == 0 && info.Type == Texture1D {
		info.Height = 1
	}
	if info.Depth == 0 && info.Type != Texture3D {
		info.Depth = 1
	}
	if info.MipLevels == 0 {
		info.MipLevels = 1
	}
	if info.Width <= 0 || info.Height <= 0 || info.Depth <= 0 {
		return ErrInvalidTextureInfo
	}
	return nil
}

// ByteSize returns the size of a full base-level payload in bytes. A
// cubemap carries six faces, in +X,-X,+Y,-Y,+Z,-Z order.
func (info TextureInfo) ByteSize() int {
	size := info.Width * info.Height * info.Depth * info.Format.BytesPerPixel()
	if info.Type == TextureCubemap {
		size *= 6
	}
	return size
}

// AbstractTexture is the storage contract a backend fulfils for a Texture.
type AbstractTexture interface {
	Releasable

	// Update replaces the base level texel data.
	Update(pixels []byte) error

	// Info returns the creation-time description.
	Info() TextureInfo
}

// NewTexture creates a texture on the given device.
func NewTexture(device Device, info TextureInfo) (*Texture, error) {
	if device == nil {
		return nil, ErrNoDevice
	}
	if err := info.normalize(); err != nil {
		return nil, err
	}

	impl, err := device.NewTexture(info)
	if err != nil {
		return nil, err
	}
	return &Texture{impl: impl, info: info}, nil
}

// Texture is a backend-agnostic GPU image resource.
type Texture struct {
	impl AbstractTexture
	info TextureInfo
}

// Update replaces the base level texel data. The pixel slice must cover the
// full extent of the texture.
func (t *Texture) Update(pixels []byte) error {
	if t.impl == nil {
		return ErrInvalidTexture
	}
	if len(pixels) != t.info.ByteSize() {
		return ErrPixelSizeMismatch
	}
	return t.impl.Update(pixels)
}

// IsValid reports whether the texture still owns a backend implementation.
func (t *Texture) IsValid() bool {
	return t.impl != nil
}

// Info returns the creation-time description.
func (t *Texture) Info() TextureInfo {
	return t.info
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.info.Width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.info.Height }

// Depth returns the texture depth in texels.
func (t *Texture) Depth() int { return t.info.Depth }

// Format returns the texel format.
func (t *Texture) Format() PixelFormat { return t.info.Format }

// Type returns the texture dimensionality.
func (t *Texture) Type() TextureType { return t.info.Type }

// Release frees the backend implementation. The texture is invalid afterwards.
func (t *Texture) Release() {
	if t.impl == nil {
		return
	}
	t.impl.Release()
	t.impl = nil
}
