// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"github.com/515760058/NazaraEngine/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Context wraps an already current native GL context and implements the
// gfx.Device backend boundary over it. The caller is responsible for
// making the native context current on the calling thread before
// NewContext and keeping it current for every later call.
type Context struct {
	initialised bool
	version     string
	vendor      string
	renderer    string
}

// NewContext loads the GL function pointers from the current native
// context and records the driver identification strings.
func NewContext() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &Context{
		initialised: true,
		version:     gl.GoStr(gl.GetString(gl.VERSION)),
		vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
	}, nil
}

// IsValid reports whether the context has been initialised.
func (c *Context) IsValid() bool {
	return c != nil && c.initialised
}

// Version returns the GL version string of the driver.
func (c *Context) Version() string {
	return c.version
}

// Vendor returns the GL vendor string of the driver.
func (c *Context) Vendor() string {
	return c.vendor
}

// Renderer returns the GL renderer string of the driver.
func (c *Context) Renderer() string {
	return c.renderer
}

// NewBuffer implements gfx.Device
func (c *Context) NewBuffer(typ gfx.BufferType, size int, usage gfx.BufferUsage) (gfx.AbstractBuffer, error) {
	if !c.IsValid() {
		return nil, ErrNoContext
	}
	return newBuffer(typ, size, usage)
}

// NewTexture implements gfx.Device
func (c *Context) NewTexture(info gfx.TextureInfo) (gfx.AbstractTexture, error) {
	if !c.IsValid() {
		return nil, ErrNoContext
	}
	return newTexture(info)
}

// Destroy marks the context unusable. The native context itself belongs
// to the windowing layer and is torn down there. Idempotent.
func (c *Context) Destroy() {
	c.initialised = false
}
