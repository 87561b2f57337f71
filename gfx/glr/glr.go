// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glr implements the OpenGL rendering backend. A Context stands
// in for a logical device and implements the gfx backend contracts; all
// calls must happen on the thread that owns the native GL context.
package glr

import (
	"errors"
	"fmt"
)

// package errors
var (
	ErrNoContext       = errors.New("glr: the GL context has not been initialised")
	ErrNoShaderHandle  = errors.New("glr: shader has no handle, call Create first")
	ErrBadShaderStage  = errors.New("glr: unsupported shader stage")
	ErrEmptySource     = errors.New("glr: shader source is empty")
	ErrInvalidGLBuffer = errors.New("glr: buffer has no handle")
)

// CompileError carries the driver info log of a failed shader compilation.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gl.CompileShader(%s): %s", e.Stage, e.Log)
}
