// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/515760058/NazaraEngine/core"
	"github.com/515760058/NazaraEngine/gfx"
)

func TestShaderFilesFromDirectory(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"basic.vert.spv",
		"basic.frag.spv",
		"terrain.geom.spv",
		"skin.comp.spv",
		"basic.vert", // not compiled
		"with.too.many.dots.vert.spv",
		"notes.txt",
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{0, 0, 0, 0}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	shaders, types, err := core.ShaderFilesFromDirectory(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(shaders) != 4 || len(types) != 4 {
		t.Fatalf("expected 4 shaders, got %d paths and %d types", len(shaders), len(types))
	}

	found := make(map[gfx.ShaderType]int)
	for _, typ := range types {
		found[typ]++
	}
	for _, want := range []gfx.ShaderType{
		gfx.VertexShaderType, gfx.FragmentShaderType,
		gfx.GeometryShaderType, gfx.ComputeShaderType,
	} {
		if found[want] != 1 {
			t.Errorf("expected exactly one shader of type %d, got %d", want, found[want])
		}
	}
}

func TestSliceUint32(t *testing.T) {
	data := []byte{0x01, 0x00, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00}
	sliced := core.SliceUint32(data)
	if len(sliced) != 2 {
		t.Fatalf("expected 2 words, got %d", len(sliced))
	}
	if sliced[0] != 1 || sliced[1] != 255 {
		t.Errorf("unexpected words: %v", sliced)
	}
}

func TestGetPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	pixels, err := core.GetPixels(img, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(pixels) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(pixels))
	}
	if pixels[0] != 255 || pixels[3] != 255 {
		t.Errorf("first texel not preserved: %v", pixels[:4])
	}
}

func TestResizePixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	pixels := core.ResizePixels(img, 2, 2)
	if len(pixels) != 16 {
		t.Errorf("expected 2x2 RGBA output, got %d bytes", len(pixels))
	}
}

func BenchmarkSliceUint32Small(b *testing.B) {
	data := make([]byte, 100)
	for idx := 0; idx < b.N; idx++ {
		core.SliceUint32(data)
	}
}

func BenchmarkSliceUint32Medium(b *testing.B) {
	data := make([]byte, 1000)
	for idx := 0; idx < b.N; idx++ {
		core.SliceUint32(data)
	}
}

func BenchmarkSliceUint32Big(b *testing.B) {
	data := make([]byte, 100000)
	for idx := 0; idx < b.N; idx++ {
		core.SliceUint32(data)
	}
}
