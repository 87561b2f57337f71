// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/515760058/NazaraEngine/gfx"
	xdraw "golang.org/x/image/draw"
)

const shaderSuffix = ".spv"

// ShaderFilesFromDirectory gets the list of files that are compiled shaders.
// It is important that the file name does not contain more than two dots,
// the first is always the name of the shader, second is its stage, and the
// third one ensures that the shader is compiled (only compiled shaders have
// an .spv extension). All shader files found will be returned.
func ShaderFilesFromDirectory(dir string) ([]string, []gfx.ShaderType, error) {
	var (
		shaders     []string
		shaderTypes []gfx.ShaderType
	)
	if err := filepath.Walk(dir, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if strings.HasSuffix(f.Name(), shaderSuffix) {
			shader := strings.TrimSuffix(f.Name(), shaderSuffix)
			nodes := strings.Split(shader, ".")

			if len(nodes) != 2 {
				return nil
			}

			stage := shaderTypeForSuffix(nodes[len(nodes)-1])
			if stage == gfx.UnknownShaderType {
				return nil
			}
			shaderTypes = append(shaderTypes, stage)
			shaders = append(shaders, path)
		}
		return nil
	}); err != nil {
		return nil, nil, err
	}
	return shaders, shaderTypes, nil
}

func shaderTypeForSuffix(suffix string) gfx.ShaderType {
	switch suffix {
	case "vert":
		return gfx.VertexShaderType
	case "frag":
		return gfx.FragmentShaderType
	case "geom":
		return gfx.GeometryShaderType
	case "comp":
		return gfx.ComputeShaderType
	default:
		return gfx.UnknownShaderType
	}
}

type sliceHeader struct {
	Data uintptr
	Len  int
	Cap  int
}

// SliceUint32 reslices bytes into a uint32, that is used
// to sumbit vulkan shaders for processing
func SliceUint32(data []byte) []uint32 {
	const m = 0x7fffffff
	return (*[m / 4]uint32)(unsafe.Pointer((*sliceHeader)(unsafe.Pointer(&data)).Data))[:len(data)/4]
}

// GetPixels transforms a given image into right arrangement of pixels
// by drawing the decoded image onto a controlled RGBA canvas
func GetPixels(img image.Image, rowPitch int) ([]uint8, error) {
	newImg := image.NewRGBA(img.Bounds())
	if rowPitch <= 4*img.Bounds().Dy() {
		// apply the proposed row pitch only if supported,
		// as we're using only optimal textures.
		newImg.Stride = rowPitch
	}
	xdraw.Draw(newImg, newImg.Bounds(), img, image.Point{}, xdraw.Src)
	return newImg.Pix, nil
}

// ResizePixels rescales an image to the given extent and returns its
// pixels in RGBA order, ready for texture upload.
func ResizePixels(img image.Image, width, height int) []uint8 {
	newImg := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(newImg, newImg.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return newImg.Pix
}
