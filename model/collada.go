// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/515760058/NazaraEngine/util/collada"
	glm "github.com/go-gl/mathgl/mgl32"
)

// ImportColladaObject reads given file and converts Collada object to
// engine's internal object
func ImportColladaObject(fileContents []byte) (Object, error) {
	var colladaModel collada.Collada
	if err := xml.Unmarshal(fileContents, &colladaModel); err != nil {
		return nil, err
	}
	if len(colladaModel.Geometries) == 0 {
		return nil, errors.New("collada file contains no geometry")
	}

	mesh := colladaModel.Geometries[0].Mesh
	positions, err := positionSource(&mesh)
	if err != nil {
		return nil, err
	}

	normalInput, ok := mesh.Triangles.Input("NORMAL")
	if !ok {
		return nil, errors.New("triangles carry no NORMAL input")
	}
	normals, ok := mesh.SourceByID(normalInput.Source)
	if !ok {
		return nil, fmt.Errorf("normal source %s not found", normalInput.Source)
	}

	vertexInput, ok := mesh.Triangles.Input("VERTEX")
	if !ok {
		return nil, errors.New("triangles carry no VERTEX input")
	}

	// One index per input offset per corner, laid out corner by corner.
	stride := mesh.Triangles.IndexStride()
	index := mesh.Triangles.Index
	var vertices []Vertex
	for corner := 0; corner+stride <= len(index); corner += stride {
		var vert Vertex
		posIdx := index[corner+int(vertexInput.Offset)]
		normIdx := index[corner+int(normalInput.Offset)]
		vert.Pos = glm.Vec3{
			positions.Floats.Data[3*posIdx],
			positions.Floats.Data[3*posIdx+1],
			positions.Floats.Data[3*posIdx+2],
		}
		vert.Normal = glm.Vec3{
			normals.Floats.Data[3*normIdx],
			normals.Floats.Data[3*normIdx+1],
			normals.Floats.Data[3*normIdx+2],
		}
		vert.Color = glm.Vec4{1.0, 1.0, 1.0, 1.0}
		vertices = append(vertices, vert)
	}

	return &ColladaObject{
		vertices: vertices,
	}, nil
}

// positionSource follows the VERTEX input through the vertices element to
// the float source behind its POSITION semantic.
func positionSource(mesh *collada.Mesh) (collada.Source, error) {
	vertexInput, ok := mesh.Triangles.Input("VERTEX")
	if !ok {
		return collada.Source{}, errors.New("triangles carry no VERTEX input")
	}
	if strings.TrimPrefix(vertexInput.Source, "#") != mesh.Vertices.ID {
		return collada.Source{}, fmt.Errorf("vertex input references unknown vertices %s", vertexInput.Source)
	}
	posInput, ok := mesh.Vertices.Input("POSITION")
	if !ok {
		return collada.Source{}, errors.New("vertices carry no POSITION input")
	}
	source, ok := mesh.SourceByID(posInput.Source)
	if !ok {
		return collada.Source{}, fmt.Errorf("position source %s not found", posInput.Source)
	}
	return source, nil
}

// ColladaObject is imported from a collada (.dae) file.
// Loaded and held in memory
type ColladaObject struct {
	mutex    sync.RWMutex
	position glm.Mat4
	rotation glm.Mat4

	vertices []Vertex
}

// SetPosition implements interface
func (co *ColladaObject) SetPosition(pos glm.Mat4) {
	co.mutex.Lock()
	co.position = pos
	co.mutex.Unlock()
}

// Position implements interface
func (co *ColladaObject) Position() glm.Mat4 {
	co.mutex.RLock()
	defer co.mutex.RUnlock()
	return co.position
}

// SetRotation implements interface
func (co *ColladaObject) SetRotation(rot glm.Mat4) {
	co.mutex.Lock()
	co.rotation = rot
	co.mutex.Unlock()
}

// Rotation implements interface
func (co *ColladaObject) Rotation() glm.Mat4 {
	co.mutex.RLock()
	defer co.mutex.RUnlock()
	return co.rotation
}

// Vertices implements interface
func (co *ColladaObject) Vertices() []Vertex {
	return co.vertices
}
