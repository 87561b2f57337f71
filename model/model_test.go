// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model_test

import (
	"testing"
	"unsafe"

	"github.com/515760058/NazaraEngine/gfx"
	"github.com/515760058/NazaraEngine/model"
	glm "github.com/go-gl/mathgl/mgl32"
)

const testColladaDocument = `
<COLLADA>
	<library_geometries>
		<geometry id="Tri-mesh" name="Tri">
			<mesh>
				<source id="Tri-mesh-positions">
					<float_array id="Tri-mesh-positions-array" count="9">0 0 0 1 0 0 0 1 0</float_array>
				</source>
				<source id="Tri-mesh-normals">
					<float_array id="Tri-mesh-normals-array" count="3">0 0 1</float_array>
				</source>
				<vertices id="Tri-mesh-vertices">
					<input semantic="POSITION" source="#Tri-mesh-positions"/>
				</vertices>
				<triangles material="Material-material" count="1">
					<input semantic="VERTEX" source="#Tri-mesh-vertices" offset="0"/>
					<input semantic="NORMAL" source="#Tri-mesh-normals" offset="1"/>
					<p>0 0 1 0 2 0</p>
				</triangles>
			</mesh>
		</geometry>
	</library_geometries>
</COLLADA>
`

func TestImportColladaObject(t *testing.T) {
	obj, err := model.ImportColladaObject([]byte(testColladaDocument))
	if err != nil {
		t.Fatal(err)
	}

	vertices := obj.Vertices()
	if len(vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(vertices))
	}
	if vertices[1].Pos != (glm.Vec3{1, 0, 0}) {
		t.Errorf("unexpected position: %v", vertices[1].Pos)
	}
	for idx, vert := range vertices {
		if vert.Normal != (glm.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d: unexpected normal %v", idx, vert.Normal)
		}
	}
}

func TestImportColladaObjectResolvesByReference(t *testing.T) {
	// Source ids follow no naming convention here, exporters are free to
	// pick anything. Resolution has to go through the input bindings.
	document := `
	<COLLADA>
		<library_geometries>
			<geometry id="mesh0" name="Tri">
				<mesh>
					<source id="src0">
						<float_array id="src0-array" count="9">0 0 0 1 0 0 0 1 0</float_array>
					</source>
					<source id="src1">
						<float_array id="src1-array" count="3">0 0 1</float_array>
					</source>
					<vertices id="verts0">
						<input semantic="POSITION" source="#src0"/>
					</vertices>
					<triangles count="1">
						<input semantic="VERTEX" source="#verts0" offset="0"/>
						<input semantic="NORMAL" source="#src1" offset="1"/>
						<p>0 0 1 0 2 0</p>
					</triangles>
				</mesh>
			</geometry>
		</library_geometries>
	</COLLADA>
	`
	obj, err := model.ImportColladaObject([]byte(document))
	if err != nil {
		t.Fatal(err)
	}
	vertices := obj.Vertices()
	if len(vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(vertices))
	}
	if vertices[2].Pos != (glm.Vec3{0, 1, 0}) {
		t.Errorf("unexpected position: %v", vertices[2].Pos)
	}
}

func TestImportColladaObjectEmpty(t *testing.T) {
	if _, err := model.ImportColladaObject([]byte("<COLLADA></COLLADA>")); err == nil {
		t.Error("expected an error for a file without geometry")
	}
}

func TestColladaObjectTransforms(t *testing.T) {
	obj, err := model.ImportColladaObject([]byte(testColladaDocument))
	if err != nil {
		t.Fatal(err)
	}

	pos := glm.Translate3D(1, 2, 3)
	rot := glm.HomogRotate3DZ(0.5)
	obj.SetPosition(pos)
	obj.SetRotation(rot)
	if obj.Position() != pos {
		t.Error("position did not round-trip")
	}
	if obj.Rotation() != rot {
		t.Error("rotation did not round-trip")
	}
}

func TestDeclarationMatchesVertex(t *testing.T) {
	decl, err := model.Declaration()
	if err != nil {
		t.Fatal(err)
	}
	if decl.Stride() != int(unsafe.Sizeof(model.Vertex{})) {
		t.Errorf("declaration stride %d does not match vertex size %d", decl.Stride(), unsafe.Sizeof(model.Vertex{}))
	}
	if !decl.HasComponent(gfx.NormalComponent, 0) {
		t.Error("declaration must carry normals")
	}
}

func TestVertexBytes(t *testing.T) {
	vertices := []model.Vertex{{Pos: glm.Vec3{1, 2, 3}}, {}}
	raw := model.VertexBytes(vertices)
	if len(raw) != 2*int(unsafe.Sizeof(model.Vertex{})) {
		t.Fatalf("unexpected byte length %d", len(raw))
	}
	if model.VertexBytes(nil) != nil {
		t.Error("empty input must produce no bytes")
	}
}

func TestVertexDescriptorsAgree(t *testing.T) {
	bindings := model.VertexBindingDescriptions()
	if len(bindings) != 1 {
		t.Fatalf("expected one binding, got %d", len(bindings))
	}
	if bindings[0].Stride != uint32(unsafe.Sizeof(model.Vertex{})) {
		t.Errorf("binding stride %d does not match vertex size", bindings[0].Stride)
	}
	attributes := model.VertexAttributeDescriptions()
	if len(attributes) != 3 {
		t.Fatalf("expected three attributes, got %d", len(attributes))
	}
}
