// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/515760058/NazaraEngine/model"
)

func TestBundledMeshImports(t *testing.T) {
	contents, err := os.ReadFile(filepath.Join("assets", "cube.dae"))
	if err != nil {
		t.Fatal(err)
	}
	object, err := model.ImportColladaObject(contents)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(object.Vertices()); got != 36 {
		t.Fatalf("expected 36 cube vertices, got %d", got)
	}
}

func TestLoadVerticesNeverEmpty(t *testing.T) {
	vertices := loadVertices()
	if len(vertices) == 0 {
		t.Fatal("demo must always have vertices to draw")
	}
	if len(vertices)%3 != 0 {
		t.Fatalf("vertex count %d does not form whole triangles", len(vertices))
	}
}

func TestPlaceholderVertices(t *testing.T) {
	vertices := placeholderVertices()
	if len(vertices) != 3 {
		t.Fatalf("expected a single triangle, got %d vertices", len(vertices))
	}
	for idx, vert := range vertices {
		if vert.Normal.Len() == 0 {
			t.Errorf("vertex %d has a zero normal", idx)
		}
	}
}
