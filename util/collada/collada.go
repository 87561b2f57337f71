// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package collada decodes the subset of the collada (.dae) schema the
// engine imports: geometries with float sources, vertex input bindings
// and triangle index streams.
package collada

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Collada is the top-level Collada object
type Collada struct {
	Geometries []Geometry `xml:"library_geometries>geometry"`
}

// Geometry represents Collada's geometry
type Geometry struct {
	Mesh Mesh   `xml:"mesh"`
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Mesh contains all the primitive data
type Mesh struct {
	Source    []Source  `xml:"source"`
	Vertices  Vertices  `xml:"vertices"`
	Triangles Triangles `xml:"triangles"`
}

// SourceByID returns the source carrying the given id. The id may be in
// URI form with a leading '#', the way input elements reference sources.
func (m *Mesh) SourceByID(id string) (Source, bool) {
	id = strings.TrimPrefix(id, "#")
	for _, s := range m.Source {
		if s.ID == id {
			return s, true
		}
	}
	return Source{}, false
}

// Source holds one float data stream plus the accessor describing its layout
type Source struct {
	ID       string   `xml:"id,attr"`
	Floats   Floats   `xml:"float_array"`
	Accessor Accessor `xml:"technique_common>accessor"`
}

// Accessor describes how a float stream groups into elements
type Accessor struct {
	Source string `xml:"source,attr"`
	Count  int    `xml:"count,attr"`
	Stride int    `xml:"stride,attr"`
}

// Floats is the array of floats
type Floats struct {
	ID   string
	Data []float32
}

// UnmarshalXML unmarshals the array of floats
func (f *Floats) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			f.ID = attr.Value
		}
	}
	var raw string
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	for _, r := range strings.Fields(raw) {
		num, err := strconv.ParseFloat(r, 32)
		if err != nil {
			return err
		}
		f.Data = append(f.Data, float32(num))
	}
	return nil
}

// Vertices binds per-vertex semantics to their backing sources
type Vertices struct {
	ID     string  `xml:"id,attr"`
	Inputs []Input `xml:"input"`
}

// Input returns the input carrying the given semantic, POSITION usually.
func (v *Vertices) Input(semantic string) (Input, bool) {
	for _, input := range v.Inputs {
		if input.Semantic == semantic {
			return input, true
		}
	}
	return Input{}, false
}

// Triangles contain the list of triangles
type Triangles struct {
	Count    int     `xml:"count,attr"`
	Material string  `xml:"material,attr"`
	Inputs   []Input `xml:"input"`
	Index    []int
}

// Input returns the input carrying the given semantic.
func (t *Triangles) Input(semantic string) (Input, bool) {
	for _, input := range t.Inputs {
		if input.Semantic == semantic {
			return input, true
		}
	}
	return Input{}, false
}

// IndexStride is the number of index values per triangle corner, one per
// distinct input offset.
func (t *Triangles) IndexStride() int {
	if len(t.Inputs) == 0 {
		return 0
	}
	var max uint
	for _, input := range t.Inputs {
		if input.Offset > max {
			max = input.Offset
		}
	}
	return int(max) + 1
}

// UnmarshalXML parses the index list
func (t *Triangles) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "count":
			num, err := strconv.Atoi(attr.Value)
			if err != nil {
				return err
			}
			t.Count = num
		case "material":
			t.Material = attr.Value
		}
	}

	for {
		token, err := d.Token()
		if err != nil {
			return err
		}

		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "input":
				var input Input
				if err := d.DecodeElement(&input, &el); err != nil {
					return err
				}
				t.Inputs = append(t.Inputs, input)
			case "p":
				var raw string
				if err := d.DecodeElement(&raw, &el); err != nil {
					return err
				}
				var ints []int
				for _, r := range strings.Fields(raw) {
					num, err := strconv.Atoi(r)
					if err != nil {
						return err
					}
					ints = append(ints, num)
				}
				t.Index = ints
			}
		case xml.EndElement:
			if el == start.End() {
				return nil
			}
		}
	}
}

// Input is Collada'a input type
type Input struct {
	Semantic string `xml:"semantic,attr"`
	Source   string `xml:"source,attr"`
	Offset   uint   `xml:"offset,attr"`
}
