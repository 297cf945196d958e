// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/triangle/base/errors"
)

// ErrLayout is wrapped by all errors from [LayoutOf].
var ErrLayout = errors.New("render: invalid vertex layout")

// LocationTag is the struct tag giving the shader input location
// of a vertex field.
const LocationTag = "location"

// Attrib is one attribute of a vertex [Layout].
type Attrib struct {
	// Name of the struct field.
	Name string

	Location uint32

	// Offset of the field in the vertex struct, in bytes.
	Offset uintptr

	Format AttribFormat
}

// Layout is the attribute layout of a vertex struct type.
type Layout struct {
	// Stride is the size of one vertex, in bytes.
	Stride int32

	Attribs []Attrib
}

var attributeType = reflect.TypeFor[Attribute]()

// LayoutOf returns the layout of the vertex struct type T.
// Every field of T must implement [Attribute] and carry a tag
// with its shader location, for example:
//
//	type Vertex struct {
//		Pos render.F32x3 `location:"0"`
//		Clr render.F32x3 `location:"1"`
//	}
func LayoutOf[T any]() (*Layout, error) {
	return layoutOf(reflect.TypeFor[T]())
}

func layoutOf(typ reflect.Type) (*Layout, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct", ErrLayout, typ)
	}
	ly := &Layout{Stride: int32(typ.Size())}
	used := make(map[uint32]string)
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup(LocationTag)
		if !ok {
			return nil, fmt.Errorf("%w: field %s.%s is missing a %s tag", ErrLayout, typ.Name(), f.Name, LocationTag)
		}
		loc, err := strconv.ParseUint(tag, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s.%s: bad location %q", ErrLayout, typ.Name(), f.Name, tag)
		}
		if other, dup := used[uint32(loc)]; dup {
			return nil, fmt.Errorf("%w: fields %s and %s share location %d", ErrLayout, other, f.Name, loc)
		}
		if k := f.Type.Kind(); k == reflect.Pointer || k == reflect.Interface {
			return nil, fmt.Errorf("%w: field %s.%s of type %v is not stored in the vertex", ErrLayout, typ.Name(), f.Name, f.Type)
		}
		if !f.Type.Implements(attributeType) {
			return nil, fmt.Errorf("%w: field %s.%s of type %v is not an Attribute", ErrLayout, typ.Name(), f.Name, f.Type)
		}
		used[uint32(loc)] = f.Name
		format := reflect.Zero(f.Type).Interface().(Attribute).AttribFormat()
		ly.Attribs = append(ly.Attribs, Attrib{
			Name:     f.Name,
			Location: uint32(loc),
			Offset:   f.Offset,
			Format:   format,
		})
	}
	return ly, nil
}

// Apply enables and describes every attribute of the layout for
// the currently bound vertex array and array buffer.
func (ly *Layout) Apply(gl GL) {
	for _, at := range ly.Attribs {
		VertexAttribPointer(gl, at.Format, at.Location, ly.Stride, at.Offset)
	}
}
