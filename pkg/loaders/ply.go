package loaders

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	stdmath "math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

// ErrInvalidPLY is wrapped by every parse failure
var ErrInvalidPLY = errors.New("invalid PLY data")

const (
	// maxPrealloc caps allocations sized from header counts; larger
	// elements still load, growing as they are read
	maxPrealloc = 1 << 20

	// maxListLength bounds a single list property such as a face's indices
	maxListLength = 1 << 16
)

// Mesh contains the vertex positions and triangle indices read from a PLY file.
// Polygons with more than three vertices are fan-triangulated.
type Mesh struct {
	Vertices []math.Vec3
	Faces    [][3]int
}

// plyProperty represents a property definition in the PLY header
type plyProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
}

// plyElement is one element block (vertex, face or anything else) in file order
type plyElement struct {
	Name  string
	Count int
	Props []plyProperty
}

// plyHeader represents the parsed header information from a PLY file
type plyHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Elements []plyElement
}

// LoadPLY loads a PLY file from disk
func LoadPLY(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	mesh, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mesh, nil
}

// ReadPLY parses ASCII and binary PLY data. Only vertex positions and face
// indices are kept; every other property and element is skipped.
func ReadPLY(r io.Reader) (*Mesh, error) {
	br := bufio.NewReader(r)

	header, err := parsePLYHeader(br)
	if err != nil {
		return nil, err
	}

	var values valueReader
	switch header.Format {
	case "ascii":
		values = newASCIIReader(br)
	case "binary_little_endian":
		values = &binaryReader{r: br, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryReader{r: br, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidPLY, header.Format)
	}

	mesh := &Mesh{}
	for _, elem := range header.Elements {
		switch elem.Name {
		case "vertex":
			err = mesh.readVertices(values, elem)
		case "face":
			err = mesh.readFaces(values, elem)
		default:
			err = skipElement(values, elem)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: element %s: %v", ErrInvalidPLY, elem.Name, err)
		}
	}

	for i, face := range mesh.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(mesh.Vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidPLY, i, idx, len(mesh.Vertices))
			}
		}
	}
	return mesh, nil
}

// Triangles builds one triangle per face, all sharing mat
func (m *Mesh) Triangles(mat material.Material) []*geometry.Triangle {
	triangles := make([]*geometry.Triangle, 0, len(m.Faces))
	for _, face := range m.Faces {
		triangles = append(triangles, geometry.NewTriangle(
			m.Vertices[face[0]], m.Vertices[face[1]], m.Vertices[face[2]], mat))
	}
	return triangles
}

// parsePLYHeader reads up to and including end_header, leaving br at the body
func parsePLYHeader(br *bufio.Reader) (*plyHeader, error) {
	header := &plyHeader{}
	sawMagic := false

	for {
		line, err := br.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return nil, fmt.Errorf("%w: header ended early: %v", ErrInvalidPLY, err)
		}
		line = strings.TrimSpace(line)

		if !sawMagic {
			if line != "ply" {
				return nil, fmt.Errorf("%w: missing ply magic", ErrInvalidPLY)
			}
			sawMagic = true
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 2 {
				return nil, fmt.Errorf("%w: bad format line %q", ErrInvalidPLY, line)
			}
			header.Format = parts[1]
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: bad element line %q", ErrInvalidPLY, line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: invalid element count: %s", ErrInvalidPLY, parts[2])
			}
			header.Elements = append(header.Elements, plyElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("%w: property before any element", ErrInvalidPLY)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			elem := &header.Elements[len(header.Elements)-1]
			elem.Props = append(elem.Props, prop)
		}
	}

	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) >= 1 && parts[0] == "list" {
		if len(parts) < 4 {
			return plyProperty{}, fmt.Errorf("%w: invalid list property definition", ErrInvalidPLY)
		}
		if typeSize(parts[1]) == 0 || typeSize(parts[2]) == 0 {
			return plyProperty{}, fmt.Errorf("%w: unknown type in list %s", ErrInvalidPLY, parts[3])
		}
		return plyProperty{Name: parts[3], Type: parts[2], IsList: true, ListType: parts[1]}, nil
	}

	if len(parts) < 2 {
		return plyProperty{}, fmt.Errorf("%w: invalid property definition", ErrInvalidPLY)
	}
	if typeSize(parts[0]) == 0 {
		return plyProperty{}, fmt.Errorf("%w: unknown type %q for %s", ErrInvalidPLY, parts[0], parts[1])
	}
	return plyProperty{Name: parts[1], Type: parts[0]}, nil
}

func (m *Mesh) readVertices(values valueReader, elem plyElement) error {
	m.Vertices = make([]math.Vec3, 0, min(elem.Count, maxPrealloc))

	for i := 0; i < elem.Count; i++ {
		var v math.Vec3
		for _, prop := range elem.Props {
			if prop.IsList {
				if _, err := readList(values, prop); err != nil {
					return fmt.Errorf("vertex %d: %v", i, err)
				}
				continue
			}
			value, err := values.read(prop.Type)
			if err != nil {
				return fmt.Errorf("vertex %d: %v", i, err)
			}
			switch prop.Name {
			case "x":
				v.X = value
			case "y":
				v.Y = value
			case "z":
				v.Z = value
			}
		}
		m.Vertices = append(m.Vertices, v)
	}
	return nil
}

func (m *Mesh) readFaces(values valueReader, elem plyElement) error {
	m.Faces = make([][3]int, 0, min(elem.Count, maxPrealloc))

	for i := 0; i < elem.Count; i++ {
		for _, prop := range elem.Props {
			if !prop.IsList {
				if _, err := values.read(prop.Type); err != nil {
					return fmt.Errorf("face %d: %v", i, err)
				}
				continue
			}

			list, err := readList(values, prop)
			if err != nil {
				return fmt.Errorf("face %d: %v", i, err)
			}
			if prop.Name != "vertex_indices" && prop.Name != "vertex_index" {
				continue
			}
			if len(list) < 3 {
				return fmt.Errorf("face %d has %d vertices", i, len(list))
			}
			for _, idx := range list {
				if idx != stdmath.Trunc(idx) {
					return fmt.Errorf("face %d: non-integer vertex index %v", i, idx)
				}
			}

			// Fan around the first vertex
			for k := 1; k+1 < len(list); k++ {
				m.Faces = append(m.Faces, [3]int{int(list[0]), int(list[k]), int(list[k+1])})
			}
		}
	}
	return nil
}

func skipElement(values valueReader, elem plyElement) error {
	for i := 0; i < elem.Count; i++ {
		for _, prop := range elem.Props {
			var err error
			if prop.IsList {
				_, err = readList(values, prop)
			} else {
				_, err = values.read(prop.Type)
			}
			if err != nil {
				return fmt.Errorf("item %d: %v", i, err)
			}
		}
	}
	return nil
}

func readList(values valueReader, prop plyProperty) ([]float64, error) {
	n, err := values.read(prop.ListType)
	if err != nil {
		return nil, err
	}
	if stdmath.IsNaN(n) || n < 0 || n > maxListLength || n != stdmath.Trunc(n) {
		return nil, fmt.Errorf("invalid list length %v", n)
	}

	list := make([]float64, int(n))
	for j := range list {
		if list[j], err = values.read(prop.Type); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// typeSize returns the size in bytes of a PLY data type, or 0 if unknown
func typeSize(dataType string) int {
	switch dataType {
	case "char", "int8", "uchar", "uint8":
		return 1
	case "short", "int16", "ushort", "uint16":
		return 2
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	}
	return 0
}

// valueReader reads one scalar of a PLY type from the body
type valueReader interface {
	read(dataType string) (float64, error)
}

type asciiReader struct {
	scanner *bufio.Scanner
}

func newASCIIReader(r io.Reader) *asciiReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &asciiReader{scanner: scanner}
}

func (a *asciiReader) read(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(a.scanner.Text(), 64)
}

type binaryReader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binaryReader) read(dataType string) (float64, error) {
	size := typeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported type %q", dataType)
	}
	buf := b.buf[:size]
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return 0, err
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(buf[0])), nil
	case "uchar", "uint8":
		return float64(buf[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "float", "float32":
		return float64(stdmath.Float32frombits(b.order.Uint32(buf))), nil
	default:
		return stdmath.Float64frombits(b.order.Uint64(buf)), nil
	}
}
