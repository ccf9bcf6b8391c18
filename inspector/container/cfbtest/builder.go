// Package cfbtest builds small version 3 compound files for tests
package cfbtest

import (
	"encoding/binary"
	"strings"

	"github.com/viant/rptxml/inspector/container"
	"golang.org/x/text/encoding/unicode"
)

const (
	sectorSize     = 512
	miniSectorSize = 64
	miniCutoff     = 4096
)

// Entry represents a storage or a stream to place in the file
type Entry struct {
	Path    string // Slash joined path, missing parent storages are created
	Data    []byte // Stream content
	Storage bool   // Creates an empty storage instead of a stream
}

type node struct {
	name     string
	typ      container.EntryType
	data     []byte
	children []int
	start    uint32
	size     uint32
}

// Build returns compound file bytes with entries placed in directory order of first appearance
func Build(entries ...Entry) []byte {
	nodes := []*node{{name: "Root Entry", typ: container.TypeRoot}}
	index := map[string]int{"": 0}
	var ensure func(path string, typ container.EntryType, data []byte) int
	ensure = func(path string, typ container.EntryType, data []byte) int {
		if id, ok := index[path]; ok {
			return id
		}
		parent, name := "", path
		if i := strings.LastIndex(path, "/"); i != -1 {
			parent, name = path[:i], path[i+1:]
		}
		parentID := ensure(parent, container.TypeStorage, nil)
		nodes = append(nodes, &node{name: name, typ: typ, data: data})
		id := len(nodes) - 1
		index[path] = id
		nodes[parentID].children = append(nodes[parentID].children, id)
		return id
	}
	for _, entry := range entries {
		typ := container.TypeStream
		if entry.Storage {
			typ = container.TypeStorage
		}
		ensure(strings.Trim(entry.Path, "/"), typ, entry.Data)
	}

	var miniStream []byte
	var miniFat []uint32
	var large []*node
	for _, n := range nodes {
		if n.typ != container.TypeStream {
			continue
		}
		n.size = uint32(len(n.data))
		n.start = container.EndOfChain
		switch {
		case len(n.data) == 0:
		case len(n.data) < miniCutoff:
			n.start = uint32(len(miniFat))
			count := ceil(len(n.data), miniSectorSize)
			for i := 0; i < count; i++ {
				next := uint32(len(miniFat) + 1)
				if i == count-1 {
					next = container.EndOfChain
				}
				miniFat = append(miniFat, next)
			}
			miniStream = append(miniStream, pad(n.data, miniSectorSize)...)
		default:
			large = append(large, n)
		}
	}

	dirSectors := ceil(len(nodes)*128, sectorSize)
	miniFatSectors := ceil(len(miniFat)*4, sectorSize)
	miniStreamSectors := ceil(len(miniStream), sectorSize)
	nonFat := dirSectors + miniFatSectors + miniStreamSectors
	for _, n := range large {
		nonFat += ceil(len(n.data), sectorSize)
	}
	fatSectors := 1
	for fatSectors*sectorSize/4 < fatSectors+nonFat {
		fatSectors++
	}
	fat := make([]uint32, fatSectors*sectorSize/4)
	for i := range fat {
		fat[i] = container.FreeSect
	}
	next := uint32(0)
	allocate := func(count int) uint32 {
		if count == 0 {
			return container.EndOfChain
		}
		start := next
		for i := 0; i < count; i++ {
			fat[next] = next + 1
			if i == count-1 {
				fat[next] = container.EndOfChain
			}
			next++
		}
		return start
	}
	for i := 0; i < fatSectors; i++ {
		fat[next] = container.FatSect
		next++
	}
	dirStart := allocate(dirSectors)
	miniFatStart := allocate(miniFatSectors)
	nodes[0].start = allocate(miniStreamSectors)
	nodes[0].size = uint32(len(miniStream))
	for _, n := range large {
		n.start = allocate(ceil(len(n.data), sectorSize))
	}

	le := binary.LittleEndian
	header := make([]byte, sectorSize)
	copy(header, container.Signature)
	le.PutUint16(header[24:], 0x3E)
	le.PutUint16(header[26:], 3)
	le.PutUint16(header[28:], 0xFFFE)
	le.PutUint16(header[30:], 9)
	le.PutUint16(header[32:], 6)
	le.PutUint32(header[44:], uint32(fatSectors))
	le.PutUint32(header[48:], dirStart)
	le.PutUint32(header[56:], miniCutoff)
	le.PutUint32(header[60:], miniFatStart)
	le.PutUint32(header[64:], uint32(miniFatSectors))
	le.PutUint32(header[68:], container.EndOfChain)
	for i := 0; i < 109; i++ {
		id := uint32(container.FreeSect)
		if i < fatSectors {
			id = uint32(i)
		}
		le.PutUint32(header[76+i*4:], id)
	}

	body := [][]byte{words(fat)}
	body = append(body, pad(directory(nodes), sectorSize))
	if len(miniFat) > 0 {
		miniFatWords := words(miniFat)
		for i := len(miniFat) * 4; i < miniFatSectors*sectorSize; i += 4 {
			miniFatWords = append(miniFatWords, 0xFF, 0xFF, 0xFF, 0xFF)
		}
		body = append(body, miniFatWords)
	}
	body = append(body, pad(miniStream, sectorSize))
	for _, n := range large {
		body = append(body, pad(n.data, sectorSize))
	}
	ret := header
	for _, part := range body {
		ret = append(ret, part...)
	}
	return ret
}

func directory(nodes []*node) []byte {
	le := binary.LittleEndian
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	ret := make([]byte, len(nodes)*128)
	for i, n := range nodes {
		record := ret[i*128 : (i+1)*128]
		name, _ := encoder.Bytes([]byte(n.name))
		copy(record, name)
		le.PutUint16(record[64:], uint16(len(name)+2))
		record[66] = byte(n.typ)
		record[67] = 1
		le.PutUint32(record[68:], container.NoStream)
		le.PutUint32(record[72:], container.NoStream)
		le.PutUint32(record[76:], container.NoStream)
		le.PutUint32(record[116:], n.start)
		le.PutUint32(record[120:], n.size)
	}
	for i, n := range nodes {
		if len(n.children) == 0 {
			continue
		}
		le.PutUint32(ret[i*128+76:], uint32(n.children[0]))
		for j := 0; j+1 < len(n.children); j++ {
			le.PutUint32(ret[n.children[j]*128+72:], uint32(n.children[j+1]))
		}
	}
	return ret
}

func words(values []uint32) []byte {
	ret := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(ret[i*4:], v)
	}
	return ret
}

func pad(data []byte, size int) []byte {
	ret := make([]byte, ceil(len(data), size)*size)
	copy(ret, data)
	return ret
}

func ceil(n, size int) int {
	return (n + size - 1) / size
}
