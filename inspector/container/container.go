package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrNotContainer indicates the input is not a compound file; callers treat it as "no embedded objects"
	ErrNotContainer = errors.New("not a compound file")
	// ErrCorrupt indicates a compound file with inconsistent allocation or directory structures
	ErrCorrupt = errors.New("corrupt compound file")
	// ErrNotFound indicates a missing directory entry
	ErrNotFound = errors.New("entry not found")
	// ErrClosed indicates use of a closed container
	ErrClosed = errors.New("container closed")
)

// Signature opens every compound file
var Signature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

const (
	headerSize     = 512
	dirEntrySize   = 128
	headerDifatLen = 109
	byteOrderMark  = 0xFFFE

	// Sector markers
	MaxRegSect = 0xFFFFFFFA
	DifSect    = 0xFFFFFFFC
	FatSect    = 0xFFFFFFFD
	EndOfChain = 0xFFFFFFFE
	FreeSect   = 0xFFFFFFFF
	NoStream   = 0xFFFFFFFF
)

// EntryType represents directory entry type
type EntryType uint8

const (
	TypeUnallocated EntryType = 0
	TypeStorage     EntryType = 1
	TypeStream      EntryType = 2
	TypeRoot        EntryType = 5
)

// String returns entry type name
func (t EntryType) String() string {
	switch t {
	case TypeStorage:
		return "Storage"
	case TypeStream:
		return "Stream"
	case TypeRoot:
		return "Root"
	}
	return "Unallocated"
}

// Entry represents a directory entry
type Entry struct {
	Index       int       // Directory index
	Name        string    // Entry name
	Path        string    // Slash joined path from the root storage, e.g. ObjectPool/_1234/Ole
	Type        EntryType // Storage or stream
	Size        uint64    // Stream size in bytes
	startSector uint32
	left        uint32
	right       uint32
	child       uint32
}

// IsStream returns true for stream entries
func (e *Entry) IsStream() bool {
	return e.Type == TypeStream
}

// Container represents a parsed compound file
type Container struct {
	data            []byte
	version         uint16
	sectorSize      int
	miniSectorSize  int
	miniStreamLimit uint64
	fat             []uint32
	miniFat         []uint32
	miniStream      []byte
	entries         []*Entry
	reachable       []bool
	byPath          map[string]*Entry
}

// Version returns major format version (3 or 4)
func (c *Container) Version() int {
	return int(c.version)
}

// Open parses compound file bytes, the container keeps a reference to data until Close
func Open(data []byte) (*Container, error) {
	if len(data) < headerSize || !bytes.Equal(data[:len(Signature)], Signature) {
		return nil, ErrNotContainer
	}
	le := binary.LittleEndian
	if le.Uint16(data[28:]) != byteOrderMark {
		return nil, fmt.Errorf("%w: invalid byte order", ErrNotContainer)
	}
	ret := &Container{data: data, version: le.Uint16(data[26:])}
	sectorShift := le.Uint16(data[30:])
	miniShift := le.Uint16(data[32:])
	switch {
	case ret.version == 3 && sectorShift == 9:
	case ret.version == 4 && sectorShift == 12:
	default:
		return nil, fmt.Errorf("%w: unsupported version %d with sector shift %d", ErrCorrupt, ret.version, sectorShift)
	}
	if miniShift != 6 {
		return nil, fmt.Errorf("%w: unsupported mini sector shift %d", ErrCorrupt, miniShift)
	}
	ret.sectorSize = 1 << sectorShift
	ret.miniSectorSize = 1 << miniShift
	ret.miniStreamLimit = uint64(le.Uint32(data[56:]))

	if err := ret.loadFat(); err != nil {
		return nil, err
	}
	if err := ret.loadDirectory(le.Uint32(data[48:])); err != nil {
		return nil, err
	}
	if err := ret.loadMiniStream(le.Uint32(data[60:])); err != nil {
		return nil, err
	}
	ret.resolvePaths()
	return ret, nil
}

func (c *Container) sector(id uint32) ([]byte, error) {
	if id > MaxRegSect {
		return nil, fmt.Errorf("%w: invalid sector %#x", ErrCorrupt, id)
	}
	offset := (int64(id) + 1) * int64(c.sectorSize)
	end := offset + int64(c.sectorSize)
	if end > int64(len(c.data)) {
		// trailing sector may be truncated by writers that do not pad the file
		if offset >= int64(len(c.data)) {
			return nil, fmt.Errorf("%w: sector %d out of range", ErrCorrupt, id)
		}
		padded := make([]byte, c.sectorSize)
		copy(padded, c.data[offset:])
		return padded, nil
	}
	return c.data[offset:end], nil
}

func (c *Container) loadFat() error {
	le := binary.LittleEndian
	fatSectors := int(le.Uint32(c.data[44:]))
	var ids []uint32
	for i := 0; i < headerDifatLen && len(ids) < fatSectors; i++ {
		id := le.Uint32(c.data[76+i*4:])
		if id == FreeSect {
			break
		}
		ids = append(ids, id)
	}
	perSector := c.sectorSize/4 - 1
	next := le.Uint32(c.data[68:])
	maxDifat := len(c.data)/c.sectorSize + 1
	for visited := 0; next != EndOfChain && next != FreeSect && len(ids) < fatSectors; visited++ {
		if visited > maxDifat {
			return fmt.Errorf("%w: DIFAT chain loop", ErrCorrupt)
		}
		sector, err := c.sector(next)
		if err != nil {
			return err
		}
		for i := 0; i < perSector && len(ids) < fatSectors; i++ {
			id := le.Uint32(sector[i*4:])
			if id == FreeSect {
				continue
			}
			ids = append(ids, id)
		}
		next = le.Uint32(sector[perSector*4:])
	}
	if len(ids) != fatSectors {
		return fmt.Errorf("%w: expected %d FAT sectors, found %d", ErrCorrupt, fatSectors, len(ids))
	}
	c.fat = make([]uint32, 0, len(ids)*c.sectorSize/4)
	for _, id := range ids {
		sector, err := c.sector(id)
		if err != nil {
			return err
		}
		for i := 0; i < c.sectorSize; i += 4 {
			c.fat = append(c.fat, le.Uint32(sector[i:]))
		}
	}
	return nil
}

// chain returns sector ids starting from start, bounded by the table length
func chain(table []uint32, start uint32) ([]uint32, error) {
	var ret []uint32
	for id := start; id != EndOfChain; {
		if id == FreeSect && len(ret) == 0 {
			return nil, nil
		}
		if int64(id) >= int64(len(table)) {
			return nil, fmt.Errorf("%w: sector %#x outside allocation table", ErrCorrupt, id)
		}
		if len(ret) >= len(table) {
			return nil, fmt.Errorf("%w: sector chain loop at %d", ErrCorrupt, start)
		}
		ret = append(ret, id)
		id = table[id]
	}
	return ret, nil
}

func (c *Container) readChain(start uint32, size uint64) ([]byte, error) {
	ids, err := chain(c.fat, start)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, 0, len(ids)*c.sectorSize)
	for _, id := range ids {
		sector, err := c.sector(id)
		if err != nil {
			return nil, err
		}
		ret = append(ret, sector...)
	}
	if size > uint64(len(ret)) {
		return nil, fmt.Errorf("%w: stream of %d bytes spans only %d sectors", ErrCorrupt, size, len(ids))
	}
	return ret[:size], nil
}

func (c *Container) loadDirectory(start uint32) error {
	ids, err := chain(c.fat, start)
	if err != nil {
		return fmt.Errorf("directory: %w", err)
	}
	raw, err := c.readChain(start, uint64(len(ids)*c.sectorSize))
	if err != nil {
		return err
	}
	if len(raw) < dirEntrySize {
		return fmt.Errorf("%w: empty directory", ErrCorrupt)
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	le := binary.LittleEndian
	for offset := 0; offset+dirEntrySize <= len(raw); offset += dirEntrySize {
		record := raw[offset : offset+dirEntrySize]
		entry := &Entry{
			Index:       len(c.entries),
			Type:        EntryType(record[66]),
			left:        le.Uint32(record[68:]),
			right:       le.Uint32(record[72:]),
			child:       le.Uint32(record[76:]),
			startSector: le.Uint32(record[116:]),
			Size:        le.Uint64(record[120:]),
		}
		if c.version == 3 {
			entry.Size &= 0xFFFFFFFF
		}
		if nameLen := int(le.Uint16(record[64:])); nameLen >= 2 && nameLen <= 64 {
			name, err := decoder.Bytes(record[:nameLen-2])
			if err != nil {
				return fmt.Errorf("%w: entry %d name: %v", ErrCorrupt, entry.Index, err)
			}
			entry.Name = string(name)
		}
		c.entries = append(c.entries, entry)
	}
	if c.entries[0].Type != TypeRoot {
		return fmt.Errorf("%w: first directory entry is not the root", ErrCorrupt)
	}
	return nil
}

func (c *Container) loadMiniStream(miniFatStart uint32) error {
	root := c.entries[0]
	if root.Size == 0 || root.startSector == EndOfChain {
		return nil
	}
	var err error
	if c.miniStream, err = c.readChain(root.startSector, root.Size); err != nil {
		return fmt.Errorf("mini stream: %w", err)
	}
	if miniFatStart == EndOfChain || miniFatStart == FreeSect {
		return nil
	}
	ids, err := chain(c.fat, miniFatStart)
	if err != nil {
		return fmt.Errorf("mini FAT: %w", err)
	}
	raw, err := c.readChain(miniFatStart, uint64(len(ids)*c.sectorSize))
	if err != nil {
		return fmt.Errorf("mini FAT: %w", err)
	}
	c.miniFat = make([]uint32, len(raw)/4)
	for i := range c.miniFat {
		c.miniFat[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return nil
}

// resolvePaths walks sibling trees from the root, entries not reachable from the root are ignored
func (c *Container) resolvePaths() {
	c.reachable = make([]bool, len(c.entries))
	c.byPath = make(map[string]*Entry)
	c.reachable[0] = true
	var visit func(id uint32, parent string)
	visit = func(id uint32, parent string) {
		// explicit stack for the sibling tree, guarded against cycles by the reachable flags
		stack := []uint32{id}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if id == NoStream || int64(id) >= int64(len(c.entries)) || c.reachable[id] {
				continue
			}
			entry := c.entries[id]
			if entry.Type == TypeUnallocated {
				continue
			}
			c.reachable[id] = true
			entry.Path = entry.Name
			if parent != "" {
				entry.Path = parent + "/" + entry.Name
			}
			if _, ok := c.byPath[entry.Path]; !ok {
				c.byPath[entry.Path] = entry
			}
			stack = append(stack, entry.right, entry.left)
			if entry.Type == TypeStorage {
				visit(entry.child, entry.Path)
			}
		}
	}
	visit(c.entries[0].child, "")
}

// Entries returns reachable entries, excluding the root, in directory order
func (c *Container) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for i, entry := range c.entries {
			if i == 0 || !c.reachable[i] {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// Entry returns entry for slash joined path
func (c *Container) Entry(path string) (*Entry, error) {
	if c.data == nil {
		return nil, ErrClosed
	}
	entry, ok := c.byPath[strings.Trim(path, "/")]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return entry, nil
}

// ReadStream returns stream bytes for slash joined path
func (c *Container) ReadStream(path string) ([]byte, error) {
	entry, err := c.Entry(path)
	if err != nil {
		return nil, err
	}
	if !entry.IsStream() {
		return nil, fmt.Errorf("%s is a %v, not a stream", path, entry.Type)
	}
	if entry.Size == 0 {
		return []byte{}, nil
	}
	if entry.Size < c.miniStreamLimit {
		data, err := c.readMini(entry.startSector, entry.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return data, nil
	}
	data, err := c.readChain(entry.startSector, entry.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (c *Container) readMini(start uint32, size uint64) ([]byte, error) {
	ids, err := chain(c.miniFat, start)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, 0, len(ids)*c.miniSectorSize)
	for _, id := range ids {
		offset := int(id) * c.miniSectorSize
		if offset+c.miniSectorSize > len(c.miniStream) {
			return nil, fmt.Errorf("%w: mini sector %d outside mini stream", ErrCorrupt, id)
		}
		ret = append(ret, c.miniStream[offset:offset+c.miniSectorSize]...)
	}
	if size > uint64(len(ret)) {
		return nil, fmt.Errorf("%w: stream of %d bytes spans only %d mini sectors", ErrCorrupt, size, len(ids))
	}
	return ret[:size], nil
}

// Close releases container buffers
func (c *Container) Close() error {
	c.data = nil
	c.fat = nil
	c.miniFat = nil
	c.miniStream = nil
	return nil
}
