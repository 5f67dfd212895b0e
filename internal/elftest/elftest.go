// Package elftest synthesizes small ELF images for unit tests.
package elftest

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
)

// Symbol is a symbol written into a synthesized ELF image
type Symbol struct {
	Name  string
	Value uint32
	// NameOffset overrides the string table offset when non-zero
	NameOffset uint32
}

const (
	elf32HeaderSize  = 52
	elf32SectionSize = 40
)

// BuildELF32 synthesizes a little-endian ARM ELF32 executable carrying only
// .strtab, .symtab and .shstrtab sections. Passing withSymtab=false omits the
// symbol table entirely.
func BuildELF32(symbols []Symbol, withSymtab bool) []byte {
	// Section name string table
	shstrtab := []byte{0}
	addName := func(table *[]byte, name string) uint32 {
		off := uint32(len(*table))
		*table = append(*table, name...)
		*table = append(*table, 0)
		return off
	}
	strtabName := addName(&shstrtab, ".strtab")
	symtabName := addName(&shstrtab, ".symtab")
	shstrtabName := addName(&shstrtab, ".shstrtab")

	// Symbol string table and symbol entries, index 0 is the null symbol
	strtab := []byte{0}
	symtab := make([]byte, 16)
	for _, sym := range symbols {
		nameOff := addName(&strtab, sym.Name)
		if sym.NameOffset != 0 {
			nameOff = sym.NameOffset
		}
		entry := make([]byte, 16)
		binary.LittleEndian.PutUint32(entry[0:4], nameOff)
		binary.LittleEndian.PutUint32(entry[4:8], sym.Value)
		binary.LittleEndian.PutUint32(entry[8:12], 0)
		entry[12] = byte(elf.STB_GLOBAL)<<4 | byte(elf.STT_NOTYPE)
		entry[13] = 0
		binary.LittleEndian.PutUint16(entry[14:16], uint16(elf.SHN_ABS))
		symtab = append(symtab, entry...)
	}

	var body bytes.Buffer
	body.Write(make([]byte, elf32HeaderSize))

	strtabOff := uint32(body.Len())
	body.Write(strtab)
	symtabOff := align4(&body)
	if withSymtab {
		body.Write(symtab)
	}
	shstrtabOff := uint32(body.Len())
	body.Write(shstrtab)
	shoff := align4(&body)

	type section struct {
		name, typ, off, size, link, info, align, entsize uint32
	}
	sections := []section{{}}
	sections = append(sections, section{name: strtabName, typ: uint32(elf.SHT_STRTAB), off: strtabOff, size: uint32(len(strtab)), align: 1})
	strtabIndex := uint32(len(sections) - 1)
	if withSymtab {
		sections = append(sections, section{
			name: symtabName, typ: uint32(elf.SHT_SYMTAB), off: symtabOff, size: uint32(len(symtab)),
			link: strtabIndex, info: 1, align: 4, entsize: 16,
		})
	}
	sections = append(sections, section{name: shstrtabName, typ: uint32(elf.SHT_STRTAB), off: shstrtabOff, size: uint32(len(shstrtab)), align: 1})
	shstrndx := uint16(len(sections) - 1)

	for _, s := range sections {
		hdr := make([]byte, elf32SectionSize)
		binary.LittleEndian.PutUint32(hdr[0:4], s.name)
		binary.LittleEndian.PutUint32(hdr[4:8], s.typ)
		binary.LittleEndian.PutUint32(hdr[8:12], 0)
		binary.LittleEndian.PutUint32(hdr[12:16], 0)
		binary.LittleEndian.PutUint32(hdr[16:20], s.off)
		binary.LittleEndian.PutUint32(hdr[20:24], s.size)
		binary.LittleEndian.PutUint32(hdr[24:28], s.link)
		binary.LittleEndian.PutUint32(hdr[28:32], s.info)
		binary.LittleEndian.PutUint32(hdr[32:36], s.align)
		binary.LittleEndian.PutUint32(hdr[36:40], s.entsize)
		body.Write(hdr)
	}

	out := body.Bytes()

	// ELF header
	copy(out[0:4], elf.ELFMAG)
	out[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	out[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	out[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	out[elf.EI_OSABI] = byte(elf.ELFOSABI_NONE)
	binary.LittleEndian.PutUint16(out[16:18], uint16(elf.ET_EXEC))
	binary.LittleEndian.PutUint16(out[18:20], uint16(elf.EM_ARM))
	binary.LittleEndian.PutUint32(out[20:24], uint32(elf.EV_CURRENT))
	binary.LittleEndian.PutUint32(out[24:28], 0) // entry
	binary.LittleEndian.PutUint32(out[28:32], 0) // phoff
	binary.LittleEndian.PutUint32(out[32:36], shoff)
	binary.LittleEndian.PutUint32(out[36:40], 0) // flags
	binary.LittleEndian.PutUint16(out[40:42], elf32HeaderSize)
	binary.LittleEndian.PutUint16(out[42:44], 32) // phentsize
	binary.LittleEndian.PutUint16(out[44:46], 0)  // phnum
	binary.LittleEndian.PutUint16(out[46:48], elf32SectionSize)
	binary.LittleEndian.PutUint16(out[48:50], uint16(len(sections)))
	binary.LittleEndian.PutUint16(out[50:52], shstrndx)

	return out
}

func align4(buf *bytes.Buffer) uint32 {
	for buf.Len()%4 != 0 {
		buf.WriteByte(0)
	}
	return uint32(buf.Len())
}

// NVRAM returns an image with _nvram_data at start and _envram_data at end,
// surrounded by unrelated symbols
func NVRAM(start, end uint32) []byte {
	return BuildELF32([]Symbol{
		{Name: "main", Value: 0xc0de0001},
		{Name: "_nvram_data", Value: start},
		{Name: "_etext", Value: 0xc0de4000},
		{Name: "_envram_data", Value: end},
	}, true)
}
