// Package ziputil reads the central directory of zip archives without
// decompressing them, which is enough to tell whether entries are encrypted.
package ziputil

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/codealchemist/codealchemist/common/file"
)

const (
	zipEOCDMagic      = 0x06054b50
	zip64EOCDMagic    = 0x06064b50
	zip64LocatorMagic = 0x07064b50
	zipCDFHMagic      = 0x02014b50
	zipEOCDSize       = 22
	zip64EOCDSize     = 56
	zip64LocatorSize  = 20
	zipCDFHSize       = 46
	zipMaxComment     = 65535

	flagEncrypted = 0x1
	// MethodAES is the compression method id WinZip AES entries carry.
	MethodAES = 99
)

// ErrNotZip is returned when no end of central directory record is found.
var ErrNotZip = errors.New("not a zip file")

type zipEOCD struct {
	DiskNumber      uint16
	CDDiskNumber    uint16
	CDRecordsOnDisk uint16
	CDRecords       uint16
	CDSize          uint32
	CDOffset        uint32
	CommentLength   uint16
}

type zip64EOCD struct {
	RecordSize      uint64
	VersionMadeBy   uint16
	VersionNeeded   uint16
	DiskNumber      uint32
	CDDiskNumber    uint32
	CDRecordsOnDisk uint64
	CDRecords       uint64
	CDSize          uint64
	CDOffset        uint64
}

type zip64Locator struct {
	DiskNumber uint32
	EOCDOffset uint64
	TotalDisks uint32
}

type zipCDFH struct {
	VersionMadeBy     uint16
	VersionNeeded     uint16
	Flags             uint16
	CompressionMethod uint16
	ModTime           uint16
	ModDate           uint16
	CRC32             uint32
	CompressedSize    uint32
	UncompressedSize  uint32
	FileNameLength    uint16
	ExtraFieldLength  uint16
	FileCommentLength uint16
	DiskNumberStart   uint16
	InternalFileAttrs uint16
	ExternalFileAttrs uint32
	LocalHeaderOffset uint32
}

// Entry is one central directory record.
type Entry struct {
	Name             string
	Method           uint16
	Flags            uint16
	CompressedSize   uint64
	UncompressedSize uint64
	Offset           uint64
}

// Encrypted reports whether the entry is protected by a password.
func (e Entry) Encrypted() bool {
	return e.Flags&flagEncrypted != 0 || e.Method == MethodAES
}

// IsEncrypted reports whether any entry of the archive is encrypted.
func IsEncrypted(reader file.Reader) (bool, error) {
	entries, err := ListEntries(reader)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.Encrypted() {
			return true, nil
		}
	}
	return false, nil
}

func findEOCD(reader file.Reader) ([]byte, int64, error) {
	size := reader.Size()

	if size < zipEOCDSize {
		return nil, 0, fmt.Errorf("not enough length to contain EOCD")
	}

	// Try reading from the end first
	data, err := reader.Read(size-zipEOCDSize, zipEOCDSize)
	if err != nil {
		return nil, 0, err
	}

	if len(data) == zipEOCDSize && binary.LittleEndian.Uint32(data[0:4]) == zipEOCDMagic &&
		binary.LittleEndian.Uint16(data[20:22]) == 0 {
		return data, size - zipEOCDSize, nil
	}

	// Search for EOCD with comment
	trySize := int64(zipMaxComment + zipEOCDSize)
	start := size - trySize
	if start < 0 {
		start = 0
		trySize = size
	}

	searchData, err := reader.Read(start, int(trySize))
	if err != nil {
		return nil, 0, err
	}

	for length := 1; length < int(trySize)-zipEOCDSize+1; length++ {
		if length+2 > len(searchData) {
			break
		}
		commentLen := binary.LittleEndian.Uint16(searchData[len(searchData)-length-2 : len(searchData)-length])
		if int(commentLen) != length {
			continue
		}
		pos := len(searchData) - length - zipEOCDSize
		if pos >= 0 && pos+4 <= len(searchData) &&
			binary.LittleEndian.Uint32(searchData[pos:pos+4]) == zipEOCDMagic {
			return searchData[pos : pos+zipEOCDSize], size - int64(length) - zipEOCDSize, nil
		}
	}

	return nil, 0, ErrNotZip
}

// ListEntries parses the central directory, following ZIP64 records when present.
func ListEntries(reader file.Reader) ([]Entry, error) {
	data, eocdOffset, err := findEOCD(reader)
	if err != nil {
		return nil, err
	}

	var eocd zipEOCD
	buf := bytes.NewReader(data[4:]) // skip magic (4 bytes)
	if err := binary.Read(buf, binary.LittleEndian, &eocd); err != nil {
		return nil, err
	}

	cdNum := uint64(eocd.CDRecords)
	cdSize := uint64(eocd.CDSize)
	cdOffset := uint64(eocd.CDOffset)

	if eocd.CDRecords == 0xffff || eocd.CDSize == 0xffffffff || eocd.CDOffset == 0xffffffff {
		eocd64LocatorOffset := eocdOffset - zip64LocatorSize
		if eocd64LocatorOffset < 0 {
			return nil, fmt.Errorf("unexpected eocd64_locator_offset")
		}

		locatorData, err := reader.Read(eocd64LocatorOffset, zip64LocatorSize)
		if err != nil {
			return nil, err
		}
		if len(locatorData) < zip64LocatorSize || binary.LittleEndian.Uint32(locatorData[0:4]) != zip64LocatorMagic {
			return nil, fmt.Errorf("unexpected EOCD64Locator magic")
		}

		var locator zip64Locator
		if err := binary.Read(bytes.NewReader(locatorData[4:]), binary.LittleEndian, &locator); err != nil {
			return nil, err
		}

		eocd64Data, err := reader.Read(int64(locator.EOCDOffset), zip64EOCDSize)
		if err != nil {
			return nil, err
		}
		if len(eocd64Data) < zip64EOCDSize || binary.LittleEndian.Uint32(eocd64Data[0:4]) != zip64EOCDMagic {
			return nil, fmt.Errorf("unexpected EOCD64 magic")
		}

		var eocd64 zip64EOCD
		if err := binary.Read(bytes.NewReader(eocd64Data[4:]), binary.LittleEndian, &eocd64); err != nil {
			return nil, err
		}

		cdNum = eocd64.CDRecords
		cdSize = eocd64.CDSize
		cdOffset = eocd64.CDOffset
	}

	cdData, err := reader.Read(int64(cdOffset), int(cdSize))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, cdNum)
	pos := 0
	for i := uint64(0); i < cdNum && pos < len(cdData); i++ {
		if pos+zipCDFHSize > len(cdData) {
			break
		}
		if binary.LittleEndian.Uint32(cdData[pos:pos+4]) != zipCDFHMagic {
			return nil, fmt.Errorf("invalid CD magic")
		}

		var cdfh zipCDFH
		if err := binary.Read(bytes.NewReader(cdData[pos+4:pos+zipCDFHSize]), binary.LittleEndian, &cdfh); err != nil {
			return nil, err
		}

		entrySize := zipCDFHSize + int(cdfh.FileNameLength) + int(cdfh.ExtraFieldLength) + int(cdfh.FileCommentLength)
		if pos+entrySize > len(cdData) {
			break
		}

		nameEnd := pos + zipCDFHSize + int(cdfh.FileNameLength)
		entry := Entry{
			Name:             string(cdData[pos+zipCDFHSize : nameEnd]),
			Method:           cdfh.CompressionMethod,
			Flags:            cdfh.Flags,
			CompressedSize:   uint64(cdfh.CompressedSize),
			UncompressedSize: uint64(cdfh.UncompressedSize),
			Offset:           uint64(cdfh.LocalHeaderOffset),
		}
		applyZip64Extra(&entry, cdfh, cdData[nameEnd:nameEnd+int(cdfh.ExtraFieldLength)])
		entries = append(entries, entry)

		pos += entrySize
	}

	return entries, nil
}

func applyZip64Extra(entry *Entry, cdfh zipCDFH, extra []byte) {
	if cdfh.UncompressedSize != 0xffffffff && cdfh.CompressedSize != 0xffffffff && cdfh.LocalHeaderOffset != 0xffffffff {
		return
	}

	for pos := 0; pos+4 <= len(extra); {
		headerID := binary.LittleEndian.Uint16(extra[pos : pos+2])
		fieldSize := int(binary.LittleEndian.Uint16(extra[pos+2 : pos+4]))
		if pos+4+fieldSize > len(extra) {
			return
		}

		if headerID == 1 { // ZIP64 extension
			ext := extra[pos+4 : pos+4+fieldSize]
			extPos := 0
			if cdfh.UncompressedSize == 0xffffffff && extPos+8 <= len(ext) {
				entry.UncompressedSize = binary.LittleEndian.Uint64(ext[extPos : extPos+8])
				extPos += 8
			}
			if cdfh.CompressedSize == 0xffffffff && extPos+8 <= len(ext) {
				entry.CompressedSize = binary.LittleEndian.Uint64(ext[extPos : extPos+8])
				extPos += 8
			}
			if cdfh.LocalHeaderOffset == 0xffffffff && extPos+8 <= len(ext) {
				entry.Offset = binary.LittleEndian.Uint64(ext[extPos : extPos+8])
			}
			return
		}

		pos += 4 + fieldSize
	}
}
