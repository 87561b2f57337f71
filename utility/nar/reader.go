// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package nar

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4"
)

// Open opens the nar archive from r. It will also check
// if the file is actually a nar archive, will return an error
// when file incorrect.
func Open(r io.ReaderAt) (*Archive, error) {
	magicBytes := make([]byte, MagicLength)
	if num, err := r.ReadAt(magicBytes, 0); err != nil {
		return nil, err
	} else if num < MagicLength || !bytes.Equal(magicBytes, magic[:]) {
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, HeaderSizeNumberLength)
	if num, err := r.ReadAt(headerSizeBytes, MagicLength); err != nil {
		return nil, err
	} else if num < HeaderSizeNumberLength {
		return nil, ErrFileFormat
	}

	headerSize, err := binaryToint64(headerSizeBytes)
	if err != nil || headerSize <= 0 {
		return nil, ErrFileFormat
	}

	headerBytes := make([]byte, headerSize)
	if num, err := r.ReadAt(headerBytes, MagicLength+HeaderSizeNumberLength); err != nil {
		return nil, err
	} else if int64(num) < headerSize {
		return nil, ErrFileFormat
	}

	var header Header
	if err := gobDecode(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	return &Archive{
		reader:    r,
		header:    header,
		dataStart: MagicLength + HeaderSizeNumberLength + headerSize,
	}, nil
}

// Archive provides concurrent io for a nar file, and can provide
// an io.Reader for each file separately to perform actions on.
type Archive struct {
	reader    io.ReaderAt
	header    Header
	dataStart int64
}

// Header returns the decoded archive header, index included.
func (a *Archive) Header() Header {
	return a.header
}

// Index returns the file index of the archive.
func (a *Archive) Index() []IndexEntry {
	return a.header.Index
}

func (a *Archive) find(name string) (IndexEntry, error) {
	for _, entry := range a.header.Index {
		if entry.Name == name {
			return entry, nil
		}
	}
	return IndexEntry{}, ErrNotFound
}

// ReadAll returns the entire contents of a file with a given name
func (a *Archive) ReadAll(name string) ([]byte, error) {
	reader, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	contents := make([]byte, reader.Size())
	if _, err := io.ReadFull(reader, contents); err != nil {
		return nil, err
	}
	return contents, nil
}

// Open returns a Reader for a file in the Archive. Every Reader owns its
// own decompression state, so files can be streamed concurrently.
func (a *Archive) Open(name string) (*Reader, error) {
	entry, err := a.find(name)
	if err != nil {
		return nil, err
	}
	section := io.NewSectionReader(a.reader, a.dataStart+entry.Offset, entry.CompressedSize)
	return &Reader{
		entry:        entry,
		decompressor: lz4.NewReader(section),
	}, nil
}

// Reader is a reader for a single file in an Archive.
// Abstracts away the location that needs to be known.
type Reader struct {
	entry        IndexEntry
	decompressor *lz4.Reader
}

// Name returns the indexed name of the file being read.
func (r *Reader) Name() string {
	return r.entry.Name
}

// Size returns the uncompressed size of the file.
func (r *Reader) Size() int64 {
	return r.entry.Size
}

// Read reads already decompressed data
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.decompressor.Read(p)
}
