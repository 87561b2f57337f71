// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package nar is an api for an lz4 backed resource archive format.
// Its purpose is to be well suited for streaming resources out of it.
// It's designed so (unlike tar) it knows where all the files are located
// before they're read. The archive itself is not compressed in any form,
// rather every file is individually compressed, so it can be immediately
// read from its place and decompressed on the fly. This somewhat
// compromises space efficiency, but space efficiency is not the primary
// goal of this package. It instead focuses on getting resources from disk
// to a usable state as fast as possible. It can be read from concurrently.
package nar

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
)

// package errors
var (
	ErrFileFormat = errors.New("corrupted or not a nar archive")
	ErrNotFound   = errors.New("file not present in the archive")
)

// Sizes relevant to the header of file
const (
	MagicLength            = 4
	HeaderSizeNumberLength = 16
)

var magic = [MagicLength]byte{'N', 'A', 'R', '\x00'}

// IndexEntry is info for one file in the file index. Offset is relative
// to the start of the data section, so the header can be resized without
// touching the index.
type IndexEntry struct {
	Name           string
	Offset         int64
	Size           int64
	CompressedSize int64
}

// Header is the file header for nar files.
type Header struct {
	Author      string
	DateCreated int64
	Version     int64
	Index       []IndexEntry
}

func int64ToBinary(num int64) []byte {
	numBytes := make([]byte, HeaderSizeNumberLength)
	binary.PutVarint(numBytes, num)
	return numBytes
}

func binaryToint64(bts []byte) (int64, error) {
	num, err := binary.ReadVarint(bytes.NewReader(bts))
	if err != nil {
		return 0, err
	}
	return num, nil
}

func gobEncode(data interface{}) ([]byte, error) {
	var encoded bytes.Buffer
	enc := gob.NewEncoder(&encoded)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

func gobDecode(obj interface{}, bts []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(bts)).Decode(obj)
}
