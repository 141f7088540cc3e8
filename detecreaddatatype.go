package bcgrate

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

func (d DataType) String() string {
	switch d {
	case DataTypeNoCompression:
		return "uncompressed"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZ:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	}

	return "invalid"
}

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType matches the leading bytes of a stream against the known
// compression signatures. Short or empty headers are treated as uncompressed.
func DetectDataType(header []byte) DataType {
	for dt, sig := range byteCodeSigs {
		if bytes.HasPrefix(header, sig) {
			return dt
		}
	}

	return DataTypeNoCompression
}

// MaybeDecompressReadCloser sniffs the first bytes of r and, if they match a
// known compression format, returns a decompressing reader. The stream does not
// need to be seekable, so it works for Google Storage readers as well as
// files. Closing the result closes r.
func MaybeDecompressReadCloser(r io.ReadCloser) (io.ReadCloser, error) {
	buffered := bufio.NewReader(r)

	// Peek returns what it could alongside io.EOF for very short inputs.
	header, err := buffered.Peek(6)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}

	var dec io.Reader
	switch DetectDataType(header) {
	case DataTypeGzip:
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, err
		}
		dec = gz
	case DataTypeZip:
		// Only the first member of an archive is read.
		zr := zipstream.NewReader(buffered)
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		dec = zr
	case DataTypeBZip2:
		dec = bzip2.NewReader(buffered)
	case DataTypeXZ:
		reader, err := xz.NewReader(buffered, 0)
		if err != nil {
			return nil, err
		}
		dec = reader
	case DataTypeZ:
		zr, err := zlib.NewReader(buffered)
		if err != nil {
			return nil, err
		}
		dec = zr
	default:
		// No data type detected. For now, we assume this is uncompressed.
		dec = buffered
	}

	return &layeredReadCloser{Reader: dec, underlying: r}, nil
}

// layeredReadCloser reads through a decompressor and closes both it (when it
// can be closed) and the stream beneath it.
type layeredReadCloser struct {
	io.Reader
	underlying io.Closer
}

func (c *layeredReadCloser) Close() error {
	if closer, ok := c.Reader.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			c.underlying.Close()
			return err
		}
	}

	return c.underlying.Close()
}
