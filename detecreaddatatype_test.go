package bcgrate

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeCounter struct {
	io.Reader
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestDetectDataType(t *testing.T) {
	for _, v := range []struct {
		header   []byte
		expected DataType
	}{
		{[]byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00}, DataTypeGzip},
		{[]byte{0x50, 0x4b, 0x03, 0x04, 0x14, 0x00}, DataTypeZip},
		{[]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, DataTypeXZ},
		{[]byte{0x42, 0x5a, 0x68, 0x39}, DataTypeBZip2},
		{[]byte("sample_id,j\n"), DataTypeNoCompression},
		{[]byte{0x1f}, DataTypeNoCompression},
		{nil, DataTypeNoCompression},
	} {
		assert.Equal(t, v.expected, DetectDataType(v.header), "header %x", v.header)
	}
}

func TestMaybeDecompressGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("sample_id,j\nA,10\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	raw := &closeCounter{Reader: &buf}
	rc, err := MaybeDecompressReadCloser(raw)
	require.NoError(t, err)

	out, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "sample_id,j\nA,10\n", string(out))

	require.NoError(t, rc.Close())
	assert.Equal(t, 1, raw.closed)
}

func TestMaybeDecompressPassesPlainTextThrough(t *testing.T) {
	for _, body := range []string{"", "x", "sample_id\tj\nA\t10\n"} {
		raw := &closeCounter{Reader: bytes.NewBufferString(body)}
		rc, err := MaybeDecompressReadCloser(raw)
		require.NoError(t, err)

		out, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, body, string(out))
		require.NoError(t, rc.Close())
		assert.Equal(t, 1, raw.closed)
	}
}

func TestOpenDecompressedLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peaks.csv")
	require.NoError(t, os.WriteFile(path, []byte("sample_id,j\n"), 0o644))

	rc, err := OpenDecompressed(context.Background(), path, nil)
	require.NoError(t, err)
	defer rc.Close()

	out, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "sample_id,j\n", string(out))
}

func TestOpenGSPathWithoutClient(t *testing.T) {
	_, err := MaybeOpenFromGoogleStorage(context.Background(), "gs://bucket/peaks.csv", nil)
	assert.Error(t, err)
}

func TestSplitGSPath(t *testing.T) {
	bucket, object, err := SplitGSPath("gs://my-bucket/bcg/peaks.csv.gz")
	require.NoError(t, err)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "bcg/peaks.csv.gz", object)

	_, _, err = SplitGSPath("gs://my-bucket")
	assert.Error(t, err)
}

func TestDetermineDelimiter(t *testing.T) {
	assert.Equal(t, '\t', DetermineDelimiter([]byte("sample\ti\tj\nA\t1\t5\nA\t11\t15\n")))
	assert.Equal(t, ',', DetermineDelimiter([]byte("sample,i,j\nA,1,5\nA,11,15\n")))
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/data/peaks.csv")
	require.NoError(t, err)
	assert.Equal(t, "/data/peaks.csv", got)

	got, err = ExpandHome("gs://bucket/peaks.csv")
	require.NoError(t, err)
	assert.Equal(t, "gs://bucket/peaks.csv", got)
}
