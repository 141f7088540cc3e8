package bcgrate

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// SplitGSPath splits gs://bucket/path/to/object into its bucket and object
// names.
func SplitGSPath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into a bucket and an object, but got %d parts: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// MaybeOpenFromGoogleStorage opens path for reading. If client is non-nil and
// path begins with gs://, the object is streamed from Google Cloud Storage;
// otherwise path is opened from the local filesystem (after ~ expansion).
func MaybeOpenFromGoogleStorage(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if client != nil && strings.HasPrefix(path, "gs://") {
		bucketName, objectName, err := SplitGSPath(path)
		if err != nil {
			return nil, err
		}

		rdr, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return rdr, nil
	}

	if strings.HasPrefix(path, "gs://") {
		return nil, fmt.Errorf("%s looks like a Google Storage path, but no storage client was provided", path)
	}

	local, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(local)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// OpenDecompressed opens path (see MaybeOpenFromGoogleStorage) and, if it is
// compressed, wraps it in the matching decompressor. Closing the result closes
// the underlying file or object reader.
func OpenDecompressed(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	raw, err := MaybeOpenFromGoogleStorage(ctx, path, client)
	if err != nil {
		return nil, err
	}

	rc, err := MaybeDecompressReadCloser(raw)
	if err != nil {
		raw.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	return rc, nil
}
