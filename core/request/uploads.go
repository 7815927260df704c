package request

import (
	"io"
	"mime/multipart"
	"os"
	"strconv"
)

// Upload status codes, mirroring the CGI upload error convention.
const (
	UploadOK         = 0
	UploadErrPartial = 3
	UploadErrNoFile  = 4
)

// Upload describes one uploaded file.
type Upload struct {
	Name    string // original client-side file name
	Type    string // declared MIME type, not verified
	TmpPath string // temporary storage path on the server
	Error   int    // upload status code
	Size    int64  // 0 when the size field was absent or invalid
}

// UploadsFromMap normalizes a raw upload map into the resolved collection.
// An entry must carry name, type, tmp_name, and a numeric error to be kept;
// malformed entries are dropped. A missing or invalid size becomes 0.
func UploadsFromMap(files map[string]map[string]string) map[string]Upload {
	out := make(map[string]Upload, len(files))
	for field, raw := range files {
		name, okName := raw["name"]
		typ, okType := raw["type"]
		tmp, okTmp := raw["tmp_name"]
		errStr, okErr := raw["error"]
		if !okName || !okType || !okTmp || !okErr {
			continue
		}
		code, err := strconv.Atoi(errStr)
		if err != nil {
			continue
		}

		var size int64
		if s, ok := raw["size"]; ok {
			if n, perr := strconv.ParseInt(s, 10, 64); perr == nil && n >= 0 {
				size = n
			}
		}

		out[field] = Upload{Name: name, Type: typ, TmpPath: tmp, Error: code, Size: size}
	}
	return out
}

// spoolUpload copies a multipart file part to a temporary file so handlers
// can access it through a stable path, matching the Upload contract.
func spoolUpload(fh *multipart.FileHeader) (Upload, error) {
	src, err := fh.Open()
	if err != nil {
		return Upload{Name: fh.Filename, Error: UploadErrNoFile}, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "enlighten-upload-*")
	if err != nil {
		return Upload{Name: fh.Filename, Error: UploadErrNoFile}, err
	}
	defer tmp.Close()

	size, err := io.Copy(tmp, src)
	if err != nil {
		return Upload{Name: fh.Filename, TmpPath: tmp.Name(), Error: UploadErrPartial, Size: size}, err
	}

	return Upload{
		Name:    fh.Filename,
		Type:    fh.Header.Get("Content-Type"),
		TmpPath: tmp.Name(),
		Error:   UploadOK,
		Size:    size,
	}, nil
}
