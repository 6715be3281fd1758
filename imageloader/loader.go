// This file is part of gbdumper.
//
// gbdumper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbdumper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbdumper.  If not, see <https://www.gnu.org/licenses/>.

package imageloader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/logger"
)

// Sentinal error pattern for the imageloader package.
const LoaderError = "imageloader: %v"

// Loader is used to specify the image to load.
type Loader struct {
	// filename or URL of the image
	Filename string

	// format of the image, decided by the file extension
	Format Format

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// name of the file inside an archive that the data was taken from. empty
	// for the Raw and Gzip formats
	Member string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		Format:   FormatFromFilename(filename),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	name := filepath.Base(ld.Filename)
	return strings.TrimSuffix(name, filepath.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.Data != nil
}

// Reader returns an io.Reader for the loaded data. Returns nil if Load() has
// not been called.
func (ld Loader) Reader() io.Reader {
	if ld.Data == nil {
		return nil
	}
	return bytes.NewReader(ld.Data)
}

// Load the image data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if ld.Data != nil {
		return nil
	}

	raw, err := ld.fetch()
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	data, err := ld.decompress(raw)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(LoaderError, "unexpected hash value")
	}
	ld.Hash = hash
	ld.Data = data

	if ld.Member != "" {
		logger.Logf(logger.Allow, "imageloader", "%s: %s (%s, %d bytes)", ld.ShortName(), ld.Member, ld.Format, len(data))
	} else {
		logger.Logf(logger.Allow, "imageloader", "%s (%s, %d bytes)", ld.ShortName(), ld.Format, len(data))
	}

	return nil
}

func (ld *Loader) fetch() ([]byte, error) {
	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		// single letter schemes are windows drive letters
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s", resp.Status)
		}
		return io.ReadAll(resp.Body)

	case "file":
		return os.ReadFile(ld.Filename)
	}

	return nil, fmt.Errorf("unsupported URL scheme (%s)", scheme)
}

func (ld *Loader) decompress(raw []byte) ([]byte, error) {
	switch ld.Format {
	case Gzip:
		r, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)

	case Zip:
		zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
		if err != nil {
			return nil, err
		}
		for _, f := range zr.File {
			if f.FileInfo().IsDir() {
				continue
			}
			ld.Member = f.Name
			return readMember(f.Open)
		}
		return nil, fmt.Errorf("archive is empty")

	case SevenZip:
		zr, err := sevenzip.NewReader(bytes.NewReader(raw), int64(len(raw)))
		if err != nil {
			return nil, err
		}
		for _, f := range zr.File {
			if f.FileInfo().IsDir() {
				continue
			}
			ld.Member = f.Name
			return readMember(f.Open)
		}
		return nil, fmt.Errorf("archive is empty")
	}

	return raw, nil
}

func readMember(open func() (io.ReadCloser, error)) ([]byte, error) {
	r, err := open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
