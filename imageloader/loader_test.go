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

package imageloader_test

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/imageloader"
	"github.com/jetsetilly/gbdumper/test"
)

func image() []byte {
	data := make([]byte, 0x2000)
	for i := range data {
		data[i] = byte(i * 7)
	}
	return data
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func load(t *testing.T, filename string) imageloader.Loader {
	t.Helper()
	ld := imageloader.NewLoader(filename)
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	return ld
}

func TestFormatFromFilename(t *testing.T) {
	test.ExpectEquality(t, imageloader.FormatFromFilename("game.sav"), imageloader.Raw)
	test.ExpectEquality(t, imageloader.FormatFromFilename("game"), imageloader.Raw)
	test.ExpectEquality(t, imageloader.FormatFromFilename("game.sav.gz"), imageloader.Gzip)
	test.ExpectEquality(t, imageloader.FormatFromFilename("GAME.ZIP"), imageloader.Zip)
	test.ExpectEquality(t, imageloader.FormatFromFilename("game.7Z"), imageloader.SevenZip)
}

func TestRaw(t *testing.T) {
	data := image()
	ld := load(t, writeFile(t, "game.sav", data))
	test.ExpectSuccess(t, bytes.Equal(ld.Data, data))
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
	test.ExpectEquality(t, ld.ShortName(), "game")
	test.ExpectEquality(t, ld.Member, "")

	b, err := io.ReadAll(ld.Reader())
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(b, data))
}

func TestGzip(t *testing.T) {
	data := image()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())

	ld := load(t, writeFile(t, "game.sav.gz", buf.Bytes()))
	test.ExpectSuccess(t, bytes.Equal(ld.Data, data))
}

func TestZip(t *testing.T) {
	data := image()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	_, err := w.Create("saves/")
	test.DemandSuccess(t, err)
	f, err := w.Create("saves/game.sav")
	test.DemandSuccess(t, err)
	_, err = f.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())

	ld := load(t, writeFile(t, "game.zip", buf.Bytes()))
	test.ExpectSuccess(t, bytes.Equal(ld.Data, data))
	test.ExpectEquality(t, ld.Member, "saves/game.sav")
}

func TestCorruptArchive(t *testing.T) {
	for _, name := range []string{"bad.zip", "bad.7z", "bad.gz"} {
		ld := imageloader.NewLoader(writeFile(t, name, []byte("not an archive")))
		err := ld.Load()
		test.ExpectFailure(t, err, name)
		test.ExpectSuccess(t, curated.Is(err, imageloader.LoaderError), name)
		test.ExpectSuccess(t, !ld.HasLoaded(), name)
	}
}

func TestMissingFile(t *testing.T) {
	ld := imageloader.NewLoader(filepath.Join(t.TempDir(), "missing.sav"))
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, imageloader.LoaderError))
}

func TestHash(t *testing.T) {
	data := image()
	fn := writeFile(t, "game.sav", data)

	ld := imageloader.NewLoader(fn)
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	test.ExpectSuccess(t, ld.Load())

	ld = imageloader.NewLoader(fn)
	ld.Hash = "0000"
	test.ExpectFailure(t, ld.Load())
}

func TestHTTP(t *testing.T) {
	data := image()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.sav" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer ts.Close()

	ld := load(t, ts.URL+"/game.sav")
	test.ExpectSuccess(t, bytes.Equal(ld.Data, data))

	ld = imageloader.NewLoader(ts.URL + "/missing.sav")
	test.ExpectFailure(t, ld.Load())
}
