package atlas

import "os"
import "io/fs"

import "github.com/tinne26/btxt/internal"

// Reads the bitmap file at the given path and decodes it as an atlas.
// Read failures are returned as [*IOError], header problems as
// [*DecodeError]. Both are fatal for the atlas being loaded; there
// are no retries.
func Load(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{ Path: path, Err: err }
	}
	return decodeAndLog(path, data)
}

// Same as [Load](), but for embedded and other virtual filesystems.
func LoadFS(filesys fs.FS, path string) (*Atlas, error) {
	data, err := fs.ReadFile(filesys, path)
	if err != nil {
		return nil, &IOError{ Path: path, Err: err }
	}
	return decodeAndLog(path, data)
}

func decodeAndLog(path string, data []byte) (*Atlas, error) {
	atlas, err := Decode(data)
	if err != nil {
		internal.Logger().Debug("atlas decode failed", "path", path, "error", err)
		return nil, err
	}
	internal.Logger().Debug(
		"atlas loaded", "path", path, "id", atlas.ID(),
		"width", atlas.Width(), "height", atlas.Height(),
		"bitsPerPixel", atlas.BitsPerPixel(),
	)
	return atlas, nil
}
