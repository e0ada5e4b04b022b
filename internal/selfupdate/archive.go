package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

const binaryName = "readquest"

// asset is a release archive and the executable packed inside it.
type asset struct {
	Archive string
	Binary  string
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

func assetFor(goos, goarch string) (asset, error) {
	if goos == "darwin" {
		return asset{Archive: binaryName + "_Darwin_all.tar.gz", Binary: binaryName}, nil
	}
	arch, ok := releaseArch[goarch]
	if !ok {
		return asset{}, fmt.Errorf("unsupported architecture: %s", goarch)
	}
	switch goos {
	case "linux":
		return asset{Archive: fmt.Sprintf("%s_Linux_%s.tar.gz", binaryName, arch), Binary: binaryName}, nil
	case "windows":
		return asset{Archive: fmt.Sprintf("%s_Windows_%s.zip", binaryName, arch), Binary: binaryName + ".exe"}, nil
	}
	return asset{}, fmt.Errorf("unsupported operating system: %s", goos)
}

// parseChecksums reads a goreleaser checksums.txt into archive -> hex digest.
func parseChecksums(data []byte) map[string]string {
	sums := map[string]string{}
	for line := range strings.Lines(string(data)) {
		fields := strings.Fields(line)
		if len(fields) == 2 {
			sums[fields[1]] = fields[0]
		}
	}
	return sums
}

func verifyChecksum(data []byte, want string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); !strings.EqualFold(got, want) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, got)
	}
	return nil
}

var errBinaryMissing = errors.New("binary not found in archive")

func (a asset) extract(data []byte) ([]byte, error) {
	if strings.HasSuffix(a.Archive, ".zip") {
		return unzipFile(data, a.Binary)
	}
	return untarFile(data, a.Binary)
}

func untarFile(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", errBinaryMissing, name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && path.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func unzipFile(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if path.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%w: %s", errBinaryMissing, name)
}
