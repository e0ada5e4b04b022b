package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const latestPath = "/repos/dohyeon0608/ReadQuest/releases/latest"

func releaseServer(t *testing.T, tag string, files map[string][]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == latestPath {
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
			return
		}
		prefix := "/dohyeon0608/ReadQuest/releases/download/" + tag + "/"
		if len(r.URL.Path) > len(prefix) && r.URL.Path[:len(prefix)] == prefix {
			if data, ok := files[r.URL.Path[len(prefix):]]; ok {
				_, _ = w.Write(data)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer release", "v1.0.0", "v1.2.0", true},
		{"same release", "v1.2.0", "v1.2.0", false},
		{"older release", "v2.0.0", "v1.9.9", false},
		{"missing v prefix", "1.0.0", "v1.0.1", true},
		{"unparseable current", "nightly", "v1.0.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := releaseServer(t, tt.latest, nil)
			res, err := NewChecker(WithBaseURL(srv.URL)).Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.UpdateAvailable)
			assert.Equal(t, tt.latest, res.LatestVersion)
		})
	}
}

func TestCheckRejectsBadTag(t *testing.T) {
	srv := releaseServer(t, "latest", nil)
	_, err := NewChecker(WithBaseURL(srv.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-semver")
}

func TestAssetFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         asset
		wantErr      bool
	}{
		{"darwin", "arm64", asset{"readquest_Darwin_all.tar.gz", "readquest"}, false},
		{"linux", "amd64", asset{"readquest_Linux_x86_64.tar.gz", "readquest"}, false},
		{"linux", "386", asset{"readquest_Linux_i386.tar.gz", "readquest"}, false},
		{"windows", "arm64", asset{"readquest_Windows_arm64.zip", "readquest.exe"}, false},
		{"freebsd", "amd64", asset{}, true},
		{"linux", "mips", asset{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	got := parseChecksums([]byte("abc  readquest_Darwin_all.tar.gz\nbadline\n\nx y z\ndef  other.zip"))
	assert.Equal(t, map[string]string{
		"readquest_Darwin_all.tar.gz": "abc",
		"other.zip":                   "def",
	}, got)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("chapter one")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))
	assert.ErrorIs(t, verifyChecksum(data, "00"), ErrChecksum)
}

func TestExtract(t *testing.T) {
	content := []byte("#!/bin/sh\necho readquest")

	t.Run("tar.gz", func(t *testing.T) {
		a := asset{Archive: "readquest_Linux_x86_64.tar.gz", Binary: "readquest"}
		got, err := a.extract(buildTarGz(t, "dist/readquest", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		a := asset{Archive: "readquest_Windows_x86_64.zip", Binary: "readquest.exe"}
		got, err := a.extract(buildZip(t, "readquest.exe", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing", func(t *testing.T) {
		a := asset{Archive: "readquest_Linux_x86_64.tar.gz", Binary: "readquest"}
		_, err := a.extract(buildTarGz(t, "README.md", content))
		assert.ErrorIs(t, err, errBinaryMissing)
	})
}

func TestReplaceFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "readquest")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	require.NoError(t, replaceFile(target, []byte("new")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	a, err := assetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		t.Skipf("no release asset for %s/%s", runtime.GOOS, runtime.GOARCH)
	}
	binary := []byte("new-readquest-binary")
	var archive []byte
	if filepath.Ext(a.Archive) == ".zip" {
		archive = buildZip(t, a.Binary, binary)
	} else {
		archive = buildTarGz(t, a.Binary, binary)
	}
	sum := sha256.Sum256(archive)
	goodSums := []byte(fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), a.Archive))

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), a.Binary)
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		srv := releaseServer(t, "v2.0.0", map[string][]byte{a.Archive: archive, "checksums.txt": goodSums})
		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("pinned version skips check", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), a.Binary)
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		srv := releaseServer(t, "v1.5.0", map[string][]byte{a.Archive: archive, "checksums.txt": goodSums})
		checker := NewChecker(
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "v1.5.0"},
			func(p UpdateProgress) { stages = append(stages, p.Stage) })
		require.NoError(t, err)
		assert.NotContains(t, stages, "check")
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := releaseServer(t, "v1.0.0", nil)
		err := NewChecker(WithBaseURL(srv.URL)).Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		bad := []byte(fmt.Sprintf("%064d  %s\n", 0, a.Archive))
		srv := releaseServer(t, "v2.0.0", map[string][]byte{a.Archive: archive, "checksums.txt": bad})
		err := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		srv := releaseServer(t, "v2.0.0", nil)
		err := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0755, Typeflag: tar.TypeReg}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
