package selfupdate

import (
	"archive/tar"
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

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{goos: "darwin", goarch: "amd64", want: "quizdeck_Darwin_all.tar.gz"},
		{goos: "darwin", goarch: "arm64", want: "quizdeck_Darwin_all.tar.gz"},
		{goos: "linux", goarch: "amd64", want: "quizdeck_Linux_x86_64.tar.gz"},
		{goos: "linux", goarch: "arm64", want: "quizdeck_Linux_arm64.tar.gz"},
		{goos: "linux", goarch: "386", want: "quizdeck_Linux_i386.tar.gz"},
		{goos: "windows", goarch: "amd64", want: "quizdeck_Windows_x86_64.zip"},
		{goos: "windows", goarch: "arm64", want: "quizdeck_Windows_arm64.zip"},
		{goos: "freebsd", goarch: "amd64", wantErr: true},
		{goos: "linux", goarch: "mips", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
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
	manifest := []byte(
		"1a2b3c  quizdeck_Darwin_all.tar.gz\n" +
			"not a checksum line with too many fields\n" +
			"bare-line\n" +
			"   \n" +
			"4d5e6f  quizdeck_Linux_x86_64.tar.gz\n")

	sums := parseChecksums(manifest)
	assert.Equal(t, map[string]string{
		"quizdeck_Darwin_all.tar.gz":   "1a2b3c",
		"quizdeck_Linux_x86_64.tar.gz": "4d5e6f",
	}, sums)

	assert.Empty(t, parseChecksums(nil))
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release archive bytes")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, hex.EncodeToString(make([]byte, 32)))
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	binary := []byte("#!/bin/sh\necho quizdeck")

	t.Run("tar.gz", func(t *testing.T) {
		archive := makeTarGz(t, "quizdeck", binary)
		got, err := extractBinary(archive, "quizdeck_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		archive := makeTarGz(t, "README.md", binary)
		_, err := extractBinary(archive, "quizdeck_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	target := filepath.Join(t.TempDir(), "quizdeck")
	require.NoError(t, os.WriteFile(target, []byte("old build"), 0755))

	replacement := []byte("new build")
	sum := sha256.Sum256(replacement)
	require.NoError(t, swapBinary(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "mode of the old binary must survive the swap")
}

func TestSwapBinaryRejectsSumMismatch(t *testing.T) {
	target := filepath.Join(t.TempDir(), "quizdeck")
	require.NoError(t, os.WriteFile(target, []byte("old build"), 0755))

	err := swapBinary([]byte("new build"), target, make([]byte, 32))
	assert.ErrorIs(t, err, ErrChecksum)

	got, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("old build"), got, "target must be untouched on failure")
}

// hostAsset is the archive name Update will request on this platform.
func hostAsset(t *testing.T) string {
	t.Helper()
	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	return asset
}

// releaseServer serves a fake GitHub releases API plus download endpoints
// for a single v2.0.0 release.
func releaseServer(t *testing.T, archive []byte, manifest string) *httptest.Server {
	t.Helper()
	asset := hostAsset(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/deepak/quizdeck/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case "/deepak/quizdeck/releases/download/v2.0.0/" + asset:
			_, _ = w.Write(archive)
		case "/deepak/quizdeck/releases/download/v2.0.0/checksums.txt":
			_, _ = w.Write([]byte(manifest))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	binary := []byte("quizdeck v2 binary")
	archive := makeTarGz(t, "quizdeck", binary)
	archiveSum := sha256.Sum256(archive)
	manifest := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveSum[:]), hostAsset(t))

	t.Run("full update", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "quizdeck")
		require.NoError(t, os.WriteFile(execPath, []byte("quizdeck v1 binary"), 0755))

		server := releaseServer(t, archive, manifest)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
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

	t.Run("dev build refused", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already on latest", func(t *testing.T) {
		server := releaseServer(t, archive, manifest)
		checker := NewChecker(WithBaseURL(server.URL))

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("corrupt archive rejected", func(t *testing.T) {
		badManifest := fmt.Sprintf("%s  %s\n", hex.EncodeToString(make([]byte, 32)), hostAsset(t))
		server := releaseServer(t, archive, badManifest)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing asset", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/deepak/quizdeck/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// makeTarGz builds a tar.gz archive holding a single file.
func makeTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
