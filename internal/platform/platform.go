// Package platform locates the P5 installation this process runs inside.
//
// P5 exports AWPST_SRV_HOME using Unix-style paths wrapped in Tcl braces
// even on Windows ({/C/Program Files/...}); Detect normalizes that back to
// a native path and derives the temp and binaries directories from it.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Env describes the P5 host environment.
type Env struct {
	// Root is the P5 installation directory.
	Root string
	// TempDir holds per-run working files; P5 clears it on restart.
	TempDir string
	// BinDir contains the FFmpeg binary bundled with P5.
	BinDir string
}

const (
	windowsRoot = `C:\Program Files\ARCHIWARE\Data_Lifecycle_Management_Suite`
	unixRoot    = "/usr/local/aw"
)

// Detect resolves the P5 environment from AWPST_SRV_HOME, falling back to
// the platform default install location. When the install's temp
// directory does not exist the system temp directory is used instead.
func Detect() Env {
	root := ""
	if home := os.Getenv("AWPST_SRV_HOME"); home != "" {
		root = normalizeServerHome(home, runtime.GOOS)
	} else if runtime.GOOS == "windows" {
		root = windowsRoot
	} else {
		root = unixRoot
	}

	tempDir := filepath.Join(root, "temp")
	if info, err := os.Stat(tempDir); err != nil || !info.IsDir() {
		tempDir = os.TempDir()
	}

	binDir := filepath.Join(root, "bin")
	if runtime.GOOS == "windows" {
		binDir = filepath.Join(root, "bin", "prevgen")
	}

	return Env{Root: root, TempDir: tempDir, BinDir: binDir}
}

// FFmpegName returns the platform-specific FFmpeg executable name.
func FFmpegName() string {
	if runtime.GOOS == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

// normalizeServerHome converts a P5-formatted path to native form:
// Tcl-style braces are stripped, and on Windows a Unix-style drive prefix
// (/C/...) becomes a drive letter (C:\...).
func normalizeServerHome(path, goos string) string {
	if strings.HasPrefix(path, "{") && strings.HasSuffix(path, "}") {
		path = path[1 : len(path)-1]
	}
	if goos == "windows" && len(path) > 2 && path[0] == '/' && path[2] == '/' {
		return string(path[1]) + ":" + strings.ReplaceAll(path[2:], "/", `\`)
	}
	return filepath.Clean(path)
}
