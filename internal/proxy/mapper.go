package proxy

import (
	"log/slog"
	"path/filepath"
	"strings"

	"prevgen/internal/logging"
)

// PathMappingRule controls where workflow proxies are stored. The three
// operations apply in order: base substitution at the marker folder,
// trailing directory removal, folder append.
type PathMappingRule struct {
	MarkerFolder string
	NewBase      string
	RemoveLevels int
	AppendFolder string
}

// MapPath transforms a source file path into the workflow proxy
// destination. The function is pure and deterministic; the logger only
// receives a warning when a configured marker folder is absent from the
// source directory, which skips substitution and continues with the
// unmodified directory.
//
// When the computed destination directory equals the original source
// directory the file name gains a _proxy suffix so the source is never
// overwritten. The extension is always the resolved container.
func MapPath(sourceFile, container string, rule PathMappingRule, logger *slog.Logger) string {
	if logger == nil {
		logger = logging.NewNop()
	}

	originalDir := filepath.Dir(sourceFile)
	baseName := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	dir := originalDir

	if rule.MarkerFolder != "" && rule.NewBase != "" {
		if mapped, ok := substituteBase(dir, rule.MarkerFolder, rule.NewBase); ok {
			dir = mapped
		} else {
			logger.Warn("marker folder not found in source path, substitution skipped",
				logging.String("marker_folder", rule.MarkerFolder),
				logging.String("source_dir", dir))
		}
	}

	target := dir
	for i := 0; i < rule.RemoveLevels; i++ {
		parent := filepath.Dir(target)
		if parent == target {
			// Clamp at the filesystem root.
			break
		}
		target = parent
	}

	if rule.AppendFolder != "" {
		target = filepath.Join(target, rule.AppendFolder)
	}

	if filepath.Clean(target) == filepath.Clean(originalDir) {
		baseName += "_proxy"
	}

	return filepath.Join(target, baseName+"."+container)
}

// substituteBase rebuilds dir as newBase/marker/<rest> when marker occurs
// as a whole path segment. A mid-path marker keeps everything after it; a
// marker in final position yields newBase/marker alone.
func substituteBase(dir, marker, newBase string) (string, bool) {
	segments := splitSegments(dir)
	for i, segment := range segments {
		if segment != marker {
			continue
		}
		if i == len(segments)-1 {
			return filepath.Join(newBase, marker), true
		}
		rest := filepath.Join(segments[i+1:]...)
		return filepath.Join(newBase, marker, rest), true
	}
	return dir, false
}

func splitSegments(dir string) []string {
	cleaned := filepath.Clean(dir)
	parts := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
	return parts
}
