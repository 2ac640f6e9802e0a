package proxy

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"prevgen/internal/fileutil"
	"prevgen/internal/logging"
)

// Options is the immutable configuration snapshot the generator works
// from. It is assembled once at startup; components never consult ambient
// global state.
type Options struct {
	PreviewOutput  OutputSpec
	WorkflowOutput OutputSpec

	PreviewQuality  QualityProfile
	WorkflowQuality QualityProfile

	Mapping PathMappingRule

	// TempDir receives the transient per-run artifacts.
	TempDir string

	// AdvancedRateControl reports whether the active FFmpeg carries
	// libx264, discovered once at startup.
	AdvancedRateControl bool

	// EncodeLockPath, when set, names a lock file that serializes encodes
	// across concurrent P5 invocations. Empty disables locking.
	EncodeLockPath string
}

func (o Options) quality(t Tier) QualityProfile {
	if t == TierWorkflow {
		return o.WorkflowQuality
	}
	return o.PreviewQuality
}

// Generator runs the proxy pipeline for one source file.
type Generator struct {
	opts       Options
	transcoder Transcoder
	logger     *slog.Logger
	runID      string
}

// New constructs a generator. A nil logger is replaced with a no-op one.
func New(opts Options, transcoder Transcoder, logger *slog.Logger) *Generator {
	runID := uuid.NewString()
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{
		opts:       opts,
		transcoder: transcoder,
		logger:     logger.With(logging.String("run_id", runID)),
		runID:      runID,
	}
}

// Generate produces the proxies required by the configured outputs and
// returns the path of the single artifact handed back to P5. Transient
// artifacts that are not returned are deleted before Generate returns.
func (g *Generator) Generate(ctx context.Context, sourceFile string) (string, error) {
	start := time.Now()

	info, err := os.Stat(sourceFile)
	if err != nil || info.IsDir() {
		return "", Wrap(ErrConfiguration, "input", fmt.Sprintf("source file not found: %s", sourceFile), err)
	}

	g.logger.Info("processing source file", logging.String("source", sourceFile))

	needs := NeededTiers(g.opts.PreviewOutput, g.opts.WorkflowOutput)
	produced, err := g.encodeTiers(ctx, sourceFile, needs)
	if err != nil {
		return "", err
	}

	if g.opts.WorkflowOutput.Enabled {
		if err := g.storeWorkflowCopy(sourceFile, produced); err != nil {
			return "", err
		}
	}

	returnPath, err := g.selectReturnArtifact(ctx, produced)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(returnPath); err != nil {
		return "", Wrap(ErrMissingArtifact, "return", fmt.Sprintf("return artifact does not exist: %s", returnPath), err)
	}

	g.cleanup(produced, returnPath)

	g.logger.Info("returning artifact",
		logging.String("path", returnPath),
		logging.Duration("elapsed", time.Since(start)))
	return returnPath, nil
}

// encodeTiers runs the required encodes strictly one after another. When
// an encode lock is configured it is held for the whole encode section so
// concurrent invocations never run FFmpeg simultaneously.
func (g *Generator) encodeTiers(ctx context.Context, sourceFile string, needs TierSet) (RenditionSet, error) {
	var produced RenditionSet
	if needs.Empty() {
		return produced, nil
	}

	if g.opts.EncodeLockPath != "" {
		lock := flock.New(g.opts.EncodeLockPath)
		if err := lock.Lock(); err != nil {
			g.logger.Warn("encode lock unavailable, continuing without serialization", logging.Error(err))
		} else {
			defer func() {
				if err := lock.Unlock(); err != nil {
					g.logger.Warn("failed to release encode lock", logging.Error(err))
				}
			}()
		}
	}

	for _, tier := range []Tier{TierPreview, TierWorkflow} {
		if !needs.Contains(tier) {
			continue
		}
		outPath, err := g.encodeTier(ctx, sourceFile, tier)
		if err != nil {
			return produced, err
		}
		if tier == TierWorkflow {
			produced.WorkflowPath = outPath
		} else {
			produced.PreviewPath = outPath
		}
	}
	return produced, nil
}

func (g *Generator) encodeTier(ctx context.Context, sourceFile string, tier Tier) (string, error) {
	profile := g.opts.quality(tier)
	recipe := ResolveRecipe(profile, g.opts.AdvancedRateControl)

	baseName := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	outPath := filepath.Join(g.opts.TempDir, fmt.Sprintf("%s_%s.%s", baseName, tier, recipe.Container))

	g.logger.Info("generating proxy",
		logging.String("tier", tier.String()),
		logging.String("codec", profile.Codec.String()),
		logging.String("encoder", recipe.VideoEncoder),
		logging.String("output", outPath))

	req := TranscodeRequest{Input: sourceFile, Output: outPath, Recipe: recipe}
	if err := g.transcoder.Transcode(ctx, req); err != nil {
		return "", Wrap(ErrExternalTool, "encode", fmt.Sprintf("failed to generate %s quality proxy", tier), err)
	}
	return outPath, nil
}

// storeWorkflowCopy copies (never moves) the workflow output's source
// artifact to the mapped destination, creating directories as needed.
func (g *Generator) storeWorkflowCopy(sourceFile string, produced RenditionSet) error {
	tier := g.opts.WorkflowOutput.Source
	artifact := produced.Path(tier)
	container := ResolveContainer(g.opts.quality(tier))

	dest := MapPath(sourceFile, container, g.opts.Mapping, g.logger)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return Wrap(ErrExternalTool, "store", fmt.Sprintf("create workflow destination directory for %s", dest), err)
	}
	if err := fileutil.CopyFileVerified(artifact, dest); err != nil {
		return Wrap(ErrExternalTool, "store", fmt.Sprintf("copy workflow proxy to %s", dest), err)
	}

	g.logger.Info("stored workflow proxy",
		logging.String("tier", tier.String()),
		logging.String("destination", dest))
	return nil
}

// selectReturnArtifact picks the artifact P5 receives. With the preview
// output disabled a placeholder still image is synthesized so the caller
// always gets a valid file.
func (g *Generator) selectReturnArtifact(ctx context.Context, produced RenditionSet) (string, error) {
	if g.opts.PreviewOutput.Enabled {
		return produced.Path(g.opts.PreviewOutput.Source), nil
	}

	dummy := filepath.Join(g.opts.TempDir, fmt.Sprintf("proxy_dummy_%s.jpg", g.runID))
	if err := g.transcoder.Placeholder(ctx, dummy); err != nil {
		return "", Wrap(ErrExternalTool, "placeholder", "synthesize placeholder image", err)
	}
	g.logger.Info("preview output disabled, returning placeholder image", logging.String("path", dummy))
	return dummy, nil
}

// cleanup deletes every transient artifact that is not the return
// artifact, including ones already copied to the workflow destination.
func (g *Generator) cleanup(produced RenditionSet, returnPath string) {
	for _, path := range []string{produced.PreviewPath, produced.WorkflowPath} {
		if path == "" || path == returnPath {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			g.logger.Warn("failed to remove transient artifact",
				logging.String("path", path), logging.Error(err))
		}
	}
}
