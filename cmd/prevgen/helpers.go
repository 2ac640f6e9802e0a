package main

import (
	"log/slog"
	"path/filepath"

	"prevgen/internal/config"
	"prevgen/internal/deps"
	"prevgen/internal/logging"
	"prevgen/internal/platform"
	"prevgen/internal/proxy"
)

const logFileName = "prevgen.log"

func newLogger(cfg *config.Config, env platform.Env, quiet bool) *slog.Logger {
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = filepath.Join(env.TempDir, logFileName)
	}
	return logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		FilePath: logFile,
		Quiet:    quiet,
	})
}

func buildProxyOptions(cfg *config.Config, env platform.Env, resolution deps.Resolution) proxy.Options {
	opts := proxy.Options{
		PreviewOutput:       outputSpec(cfg.Outputs.Preview),
		WorkflowOutput:      outputSpec(cfg.Outputs.Workflow),
		PreviewQuality:      qualityProfile(cfg.Quality.Preview),
		WorkflowQuality:     qualityProfile(cfg.Quality.Workflow),
		Mapping:             mappingRule(cfg.Mapping),
		TempDir:             env.TempDir,
		AdvancedRateControl: resolution.AdvancedRateControl,
	}
	if cfg.Transcoder.Serialize {
		opts.EncodeLockPath = filepath.Join(env.TempDir, "prevgen.encode.lock")
	}
	return opts
}

func outputSpec(out config.Output) proxy.OutputSpec {
	source, _ := proxy.ParseTier(out.Source)
	return proxy.OutputSpec{Enabled: out.Enabled, Source: source}
}

func qualityProfile(q config.Quality) proxy.QualityProfile {
	return proxy.QualityProfile{
		Scale:        q.Scale,
		VideoBitrate: q.VideoBitrate,
		AudioBitrate: q.AudioBitrate,
		Codec:        proxy.ParseCodec(q.Codec),
		CodecProfile: q.CodecProfile,
		Container:    q.Container,
		CRF:          q.CRF,
		Preset:       q.Preset,
		Tune:         q.Tune,
	}
}

func mappingRule(m config.Mapping) proxy.PathMappingRule {
	return proxy.PathMappingRule{
		MarkerFolder: m.MarkerFolder,
		NewBase:      m.NewBase,
		RemoveLevels: m.RemoveLevels,
		AppendFolder: m.AppendFolder,
	}
}
