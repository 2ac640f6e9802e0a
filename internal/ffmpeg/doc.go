// Package ffmpeg runs FFmpeg encode jobs for the proxy generator.
//
// It translates resolved encode recipes into argument lists, spawns the
// binary with captured diagnostics, and synthesizes the placeholder still
// image used when the P5 preview output is disabled. It is the only
// package that spawns processes; everything above it works against the
// proxy.Transcoder interface.
package ffmpeg
