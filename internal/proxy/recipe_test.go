package proxy_test

import (
	"testing"

	"prevgen/internal/proxy"
)

func h264Profile() proxy.QualityProfile {
	return proxy.QualityProfile{
		Scale:        "1920",
		VideoBitrate: "5000k",
		AudioBitrate: "128k",
		Codec:        proxy.CodecH264,
		CRF:          "18",
		Preset:       "medium",
		Tune:         "film",
	}
}

func TestResolveRecipeH264Advanced(t *testing.T) {
	recipe := proxy.ResolveRecipe(h264Profile(), true)

	if recipe.VideoEncoder != "libx264" {
		t.Fatalf("encoder = %q, want libx264", recipe.VideoEncoder)
	}
	if recipe.CRF != "18" || recipe.Preset != "medium" || recipe.Tune != "film" {
		t.Errorf("unexpected rate control: crf=%q preset=%q tune=%q", recipe.CRF, recipe.Preset, recipe.Tune)
	}
	if recipe.VideoBitrate != "" {
		t.Errorf("bitrate should be unset with CRF rate control, got %q", recipe.VideoBitrate)
	}
	if recipe.PixelFormat != "yuv420p" {
		t.Errorf("pixel format = %q, want yuv420p", recipe.PixelFormat)
	}
	if recipe.AudioCodec != "aac" || recipe.AudioBitrate != "128k" {
		t.Errorf("unexpected audio: codec=%q bitrate=%q", recipe.AudioCodec, recipe.AudioBitrate)
	}
	if !recipe.FastStart {
		t.Error("expected faststart for h264")
	}
	if recipe.Container != "mp4" {
		t.Errorf("container = %q, want mp4", recipe.Container)
	}
}

func TestResolveRecipeH264Constrained(t *testing.T) {
	recipe := proxy.ResolveRecipe(h264Profile(), false)

	if recipe.VideoEncoder != "libopenh264" {
		t.Fatalf("encoder = %q, want libopenh264", recipe.VideoEncoder)
	}
	if recipe.VideoBitrate != "5000k" {
		t.Errorf("bitrate = %q, want 5000k", recipe.VideoBitrate)
	}
	if recipe.CRF != "" || recipe.Preset != "" || recipe.Tune != "" {
		t.Errorf("CRF fields must be unset without libx264: crf=%q preset=%q tune=%q", recipe.CRF, recipe.Preset, recipe.Tune)
	}
}

func TestResolveRecipeProRes(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"proxy", "0"},
		{"lt", "1"},
		{"standard", "2"},
		{"hq", "3"},
		{"HQ", "3"},
		{"", "1"},
		{"bogus", "1"},
	}
	for _, tc := range tests {
		profile := proxy.QualityProfile{Scale: "1920", Codec: proxy.CodecProRes, CodecProfile: tc.token}
		recipe := proxy.ResolveRecipe(profile, true)
		if recipe.VideoEncoder != "prores_ks" {
			t.Fatalf("token %q: encoder = %q, want prores_ks", tc.token, recipe.VideoEncoder)
		}
		if recipe.Profile != tc.want {
			t.Errorf("token %q: profile = %q, want %q", tc.token, recipe.Profile, tc.want)
		}
		if recipe.AudioCodec != "pcm_s16le" || recipe.AudioRate != "48000" {
			t.Errorf("token %q: unexpected audio %q/%q", tc.token, recipe.AudioCodec, recipe.AudioRate)
		}
		if recipe.Container != "mov" {
			t.Errorf("token %q: container = %q, want mov", tc.token, recipe.Container)
		}
		if recipe.CRF != "" || recipe.VideoBitrate != "" {
			t.Errorf("token %q: rate control parameters do not apply to prores", tc.token)
		}
	}
}

func TestResolveRecipeDNxHD(t *testing.T) {
	profile := proxy.QualityProfile{Scale: "1920", Codec: proxy.CodecDNxHD}
	recipe := proxy.ResolveRecipe(profile, true)

	if recipe.VideoEncoder != "dnxhd" {
		t.Fatalf("encoder = %q, want dnxhd", recipe.VideoEncoder)
	}
	if recipe.Profile != "dnxhr_sq" {
		t.Errorf("default profile = %q, want dnxhr_sq", recipe.Profile)
	}
	if recipe.PixelFormat != "yuv422p" {
		t.Errorf("pixel format = %q, want yuv422p", recipe.PixelFormat)
	}
	if recipe.Container != "mxf" {
		t.Errorf("container = %q, want mxf", recipe.Container)
	}

	profile.CodecProfile = "dnxhr_hqx"
	if got := proxy.ResolveRecipe(profile, true).Profile; got != "dnxhr_hqx" {
		t.Errorf("explicit profile = %q, want dnxhr_hqx", got)
	}
}

func TestResolveRecipeUnknownCodecIgnoresCapabilityFlag(t *testing.T) {
	profile := proxy.QualityProfile{Scale: "320", VideoBitrate: "256k", AudioBitrate: "64k", Codec: proxy.ParseCodec("av1")}

	for _, advanced := range []bool{true, false} {
		recipe := proxy.ResolveRecipe(profile, advanced)
		if recipe.VideoEncoder != "libopenh264" {
			t.Fatalf("advanced=%t: encoder = %q, want libopenh264", advanced, recipe.VideoEncoder)
		}
		if recipe.CRF != "" {
			t.Errorf("advanced=%t: unknown codec must never use CRF", advanced)
		}
		if recipe.VideoBitrate != "256k" {
			t.Errorf("advanced=%t: bitrate = %q, want 256k", advanced, recipe.VideoBitrate)
		}
		if recipe.Container != "mp4" {
			t.Errorf("advanced=%t: container = %q, want mp4", advanced, recipe.Container)
		}
	}
}

func TestResolveContainerOverride(t *testing.T) {
	profile := proxy.QualityProfile{Codec: proxy.CodecProRes, Container: "mkv"}
	if got := proxy.ResolveContainer(profile); got != "mkv" {
		t.Errorf("container = %q, want explicit override mkv", got)
	}
}

func TestParseCodec(t *testing.T) {
	tests := []struct {
		token string
		want  proxy.Codec
	}{
		{"h264", proxy.CodecH264},
		{" H264 ", proxy.CodecH264},
		{"prores", proxy.CodecProRes},
		{"dnxhd", proxy.CodecDNxHD},
		{"vp9", proxy.CodecUnknown},
		{"", proxy.CodecUnknown},
	}
	for _, tc := range tests {
		if got := proxy.ParseCodec(tc.token); got != tc.want {
			t.Errorf("ParseCodec(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}
