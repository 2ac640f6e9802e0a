// Package proxy implements the rendition resolution and path-mapping
// pipeline for P5 proxy generation.
//
// It decides which quality tiers actually need to be encoded for the
// configured preview/workflow outputs, resolves per-codec encode recipes,
// maps source paths to workflow destinations, and selects the single
// artifact handed back to P5 while cleaning up everything else. Encoding
// itself is delegated to an injected Transcoder so the decision logic runs
// without spawning processes.
package proxy
