// Package renderer implements the caching CSS rendering engine.
//
// A Renderer turns declarative style definitions into deduplicated CSS text
// and stable identifiers referencing that text. Clients call a Render* method
// once per logical rule per render; the renderer guarantees that semantically
// identical invocations reuse previously generated CSS and that a dynamic
// variant of a rule only ever emits the difference from the rule's static
// baseline.
//
// # Identity and naming
//
// Rule and keyframe definitions are identified by handle pointer, never by
// value: every distinct *Rule or *Keyframe is assigned a monotonically
// increasing index on first sight, stable until Clear. Class names are
// "c<index><token>" where the token is derived from the properties map
// (style.RefToken); the bare "c<index>" form is the rule's base variant.
// Animation names use the "k" prefix the same way.
//
// # Base and delta
//
// The first time a rule is rendered with non-empty properties its base variant
// is rendered first, so a baseline always exists. A dynamic variant is diffed
// against that baseline and only the delta is emitted; callers receive
// "c0 c0-xxxxxxxx" and apply both classes. A variant that resolves to exactly
// the base style emits nothing and collapses to the base class alone.
//
// # Buckets and output
//
// Generated fragments accumulate into append-only buffers: font faces,
// statics, plain rules, one bucket per combined media condition (nested
// @media blocks are joined with "and"), and keyframes. RenderToString
// concatenates them in that fixed order; media buckets keep first-insertion
// order. Subscribers are notified synchronously with the full CSS text after
// every call that changed any buffer.
//
// A Renderer is not safe for concurrent use. Each instance owns its caches;
// instances share nothing.
package renderer
