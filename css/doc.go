// Package css produces CSS text from flat style maps.
//
// This is the serialization half of the engine: the renderer decides what to
// emit and into which bucket, this package turns maps and values into valid
// CSS fragments. It covers:
//
//   - Declaration blocks: camelCase property names hyphenated (fontSize ->
//     font-size, WebkitTransform -> -webkit-transform), values formatted,
//     []any values expanded to one declaration per entry (fallback values).
//   - @keyframes blocks: steps serialized in natural order, body wrapped once
//     per configured vendor prefix and once unprefixed (always last).
//   - @font-face support: CSS font format inference from a file path and
//     magic-number validation of local font data.
//   - Raw static CSS normalization (whitespace-run collapsing) and a
//     lexer-based Verify self-check for generated output.
//
// All serialization walks property names in natural sort order so generated
// CSS is deterministic for a given style object.
package css
