// Package render turns generated mazes into presentable output.
//
// Three sinks are provided:
//
//   - Text renders the blockwise grid with wall and open glyphs, suitable
//     for terminals (Unicode blocks by default, plain ASCII on request).
//   - SVG renders the blockwise grid as a standalone vector image with
//     one rectangle per horizontal wall run.
//   - JSON encodes the compact grid together with its generation
//     parameters as a self-describing document.
//
// All sinks read through the decoder views in package maze and never
// modify the underlying buffer. Rendering the same maze twice yields
// identical output, so rendered artifacts are safe to cache by a hash of
// the generation parameters.
package render
