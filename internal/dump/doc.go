// Package dump renders a byte stream as an offset-indexed table.
//
// The pieces, leaves first:
//
//   - Classify buckets a byte into Null, Control, Printable or Other.
//   - FormatRow turns one chunk into fixed-width numeric cells plus the
//     ASCII sidebar, padding a short final chunk so every row lines up.
//   - Colorizer decorates text by Style; Plain is the identity used when
//     colors are off, so both paths produce the same characters.
//   - Renderer composes the header, row lines and footer.
//   - Run drives a source.Source until the length limit, end of stream
//     or cancellation of its context, and always finishes with the footer
//     unless writing to the output failed.
package dump
