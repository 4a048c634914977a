// Package editor provides a Bubble Tea Markdown editor component backed by
// the buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering and the extension surface used by add-ons:
// immutable State snapshots, view plugins notified on every change, custom
// gutters with pointer hooks, transaction dispatch and modal menus.
package editor
