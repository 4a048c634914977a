// Package syntax builds the structural annotation the editor exposes to
// extensions: a flat, document-ordered list of Markdown block nodes with
// byte ranges and line classes.
//
// Parsing is delegated to goldmark. Line classes follow the HyperMD naming
// used by Markdown live-preview editors ("HyperMD-header HyperMD-header-2",
// "HyperMD-codeblock", ...), so consumers can classify lines by pattern
// without depending on goldmark's AST.
package syntax
