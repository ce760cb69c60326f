/*
Package screen produces and verifies obfuscated CSV artifacts.

An artifact is the standard padded Base64 encoding of the XOR screened payload, followed by a single newline.
See package xor for the screen itself.

# Obfuscating:

Obfuscate reads a source file whole, screens and encodes it, and writes the artifact, replacing any existing file.
The key is validated before any file is touched.

# Verifying:

Verify reverses the process and compares the result to the original byte-for-byte.
Whitespace anywhere in the artifact is ignored, where whitespace is any rune for which unicode.IsSpace reports true.
A mismatch is not an error; it's reported in the returned Result, which records the first point of divergence and both lengths.
*/
package screen
