/*
Package xor provides the repeating-key XOR screen used to obfuscate CSV payloads.

Note that this is NOT encryption, since it is easily reversible.
A short static key hides data from casual inspection and nothing more.

# How it works:

Each data byte is XORed with the key byte at the current position, then the position advances.
When the last key byte is used, the first will be used again, operating like a ring buffer.
With the default offset of 0, output byte i is data[i] ^ key[i % len(key)].

Applying the screen twice with the same key and offset returns the original data.
Apply works on whole buffers, while Reader and Writer screen bytes as they stream through.

# Important note:

The same key and offset must be provided to reverse the process.
An empty key is rejected with ErrEmptyKey, since it could only ever produce an identity transform.
*/
package xor
