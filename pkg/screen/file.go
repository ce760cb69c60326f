package screen

import (
	"bytes"
	"fmt"
	"os"

	"github.com/saylorsolutions/csvscreen/pkg/xor"
)

// Obfuscate reads inputPath, then writes its artifact to outputPath, creating or truncating it.
func Obfuscate(inputPath, outputPath string, key []byte, offset ...int) error {
	if err := xor.ValidateKey(key, offset...); err != nil {
		return err
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, data, key, offset...); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Verify decodes the artifact at obfuscatedPath and compares it to the contents of originalPath.
// An error is only returned if the comparison couldn't be made, a mismatch is reported in the Result.
func Verify(originalPath, obfuscatedPath string, key []byte, offset ...int) (Result, error) {
	if err := xor.ValidateKey(key, offset...); err != nil {
		return Result{}, err
	}
	original, err := os.ReadFile(originalPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read original: %w", err)
	}
	text, err := os.ReadFile(obfuscatedPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read obfuscated file: %w", err)
	}
	decoded, err := Decode(string(text), key, offset...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", obfuscatedPath, err)
	}
	res := Compare(original, decoded)
	res.OriginalPath = originalPath
	res.ObfuscatedPath = obfuscatedPath
	return res, nil
}
