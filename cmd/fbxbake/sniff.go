package main

import "os"

// binaryFBXMagic is the leading byte sequence of the binary FBX
// variant this baker never parses, per spec.md §6/§7.
const binaryFBXMagic = "Kaydara FBX Binary"

// isBinaryFBX reports whether the file at path opens with the binary
// FBX magic bytes.
func isBinaryFBX(path string) (bool, error) {

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, len(binaryFBXMagic))
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return false, nil
	}
	return string(buf[:n]) == binaryFBXMagic, nil
}
