package helpers

import (
	"crypto/sha256"
	"fmt"
	"os"
)

// Checksum returns the SHA-256 of the given bytes in hexadecimal.
func Checksum(bytes []byte) string {
	h := sha256.New()
	h.Write(bytes)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// ChecksumFile reads the file content to determine the checksum.
func ChecksumFile(path string) (string, error) {
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Checksum(contentBytes), nil
}

// SameContent reports if two files have the same content.
// A missing target is never the same.
func SameContent(source, target string) (bool, error) {
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return false, nil
	}
	sourceChecksum, err := ChecksumFile(source)
	if err != nil {
		return false, err
	}
	targetChecksum, err := ChecksumFile(target)
	if err != nil {
		return false, err
	}
	return sourceChecksum == targetChecksum, nil
}
