package evo

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
)

// EncodeBrain serializes a brain's weights and biases to gob bytes. The
// encoding round-trips value-for-value through DecodeBrain.
func EncodeBrain(b *Brain) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(b); err != nil {
		return nil, fmt.Errorf("failed to encode brain: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeBrain reconstructs a brain from gob bytes produced by EncodeBrain.
func DecodeBrain(data []byte) (*Brain, error) {
	b := &Brain{}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(b); err != nil {
		return nil, fmt.Errorf("failed to decode brain: %w", err)
	}
	return b, nil
}

// SaveBrain writes a brain to a gzip-compressed gob file.
func SaveBrain(b *Brain, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create brain file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	if err := gob.NewEncoder(gzWriter).Encode(b); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode brain: %w", err)
	}
	return gzWriter.Close()
}

// LoadBrain reads a brain from a file written by SaveBrain.
func LoadBrain(filePath string) (*Brain, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open brain file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for '%s': %w", filePath, err)
	}
	defer gzReader.Close()

	b := &Brain{}
	if err := gob.NewDecoder(gzReader).Decode(b); err != nil {
		return nil, fmt.Errorf("failed to decode brain from '%s': %w", filePath, err)
	}
	return b, nil
}
