// Package digest computes content fingerprints for loaded tables and
// rendered artifacts.
package digest

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"os"

	"github.com/roach88/logchart/internal/logtable"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainTable    = "logchart/table/v1"
	DomainArtifact = "logchart/artifact/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Table fingerprints a LogTable by column names and the IEEE-754 bits of
// every value, in order. Two tables with the same digest render identically.
func Table(t *logtable.LogTable) string {
	var buf []byte
	for _, c := range t.Columns() {
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(c)))
		buf = append(buf, c...)
	}
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Len()))
	for i := 0; i < t.Len(); i++ {
		for _, v := range t.Values(i) {
			buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}
	return hashWithDomain(DomainTable, buf)
}

// Artifact fingerprints rendered chart bytes.
func Artifact(data []byte) string {
	return hashWithDomain(DomainArtifact, data)
}

// File fingerprints the artifact stored at path.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("digest %s: %w", path, err)
	}
	return Artifact(data), nil
}
