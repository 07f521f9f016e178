package harness

import (
	"encoding/json"

	"github.com/minio/highwayhash"
)

// hashKey is a fixed 32-byte key; shape fingerprints only need to be stable
// within a single run/report, not cryptographically keyed per caller.
var hashKey = []byte("tshape-skeleton-fingerprint-v001")

// ShapeHash fingerprints a synthesized skeleton: two templates producing the
// same JSON shape hash identically regardless of key insertion order, since
// json.Marshal renders Go map keys in sorted order.
func ShapeHash(skeleton map[string]interface{}) (uint64, error) {
	b, err := json.Marshal(skeleton)
	if err != nil {
		return 0, err
	}
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write(b); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
