package digest

import (
	"crypto/md5"
	"encoding/base64"

	"github.com/minio/highwayhash"
)

// Size is content digest size in bytes
const Size = md5.Size

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Sum returns MD5 digest of data
func Sum(data []byte) [Size]byte {
	return md5.Sum(data)
}

// Digest returns base64 encoded MD5 digest of data, used as embedded content fingerprint
func Digest(data []byte) string {
	sum := md5.Sum(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Fingerprint returns 64-bit highway hash of data, used to compare produced documents across runs
func Fingerprint(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}
