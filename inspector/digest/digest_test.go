package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/rptxml/inspector/digest"
)

func TestDigest(t *testing.T) {
	testCases := []struct {
		description string
		data        []byte
		expect      string
	}{
		{description: "empty", data: []byte{}, expect: "1B2M2Y8AsgTpgAmY7PhCfg=="},
		{description: "abc", data: []byte("abc"), expect: "kAFQmDzST7DWlj99KOF/cg=="},
		{description: "fox", data: []byte("The quick brown fox jumps over the lazy dog"), expect: "nhB9nTcrtoJr2B01QqQZ1g=="},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, digest.Digest(testCase.data), testCase.description)
		assert.Len(t, digest.Digest(testCase.data), 24, testCase.description)
	}
}

func TestFingerprint(t *testing.T) {
	first, err := digest.Fingerprint([]byte("<Report/>"))
	assert.NoError(t, err)
	second, err := digest.Fingerprint([]byte("<Report/>"))
	assert.NoError(t, err)
	other, err := digest.Fingerprint([]byte("<Report Name=\"x\"/>"))
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}
