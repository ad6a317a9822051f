package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLossy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Valid", "façade/日本語", "façade/日本語"},
		{"Valid Replacement Char", "a�b", "a�b"},
		{"One Marker Per Invalid Byte", "ok\xff\xfe/x", "ok��/x"},
		{"Lone Continuation Bytes", "\x80\x80", "��"},
		{"Truncated Three Byte Sequence", "\xe2\x8c/x", "�/x"},
		{"Truncated Four Byte Sequence", "\xf0\x9f\x98", "�"},
		{"Truncated At End", "abc\xe2", "abc�"},
		{"Broken By ASCII", "\xc3\x28", "�("},
		{"Surrogate Half", "\xed\xa0\x80", "���"},
		{"Overlong Lead", "\xc0\xaf", "��"},
		{"Out Of Range Lead", "\xf4\x90\x80\x80", "����"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeLossy([]byte(tt.input)))
		})
	}
}
