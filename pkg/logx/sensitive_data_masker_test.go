package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"namevalue/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "JSON name",
			input:  []byte(`{"name":"김민수","grade":"A"}`),
			output: []byte(`{"name":"[MASKED]","grade":"A"}`),
		},
		{
			name:   "JSON name with space",
			input:  []byte(`{"name": "이지은"}`),
			output: []byte(`{"name": "[MASKED]"}`),
		},
		{
			name:   "Query string",
			input:  []byte("GET /card.png?name=%EA%B9%80&input=abc HTTP/1.1"),
			output: []byte("GET /card.png?name=[MASKED]&input=[MASKED] HTTP/1.1"),
		},
		{
			name:   "Form body",
			input:  []byte("POST / HTTP/1.1\r\n\r\nname=%EA%B9%80%EB%AF%BC"),
			output: []byte("POST / HTTP/1.1\r\n\r\nname=[MASKED]"),
		},
		{
			name:   "Bot token",
			input:  []byte("POST /bot123456:AAE-token_x/sendMessage HTTP/1.1"),
			output: []byte("POST /bot[MASKED]/sendMessage HTTP/1.1"),
		},
		{
			name:   "Bot message text",
			input:  []byte(`{"chat":{"id":1},"text":"정국"}`),
			output: []byte(`{"chat":{"id":1},"text":"[MASKED]"}`),
		},
		{
			name:   "Multipart caption",
			input:  []byte("Content-Disposition: form-data; name=\"caption\"\r\n\r\n김민수 8,420억\r\n--boundary"),
			output: []byte("Content-Disposition: form-data; name=\"caption\"\r\n\r\n[MASKED]\r\n--boundary"),
		},
		{
			name:   "Bearer token",
			input:  []byte("Authorization: Bearer abc.def\r\n"),
			output: []byte("Authorization: Bearer [MASKED]\r\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestNopSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	input := []byte(`{"name":"김민수"}`)

	rq.Equal(input, logx.NewNopSensitiveDataMasker().Mask(input))
}
