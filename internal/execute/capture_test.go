package execute

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureBuffer_Append(t *testing.T) {
	type args struct {
		chunks [][]byte
	}
	tests := []struct {
		name    string
		args    args
		want    []byte
		wantCap int
		wantErr bool
	}{
		{
			name: "should_keep_baseline_capacity_for_small_input",
			args: args{
				chunks: [][]byte{[]byte("hello")},
			},
			want:    []byte("hello"),
			wantCap: baselineCapacity,
		},
		{
			name: "should_double_capacity_when_baseline_exceeded",
			args: args{
				chunks: [][]byte{bytes.Repeat([]byte{'x'}, baselineCapacity)},
			},
			want:    bytes.Repeat([]byte{'x'}, baselineCapacity),
			wantCap: baselineCapacity * 2,
		},
		{
			name: "should_grow_to_required_size_when_doubling_is_not_enough",
			args: args{
				chunks: [][]byte{bytes.Repeat([]byte{'y'}, baselineCapacity*3)},
			},
			want:    bytes.Repeat([]byte{'y'}, baselineCapacity*3),
			wantCap: baselineCapacity*3 + 1,
		},
		{
			name: "should_accumulate_chunks_in_order",
			args: args{
				chunks: [][]byte{[]byte("abc"), []byte("def"), []byte("ghi")},
			},
			want:    []byte("abcdefghi"),
			wantCap: baselineCapacity,
		},
		{
			name: "should_ignore_empty_chunk",
			args: args{
				chunks: [][]byte{[]byte("abc"), nil, []byte("def")},
			},
			want:    []byte("abcdef"),
			wantCap: baselineCapacity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newCaptureBuffer()
			var err error
			for _, chunk := range tt.args.chunks {
				if err = buf.append(chunk); err != nil {
					break
				}
			}
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.bytes())
			assert.Equal(t, tt.wantCap, buf.capacity())
			assert.GreaterOrEqual(t, buf.capacity(), buf.length+1, "spare byte invariant")
		})
	}
}

func TestCaptureBuffer_AppendOverflow(t *testing.T) {
	buf := newCaptureBuffer()
	buf.ceiling = 64

	require.NoError(t, buf.append(bytes.Repeat([]byte{'a'}, 32)))

	err := buf.append(bytes.Repeat([]byte{'b'}, 32))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCaptureOverflow))

	// A failed append must leave the buffer unchanged.
	assert.Equal(t, bytes.Repeat([]byte{'a'}, 32), buf.bytes())
}

func TestCaptureBuffer_AppendExactlyAtCeiling(t *testing.T) {
	buf := newCaptureBuffer()
	buf.ceiling = 64

	// length+1 may reach the ceiling but never pass it.
	require.NoError(t, buf.append(bytes.Repeat([]byte{'a'}, 63)))
	require.Error(t, buf.append([]byte{'b'}))
}
