package schema

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsNumber(t *testing.T) {
	tests := []struct {
		name     string
		id       BenchmarkID
		expected float64
		wantErr  bool
	}{
		{
			name:     "value string",
			id:       BenchmarkID{GroupID: "sort", ValueStr: StringPtr("128")},
			expected: 128,
		},
		{
			name:     "value string with spaces",
			id:       BenchmarkID{GroupID: "sort", ValueStr: StringPtr(" 2.5 ")},
			expected: 2.5,
		},
		{
			name:     "throughput wins over value string",
			id:       BenchmarkID{ValueStr: StringPtr("small"), Throughput: &Throughput{Kind: BytesThroughput, Count: 4096}},
			expected: 4096,
		},
		{
			name:    "non numeric value",
			id:      BenchmarkID{GroupID: "sort", ValueStr: StringPtr("small")},
			wantErr: true,
		},
		{
			name:    "no parameter",
			id:      BenchmarkID{GroupID: "sort"},
			wantErr: true,
		},
		{
			name:    "NaN value",
			id:      BenchmarkID{GroupID: "sort", ValueStr: StringPtr("NaN")},
			wantErr: true,
		},
		{
			name:    "infinite value",
			id:      BenchmarkID{GroupID: "sort", ValueStr: StringPtr("+Inf")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.id.AsNumber()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrCallerContract))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValueType(t *testing.T) {
	tests := []struct {
		name   string
		id     BenchmarkID
		want   ValueType
		wantOK bool
	}{
		{"bytes", BenchmarkID{Throughput: &Throughput{Kind: BytesThroughput, Count: 1}}, BytesValue, true},
		{"elements", BenchmarkID{Throughput: &Throughput{Kind: ElementsThroughput, Count: 1}}, ElementsValue, true},
		{"numeric value", BenchmarkID{ValueStr: StringPtr("10")}, PlainValue, true},
		{"text value", BenchmarkID{ValueStr: StringPtr("ten")}, "", false},
		{"infinite value", BenchmarkID{ValueStr: StringPtr("Infinity")}, "", false},
		{"nothing", BenchmarkID{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.id.ValueType()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayTitle(t *testing.T) {
	t.Run("explicit title", func(t *testing.T) {
		id := BenchmarkID{GroupID: "g", FunctionID: StringPtr("f"), Title: "custom"}
		assert.Equal(t, "custom", id.DisplayTitle())
	})

	t.Run("joined parts", func(t *testing.T) {
		id := BenchmarkID{GroupID: "g", FunctionID: StringPtr("f"), ValueStr: StringPtr("10")}
		assert.Equal(t, "g/f/10", id.DisplayTitle())
	})

	t.Run("missing function", func(t *testing.T) {
		id := BenchmarkID{GroupID: "g", ValueStr: StringPtr("10")}
		assert.Equal(t, "g/10", id.DisplayTitle())
	})
}

func TestFunction(t *testing.T) {
	name, ok := BenchmarkID{FunctionID: StringPtr("quick")}.Function()
	assert.True(t, ok)
	assert.Equal(t, "quick", name)

	_, ok = BenchmarkID{}.Function()
	assert.False(t, ok)
}

func TestContractError(t *testing.T) {
	err := NewContractError("group", "g/f", "bad %s", "input")
	assert.Equal(t, "group: g/f: bad input", err.Error())
	assert.ErrorIs(t, err, ErrCallerContract)
	assert.NotErrorIs(t, err, ErrRender)

	noID := NewContractError("violin", "", "no curves")
	assert.Equal(t, "violin: no curves", noID.Error())
}

func TestColorRGBA(t *testing.T) {
	var c color.Color = Color{R: 255, G: 0, B: 128}
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x8080), b)
	assert.Equal(t, uint32(0xffff), a)
}

// FuzzAsNumber checks that parameter extraction never panics.
func FuzzAsNumber(f *testing.F) {
	for _, seed := range []string{"1", "1e3", "-0", "NaN", "", "abc", "1_000"} {
		f.Add(seed)
	}
	f.Fuzz(func(_ *testing.T, s string) {
		id := BenchmarkID{ValueStr: &s}
		_, _ = id.AsNumber()
		_, _ = id.ValueType()
	})
}
