package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuousToVal(t *testing.T) {
	v := NewContinuous("age")
	assert.True(t, v.IsPrimitive())

	tests := []struct {
		name    string
		in      any
		want    float64
		unknown bool
		wantErr bool
	}{
		{name: "float", in: 3.5, want: 3.5},
		{name: "int", in: 7, want: 7},
		{name: "numeric string", in: "2.25", want: 2.25},
		{name: "nil", in: nil, unknown: true},
		{name: "empty string", in: "", unknown: true},
		{name: "question mark", in: "?", unknown: true},
		{name: "garbage string", in: "abc", wantErr: true},
		{name: "wrong type", in: []int{1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ToVal(tt.in)
			if tt.wantErr {
				var badValue *ErrBadValue
				require.ErrorAs(t, err, &badValue)
				return
			}

			require.NoError(t, err)
			f := got.(float64)
			if tt.unknown {
				assert.True(t, IsUnknown(f))
			} else {
				assert.Equal(t, tt.want, f)
			}
		})
	}
}

func TestDiscreteToVal(t *testing.T) {
	v := NewDiscrete("color", []string{"red", "green", "blue"})
	assert.True(t, v.IsPrimitive())

	got, err := v.ToVal("green")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = v.ToVal(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = v.ToVal("?")
	require.NoError(t, err)
	assert.True(t, IsUnknown(got.(float64)))

	_, err = v.ToVal("purple")
	var badValue *ErrBadValue
	require.ErrorAs(t, err, &badValue)
	assert.Equal(t, "color", badValue.Variable)
}

func TestDiscreteValName(t *testing.T) {
	v := NewDiscrete("color", []string{"red", "green"})
	assert.Equal(t, "red", v.ValName(0))
	assert.Equal(t, "green", v.ValName(1))
	assert.Equal(t, "?", v.ValName(Unknown))
	assert.Equal(t, "?", v.ValName(5))
}

func TestStringToVal(t *testing.T) {
	v := NewString("note")
	assert.False(t, v.IsPrimitive())

	got, err := v.ToVal("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = v.ToVal(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = v.ToVal(3.14)
	assert.Error(t, err)
}

func TestVariableIdentity(t *testing.T) {
	a := NewContinuous("x")
	b := NewContinuous("x")
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestComputeDefault(t *testing.T) {
	v := NewContinuous("derived")
	val, ok := v.Compute(nil)
	assert.False(t, ok)
	assert.True(t, IsUnknown(val))

	v.SetCompute(func(row SourceRow) (float64, bool) { return 1.5, true })
	val, ok = v.Compute(nil)
	assert.True(t, ok)
	assert.Equal(t, 1.5, val)
}
