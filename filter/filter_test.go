package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorString(t *testing.T) {
	tests := []struct {
		oper Operator
		want string
	}{
		{OpEqual, "=="},
		{OpNotEqual, "!="},
		{OpLess, "<"},
		{OpLessEqual, "<="},
		{OpGreater, ">"},
		{OpGreaterEqual, ">="},
		{OpBetween, "between"},
		{OpOutside, "outside"},
		{OpContains, "contains"},
		{OpBeginsWith, "begins-with"},
		{OpEndsWith, "ends-with"},
		{Operator(200), "invalid"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.oper.String())
	}
}

func TestOperatorClasses(t *testing.T) {
	assert.True(t, OpContains.IsPattern())
	assert.True(t, OpBeginsWith.IsPattern())
	assert.True(t, OpEndsWith.IsPattern())
	assert.False(t, OpEqual.IsPattern())

	assert.True(t, OpBetween.Binary())
	assert.True(t, OpOutside.Binary())
	assert.False(t, OpGreater.Binary())
}

func TestAndOr(t *testing.T) {
	a := &Continuous{Column: "x", Oper: OpGreater, Min: 1}
	b := &IsDefined{}

	conj := And(a, b)
	assert.True(t, conj.Conjunction)
	assert.Len(t, conj.Conditions, 2)

	disj := Or(a, b)
	assert.False(t, disj.Conjunction)
}

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("HELLO"), Fold("hello"))
	assert.Equal(t, Fold("Straße"), Fold("STRASSE"))
	assert.NotEqual(t, Fold("abc"), Fold("abd"))
}

func TestErrInvalidOperator(t *testing.T) {
	err := &ErrInvalidOperator{Oper: OpContains, Kind: "continuous"}
	assert.Contains(t, err.Error(), "contains")
	assert.Contains(t, err.Error(), "continuous")
}
