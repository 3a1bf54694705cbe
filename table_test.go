package tabgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tabgo/domain"
)

// testDomain builds the shared fixture domain: continuous features f and
// g, a binary discrete class and a string meta.
func testDomain(t *testing.T) *domain.Domain {
	t.Helper()
	d, err := domain.New(
		[]domain.Variable{domain.NewContinuous("f"), domain.NewContinuous("g")},
		[]domain.Variable{domain.NewDiscrete("cls", []string{"no", "yes"})},
		[]domain.Variable{domain.NewString("name")},
	)
	require.NoError(t, err)
	return d
}

func testTable(t *testing.T, opts ...Option) *Table {
	t.Helper()
	d := testDomain(t)
	tab, err := FromArrays(d,
		[][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}},
		[][]float64{{0}, {1}, {0}, {1}},
		[][]any{{"ann"}, {"bob"}, {"cat"}, {"dan"}},
		nil, opts...)
	require.NoError(t, err)
	return tab
}

func TestTableBasics(t *testing.T) {
	tab := testTable(t, WithName("people"))
	assert.Equal(t, "people", tab.Name())
	assert.Equal(t, 4, tab.Len())
	assert.NotEqual(t, "", tab.ID().String())
	assert.Equal(t, 2, tab.X().Cols())
	assert.Equal(t, 1, tab.Y().Cols())
	assert.Equal(t, 1, tab.Metas().Cols())
	assert.True(t, tab.IsCopy())
	assert.False(t, tab.IsView())
}

func TestFromDomainZeroFilled(t *testing.T) {
	d, err := domain.New(
		[]domain.Variable{domain.NewContinuous("a"), domain.NewContinuous("b")},
		[]domain.Variable{domain.NewContinuous("y")},
		nil,
	)
	require.NoError(t, err)

	tab := FromDomain(d, 3)
	assert.Equal(t, 3, tab.Len())
	assert.False(t, tab.HasWeights())
	for r := 0; r < 3; r++ {
		for _, col := range []string{"a", "b", "y"} {
			v, err := tab.Float(r, col)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}
}

func TestWeights(t *testing.T) {
	d := testDomain(t)
	tab := FromDomain(d, 3, WithWeights())
	assert.True(t, tab.HasWeights())
	assert.Equal(t, []float64{1, 1, 1}, tab.Weights())
	assert.Equal(t, 3.0, tab.TotalWeight())

	tab.SetWeights(0.5)
	assert.Equal(t, 1.5, tab.TotalWeight())

	plain := FromDomain(d, 3)
	assert.Nil(t, plain.Weights())
	assert.Equal(t, 3.0, plain.TotalWeight())

	// SetWeights creates the container on an unweighted table.
	plain.SetWeights(2)
	assert.True(t, plain.HasWeights())
	assert.Equal(t, 6.0, plain.TotalWeight())
}

func TestColumnFloat(t *testing.T) {
	tab := testTable(t)

	col, view, err := tab.ColumnFloat("g")
	require.NoError(t, err)
	assert.True(t, view)
	assert.Equal(t, []float64{10, 20, 30, 40}, col)

	// The view aliases table storage.
	col[0] = 99
	v, err := tab.Float(0, "g")
	require.NoError(t, err)
	assert.Equal(t, 99.0, v)

	// Class column through the signed encoding.
	col, _, err = tab.ColumnFloat(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 1}, col)

	_, _, err = tab.ColumnFloat("name")
	var colType *ErrColumnType
	assert.ErrorAs(t, err, &colType)

	_, _, err = tab.ColumnFloat("missing")
	assert.Error(t, err)
}

func TestColumnValues(t *testing.T) {
	tab := testTable(t)

	vals, view, err := tab.ColumnValues("name")
	require.NoError(t, err)
	assert.True(t, view)
	assert.Equal(t, []any{"ann", "bob", "cat", "dan"}, vals)

	vals, view, err = tab.ColumnValues("f")
	require.NoError(t, err)
	assert.False(t, view)
	assert.Equal(t, []any{1.0, 2.0, 3.0, 4.0}, vals)
}

func TestFloatAndValue(t *testing.T) {
	tab := testTable(t)

	v, err := tab.Float(1, "f")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	val, err := tab.Value(1, "name")
	require.NoError(t, err)
	assert.Equal(t, "bob", val)

	val, err = tab.Value(1, "cls")
	require.NoError(t, err)
	assert.Equal(t, 1.0, val)

	_, err = tab.Float(9, "f")
	var oob *ErrIndexOutOfRange
	assert.ErrorAs(t, err, &oob)

	_, err = tab.Float(0, "name")
	var colType *ErrColumnType
	assert.ErrorAs(t, err, &colType)
}

func TestSetValue(t *testing.T) {
	tab := testTable(t)

	require.NoError(t, tab.SetValue(0, "f", 7.5))
	v, _ := tab.Float(0, "f")
	assert.Equal(t, 7.5, v)

	// Discrete values go in by symbolic name.
	require.NoError(t, tab.SetValue(0, "cls", "yes"))
	v, _ = tab.Float(0, "cls")
	assert.Equal(t, 1.0, v)

	require.NoError(t, tab.SetValue(0, "name", "eve"))
	val, _ := tab.Value(0, "name")
	assert.Equal(t, "eve", val)

	// Encoding failures leave the cell untouched.
	err := tab.SetValue(0, "cls", "maybe")
	var badValue *domain.ErrBadValue
	assert.ErrorAs(t, err, &badValue)
	v, _ = tab.Float(0, "cls")
	assert.Equal(t, 1.0, v)

	err = tab.SetValue(99, "f", 1.0)
	var oob *ErrIndexOutOfRange
	assert.ErrorAs(t, err, &oob)
}

func TestHasMissing(t *testing.T) {
	tab := testTable(t)
	assert.False(t, tab.HasMissing())
	assert.False(t, tab.HasMissingClass())

	require.NoError(t, tab.SetValue(2, "f", nil))
	assert.True(t, tab.HasMissing())
	assert.False(t, tab.HasMissingClass())

	require.NoError(t, tab.SetValue(1, "cls", "?"))
	assert.True(t, tab.HasMissingClass())
}

func TestShuffleKeepsRows(t *testing.T) {
	tab := testTable(t, WithRandSeed(11))
	before, _, err := tab.ColumnFloat("f")
	require.NoError(t, err)
	want := append([]float64(nil), before...)

	tab.Shuffle()
	after, _, err := tab.ColumnFloat("f")
	require.NoError(t, err)
	assert.ElementsMatch(t, want, after)

	// Rows move together: f and g stay paired.
	for i := 0; i < tab.Len(); i++ {
		f, _ := tab.Float(i, "f")
		g, _ := tab.Float(i, "g")
		assert.Equal(t, f*10, g)
	}
}

func TestShuffleViewLeavesSource(t *testing.T) {
	tab := testTable(t, WithRandSeed(3))
	view, err := FromTableRows(tab, AllRows())
	require.NoError(t, err)
	view.rng = tab.rng

	sum := tab.Checksum(true)
	view.Shuffle()
	assert.True(t, view.IsCopy())
	assert.Equal(t, sum, tab.Checksum(true))
}

func TestRandomRow(t *testing.T) {
	tab := testTable(t, WithRandSeed(1))
	r, err := tab.RandomRow()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.Index(), 0)
	assert.Less(t, r.Index(), tab.Len())

	empty := FromDomain(testDomain(t), 0)
	_, err = empty.RandomRow()
	assert.ErrorIs(t, err, ErrEmptyTable)
}
