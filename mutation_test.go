package tabgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tabgo/domain"
	"github.com/hupe1980/tabgo/matrix"
)

func TestSetRow(t *testing.T) {
	tab := testTable(t)
	require.NoError(t, tab.SetRow(1, []any{9.0, 90.0, "yes"}))

	f, _ := tab.Float(1, "f")
	assert.Equal(t, 9.0, f)
	cls, _ := tab.Float(1, "cls")
	assert.Equal(t, 1.0, cls)
	name, _ := tab.Value(1, "name")
	assert.Nil(t, name)

	err := tab.SetRow(1, []any{1.0})
	var shape *ErrShapeMismatch
	assert.ErrorAs(t, err, &shape)

	err = tab.SetRow(9, []any{1.0, 2.0, "no"})
	var oob *ErrIndexOutOfRange
	assert.ErrorAs(t, err, &oob)
}

func TestExtendSameDomain(t *testing.T) {
	tab := testTable(t)
	other, err := FromArrays(tab.Domain(),
		[][]float64{{5, 50}, {6, 60}},
		[][]float64{{1}, {0}},
		[][]any{{"eve"}, {"fred"}},
		nil)
	require.NoError(t, err)

	require.NoError(t, tab.Extend(other))
	assert.Equal(t, 6, tab.Len())

	f, _, err := tab.ColumnFloat("f")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, f)

	name, err := tab.Value(5, "name")
	require.NoError(t, err)
	assert.Equal(t, "fred", name)
}

func TestExtendWeightDefaults(t *testing.T) {
	d := testDomain(t)
	tab := FromDomain(d, 2, WithWeights())
	tab.SetWeights(2)

	// Extending a weighted table with an unweighted source defaults the
	// new weights to 1.
	src := FromDomain(d, 3)
	require.NoError(t, tab.Extend(src))
	assert.Equal(t, []float64{2, 2, 1, 1, 1}, tab.Weights())

	// A weighted source carries its weights over.
	weighted := FromDomain(d, 1, WithWeights())
	weighted.SetWeights(5)
	require.NoError(t, tab.Extend(weighted))
	assert.Equal(t, 5.0, tab.Weights()[5])
}

func TestExtendConverts(t *testing.T) {
	tab := testTable(t)
	d := tab.Domain()

	// Source with the feature columns swapped.
	srcDomain, err := domain.New(
		[]domain.Variable{d.Attributes()[1], d.Attributes()[0]},
		[]domain.Variable{d.ClassVars()[0]},
		[]domain.Variable{d.Metas()[0]},
	)
	require.NoError(t, err)
	src, err := FromArrays(srcDomain,
		[][]float64{{50, 5}},
		[][]float64{{1}},
		[][]any{{"eve"}},
		nil)
	require.NoError(t, err)

	require.NoError(t, tab.Extend(src))
	require.Equal(t, 5, tab.Len())
	f, _ := tab.Float(4, "f")
	g, _ := tab.Float(4, "g")
	assert.Equal(t, 5.0, f)
	assert.Equal(t, 50.0, g)
}

func TestExtendViewFails(t *testing.T) {
	tab := testTable(t)
	view, err := FromTableRows(tab, RowRange(0, 2))
	require.NoError(t, err)
	assert.ErrorIs(t, view.Extend(tab), matrix.ErrNotOwned)

	view.EnsureOwned()
	require.NoError(t, view.Extend(tab))
	assert.Equal(t, 6, view.Len())
	assert.Equal(t, 4, tab.Len())
}

func TestExtendRows(t *testing.T) {
	tab := testTable(t)
	require.NoError(t, tab.ExtendRows([][]any{
		{5.0, 50.0, "yes"},
		{6.0, 60.0, "no"},
	}))
	assert.Equal(t, 6, tab.Len())
	cls, _ := tab.Float(5, "cls")
	assert.Equal(t, 0.0, cls)
}

func TestExtendRowsRollsBack(t *testing.T) {
	tab := testTable(t)
	sum := tab.Checksum(true)

	err := tab.ExtendRows([][]any{
		{5.0, 50.0, "yes"},
		{6.0, 60.0, "nope"}, // not a value of cls
	})
	var badValue *domain.ErrBadValue
	require.ErrorAs(t, err, &badValue)

	// No partial extension is observable.
	assert.Equal(t, 4, tab.Len())
	assert.Equal(t, sum, tab.Checksum(true))
}

func TestInsert(t *testing.T) {
	tab := testTable(t)
	require.NoError(t, tab.Insert(1, []any{9.0, 90.0, "yes"}))
	require.Equal(t, 5, tab.Len())

	f, _, err := tab.ColumnFloat("f")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 9, 2, 3, 4}, f)

	// The shifted rows keep their metadata.
	name, _ := tab.Value(2, "name")
	assert.Equal(t, "bob", name)
}

func TestInsertNegativeIndex(t *testing.T) {
	tab := testTable(t)
	require.NoError(t, tab.Insert(-1, []any{9.0, 90.0, "no"}))
	f, _, _ := tab.ColumnFloat("f")
	assert.Equal(t, []float64{1, 2, 3, 9, 4}, f)

	err := tab.Insert(-99, []any{1.0, 2.0, "no"})
	var oob *ErrIndexOutOfRange
	assert.ErrorAs(t, err, &oob)
}

func TestInsertRollsBack(t *testing.T) {
	tab := testTable(t)
	sum := tab.Checksum(true)

	err := tab.Insert(2, []any{1.0, 2.0, "nope"})
	require.Error(t, err)
	assert.Equal(t, 4, tab.Len())
	assert.Equal(t, sum, tab.Checksum(true))
}

func TestInsertDeleteInverse(t *testing.T) {
	tab := testTable(t)
	sum := tab.Checksum(true)

	require.NoError(t, tab.Insert(2, []any{9.0, 90.0, "yes"}))
	require.NoError(t, tab.Delete(2))
	assert.Equal(t, sum, tab.Checksum(true))
}

func TestAppend(t *testing.T) {
	tab := testTable(t)
	require.NoError(t, tab.Append([]any{9.0, 90.0, "yes"}))
	assert.Equal(t, 5, tab.Len())
	f, _ := tab.Float(4, "f")
	assert.Equal(t, 9.0, f)
}

func TestInsertWeighted(t *testing.T) {
	d := testDomain(t)
	tab := FromDomain(d, 2, WithWeights())
	tab.SetWeights(3)
	require.NoError(t, tab.Insert(1, []any{1.0, 2.0, "no"}))
	assert.Equal(t, []float64{3, 1, 3}, tab.Weights())
}

func TestDelete(t *testing.T) {
	tab := testTable(t)
	require.NoError(t, tab.Delete(0, 2))
	require.Equal(t, 2, tab.Len())

	f, _, err := tab.ColumnFloat("f")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, f)

	err = tab.Delete(5)
	var oob *ErrIndexOutOfRange
	assert.ErrorAs(t, err, &oob)
	assert.Equal(t, 2, tab.Len())
}

func TestDeleteOnViewLeavesSource(t *testing.T) {
	tab := testTable(t)
	view, err := FromTableRows(tab, AllRows())
	require.NoError(t, err)

	require.NoError(t, view.Delete(0))
	assert.Equal(t, 3, view.Len())
	assert.Equal(t, 4, tab.Len())
	assert.True(t, view.IsCopy())
}

func TestClear(t *testing.T) {
	tab := testTable(t)
	tab.Clear()
	assert.Equal(t, 0, tab.Len())
	assert.False(t, tab.HasMissing())
}
