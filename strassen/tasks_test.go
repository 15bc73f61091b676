// SPDX-License-Identifier: MIT

package strassen_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableMatchesAssignment(t *testing.T) {
	require.NoError(t, strassen.DefaultTable.Validate())

	want := []struct {
		left, right string
		rank        int
	}{
		{"X0+X3", "X0+X3", 1},
		{"X2+X3", "X0", 2},
		{"X0", "X1-X3", 3},
		{"X3", "X2-X0", 4},
		{"X0+X1", "X3", 5},
		{"X2-X0", "X0+X1", 6},
		{"X1-X3", "X2+X3", 0},
	}
	for i, task := range strassen.DefaultTable {
		require.Equal(t, i, task.Index)
		require.Equal(t, want[i].left, task.Left.String(), "task %d left", i)
		require.Equal(t, want[i].right, task.Right.String(), "task %d right", i)
		require.Equal(t, want[i].rank, task.Rank, "task %d rank", i)
	}

	require.Equal(t, "X0+X3-X4+X6", strassen.Outputs[0].String())
	require.Equal(t, "X0-X1+X2+X5", strassen.Outputs[3].String())
}

func TestForRankAndRemote(t *testing.T) {
	task, ok := strassen.DefaultTable.ForRank(4)
	require.True(t, ok)
	require.Equal(t, 3, task.Index)

	_, ok = strassen.DefaultTable.ForRank(7)
	require.False(t, ok)

	require.Equal(t, 6, strassen.DefaultTable.Local().Index)

	remote := strassen.DefaultTable.Remote()
	require.Len(t, remote, 6)
	for i, task := range remote {
		require.Equal(t, i+1, task.Rank) // ascending worker order
		require.Equal(t, i, task.Index)
	}
}

func TestValidateRejectsBadTables(t *testing.T) {
	dup := strassen.DefaultTable
	dup[1].Rank = 1
	require.ErrorIs(t, dup.Validate(), strassen.ErrBadTable)

	noLocal := strassen.DefaultTable
	noLocal[6].Rank = 7
	require.ErrorIs(t, noLocal.Validate(), strassen.ErrBadTable)

	misplaced := strassen.DefaultTable
	misplaced[2].Index = 5
	require.ErrorIs(t, misplaced.Validate(), strassen.ErrBadTable)

	empty := strassen.DefaultTable
	empty[0].Left = nil
	require.ErrorIs(t, empty.Validate(), strassen.ErrBadTable)
}

func TestCombinationEval(t *testing.T) {
	parts := []*matrix.Dense{
		mustRows(t, z13, []int64{1}),
		mustRows(t, z13, []int64{5}),
	}

	got, err := strassen.Combination{strassen.Plus(0), strassen.Minus(1)}.Eval(parts)
	require.NoError(t, err)
	requireEqual(t, mustRows(t, z13, []int64{9}), got) // 1-5 ≡ 9

	single, err := strassen.Combination{strassen.Plus(1)}.Eval(parts)
	require.NoError(t, err)
	require.NotSame(t, parts[1], single) // copies, never aliases

	_, err = strassen.Combination{strassen.Minus(0)}.Eval(parts)
	require.ErrorIs(t, err, strassen.ErrBadTable)

	_, err = strassen.Combination{strassen.Plus(2)}.Eval(parts)
	require.ErrorIs(t, err, strassen.ErrBadTable)
}

func TestCombineMissingProduct(t *testing.T) {
	var products [strassen.Products]*matrix.Dense
	for i := range products {
		products[i] = mustRows(t, z13, []int64{int64(i)})
	}
	products[5] = nil

	_, err := strassen.Combine(products)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
