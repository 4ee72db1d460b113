package helper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "created_at",
		"name":       "student_full_name",
	}

	p := Params{SortBy: "name", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	require.Equal(t, "student_full_name ASC", clause)

	// Kolom di luar whitelist jatuh ke default — tidak pernah bocor ke SQL.
	p = Params{SortBy: "student_full_name; DROP TABLE students", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	require.Equal(t, "created_at DESC", clause)

	// Default key yang tidak terdaftar = salah pakai, harus error.
	_, err = Params{SortBy: "x"}.SafeOrderClause(allowed, "tidak_ada")
	require.Error(t, err)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(53, Params{Page: 2, PerPage: 25})
	require.Equal(t, 3, meta.TotalPages)
	require.True(t, meta.HasNext)
	require.True(t, meta.HasPrev)
	require.Equal(t, 3, *meta.NextPage)
	require.Equal(t, 1, *meta.PrevPage)

	meta = BuildMeta(0, Params{Page: 1, PerPage: 25})
	require.Equal(t, 0, meta.TotalPages)
	require.False(t, meta.HasNext)
	require.False(t, meta.HasPrev)
	require.Nil(t, meta.NextPage)
	require.Nil(t, meta.PrevPage)
}
