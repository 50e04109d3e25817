package patcher

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe wraps its input in a marker naming the patcher and every argument it received.
func probe(id int) Patcher {
	return Func(func(filePath, prefix, contents string) (string, error) {
		return fmt.Sprintf("patcher#%d{%s}", id, strings.Join([]string{filePath, prefix, contents}, ",")), nil
	})
}

func TestChain_AppliesAllPatchersInOrder(t *testing.T) {
	chain := NewChain(probe(0), probe(1), probe(2))

	got, err := chain.Patch("/path/to/file.php", "Humbug", "OriginalContent")
	require.NoError(t, err)

	// The line returns are purely for readability.
	want := `
		patcher#2{
			/path/to/file.php,
			Humbug,
			patcher#1{
				/path/to/file.php,
				Humbug,
				patcher#0{
					/path/to/file.php,
					Humbug,
					OriginalContent
				}
			}
		}`
	want = strings.NewReplacer(" ", "", "\t", "", "\n", "").Replace(want)

	assert.Equal(t, want, got)
}

func TestChain_Empty(t *testing.T) {
	tests := []string{"", "OriginalContent", "  with\nnewlines\t\n", "<?php\n"}

	for _, contents := range tests {
		t.Run(fmt.Sprintf("%q", contents), func(t *testing.T) {
			got, err := NewChain().Patch("/path/to/file.php", "Humbug", contents)
			require.NoError(t, err)
			assert.Equal(t, contents, got)
		})
	}
}

func TestChain_SharedContext(t *testing.T) {
	type call struct{ filePath, prefix string }
	var calls []call
	record := Func(func(filePath, prefix, contents string) (string, error) {
		calls = append(calls, call{filePath, prefix})
		return contents + "+", nil
	})

	got, err := NewChain(record, record, record).Patch("a.php", "Humbug", "x")
	require.NoError(t, err)
	assert.Equal(t, "x+++", got)
	assert.Equal(t, []call{{"a.php", "Humbug"}, {"a.php", "Humbug"}, {"a.php", "Humbug"}}, calls)
}

func TestChain_StopsAtFirstError(t *testing.T) {
	boom := errors.New("patcher #1 failed")
	var ran []int
	track := func(id int, err error) Patcher {
		return Func(func(_, _, contents string) (string, error) {
			ran = append(ran, id)
			if err != nil {
				return "partial", err
			}
			return contents + fmt.Sprint(id), nil
		})
	}

	chain := NewChain(track(0, nil), track(1, boom), track(2, nil))
	got, err := chain.Patch("a.php", "Humbug", "x")

	//nolint:errorlint // the error must not be wrapped
	assert.True(t, err == boom, "chain must return the failing patcher's error, got %v", err)
	assert.Empty(t, got)
	assert.Equal(t, []int{0, 1}, ran)
}

func TestChain_IsImmutable(t *testing.T) {
	patchers := []Patcher{probe(0), probe(1)}
	chain := NewChain(patchers...)
	patchers[0] = probe(9)

	got, err := chain.Patch("f", "P", "c")
	require.NoError(t, err)
	assert.Equal(t, "patcher#1{f,P,patcher#0{f,P,c}}", got)
	assert.Equal(t, 2, chain.Len())
}

func TestChain_Nests(t *testing.T) {
	inner := NewChain(probe(0), probe(1))
	outer := NewChain(inner, probe(2))

	got, err := outer.Patch("f", "P", "c")
	require.NoError(t, err)
	assert.Equal(t, "patcher#2{f,P,patcher#1{f,P,patcher#0{f,P,c}}}", got)
}
