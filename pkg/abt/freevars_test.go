package abt

import (
	"context"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/require"
)

type FreeVarsSuite struct{}

func TestFreeVars(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(FreeVarsSuite{})
}

func (FreeVarsSuite) TestFreeVars(ctx context.Context, t *testctx.T) {
	tests := []struct {
		name string
		term ABT
		want []string
	}{
		{"constant", zero, nil},
		{"numeral", four, nil},
		{"variable", x, []string{"x"}},
		{"bindless tree", tree1, []string{"x", "y"}},
		{"bindless tree 2", tree2, []string{"x"}},
		{"bindless tree 3", tree3, []string{"y"}},
		{"identity x", id1, nil},
		{"identity y", id2, nil},
		{"identity z", id3, nil},
		{"identity lam", id4, nil},
		{"omega", omega, nil},
		{"S combinator", s1, nil},
		{"S combinator renamed", s2, nil},
		{"shadowed", ign1, nil},
		{"shadowed tag-named", ign2, nil},
		{"open term", take, []string{"y"}},
		{"free outside, bound inside", ap(x, lam("x", x)), []string{"x"}},
		{"bound in one binder only", MustOper("pair", Bind([]string{"a"}, Var("a")), Var("a")), []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(ctx context.Context, t *testctx.T) {
			got := FreeVars(tt.term)
			require.Equal(t, len(tt.want), got.Len())
			for _, name := range tt.want {
				require.True(t, got.Has(name), "missing %s", name)
			}
		})
	}
}

func (FreeVarsSuite) TestInvariantUnderRenaming(ctx context.Context, t *testctx.T) {
	require.True(t, FreeVars(s1).Equal(FreeVars(s2)))
	require.True(t, FreeVars(take).Equal(FreeVars(lam("w", ap(Var("w"), y)))))
	require.True(t, FreeVars(ign1).Equal(FreeVars(ign2)))
}
