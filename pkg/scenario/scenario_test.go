package scenario

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/abt/pkg/abt"
	"gotest.tools/v3/golden"
)

func runFile(t *testing.T, name string) (string, int) {
	t.Helper()
	t.Setenv(EnvFreshen, "")
	doc, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)

	engine, err := doc.Engine("")
	require.NoError(t, err)

	results, err := Run(context.Background(), doc, engine)
	require.NoError(t, err)
	require.Len(t, results, len(doc.Checks))

	var buf bytes.Buffer
	failed, err := Report(&buf, name, results, ReportOptions{})
	require.NoError(t, err)
	return buf.String(), failed
}

func TestReports(t *testing.T) {
	for _, tc := range []struct {
		file   string
		failed int
	}{
		{"lambda.toml", 0},
		{"failing.toml", 5},
	} {
		t.Run(tc.file, func(t *testing.T) {
			output, failed := runFile(t, tc.file)
			assert.Equal(t, tc.failed, failed)
			golden.Assert(t, output, strings.TrimSuffix(tc.file, ".toml")+".golden")
		})
	}
}

func TestVerboseReport(t *testing.T) {
	results := []Result{{
		Check: Check{Name: "broken", Kind: KindPrint, Left: "id", Want: "lam(y.y)"},
		Got:   "lam(x.x)",
	}}
	var buf bytes.Buffer
	failed, err := Report(&buf, "inline", results, ReportOptions{Verbose: true})
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Contains(t, buf.String(), "FAIL broken: got lam(x.x), want lam(y.y)")
	assert.Contains(t, buf.String(), "scenario.Check{")
	assert.Contains(t, buf.String(), `"lam(y.y)"`)
	assert.Contains(t, buf.String(), "inline: 0 passed, 1 failed")
}

func TestTermEncoding(t *testing.T) {
	doc, err := Decode(strings.NewReader(`
[terms.s]
tag = "lam"
args = [{ bind = ["x", "y"], tag = "ap", args = [{ var = "x" }, { ref = "z" }] }, { tag = "zero" }]

[terms.z]
var = "z"
`))
	require.NoError(t, err)

	term, err := doc.Term("s")
	require.NoError(t, err)
	n, ok := term.(*abt.Node)
	require.True(t, ok)
	assert.Equal(t, "lam", n.Tag())
	assert.Equal(t, []int{2, 0}, n.Arity())

	s, err := abt.Default.String(abt.NewNames("z"), term)
	require.NoError(t, err)
	assert.Equal(t, "lam(x.y.ap(x,z),zero())", s)
}

func TestTermErrors(t *testing.T) {
	doc, err := Decode(strings.NewReader(`
[terms.loop]
tag = "wrap"
args = [{ ref = "loop" }]

[terms.both]
var = "x"
tag = "t"

[terms.neither]
args = [{ var = "x" }]

[terms.dangling]
ref = "nowhere"
`))
	require.NoError(t, err)

	_, err = doc.Term("loop")
	assert.ErrorContains(t, err, `term "loop" refers to itself`)

	_, err = doc.Term("both")
	assert.ErrorContains(t, err, "exactly one of var, ref and tag")

	_, err = doc.Term("neither")
	assert.ErrorContains(t, err, "exactly one of var, ref and tag")

	_, err = doc.Term("dangling")
	assert.ErrorContains(t, err, `unknown term "nowhere"`)
}

func TestDecodeErrors(t *testing.T) {
	for name, src := range map[string]string{
		`unknown kind "guess"`: `
[terms.x]
var = "x"
[[check]]
name = "c"
kind = "guess"
left = "x"`,
		`unknown term "y"`: `
[terms.x]
var = "x"
[[check]]
name = "c"
kind = "equal"
left = "x"
right = "y"`,
		`unknown op "freevars"`: `
[terms.x]
var = "x"
[[check]]
name = "c"
kind = "error"
op = "freevars"
left = "x"`,
		"missing name": `
[terms.x]
var = "x"
[[check]]
kind = "print"
left = "x"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src))
			assert.ErrorContains(t, err, name)
		})
	}

	_, err := Load(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)
}

func TestEngineSelection(t *testing.T) {
	doc := &Document{}
	used := abt.NewNames("x")
	id := abt.MustOper("lam", abt.Bind([]string{"x"}, abt.Var("x")))

	render := func(engine *abt.Engine) string {
		s, err := engine.String(used, id)
		require.NoError(t, err)
		return s
	}

	t.Setenv(EnvFreshen, "")
	engine, err := doc.Engine("")
	require.NoError(t, err)
	assert.Equal(t, "lam(x1.x1)", render(engine))

	t.Setenv(EnvFreshen, "primes")
	engine, err = doc.Engine("")
	require.NoError(t, err)
	assert.Equal(t, "lam(x'.x')", render(engine))

	doc.Freshen = "digits"
	engine, err = doc.Engine("")
	require.NoError(t, err)
	assert.Equal(t, "lam(x1.x1)", render(engine))

	engine, err = doc.Engine("primes")
	require.NoError(t, err)
	assert.Equal(t, "lam(x'.x')", render(engine))

	_, err = doc.Engine("letters")
	assert.ErrorContains(t, err, "unknown freshening strategy")
}

func TestRunCanceled(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "lambda.toml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, doc, abt.Default)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunSharedEngine(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "lambda.toml"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := Run(context.Background(), doc, abt.Default)
			assert.NoError(t, err)
			for _, r := range results {
				assert.True(t, r.Passed, r.Check.Name)
			}
		}()
	}
	wg.Wait()
}
