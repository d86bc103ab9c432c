package typedtable_test

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snippetSource = `package snippet

import tt "github.com/bjaus/typedtable"

func use() {
	tbl := tt.New(tt.Columns3(tt.NewColumn[string]("name"), tt.NewColumn[int]("age"), tt.NewColumn[bool]("married")))
	%s
}
`

// checker type-checks small programs against this package from source.
type checker struct {
	fset *token.FileSet
	imp  types.Importer
	dir  string
}

func newChecker(t *testing.T) *checker {
	t.Helper()
	if testing.Short() {
		t.Skip("type-checks the module from source")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
	dir, err := os.Getwd()
	require.NoError(t, err)
	fset := token.NewFileSet()
	return &checker{fset: fset, imp: importer.ForCompiler(fset, "source", nil), dir: dir}
}

func (c *checker) check(t *testing.T, body string) error {
	t.Helper()
	src := fmt.Sprintf(snippetSource, body)
	f, err := parser.ParseFile(c.fset, filepath.Join(c.dir, "snippet.go"), src, 0)
	require.NoError(t, err)
	conf := types.Config{Importer: c.imp}
	_, err = conf.Check("snippet", c.fset, []*ast.File{f}, nil)
	return err
}

func TestRowTypesAreCheckedAtCompileTime(t *testing.T) {
	c := newChecker(t)

	accepted := map[string]string{
		"matching row":    `tbl.AddRow(tt.Row3(tt.NewCell("x"), tt.NewCell(1), tt.NewCell(true)))`,
		"matching values": `tbl.AddFrom(tt.V3("x", 1, true))`,
		"zero row":        `tbl.AddRow(tt.Row[tt.Sig3[string, int, bool]]{})`,
		"appended row":    `tbl.AddRow(tt.WithValue(tt.Pair(tt.NewCell("x"), tt.NewCell(1)), true))`,
	}
	for name, body := range accepted {
		require.NoError(t, c.check(t, body), name)
	}

	rejected := map[string]struct {
		body string
		want string
	}{
		"wrong type in the middle": {
			body: `tbl.AddRow(tt.Row3(tt.NewCell("x"), tt.NewCell(1.5), tt.NewCell(true)))`,
			want: "in argument to tbl.AddRow",
		},
		"too few cells": {
			body: `tbl.AddRow(tt.Row2(tt.NewCell("x"), tt.NewCell(1)))`,
			want: "in argument to tbl.AddRow",
		},
		"too many cells": {
			body: `tbl.AddRow(tt.WithValue(tt.Row3(tt.NewCell("x"), tt.NewCell(1), tt.NewCell(true)), 2))`,
			want: "in argument to tbl.AddRow",
		},
		"swapped order": {
			body: `tbl.AddRow(tt.Row3(tt.NewCell(1), tt.NewCell("x"), tt.NewCell(true)))`,
			want: "in argument to tbl.AddRow",
		},
		"wrong values": {
			body: `tbl.AddFrom(tt.V3("x", 1.5, true))`,
			want: "does not implement",
		},
	}
	for name, tc := range rejected {
		err := c.check(t, tc.body)
		if assert.Error(t, err, name) {
			assert.Contains(t, err.Error(), "cannot use", name)
			assert.Contains(t, err.Error(), tc.want, name)
		}
	}
}
