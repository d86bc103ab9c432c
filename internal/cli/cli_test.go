package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, env map[string]string, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := &App{
		Stdin:   strings.NewReader(stdin),
		Stdout:  &stdout,
		Stderr:  &stderr,
		Getenv:  func(k string) string { return env[k] },
		Version: "1.2.3",
		Commit:  "abc123",
	}
	err := app.Execute(context.Background(), args)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestSimple(t *testing.T) {
	res := run(t, nil, "", "simple")
	require.NoError(t, res.err)
	want := "" +
		"╭──────┬─────┬─────────╮\n" +
		"│ Name │ Age │ Married │\n" +
		"├──────┼─────┼─────────┤\n" +
		"│ Joe  │  10 │ false   │\n" +
		"│ Mary │  23 │ true    │\n" +
		"│ John │  53 │ false   │\n" +
		"│ Rob  │  41 │ true    │\n" +
		"╰──────┴─────┴─────────╯\n"
	assert.Equal(t, want, res.stdout)
}

func TestSimpleCSV(t *testing.T) {
	res := run(t, nil, "", "simple", "-o", "csv")
	require.NoError(t, res.err)
	assert.Equal(t, "Name,Age,Married\nJoe,10,false\nMary,23,true\nJohn,53,false\nRob,41,true\n", res.stdout)
}

func TestSimpleTitleNumberedPlain(t *testing.T) {
	res := run(t, nil, "", "simple", "--border", "none", "--title", "Crew", "--numbered")
	require.NoError(t, res.err)
	want := "" +
		"Crew\n" +
		"#  Name  Age  Married\n" +
		"-  ----  ---  -------\n" +
		"1  Joe    10  false\n" +
		"2  Mary   23  true\n" +
		"3  John   53  false\n" +
		"4  Rob    41  true\n"
	assert.Equal(t, want, res.stdout)
}

func TestSimpleGoTemplate(t *testing.T) {
	res := run(t, nil, "", "simple", "-o", "go-template={{.Name}}={{.Age}}")
	require.NoError(t, res.err)
	assert.Equal(t, "Joe=10\nMary=23\nJohn=53\nRob=41\n", res.stdout)
}

func TestPeople(t *testing.T) {
	res := run(t, nil, "", "people", "--border", "ascii", filepath.Join("testdata", "people.yaml"))
	require.NoError(t, res.err)
	want := "" +
		"+-------+-----+---------+--------+\n" +
		"| Name  | Age | Married | Weight |\n" +
		"+-------+-----+---------+--------+\n" +
		"| Alice |  30 | true    |   61.5 |\n" +
		"| Bob   |  25 | false   |     70 |\n" +
		"+-------+-----+---------+--------+\n" +
		"2 people, average age 27.5\n"
	assert.Equal(t, want, res.stdout)
}

func TestPeopleFormats(t *testing.T) {
	path := filepath.Join("testdata", "people.yaml")
	tests := map[string]struct {
		format string
		want   string
	}{
		"csv":   {format: "csv", want: "Name,Age,Married,Weight\nAlice,30,true,61.5\nBob,25,false,70\n"},
		"jsonl": {format: "jsonl", want: `{"Name":"Alice","Age":"30","Married":"true","Weight":"61.5"}` + "\n" + `{"Name":"Bob","Age":"25","Married":"false","Weight":"70"}` + "\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res := run(t, nil, "", "people", "-o", tc.format, path)
			require.NoError(t, res.err)
			assert.Equal(t, tc.want, res.stdout)
		})
	}
}

func TestPeopleStdin(t *testing.T) {
	res := run(t, nil, "- name: Zed\n  age: 40\n", "people", "-o", "csv", "-")
	require.NoError(t, res.err)
	assert.Equal(t, "Name,Age,Married,Weight\nZed,40,false,0\n", res.stdout)
}

func TestPeopleEmpty(t *testing.T) {
	res := run(t, nil, "[]\n", "people", "-o", "json", "-")
	require.NoError(t, res.err)
	assert.Equal(t, "[]\n", res.stdout)
}

func TestPeopleErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: [unclosed\n"), 0o600))

	tests := map[string]struct {
		args []string
		want string
	}{
		"missing file": {args: []string{"people", filepath.Join(dir, "nope.yaml")}, want: "read "},
		"bad yaml":     {args: []string{"people", bad}, want: "parse "},
		"no args":      {args: []string{"people"}, want: "accepts 1 arg"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res := run(t, nil, "", tc.args...)
			require.Error(t, res.err)
			assert.Contains(t, res.err.Error(), tc.want)
			assert.Contains(t, res.stderr, "Error:")
		})
	}
}

func TestBadFlagValues(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"format":     {args: []string{"simple", "-o", "xml"}, want: "unsupported format"},
		"border":     {args: []string{"simple", "--border", "dotted"}, want: "unknown border style"},
		"color":      {args: []string{"simple", "--color", "sometimes"}, want: "unknown color mode"},
		"log format": {args: []string{"--log-format", "xml", "simple"}, want: "unknown log format"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res := run(t, nil, "", tc.args...)
			require.Error(t, res.err)
			assert.Contains(t, res.err.Error(), tc.want)
		})
	}
}

func TestColor(t *testing.T) {
	always := run(t, nil, "", "simple", "--color", "always")
	require.NoError(t, always.err)
	assert.Contains(t, always.stdout, "\x1b[")

	never := run(t, nil, "", "simple", "--color", "never")
	require.NoError(t, never.err)
	assert.NotContains(t, never.stdout, "\x1b[")

	noColor := run(t, map[string]string{"NO_COLOR": "1"}, "", "simple", "--color", "always")
	require.NoError(t, noColor.err)
	assert.NotContains(t, noColor.stdout, "\x1b[")
	assert.Equal(t, never.stdout, noColor.stdout)
}

func TestProfile(t *testing.T) {
	var buf bytes.Buffer
	app := &App{Stdout: &buf}
	assert.Equal(t, termenv.Ascii, app.profile(ColorAuto))
	assert.Equal(t, termenv.Ascii, app.profile(ColorNever))
	assert.Equal(t, termenv.ANSI256, app.profile(ColorAlways))

	app.Getenv = func(string) string { return "1" }
	assert.Equal(t, termenv.Ascii, app.profile(ColorAlways))
}

func TestDebugLogging(t *testing.T) {
	res := run(t, nil, "", "--debug", "people", "-o", "csv", filepath.Join("testdata", "people.yaml"))
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "msg=\"loaded people\"")
	assert.Contains(t, res.stderr, "count=2")
	assert.Contains(t, res.stderr, "format=csv")

	quiet := run(t, nil, "", "simple")
	require.NoError(t, quiet.err)
	assert.Empty(t, quiet.stderr)
}

func TestJSONLogging(t *testing.T) {
	res := run(t, nil, "", "--debug", "--log-format", "json", "people", "-o", "csv", filepath.Join("testdata", "people.yaml"))
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, `"msg":"loaded people"`)
	assert.Contains(t, res.stderr, `"count":2`)
	assert.Contains(t, res.stderr, `"msg":"rendering table"`)
	assert.NotContains(t, res.stderr, "msg=")
}

func TestVersion(t *testing.T) {
	res := run(t, nil, "", "version")
	require.NoError(t, res.err)
	assert.Equal(t, "typedtable 1.2.3 (abc123)\n", res.stdout)
}

func TestParseColorMode(t *testing.T) {
	for _, name := range []string{"auto", "always", "never"} {
		m, err := ParseColorMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	assert.Equal(t, "ColorMode(9)", ColorMode(9).String())
}

func TestRootCommand(t *testing.T) {
	root := NewApp().RootCommand()
	assert.Equal(t, "typedtable", root.Name())
	for _, name := range []string{"simple", "people", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("output"))
	assert.Equal(t, "table", root.PersistentFlags().Lookup("output").DefValue)
	assert.Equal(t, "rounded", root.PersistentFlags().Lookup("border").DefValue)
	assert.Equal(t, "text", root.PersistentFlags().Lookup("log-format").DefValue)
}
