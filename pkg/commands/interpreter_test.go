package commands

import (
	"testing"

	"github.com/filetug/kupo/pkg/files"
	"github.com/filetug/kupo/pkg/files/osfile"
	"github.com/filetug/kupo/pkg/lister"
	"github.com/filetug/kupo/pkg/navigation"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type events struct {
	selections  []navigation.SelectionChanged
	directories []navigation.DirectoryChanged
}

func (e *events) count() int {
	return len(e.selections) + len(e.directories)
}

// newTestEnv builds /work/{a/, b/, note.txt} and /other/ and points a
// navigation state at /work.
func newTestEnv(t *testing.T) (*Interpreter, *navigation.State, *events, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, dir := range []string{"/work/a", "/work/b", "/other"} {
		require.NoError(t, fsys.MkdirAll(dir, 0755))
	}
	require.NoError(t, afero.WriteFile(fsys, "/work/note.txt", []byte("hi"), 0644))
	store := osfile.NewStoreWithFs(fsys)
	nav := navigation.New(lister.New(store), "/work")
	ev := &events{}
	nav.OnSelectionChanged(func(e navigation.SelectionChanged) {
		ev.selections = append(ev.selections, e)
	})
	nav.OnDirectoryChanged(func(e navigation.DirectoryChanged) {
		ev.directories = append(ev.directories, e)
	})
	return NewInterpreter(store), nav, ev, fsys
}

func names(entries []files.Entry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Name
	}
	return result
}

func selectedName(t *testing.T, nav *navigation.State) string {
	t.Helper()
	entry, ok := nav.Selected()
	require.True(t, ok)
	return entry.Name
}

func TestExecute_EmptyLine(t *testing.T) {
	in, nav, ev, _ := newTestEnv(t)
	for _, line := range []string{"", "   ", "\t"} {
		outcome := in.Execute(line, nav)
		assert.Equal(t, StatusNoop, outcome.Status)
		assert.True(t, outcome.Success())
	}
	assert.Zero(t, ev.count())
}

func TestExecute_UnknownCommand(t *testing.T) {
	in, nav, ev, _ := newTestEnv(t)
	before := names(nav.Entries())

	outcome := in.Execute("rm -rf a", nav)

	assert.Equal(t, StatusUnknownCommand, outcome.Status)
	assert.Equal(t, "rm", outcome.Command)
	assert.Contains(t, outcome.Message, "unknown command")
	assert.False(t, outcome.Success())
	assert.Equal(t, before, names(nav.Entries()))
	assert.Zero(t, ev.count())
}

func TestExecute_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		arg  string
	}{
		{name: "missing_path", line: "mkdir", arg: "PATH"},
		{name: "extra_argument", line: "mkdir x y", arg: "y"},
		{name: "unknown_flag", line: "mkdir -p x", arg: "-p"},
		{name: "quit_with_argument", line: "quit now", arg: "now"},
		{name: "unterminated_quote", line: `touch "x`, arg: `"x`},
		{name: "hash_argument_is_extra", line: "mkdir x #b", arg: "#b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, nav, ev, fsys := newTestEnv(t)
			outcome := in.Execute(tt.line, nav)
			assert.Equal(t, StatusParseError, outcome.Status)
			assert.Equal(t, tt.arg, outcome.Arg)
			assert.Error(t, outcome.Err)
			assert.Zero(t, ev.count())
			assert.Equal(t, "/work", nav.Path())
			exists, err := afero.Exists(fsys, "/work/x")
			require.NoError(t, err)
			assert.False(t, exists, "a rejected command must not be partially applied")
		})
	}
}

func TestExecute_HashIsOrdinaryCharacter(t *testing.T) {
	for _, line := range []string{"touch #notes", "touch '#notes'", `touch \#notes`} {
		t.Run(line, func(t *testing.T) {
			in, nav, _, fsys := newTestEnv(t)
			outcome := in.Execute(line, nav)
			require.Equal(t, StatusOK, outcome.Status, outcome.Message)
			exists, err := afero.Exists(fsys, "/work/#notes")
			require.NoError(t, err)
			assert.True(t, exists)
			assert.Equal(t, "#notes", selectedName(t, nav))
		})
	}
}

func TestExecute_DoubleDashEndsFlags(t *testing.T) {
	in, nav, _, fsys := newTestEnv(t)
	outcome := in.Execute("touch -- -dash", nav)
	require.Equal(t, StatusOK, outcome.Status, outcome.Message)
	exists, err := afero.Exists(fsys, "/work/-dash")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExecute_Quit(t *testing.T) {
	in, nav, ev, _ := newTestEnv(t)
	for _, line := range []string{"q", "quit", "  quit  "} {
		outcome := in.Execute(line, nav)
		assert.Equal(t, StatusQuit, outcome.Status, line)
		assert.True(t, outcome.Success())
	}
	assert.Zero(t, ev.count())
}

func TestExecute_ChangeDir(t *testing.T) {
	t.Run("relative", func(t *testing.T) {
		in, nav, ev, _ := newTestEnv(t)
		outcome := in.Execute("cd a", nav)
		require.Equal(t, StatusOK, outcome.Status, outcome.Message)
		assert.Equal(t, "/work/a", nav.Path())
		require.Len(t, ev.directories, 1)
		assert.Equal(t, navigation.DirectoryChanged{OldPath: "/work", NewPath: "/work/a"}, ev.directories[0])
	})
	t.Run("dot_dot", func(t *testing.T) {
		in, nav, _, _ := newTestEnv(t)
		outcome := in.Execute("cd ../other", nav)
		require.Equal(t, StatusOK, outcome.Status, outcome.Message)
		assert.Equal(t, "/other", nav.Path())
	})
	t.Run("absolute_quoted", func(t *testing.T) {
		in, nav, _, fsys := newTestEnv(t)
		require.NoError(t, fsys.MkdirAll("/other/with space", 0755))
		outcome := in.Execute(`cd "/other/with space"`, nav)
		require.Equal(t, StatusOK, outcome.Status, outcome.Message)
		assert.Equal(t, "/other/with space", nav.Path())
	})
}

func TestExecute_ChangeDir_NonexistentLeavesStateUnchanged(t *testing.T) {
	in, nav, ev, _ := newTestEnv(t)
	before := names(nav.Entries())
	beforeIndex, _ := nav.SelectedIndex()

	outcome := in.Execute("cd missing", nav)

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Contains(t, outcome.Message, "not a directory")
	assert.ErrorIs(t, outcome.Err, files.ErrNotFound)
	assert.Equal(t, "/work", nav.Path())
	assert.Equal(t, before, names(nav.Entries()))
	afterIndex, _ := nav.SelectedIndex()
	assert.Equal(t, beforeIndex, afterIndex)
	assert.Zero(t, ev.count(), "no notification expected")
}

func TestExecute_ChangeDir_ToFile(t *testing.T) {
	in, nav, ev, _ := newTestEnv(t)
	outcome := in.Execute("cd note.txt", nav)
	assert.Equal(t, StatusFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, files.ErrNotDir)
	assert.Equal(t, "/work", nav.Path())
	assert.Zero(t, ev.count())
}

func TestExecute_MakeDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/work/a", 0755))
	require.NoError(t, fsys.MkdirAll("/work/b", 0755))
	store := osfile.NewStoreWithFs(fsys)
	nav := navigation.New(lister.New(store), "/work")
	require.Equal(t, []string{"a", "b"}, names(nav.Entries()))

	outcome := NewInterpreter(store).Execute(`mkdir "newdir"`, nav)

	require.Equal(t, StatusOK, outcome.Status, outcome.Message)
	assert.Equal(t, []string{"a", "b", "newdir"}, names(nav.Entries()))
	assert.Equal(t, "newdir", selectedName(t, nav))
	info, err := fsys.Stat("/work/newdir")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExecute_MakeDir_ClearsFilterToShowNewEntry(t *testing.T) {
	in, nav, _, _ := newTestEnv(t)
	nav.SetFilter("note")
	require.Equal(t, []string{"note.txt"}, names(nav.Entries()))

	outcome := in.Execute("mkdir zz", nav)

	require.Equal(t, StatusOK, outcome.Status, outcome.Message)
	assert.Equal(t, "", nav.Filter())
	assert.Equal(t, "zz", selectedName(t, nav))
}

func TestExecute_MakeDir_Failures(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
		message string
	}{
		{name: "exists", line: "mkdir a", wantErr: files.ErrExists, message: "already exists"},
		{name: "missing_parent", line: "mkdir nope/child", wantErr: files.ErrNotFound, message: "no such file"},
		{name: "parent_is_file", line: "mkdir note.txt/child", wantErr: files.ErrNotDir, message: "not a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, nav, ev, fsys := newTestEnv(t)
			outcome := in.Execute(tt.line, nav)
			assert.Equal(t, StatusFailed, outcome.Status)
			assert.ErrorIs(t, outcome.Err, tt.wantErr)
			assert.Contains(t, outcome.Message, tt.message)
			assert.Zero(t, ev.count())
			exists, err := afero.DirExists(fsys, "/work/nope")
			require.NoError(t, err)
			assert.False(t, exists, "no partial directory trees")
		})
	}
}

func TestExecute_MakeDir_InOtherDirectory(t *testing.T) {
	in, nav, ev, _ := newTestEnv(t)
	outcome := in.Execute("mkdir /other/made", nav)
	require.Equal(t, StatusOK, outcome.Status, outcome.Message)
	assert.Equal(t, "/other", nav.Path())
	assert.Equal(t, "made", selectedName(t, nav))
	require.Len(t, ev.directories, 1)
}

func TestExecute_Touch(t *testing.T) {
	in, nav, ev, fsys := newTestEnv(t)

	outcome := in.Execute("touch c.txt", nav)

	require.Equal(t, StatusOK, outcome.Status, outcome.Message)
	assert.Equal(t, []string{"a", "b", "c.txt", "note.txt"}, names(nav.Entries()))
	assert.Equal(t, "c.txt", selectedName(t, nav))
	assert.Empty(t, ev.directories)
	data, err := afero.ReadFile(fsys, "/work/c.txt")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestExecute_Touch_ExistingIsLeftAlone(t *testing.T) {
	in, nav, _, fsys := newTestEnv(t)
	outcome := in.Execute("touch note.txt", nav)
	require.Equal(t, StatusOK, outcome.Status, outcome.Message)
	assert.Equal(t, "note.txt", selectedName(t, nav))
	data, err := afero.ReadFile(fsys, "/work/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestExecute_Touch_MissingParent(t *testing.T) {
	in, nav, ev, _ := newTestEnv(t)
	outcome := in.Execute("touch nope/file", nav)
	assert.Equal(t, StatusFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, files.ErrNotFound)
	assert.Zero(t, ev.count())
}

func TestReference(t *testing.T) {
	in := NewInterpreter(nil)
	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{line: "", wantOK: false},
		{line: "cd", want: "cd PATH", wantOK: true},
		{line: "mkdir some/dir", want: "mkdir PATH", wantOK: true},
		{line: `touch "unterminated`, want: "touch PATH", wantOK: true},
		{line: "q", want: "q", wantOK: true},
		{line: "mk", wantOK: false},
		{line: "#cd", wantOK: false},
		{line: "touch #x", want: "touch PATH", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, ok := in.Reference(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, cmd.Syntax)
		})
	}
}
