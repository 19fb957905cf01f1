package command

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var prCreate = Spec{
	Name:        "repos_pr_create",
	Description: "Create a pull request",
	Command:     "repos pr create",
	Params: []Param{
		String("repository", "--repository", "Repository name or ID").AsRequired(),
		String("title", "--title", "Pull request title").AsRequired(),
		String("description", "--description", "Pull request description"),
		List("reviewers", "--reviewers", "List of reviewers"),
		SwitchTrue("draft", "--draft", "Create as draft pull request"),
		Project(),
	},
	Operation: "create",
}

func TestBuildArgs_Layout(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		args map[string]any
		want []string
	}{
		{
			name: "no params",
			spec: Spec{Name: "list_projects", Command: "devops project list"},
			want: []string{"devops", "project", "list", "--output", "json"},
		},
		{
			name: "required only",
			spec: prCreate,
			args: map[string]any{"repository": "api", "title": "Fix"},
			want: []string{"repos", "pr", "create", "--repository", "api", "--title", "Fix", "--output", "json"},
		},
		{
			name: "optionals follow output in declared order",
			spec: prCreate,
			args: map[string]any{
				"project":     "Fabrikam",
				"draft":       true,
				"reviewers":   []any{"a@example.com", "b@example.com"},
				"description": "Details",
				"title":       "Fix",
				"repository":  "api",
			},
			want: []string{
				"repos", "pr", "create", "--repository", "api", "--title", "Fix", "--output", "json",
				"--description", "Details", "--reviewers", "a@example.com", "b@example.com", "--draft", "true", "--project", "Fabrikam",
			},
		},
		{
			name: "empty optional string and false switch are absent",
			spec: prCreate,
			args: map[string]any{"repository": "api", "title": "Fix", "project": "", "draft": false, "reviewers": []any{}},
			want: []string{"repos", "pr", "create", "--repository", "api", "--title", "Fix", "--output", "json"},
		},
		{
			name: "confirm precedes output",
			spec: Spec{
				Name:    "pipelines_delete",
				Command: "pipelines delete",
				Params:  []Param{Number("id", "--id", "Pipeline ID").AsRequired(), Project()},
				Confirm: true,
			},
			args: map[string]any{"id": float64(42), "project": "Fabrikam"},
			want: []string{"pipelines", "delete", "--id", "42", "--yes", "--output", "json", "--project", "Fabrikam"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.BuildArgs(tt.args)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("argv mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildArgs_Encodings(t *testing.T) {
	tests := []struct {
		name  string
		param Param
		value any
		want  []string
	}{
		{name: "integer number", param: Number("top", "--top", ""), value: float64(10), want: []string{"--top", "10"}},
		{name: "optional zero is absent", param: Number("skip", "--skip", ""), value: float64(0), want: nil},
		{name: "zero kept when declared", param: Number("denyBit", "--deny-bit", "").WithZero(), value: float64(0), want: []string{"--deny-bit", "0"}},
		{name: "fraction", param: Number("n", "--n", ""), value: 2.5, want: []string{"--n", "2.5"}},
		{name: "int from go caller", param: Number("n", "--n", ""), value: 7, want: []string{"--n", "7"}},
		{name: "switch true", param: Switch("destroy", "--destroy", ""), value: true, want: []string{"--destroy"}},
		{name: "switch false", param: Switch("destroy", "--destroy", ""), value: false, want: nil},
		{name: "switch-true", param: SwitchTrue("secret", "--secret", ""), value: true, want: []string{"--secret", "true"}},
		{name: "bool true", param: Bool("secret", "--secret", ""), value: true, want: []string{"--secret", "true"}},
		{name: "bool false", param: Bool("secret", "--secret", ""), value: false, want: []string{"--secret", "false"}},
		{name: "list", param: List("ids", "--work-items", ""), value: []string{"1", "2"}, want: []string{"--work-items", "1", "2"}},
		{
			name:  "pairs sorted by key",
			param: Pairs("variables", "--variables", ""),
			value: map[string]any{"zeta": "1", "alpha": "a=b", "mid": ""},
			want:  []string{"--variables", "alpha=a=b", "--variables", "mid=", "--variables", "zeta=1"},
		},
		{name: "empty pairs", param: Pairs("variables", "--variables", ""), value: map[string]any{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Spec{Name: "t", Command: "x", Params: []Param{tt.param}}
			got, err := spec.BuildArgs(map[string]any{tt.param.Name: tt.value})
			require.NoError(t, err)

			want := append([]string{"x", "--output", "json"}, tt.want...)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("argv mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildArgs_OneOf(t *testing.T) {
	query := Spec{
		Name:    "boards_query",
		Command: "boards query",
		Params: []Param{
			String("id", "--id", "The ID of an existing query"),
			String("path", "--path", "The path of an existing query"),
			String("wiql", "--wiql", "WIQL query string"),
		},
		OneOf: []string{"id", "path", "wiql"},
	}

	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{name: "id wins", args: map[string]any{"id": "q1", "path": "Shared/All", "wiql": "SELECT"}, want: []string{"--id", "q1"}},
		{name: "path wins over wiql", args: map[string]any{"path": "Shared/All", "wiql": "SELECT"}, want: []string{"--path", "Shared/All"}},
		{name: "empty id is skipped", args: map[string]any{"id": "", "wiql": "SELECT [System.Id] FROM WorkItems"}, want: []string{"--wiql", "SELECT [System.Id] FROM WorkItems"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := query.BuildArgs(tt.args)
			require.NoError(t, err)
			want := append([]string{"boards", "query", "--output", "json"}, tt.want...)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("argv mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("none set", func(t *testing.T) {
		_, err := query.BuildArgs(map[string]any{"id": ""})
		assert.EqualError(t, err, "Must specify either 'id', 'path', or 'wiql' parameter")
	})
}

func TestValidate(t *testing.T) {
	spec := Spec{
		Name:    "t",
		Command: "x",
		Params: []Param{
			Number("id", "--id", "").AsRequired(),
			String("vote", "--vote", "").WithEnum("approve", "reject"),
			String("status", "--status", "").WithEnum("active", "all").AsRequired(),
			Switch("draft", "--draft", ""),
			List("reviewers", "--reviewers", ""),
			Pairs("variables", "--variables", ""),
		},
	}
	base := func() map[string]any { return map[string]any{"id": float64(1), "status": "active"} }

	tests := []struct {
		name      string
		mutate    func(map[string]any)
		wantParam string
		wantMsg   string
	}{
		{name: "valid", mutate: func(map[string]any) {}},
		{name: "unknown arguments ignored", mutate: func(a map[string]any) { a["extra"] = 1 }},
		{name: "null optional is absent", mutate: func(a map[string]any) { a["vote"] = nil }},
		{name: "empty optional enum is absent", mutate: func(a map[string]any) { a["vote"] = "" }},
		{name: "missing required", mutate: func(a map[string]any) { delete(a, "id") }, wantParam: "id", wantMsg: `invalid parameter "id": is required`},
		{name: "null required", mutate: func(a map[string]any) { a["id"] = nil }, wantParam: "id"},
		{name: "number as string", mutate: func(a map[string]any) { a["id"] = "1" }, wantParam: "id", wantMsg: `invalid parameter "id": must be a number`},
		{name: "enum violation", mutate: func(a map[string]any) { a["vote"] = "maybe" }, wantParam: "vote", wantMsg: `invalid parameter "vote": must be one of: approve, reject`},
		{name: "empty required enum", mutate: func(a map[string]any) { a["status"] = "" }, wantParam: "status"},
		{name: "boolean as string", mutate: func(a map[string]any) { a["draft"] = "true" }, wantParam: "draft"},
		{name: "array of numbers", mutate: func(a map[string]any) { a["reviewers"] = []any{1} }, wantParam: "reviewers"},
		{name: "object with number", mutate: func(a map[string]any) { a["variables"] = map[string]any{"a": 1} }, wantParam: "variables"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := base()
			tt.mutate(args)

			err := spec.Validate(args)
			if tt.wantParam == "" {
				assert.NoError(t, err)
				return
			}

			var argErr *ArgumentError
			require.True(t, errors.As(err, &argErr), "want *ArgumentError, got %v", err)
			assert.Equal(t, tt.wantParam, argErr.Param)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestQuoteList(t *testing.T) {
	assert.Equal(t, "'a'", quoteList([]string{"a"}))
	assert.Equal(t, "'a' or 'b'", quoteList([]string{"a", "b"}))
	assert.Equal(t, "'a', 'b', or 'c'", quoteList([]string{"a", "b", "c"}))
}

func TestBuildArgs_RequiredValuesAlwaysEmitted(t *testing.T) {
	spec := Spec{
		Name:    "pipelines_variable_create",
		Command: "pipelines variable create",
		Params: []Param{
			String("value", "--value", "").AsRequired(),
			Number("id", "--pipeline-id", "").AsRequired(),
			Number("depth", "--depth", ""),
		},
	}

	got, err := spec.BuildArgs(map[string]any{"value": "", "id": float64(0), "depth": float64(0)})
	require.NoError(t, err)

	want := []string{"pipelines", "variable", "create", "--value", "", "--pipeline-id", "0", "--output", "json"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("argv mismatch (-want +got):\n%s", diff)
	}
}
