package router

import (
	"reflect"
	"testing"
)

func TestCompileMatch(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     string
		want     map[string]string
		ok       bool
	}{
		{
			name:     "literal match",
			template: "/about",
			path:     "/about",
			want:     map[string]string{},
			ok:       true,
		},
		{
			name:     "literal mismatch",
			template: "/about",
			path:     "/contact",
			ok:       false,
		},
		{
			name:     "anchored no prefix match",
			template: "/about",
			path:     "/about/team",
			ok:       false,
		},
		{
			name:     "anchored no suffix match",
			template: "/users/:id",
			path:     "/v2/users/42",
			ok:       false,
		},
		{
			name:     "single param",
			template: "/users/:id",
			path:     "/users/42",
			want:     map[string]string{"id": "42"},
			ok:       true,
		},
		{
			name:     "param never spans slash",
			template: "/users/:id",
			path:     "/users/42/posts",
			ok:       false,
		},
		{
			name:     "param never matches empty",
			template: "/users/:id",
			path:     "/users/",
			ok:       false,
		},
		{
			name:     "multiple params",
			template: "/users/:user/posts/:post",
			path:     "/users/7/posts/99",
			want:     map[string]string{"user": "7", "post": "99"},
			ok:       true,
		},
		{
			name:     "wildcard captures remainder",
			template: "/files/*",
			path:     "/files/docs/readme.txt",
			want:     map[string]string{WildcardKey: "docs/readme.txt"},
			ok:       true,
		},
		{
			name:     "wildcard matches empty remainder",
			template: "/files/*",
			path:     "/files/",
			want:     map[string]string{WildcardKey: ""},
			ok:       true,
		},
		{
			name:     "param then wildcard",
			template: "/repos/:name/*",
			path:     "/repos/core/src/main.go",
			want:     map[string]string{"name": "core", WildcardKey: "src/main.go"},
			ok:       true,
		},
		{
			name:     "dot is literal",
			template: "/feed.xml",
			path:     "/feedaxml",
			ok:       false,
		},
		{
			name:     "regexp metacharacters are literals",
			template: "/items/(special)+",
			path:     "/items/(special)+",
			want:     map[string]string{},
			ok:       true,
		},
		{
			name:     "param name stops at non identifier",
			template: "/files/:name.txt",
			path:     "/files/report.txt",
			want:     map[string]string{"name": "report"},
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.template)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.template, err)
			}
			got, ok := p.Match(tt.path)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if !ok {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q) params = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCompileDuplicateParam(t *testing.T) {
	if _, err := Compile("/pairs/:id/:id"); err == nil {
		t.Fatal("expected error for duplicate parameter name")
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCompile to panic on duplicate parameter")
		}
	}()
	MustCompile("/pairs/:id/:id")
}

func TestParamNames(t *testing.T) {
	p := MustCompile("/repos/:owner/:name/files/*")
	want := []string{"owner", "name"}
	if got := p.ParamNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ParamNames() = %v, want %v", got, want)
	}
	if p.String() != "/repos/:owner/:name/files/*" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestMatchIsRepeatable(t *testing.T) {
	p := MustCompile("/users/:id")
	for i := 0; i < 3; i++ {
		params, ok := p.Match("/users/42")
		if !ok || params["id"] != "42" {
			t.Fatalf("iteration %d: params = %v, ok = %v", i, params, ok)
		}
	}
}
