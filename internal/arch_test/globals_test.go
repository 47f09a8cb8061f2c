package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"
)

// allowedGlobals lists package-level vars that are read-only after init but
// don't match the detection heuristics.
var allowedGlobals = map[string][]string{
	// almanac: header lookup built once from the category order.
	"almanac": {"stageHeaders"},
}

// TestNoMutableGlobalState flags package-level vars outside the allowed
// categories: error sentinels, interface checks, regexp.MustCompile, sync
// and atomic types, literals, and the allowlist.
func TestNoMutableGlobalState(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	for _, pkg := range internalPackages(t) {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()

			allowed := make(map[string]bool)
			for _, n := range allowedGlobals[pkg] {
				allowed[n] = true
			}
			for _, filePath := range goFilesIn(t, filepath.Join(dir, pkg)) {
				for _, v := range packageVars(parseFile(t, filePath, 0)) {
					if v.name == "_" || allowed[v.name] || constantLike(v.typ, v.val) {
						continue
					}
					t.Errorf("mutable global state in %s: var %s (type: %s); use dependency injection or move to a function",
						filepath.Base(filePath), v.name, typeString(v.typ))
				}
			}
		})
	}
}

// TestAllowedGlobalsAreUsed catches stale allowlist entries.
func TestAllowedGlobalsAreUsed(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	for pkg, names := range allowedGlobals {
		declared := make(map[string]bool)
		for _, filePath := range goFilesIn(t, filepath.Join(dir, pkg)) {
			for _, v := range packageVars(parseFile(t, filePath, 0)) {
				declared[v.name] = true
			}
		}
		for _, name := range names {
			if !declared[name] {
				t.Errorf("allowedGlobals[%q] contains %q but no such var exists; remove the entry", pkg, name)
			}
		}
	}
}

func TestGlobalStateDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		allowed bool
	}{
		{"error_sentinel_errors_new", `package p; import "errors"; var ErrFoo = errors.New("foo")`, true},
		{"error_sentinel_fmt_errorf", `package p; import "fmt"; var ErrBar = fmt.Errorf("bar: %w", nil)`, true},
		{"typed_error", `package p; var ErrBaz error`, true},
		{"regexp_must_compile", `package p; import "regexp"; var re = regexp.MustCompile("^foo$")`, true},
		{"sync_once", `package p; import "sync"; var once sync.Once`, true},
		{"simple_int_literal", `package p; var count = 42`, true},
		{"composite_slice_literal", `package p; var items = []string{"a", "b"}`, true},
		{"composite_map_literal", `package p; var lookup = map[string]bool{"x": true}`, true},
		{"make_map", `package p; var m = make(map[string]string)`, false},
		{"make_chan", `package p; var ch = make(chan int)`, false},
		{"function_call", `package p; var headers = build()`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			node, err := parser.ParseFile(token.NewFileSet(), "test.go", tc.src, 0)
			if err != nil {
				t.Fatalf("parsing: %v", err)
			}
			vars := packageVars(node)
			if len(vars) != 1 {
				t.Fatalf("found %d vars, want 1", len(vars))
			}
			if got := constantLike(vars[0].typ, vars[0].val); got != tc.allowed {
				t.Errorf("constantLike(%s) = %v, want %v", vars[0].name, got, tc.allowed)
			}
		})
	}
}

type packageVar struct {
	name string
	typ  ast.Expr
	val  ast.Expr // nil without an initializer
}

func packageVars(node *ast.File) []packageVar {
	var vars []packageVar
	for _, decl := range node.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for i, name := range vs.Names {
				v := packageVar{name: name.Name, typ: vs.Type}
				if i < len(vs.Values) {
					v.val = vs.Values[i]
				}
				vars = append(vars, v)
			}
		}
	}
	return vars
}

func constantLike(typ, val ast.Expr) bool {
	if ident, ok := typ.(*ast.Ident); ok && ident.Name == "error" {
		return true
	}
	if pkg, _ := selector(typ); pkg == "sync" || pkg == "atomic" {
		return true
	}
	switch v := val.(type) {
	case *ast.BasicLit, *ast.CompositeLit:
		return true
	case *ast.CallExpr:
		switch pkg, fn := selector(v.Fun); {
		case pkg == "errors" && fn == "New",
			pkg == "fmt" && fn == "Errorf",
			pkg == "regexp" && fn == "MustCompile":
			return true
		}
	}
	return false
}

// selector splits pkg.Name expressions; anything else yields empty strings.
func selector(expr ast.Expr) (pkg, name string) {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return "", ""
	}
	x, ok := sel.X.(*ast.Ident)
	if !ok {
		return "", ""
	}
	return x.Name, sel.Sel.Name
}

func typeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case nil:
		return "<inferred>"
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		pkg, name := selector(t)
		return pkg + "." + name
	case *ast.StarExpr:
		return "*" + typeString(t.X)
	case *ast.ArrayType:
		return "[]" + typeString(t.Elt)
	case *ast.MapType:
		return "map[" + typeString(t.Key) + "]" + typeString(t.Value)
	}
	return "<complex>"
}
