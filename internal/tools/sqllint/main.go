// Command sqllint checks the inline SQL convention: every string constant
// containing a SQL statement must start with a `--sql <uuid>` audit marker,
// and no marker may be reused by two statements.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	stmtPattern   = regexp.MustCompile(`(?i)\b(select|insert|update|delete|with)\b`)
	markerPattern = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

type query struct {
	file   string
	name   string
	line   int
	marker string
	valid  bool
}

func main() {
	flag.Parse()
	targets := flag.Args()
	if len(targets) == 0 {
		targets = []string{"."}
	}

	var queries []query
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			fatalf("%v", err)
		}
		if !info.IsDir() {
			if filepath.Ext(target) == ".go" {
				qs, err := lintFile(target)
				if err != nil {
					fatalf("%v", err)
				}
				queries = append(queries, qs...)
			}
			continue
		}
		err = filepath.WalkDir(target, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") || strings.HasPrefix(d.Name(), "_") || d.Name() == "vendor" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
				return nil
			}
			qs, err := lintFile(path)
			if err != nil {
				return err
			}
			queries = append(queries, qs...)
			return nil
		})
		if err != nil {
			fatalf("%v", err)
		}
	}

	failed := false
	seen := map[string]query{}
	for _, q := range queries {
		if !q.valid {
			fmt.Fprintf(os.Stderr, "sqllint: %s:%d %s: missing or invalid --sql <uuid> marker\n", q.file, q.line, q.name)
			failed = true
			continue
		}
		if prev, ok := seen[q.marker]; ok {
			fmt.Fprintf(os.Stderr, "sqllint: %s:%d %s: marker already used by %s (%s:%d)\n",
				q.file, q.line, q.name, prev.name, prev.file, prev.line)
			failed = true
			continue
		}
		seen[q.marker] = q
	}
	if failed {
		os.Exit(1)
	}
}

func lintFile(path string) ([]query, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	var queries []query
	ast.Inspect(file, func(n ast.Node) bool {
		vs, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for i, value := range vs.Values {
			bl, ok := value.(*ast.BasicLit)
			if !ok || bl.Kind != token.STRING {
				continue
			}
			raw, err := unquote(bl.Value)
			if err != nil || !stmtPattern.MatchString(raw) {
				continue
			}
			name := ""
			if i < len(vs.Names) && vs.Names[i] != nil {
				name = vs.Names[i].Name
			}
			// Query constants follow the Q-prefix convention; other string
			// constants that merely mention a SQL keyword are skipped.
			if !strings.HasPrefix(name, "Q") {
				continue
			}
			marker := firstLine(raw)
			pos := fset.Position(bl.Pos())
			queries = append(queries, query{
				file:   path,
				name:   name,
				line:   pos.Line,
				marker: marker,
				valid:  markerPattern.MatchString(marker),
			})
		}
		return true
	})
	return queries, nil
}

func firstLine(s string) string {
	s = strings.TrimLeft(s, "\n\r \t")
	if idx := strings.IndexAny(s, "\n\r"); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}

func unquote(v string) (string, error) {
	if len(v) == 0 {
		return v, nil
	}
	if v[0] == '`' {
		return v[1 : len(v)-1], nil
	}
	return strconv.Unquote(v)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "sqllint: "+format+"\n", args...)
	os.Exit(1)
}
