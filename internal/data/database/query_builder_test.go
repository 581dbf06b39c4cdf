package database

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildListQuery_BasicSelect(t *testing.T) {
	query, args := BuildListQuery(NewListQueryOptions("projects"))

	expected := `SELECT * FROM "projects"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildListQuery_WithColumns(t *testing.T) {
	query, _ := BuildListQuery(NewListQueryOptions("projects",
		WithColumns("id", "owner_id", "name"),
	))

	expected := `SELECT "id", "owner_id", "name" FROM "projects"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
}

func TestBuildListQuery_QualifiedColumnAndOrder(t *testing.T) {
	query, _ := BuildListQuery(NewListQueryOptions("projects",
		WithColumns("p.id", "p.name"),
		WithOrderBy("p.created_at", "desc"),
	))

	expected := `SELECT "p"."id", "p"."name" FROM "projects" ORDER BY "p"."created_at" DESC`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
}

func TestBuildListQuery_OwnerScopedSearch(t *testing.T) {
	query, args := BuildListQuery(NewListQueryOptions("projects",
		WithColumns("id", "name"),
		WithCondition(WhereCond("owner_id", Equal, "u-1")),
		WithCondition(WhereCond("name", ILike, "%roadmap%")),
		WithOrderBy("created_at", "DESC"),
		WithLimit(20),
		WithOffset(40),
	))

	expected := `SELECT "id", "name" FROM "projects" ` +
		`WHERE "owner_id" = $1 AND "name" ILIKE $2 ` +
		`ORDER BY "created_at" DESC LIMIT $3 OFFSET $4`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	wantArgs := []any{"u-1", "%roadmap%", 20, 40}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("Expected args %v, got %v", wantArgs, args)
	}
}

func TestBuildListQuery_InCondition(t *testing.T) {
	query, args := BuildListQuery(NewListQueryOptions("tasks",
		WithConditions(
			WhereCond("project_id", Equal, "p-1"),
			WhereCond("board_column", In, []string{"todo", "doing"}),
		),
	))

	expected := `SELECT * FROM "tasks" WHERE "project_id" = $1 AND "board_column" IN ($2, $3)`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	wantArgs := []any{"p-1", "todo", "doing"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("Expected args %v, got %v", wantArgs, args)
	}
}

func TestBuildListQuery_EmptyInSkipped(t *testing.T) {
	query, args := BuildListQuery(NewListQueryOptions("tasks",
		WithCondition(WhereCond("board_column", In, []string{})),
	))

	expected := `SELECT * FROM "tasks"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildListQuery_InjectionInIdentifiers(t *testing.T) {
	query, _ := BuildListQuery(NewListQueryOptions(`projects"; DROP TABLE users; --`,
		WithColumns(`name" FROM secrets; --`),
		WithOrderBy(`created_at"; --`, "DESC"),
	))

	// Quoting must neutralize embedded quotes in every identifier position.
	for _, fragment := range []string{"DROP TABLE", "FROM secrets"} {
		if containsOutsideQuotes(query, fragment) {
			t.Errorf("Query %q leaks unquoted fragment %q", query, fragment)
		}
	}
}

func TestBuildListQuery_ZeroLimitIsExplicit(t *testing.T) {
	query, args := BuildListQuery(NewListQueryOptions("labels", WithLimit(0)))

	expected := `SELECT * FROM "labels" LIMIT $1`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if !reflect.DeepEqual(args, []any{0}) {
		t.Errorf("Expected args [0], got %v", args)
	}
}

func TestBuildListQuery_NilOptions(t *testing.T) {
	query, args := BuildListQuery(nil)
	if query != "" || args != nil {
		t.Errorf("Expected empty query for nil options, got %q / %v", query, args)
	}
}

// containsOutsideQuotes reports whether fragment appears in s outside any
// double-quoted identifier.
func containsOutsideQuotes(s, fragment string) bool {
	inQuotes := false
	var plain strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			plain.WriteByte(s[i])
		}
	}
	return strings.Contains(plain.String(), fragment)
}
