package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/postgresql/db"
)

func TestListPageQuery_NoFilters(t *testing.T) {
	t.Parallel()

	params := internal.ListTodosParams{Limit: 10}

	sql, args, err := listPageQuery(params, listPredicate(params)).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT t.id, t.title, t.description, t.completed, t.priority, t.due_date, t.category_id, t.created_at, t.updated_at, c.name, c.color, c.created_at "+
			"FROM todos t "+
			"LEFT JOIN categories c ON c.id = t.category_id "+
			"ORDER BY t.created_at DESC "+
			"LIMIT 10 OFFSET 0",
		sql)
	assert.Empty(t, args)
}

func TestListPageQuery_AllFilters(t *testing.T) {
	t.Parallel()

	search := "report"
	categoryID := int64(5)
	completed := false
	priority := internal.PriorityHigh

	params := internal.ListTodosParams{
		Search:     &search,
		CategoryID: &categoryID,
		Completed:  &completed,
		Priority:   &priority,
		SortBy:     internal.SortByDueDate,
		SortOrder:  internal.SortAsc,
		Skip:       20,
		Limit:      10,
	}

	sql, args, err := listPageQuery(params, listPredicate(params)).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT t.id, t.title, t.description, t.completed, t.priority, t.due_date, t.category_id, t.created_at, t.updated_at, c.name, c.color, c.created_at "+
			"FROM todos t "+
			"LEFT JOIN categories c ON c.id = t.category_id "+
			"WHERE ((t.title ILIKE $1 OR t.description ILIKE $2) AND t.category_id = $3 AND t.completed = $4 AND t.priority = $5) "+
			"ORDER BY t.due_date ASC "+
			"LIMIT 10 OFFSET 20",
		sql)
	assert.Equal(t, []interface{}{"%report%", "%report%", int64(5), false, db.PriorityHigh}, args)
}

func TestListCountQuery_SharesPredicate(t *testing.T) {
	t.Parallel()

	search := "report"
	completed := true

	params := internal.ListTodosParams{
		Search:    &search,
		Completed: &completed,
		SortBy:    internal.SortByTitle,
		Skip:      40,
		Limit:     20,
	}

	pred := listPredicate(params)

	pageSQL, pageArgs, err := listPageQuery(params, pred).ToSql()
	require.NoError(t, err)

	countSQL, countArgs, err := listCountQuery(pred).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT COUNT(*) FROM todos t "+
			"WHERE ((t.title ILIKE $1 OR t.description ILIKE $2) AND t.completed = $3)",
		countSQL)

	// same filters, same arguments: only ordering and pagination may differ
	assert.Equal(t, pageArgs, countArgs)
	assert.Contains(t, pageSQL, "WHERE ((t.title ILIKE $1 OR t.description ILIKE $2) AND t.completed = $3)")
}

func TestListCountQuery_NoFilters(t *testing.T) {
	t.Parallel()

	sql, args, err := listCountQuery(listPredicate(internal.ListTodosParams{})).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM todos t", sql)
	assert.Empty(t, args)
}

func TestOrderBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{name: "defaults", sortBy: "", sortOrder: "", want: "t.created_at DESC"},
		{name: "title asc", sortBy: internal.SortByTitle, sortOrder: internal.SortAsc, want: "t.title ASC"},
		{name: "priority desc", sortBy: internal.SortByPriority, sortOrder: internal.SortDesc, want: "t.priority DESC"},
		{name: "unknown field falls back", sortBy: "id; DROP TABLE todos", sortOrder: internal.SortAsc, want: "t.created_at ASC"},
		{name: "unknown direction falls back", sortBy: internal.SortByUpdatedAt, sortOrder: "sideways", want: "t.updated_at DESC"},
		{name: "uppercase direction is not recognized", sortBy: internal.SortByDueDate, sortOrder: "ASC", want: "t.due_date DESC"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, orderBy(tt.sortBy, tt.sortOrder))
		})
	}
}

func TestConvertPriority(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		rec  db.Priority
		want internal.Priority
	}{
		{rec: db.PriorityLow, want: internal.PriorityLow},
		{rec: db.PriorityMedium, want: internal.PriorityMedium},
		{rec: db.PriorityHigh, want: internal.PriorityHigh},
	} {
		got, err := convertPriority(tt.rec)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := convertPriority(db.Priority("urgent"))
	assert.Error(t, err)
}

func TestNewPriority_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range []internal.Priority{internal.PriorityLow, internal.PriorityMedium, internal.PriorityHigh} {
		got, err := convertPriority(newPriority(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}
