package days

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/days/internal/event"
	"github.com/roach88/days/internal/filter"
	"github.com/roach88/days/internal/store"
	"github.com/roach88/days/internal/testutil"
)

const header = event.Header

func newTestService(t *testing.T, content string) *Service {
	t.Helper()
	_, path := testutil.SeedDir(t, content)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return NewService(store.New(path, store.WithLogger(logger)), testutil.FixedClock(""), logger)
}

func descriptions(rows []store.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Description
	}
	return out
}

func TestExecute_List(t *testing.T) {
	svc := newTestService(t, testutil.CSV(header,
		"2024-01-01,work,standup",
		"2024-06-01,,trip",
		"2024-03-10,gym,legs",
	))

	res, err := svc.Execute(context.Background(), List{Filter: filter.All{}})
	require.NoError(t, err)
	assert.False(t, res.Empty)
	assert.Equal(t, []string{"standup", "trip", "legs"}, descriptions(res.Rows))

	today, err := ListFilter(ListArgs{Today: true}, svc.clock)
	require.NoError(t, err)
	res, err = svc.Execute(context.Background(), List{Filter: today})
	require.NoError(t, err)
	assert.Equal(t, []string{"legs"}, descriptions(res.Rows))
}

func TestExecute_ListEmptyStore(t *testing.T) {
	svc := newTestService(t, testutil.CSV(header))

	res, err := svc.Execute(context.Background(), List{})
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.Empty(t, res.Rows)
}

func TestExecute_ListMissingDirectory(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "gone", "events.csv"))
	svc := NewService(st, testutil.FixedClock(""), nil)

	_, err := svc.Execute(context.Background(), List{})
	assert.ErrorIs(t, err, store.ErrDirNotFound)
}

func TestExecute_AddThenLoad(t *testing.T) {
	svc := newTestService(t, testutil.CSV(header, "2024-01-01,work,standup"))
	ctx := context.Background()

	date := event.MustParseDate("2024-07-04")
	res, err := svc.Execute(ctx, Add{Date: &date, Category: "party", Description: "fireworks"})
	require.NoError(t, err)
	require.NotNil(t, res.Added)
	assert.Equal(t, date, res.Added.Date)

	snap, err := svc.Store().Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Rows, 2)
	assert.Equal(t, "fireworks", snap.Rows[1].Description)
}

func TestExecute_AddDefaultsToToday(t *testing.T) {
	svc := newTestService(t, testutil.CSV(header))

	res, err := svc.Execute(context.Background(), Add{Description: "now"})
	require.NoError(t, err)
	assert.Equal(t, testutil.DefaultToday, res.Added.Date.String())
	assert.Equal(t, "", res.Added.Category)
	assert.Equal(t,
		testutil.CSV(header, testutil.DefaultToday+",,now"),
		testutil.ReadFile(t, svc.Store().Path()))
}

func TestExecute_AddWorksOnEmptyStore(t *testing.T) {
	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "events.csv"))
	svc := NewService(st, testutil.FixedClock(""), nil)

	_, err := svc.Execute(context.Background(), Add{Description: "first"})
	require.NoError(t, err)
	assert.Equal(t, testutil.CSV(header, "2024-03-10,,first"), testutil.ReadFile(t, st.Path()))
}

func TestExecute_AddNormalizes(t *testing.T) {
	svc := newTestService(t, testutil.CSV(header))

	res, err := svc.Execute(context.Background(), Add{Category: "cafe\u0301", Description: "cre\u0300me"})
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9", res.Added.Category)
	assert.Equal(t, "cr\u00e8me", res.Added.Description)
}

func TestExecute_AddValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  Add
	}{
		{"empty_description", Add{Category: "work"}},
		{"blank_description", Add{Description: "   "}},
		{"newline_description", Add{Description: "two\nlines"}},
		{"newline_category", Add{Category: "a\r", Description: "x"}},
		{"comma_category", Add{Category: "a,b", Description: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := testutil.CSV(header, "2024-01-01,work,standup")
			svc := newTestService(t, content)

			_, err := svc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEvent)
			assert.True(t, IsUsageError(err))
			assert.Equal(t, content, testutil.ReadFile(t, svc.Store().Path()))
		})
	}
}

func TestExecute_AddAllowsCommaInDescription(t *testing.T) {
	svc := newTestService(t, testutil.CSV(header))
	ctx := context.Background()

	_, err := svc.Execute(ctx, Add{Description: "Paris, then Rome"})
	require.NoError(t, err)

	snap, err := svc.Store().Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "Paris, then Rome", snap.Rows[0].Description)
}

func TestExecute_DeleteDryRunMatchesRealDelete(t *testing.T) {
	content := testutil.CSV(header,
		"2024-01-01,work,standup",
		"2024-01-01,home,laundry",
		"2024-02-01,work,standup",
		"2024-01-01,work,standup notes",
		"bad,line,here",
		"2024-01-01,work,retro",
	)

	predicates := map[string]filter.Predicate{
		"all":      filter.All{},
		"category": filter.CategoryEquals{Category: "work"},
		"prefix":   filter.DescriptionPrefix{Prefix: "standup"},
		"date_and_category": filter.And{Predicates: []filter.Predicate{
			filter.OnDate{D: event.MustParseDate("2024-01-01")},
			filter.CategoryEquals{Category: "work"},
		}},
		"nothing": filter.CategoryEquals{Category: "none"},
	}

	for name, pred := range predicates {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(t, content)
			ctx := context.Background()

			preview, err := svc.Execute(ctx, Delete{Filter: pred, DryRun: true})
			require.NoError(t, err)
			assert.True(t, preview.DryRun)
			assert.Equal(t, content, testutil.ReadFile(t, svc.Store().Path()), "dry-run must not touch the file")

			removed, err := svc.Execute(ctx, Delete{Filter: pred})
			require.NoError(t, err)
			assert.False(t, removed.DryRun)

			assert.Equal(t, preview.Rows, removed.Rows)
		})
	}
}

func TestExecute_DeleteThenList(t *testing.T) {
	svc := newTestService(t, testutil.CSV(header, "2024-01-01,work,standup", "2024-06-01,,trip"))
	ctx := context.Background()

	_, err := svc.Execute(ctx, List{})
	require.NoError(t, err)

	res, err := svc.Execute(ctx, Delete{Filter: filter.NoCategory{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"trip"}, descriptions(res.Rows))

	// The snapshot loaded before the delete is stale and must not be reused.
	res, err = svc.Execute(ctx, List{})
	require.NoError(t, err)
	assert.Equal(t, []string{"standup"}, descriptions(res.Rows))
}

func TestExecute_DeleteAllTwice(t *testing.T) {
	svc := newTestService(t, testutil.CSV(header, "2024-01-01,work,standup", "2024-06-01,,trip"))
	ctx := context.Background()

	res, err := svc.Execute(ctx, Delete{Filter: filter.All{}})
	require.NoError(t, err)
	assert.Len(t, res.Rows, 2)
	assert.Equal(t, testutil.CSV(header), testutil.ReadFile(t, svc.Store().Path()))

	res, err = svc.Execute(ctx, Delete{Filter: filter.All{}})
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.Empty(t, res.Rows)
	assert.Equal(t, testutil.CSV(header), testutil.ReadFile(t, svc.Store().Path()))
}

func TestExecute_DeleteWithoutFilter(t *testing.T) {
	content := testutil.CSV(header, "2024-01-01,work,standup")
	svc := newTestService(t, content)

	_, err := svc.Execute(context.Background(), Delete{})
	require.Error(t, err)
	assert.True(t, IsUsageError(err))
	assert.Equal(t, content, testutil.ReadFile(t, svc.Store().Path()))
}
