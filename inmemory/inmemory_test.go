package inmemory

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/guidex"
)

func TestSearcher(t *testing.T) {
	searcher := New(fixtureCatalogue())
	ctx := context.Background()

	if searcher.Size() != 3 {
		t.Fatalf("Expected 3 guidelines, got %d", searcher.Size())
	}

	t.Run("Rank", func(t *testing.T) {
		got := ids(searcher.Rank("murphy"))
		expected := []string{"apendicite", "colecistite"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("FindBySymptoms", func(t *testing.T) {
		got := ids(searcher.FindBySymptoms([]string{"torácica"}))
		if !reflect.DeepEqual(got, []string{"iam"}) {
			t.Errorf("Expected [iam], got %v", got)
		}
	})

	t.Run("FindByKeywords", func(t *testing.T) {
		got := ids(searcher.FindByKeywords([]string{"vesícula"}))
		if !reflect.DeepEqual(got, []string{"colecistite"}) {
			t.Errorf("Expected [colecistite], got %v", got)
		}
	})

	t.Run("BasicSearch", func(t *testing.T) {
		results, err := searcher.Search(ctx, "dor")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}

		if results.Total != 3 {
			t.Errorf("Expected 3 results, got %d", results.Total)
		}
		if got := ids(results.Items); !reflect.DeepEqual(got, []string{"iam", "apendicite", "colecistite"}) {
			t.Errorf("Unexpected order %v", got)
		}
		if results.NextOffset != nil {
			t.Errorf("Expected no next offset, got %d", *results.NextOffset)
		}
		if results.Query != "dor" {
			t.Errorf("Expected query to be echoed, got %q", results.Query)
		}
	})

	t.Run("ShortQuery", func(t *testing.T) {
		results, err := searcher.Search(ctx, "d")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if results.Total != 0 || len(results.Items) != 0 {
			t.Errorf("Expected no results, got %d", results.Total)
		}
		if results.Items == nil {
			t.Error("Expected empty non-nil items")
		}
	})

	t.Run("WithFilters", func(t *testing.T) {
		results, err := searcher.Search(ctx, "dor",
			guidex.Eq(guidex.FieldCategory, "cirurgia geral"),
		)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if got := ids(results.Items); !reflect.DeepEqual(got, []string{"apendicite"}) {
			t.Errorf("Expected [apendicite], got %v", got)
		}
		if results.Total != 1 {
			t.Errorf("Expected total 1, got %d", results.Total)
		}
	})

	t.Run("FilterKeepsRankOrder", func(t *testing.T) {
		results, err := searcher.Search(ctx, "dor",
			guidex.Not(guidex.Eq(guidex.FieldID, "apendicite")),
		)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if got := ids(results.Items); !reflect.DeepEqual(got, []string{"iam", "colecistite"}) {
			t.Errorf("Expected [iam colecistite], got %v", got)
		}
	})

	t.Run("InvalidFilter", func(t *testing.T) {
		_, err := searcher.Search(ctx, "dor", guidex.Eq("price", "10"))
		if !errors.Is(err, guidex.ErrInvalidExpression) {
			t.Errorf("Expected ErrInvalidExpression, got %v", err)
		}
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		_, err := searcher.Search(ctx, "dor", guidex.WithLimit(-1))
		if !errors.Is(err, guidex.ErrInvalidOption) {
			t.Errorf("Expected ErrInvalidOption, got %v", err)
		}
	})

	t.Run("Canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := searcher.Search(canceled, "dor")
		if !errors.Is(err, guidex.ErrCanceled) {
			t.Errorf("Expected ErrCanceled, got %v", err)
		}
	})
}

func TestSearcher_Pagination(t *testing.T) {
	searcher := New(fixtureCatalogue())
	ctx := context.Background()

	tests := map[string]struct {
		limit      int
		offset     int
		expected   []string
		nextOffset *int
	}{
		"first_page": {
			limit:      2,
			expected:   []string{"iam", "apendicite"},
			nextOffset: intPtr(2),
		},
		"second_page": {
			limit:    2,
			offset:   2,
			expected: []string{"colecistite"},
		},
		"exact_fit": {
			limit:    3,
			expected: []string{"iam", "apendicite", "colecistite"},
		},
		"offset_past_end": {
			limit:    2,
			offset:   10,
			expected: []string{},
		},
		"no_limit_with_offset": {
			offset:   1,
			expected: []string{"apendicite", "colecistite"},
		},
		"max_limit": {
			limit:    math.MaxInt,
			expected: []string{"iam", "apendicite", "colecistite"},
		},
		"max_limit_with_offset": {
			limit:    math.MaxInt,
			offset:   1,
			expected: []string{"apendicite", "colecistite"},
		},
		"max_offset": {
			limit:    math.MaxInt,
			offset:   math.MaxInt,
			expected: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			results, err := searcher.Search(ctx, "dor",
				guidex.WithLimit(tt.limit),
				guidex.WithOffset(tt.offset),
			)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}

			if got := ids(results.Items); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if results.Total != 3 {
				t.Errorf("Expected total 3, got %d", results.Total)
			}
			if !reflect.DeepEqual(results.NextOffset, tt.nextOffset) {
				t.Errorf("Expected next offset %v, got %v", tt.nextOffset, results.NextOffset)
			}
		})
	}
}

func TestSearcher_OwnsCatalogue(t *testing.T) {
	catalogue := fixtureCatalogue()
	searcher := New(catalogue)

	catalogue[0].Name = "Renamed"
	catalogue[0].Symptoms[1] = "changed"

	got := searcher.Catalogue()
	if got[0].Name != "Apendicite" || got[0].Symptoms[1] != "febre" {
		t.Errorf("Expected searcher copy to be unaffected, got %+v", got[0])
	}

	got[1].Keywords[0] = "changed"
	if ids(searcher.Rank("murphy"))[1] != "colecistite" {
		t.Error("Expected Catalogue to return a copy")
	}
}

func TestSearcher_WithWeights(t *testing.T) {
	w := DefaultWeights()
	w.Category = 0
	searcher := New(fixtureCatalogue(), WithWeights(w))

	if got := searcher.Rank("cardiologia"); len(got) != 0 {
		t.Errorf("Expected no results with zero category weight, got %v", ids(got))
	}
}

func TestSearcher_ConcurrentReads(t *testing.T) {
	searcher := New(fixtureCatalogue())
	rankExpected := ids(searcher.Rank("dor"))

	readers := map[string]func() []string{
		"rank": func() []string {
			return ids(searcher.Rank("dor"))
		},
		"search": func() []string {
			results, err := searcher.Search(context.Background(), "dor", guidex.WithLimit(2), guidex.WithOffset(1))
			if err != nil {
				return []string{err.Error()}
			}
			return ids(results.Items)
		},
		"find_by_symptoms": func() []string {
			return ids(searcher.FindBySymptoms([]string{"febre", "dor"}))
		},
		"find_by_keywords": func() []string {
			return ids(searcher.FindByKeywords([]string{"murphy"}))
		},
	}
	expected := map[string][]string{
		"rank":             rankExpected,
		"search":           rankExpected[1:3],
		"find_by_symptoms": {"apendicite", "colecistite", "iam"},
		"find_by_keywords": {"apendicite", "colecistite"},
	}

	for name, read := range readers {
		for i := 0; i < 8; i++ {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				for j := 0; j < 50; j++ {
					if got := read(); !reflect.DeepEqual(got, expected[name]) {
						t.Fatalf("Expected %v, got %v", expected[name], got)
					}
				}
			})
		}
	}
}

func TestSearcherFunc(t *testing.T) {
	var s guidex.Searcher = guidex.SearcherFunc(New(fixtureCatalogue()).Search)

	results, err := s.Search(context.Background(), "febre")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if results.Total != 1 {
		t.Errorf("Expected 1 result, got %d", results.Total)
	}
}

func intPtr(n int) *int {
	return &n
}
