package main

import (
	"context"
	"log/slog"

	"github.com/letmevibethatforyou/guidex"
	"github.com/letmevibethatforyou/guidex/inmemory"
)

// Request is the event accepted by the search function. A free-text Query is
// ranked; otherwise Symptoms or Keywords run the exact-match lookups.
type Request struct {
	Query    string   `json:"query,omitempty"`
	Symptoms []string `json:"symptoms,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Category string   `json:"category,omitempty"`
	Limit    int      `json:"limit,omitempty"`
	Offset   int      `json:"offset,omitempty"`
}

// Response carries the guidelines in ranked (query) or catalogue (lookup) order.
type Response struct {
	Guidelines []guidex.Guideline `json:"guidelines"`
	Total      int64              `json:"total"`
	NextOffset *int               `json:"next_offset,omitempty"`
}

type Handler struct {
	searcher *inmemory.Searcher
}

func NewHandler(searcher *inmemory.Searcher) *Handler {
	return &Handler{searcher: searcher}
}

func (h *Handler) HandleRequest(ctx context.Context, req Request) (Response, error) {
	switch {
	case req.Query != "":
		return h.search(ctx, req)
	case len(req.Symptoms) > 0:
		slog.InfoContext(ctx, "Looking up guidelines by symptoms", "target_count", len(req.Symptoms))
		return lookupResponse(h.searcher.FindBySymptoms(req.Symptoms)), nil
	case len(req.Keywords) > 0:
		slog.InfoContext(ctx, "Looking up guidelines by keywords", "target_count", len(req.Keywords))
		return lookupResponse(h.searcher.FindByKeywords(req.Keywords)), nil
	default:
		slog.InfoContext(ctx, "Empty request, returning no guidelines")
		return Response{Guidelines: []guidex.Guideline{}}, nil
	}
}

func (h *Handler) search(ctx context.Context, req Request) (Response, error) {
	opts := []guidex.SearchOption{
		guidex.WithLimit(req.Limit),
		guidex.WithOffset(req.Offset),
	}
	if req.Category != "" {
		opts = append(opts, guidex.Eq(guidex.FieldCategory, req.Category))
	}

	results, err := h.searcher.Search(ctx, req.Query, opts...)
	if err != nil {
		slog.ErrorContext(ctx, "Search failed", "error", err)
		return Response{}, err
	}

	slog.InfoContext(ctx, "Search completed",
		"total", results.Total,
		"returned", len(results.Items),
		"took_ms", results.Took,
	)

	return Response{
		Guidelines: results.Items,
		Total:      results.Total,
		NextOffset: results.NextOffset,
	}, nil
}

func lookupResponse(gs []guidex.Guideline) Response {
	return Response{Guidelines: gs, Total: int64(len(gs))}
}
