package qdrant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"retail-analytics/pkg/qdrant"
)

func TestUpsertPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends Points To Collection Endpoint", func(t *testing.T) {
		var gotPath, gotMethod string
		var gotReq qdrant.UpsertPointsRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			w.Write([]byte(`{"result": {"status": "acknowledged"}, "status": "ok"}`))
		}))
		defer server.Close()

		client := qdrant.NewClient(server.URL)
		err := client.UpsertPoints(ctx, "faq", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{
				{ID: "3f2a", Vector: []float32{0.1, 0.2}, Payload: map[string]interface{}{"question": "q"}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/collections/faq/points" {
			t.Errorf("path = %s", gotPath)
		}
		if gotMethod != http.MethodPut {
			t.Errorf("method = %s, want PUT", gotMethod)
		}
		if len(gotReq.Points) != 1 || gotReq.Points[0].ID != "3f2a" {
			t.Errorf("unexpected points payload: %+v", gotReq.Points)
		}
	})

	t.Run("Non-200 Status Fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := qdrant.NewClient(server.URL)
		err := client.UpsertPoints(ctx, "faq", qdrant.UpsertPointsRequest{})
		if err == nil {
			t.Error("expected error for 400 response")
		}
	})
}

func TestSearchPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes Scored Results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/collections/faq/points/search" {
				t.Errorf("path = %s", r.URL.Path)
			}

			var req qdrant.SearchRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req.Limit != 10 || !req.WithPayload {
				t.Errorf("unexpected search request: %+v", req)
			}

			w.Write([]byte(`{"result": [
				{"id": "a", "score": 0.91, "payload": {"question": "top q"}},
				{"id": "b", "score": 0.72, "payload": {"question": "second q"}}
			]}`))
		}))
		defer server.Close()

		client := qdrant.NewClient(server.URL)
		resp, err := client.SearchPoints(ctx, "faq", qdrant.SearchRequest{
			Vector:      []float32{0.1, 0.2},
			Limit:       10,
			WithPayload: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 2 {
			t.Fatalf("got %d results, want 2", len(resp.Result))
		}
		if resp.Result[0].ID != "a" || resp.Result[0].Score != 0.91 {
			t.Errorf("unexpected top result: %+v", resp.Result[0])
		}
	})
}

func TestScrollPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Page And Next Offset", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/collections/faq/points/scroll" {
				t.Errorf("path = %s", r.URL.Path)
			}
			w.Write([]byte(`{"result": {
				"points": [{"id": "a", "payload": {"question": "q"}}],
				"next_page_offset": "b"
			}}`))
		}))
		defer server.Close()

		client := qdrant.NewClient(server.URL)
		resp, err := client.ScrollPoints(ctx, "faq", qdrant.ScrollRequest{Limit: 1, WithPayload: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result.Points) != 1 {
			t.Fatalf("got %d points, want 1", len(resp.Result.Points))
		}
		if resp.Result.NextPageOffset != "b" {
			t.Errorf("next_page_offset = %v, want b", resp.Result.NextPageOffset)
		}
	})
}

func TestCountPoints(t *testing.T) {
	t.Run("Returns Collection Count", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/collections/faq/points/count" {
				t.Errorf("path = %s", r.URL.Path)
			}
			w.Write([]byte(`{"result": {"count": 42}}`))
		}))
		defer server.Close()

		client := qdrant.NewClient(server.URL)
		count, err := client.CountPoints(context.Background(), "faq")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 42 {
			t.Errorf("count = %d, want 42", count)
		}
	})
}

func TestDeleteByFilter(t *testing.T) {
	t.Run("Nil Filter Sends Empty Object", func(t *testing.T) {
		var gotBody map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/collections/faq/points/delete" {
				t.Errorf("path = %s", r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			w.Write([]byte(`{"status": "ok"}`))
		}))
		defer server.Close()

		client := qdrant.NewClient(server.URL)
		err := client.DeleteByFilter(context.Background(), "faq", qdrant.DeleteByFilterRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		filter, ok := gotBody["filter"].(map[string]interface{})
		if !ok {
			t.Fatalf("filter should be an object, got %T", gotBody["filter"])
		}
		if len(filter) != 0 {
			t.Errorf("filter should be empty, got %v", filter)
		}
	})
}
