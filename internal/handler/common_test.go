package handler

import (
    "context"
    "errors"
    "testing"
)

func TestTieredListFirstTierWins(t *testing.T) {
    items, degraded, err := tieredList(context.Background(), []listTier[int]{
        {name: "rich", fetch: func(ctx context.Context) ([]int, error) { return []int{1, 2}, nil }},
        {name: "bare", fetch: func(ctx context.Context) ([]int, error) {
            t.Fatal("second tier must not run when the first succeeds")
            return nil, nil
        }},
    })
    if err != nil {
        t.Fatalf("err = %v", err)
    }
    if degraded {
        t.Error("first-tier result reported as degraded")
    }
    if len(items) != 2 {
        t.Errorf("items = %v, want [1 2]", items)
    }
}

func TestTieredListFallback(t *testing.T) {
    items, degraded, err := tieredList(context.Background(), []listTier[int]{
        {name: "rich", fetch: func(ctx context.Context) ([]int, error) { return nil, errors.New("join blew up") }},
        {name: "bare", fetch: func(ctx context.Context) ([]int, error) { return []int{3}, nil }},
    })
    if err != nil {
        t.Fatalf("err = %v", err)
    }
    if !degraded {
        t.Error("fallback result not reported as degraded")
    }
    if len(items) != 1 || items[0] != 3 {
        t.Errorf("items = %v, want [3]", items)
    }
}

func TestTieredListAllTiersFail(t *testing.T) {
    last := errors.New("reduced shape failed too")
    _, degraded, err := tieredList(context.Background(), []listTier[int]{
        {name: "rich", fetch: func(ctx context.Context) ([]int, error) { return nil, errors.New("first") }},
        {name: "bare", fetch: func(ctx context.Context) ([]int, error) { return nil, last }},
    })
    if !errors.Is(err, last) {
        t.Fatalf("err = %v, want the last tier's error", err)
    }
    if degraded {
        t.Error("failed read reported as degraded")
    }
}

func TestEmptyList(t *testing.T) {
    if got := emptyList[int](nil); got == nil || len(got) != 0 {
        t.Errorf("emptyList(nil) = %v, want empty non-nil slice", got)
    }
    in := []int{1}
    if got := emptyList(in); len(got) != 1 {
        t.Errorf("emptyList(%v) = %v", in, got)
    }
}
