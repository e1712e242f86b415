package handler

import (
	"context"
	"errors"
	"testing"

	"taskhub/internal/entity"
)

func TestAggregateModulesAcrossProjects(t *testing.T) {
	projects := []entity.Project{{ID: "p1"}, {ID: "p2"}}

	byProject := map[string]entity.ModulesStatuses{
		"p1": {
			Modules: []entity.Module{
				{ID: "m1", StatusID: "s1"},
				{ID: "m2", StatusID: "missing"},
			},
			Statuses: []entity.Status{
				{ID: "s1", Label: "Assigned"},
				{ID: "s2", Label: "In Progress"},
			},
		},
		"p2": {
			Modules: []entity.Module{
				{ID: "m3", StatusID: "s2"},
			},
			// s1 repeats; it must not appear twice in the combined list.
			Statuses: []entity.Status{
				{ID: "s1", Label: "Assigned"},
				{ID: "s3", Label: "Done"},
			},
		},
	}
	fetch := func(ctx context.Context, projectID string) (entity.ModulesStatuses, error) {
		return byProject[projectID], nil
	}

	modules, statuses, err := aggregateModules(context.Background(), projects, fetch)
	if err != nil {
		t.Fatalf("aggregateModules: %v", err)
	}

	if len(modules) != 3 {
		t.Fatalf("expected 3 modules, got %d", len(modules))
	}
	if len(statuses) != 3 {
		t.Fatalf("expected 3 deduplicated statuses, got %d", len(statuses))
	}
	wantOrder := []string{"s1", "s2", "s3"}
	for i, id := range wantOrder {
		if statuses[i].ID != id {
			t.Errorf("status %d: want %s, got %s", i, id, statuses[i].ID)
		}
	}

	if modules[0].Status == nil || modules[0].Status.Label != "Assigned" {
		t.Errorf("m1 status not resolved: %+v", modules[0].Status)
	}
	if modules[1].Status == nil || modules[1].Status.Label != "Unknown" || modules[1].Status.ID != "missing" {
		t.Errorf("m2 should fall back to Unknown, got %+v", modules[1].Status)
	}
	if modules[2].Status == nil || modules[2].Status.Label != "In Progress" {
		t.Errorf("m3 status not resolved: %+v", modules[2].Status)
	}
}

func TestAggregateModulesFetchFailure(t *testing.T) {
	projects := []entity.Project{{ID: "p1"}}
	fetch := func(ctx context.Context, projectID string) (entity.ModulesStatuses, error) {
		return entity.ModulesStatuses{}, errors.New("backend down")
	}

	if _, _, err := aggregateModules(context.Background(), projects, fetch); err == nil {
		t.Fatal("expected aggregation to fail when a project fetch fails")
	}
}

func TestAggregateModulesNoProjects(t *testing.T) {
	fetch := func(ctx context.Context, projectID string) (entity.ModulesStatuses, error) {
		t.Fatal("fetch should not be called without projects")
		return entity.ModulesStatuses{}, nil
	}

	modules, statuses, err := aggregateModules(context.Background(), nil, fetch)
	if err != nil {
		t.Fatalf("aggregateModules: %v", err)
	}
	if len(modules) != 0 || len(statuses) != 0 {
		t.Fatalf("expected empty result, got %d modules, %d statuses", len(modules), len(statuses))
	}
}
