package roles

import (
	"context"
	"strings"
	"testing"

	"github.com/meetingmind/meetingmind/internal/directory"
	"github.com/meetingmind/meetingmind/internal/logger"
)

// scriptedClient returns its responses in order, repeating the last one
type scriptedClient struct {
	responses []string
	calls     int
}

func (c *scriptedClient) Generate(_ context.Context, _ string) (string, error) {
	i := c.calls
	if i >= len(c.responses) {
		i = len(c.responses) - 1
	}
	c.calls++
	return c.responses[i], nil
}

type fakeDirectory struct {
	profiles map[string]directory.Profile
}

func (d *fakeDirectory) Lookup(_ context.Context, nameOrID string) (directory.Profile, bool) {
	p, ok := d.profiles[strings.ToLower(nameOrID)]
	return p, ok
}

func TestActionsWorkerResolvesOwners(t *testing.T) {
	client := &scriptedClient{responses: []string{
		`{"items": [
			{"description": "Draft the roadmap", "owner": "Steve", "deadline": "Friday"},
			{"description": "Ping the vendor", "owner": "Unknown Person"},
			{"description": "Book a room", "inferred": true}
		]}`,
	}}
	dir := &fakeDirectory{profiles: map[string]directory.Profile{
		"steve": {EmployeeID: "E002", Name: "Steve Fiore", Email: "steve.fiore@teradata.com"},
	}}
	w := NewActionsWorker(client, dir, logger.New("error", "text"))

	result, err := w.Run(context.Background(), "transcript text")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(result.Items))
	}

	if result.Items[0].Owner != "Steve Fiore" || result.Items[0].OwnerEmail != "steve.fiore@teradata.com" {
		t.Errorf("resolved item = %+v, want canonical name and email", result.Items[0])
	}
	if result.Items[1].Owner != "Unknown Person" || result.Items[1].OwnerEmail != "" {
		t.Errorf("unmatched owner should keep the item untouched, got %+v", result.Items[1])
	}
	if result.Items[2].Owner != "" || result.Items[2].OwnerEmail != "" {
		t.Errorf("ownerless item should stay ownerless, got %+v", result.Items[2])
	}
}

func TestActionsWorkerRefinesOnMalformedResponse(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Sure! Here are the action items in plain prose.",
		`{"items": [{"description": "Send minutes"}]}`,
	}}
	w := NewActionsWorker(client, &fakeDirectory{}, logger.New("error", "text"))

	result, err := w.Run(context.Background(), "transcript text")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if client.calls != 2 {
		t.Errorf("calls = %d, want 2 (one refinement)", client.calls)
	}
	if len(result.Items) != 1 || result.Items[0].Description != "Send minutes" {
		t.Errorf("items = %+v, want the refined response parsed", result.Items)
	}
}

func TestActionsWorkerDegradesWhenNeverParseable(t *testing.T) {
	client := &scriptedClient{responses: []string{"not json, ever"}}
	w := NewActionsWorker(client, &fakeDirectory{}, logger.New("error", "text"))

	result, err := w.Run(context.Background(), "transcript text")
	if err == nil {
		t.Fatal("Run() expected error after refinement budget")
	}
	if client.calls != maxIterations {
		t.Errorf("calls = %d, want %d", client.calls, maxIterations)
	}
	if result.Items == nil || len(result.Items) != 0 {
		t.Errorf("degraded result = %+v, want empty non-nil items", result.Items)
	}
}

func TestActionsWorkerNilItemsBecomeEmpty(t *testing.T) {
	client := &scriptedClient{responses: []string{`{"items": null}`}}
	w := NewActionsWorker(client, &fakeDirectory{}, logger.New("error", "text"))

	result, err := w.Run(context.Background(), "transcript text")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Items == nil {
		t.Fatal("items is nil, want empty slice")
	}
}
