package models_test

import (
  "testing"

  "github.com/ushakovn/tourwatch/internal/models"
)

func TestNewSnapshotDiff_PriceThresholds(t *testing.T) {
  cases := []struct {
    name     string
    oldPrice int64
    newPrice int64
    want     models.ChangeKind
  }{
    {name: "drop 11%", oldPrice: 100000, newPrice: 89000, want: models.PriceDropChange},
    {name: "drop exactly 10%", oldPrice: 100000, newPrice: 90000},
    {name: "drop 11% small", oldPrice: 10000, newPrice: 8900, want: models.PriceDropChange},
    {name: "drop exactly 10% small", oldPrice: 10000, newPrice: 9000},
    {name: "rise 11%", oldPrice: 100000, newPrice: 111000, want: models.PriceRiseChange},
    {name: "rise exactly 10%", oldPrice: 100000, newPrice: 110000},
    {name: "zero old price", oldPrice: 0, newPrice: 50000},
    {name: "unchanged", oldPrice: 70000, newPrice: 70000},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      stored := models.Snapshot{"1": {Name: "Rixos", MinPrice: tc.oldPrice, ToursCount: 3}}
      parsed := models.Snapshot{"1": {Name: "Rixos", MinPrice: tc.newPrice, ToursCount: 3}}

      events := models.NewSnapshotDiff(stored, parsed)

      if tc.want == "" {
        if len(events) != 0 {
          t.Fatalf("expected no events, got %+v", events)
        }
        return
      }
      if len(events) != 1 || events[0].Kind != tc.want {
        t.Fatalf("expected %s, got %+v", tc.want, events)
      }
      if events[0].OldPrice != tc.oldPrice || events[0].NewPrice != tc.newPrice {
        t.Fatalf("unexpected prices: %+v", events[0])
      }
    })
  }
}

func TestNewSnapshotDiff_ToursCount(t *testing.T) {
  stored := models.Snapshot{
    "1": {Name: "A", MinPrice: 1000, ToursCount: 3},
    "2": {Name: "B", MinPrice: 1000, ToursCount: 5},
  }
  parsed := models.Snapshot{
    "1": {Name: "A", MinPrice: 1000, ToursCount: 5},
    "2": {Name: "B", MinPrice: 1000, ToursCount: 1},
  }

  events := models.NewSnapshotDiff(stored, parsed)
  if len(events) != 2 {
    t.Fatalf("expected 2 events, got %+v", events)
  }
  if events[0].Kind != models.ToursAddedChange || events[0].Delta != 2 || events[0].NewCount != 5 {
    t.Fatalf("unexpected added event: %+v", events[0])
  }
  if events[1].Kind != models.ToursRemovedChange || events[1].Delta != -4 || events[1].NewCount != 1 {
    t.Fatalf("unexpected removed event: %+v", events[1])
  }
}

func TestNewSnapshotDiff_Order(t *testing.T) {
  stored := models.Snapshot{
    "10": {Name: "Ten", MinPrice: 100000, ToursCount: 1},
    "9":  {Name: "Nine", MinPrice: 100000, ToursCount: 1},
    "5":  {Name: "Gone", MinPrice: 1000, ToursCount: 2},
  }
  parsed := models.Snapshot{
    "10": {Name: "Ten", MinPrice: 80000, ToursCount: 2},
    "9":  {Name: "Nine", MinPrice: 120000, ToursCount: 1},
    "3":  {Name: "New", MinPrice: 5000, ToursCount: 4},
  }

  events := models.NewSnapshotDiff(stored, parsed)

  want := []struct {
    kind models.ChangeKind
    id   string
  }{
    {kind: models.PriceRiseChange, id: "9"},
    {kind: models.PriceDropChange, id: "10"},
    {kind: models.ToursAddedChange, id: "10"},
    {kind: models.NewHotelChange, id: "3"},
    {kind: models.HotelRemovedChange, id: "5"},
  }

  if len(events) != len(want) {
    t.Fatalf("expected %d events, got %+v", len(want), events)
  }
  for i, w := range want {
    if events[i].Kind != w.kind || events[i].HotelID != w.id {
      t.Fatalf("event %d: expected %s/%s, got %s/%s", i, w.kind, w.id, events[i].Kind, events[i].HotelID)
    }
  }

  if events[3].NewPrice != 5000 || events[3].NewCount != 4 || events[3].HotelName != "New" {
    t.Fatalf("unexpected new hotel event: %+v", events[3])
  }
  if events[4].OldCount != 2 || events[4].HotelName != "Gone" {
    t.Fatalf("unexpected removed hotel event: %+v", events[4])
  }
}

func TestNewSnapshotDiff_Empty(t *testing.T) {
  if events := models.NewSnapshotDiff(nil, nil); len(events) != 0 {
    t.Fatalf("expected no events, got %+v", events)
  }

  snapshot := models.Snapshot{"1": {Name: "A", MinPrice: 1000, ToursCount: 1}}
  if events := models.NewSnapshotDiff(snapshot, snapshot); len(events) != 0 {
    t.Fatalf("expected no events, got %+v", events)
  }
}

func TestSnapshot_HotelIds(t *testing.T) {
  snapshot := models.Snapshot{"100": {}, "20": {}, "3": {}}

  ids := snapshot.HotelIds()
  if len(ids) != 3 || ids[0] != "3" || ids[1] != "20" || ids[2] != "100" {
    t.Fatalf("unexpected order: %v", ids)
  }
}
