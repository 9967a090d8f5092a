package models

import (
  "sort"
  "strconv"

  "github.com/samber/lo"
)

const PriceChangeThreshold = 10.0

const (
  PriceDropChange    ChangeKind = "price_drop"
  PriceRiseChange    ChangeKind = "price_rise"
  ToursAddedChange   ChangeKind = "tours_added"
  ToursRemovedChange ChangeKind = "tours_removed"
  NewHotelChange     ChangeKind = "new_hotel"
  HotelRemovedChange ChangeKind = "hotel_removed"
)

type ChangeKind string

type HotelSnapshot struct {
  Name       string `json:"name"`
  MinPrice   int64  `json:"min_price"`
  ToursCount int    `json:"tours_count"`
}

// Snapshot индексирован идентификатором отеля.
type Snapshot map[string]HotelSnapshot

type ChangeEvent struct {
  Kind      ChangeKind `json:"kind"`
  HotelID   string     `json:"hotel_id"`
  HotelName string     `json:"hotel_name"`
  OldPrice  int64      `json:"old_price"`
  NewPrice  int64      `json:"new_price"`
  Percent   float64    `json:"percent"`
  OldCount  int        `json:"old_count"`
  NewCount  int        `json:"new_count"`
  Delta     int        `json:"delta"`
}

// NewSnapshotDiff сравнивает снимки. Сначала идут отели из обоих снимков,
// затем новые, затем исчезнувшие; внутри группы по возрастанию id.
func NewSnapshotDiff(stored, parsed Snapshot) []ChangeEvent {
  var (
    events  []ChangeEvent
    common  []string
    added   []string
    removed []string
  )

  for id := range stored {
    if _, ok := parsed[id]; ok {
      common = append(common, id)
    } else {
      removed = append(removed, id)
    }
  }
  for id := range parsed {
    if _, ok := stored[id]; !ok {
      added = append(added, id)
    }
  }

  sortHotelIds(common)
  sortHotelIds(added)
  sortHotelIds(removed)

  for _, id := range common {
    events = append(events, newHotelChanges(id, stored[id], parsed[id])...)
  }

  for _, id := range added {
    hotel := parsed[id]

    events = append(events, ChangeEvent{
      Kind:      NewHotelChange,
      HotelID:   id,
      HotelName: hotel.Name,
      NewPrice:  hotel.MinPrice,
      NewCount:  hotel.ToursCount,
    })
  }

  for _, id := range removed {
    hotel := stored[id]

    events = append(events, ChangeEvent{
      Kind:      HotelRemovedChange,
      HotelID:   id,
      HotelName: hotel.Name,
      OldPrice:  hotel.MinPrice,
      OldCount:  hotel.ToursCount,
    })
  }

  return events
}

func newHotelChanges(id string, old, cur HotelSnapshot) []ChangeEvent {
  var events []ChangeEvent

  // Без исходной цены процент изменения не определен.
  if old.MinPrice != 0 {
    percent := float64(cur.MinPrice-old.MinPrice) / float64(old.MinPrice) * 100

    event := ChangeEvent{
      HotelID:   id,
      HotelName: old.Name,
      OldPrice:  old.MinPrice,
      NewPrice:  cur.MinPrice,
      Percent:   percent,
    }

    switch {
    case percent < -PriceChangeThreshold:
      event.Kind = PriceDropChange
      events = append(events, event)

    case percent > PriceChangeThreshold:
      event.Kind = PriceRiseChange
      events = append(events, event)
    }
  }

  if delta := cur.ToursCount - old.ToursCount; delta != 0 {
    event := ChangeEvent{
      Kind:      ToursAddedChange,
      HotelID:   id,
      HotelName: old.Name,
      OldCount:  old.ToursCount,
      NewCount:  cur.ToursCount,
      Delta:     delta,
    }
    if delta < 0 {
      event.Kind = ToursRemovedChange
    }
    events = append(events, event)
  }

  return events
}

func sortHotelIds(ids []string) {
  sort.Slice(ids, func(i, j int) bool {
    return lessHotelId(ids[i], ids[j])
  })
}

func lessHotelId(a, b string) bool {
  na, errA := strconv.ParseInt(a, 10, 64)
  nb, errB := strconv.ParseInt(b, 10, 64)

  if errA == nil && errB == nil && na != nb {
    return na < nb
  }
  return a < b
}

func (s Snapshot) IsEmpty() bool {
  return len(s) == 0
}

func (s Snapshot) HotelIds() []string {
  ids := lo.Keys(s)
  sortHotelIds(ids)

  return ids
}
