package search

import (
  "github.com/ushakovn/tourwatch/internal/models"
  "github.com/ushakovn/tourwatch/pkg/stringer"
)

// BuildSnapshot строит снимок отелей для сравнения. Любая ошибка разбора
// или пустой ответ дают пустой снимок.
func BuildSnapshot(raw string) models.Snapshot {
  rows, err := decodePayload(raw)
  if err != nil || len(rows) == 0 {
    return models.Snapshot{}
  }

  snapshot := make(models.Snapshot, len(rows))

  for _, row := range rows {
    id, name, price, err := snapshotFields(row)
    if err != nil {
      return models.Snapshot{}
    }

    hotel, ok := snapshot[id]
    if !ok {
      snapshot[id] = models.HotelSnapshot{
        Name:       name,
        MinPrice:   price,
        ToursCount: 1,
      }
      continue
    }

    hotel.MinPrice = min(hotel.MinPrice, price)
    hotel.ToursCount++

    snapshot[id] = hotel
  }

  return snapshot
}

func snapshotFields(row offerRow) (id, name string, price int64, err error) {
  if id, err = row.string("hotelId"); err != nil {
    return
  }
  if name, err = row.string("hotelName"); err != nil {
    return
  }
  if price, err = row.int64("price"); err != nil {
    return
  }
  return id, stringer.StripTags(name), price, nil
}
