package reference

import (
  "strings"
)

type Entry struct {
  Name string
  ID   string
}

// Table хранит порядок записей, поиск подсказок идет в этом порядке.
type Table struct {
  entries []Entry
  ids     map[string]string
  names   map[string]string
}

func NewTable(entries []Entry) *Table {
  table := &Table{
    entries: entries,
    ids:     make(map[string]string, len(entries)),
    names:   make(map[string]string, len(entries)),
  }

  for _, entry := range entries {
    if _, ok := table.ids[entry.Name]; !ok {
      table.ids[entry.Name] = entry.ID
    }
    if _, ok := table.names[entry.ID]; !ok {
      table.names[entry.ID] = entry.Name
    }
  }

  return table
}

func (t *Table) Lookup(name string) (string, bool) {
  id, ok := t.ids[name]
  return id, ok
}

func (t *Table) Name(id string) (string, bool) {
  name, ok := t.names[id]
  return name, ok
}

func (t *Table) Suggest(input string, limit int) []string {
  var found []string

  if input == "" || limit <= 0 {
    return found
  }

  for _, entry := range t.entries {
    if !strings.Contains(entry.Name, input) {
      continue
    }
    found = append(found, entry.Name)

    if len(found) == limit {
      break
    }
  }

  return found
}

func (t *Table) Len() int {
  return len(t.entries)
}
