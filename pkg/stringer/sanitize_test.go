package stringer_test

import (
  "strings"
  "testing"
  "unicode/utf8"

  "github.com/ushakovn/tourwatch/pkg/stringer"
)

func TestChunks(t *testing.T) {
  cases := []struct {
    name  string
    input string
    size  int
    want  []string
  }{
    {name: "empty", input: "", size: 4, want: []string{""}},
    {name: "short", input: "abc", size: 4, want: []string{"abc"}},
    {name: "exact", input: "abcd", size: 4, want: []string{"abcd"}},
    {name: "split", input: "abcdefghij", size: 4, want: []string{"abcd", "efgh", "ij"}},
    {name: "cyrillic", input: "приветмир", size: 3, want: []string{"при", "вет", "мир"}},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      got := stringer.Chunks(tc.input, tc.size)
      if strings.Join(got, "|") != strings.Join(tc.want, "|") {
        t.Fatalf("Chunks(%q, %d) = %q, want %q", tc.input, tc.size, got, tc.want)
      }
    })
  }
}

func TestChunks_Long(t *testing.T) {
  input := strings.Repeat("ы", 9001)

  got := stringer.Chunks(input, 4000)
  if len(got) != 3 {
    t.Fatalf("expected 3 chunks, got %d", len(got))
  }
  for _, chunk := range got {
    if utf8.RuneCountInString(chunk) > 4000 {
      t.Fatalf("chunk too long: %d", utf8.RuneCountInString(chunk))
    }
  }
  if strings.Join(got, "") != input {
    t.Fatalf("chunks do not concatenate back to input")
  }
}

func TestStripTags(t *testing.T) {
  cases := []struct {
    input string
    want  string
  }{
    {input: " <b>Rixos</b> &amp; Spa ", want: "Rixos & Spa"},
    {input: "Hotel <Deluxe> & Spa", want: "Hotel & Spa"},
    {input: "Club\n\t<i>Hotel</i>   Dolphin", want: "Club Hotel Dolphin"},
  }

  for _, tc := range cases {
    if got := stringer.StripTags(tc.input); got != tc.want {
      t.Fatalf("StripTags(%q) = %q, want %q", tc.input, got, tc.want)
    }
  }
}

func TestSanitizeString(t *testing.T) {
  if got := stringer.SanitizeString("  нижний   новгород &amp; ко "); got != "нижний новгород & ко" {
    t.Fatalf("unexpected: %q", got)
  }
}
