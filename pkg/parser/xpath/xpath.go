package xpath

import (
  "fmt"
  "strings"

  "github.com/antchfx/htmlquery"
  "golang.org/x/net/html"
)

func ParseDocument(content string) (*html.Node, error) {
  node, err := htmlquery.Parse(strings.NewReader(content))
  if err != nil {
    return nil, fmt.Errorf("htmlquery.Parse: %w", err)
  }
  return node, nil
}

// FindText возвращает текст первого узла по выражению xpath.
func FindText(doc *html.Node, xpath string) (string, bool) {
  if doc == nil {
    return "", false
  }

  node, err := htmlquery.Query(doc, xpath)
  if err != nil || node == nil {
    return "", false
  }

  return htmlquery.InnerText(node), true
}

func ExtractText(content, xpath string) (string, bool) {
  doc, err := ParseDocument(content)
  if err != nil {
    return "", false
  }
  return FindText(doc, xpath)
}
