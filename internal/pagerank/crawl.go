package pagerank

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Crawl reads every .html file at the root of fsys and returns the corpus of
// links between them. Links to files outside the corpus are dropped.
func Crawl(fsys fs.FS) (Corpus, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read corpus directory: %w", err)
	}

	links := make(map[string][]string)
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".html" {
			continue
		}

		hrefs, err := parseLinks(fsys, e.Name())
		if err != nil {
			return nil, err
		}
		links[e.Name()] = hrefs
	}

	return NewCorpus(links), nil
}

func parseLinks(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	var hrefs []string
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.DataAtom != atom.A {
			continue
		}
		for _, attr := range n.Attr {
			if attr.Key == "href" {
				hrefs = append(hrefs, strings.TrimSpace(attr.Val))
			}
		}
	}
	return hrefs, nil
}
