package html

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/segtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoTable is returned if an HTML fragment does not contain a table.
var ErrNoTable = errors.New("html: no table found")

// Table creates a <table> element for tr. Rows are levels of the tree,
// root first. Cells of padding slots have class "padding"; pending actions
// are appended as <sup> elements.
func Table[T any](tr segtree.Walker[T]) *html.Node {
	table := element(atom.Table, html.Attribute{Key: "class", Val: "segtree"})
	body := element(atom.Tbody)
	table.AppendChild(body)
	for _, level := range segtree.Levels(tr) {
		row := element(atom.Tr)
		for _, nv := range level {
			span := html.Attribute{Key: "colspan", Val: strconv.Itoa(nv.Hi - nv.Lo)}
			cell := element(atom.Td, span)
			if nv.Padding {
				cell.Attr = append(cell.Attr, html.Attribute{Key: "class", Val: "padding"})
			} else {
				cell.AppendChild(text(fmt.Sprint(nv.Value)))
				if nv.HasPending {
					sup := element(atom.Sup)
					sup.AppendChild(text(nv.Pending))
					cell.AppendChild(sup)
				}
			}
			row.AppendChild(cell)
		}
		body.AppendChild(row)
	}
	return table
}

// Render writes the table for tr to w.
func Render[T any](tr segtree.Walker[T], w io.Writer) error {
	return html.Render(w, Table(tr))
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Leaves parses an HTML fragment containing a table as written by Render
// and returns the texts of the cells of its last row, padding cells
// excluded. Pending actions are not part of the texts.
func Leaves(input io.Reader) ([]string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var last *html.Node
	for _, n := range nodes {
		collectRows(n, func(row *html.Node) { last = row })
	}
	if last == nil {
		return nil, ErrNoTable
	}
	var leaves []string
	for c := last.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Td || isPadding(c) {
			continue
		}
		var b strings.Builder
		collectText(c, &b)
		leaves = append(leaves, b.String())
	}
	return leaves, nil
}

func collectRows(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
		visit(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectRows(c, visit)
	}
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Sup {
		return
	} else if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func isPadding(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && a.Val == "padding" {
			return true
		}
	}
	return false
}
