package view

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/andybalholm/cascadia"
	cssast "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// style-атрибут сильнее любого селектора
var inlineSpecificity = cascadia.Specificity{1 << 12, 0, 0} //nolint:gochecknoglobals

type cssRule struct {
	selector     cascadia.Sel
	declarations []*cssast.Declaration
	order        int
}

type propState struct {
	val         string
	specificity cascadia.Specificity
	order       int
	important   bool
}

// InlineStyles переносит правила из <style> в style-атрибуты подходящих
// элементов и удаляет сами <style>: документ рисуется так же без таблицы стилей.
func InlineStyles(document string) (string, error) {
	doc, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("html.Parse: %w", err)
	}

	rules, err := collectRules(doc)
	if err != nil {
		return "", err
	}

	if err := applyRules(doc, rules); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("html.Render: %w", err)
	}

	return buf.String(), nil
}

func collectRules(doc *html.Node) ([]cssRule, error) {
	var (
		rules      []cssRule
		styleNodes []*html.Node
		parseErr   error
	)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "style" {
			styleNodes = append(styleNodes, n)

			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				parsed, err := parseRules(n.FirstChild.Data, len(rules))
				if err != nil && parseErr == nil {
					parseErr = err
				}

				rules = append(rules, parsed...)
			}

			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if parseErr != nil {
		return nil, parseErr
	}

	for _, n := range styleNodes {
		n.Parent.RemoveChild(n)
	}

	return rules, nil
}

func parseRules(text string, order int) ([]cssRule, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parser.Parse: %w", err)
	}

	var rules []cssRule

	for _, rule := range sheet.Rules {
		if rule.Kind != cssast.QualifiedRule || len(rule.Selectors) == 0 {
			continue
		}

		group, err := cascadia.ParseGroup(strings.Join(rule.Selectors, ","))
		if err != nil {
			return nil, fmt.Errorf("cascadia.ParseGroup(%q): %w", rule.Prelude, err)
		}

		for _, sel := range group {
			if sel.PseudoElement() != "" {
				continue
			}

			rules = append(rules, cssRule{selector: sel, declarations: rule.Declarations, order: order})
			order++
		}
	}

	return rules, nil
}

func applyRules(n *html.Node, rules []cssRule) error {
	if n.Type == html.ElementNode {
		style, err := computeStyle(n, rules)
		if err != nil {
			return err
		}

		if style != "" {
			setAttr(n, "style", style)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := applyRules(c, rules); err != nil {
			return err
		}
	}

	return nil
}

func computeStyle(n *html.Node, rules []cssRule) (string, error) {
	props := map[string]propState{}

	for _, rule := range rules {
		if !rule.selector.Match(n) {
			continue
		}

		for _, decl := range rule.declarations {
			applyDeclaration(props, decl, rule.selector.Specificity(), rule.order)
		}
	}

	decls, err := inlineDeclarations(n)
	if err != nil {
		return "", err
	}

	for i, decl := range decls {
		applyDeclaration(props, decl, inlineSpecificity, (1<<30)+i)
	}

	if len(props) == 0 {
		return "", nil
	}

	var sb strings.Builder

	for i, prop := range slices.Sorted(maps.Keys(props)) {
		if i > 0 {
			sb.WriteString(" ")
		}

		sb.WriteString(prop)
		sb.WriteString(": ")
		sb.WriteString(props[prop].val)
		sb.WriteString(";")
	}

	return sb.String(), nil
}

// inlineDeclarations разбирает атрибут style. Парсер отдаёт пустое значение
// последней декларации без ";", поэтому ";" дописываем всегда.
func inlineDeclarations(n *html.Node) ([]*cssast.Declaration, error) {
	inline := strings.TrimSpace(getAttr(n, "style"))
	if inline == "" {
		return nil, nil
	}

	decls, err := parser.ParseDeclarations(strings.TrimSuffix(inline, ";") + ";")
	if err != nil {
		return nil, fmt.Errorf("parser.ParseDeclarations(%q): %w", inline, err)
	}

	return decls, nil
}

func applyDeclaration(store map[string]propState, decl *cssast.Declaration, specificity cascadia.Specificity, order int) {
	if decl == nil {
		return
	}

	prop := strings.ToLower(strings.TrimSpace(decl.Property))
	val := strings.TrimSpace(decl.Value)

	if prop == "" || val == "" {
		return
	}

	next := propState{val: val, specificity: specificity, order: order, important: decl.Important}

	cur, ok := store[prop]
	if !ok || wins(next, cur) {
		store[prop] = next
	}
}

func wins(next, cur propState) bool {
	if next.important != cur.important {
		return next.important
	}

	if next.specificity != cur.specificity {
		return cur.specificity.Less(next.specificity)
	}

	return next.order >= cur.order
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val

			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
