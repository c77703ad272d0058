package services

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"talktrack/internal/domain"
)

const sessionizeHost = "sessionize.com"

var sessionizeDayMonthY = regexp.MustCompile(`(\d{1,2})\s+(\w{3})\s+(\d{4})`)

type importService struct {
	fetcher        domain.EventPageFetcher
	contextTimeout time.Duration
}

func NewImportService(fetcher domain.EventPageFetcher, timeout time.Duration) domain.ImportService {
	return &importService{fetcher: fetcher, contextTimeout: timeout}
}

func (s *importService) ImportSessionize(ctx context.Context, url string) (*domain.Event, error) {
	if !strings.Contains(url, sessionizeHost) {
		return nil, fmt.Errorf("%w: not a Sessionize URL", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	page, err := s.fetcher.FetchPage(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch sessionize page: %w", err)
	}
	event := ParseSessionizePage(page)
	event.CallForContentURL = url
	return event, nil
}

// ParseSessionizePage extracts what it can from a call-for-speakers page.
// Anything it cannot find is left empty.
func ParseSessionizePage(page string) *domain.Event {
	event := domain.NewEvent("", "", "")
	event.LoginTool = "Sessionize"

	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return event
	}

	if box := findNode(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Div && hasClass(n, "ibox-title")
	}); box != nil {
		if h4 := findNode(box, isElement(atom.H4)); h4 != nil {
			event.Name = nodeText(h4)
		}
	}
	if event.Name == "" {
		if title := findNode(doc, isElement(atom.Title)); title != nil {
			if name, _, found := strings.Cut(nodeText(title), ":"); found {
				event.Name = strings.TrimSpace(name)
			}
		}
	}

	if h2 := labelledValue(doc, func(label string) bool { return label == "location" }); h2 != nil {
		var spans []*html.Node
		collectNodes(h2, isElement(atom.Span), &spans)
		if len(spans) >= 2 {
			parts := strings.Split(nodeText(spans[len(spans)-1]), ",")
			event.City = strings.TrimSpace(parts[0])
			if len(parts) >= 2 {
				event.Country = strings.TrimSpace(parts[1])
			}
		}
	}

	dates := []struct {
		matches func(string) bool
		dest    *string
	}{
		{func(l string) bool { return l == "event starts" }, &event.DateStart},
		{func(l string) bool { return l == "event ends" }, &event.DateEnd},
		{func(l string) bool { return strings.HasPrefix(l, "call closes") }, &event.CallForContentLastDate},
	}
	for _, d := range dates {
		if h2 := labelledValue(doc, d.matches); h2 != nil {
			*d.dest = parseSessionizeDate(nodeText(h2))
		}
	}
	return event
}

// labelledValue finds the first text whose lowercased content satisfies match and returns
// the <h2> that follows it, the way Sessionize lays out "label, then value" blocks. The
// label may sit a couple of elements deep inside the block preceding the <h2>.
func labelledValue(doc *html.Node, match func(string) bool) *html.Node {
	label := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.TextNode && match(strings.ToLower(collapseSpace(n.Data)))
	})
	for n, depth := label, 0; n != nil && depth < 3; n, depth = n.Parent, depth+1 {
		next := n.NextSibling
		for next != nil && next.Type != html.ElementNode {
			next = next.NextSibling
		}
		if next != nil && next.DataAtom == atom.H2 {
			return next
		}
	}
	return nil
}

func isElement(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Type == html.ElementNode && n.DataAtom == a }
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" && slices.Contains(strings.Fields(attr.Val), class) {
			return true
		}
	}
	return false
}

// findNode returns the first node in document order below root (root included) matching fn.
func findNode(root *html.Node, fn func(*html.Node) bool) *html.Node {
	if fn(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := findNode(c, fn); n != nil {
			return n
		}
	}
	return nil
}

func collectNodes(root *html.Node, fn func(*html.Node) bool, out *[]*html.Node) {
	if fn(root) {
		*out = append(*out, root)
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		collectNodes(c, fn, out)
	}
}

// nodeText joins the (already unescaped) text below n with single spaces.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return collapseSpace(b.String())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseSessionizeDate turns "22 Apr 2026" into 2026-04-22. Unknown months and impossible dates yield "".
func parseSessionizeDate(s string) string {
	m := sessionizeDayMonthY.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ""
	}
	t, err := time.Parse("2 Jan 2006", m[1]+" "+strings.ToUpper(m[2][:1])+strings.ToLower(m[2][1:])+" "+m[3])
	if err != nil {
		return ""
	}
	return domain.FormatDay(t)
}
