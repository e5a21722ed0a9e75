// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	ConfigLoadFailedId Id = iota + 1
	InputStreamClosedId
	InvalidRangeId
	ServerStartFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink  // upstream documentation for the failing component
	}
)

func (i *Issue) Id() Id {
	return i.id
}

// Title is the first level-one heading of the page, without the marker.
func (i *Issue) Title() string {
	for line := range strings.Lines(string(i.mdMsg)) {
		if title, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return title
		}
	}
	return ""
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue page with the given glamour style ("dark", "light",
// "notty", "auto" or a path to a JSON style).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Show where numguess looks for its configuration:
~~~
$ numguess config path
~~~
- Write a fresh file with the default values:
~~~
$ numguess config init
~~~
- Check that ` + "`game.min`" + ` is not greater than ` + "`game.max`" + `.`,
		docLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	inputStreamClosedIssue = &Issue{
		id: InputStreamClosedId,
		mdMsg: `
# The input stream closed before you won!

numguess reads one guess per line from standard input. The stream ended, or
could not be read, while the secret was still unknown.

## Things you can try:
- Run the game in an interactive terminal:
~~~
$ numguess play
~~~
- When piping guesses, make sure the winning number is part of the input.`,
	}

	invalidRangeIssue = &Issue{
		id: InvalidRangeId,
		mdMsg: `
# The secret range is empty!

The lower bound must not be greater than the upper bound.

## Things you can try:
- Pass both bounds explicitly:
~~~
$ numguess play --min 1 --max 100
~~~`,
	}

	serverStartFailedIssue = &Issue{
		id: ServerStartFailedId,
		mdMsg: `
# The SSH arena could not start!

## Things you can try:
- Pick another port, the default one may be taken:
~~~
$ numguess serve --port 2223
~~~
- Check that the host key path is writable.`,
		docLinks: []HttpLink{"https://github.com/charmbracelet/wish"},
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		inputStreamClosedIssue.Id(): inputStreamClosedIssue,
		invalidRangeIssue.Id():      invalidRangeIssue,
		serverStartFailedIssue.Id(): serverStartFailedIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, is := range issues {
		out = append(out, is)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
