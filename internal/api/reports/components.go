package reports

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/codr1/Matchday/internal/leagues"
)

func standingsTable(standings []leagues.TeamStanding) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<table id="standings-table" class="min-w-full divide-y divide-gray-200 text-sm">`)
		b.WriteString(`<thead class="bg-gray-50"><tr>`)
		for _, header := range []string{"#", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"} {
			fmt.Fprintf(&b, `<th class="px-3 py-2 text-left font-medium text-gray-600">%s</th>`, header)
		}
		b.WriteString(`</tr></thead><tbody class="divide-y divide-gray-100">`)
		if len(standings) == 0 {
			b.WriteString(`<tr><td colspan="10" class="px-3 py-4 text-center text-gray-500">No teams yet</td></tr>`)
		}
		for i, s := range standings {
			fmt.Fprintf(&b,
				`<tr data-team-id="%d"><td class="px-3 py-2">%d</td><td class="px-3 py-2 font-medium text-gray-900">%s</td>`+
					`<td class="px-3 py-2">%d</td><td class="px-3 py-2">%d</td><td class="px-3 py-2">%d</td><td class="px-3 py-2">%d</td>`+
					`<td class="px-3 py-2">%d</td><td class="px-3 py-2">%d</td><td class="px-3 py-2">%d</td>`+
					`<td class="px-3 py-2 font-semibold">%d</td></tr>`,
				s.TeamID, i+1, html.EscapeString(s.TeamName),
				s.Played, s.Won, s.Drawn, s.Lost,
				s.GoalsFor, s.GoalsAgainst, s.GoalDifference, s.Points,
			)
		}
		b.WriteString(`</tbody></table>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
