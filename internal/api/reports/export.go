package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/models"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"

	reportDateLayout = "02-01-2006"
)

// table is a report as ordered columns and string cells.
type table struct {
	Headers []string
	Rows    [][]string
}

// Records returns one header-keyed object per row.
func (t table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(map[string]string, len(t.Headers))
		for i, header := range t.Headers {
			if i < len(row) {
				record[header] = row[i]
			}
		}
		records = append(records, record)
	}
	return records
}

type reportBuilder func(context.Context, *dbgen.Queries) (table, error)

var reportBuilders = map[string]reportBuilder{
	"standings": standingsReport,
	"scorers":   scorersReport,
	"cards":     cardsReport,
	"history":   historyReport,
}

func standingsReport(ctx context.Context, q *dbgen.Queries) (table, error) {
	standings, err := leagues.LoadStandings(ctx, q)
	if err != nil {
		return table{}, err
	}
	t := table{Headers: []string{"Team", "Played", "Won", "Drawn", "Lost", "Goals For", "Goals Against", "Goal Difference", "Points"}}
	for _, s := range standings {
		t.Rows = append(t.Rows, []string{
			s.TeamName,
			strconv.Itoa(s.Played),
			strconv.Itoa(s.Won),
			strconv.Itoa(s.Drawn),
			strconv.Itoa(s.Lost),
			strconv.Itoa(s.GoalsFor),
			strconv.Itoa(s.GoalsAgainst),
			strconv.Itoa(s.GoalDifference),
			strconv.Itoa(s.Points),
		})
	}
	return t, nil
}

func scorersReport(ctx context.Context, q *dbgen.Queries) (table, error) {
	rows, err := q.ListTopScorers(ctx)
	if err != nil {
		return table{}, err
	}
	t := table{Headers: []string{"Player", "Team", "Goals"}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{row.PlayerName, row.TeamName, strconv.FormatInt(row.Goals, 10)})
	}
	return t, nil
}

func cardsReport(ctx context.Context, q *dbgen.Queries) (table, error) {
	rows, err := q.ListCardReport(ctx)
	if err != nil {
		return table{}, err
	}
	t := table{Headers: []string{"Card ID", "Player", "Team", "Type", "Minute", "Match", "Match Date"}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(row.ID, 10),
			row.PlayerName,
			row.TeamName,
			row.CardType,
			strconv.FormatInt(row.Minute, 10),
			row.HomeTeamName + " vs " + row.AwayTeamName,
			models.FormatDate(row.MatchDate, reportDateLayout),
		})
	}
	return t, nil
}

func historyReport(ctx context.Context, q *dbgen.Queries) (table, error) {
	rows, err := q.ListMatchHistory(ctx)
	if err != nil {
		return table{}, err
	}
	t := table{Headers: []string{"Match ID", "Home Team", "Home Goals", "Away Goals", "Away Team", "Referee", "Venue", "Date", "Time"}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(row.ID, 10),
			row.HomeTeamName,
			strconv.FormatInt(row.HomeScore, 10),
			strconv.FormatInt(row.AwayScore, 10),
			row.AwayTeamName,
			row.RefereeName,
			row.VenueName,
			models.FormatDate(row.MatchDate, reportDateLayout),
			row.MatchTime,
		})
	}
	return t, nil
}

func fileName(reportType string, now time.Time) string {
	return fmt.Sprintf("report_%s_%s.csv", reportType, now.UTC().Format(leagues.DateLayout))
}

// writeCSV encodes the whole report before any header is written.
func writeCSV(w http.ResponseWriter, t table, name string) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(t.Headers); err != nil {
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return err
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+name)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(buf.Bytes())
	return err
}
