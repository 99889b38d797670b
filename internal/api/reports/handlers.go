// internal/api/reports/handlers.go
package reports

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/codr1/Matchday/internal/api/apiutil"
	"github.com/codr1/Matchday/internal/api/htmx"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
)

const reportsQueryTimeout = 10 * time.Second

var (
	queries  *dbgen.Queries
	clock    clockwork.Clock = clockwork.NewRealClock()
	initOnce sync.Once
)

type dashboardStats struct {
	Players int64 `json:"players"`
	Teams   int64 `json:"teams"`
	Matches int64 `json:"matches"`
}

// InitHandlers must be called during server startup before handling requests.
// The clock dates exported file names.
func InitHandlers(q *dbgen.Queries, c clockwork.Clock) {
	if q == nil {
		return
	}
	initOnce.Do(func() {
		queries = q
		if c != nil {
			clock = c
		}
	})
}

func loadQueries(w http.ResponseWriter, r *http.Request) *dbgen.Queries {
	if queries == nil {
		log.Ctx(r.Context()).Error().Msg("Database queries not initialized")
		apiutil.WriteErrorMessage(w, r, http.StatusInternalServerError, "Internal Server Error")
	}
	return queries
}

// GET /api/v1/standings
func HandleStandings(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reportsQueryTimeout)
	defer cancel()

	standings, err := leagues.LoadStandings(ctx, q)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	if htmx.IsRequest(r) {
		apiutil.RenderHTMLComponent(r.Context(), w, standingsTable(standings), nil,
			"Failed to render standings table", "Failed to render standings")
		return
	}
	apiutil.WriteOK(w, r, http.StatusOK, standings)
}

// GET /api/v1/dashboard/stats
func HandleDashboardStats(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reportsQueryTimeout)
	defer cancel()

	var stats dashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Players, err = q.CountPlayers(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Teams, err = q.CountTeams(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Matches, err = q.CountMatches(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to load dashboard stats", err))
		return
	}

	apiutil.WriteOK(w, r, http.StatusOK, stats)
}

// GET /api/v1/reports/{type}?format=csv|json
func HandleReport(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	logger := log.Ctx(r.Context())

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	switch format {
	case "":
		apiutil.WriteError(w, r, leagues.Validation("report format is required (format=csv or format=json)"))
		return
	case formatCSV, formatJSON:
	default:
		apiutil.WriteError(w, r, leagues.Validation("unsupported report format"))
		return
	}

	reportType := strings.ToLower(r.PathValue("type"))
	build, ok := reportBuilders[reportType]
	if !ok {
		apiutil.WriteError(w, r, leagues.NotFound("unknown report type: "+reportType))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reportsQueryTimeout)
	defer cancel()

	report, err := build(ctx, q)
	if err != nil {
		var taxonomyErr *leagues.Error
		if !errors.As(err, &taxonomyErr) {
			err = leagues.Storage("failed to build report", err)
		}
		apiutil.WriteError(w, r, err)
		return
	}
	if len(report.Rows) == 0 {
		apiutil.WriteError(w, r, leagues.NotFound("no data found for the "+reportType+" report"))
		return
	}

	logger.Info().
		Str("report", reportType).
		Str("format", format).
		Int("rows", len(report.Rows)).
		Msg("Generating report")

	if format == formatJSON {
		apiutil.WriteOK(w, r, http.StatusOK, report.Records())
		return
	}
	if err := writeCSV(w, report, fileName(reportType, clock.Now())); err != nil {
		logger.Error().Err(err).Str("report", reportType).Msg("Failed to write CSV report")
	}
}
