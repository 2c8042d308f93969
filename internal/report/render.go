package report

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/big21ray/soloqtracker-discord/internal/config"
	"github.com/big21ray/soloqtracker-discord/internal/domain"
)

const (
	timestampLayout = "02 Jan - 15:04"
	noGames         = "No games"
	columnGap       = "  "
)

// The two match-count columns render right-justified; everything else
// is left-justified.
var rightJustified = map[int]bool{1: true, 2: true}

// Renderer turns ordered player aggregates into a fixed-width text
// table: header line, dash separator, one line per player. No wrapping
// or truncation happens here.
type Renderer struct {
	headers []string
	loc     *time.Location
}

func NewRenderer(cfg *config.Config, loc *time.Location) *Renderer {
	return &Renderer{
		headers: []string{
			"Player", "Games 24 Hours", "Games 7 days",
			"Last Game", "Current Elo", "Main Account", cfg.BadgeHeader,
		},
		loc: loc,
	}
}

func (r *Renderer) Render(rows []domain.PlayerAggregate) string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{
			row.PlayerName,
			strconv.Itoa(row.Matches24h),
			strconv.Itoa(row.Matches7d),
			r.formatTimestamp(row.LastMatchEpochMs),
			row.BestRank,
			row.PrimaryAccountLabel,
			row.Badge,
		}
	}

	widths := make([]int, len(r.headers))
	for i, h := range r.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	lines := make([]string, 0, len(cells)+2)

	header := make([]string, len(r.headers))
	sep := make([]string, len(r.headers))
	for i, h := range r.headers {
		header[i] = padRight(h, widths[i])
		sep[i] = strings.Repeat("-", widths[i])
	}
	lines = append(lines, strings.Join(header, columnGap), strings.Join(sep, columnGap))

	for _, row := range cells {
		padded := make([]string, len(row))
		for i, cell := range row {
			if rightJustified[i] {
				padded[i] = padLeft(cell, widths[i])
			} else {
				padded[i] = padRight(cell, widths[i])
			}
		}
		lines = append(lines, strings.Join(padded, columnGap))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) formatTimestamp(ms int64) string {
	if ms == 0 {
		return noGames
	}
	return time.UnixMilli(ms).In(r.loc).Format(timestampLayout)
}

func padRight(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
