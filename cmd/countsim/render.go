package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/countsim/internal/sim"
	"github.com/lox/countsim/internal/stats"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	positiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func renderProgress(s sim.Snapshot) {
	pct := 0.0
	if s.HandsTotal > 0 {
		pct = float64(s.HandsDone) * 100 / float64(s.HandsTotal)
	}
	ev := "ev -"
	if !math.IsNaN(s.RunningEV) {
		ev = fmt.Sprintf("ev %+.4f", s.RunningEV)
	}
	fmt.Fprintf(os.Stderr, "\r%s %d/%d hands (%.1f%%) %s  %s ",
		labelStyle.Render("simulating"),
		s.HandsDone, s.HandsTotal, pct, ev,
		s.Elapsed.Truncate(time.Second))
}

func renderResult(w io.Writer, r *stats.RunResult) {
	fmt.Fprintf(w, "%s\n\n", headerStyle.Render("results"))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(label, value string) {
		fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render(label), value)
	}

	row("hands", fmt.Sprintf("%d (%d rounds, %d wonged out)", r.Hands, r.Rounds, r.WongedRounds))
	row("ev/100 hands", signedStyle(r.EVPer100).Render(fmt.Sprintf("%+.3f units", r.EVPer100)))
	row("stdev/100 hands", fmt.Sprintf("%.3f units", r.StdevPer100))
	row("n0", formatMaybe(r.N0Hands, "%.0f hands"))
	row("di", formatMaybe(r.DesirabilityIndex, "%.2f"))
	row("score", formatMaybe(r.Score, "%.2f"))
	row("risk of ruin", fmt.Sprintf("%.2f%%", r.RiskOfRuin*100))
	row("blackjacks", fmt.Sprintf("%d", r.Blackjacks))
	row("surrenders", fmt.Sprintf("%d", r.Surrenders))
	row("insurance bets", fmt.Sprintf("%d", r.InsuranceBets))
	row("elapsed", r.Elapsed.Truncate(time.Millisecond).String())
	tw.Flush()

	if len(r.ByTrueCount) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n\n", headerStyle.Render("by true count"))
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
		headerStyle.Render("tc"),
		headerStyle.Render("hands"),
		headerStyle.Render("ev"),
		headerStyle.Render("stdev"))
	for _, b := range r.ByTrueCount {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.3f\t\n",
			valueStyle.Render(bucketLabel(b.Bucket)),
			b.Hands,
			signedStyle(b.EV).Render(fmt.Sprintf("%+.4f", b.EV)),
			b.Stdev)
	}
	tw.Flush()
}

func signedStyle(v float64) lipgloss.Style {
	if v < 0 {
		return negativeStyle
	}
	return positiveStyle
}

func formatMaybe(v float64, format string) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf(format, v)
}

func bucketLabel(b int) string {
	switch {
	case b <= stats.BucketMin:
		return fmt.Sprintf("<=%+d", stats.BucketMin)
	case b >= stats.BucketMax:
		return fmt.Sprintf(">=%+d", stats.BucketMax)
	default:
		return fmt.Sprintf("%+d", b)
	}
}
