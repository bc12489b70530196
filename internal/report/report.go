// Package report renders evaluation results and the study reference card for
// terminal output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/abhisek/stackfour/internal/metrics"
	"github.com/abhisek/stackfour/internal/solver"
)

var (
	bold       = lipgloss.NewStyle().Bold(true)
	dim        = lipgloss.NewStyle().Faint(true)
	green      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellow     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	red        = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	cyan       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerCell = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// accuracyStyle colors a proportion by how good it is.
func accuracyStyle(v float64) lipgloss.Style {
	switch {
	case v >= 0.8:
		return green
	case v >= 0.6:
		return yellow
	default:
		return red
	}
}

// WriteRun renders one evaluation run: overall accuracy with its confidence
// interval, then a per-format breakdown table.
func WriteRun(w io.Writer, run metrics.Run) {
	s := run.Summary

	fmt.Fprintln(w, bold.Render("Evaluation results"))
	fmt.Fprintf(w, "  %s %s\n", dim.Render("run:"), run.ID)
	fmt.Fprintf(w, "  %s %s  %s %s\n",
		dim.Render("algorithm:"), run.AlgorithmVersion,
		dim.Render("dataset:"), run.DatasetHash)
	fmt.Fprintln(w)

	if s.Overall.Total == 0 {
		fmt.Fprintln(w, dim.Render("No questions graded."))
		return
	}

	fmt.Fprintf(w, "  Overall: %s (%d/%d)  95%% CI [%s, %s]\n\n",
		accuracyStyle(s.Overall.Accuracy).Render(pct(s.Overall.Accuracy)),
		s.Overall.Correct, s.Overall.Total,
		pct(s.Overall.CILower), pct(s.Overall.CIUpper))

	var rows [][]string
	if m := s.Single; m != nil {
		rows = append(rows, []string{
			"single",
			fmt.Sprintf("%d/%d", m.Correct, m.Total),
			accuracyStyle(m.Accuracy).Render(pct(m.Accuracy)),
			fmt.Sprintf("CI [%s, %s]", pct(m.CILower), pct(m.CIUpper)),
		})
	}
	if m := s.SATA; m != nil {
		rows = append(rows, []string{
			"sata",
			fmt.Sprintf("%d/%d", m.Correct, m.Total),
			accuracyStyle(m.ExactMatchAccuracy).Render(pct(m.ExactMatchAccuracy)),
			fmt.Sprintf("F1 %.3f  P %.3f  R %.3f", m.F1, m.Precision, m.Recall),
		})
	}
	if m := s.Ordered; m != nil {
		rows = append(rows, []string{
			"ordered",
			fmt.Sprintf("%d/%d", m.Correct, m.Total),
			accuracyStyle(m.PerfectSequenceAccuracy).Render(pct(m.PerfectSequenceAccuracy)),
			fmt.Sprintf("avg Kendall tau %.3f", m.AvgKendallTau),
		})
	}

	t := table.New().
		Headers("Format", "Correct", "Accuracy", "Detail").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return lipgloss.NewStyle()
		})
	fmt.Fprintln(w, t.Render())
}

// WritePrediction renders one prediction with its decision trail.
func WritePrediction(w io.Writer, pred *solver.Prediction) {
	fmt.Fprintf(w, "%s %s\n", bold.Render("Answer:"), cyan.Render(pred.Answers.String()))
	if pred.Exception != nil {
		fmt.Fprintf(w, "%s %s (confidence %.2f)\n",
			yellow.Render("Exception:"), pred.Exception.Category, pred.Exception.Confidence)
	}
	if len(pred.Reasoning) > 0 {
		fmt.Fprintln(w, dim.Render("Reasoning:"))
		for _, step := range pred.Reasoning {
			fmt.Fprintf(w, "  %s %s\n", dim.Render("•"), step)
		}
	}
}

// referenceCard is the printable study aid summarizing the priority ladder.
const referenceCard = `STACK OF FOUR · PRIORITY ORDER

1. LIFE THREATS (ABC+D)
   Airway       choking, stridor, obstruction  →  suction, position
   Breathing    dyspnea, low O2, wheeze        →  oxygen, Fowler's position
   Circulation  bleeding, no pulse, shock      →  compress, IV fluids
   Disability   neuro changes, pupils          →  assess LOC, seizure precautions

2. SAFETY
   Falls        bed low, rails up, call bell
   Infection    isolation, PPE, hand hygiene
   Violence     one-to-one, remove hazards

3. PHYSIOLOGICAL NEEDS (by urgency)
   Glucose      minutes  hypoglycemia       →  15g carbs
   Elimination  hours    urinary retention  →  catheter
   Pain         hours    severe pain        →  analgesics
   Fluids       days     dehydration        →  IV fluids
   Nutrition    days     malnutrition       →  supplements

4. NURSING PROCESS (ADPIE)
   Assessment wins in ties.
   Assessment → Diagnosis → Planning → Implementation → Evaluation

QUICK TIPS
   "EXCEPT" questions: pick the answer that does NOT belong.
   Select-all: be generous, include every correct option.
   Assessment before intervention. Actual problems before potential.
   Physical before psychosocial.`

// WriteReferenceCard prints the quick-reference card in a bordered box.
func WriteReferenceCard(w io.Writer) {
	fmt.Fprintln(w, cardStyle.Render(referenceCard))
}

// ReferenceCardText returns the card without styling, for plain-text export.
func ReferenceCardText() string {
	return strings.TrimSpace(referenceCard)
}
