package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ankan123basu/CPUXpert/internal/core"
	"github.com/ankan123basu/CPUXpert/internal/schedulers"
)

type comparison struct {
	algorithm schedulers.Algorithm
	metrics   schedulers.Metrics
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt prints one cell per slot; idle gaps show as "idle" cells.
func outputGantt(w io.Writer, schedule core.Schedule) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(schedule) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	var labels, marks strings.Builder
	labels.WriteString("|")
	clock := 0
	cell := func(label string, start int) {
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		labels.WriteString(padding + label + padding + "|")
		marks.WriteString(fmt.Sprint(start) + "\t")
	}
	for _, slot := range schedule {
		if slot.Start > clock {
			cell("idle", clock)
		}
		cell(slot.ProcessID, slot.Start)
		clock = slot.End
	}
	marks.WriteString(fmt.Sprint(clock))

	_, _ = fmt.Fprintln(w, labels.String())
	_, _ = fmt.Fprintln(w, marks.String())
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, processes []core.Process, m schedulers.Metrics) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Exit", "Response", "Wait", "Turnaround"})
	for _, p := range processes {
		table.Append([]string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.ResponseTime()),
			fmt.Sprint(p.WaitingTime()),
			fmt.Sprint(p.TurnaroundTime()),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Makespan\n%d", m.Makespan),
		fmt.Sprintf("CPU\n%.2f%%", m.CpuUtilization),
		fmt.Sprintf("Average\n%.2f", m.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", m.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnaroundTime),
	})
	table.Render()
}

func outputComparison(w io.Writer, results []comparison) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Turnaround", "Avg Waiting", "Avg Response", "CPU %", "Makespan", "Throughput"})
	for _, r := range results {
		table.Append([]string{
			r.algorithm.String(),
			fmt.Sprintf("%.2f", r.metrics.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", r.metrics.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.metrics.AverageResponseTime),
			fmt.Sprintf("%.2f", r.metrics.CpuUtilization),
			fmt.Sprint(r.metrics.Makespan),
			fmt.Sprintf("%.2f/t", r.metrics.Throughput),
		})
	}
	table.Render()
}

func outputSuggestion(w io.Writer, r schedulers.Recommendation) {
	_, _ = fmt.Fprintf(w, "Suggested algorithm: %s (score %d/100)\n", r.Algorithm, r.Score)
}

func outputRecommendation(w io.Writer, r schedulers.Recommendation) {
	outputTitle(w, "Algorithm recommendation")
	outputSuggestion(w, r)
	_, _ = fmt.Fprintln(w, "Rating:", strings.Repeat("*", r.Rating))
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Workload")
	_, _ = fmt.Fprintf(w, "  processes:      %d\n", r.Workload.ProcessCount)
	_, _ = fmt.Fprintf(w, "  average burst:  %.1f\n", r.Workload.AverageBurstTime)
	_, _ = fmt.Fprintf(w, "  arrivals:       %s\n", r.Workload.ArrivalPattern)
	_, _ = fmt.Fprintf(w, "  bursts:         %s\n", r.Workload.BurstPattern)
	_, _ = fmt.Fprintf(w, "  prioritized:    %t\n", r.Workload.HasPriority)
	_, _ = fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Score"})
	for _, s := range r.Scores {
		table.Append([]string{s.Algorithm.String(), fmt.Sprint(s.Points)})
	}
	table.Render()

	_, _ = fmt.Fprintln(w, "Reasons")
	for _, reason := range r.Reasons {
		_, _ = fmt.Fprintln(w, "  -", reason)
	}
	_, _ = fmt.Fprintln(w, "Benefits")
	for _, benefit := range r.Benefits {
		_, _ = fmt.Fprintln(w, "  -", benefit)
	}
}
