package cli

import (
	"github.com/spf13/cobra"

	"github.com/ankan123basu/CPUXpert/internal/schedulers"
)

func newSimulateCmd() *cobra.Command {
	var (
		file          string
		algorithmName string
		quantum       int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scheduling algorithm over a CSV workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, err := schedulers.ParseAlgorithm(algorithmName)
			if err != nil {
				return err
			}
			processes, err := readProcesses(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			s := schedulers.New(logger)
			s.SetProcesses(processes)
			s.SetAlgorithm(algorithm, quantumOrDefault(quantum))
			schedule, err := s.Run()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			outputTitle(w, algorithm.String())
			outputGantt(w, schedule)
			outputSchedule(w, s.Processes(), s.Metrics())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file of id,arrival,burst[,priority] rows (- for stdin)")
	cmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "fcfs", "Algorithm: fcfs, sjf, srtf, priority, priority-preemptive, rr")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round Robin time quantum (default from config)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var (
		file    string
		quantum int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm over a CSV workload and compare metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := readProcesses(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			s := schedulers.New(logger)
			s.SetProcesses(processes)
			results := make([]comparison, 0, len(schedulers.Algorithms()))
			for _, algorithm := range schedulers.Algorithms() {
				s.SetAlgorithm(algorithm, quantumOrDefault(quantum))
				if _, err := s.Run(); err != nil {
					return err
				}
				results = append(results, comparison{algorithm: algorithm, metrics: s.Metrics()})
			}

			w := cmd.OutOrStdout()
			outputTitle(w, "Algorithm comparison")
			outputComparison(w, results)
			if recommendation, err := s.Recommend(); err == nil {
				outputSuggestion(w, recommendation)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file of id,arrival,burst[,priority] rows (- for stdin)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round Robin time quantum (default from config)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newSuggestCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Recommend an algorithm for a CSV workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := readProcesses(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			recommendation, err := schedulers.Recommend(processes)
			if err != nil {
				return err
			}
			outputRecommendation(cmd.OutOrStdout(), recommendation)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file of id,arrival,burst[,priority] rows (- for stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
