package schedulers

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the six supported scheduling policies.
// The zero value is not a valid algorithm.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota + 1
	ShortestJobFirst
	ShortestRemainingTimeFirst
	Priority
	PriorityPreemptive
	RoundRobin
)

var algorithmNames = map[Algorithm]string{
	FirstComeFirstServe:        "FCFS",
	ShortestJobFirst:           "SJF",
	ShortestRemainingTimeFirst: "SJF Preemptive",
	Priority:                   "Priority",
	PriorityPreemptive:         "Priority Preemptive",
	RoundRobin:                 "Round Robin",
}

var algorithmSlugs = map[Algorithm]string{
	FirstComeFirstServe:        "fcfs",
	ShortestJobFirst:           "sjf",
	ShortestRemainingTimeFirst: "srtf",
	Priority:                   "priority",
	PriorityPreemptive:         "priority-preemptive",
	RoundRobin:                 "rr",
}

var algorithmAliases = map[string]Algorithm{
	"fcfs":                          FirstComeFirstServe,
	"first come first serve":        FirstComeFirstServe,
	"first come first served":       FirstComeFirstServe,
	"sjf":                           ShortestJobFirst,
	"shortest job first":            ShortestJobFirst,
	"srtf":                          ShortestRemainingTimeFirst,
	"sjf preemptive":                ShortestRemainingTimeFirst,
	"shortest remaining time first": ShortestRemainingTimeFirst,
	"priority":                      Priority,
	"priority preemptive":           PriorityPreemptive,
	"rr":                            RoundRobin,
	"round robin":                   RoundRobin,
}

// Algorithms returns every algorithm in selector order.
func Algorithms() []Algorithm {
	return []Algorithm{
		FirstComeFirstServe,
		ShortestJobFirst,
		ShortestRemainingTimeFirst,
		Priority,
		PriorityPreemptive,
		RoundRobin,
	}
}

// ParseAlgorithm accepts display names ("SJF Preemptive"), slugs ("srtf")
// and their case, dash and underscore variants.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", " ", "_", " ").Replace(key)
	key = strings.Join(strings.Fields(key), " ")
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
}

func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Slug is the short URL-safe name of the algorithm.
func (a Algorithm) Slug() string {
	return algorithmSlugs[a]
}

func (a Algorithm) Preemptive() bool {
	return a == ShortestRemainingTimeFirst || a == PriorityPreemptive || a == RoundRobin
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
