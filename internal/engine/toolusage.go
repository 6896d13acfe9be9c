package engine

import (
	"bytes"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ToolUsageStats counts uses per tool. Tools keep the order they were first
// seen, including across a JSON round trip, so rankings break ties stably.
type ToolUsageStats struct {
	counts *orderedmap.OrderedMap[string, int]
}

type ToolCount struct {
	Tool  string `json:"tool"`
	Count int    `json:"count"`
}

func NewToolUsageStats() *ToolUsageStats {
	return &ToolUsageStats{counts: orderedmap.New[string, int]()}
}

func (s *ToolUsageStats) m() *orderedmap.OrderedMap[string, int] {
	if s.counts == nil {
		s.counts = orderedmap.New[string, int]()
	}
	return s.counts
}

// Increment adds one use of tool and returns the new count.
func (s *ToolUsageStats) Increment(tool string) int {
	n, _ := s.m().Get(tool)
	n++
	s.m().Set(tool, n)
	return n
}

func (s *ToolUsageStats) Count(tool string) int {
	n, _ := s.m().Get(tool)
	return n
}

func (s *ToolUsageStats) Len() int {
	return s.m().Len()
}

// Entries returns every tool with its count in insertion order.
func (s *ToolUsageStats) Entries() []ToolCount {
	out := make([]ToolCount, 0, s.Len())
	for pair := s.m().Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, ToolCount{Tool: pair.Key, Count: pair.Value})
	}
	return out
}

// Top returns the n most used tools, highest count first.
func (s *ToolUsageStats) Top(n int) []ToolCount {
	out := s.Entries()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func (s *ToolUsageStats) MarshalJSON() ([]byte, error) {
	return s.m().MarshalJSON()
}

func (s *ToolUsageStats) UnmarshalJSON(data []byte) error {
	fresh := orderedmap.New[string, int]()
	if !bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		if err := fresh.UnmarshalJSON(data); err != nil {
			return err
		}
	}
	s.counts = fresh
	return nil
}
