package dashboard

import (
	"reflect"
	"testing"

	"resourcing/internal/domain/resource"
)

func TestBucketLabelBoundaries(t *testing.T) {
	cases := []struct {
		diff int
		want string
	}{
		{-40, bucketExpiredSoon},
		{0, bucketExpiredSoon},
		{30, bucketExpiredSoon},
		{31, bucket31to60},
		{60, bucket31to60},
		{61, bucket61to90},
		{90, bucket61to90},
		{91, bucketOther},
	}
	for _, tc := range cases {
		if got := bucketLabel(tc.diff); got != tc.want {
			t.Fatalf("bucketLabel(%d) = %q, want %q", tc.diff, got, tc.want)
		}
	}
}

func TestBucketHistogramDropsResidual(t *testing.T) {
	diffs := map[int]int{
		-10: 1, // expired
		30:  2, // upper edge of first bucket
		31:  1,
		90:  3,
		91:  7, // residual, must vanish
		365: 2, // residual, must vanish
	}
	got := bucketHistogram(diffs)

	want := []NameCount{
		{Name: bucketExpiredSoon, Value: 3},
		{Name: bucket31to60, Value: 1},
		{Name: bucket61to90, Value: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPivotProjectStreamsZeroFillsAndSorts(t *testing.T) {
	counts := []projectStreamCount{
		{Project: "Zephyr", Stream: resource.StreamQA, Count: 1},
		{Project: "Apollo", Stream: resource.StreamBackend, Count: 2},
		{Project: "Apollo", Stream: resource.StreamQA, Count: 1},
		{Project: "Apollo", Stream: "Design", Count: 4}, // outside the core matrix
	}
	got := pivotProjectStreams(counts)

	want := []ProjectStreamRow{
		{Project: "Apollo", Backend: 2, Frontend: 0, QA: 1},
		{Project: "Zephyr", Backend: 0, Frontend: 0, QA: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRegroupSkills(t *testing.T) {
	counts := []skillCount{
		{Stream: resource.StreamBackend, Skill: "Go", Count: 4},
		{Stream: resource.StreamBackend, Skill: "SQL", Count: 2},
		{Stream: resource.StreamQA, Skill: "Cypress", Count: 3},
	}
	got := regroupSkills(counts)

	if len(got) != 2 {
		t.Fatalf("expected 2 stream groups, got %d", len(got))
	}
	if got[0].Stream != resource.StreamBackend || len(got[0].Skills) != 2 {
		t.Fatalf("unexpected first group: %+v", got[0])
	}
	if got[0].Skills[0] != (SkillEntry{Name: "Go", Count: 4}) {
		t.Fatalf("expected ordering preserved, got %+v", got[0].Skills)
	}
	if got[1].Stream != resource.StreamQA || len(got[1].Skills) != 1 {
		t.Fatalf("unexpected second group: %+v", got[1])
	}
}

func TestRegroupSkillsEmpty(t *testing.T) {
	if got := regroupSkills(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
