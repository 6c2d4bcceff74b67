package download

import "testing"

func TestPartitionExample(t *testing.T) {
	ranges := Partition(1_000_000, 4)
	want := []ByteRange{
		{Start: 0, End: 249999},
		{Start: 250000, End: 499999},
		{Start: 500000, End: 749999},
		{Start: 750000, End: -1},
	}
	if len(ranges) != len(want) {
		t.Fatalf("got %d ranges, want %d", len(ranges), len(want))
	}
	for i, r := range ranges {
		if r != want[i] {
			t.Errorf("ranges[%d] = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestPartitionCoversExactly(t *testing.T) {
	cases := []struct {
		size    int64
		workers int
	}{
		{1, 1},
		{1, 8},
		{10, 3},
		{1024, 4},
		{1_000_000, 7},
		{999, 1000},
		{1 << 30, 16},
	}
	for _, tc := range cases {
		ranges := Partition(tc.size, tc.workers)
		if len(ranges) == 0 {
			t.Fatalf("Partition(%d, %d) returned no ranges", tc.size, tc.workers)
		}
		if ranges[0].Start != 0 {
			t.Errorf("Partition(%d, %d): first range starts at %d", tc.size, tc.workers, ranges[0].Start)
		}
		for i := 0; i < len(ranges)-1; i++ {
			r := ranges[i]
			if r.End < 0 {
				t.Errorf("Partition(%d, %d): range %d is open-ended", tc.size, tc.workers, i)
			}
			if r.End < r.Start {
				t.Errorf("Partition(%d, %d): range %d is empty: %+v", tc.size, tc.workers, i, r)
			}
			if ranges[i+1].Start != r.End+1 {
				t.Errorf("Partition(%d, %d): gap between range %d and %d", tc.size, tc.workers, i, i+1)
			}
		}
		last := ranges[len(ranges)-1]
		if last.End != -1 {
			t.Errorf("Partition(%d, %d): last range not open-ended: %+v", tc.size, tc.workers, last)
		}
		if last.Start > tc.size-1 {
			t.Errorf("Partition(%d, %d): last range starts past the resource: %+v", tc.size, tc.workers, last)
		}
	}
}

func TestPartitionClampsWorkers(t *testing.T) {
	ranges := Partition(3, 8)
	if len(ranges) != 3 {
		t.Fatalf("got %d ranges, want 3", len(ranges))
	}
	for i, r := range ranges[:2] {
		if r.Start != int64(i) || r.End != int64(i) {
			t.Errorf("ranges[%d] = %+v, want single byte %d", i, r, i)
		}
	}
}

func TestByteRangeHeader(t *testing.T) {
	cases := []struct {
		r    ByteRange
		want string
	}{
		{ByteRange{Start: 0, End: 249999}, "bytes=0-249999"},
		{ByteRange{Start: 750000, End: -1}, "bytes=750000-"},
		{ByteRange{Start: 0, End: -1}, "bytes=0-"},
	}
	for _, tc := range cases {
		if got := tc.r.Header(); got != tc.want {
			t.Errorf("Header(%+v) = %q, want %q", tc.r, got, tc.want)
		}
	}
}
