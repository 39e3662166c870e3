package disklayout

import "testing"

func TestDefaultLayout(t *testing.T) {
	if err := Default.Validate(); err != nil {
		t.Fatal(err)
	}
	// The boot sector must stay clear of the file system.
	for _, r := range Default {
		if r.Name == "luxfs" {
			continue
		}
		if r.End() > LuxFSStartLBA*SectorSize {
			t.Fatalf("Region %s [%d, %d) overlaps luxfs (starts at %d)",
				r.Name, r.Offset(), r.End(), LuxFSStartLBA*SectorSize)
		}
	}
}

func TestMinDiskSize(t *testing.T) {
	if got, want := MinDiskSize(), int64(3145728); got != want {
		t.Errorf("MinDiskSize() = %d, want %d", got, want)
	}
	if got, want := MinDiskSize()%SectorSize, int64(0); got != want {
		t.Errorf("MinDiskSize() %% SectorSize = %d, want %d", got, want)
	}
	if got, want := (Layout{}).MinDiskSize(), int64(0); got != want {
		t.Errorf("empty Layout.MinDiskSize() = %d, want %d", got, want)
	}
}

func TestValidate(t *testing.T) {
	for _, tt := range []struct {
		desc    string
		layout  Layout
		wantErr bool
	}{
		{
			desc:   "adjacent",
			layout: Layout{{"a", 0, 2}, {"b", 2, 2}},
		},
		{
			desc:   "gap",
			layout: Layout{{"a", 0, 1}, {"b", 2048, 4096}},
		},
		{
			desc:    "overlap",
			layout:  Layout{{"a", 0, 3}, {"b", 2, 2}},
			wantErr: true,
		},
		{
			desc:    "unsorted",
			layout:  Layout{{"b", 2048, 1}, {"a", 0, 1}},
			wantErr: true,
		},
		{
			desc:    "empty region",
			layout:  Layout{{"a", 0, 0}},
			wantErr: true,
		},
		{
			desc:    "negative LBA",
			layout:  Layout{{"a", -1, 1}},
			wantErr: true,
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			err := tt.layout.Validate()
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Errorf("Validate() = %v, want error: %v", err, tt.wantErr)
			}
		})
	}
}

func TestAlignUp(t *testing.T) {
	for _, tt := range []struct {
		n, alignment, want int64
	}{
		{0, 512, 0},
		{1, 512, 512},
		{511, 512, 512},
		{512, 512, 512},
		{513, 512, 1024},
		{3145729, 512, 3146240},
		{10000000, 512, 10000384},
	} {
		if got := AlignUp(tt.n, tt.alignment); got != tt.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", tt.n, tt.alignment, got, tt.want)
		}
	}
}
