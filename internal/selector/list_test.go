package selector

import (
	"testing"

	"github.com/ytgrab/ytgrab/internal/app"
)

func testCatalog() app.Catalog {
	return app.Catalog{
		{ID: "137", Resolution: "1920x1080", Ext: "mp4", Filesize: 120_000_000},
		{ID: "136", Resolution: "1280x720", Ext: "mp4", Filesize: 70_000_000},
		{ID: "18", Resolution: "640x360", Ext: "mp4", Filesize: 25_000_000},
		{ID: "140", Resolution: "", Ext: "m4a", Filesize: 4_000_000},
		{ID: "251", Resolution: "", Ext: "webm", Filesize: 3_500_000},
	}
}

func checkInvariants(t *testing.T, c *Cursor) {
	t.Helper()
	if c.Selected() < 0 || c.Selected() >= c.Total() {
		t.Errorf("selected %d out of range [0, %d)", c.Selected(), c.Total())
	}
	if c.Selected() < c.VisibleStart() || c.Selected() >= c.VisibleStart()+c.VisibleLines() {
		t.Errorf("selected %d not inside window [%d, %d)",
			c.Selected(), c.VisibleStart(), c.VisibleStart()+c.VisibleLines())
	}
	if c.VisibleStart() < 0 {
		t.Errorf("visibleStart = %d, want >= 0", c.VisibleStart())
	}
}

func TestCursor_Navigation(t *testing.T) {
	tests := []struct {
		name         string
		visibleLines int
		ops          func(c *Cursor)
		wantSelected int
		wantStart    int
	}{
		{
			name:         "should_start_at_first_entry",
			visibleLines: 3,
			ops:          func(c *Cursor) {},
			wantSelected: 0,
			wantStart:    0,
		},
		{
			name:         "should_clamp_up_at_top",
			visibleLines: 3,
			ops:          func(c *Cursor) { c.Up(); c.Up() },
			wantSelected: 0,
			wantStart:    0,
		},
		{
			name:         "should_scroll_window_moving_down",
			visibleLines: 3,
			ops:          func(c *Cursor) { c.Down(); c.Down(); c.Down() },
			wantSelected: 3,
			wantStart:    1,
		},
		{
			name:         "should_clamp_down_at_bottom",
			visibleLines: 3,
			ops: func(c *Cursor) {
				for i := 0; i < 10; i++ {
					c.Down()
				}
			},
			wantSelected: 4,
			wantStart:    2,
		},
		{
			name:         "should_page_down_by_window_height",
			visibleLines: 3,
			ops:          func(c *Cursor) { c.PageDown() },
			wantSelected: 3,
			wantStart:    1,
		},
		{
			name:         "should_jump_to_last_then_first",
			visibleLines: 3,
			ops:          func(c *Cursor) { c.Last(); c.First() },
			wantSelected: 0,
			wantStart:    0,
		},
		{
			name:         "should_shrink_window_on_resize",
			visibleLines: 5,
			ops:          func(c *Cursor) { c.Last(); c.Resize(2) },
			wantSelected: 4,
			wantStart:    3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(len(testCatalog()), tt.visibleLines)
			tt.ops(c)
			checkInvariants(t, c)
			if c.Selected() != tt.wantSelected {
				t.Errorf("Selected() = %d, want %d", c.Selected(), tt.wantSelected)
			}
			if c.VisibleStart() != tt.wantStart {
				t.Errorf("VisibleStart() = %d, want %d", c.VisibleStart(), tt.wantStart)
			}
		})
	}
}

func TestCursor_Shortcuts(t *testing.T) {
	cat := testCatalog()

	t.Run("should_select_best_as_first_entry", func(t *testing.T) {
		c := NewCursor(len(cat), 3)
		c.Last()
		c.Best()
		if got := cat[c.Selected()].ID; got != "137" {
			t.Errorf("best = %q, want %q", got, "137")
		}
	})

	t.Run("should_select_worst_as_last_entry", func(t *testing.T) {
		c := NewCursor(len(cat), 3)
		c.Worst()
		if got := cat[c.Selected()].ID; got != "251" {
			t.Errorf("worst = %q, want %q", got, "251")
		}
	})

	t.Run("should_select_first_audio_only_entry", func(t *testing.T) {
		c := NewCursor(len(cat), 3)
		if !c.FirstAudioOnly(cat) {
			t.Fatal("FirstAudioOnly() = false, want true")
		}
		if got := cat[c.Selected()].ID; got != "140" {
			t.Errorf("audio = %q, want %q", got, "140")
		}
		checkInvariants(t, c)
	})

	t.Run("should_report_missing_audio_entry", func(t *testing.T) {
		videoOnly := cat[:3]
		c := NewCursor(len(videoOnly), 3)
		if c.FirstAudioOnly(videoOnly) {
			t.Error("FirstAudioOnly() = true, want false")
		}
	})

	t.Run("should_jump_by_digit", func(t *testing.T) {
		c := NewCursor(len(cat), 3)
		if !c.JumpDigit('3') {
			t.Fatal("JumpDigit('3') = false, want true")
		}
		if got := cat[c.Selected()].ID; got != "18" {
			t.Errorf("digit 3 = %q, want %q", got, "18")
		}
	})

	t.Run("should_reject_digit_past_catalog_end", func(t *testing.T) {
		c := NewCursor(len(cat), 3)
		c.Down()
		if c.JumpDigit('9') {
			t.Error("JumpDigit('9') = true, want false")
		}
		if c.Selected() != 1 {
			t.Errorf("selected moved to %d on rejected digit", c.Selected())
		}
	})
}

func TestIsAudioOnly(t *testing.T) {
	type args struct {
		f app.Format
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "should_detect_m4a_without_resolution",
			args: args{f: app.Format{ID: "140", Ext: "m4a"}},
			want: true,
		},
		{
			name: "should_detect_audio_marker_resolution",
			args: args{f: app.Format{ID: "251", Resolution: "audio only", Ext: "webm"}},
			want: true,
		},
		{
			name: "should_reject_video_resolution",
			args: args{f: app.Format{ID: "247", Resolution: "1280x720", Ext: "webm"}},
			want: false,
		},
		{
			name: "should_reject_video_extension_without_resolution",
			args: args{f: app.Format{ID: "x", Ext: "mp4"}},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAudioOnly(tt.args.f); got != tt.want {
				t.Errorf("IsAudioOnly() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQualityLabel(t *testing.T) {
	type args struct {
		resolution string
		ext        string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "should_label_4k", args: args{resolution: "3840x2160", ext: "mp4"}, want: "4K UHD"},
		{name: "should_label_2k", args: args{resolution: "2560x1440", ext: "mp4"}, want: "2K QHD"},
		{name: "should_label_full_hd", args: args{resolution: "1920x1080", ext: "mp4"}, want: "Full HD"},
		{name: "should_label_hd", args: args{resolution: "1280x720", ext: "mp4"}, want: "HD"},
		{name: "should_label_sd", args: args{resolution: "854x480", ext: "mp4"}, want: "SD"},
		{name: "should_leave_low_resolution_unlabeled", args: args{resolution: "640x360", ext: "mp4"}, want: ""},
		{name: "should_label_audio_only", args: args{resolution: "", ext: "opus"}, want: "Audio Only"},
		{name: "should_ignore_malformed_resolution", args: args{resolution: "1080p", ext: "mp4"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualityLabel(tt.args.resolution, tt.args.ext); got != tt.want {
				t.Errorf("QualityLabel() = %v, want %v", got, tt.want)
			}
		})
	}
}
