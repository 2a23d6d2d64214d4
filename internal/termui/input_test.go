package termui

import (
	"testing"
	"time"
)

// scriptedSource replays a fixed byte sequence; once drained every read
// reports a quiet window.
type scriptedSource struct {
	bytes []byte
	pos   int
}

func (s *scriptedSource) readByte(wait time.Duration) (byte, bool, error) {
	if s.pos >= len(s.bytes) {
		return 0, false, nil
	}
	b := s.bytes[s.pos]
	s.pos++
	return b, true, nil
}

func TestKeyDecoder_Next(t *testing.T) {
	type args struct {
		input []byte
	}
	tests := []struct {
		name     string
		args     args
		want     Key
		wantRune byte
	}{
		{name: "should_decode_up_arrow", args: args{input: []byte("\x1b[A")}, want: KeyUp},
		{name: "should_decode_down_arrow", args: args{input: []byte("\x1b[B")}, want: KeyDown},
		{name: "should_decode_home", args: args{input: []byte("\x1b[H")}, want: KeyHome},
		{name: "should_decode_end", args: args{input: []byte("\x1b[F")}, want: KeyEnd},
		{name: "should_decode_vt_home", args: args{input: []byte("\x1b[1~")}, want: KeyHome},
		{name: "should_decode_vt_end", args: args{input: []byte("\x1b[4~")}, want: KeyEnd},
		{name: "should_decode_page_up", args: args{input: []byte("\x1b[5~")}, want: KeyPageUp},
		{name: "should_decode_page_down", args: args{input: []byte("\x1b[6~")}, want: KeyPageDown},
		{name: "should_treat_lone_escape_as_cancel", args: args{input: []byte{0x1b}}, want: KeyCancel},
		{name: "should_decode_carriage_return_as_enter", args: args{input: []byte("\r")}, want: KeyEnter},
		{name: "should_decode_newline_as_enter", args: args{input: []byte("\n")}, want: KeyEnter},
		{name: "should_decode_q_as_cancel", args: args{input: []byte("q")}, want: KeyCancel},
		{name: "should_decode_upper_q_as_cancel", args: args{input: []byte("Q")}, want: KeyCancel},
		{name: "should_decode_ctrl_c_as_cancel", args: args{input: []byte{0x03}}, want: KeyCancel},
		{name: "should_decode_digit_as_rune", args: args{input: []byte("3")}, want: KeyRune, wantRune: '3'},
		{name: "should_decode_letter_as_rune", args: args{input: []byte("b")}, want: KeyRune, wantRune: 'b'},
		{name: "should_ignore_unknown_sequence", args: args{input: []byte("\x1b[Z")}, want: KeyNone},
		{name: "should_ignore_truncated_tilde_sequence", args: args{input: []byte("\x1b[5")}, want: KeyNone},
		{name: "should_ignore_non_bracket_continuation", args: args{input: []byte("\x1bO")}, want: KeyNone},
		{name: "should_report_quiet_window_as_none", args: args{input: nil}, want: KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newKeyDecoder(&scriptedSource{bytes: tt.args.input})
			ev, err := d.next(10 * time.Millisecond)
			if err != nil {
				t.Fatalf("next() error = %v", err)
			}
			if ev.Key != tt.want {
				t.Errorf("next() key = %v, want %v", ev.Key, tt.want)
			}
			if tt.want == KeyRune && ev.Rune != tt.wantRune {
				t.Errorf("next() rune = %q, want %q", ev.Rune, tt.wantRune)
			}
		})
	}
}

func TestKeyDecoder_SequenceBoundary(t *testing.T) {
	// A full sequence followed by a plain key must decode as two events.
	d := newKeyDecoder(&scriptedSource{bytes: []byte("\x1b[B\r")})

	ev, err := d.next(10 * time.Millisecond)
	if err != nil || ev.Key != KeyDown {
		t.Fatalf("first event = %v (err %v), want KeyDown", ev.Key, err)
	}
	ev, err = d.next(10 * time.Millisecond)
	if err != nil || ev.Key != KeyEnter {
		t.Fatalf("second event = %v (err %v), want KeyEnter", ev.Key, err)
	}
}
