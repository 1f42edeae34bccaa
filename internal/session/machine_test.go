package session

import (
	"reflect"
	"testing"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  Choice
	}{
		{"1", 2, Choice{Kind: ChoiceIndex, Index: 0}},
		{"2", 2, Choice{Kind: ChoiceIndex, Index: 1}},
		{" 2 ", 2, Choice{Kind: ChoiceIndex, Index: 1}},
		{"0", 2, Choice{Kind: ChoiceOutOfRange}},
		{"-1", 2, Choice{Kind: ChoiceOutOfRange}},
		{"3", 2, Choice{Kind: ChoiceOutOfRange}},
		{"1", 0, Choice{Kind: ChoiceOutOfRange}},
		{"99999999999999999999", 2, Choice{Kind: ChoiceOutOfRange}},
		{"abc", 2, Choice{Kind: ChoiceNotANumber}},
		{"1.5", 2, Choice{Kind: ChoiceNotANumber}},
		{"2abc", 2, Choice{Kind: ChoiceNotANumber}},
		{"", 2, Choice{Kind: ChoiceNotANumber}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseChoice(tt.input, tt.n); got != tt.want {
				t.Errorf("ParseChoice(%q, %d) = %+v, want %+v", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

func TestDecide(t *testing.T) {
	folders := []string{"Jazz", "Rock"}

	tests := []struct {
		name  string
		state State
		input string
		want  Decision
	}{
		{
			name:  "idle empty input does nothing",
			state: StateIdle,
			input: "",
			want:  Decision{Next: StateIdle},
		},
		{
			name:  "idle blank input does nothing",
			state: StateIdle,
			input: "   ",
			want:  Decision{Next: StateIdle},
		},
		{
			name:  "idle q quits",
			state: StateIdle,
			input: "q",
			want:  Decision{Next: StateIdle, Action: ActionQuit},
		},
		{
			name:  "idle Q quits",
			state: StateIdle,
			input: "Q",
			want:  Decision{Next: StateIdle, Action: ActionQuit},
		},
		{
			name:  "idle song starts download",
			state: StateIdle,
			input: "test song",
			want:  Decision{Next: StateDownloading, Action: ActionDownload, Arg: "test song"},
		},
		{
			name:  "idle query starting with q downloads",
			state: StateIdle,
			input: "queen",
			want:  Decision{Next: StateDownloading, Action: ActionDownload, Arg: "queen"},
		},
		{
			name:  "downloading ignores input",
			state: StateDownloading,
			input: "another song",
			want:  Decision{Next: StateDownloading},
		},
		{
			name:  "downloading q cancels",
			state: StateDownloading,
			input: "q",
			want:  Decision{Next: StateIdle, Before: []string{MsgCancelled}},
		},
		{
			name:  "organizing valid index places",
			state: StateOrganizing,
			input: "2",
			want:  Decision{Next: StateIdle, Action: ActionPlace, Arg: "Rock", After: footer},
		},
		{
			name:  "organizing out of range",
			state: StateOrganizing,
			input: "5",
			want:  Decision{Next: StateIdle, Before: []string{MsgInvalidOption}, After: footer},
		},
		{
			name:  "organizing not a number",
			state: StateOrganizing,
			input: "rock",
			want:  Decision{Next: StateIdle, Before: []string{MsgInvalidInput}, After: footer},
		},
		{
			name:  "organizing n asks for folder",
			state: StateOrganizing,
			input: "n",
			want:  Decision{Next: StateCreatingFolder, Before: []string{MsgNewFolderName}},
		},
		{
			name:  "organizing N asks for folder",
			state: StateOrganizing,
			input: "N",
			want:  Decision{Next: StateCreatingFolder, Before: []string{MsgNewFolderName}},
		},
		{
			name:  "organizing q keeps file",
			state: StateOrganizing,
			input: "q",
			want:  Decision{Next: StateIdle, Before: []string{MsgKept}, After: footer},
		},
		{
			name:  "organizing empty keeps menu",
			state: StateOrganizing,
			input: "",
			want:  Decision{Next: StateOrganizing},
		},
		{
			name:  "creating folder empty",
			state: StateCreatingFolder,
			input: "",
			want:  Decision{Next: StateIdle, Before: []string{MsgEmptyFolder}, After: footer},
		},
		{
			name:  "creating folder name places",
			state: StateCreatingFolder,
			input: "Soundtracks",
			want:  Decision{Next: StateIdle, Action: ActionPlace, Arg: "Soundtracks", After: footer},
		},
		{
			name:  "creating folder q is a name",
			state: StateCreatingFolder,
			input: "q",
			want:  Decision{Next: StateIdle, Action: ActionPlace, Arg: "q", After: footer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.state, tt.input, folders)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decide(%v, %q) = %+v, want %+v", tt.state, tt.input, got, tt.want)
			}
		})
	}
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		StateIdle:           "idle",
		StateDownloading:    "downloading",
		StateOrganizing:     "organizing",
		StateCreatingFolder: "creating folder",
		State(42):           "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
