package session

import "strings"

// Messages appended to the output log by state transitions.
const (
	MsgCancelled     = "Operation cancelled. Type a song name."
	MsgKept          = "File kept in place."
	MsgNewFolderName = "Please enter the name of the new folder:"
	MsgEmptyFolder   = "Folder name cannot be empty."
	MsgInvalidOption = "Invalid option."
	MsgInvalidInput  = "Invalid input. Choose a number, 'N', or 'Q'."
	MsgSeparator     = "-----------------------------"
	MsgNextSong      = "Type a new song name or 'q' to quit."
	MsgWelcome       = "Welcome. Type a song name and press Enter."
	MsgQuitHint      = "Type 'q' and press Enter to quit."
	MsgNoArtifact    = "--- Could not determine the downloaded file. Back to start. ---"
	MsgMenuHeader    = "--- Download finished ---"
	MsgMenuQuestion  = "Where do you want to move the file?"
	MsgMenuNewFolder = "N. Create new folder"
	MsgMenuLeave     = "Q. Leave in "
	MsgMenuPrompt    = "Enter an option and press Enter:"
)

// Action is the side effect a Decision asks the caller to perform.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionDownload
	ActionPlace
)

// Decision is the outcome of feeding one input line to the state machine.
//
// Before lines are logged before the action runs and After lines once it
// has finished. Arg is the query for ActionDownload and the destination
// folder name for ActionPlace.
type Decision struct {
	Next   State
	Action Action
	Arg    string
	Before []string
	After  []string
}

var footer = []string{MsgSeparator, MsgNextSong}

// Decide maps (state, input) to the next state and the work to do. It has
// no side effects; candidates are the folder names offered by the current
// organize menu and are only consulted in StateOrganizing.
func Decide(state State, input string, candidates []string) Decision {
	in := strings.TrimSpace(input)

	switch state {
	case StateIdle:
		switch {
		case in == "":
			return Decision{Next: StateIdle}
		case isSentinel(in, 'q'):
			return Decision{Next: StateIdle, Action: ActionQuit}
		}
		return Decision{Next: StateDownloading, Action: ActionDownload, Arg: in}

	case StateDownloading:
		if isSentinel(in, 'q') {
			return Decision{Next: StateIdle, Before: []string{MsgCancelled}}
		}
		return Decision{Next: StateDownloading}

	case StateOrganizing:
		switch {
		case in == "":
			return Decision{Next: StateOrganizing}
		case isSentinel(in, 'q'):
			return Decision{Next: StateIdle, Before: []string{MsgKept}, After: footer}
		case isSentinel(in, 'n'):
			return Decision{Next: StateCreatingFolder, Before: []string{MsgNewFolderName}}
		}
		choice := ParseChoice(in, len(candidates))
		switch choice.Kind {
		case ChoiceIndex:
			return Decision{Next: StateIdle, Action: ActionPlace, Arg: candidates[choice.Index], After: footer}
		case ChoiceOutOfRange:
			return Decision{Next: StateIdle, Before: []string{MsgInvalidOption}, After: footer}
		default:
			return Decision{Next: StateIdle, Before: []string{MsgInvalidInput}, After: footer}
		}

	case StateCreatingFolder:
		if in == "" {
			return Decision{Next: StateIdle, Before: []string{MsgEmptyFolder}, After: footer}
		}
		return Decision{Next: StateIdle, Action: ActionPlace, Arg: in, After: footer}
	}

	return Decision{Next: StateIdle}
}

func isSentinel(in string, c byte) bool {
	return len(in) == 1 && (in[0] == c || in[0] == c-'a'+'A')
}
