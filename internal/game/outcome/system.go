package outcome

const (
	KindHelp        Kind = "system.help"
	KindHelpCommand Kind = "system.help_command"
	KindQuit        Kind = "system.quit"
)

// Help lists the commands legal in the current mode.
type Help struct {
	sealedOutcome
	Commands []string
}

func (Help) Kind() Kind { return KindHelp }

// HelpCommand describes one verb.
type HelpCommand struct {
	sealedOutcome
	Verb        string
	Description string
	Syntaxes    [][]string
}

func (HelpCommand) Kind() Kind { return KindHelpCommand }

// Quit ends the game at the player's request.
type Quit struct{ sealedOutcome }

func (Quit) Kind() Kind { return KindQuit }
