package models

// CommandKind identifies a row action.
type CommandKind string

const (
	CommandStepQty    CommandKind = "step_qty"
	CommandDelete     CommandKind = "delete"
	CommandBeginEdit  CommandKind = "begin_edit"
	CommandCommitEdit CommandKind = "commit_edit"
	CommandCancelEdit CommandKind = "cancel_edit"
)

// Command is a typed action bound to one item.
// Rows in a projection carry the commands their controls issue, so the
// presentation layer never builds handler calls from strings.
type Command struct {
	Kind   CommandKind
	ItemID int64

	// Delta is the quantity step for CommandStepQty (+1 or -1 from the row controls).
	Delta int

	// Input is the raw text typed into the manual edit field for CommandCommitEdit.
	Input string
}

// StepQty returns a step command for the item.
func StepQty(id int64, delta int) Command {
	return Command{Kind: CommandStepQty, ItemID: id, Delta: delta}
}

// Delete returns a delete command for the item.
func Delete(id int64) Command {
	return Command{Kind: CommandDelete, ItemID: id}
}

// BeginEdit returns a command that switches the item's quantity into edit mode.
func BeginEdit(id int64) Command {
	return Command{Kind: CommandBeginEdit, ItemID: id}
}

// CommitEdit returns a command that commits the raw manual edit input.
func CommitEdit(id int64, input string) Command {
	return Command{Kind: CommandCommitEdit, ItemID: id, Input: input}
}
