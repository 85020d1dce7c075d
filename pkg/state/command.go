package state

// CommandResult is the structured outcome of resolving one player command.
type CommandResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message,omitempty"`
	LocationChanged  bool   `json:"location_changed,omitempty"`  // Caller should re-render the location
	InventoryChanged bool   `json:"inventory_changed,omitempty"` // Caller should refresh inventory display
	ItemID           string `json:"item_id,omitempty"`           // Item taken, for collected-item tracking
	Quit             bool   `json:"quit,omitempty"`              // Player asked to quit; UI confirms before reset/exit
}

// Ok builds a successful result with a message.
func Ok(message string) CommandResult {
	return CommandResult{Success: true, Message: message}
}

// Fail builds a failed result with a message. Command failures are game
// feedback, not Go errors; play always continues.
func Fail(message string) CommandResult {
	return CommandResult{Success: false, Message: message}
}
