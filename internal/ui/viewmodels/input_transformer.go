package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"expodir/internal/ui/input/types"
)

// InputTransformer turns the input mode and text field into view fields
type InputTransformer struct {
	mode      types.Mode
	prompt    string
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode and its prompt
func (it *InputTransformer) SetMode(mode types.Mode, prompt string) {
	it.mode = mode
	it.prompt = prompt
}

// Prompt returns the prompt of the active text mode, or ""
func (it *InputTransformer) Prompt() string {
	if !it.mode.IsText() {
		return ""
	}
	return it.prompt
}

// GetInputText returns the rendered text field for text modes
func (it *InputTransformer) GetInputText() string {
	if !it.mode.IsText() {
		return ""
	}
	return it.textInput.View()
}

// AlphaFocused reports whether the alpha bar has the keyboard
func (it *InputTransformer) AlphaFocused() bool {
	return it.mode == types.ModeAlpha
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case types.ModeSearch:
		return "search"
	case types.ModeGoToPage:
		return "goto"
	case types.ModeAlpha:
		return "alpha"
	case types.ModeIndustryPanel:
		return "industries"
	case types.ModeCountryPanel:
		return "countries"
	case types.ModeDetail:
		return "detail"
	default:
		return ""
	}
}
