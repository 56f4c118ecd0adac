package console

import (
	"github.com/lixenwraith/rawline/history"
	"github.com/lixenwraith/rawline/lineedit"
)

// InputField reads one line with echo and no history
func (c *Console) InputField() (string, error) {
	return c.InputFieldCustom(nil, lineedit.Copy())
}

// InputFieldScrollable reads one line; the up and down keys browse ring
func (c *Console) InputFieldScrollable(ring *history.Ring) (string, error) {
	return c.InputFieldCustom(ring, lineedit.Copy())
}

// InputFieldCustom reads one line with the given history and echo policy
// The accepted line is pushed to ring when ring is not nil.
func (c *Console) InputFieldCustom(ring *history.Ring, echo lineedit.Echo) (string, error) {
	return lineedit.Edit(c.term, ring, lineedit.Options{
		Echo:        echo,
		EmitNewline: c.takeNewline(),
		OnRefuse:    c.refuse,
	})
}

// Prompt prints msg and reads the reply on the same line
func (c *Console) Prompt(msg string) (string, error) {
	return c.PromptCustom(msg, nil, lineedit.Copy())
}

// PromptScrollable prompts with history
func (c *Console) PromptScrollable(msg string, ring *history.Ring) (string, error) {
	return c.PromptCustom(msg, ring, lineedit.Copy())
}

// PromptMasked prompts with every typed character shown as mask
func (c *Console) PromptMasked(msg string, mask byte) (string, error) {
	return c.PromptCustom(msg, nil, lineedit.Substitute(mask))
}

// PromptCustom prompts with the given history and echo policy
func (c *Console) PromptCustom(msg string, ring *history.Ring, echo lineedit.Echo) (string, error) {
	if _, err := c.term.WriteString(msg); err != nil {
		return "", err
	}
	// The session flushes the prompt before its first read
	return c.InputFieldCustom(ring, echo)
}
