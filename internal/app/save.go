package app

import (
	"github.com/dshills/hecto/internal/input"
)

// save writes the document, asking for a file name first when it has none.
// Save failures are reported in the status line; only terminal failures
// during the prompt are returned.
func (e *Editor) save() error {
	if !e.doc.HasFilename() {
		name, ok, err := e.prompt(PromptSaveAs)
		if err != nil {
			return err
		}
		if !ok {
			e.setStatus(StatusSaveAborted)
			e.logger.Info("save aborted")
			return nil
		}
		e.doc.SetFilename(name)
	}

	if err := e.doc.Save(); err != nil {
		e.setStatus(StatusSaveFailed)
		e.metrics.RecordSave(false)
		e.logger.Error("save failed: %v", err)
		return nil
	}

	e.setStatus(StatusSaved)
	e.metrics.RecordSave(true)
	e.logger.Info("saved %s (%d lines)", e.doc.Filename(), e.doc.Len())
	return nil
}

// prompt reads a line of input in the message bar. It reports false when
// the user cancels with Esc or commits an empty line.
func (e *Editor) prompt(banner string) (string, bool, error) {
	var text []rune

loop:
	for {
		e.setStatus(banner + string(text))
		if err := e.refreshScreen(); err != nil {
			return "", false, e.fail("draw", err)
		}

		ev, err := e.readKey()
		if err != nil {
			return "", false, err
		}

		switch pc := input.MapPrompt(ev); pc.Kind {
		case input.PromptPop:
			if len(text) > 0 {
				text = text[:len(text)-1]
			}
		case input.PromptPush:
			text = append(text, pc.Rune)
		case input.PromptCommit:
			break loop
		case input.PromptCancel:
			text = nil
			break loop
		}
	}

	e.setStatus("")
	if len(text) == 0 {
		return "", false, nil
	}
	return string(text), true, nil
}
