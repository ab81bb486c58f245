package render

// Convenience wrappers that synthesize directive lines. Collaborators use
// these instead of pasting keyword strings everywhere.

// H1 renders a full-width heading.
func (e *Engine) H1(text string) {
	e.Render("@H1 " + text)
}

// H2 renders a subheading, collapsing against a preceding heading.
func (e *Engine) H2(text string) {
	e.Render("@H2 " + text)
}

// Divider renders a rule, optionally followed by raw text.
func (e *Engine) Divider(text string) {
	if text == "" {
		e.Render("@DIV")
		return
	}
	e.Render("@DIV " + text)
}

// Blockquote renders text with every line quoted.
func (e *Engine) Blockquote(text string) {
	e.Render("@BLOCKQUOTE(" + text + ")")
}

// Success renders the OK badge, right-justified on the current line.
func (e *Engine) Success() {
	e.Render("@SUCCESS", NoIndent(), RightJustified())
}

// Failure renders the FAIL badge, right-justified on the current line.
func (e *Engine) Failure() {
	e.Render("@FAILURE", NoIndent(), RightJustified())
}

// Skip renders the SKIP badge, right-justified on the current line.
func (e *Engine) Skip() {
	e.Render("@SKIP", NoIndent(), RightJustified())
}

// Entry defers the next emission's leading spacing.
func (e *Engine) Entry() {
	e.Render("@ENTRY")
}

// Exit closes an entry or heading block.
func (e *Engine) Exit(text string) {
	if text == "" {
		e.Render("@EXIT")
		return
	}
	e.Render("@EXIT " + text)
}
