package render_test

import (
	"testing"

	"inkline/internal/render"
	"inkline/internal/testutils"
)

// Renders a whole build-report session through the public API and checks
// the final byte stream, spacing and rule placement included.
func TestBuildReportSession(t *testing.T) {
	buf := render.NewCaptureBuffer()
	engine := render.New(
		render.WithWriter(buf),
		render.WithMargin(30),
		render.PlainText(),
	)

	engine.Render("@H1 Build Report")
	engine.Render("@H2 Compile")
	engine.Render("compiling core", render.NoNewline())
	engine.Render("@SUCCESS", render.NoIndent(), render.RightJustified())
	engine.Render("@ENTRY")
	engine.Render("@EXIT")
	engine.Render("linking", render.NoNewline())
	engine.Render("@FAILURE", render.NoIndent(), render.RightJustified())
	engine.Render("@BLOCKQUOTE(undefined symbol: main)")
	engine.Render("@EXIT build finished")

	expected := "==============================\n" +
		" Build Report\n" +
		"==============================\n" +
		" Compile\n" +
		"------------------------------\n" +
		" compiling core      [  OK  ] \n" +
		" linking             [ FAIL ] \n" +
		" | undefined symbol: main\n" +
		" build finished\n" +
		"------------------------------\n" +
		"\n"

	testutils.RequireEqualText(t, expected, buf.String())
}

// The deferred-entry flow: an entry before a block of work defers its
// leading blank line until the block actually renders something.
func TestDeferredEntrySession(t *testing.T) {
	buf := render.NewCaptureBuffer()
	engine := render.New(
		render.WithWriter(buf),
		render.WithMargin(12),
		render.PlainText(),
	)

	engine.Render("before")
	engine.Render("@ENTRY")
	engine.Render("inside")
	engine.Render("@EXIT")

	expected := " before\n" +
		"\n" +
		"------------\n" +
		" inside\n" +
		"------------\n" +
		"\n"

	testutils.RequireEqualText(t, expected, buf.String())
}
