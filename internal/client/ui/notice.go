package ui

// Notices are the terminal stand-in for the web front-end's toast
// messages: one styled line per event.

func (s Styles) Ok(msg string) string {
	return s.Success.Render("✔ " + msg)
}

func (s Styles) Fail(msg string) string {
	return s.Error.Render("✖ " + msg)
}

func (s Styles) Warn(msg string) string {
	return s.Warning.Render("⚠ " + msg)
}

func (s Styles) Note(msg string) string {
	return s.Info.Render("ℹ " + msg)
}
