package tui

// errorOverlayModel shows a failure the operator must acknowledge before
// the screen underneath takes input again.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Something went wrong") + "\n\n" +
		m.message + "\n\n" +
		helpStyle.Render("enter/esc: dismiss")
	return overlayBoxStyle.Render(content)
}
